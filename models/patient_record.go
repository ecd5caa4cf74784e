// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The dnpm-kafka-rest-proxy Authors

package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

const (
	patientMember  = "patient"
	metadataMember = "metadata"
	idMember       = "id"
)

// ErrMissingPatient is returned while decoding a record without a
// "patient" member.
var ErrMissingPatient = errors.New("record has no patient")

// PatientRecord is a DNPM MTB file (data model 2.1) as received from the
// ETL client.
//
// Only the patient identifier and the consent metadata are interpreted by
// the proxy. Every other member is kept as raw JSON and written back
// unchanged when the record is serialized, so downstream consumers see the
// record exactly as it was sent.
type PatientRecord struct {
	// Patient holds the mandatory patient block.
	Patient Patient

	// Metadata is the consent block. A nil value means the record carries
	// no consent, which is how a consent withdrawal is signalled.
	Metadata json.RawMessage

	members map[string]json.RawMessage
}

// Patient is the patient block of a [PatientRecord].
type Patient struct {
	// ID is the pseudonymised patient identifier used as partition key.
	ID string

	members map[string]json.RawMessage
}

// NewConsentWithdrawal builds the record that is published when consent
// for patientID has been withdrawn: a patient block carrying only the
// identifier and no metadata.
func NewConsentWithdrawal(patientID string) PatientRecord {
	return PatientRecord{
		Patient: Patient{ID: patientID},
	}
}

// HasConsent reports whether the record carries a metadata block.
func (r PatientRecord) HasConsent() bool {
	return r.Metadata != nil
}

// UnmarshalJSON implements [json.Unmarshaler].
func (r *PatientRecord) UnmarshalJSON(data []byte) error {
	var members map[string]json.RawMessage
	if err := json.Unmarshal(data, &members); err != nil {
		return err
	}

	rawPatient, ok := members[patientMember]
	if !ok || isNull(rawPatient) {
		return ErrMissingPatient
	}

	var patient Patient
	if err := json.Unmarshal(rawPatient, &patient); err != nil {
		return fmt.Errorf("decode patient: %w", err)
	}

	var metadata json.RawMessage
	if rawMetadata, ok := members[metadataMember]; ok && !isNull(rawMetadata) {
		metadata = rawMetadata
	}

	delete(members, patientMember)
	delete(members, metadataMember)

	*r = PatientRecord{
		Patient:  patient,
		Metadata: metadata,
		members:  members,
	}
	return nil
}

// MarshalJSON implements [json.Marshaler]. The metadata member is omitted
// entirely when the record carries no consent.
func (r PatientRecord) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(r.members)+2)
	for k, v := range r.members {
		out[k] = v
	}

	patient, err := json.Marshal(r.Patient)
	if err != nil {
		return nil, fmt.Errorf("encode patient: %w", err)
	}
	out[patientMember] = patient

	if r.Metadata != nil {
		out[metadataMember] = r.Metadata
	}

	return json.Marshal(out)
}

// UnmarshalJSON implements [json.Unmarshaler].
func (p *Patient) UnmarshalJSON(data []byte) error {
	var members map[string]json.RawMessage
	if err := json.Unmarshal(data, &members); err != nil {
		return err
	}

	var id string
	if rawID, ok := members[idMember]; ok {
		if err := json.Unmarshal(rawID, &id); err != nil {
			return fmt.Errorf("decode patient id: %w", err)
		}
	}
	delete(members, idMember)

	*p = Patient{ID: id, members: members}
	return nil
}

// MarshalJSON implements [json.Marshaler].
func (p Patient) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(p.members)+1)
	for k, v := range p.members {
		out[k] = v
	}

	id, err := json.Marshal(p.ID)
	if err != nil {
		return nil, err
	}
	out[idMember] = id

	return json.Marshal(out)
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
