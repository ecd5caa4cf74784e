// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The dnpm-kafka-rest-proxy Authors

package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/pcvolkmer/dnpm-kafka-rest-proxy/internal/logger"
	"github.com/pcvolkmer/dnpm-kafka-rest-proxy/models"
)

// sendPatientRecord handles POST /mtb/etl/patient-record.
//
// The body is decoded into a [models.PatientRecord] and forwarded. It
// answers 202 Accepted with the correlation id in X-Request-Id once the
// broker confirmed the record, or 500 with an empty body otherwise.
func (h *Handler) sendPatientRecord(w http.ResponseWriter, r *http.Request) {
	record, err := decodePatientRecord(http.MaxBytesReader(w, r.Body, h.maxBodyBytes))
	if err != nil {
		h.fail(w, r, err)
		return
	}

	requestID, err := h.services.PatientRecordService.Send(detach(r), record)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	accepted(w, requestID)
}

// withdrawConsent handles DELETE /mtb/etl/patient-record/{patientId} by
// publishing a record without consent metadata for that patient. The id is
// taken percent-decoded, so /patient-record/a%2Fb withdraws patient "a/b".
func (h *Handler) withdrawConsent(w http.ResponseWriter, r *http.Request) {
	patientID, err := url.PathUnescape(chi.URLParam(r, patientIDParam))
	if err != nil {
		h.fail(w, r, fmt.Errorf("%w: %w", ErrInvalidPatientID, err))
		return
	}

	requestID, err := h.services.PatientRecordService.WithdrawConsent(detach(r), patientID)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	accepted(w, requestID)
}

func decodePatientRecord(body io.Reader) (models.PatientRecord, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return models.PatientRecord{}, fmt.Errorf("%w: limit %d bytes", ErrBodyTooLarge, tooLarge.Limit)
		}
		return models.PatientRecord{}, fmt.Errorf("%w: %w", ErrMalformedBody, err)
	}

	var record models.PatientRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return models.PatientRecord{}, fmt.Errorf("%w: %w", ErrMalformedBody, err)
	}

	return record, nil
}

// detach keeps the request values but drops its cancellation: a record that
// was handed to the producer is awaited up to the send timeout even if the
// caller went away.
func detach(r *http.Request) context.Context {
	return context.WithoutCancel(r.Context())
}

func accepted(w http.ResponseWriter, requestID string) {
	w.Header().Set(models.RequestIDResponseHeader, requestID)
	w.WriteHeader(http.StatusAccepted)
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	logger.FromRequest(r).Error().
		Err(err).
		Str("reason", reasonFromError(err)).
		Msg("patient record not accepted")

	w.WriteHeader(http.StatusInternalServerError)
}
