// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The dnpm-kafka-rest-proxy Authors

package http

import "errors"

var (
	// ErrMalformedBody is returned when a POST body cannot be read or does
	// not decode into a patient record.
	ErrMalformedBody = errors.New("malformed patient record body")
	// ErrBodyTooLarge is returned when a POST body exceeds the handler's
	// size limit.
	ErrBodyTooLarge = errors.New("patient record body too large")

	ErrInvalidPatientID = errors.New("invalid patient id in path")
)
