package http

import (
	"errors"

	"github.com/pcvolkmer/dnpm-kafka-rest-proxy/internal/adapter"
	"github.com/pcvolkmer/dnpm-kafka-rest-proxy/internal/service"
)

// Every failure past authentication answers 500 with an empty body. The
// reason only ends up in the log.
const (
	reasonMalformedBody = "malformed_body"
	reasonBodyTooLarge  = "body_too_large"
	reasonPatientID     = "invalid_patient_id"
	reasonInvalidRecord = "invalid_record"
	reasonCompose       = "compose_failed"
	reasonNotConfirmed  = "not_confirmed"
	reasonUnknown       = "unknown"
)

var errorReasonMap = map[error]string{
	ErrMalformedBody:                reasonMalformedBody,
	ErrBodyTooLarge:                 reasonBodyTooLarge,
	ErrInvalidPatientID:             reasonPatientID,
	service.ErrInvalidPatientRecord: reasonInvalidRecord,
	service.ErrComposeFailed:        reasonCompose,
	adapter.ErrDeliveryFailed:       reasonNotConfirmed,
}

func reasonFromError(err error) string {
	for target, reason := range errorReasonMap {
		if errors.Is(err, target) {
			return reason
		}
	}
	return reasonUnknown
}
