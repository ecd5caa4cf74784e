package validators

import (
	"context"
	"fmt"

	"github.com/pcvolkmer/dnpm-kafka-rest-proxy/models"
)

const (
	FieldPatientID = "patient_id"
)

// PatientRecordValidator checks the few structural rules the proxy enforces
// on a decoded record. The record body is otherwise passed through
// unvalidated.
type PatientRecordValidator struct {
}

func NewPatientRecordValidator() Validator {
	return &PatientRecordValidator{}
}

func (v *PatientRecordValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.PatientRecord:
		return v.validatePatient(ctx, value.Patient, fields...)
	case *models.PatientRecord:
		if value == nil {
			return fmt.Errorf("%w: nil patient record", ErrUnsupportedType)
		}
		return v.validatePatient(ctx, value.Patient, fields...)

	case models.Patient:
		return v.validatePatient(ctx, value, fields...)

	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *PatientRecordValidator) validatePatient(_ context.Context, patient models.Patient, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPatientID}
	}

	for _, field := range fields {
		switch field {
		case FieldPatientID:
			if patient.ID == "" {
				return ErrEmptyPatientID
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}
