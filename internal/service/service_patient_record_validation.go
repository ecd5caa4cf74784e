package service

import (
	"context"
	"fmt"

	"github.com/pcvolkmer/dnpm-kafka-rest-proxy/internal/validators"
	"github.com/pcvolkmer/dnpm-kafka-rest-proxy/models"
)

type PatientRecordValidationService struct {
	inner     PatientRecordService
	validator validators.Validator
}

func NewPatientRecordValidationService() PatientRecordServiceWrapper {
	return &PatientRecordValidationService{
		validator: validators.NewPatientRecordValidator(),
	}
}

func (v *PatientRecordValidationService) Send(ctx context.Context, record models.PatientRecord) (string, error) {
	if err := v.validator.Validate(ctx, record); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidPatientRecord, err)
	}

	return v.inner.Send(ctx, record)
}

func (v *PatientRecordValidationService) WithdrawConsent(ctx context.Context, patientID string) (string, error) {
	if err := v.validator.Validate(ctx, models.Patient{ID: patientID}, validators.FieldPatientID); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidPatientRecord, err)
	}

	return v.inner.WithdrawConsent(ctx, patientID)
}

func (v *PatientRecordValidationService) Wrap(wrapper PatientRecordService) PatientRecordService {
	v.inner = wrapper
	return v
}
