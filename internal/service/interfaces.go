package service

import (
	"context"

	"github.com/pcvolkmer/dnpm-kafka-rest-proxy/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// PatientRecordService forwards patient records to the broker. Both methods
// return the correlation id of the produced record once the broker has
// acknowledged it.
type PatientRecordService interface {
	Send(ctx context.Context, record models.PatientRecord) (string, error)
	WithdrawConsent(ctx context.Context, patientID string) (string, error)
}

// HealthService reports whether the broker is reachable.
type HealthService interface {
	Check(ctx context.Context) error
}

// PatientRecordServiceWrapper defines middleware composition for
// PatientRecordService. Implementations wrap an existing service to add
// behavior such as validation.
type PatientRecordServiceWrapper interface {
	Wrap(PatientRecordService) PatientRecordService // returns a decorated PatientRecordService applying additional behavior
}

// IDGenerator mints correlation ids.
type IDGenerator interface {
	Generate() string
}
