package service

import (
	"github.com/pcvolkmer/dnpm-kafka-rest-proxy/internal/adapter"
	"github.com/pcvolkmer/dnpm-kafka-rest-proxy/internal/logger"
	"github.com/pcvolkmer/dnpm-kafka-rest-proxy/internal/metrics"
	"github.com/pcvolkmer/dnpm-kafka-rest-proxy/internal/utils"
)

type Services struct {
	PatientRecordService PatientRecordService
	HealthService        HealthService
}

func NewServices(publisher adapter.Publisher, metrics *metrics.Metrics, logger *logger.Logger) *Services {
	recordService := NewPatientRecordService(publisher, NewMessageComposer(utils.NewUUIDGenerator()), metrics, logger)

	return &Services{
		PatientRecordService: NewPatientRecordValidationService().Wrap(recordService),
		HealthService:        NewHealthService(publisher),
	}
}
