package service

import (
	"context"
	"fmt"
	"time"

	"github.com/pcvolkmer/dnpm-kafka-rest-proxy/internal/adapter"
	"github.com/pcvolkmer/dnpm-kafka-rest-proxy/internal/logger"
	"github.com/pcvolkmer/dnpm-kafka-rest-proxy/internal/metrics"
	"github.com/pcvolkmer/dnpm-kafka-rest-proxy/internal/utils"
	"github.com/pcvolkmer/dnpm-kafka-rest-proxy/models"
)

type patientRecordService struct {
	publisher adapter.Publisher
	composer  *MessageComposer
	metrics   *metrics.Metrics

	logger *logger.Logger
}

func NewPatientRecordService(publisher adapter.Publisher, composer *MessageComposer, metrics *metrics.Metrics, logger *logger.Logger) PatientRecordService {
	return &patientRecordService{
		publisher: publisher,
		composer:  composer,
		metrics:   metrics,
		logger:    logger,
	}
}

func (s *patientRecordService) Send(ctx context.Context, record models.PatientRecord) (string, error) {
	msg, err := s.composer.Compose(record)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrComposeFailed, err)
	}

	log := s.logger.With().Str("request_id", msg.RequestID).Logger()
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		log = log.With().Str("trace_id", traceID).Logger()
	}

	start := time.Now()
	id, err := s.publisher.Publish(ctx, msg)
	s.metrics.ObservePublish(start, err)
	if err != nil {
		log.Warn().Err(err).Dur("elapsed", time.Since(start)).Msg("record not confirmed by broker")
		return "", err
	}

	log.Debug().
		Str("patient_id", record.Patient.ID).
		Bool("consent", record.HasConsent()).
		Msg("record sent")

	return id, nil
}

func (s *patientRecordService) WithdrawConsent(ctx context.Context, patientID string) (string, error) {
	return s.Send(ctx, models.NewConsentWithdrawal(patientID))
}
