package http

import (
	"github.com/pcvolkmer/dnpm-kafka-rest-proxy/internal/crypto"
	"github.com/pcvolkmer/dnpm-kafka-rest-proxy/internal/logger"
	"github.com/pcvolkmer/dnpm-kafka-rest-proxy/internal/metrics"
	"github.com/pcvolkmer/dnpm-kafka-rest-proxy/internal/service"
)

// maxRecordBytes caps a POST body. Full MTB records stay well below it.
const maxRecordBytes int64 = 64 << 20

type Handler struct {
	services     *service.Services
	verifier     crypto.CredentialVerifier
	metrics      *metrics.Metrics
	maxBodyBytes int64

	logger *logger.Logger
}

func NewHandler(services *service.Services, verifier crypto.CredentialVerifier, metrics *metrics.Metrics, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:     services,
		verifier:     verifier,
		metrics:      metrics,
		maxBodyBytes: maxRecordBytes,
		logger:       logger,
	}
}
