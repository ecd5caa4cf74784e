package handler

import (
	"fmt"

	"github.com/pcvolkmer/dnpm-kafka-rest-proxy/internal/config"
	"github.com/pcvolkmer/dnpm-kafka-rest-proxy/internal/crypto"
	"github.com/pcvolkmer/dnpm-kafka-rest-proxy/internal/handler/http"
	"github.com/pcvolkmer/dnpm-kafka-rest-proxy/internal/logger"
	"github.com/pcvolkmer/dnpm-kafka-rest-proxy/internal/metrics"
	"github.com/pcvolkmer/dnpm-kafka-rest-proxy/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the transport handlers. The credential verifier is
// created here from the configured bcrypt hash, so an unusable hash fails
// startup.
func NewHandlers(services *service.Services, cfg config.Security, metrics *metrics.Metrics, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	verifier, err := crypto.NewCredentialVerifier(cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCreatingHandlers, err)
	}

	return &Handlers{
		HTTP: http.NewHandler(services, verifier, metrics, logger),
	}, nil
}
