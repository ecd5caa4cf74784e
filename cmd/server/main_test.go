package main

import (
	"context"
	"testing"

	"github.com/pcvolkmer/dnpm-kafka-rest-proxy/internal/adapter"
	"github.com/pcvolkmer/dnpm-kafka-rest-proxy/internal/config"
	"github.com/pcvolkmer/dnpm-kafka-rest-proxy/internal/logger"
	"github.com/pcvolkmer/dnpm-kafka-rest-proxy/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
)

func TestRun_ReturnsStartupErrorAfterCleanup(t *testing.T) {
	previous := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(previous) })

	cfg := &config.StructuredConfig{
		Kafka: config.Kafka{
			Servers:         []string{config.DefaultKafkaServer},
			Topic:           config.DefaultTopic,
			SendTimeout:     config.DefaultSendTimeout,
			DeliveryTimeout: config.DefaultDeliveryTimeout,
			SSL:             config.SSL{CAFile: "/does/not/exist.pem"},
		},
		Telemetry: config.Telemetry{TracingEnabled: true},
	}

	err := run(cfg, models.NewAppBuildInfo("", "", ""), logger.Nop())
	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrInvalidTLSMaterial)

	// the deferred tracer shutdown has run: the installed provider no longer records
	_, span := otel.Tracer("test").Start(context.Background(), "after-run")
	defer span.End()
	assert.False(t, span.IsRecording())
}
