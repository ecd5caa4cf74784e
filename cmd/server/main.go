package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/pcvolkmer/dnpm-kafka-rest-proxy/internal/adapter"
	"github.com/pcvolkmer/dnpm-kafka-rest-proxy/internal/config"
	"github.com/pcvolkmer/dnpm-kafka-rest-proxy/internal/handler"
	"github.com/pcvolkmer/dnpm-kafka-rest-proxy/internal/logger"
	"github.com/pcvolkmer/dnpm-kafka-rest-proxy/internal/metrics"
	"github.com/pcvolkmer/dnpm-kafka-rest-proxy/internal/server"
	"github.com/pcvolkmer/dnpm-kafka-rest-proxy/internal/service"
	"github.com/pcvolkmer/dnpm-kafka-rest-proxy/internal/telemetry"
	"github.com/pcvolkmer/dnpm-kafka-rest-proxy/models"
)

const serviceName = "dnpm-kafka-rest-proxy"

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		logger.NewLogger(serviceName, config.DefaultLogLevel).Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger(serviceName, cfg.Log.Level)
	if err := run(cfg, buildInfo, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}

// run wires the proxy and blocks until the server stops. Deferred cleanup
// (producer flush, tracer shutdown) runs before it returns, also on error.
func run(cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, log *logger.Logger) error {
	log.Debug().
		Strs("kafka_servers", cfg.Kafka.Servers).
		Str("topic", cfg.Kafka.Topic).
		Str("listen", cfg.Server.Listen).
		Bool("ssl", cfg.Kafka.SSL.Enabled()).
		Msg("received configs")

	if cfg.Telemetry.TracingEnabled {
		shutdownTracer, err := telemetry.InitTracer(serviceName, buildInfo.BuildVersion(), log)
		if err != nil {
			return fmt.Errorf("initialize tracer: %w", err)
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdownTracer(ctx); err != nil {
				log.Err(err).Msg("error shutting down tracer")
			}
		}()
	}

	m := metrics.New()

	publisher, err := adapter.NewKafkaPublisher(cfg.Kafka, log)
	if err != nil {
		return fmt.Errorf("connect to kafka: %w", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Kafka.DeliveryTimeout)
		defer cancel()
		if err := publisher.Close(ctx); err != nil {
			log.Err(err).Msg("error closing kafka publisher")
		}
	}()

	checkCtx, cancelCheck := context.WithTimeout(context.Background(), cfg.Kafka.DeliveryTimeout)
	if err := publisher.CheckTopic(checkCtx); err != nil {
		if errors.Is(err, adapter.ErrTopicNotFound) {
			log.Warn().Str("topic", cfg.Kafka.Topic).Msg("topic does not exist yet, relying on auto creation")
		} else {
			log.Warn().Err(err).Msg("cannot verify topic")
		}
	}
	cancelCheck()

	services := service.NewServices(publisher, m, log)

	handlers, err := handler.NewHandlers(services, cfg.Security, m, log)
	if err != nil {
		return fmt.Errorf("create handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("create server: %w", err)
	}

	return srv.Run(context.Background())
}
