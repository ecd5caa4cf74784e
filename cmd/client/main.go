package main

import (
	"context"
	"fmt"
	"os"

	"github.com/pcvolkmer/dnpm-kafka-rest-proxy/internal/adapter"
	"github.com/pcvolkmer/dnpm-kafka-rest-proxy/internal/config"
	"github.com/pcvolkmer/dnpm-kafka-rest-proxy/internal/logger"
	"github.com/pcvolkmer/dnpm-kafka-rest-proxy/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Fprint(os.Stderr, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewClientLogger("dnpm-proxy-client", config.DefaultLogLevel)
	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	proxy, err := adapter.NewHTTPProxyClient(*cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create proxy client")
	}

	ctx := context.Background()

	var requestID string
	if cfg.WithdrawPatientID != "" {
		requestID, err = proxy.WithdrawConsent(ctx, cfg.WithdrawPatientID)
	} else {
		var record []byte
		record, err = os.ReadFile(cfg.RecordFile)
		if err != nil {
			log.Fatal().Err(err).Str("file", cfg.RecordFile).Msg("read record file")
		}
		requestID, err = proxy.SendRecord(ctx, record)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("request not accepted")
	}

	// stdout carries only the request id so it can be captured by scripts
	fmt.Println(requestID)
}
