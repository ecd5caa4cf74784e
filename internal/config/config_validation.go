// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The dnpm-kafka-rest-proxy Authors

package config

import (
	"fmt"
	"net"

	"github.com/rs/zerolog"

	"github.com/pcvolkmer/dnpm-kafka-rest-proxy/internal/crypto"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// ErrInvalid* sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	if err := cfg.Server.validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidServerConfigs, err)
	}

	if err := cfg.Kafka.validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidKafkaConfigs, err)
	}

	if cfg.Security.Token == "" {
		return fmt.Errorf("%w: token hash is required", ErrInvalidSecurityConfigs)
	}
	if err := crypto.ValidateSecretHash(cfg.Security.Token); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSecurityConfigs, err)
	}

	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
	}

	return nil
}

func (s Server) validate() error {
	var listen NetAddress
	if err := listen.Set(s.Listen); err != nil {
		return fmt.Errorf("listen address %q: %w", s.Listen, err)
	}

	if s.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive")
	}

	return nil
}

func (k Kafka) validate() error {
	if len(k.Servers) == 0 {
		return fmt.Errorf("at least one bootstrap server is required")
	}
	for _, server := range k.Servers {
		if _, _, err := net.SplitHostPort(server); err != nil {
			return fmt.Errorf("bootstrap server %q: %w", server, err)
		}
	}

	if k.Topic == "" {
		return fmt.Errorf("topic is required")
	}

	if k.SendTimeout <= 0 || k.DeliveryTimeout <= 0 {
		return fmt.Errorf("send and delivery timeouts must be positive")
	}

	if (k.SSL.CertFile == "") != (k.SSL.KeyFile == "") {
		return fmt.Errorf("ssl cert file and key file must be set together")
	}
	if k.SSL.KeyPassword != "" && k.SSL.KeyFile == "" {
		return fmt.Errorf("ssl key password requires a key file")
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.ProxyURL == "" {
		return fmt.Errorf("%w: proxy url is required", ErrInvalidClientConfigs)
	}

	if cfg.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidClientConfigs)
	}

	if (cfg.RecordFile == "") == (cfg.WithdrawPatientID == "") {
		return fmt.Errorf("%w: exactly one of -file or -delete is required", ErrInvalidClientConfigs)
	}

	return nil
}
