// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The dnpm-kafka-rest-proxy Authors

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the proxy.
// It is populated by merging built-in defaults, environment variables,
// command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix : prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Server holds the listen address and inbound timeouts.
	Server Server `envPrefix:"APP_"`

	// Kafka holds broker endpoints, topic, producer timeouts and TLS
	// material.
	Kafka Kafka `envPrefix:"APP_KAFKA_"`

	// Security holds the bcrypt hash of the shared ETL token.
	Security Security `envPrefix:"APP_"`

	// Log holds logger settings.
	Log Log `envPrefix:"APP_"`

	// Telemetry holds tracing settings.
	Telemetry Telemetry `envPrefix:"APP_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the APP_CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"APP_CONFIG"`
}

// Server holds network and timeout settings for the inbound HTTP server.
type Server struct {
	// Listen is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "[::]:3000").
	// Env: APP_LISTEN
	Listen string `env:"LISTEN"`

	// RequestTimeout bounds reading a single inbound request.
	// Env: APP_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Kafka holds producer settings.
type Kafka struct {
	// Servers are the bootstrap brokers in "host:port" format.
	// Env: APP_KAFKA_SERVERS (comma separated)
	Servers []string `env:"SERVERS" envSeparator:","`

	// Topic receives all patient records.
	// Env: APP_KAFKA_TOPIC
	Topic string `env:"TOPIC"`

	// SendTimeout bounds how long a request waits for the broker
	// acknowledgement before it is answered with an error.
	// Env: APP_KAFKA_SEND_TIMEOUT
	SendTimeout time.Duration `env:"SEND_TIMEOUT"`

	// DeliveryTimeout bounds the producer's internal retries for one record.
	// Env: APP_KAFKA_DELIVERY_TIMEOUT
	DeliveryTimeout time.Duration `env:"DELIVERY_TIMEOUT"`

	// SSL holds optional TLS material for the broker connection.
	SSL SSL `envPrefix:"SSL_"`
}

// SSL holds file based TLS material for the broker connection.
type SSL struct {
	// CAFile is a PEM bundle of additional trusted CAs.
	// Env: APP_KAFKA_SSL_CA_FILE
	CAFile string `env:"CA_FILE"`

	// CertFile is the PEM client certificate.
	// Env: APP_KAFKA_SSL_CERT_FILE
	CertFile string `env:"CERT_FILE"`

	// KeyFile is the PEM client key, optionally encrypted.
	// Env: APP_KAFKA_SSL_KEY_FILE
	KeyFile string `env:"KEY_FILE"`

	// KeyPassword decrypts KeyFile when it is encrypted.
	// Env: APP_KAFKA_SSL_KEY_PASSWORD
	KeyPassword string `env:"KEY_PASSWORD"`
}

// Enabled reports whether any TLS material is configured.
func (s SSL) Enabled() bool {
	return s.CAFile != "" || s.CertFile != "" || s.KeyFile != ""
}

// Security holds the credential settings.
type Security struct {
	// Token is the bcrypt hash of the shared ETL token. The plain token is
	// never part of the configuration.
	// Env: APP_SECURITY_TOKEN
	Token string `env:"SECURITY_TOKEN"`
}

// Log holds logger settings.
type Log struct {
	// Level is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	Level string `env:"LOG_LEVEL"`
}

// Telemetry holds tracing settings.
type Telemetry struct {
	// TracingEnabled exports spans to stdout.
	// Env: APP_TRACING_ENABLED
	TracingEnabled bool `env:"TRACING_ENABLED"`
}

// Default values applied before any other source.
const (
	DefaultListen          = "[::]:3000"
	DefaultKafkaServer     = "kafka:9094"
	DefaultTopic           = "etl-processor_input"
	DefaultSendTimeout     = time.Second
	DefaultDeliveryTimeout = 5 * time.Second
	DefaultRequestTimeout  = 10 * time.Second
	DefaultLogLevel        = "info"
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		Server: Server{
			Listen:         DefaultListen,
			RequestTimeout: DefaultRequestTimeout,
		},
		Kafka: Kafka{
			Servers:         []string{DefaultKafkaServer},
			Topic:           DefaultTopic,
			SendTimeout:     DefaultSendTimeout,
			DeliveryTimeout: DefaultDeliveryTimeout,
		},
		Log: Log{
			Level: DefaultLogLevel,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the proxy configuration
// from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
