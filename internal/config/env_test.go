// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The dnpm-kafka-rest-proxy Authors

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bcrypt hash of "very-secret".
const testTokenHash = "$2y$05$LIIFF4Rbi3iRVA4UIqxzPeTJ0NOn/cV2hDnSKFftAMzbEZRa42xSG"

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"APP_CONFIG": "/path/to/config.json",

		"APP_LISTEN":          "127.0.0.1:8080",
		"APP_REQUEST_TIMEOUT": "30s",

		"APP_KAFKA_SERVERS":          "broker-1:9092,broker-2:9092",
		"APP_KAFKA_TOPIC":            "mtb",
		"APP_KAFKA_SEND_TIMEOUT":     "2s",
		"APP_KAFKA_DELIVERY_TIMEOUT": "8s",

		"APP_KAFKA_SSL_CA_FILE":      "/etc/ssl/ca.pem",
		"APP_KAFKA_SSL_CERT_FILE":    "/etc/ssl/client.pem",
		"APP_KAFKA_SSL_KEY_FILE":     "/etc/ssl/client.key",
		"APP_KAFKA_SSL_KEY_PASSWORD": "changeit",

		"APP_SECURITY_TOKEN":  testTokenHash,
		"APP_LOG_LEVEL":       "debug",
		"APP_TRACING_ENABLED": "true",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "127.0.0.1:8080", cfg.Server.Listen)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)

	assert.Equal(t, []string{"broker-1:9092", "broker-2:9092"}, cfg.Kafka.Servers)
	assert.Equal(t, "mtb", cfg.Kafka.Topic)
	assert.Equal(t, 2*time.Second, cfg.Kafka.SendTimeout)
	assert.Equal(t, 8*time.Second, cfg.Kafka.DeliveryTimeout)
	assert.Equal(t, "/etc/ssl/ca.pem", cfg.Kafka.SSL.CAFile)
	assert.Equal(t, "/etc/ssl/client.pem", cfg.Kafka.SSL.CertFile)
	assert.Equal(t, "/etc/ssl/client.key", cfg.Kafka.SSL.KeyFile)
	assert.Equal(t, "changeit", cfg.Kafka.SSL.KeyPassword)

	assert.Equal(t, testTokenHash, cfg.Security.Token)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Telemetry.TracingEnabled)
}

func TestParseEnv_Empty(t *testing.T) {
	clearEnvVars(t)

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{"APP_KAFKA_SEND_TIMEOUT": "soon"})

	err := parseEnv(&StructuredConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

// clearEnvVars unsets every variable the config reads and restores the
// previous values when the test ends.
func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"APP_CONFIG",
		"APP_LISTEN",
		"APP_REQUEST_TIMEOUT",
		"APP_KAFKA_SERVERS",
		"APP_KAFKA_TOPIC",
		"APP_KAFKA_SEND_TIMEOUT",
		"APP_KAFKA_DELIVERY_TIMEOUT",
		"APP_KAFKA_SSL_CA_FILE",
		"APP_KAFKA_SSL_CERT_FILE",
		"APP_KAFKA_SSL_KEY_FILE",
		"APP_KAFKA_SSL_KEY_PASSWORD",
		"APP_SECURITY_TOKEN",
		"APP_LOG_LEVEL",
		"APP_TRACING_ENABLED",
		"APP_PROXY_URL",
		"APP_ETL_TOKEN",
		"APP_CLIENT_REQUEST_TIMEOUT",
	}
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}
