// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The dnpm-kafka-rest-proxy Authors

// Package adapter holds the proxy's outbound connections.
//
// [Publisher] is the Kafka side: one long-lived franz-go client shared by all
// requests ([NewKafkaPublisher]). [ProxyClient] is the HTTP side used by the
// command-line client to talk to a running proxy ([NewHTTPProxyClient]).
//
// Error values defined in errors.go let callers use [errors.Is] regardless of
// the transport (e.g. [ErrDeliveryFailed] for any failed publish,
// [ErrUnauthorized] for a 401 answer).
package adapter

import (
	"context"

	"github.com/pcvolkmer/dnpm-kafka-rest-proxy/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// Publisher delivers outbound messages to the broker.
type Publisher interface {
	// Publish produces msg and waits for the broker acknowledgement, bounded
	// by the configured send timeout. It returns the message's correlation id
	// on success. Every failure (timeout, broker error, closed client) wraps
	// [ErrDeliveryFailed]; the publisher stays usable afterwards.
	Publish(ctx context.Context, msg models.OutboundMessage) (string, error)

	// Ping checks that at least one broker answers.
	Ping(ctx context.Context) error
}

// ProxyClient submits patient records to a running proxy over HTTP.
type ProxyClient interface {
	// SendRecord posts an MTB JSON document and returns the request id the
	// proxy assigned to it.
	SendRecord(ctx context.Context, record []byte) (string, error)

	// WithdrawConsent requests a consent withdrawal for patientID and
	// returns the assigned request id.
	WithdrawConsent(ctx context.Context, patientID string) (string, error)
}
