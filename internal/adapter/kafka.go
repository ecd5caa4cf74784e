// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The dnpm-kafka-rest-proxy Authors

package adapter

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/twmb/franz-go/pkg/kadm"
	"github.com/twmb/franz-go/pkg/kgo"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/pcvolkmer/dnpm-kafka-rest-proxy/internal/config"
	"github.com/pcvolkmer/dnpm-kafka-rest-proxy/internal/logger"
	"github.com/pcvolkmer/dnpm-kafka-rest-proxy/models"
)

// KafkaPublisher is the franz-go backed [Publisher]. It owns one kgo.Client
// for the process lifetime; the client is safe for concurrent use, so a
// single publisher serves all requests.
type KafkaPublisher struct {
	client *kgo.Client
	admin  *kadm.Client

	topic       string
	sendTimeout time.Duration

	tracer trace.Tracer
	logger *logger.Logger
}

// NewKafkaPublisher creates the Kafka client and pings the cluster. A failed
// ping closes the client and is returned, so the proxy does not start without
// a reachable broker.
func NewKafkaPublisher(cfg config.Kafka, logger *logger.Logger) (*KafkaPublisher, error) {
	p, err := newKafkaPublisher(cfg, logger)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.DeliveryTimeout)
	defer cancel()

	if err = p.Ping(ctx); err != nil {
		p.client.Close()
		return nil, fmt.Errorf("kafka brokers %v not reachable: %w", cfg.Servers, err)
	}

	return p, nil
}

// newKafkaPublisher builds the publisher without contacting the cluster.
func newKafkaPublisher(cfg config.Kafka, logger *logger.Logger) (*KafkaPublisher, error) {
	opts := []kgo.Opt{
		kgo.SeedBrokers(cfg.Servers...),
		kgo.DefaultProduceTopic(cfg.Topic),
		kgo.RecordDeliveryTimeout(cfg.DeliveryTimeout),
		kgo.WithLogger(newKafkaLogger(logger)),
	}

	if cfg.SSL.Enabled() {
		tlsCfg, err := loadTLSConfig(cfg.SSL)
		if err != nil {
			return nil, err
		}
		opts = append(opts, kgo.DialTLSConfig(tlsCfg))
	}

	client, err := kgo.NewClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("create kafka client: %w", err)
	}

	return &KafkaPublisher{
		client:      client,
		admin:       kadm.NewClient(client),
		topic:       cfg.Topic,
		sendTimeout: cfg.SendTimeout,
		tracer:      otel.Tracer("github.com/pcvolkmer/dnpm-kafka-rest-proxy/internal/adapter"),
		logger:      logger,
	}, nil
}

// Publish implements [Publisher].
func (p *KafkaPublisher) Publish(ctx context.Context, msg models.OutboundMessage) (string, error) {
	ctx, span := p.tracer.Start(ctx, "kafka.publish", trace.WithSpanKind(trace.SpanKindProducer),
		trace.WithAttributes(
			attribute.String("messaging.system", "kafka"),
			attribute.String("messaging.destination.name", p.topic),
			attribute.String("messaging.message.id", msg.RequestID),
		))
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, p.sendTimeout)
	defer cancel()

	var produced *kgo.Record
	done := make(chan error, 1)
	p.client.Produce(ctx, newRecord(p.topic, msg), func(r *kgo.Record, err error) {
		produced = r
		done <- err
	})

	var err error
	select {
	case err = <-done:
	case <-ctx.Done():
		err = ctx.Err()
	}

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "delivery failed")
		return "", fmt.Errorf("%w: %w", ErrDeliveryFailed, err)
	}

	p.logger.Debug().
		Str("request_id", msg.RequestID).
		Int32("partition", produced.Partition).
		Int64("offset", produced.Offset).
		Msg("record acknowledged")

	return msg.RequestID, nil
}

func newRecord(topic string, msg models.OutboundMessage) *kgo.Record {
	headers := make([]kgo.RecordHeader, 0, len(msg.Headers))
	for _, key := range slices.Sorted(maps.Keys(msg.Headers)) {
		headers = append(headers, kgo.RecordHeader{Key: key, Value: []byte(msg.Headers[key])})
	}

	return &kgo.Record{
		Topic:   topic,
		Key:     msg.Key,
		Value:   msg.Payload,
		Headers: headers,
	}
}

// Ping implements [Publisher].
func (p *KafkaPublisher) Ping(ctx context.Context) error {
	return p.client.Ping(ctx)
}

// CheckTopic reports [ErrTopicNotFound] when the configured topic does not
// exist. Brokers may auto-create topics, so callers usually only warn.
func (p *KafkaPublisher) CheckTopic(ctx context.Context) error {
	details, err := p.admin.ListTopics(ctx, p.topic)
	if err != nil {
		return fmt.Errorf("list kafka topics: %w", err)
	}

	detail, ok := details[p.topic]
	if !ok || detail.Err != nil {
		return fmt.Errorf("%w: %s", ErrTopicNotFound, p.topic)
	}

	return nil
}

// Close flushes records still buffered, bounded by ctx, and closes the client.
func (p *KafkaPublisher) Close(ctx context.Context) error {
	err := p.client.Flush(ctx)
	p.client.Close()
	if err != nil {
		return fmt.Errorf("flush kafka client: %w", err)
	}
	return nil
}
