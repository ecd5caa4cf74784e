package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twmb/franz-go/pkg/kgo"

	"github.com/pcvolkmer/dnpm-kafka-rest-proxy/internal/config"
	"github.com/pcvolkmer/dnpm-kafka-rest-proxy/internal/logger"
	"github.com/pcvolkmer/dnpm-kafka-rest-proxy/models"
)

// unreachableBroker refuses connections immediately.
const unreachableBroker = "127.0.0.1:1"

func testMessage() models.OutboundMessage {
	return models.OutboundMessage{
		RequestID: "1d5f8a4e-2b1c-4b6f-9a43-2a9c3c1f0e11",
		Key:       []byte(`{"pid":"p1"}`),
		Payload:   []byte(`{"patient":{"id":"p1"}}`),
		Headers:   map[string]string{models.RequestIDHeader: "1d5f8a4e-2b1c-4b6f-9a43-2a9c3c1f0e11"},
	}
}

func newUnreachablePublisher(t *testing.T, sendTimeout time.Duration) *KafkaPublisher {
	t.Helper()

	p, err := newKafkaPublisher(config.Kafka{
		Servers:         []string{unreachableBroker},
		Topic:           "etl-processor_input",
		SendTimeout:     sendTimeout,
		DeliveryTimeout: 5 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = p.Close(ctx)
	})

	return p
}

func TestNewRecord(t *testing.T) {
	msg := testMessage()
	msg.Headers["b-header"] = "b"

	record := newRecord("etl-processor_input", msg)

	assert.Equal(t, "etl-processor_input", record.Topic)
	assert.Equal(t, msg.Key, record.Key)
	assert.Equal(t, msg.Payload, record.Value)
	assert.Equal(t, []kgo.RecordHeader{
		{Key: "b-header", Value: []byte("b")},
		{Key: models.RequestIDHeader, Value: []byte(msg.RequestID)},
	}, record.Headers)
}

// TestKafkaPublisher_PublishTimesOut verifies that the wait for the broker is
// bounded by the send timeout and the publisher keeps working afterwards.
func TestKafkaPublisher_PublishTimesOut(t *testing.T) {
	p := newUnreachablePublisher(t, 200*time.Millisecond)

	for range 2 {
		start := time.Now()
		id, err := p.Publish(context.Background(), testMessage())

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrDeliveryFailed)
		assert.Empty(t, id)
		assert.Less(t, time.Since(start), 3*time.Second)
	}
}

func TestKafkaPublisher_PublishCanceledContext(t *testing.T) {
	p := newUnreachablePublisher(t, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Publish(ctx, testMessage())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDeliveryFailed)
}

func TestKafkaPublisher_PingUnreachable(t *testing.T) {
	p := newUnreachablePublisher(t, time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	assert.Error(t, p.Ping(ctx))
}

func TestNewKafkaPublisher_FailsWithoutBroker(t *testing.T) {
	p, err := NewKafkaPublisher(config.Kafka{
		Servers:         []string{unreachableBroker},
		Topic:           "etl-processor_input",
		SendTimeout:     time.Second,
		DeliveryTimeout: 300 * time.Millisecond,
	}, logger.Nop())

	require.Error(t, err)
	assert.Nil(t, p)
}

func TestNewKafkaPublisher_InvalidTLSMaterial(t *testing.T) {
	p, err := newKafkaPublisher(config.Kafka{
		Servers:         []string{unreachableBroker},
		Topic:           "etl-processor_input",
		SendTimeout:     time.Second,
		DeliveryTimeout: time.Second,
		SSL:             config.SSL{CAFile: "/does/not/exist.pem"},
	}, logger.Nop())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidTLSMaterial)
	assert.Nil(t, p)
}

func TestKafkaLogger(t *testing.T) {
	tests := []struct {
		level zerolog.Level
		want  kgo.LogLevel
	}{
		{level: zerolog.TraceLevel, want: kgo.LogLevelDebug},
		{level: zerolog.DebugLevel, want: kgo.LogLevelDebug},
		{level: zerolog.InfoLevel, want: kgo.LogLevelInfo},
		{level: zerolog.WarnLevel, want: kgo.LogLevelWarn},
		{level: zerolog.ErrorLevel, want: kgo.LogLevelError},
		{level: zerolog.Disabled, want: kgo.LogLevelNone},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			l := &logger.Logger{Logger: zerolog.New(&bytes.Buffer{}).Level(tt.level)}
			assert.Equal(t, tt.want, newKafkaLogger(l).Level())
		})
	}
}

func TestKafkaLogger_LogFields(t *testing.T) {
	var buf bytes.Buffer
	l := &logger.Logger{Logger: zerolog.New(&buf).Level(zerolog.InfoLevel)}

	kl := newKafkaLogger(l)
	kl.Log(kgo.LogLevelWarn, "connection failed", "broker", "1", "err", "refused")
	kl.Log(kgo.LogLevelDebug, "suppressed")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "connection failed", entry["message"])
	assert.Equal(t, "kafka", entry["component"])
	assert.Equal(t, "1", entry["broker"])
	assert.Equal(t, "refused", entry["err"])
}
