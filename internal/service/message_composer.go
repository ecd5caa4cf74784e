package service

import (
	"encoding/json"
	"fmt"

	"github.com/pcvolkmer/dnpm-kafka-rest-proxy/models"
)

// MessageComposer turns a decoded record into the Kafka message produced for
// it. It is stateless apart from the id generator and safe for concurrent use.
type MessageComposer struct {
	ids IDGenerator
}

func NewMessageComposer(ids IDGenerator) *MessageComposer {
	return &MessageComposer{ids: ids}
}

// Compose serializes record and assigns a fresh correlation id. Equal records
// yield equal keys and payloads but always different correlation ids.
func (c *MessageComposer) Compose(record models.PatientRecord) (models.OutboundMessage, error) {
	key, err := json.Marshal(models.RecordKey{PatientID: record.Patient.ID})
	if err != nil {
		return models.OutboundMessage{}, fmt.Errorf("marshal record key: %w", err)
	}

	payload, err := json.Marshal(record)
	if err != nil {
		return models.OutboundMessage{}, fmt.Errorf("marshal record: %w", err)
	}

	requestID := c.ids.Generate()

	return models.OutboundMessage{
		RequestID: requestID,
		Key:       key,
		Payload:   payload,
		Headers:   map[string]string{models.RequestIDHeader: requestID},
	}, nil
}
