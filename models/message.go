package models

// RequestIDHeader is the name of the Kafka record header carrying the
// correlation id of the HTTP request that produced the record.
const RequestIDHeader = "requestId"

// RecordKey is the structured Kafka record key. It is serialized as JSON
// instead of using the bare patient id so consumers can evolve the key.
type RecordKey struct {
	PatientID string `json:"pid"`
}

// OutboundMessage is everything needed to produce one Kafka record for an
// accepted request. It is built once per request and never modified.
type OutboundMessage struct {
	// RequestID is the correlation id returned to the HTTP caller as
	// X-Request-Id and sent as the requestId record header.
	RequestID string

	// Key is the JSON encoded [RecordKey].
	Key []byte

	// Payload is the JSON encoded [PatientRecord].
	Payload []byte

	// Headers are the record headers, keyed by header name.
	Headers map[string]string
}
