package adapter

import "errors"

var (
	// ErrDeliveryFailed is wrapped by every unsuccessful [Publisher.Publish].
	ErrDeliveryFailed = errors.New("kafka delivery failed")
	// ErrTopicNotFound is returned by the startup topic check.
	ErrTopicNotFound = errors.New("kafka topic not found")
	// ErrInvalidTLSMaterial marks unreadable or malformed CA, certificate or key files.
	ErrInvalidTLSMaterial = errors.New("invalid tls material")

	ErrUnauthorized         = errors.New("client unauthorized")
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrNotFound             = errors.New("not found")
	ErrInternalServerError  = errors.New("internal server error")
)
