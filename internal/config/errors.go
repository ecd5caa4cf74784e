package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] and
// [ClientConfig.validate] when required configuration groups are incomplete
// or invalid.
var (
	// ErrInvalidServerConfigs indicates an unusable listen address or timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidKafkaConfigs indicates missing brokers or topic, non-positive
	// timeouts, or incomplete TLS material.
	ErrInvalidKafkaConfigs = errors.New("invalid kafka configuration")
	// ErrInvalidSecurityConfigs indicates a missing or non-bcrypt token hash.
	ErrInvalidSecurityConfigs = errors.New("invalid security configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
	// ErrInvalidClientConfigs indicates invalid command-line client settings
	// (for example, missing proxy URL or both a file and a patient id).
	ErrInvalidClientConfigs = errors.New("invalid client configuration")
)
