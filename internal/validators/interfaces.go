// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The dnpm-kafka-rest-proxy Authors

// Package validators holds the structural checks applied to decoded patient
// records before they are published.
//
// A [Validator] accepts a value and optionally a list of field names that
// limits which rules run. Services wrap their inner implementation with a
// validating decorator instead of checking inline.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
