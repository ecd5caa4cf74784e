// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The dnpm-kafka-rest-proxy Authors

package crypto

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"
)

// TokenUser is the only user name accepted in Basic credentials.
const TokenUser = "token"

// ErrInvalidSecretHash is returned when a configured secret is not a bcrypt hash.
var ErrInvalidSecretHash = errors.New("secret is not a valid bcrypt hash")

// credentialVerifier is the bcrypt backed implementation of [CredentialVerifier].
type credentialVerifier struct {
	secretHash []byte
}

// NewCredentialVerifier constructs a [CredentialVerifier] for the given bcrypt
// hash ($2a$, $2b$ or $2y$). The hash is checked up front so a misconfigured
// proxy fails at startup instead of rejecting every request.
func NewCredentialVerifier(secretHash string) (CredentialVerifier, error) {
	if err := ValidateSecretHash(secretHash); err != nil {
		return nil, err
	}

	return &credentialVerifier{secretHash: []byte(secretHash)}, nil
}

// ValidateSecretHash reports whether secretHash is a usable bcrypt hash.
func ValidateSecretHash(secretHash string) error {
	if _, err := bcrypt.Cost([]byte(secretHash)); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSecretHash, err)
	}
	return nil
}

// Verify implements [CredentialVerifier].
func (v *credentialVerifier) Verify(authHeader string) bool {
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "basic") {
		return false
	}

	decoded, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil || !utf8.Valid(decoded) {
		return false
	}

	credentials := strings.Split(string(decoded), ":")
	if len(credentials) != 2 || credentials[0] != TokenUser {
		return false
	}

	// bcrypt failures (mismatch, oversized password) all mean "not authorized".
	return bcrypt.CompareHashAndPassword(v.secretHash, []byte(credentials[1])) == nil
}
