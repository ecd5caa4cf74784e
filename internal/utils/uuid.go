package utils

import "github.com/google/uuid"

// UUIDGenerator produces random (version 4) UUIDs in their canonical
// 36-character form. Request ids must not leak timing, so v4 is used
// instead of the time-ordered v7.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	return uuid.NewString()
}
