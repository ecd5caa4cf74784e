package utils

import (
	"testing"

	"github.com/google/uuid"
)

func TestUUIDGenerator_GenerateV4(t *testing.T) {
	g := NewUUIDGenerator()

	seen := make(map[string]struct{})
	for range 100 {
		id := g.Generate()
		if len(id) != 36 {
			t.Fatalf("expected 36 characters, got %d (%q)", len(id), id)
		}

		parsed, err := uuid.Parse(id)
		if err != nil {
			t.Fatalf("generated id %q is not a uuid: %v", id, err)
		}
		if parsed.Version() != 4 {
			t.Fatalf("expected version 4, got %d", parsed.Version())
		}

		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = struct{}{}
	}
}
