package http

import (
	"errors"
	"fmt"
	"testing"

	"github.com/pcvolkmer/dnpm-kafka-rest-proxy/internal/adapter"
	"github.com/pcvolkmer/dnpm-kafka-rest-proxy/internal/service"
	"github.com/stretchr/testify/assert"
)

func TestReasonFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "malformed body", err: fmt.Errorf("%w: eof", ErrMalformedBody), want: reasonMalformedBody},
		{name: "body too large", err: fmt.Errorf("%w: limit 64 bytes", ErrBodyTooLarge), want: reasonBodyTooLarge},
		{name: "invalid patient id", err: fmt.Errorf("%w: invalid URL escape", ErrInvalidPatientID), want: reasonPatientID},
		{name: "invalid record", err: fmt.Errorf("%w: empty id", service.ErrInvalidPatientRecord), want: reasonInvalidRecord},
		{name: "compose", err: service.ErrComposeFailed, want: reasonCompose},
		{name: "delivery", err: fmt.Errorf("%w: context deadline exceeded", adapter.ErrDeliveryFailed), want: reasonNotConfirmed},
		{name: "other", err: errors.New("boom"), want: reasonUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, reasonFromError(tt.err))
		})
	}
}
