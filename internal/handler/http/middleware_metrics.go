package http

import (
	"net/http"

	"github.com/pcvolkmer/dnpm-kafka-rest-proxy/internal/metrics"
)

// withMetrics counts finished patient record requests by method and outcome.
func (h *Handler) withMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(mw, r)

		h.metrics.ObserveRequest(r.Method, outcomeFromStatus(mw.Status()))
	})
}

func outcomeFromStatus(status int) string {
	switch status {
	case http.StatusAccepted:
		return metrics.OutcomeAccepted
	case http.StatusUnauthorized:
		return metrics.OutcomeUnauthorized
	case http.StatusUnsupportedMediaType:
		return metrics.OutcomeUnsupportedMediaType
	default:
		return metrics.OutcomeError
	}
}
