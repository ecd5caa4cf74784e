package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/pcvolkmer/dnpm-kafka-rest-proxy/models"
)

const patientIDParam = "patientId"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/health", h.health)
		r.Handle("/metrics", h.metrics.Handler())
	})

	// content type is checked before the credentials
	router.Route(models.PatientRecordPath, func(r chi.Router) {
		guarded := r.With(h.withMetrics, withContentGate, h.auth)

		guarded.Post("/", h.sendPatientRecord)
		guarded.Delete("/{"+patientIDParam+"}", h.withdrawConsent)
	})

	return router
}
