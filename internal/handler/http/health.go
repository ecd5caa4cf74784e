package http

import (
	"net/http"

	"github.com/pcvolkmer/dnpm-kafka-rest-proxy/internal/logger"
	"github.com/pcvolkmer/dnpm-kafka-rest-proxy/internal/utils"
)

const (
	statusUp   = "UP"
	statusDown = "DOWN"
)

type healthStatus struct {
	Status string `json:"status"`
}

// health reports broker reachability: 200 {"status":"UP"} or
// 503 {"status":"DOWN"}.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := h.services.HealthService.Check(r.Context()); err != nil {
		log.Warn().Err(err).Msg("kafka not reachable")
		if _, err := utils.WriteJSON(w, healthStatus{Status: statusDown}, http.StatusServiceUnavailable); err != nil {
			log.Err(err).Msg("error writing health status")
		}
		return
	}

	if _, err := utils.WriteJSON(w, healthStatus{Status: statusUp}, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing health status")
	}
}
