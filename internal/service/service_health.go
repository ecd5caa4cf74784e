package service

import (
	"context"
	"time"

	"github.com/pcvolkmer/dnpm-kafka-rest-proxy/internal/adapter"
)

// healthCheckTimeout bounds a single broker ping.
const healthCheckTimeout = time.Second

type healthService struct {
	publisher adapter.Publisher
}

func NewHealthService(publisher adapter.Publisher) HealthService {
	return &healthService{publisher: publisher}
}

func (h *healthService) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()

	return h.publisher.Ping(ctx)
}
