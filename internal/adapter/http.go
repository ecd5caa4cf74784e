package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/pcvolkmer/dnpm-kafka-rest-proxy/internal/config"
	"github.com/pcvolkmer/dnpm-kafka-rest-proxy/internal/crypto"
	"github.com/pcvolkmer/dnpm-kafka-rest-proxy/internal/logger"
	"github.com/pcvolkmer/dnpm-kafka-rest-proxy/internal/utils"
	"github.com/pcvolkmer/dnpm-kafka-rest-proxy/models"
)

type httpProxyClient struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPProxyClient constructs the resty backed [ProxyClient]. The base URL
// is normalised (a missing scheme defaults to http) and every request carries
// Basic credentials for the "token" user.
//
// Returns an error if cfg.ProxyURL is empty or cannot be parsed as a URL.
func NewHTTPProxyClient(cfg config.ClientConfig, logger *logger.Logger) (ProxyClient, error) {
	baseURL, err := normalizeBaseURL(cfg.ProxyURL)
	if err != nil {
		return nil, fmt.Errorf("invalid proxy url: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, cfg.RequestTimeout)
	client.SetBasicAuth(crypto.TokenUser, cfg.Token)

	return &httpProxyClient{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SendRecord implements [ProxyClient]. It POSTs record unchanged with
// Content-Type application/json.
func (h *httpProxyClient) SendRecord(ctx context.Context, record []byte) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", models.ContentTypeJSON).
		SetBody(record).
		Post(models.PatientRecordPath)
	if err != nil {
		return "", fmt.Errorf("send record request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	requestID := resp.Header().Get(models.RequestIDResponseHeader)
	h.logger.Debug().Str("request_id", requestID).Msg("record accepted")

	return requestID, nil
}

// WithdrawConsent implements [ProxyClient]. The patient id is path-escaped.
func (h *httpProxyClient) WithdrawConsent(ctx context.Context, patientID string) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("patientId", patientID).
		Delete(models.PatientRecordPath + "/{patientId}")
	if err != nil {
		return "", fmt.Errorf("withdraw consent request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	requestID := resp.Header().Get(models.RequestIDResponseHeader)
	h.logger.Debug().Str("request_id", requestID).Msg("consent withdrawal accepted")

	return requestID, nil
}
