package server

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/pcvolkmer/dnpm-kafka-rest-proxy/internal/config"
	"github.com/pcvolkmer/dnpm-kafka-rest-proxy/internal/handler"
	"github.com/pcvolkmer/dnpm-kafka-rest-proxy/internal/logger"
	"github.com/pcvolkmer/dnpm-kafka-rest-proxy/internal/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandlers(t *testing.T) *handler.Handlers {
	t.Helper()

	handlers, err := handler.NewHandlers(nil, config.Security{
		Token: "$2y$05$LIIFF4Rbi3iRVA4UIqxzPeTJ0NOn/cV2hDnSKFftAMzbEZRa42xSG",
	}, metrics.New(), logger.Nop())
	require.NoError(t, err)
	return handlers
}

func TestNewServer_NoHandler(t *testing.T) {
	s, err := NewServer(nil, config.Server{Listen: "127.0.0.1:0"}, logger.Nop())

	assert.ErrorIs(t, err, ErrNoHandler)
	assert.Nil(t, s)
}

func TestServer_RunStopsOnContextCancel(t *testing.T) {
	s, err := NewServer(newTestHandlers(t), config.Server{Listen: "127.0.0.1:0", RequestTimeout: time.Second}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServer_RunFailsOnBusyAddress(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = ln.Close() })

	s, err := NewServer(newTestHandlers(t), config.Server{Listen: ln.Addr().String()}, logger.Nop())
	require.NoError(t, err)

	err = s.Run(context.Background())
	assert.ErrorIs(t, err, ErrListen)
}

func TestHTTPServer_ServesRequests(t *testing.T) {
	h := newHTTPServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}), config.Server{Listen: "127.0.0.1:0", RequestTimeout: time.Second}, logger.Nop())

	ln, err := h.listen()
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- h.serve(ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusTeapot, resp.StatusCode)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, h.shutdown(ctx))
	assert.NoError(t, <-done)
}
