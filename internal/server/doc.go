// Package server runs the proxy's HTTP server.
//
// It owns the listener lifecycle: startup, signal handling (SIGTERM, SIGINT,
// SIGQUIT) and graceful shutdown that lets in-flight publishes finish.
package server
