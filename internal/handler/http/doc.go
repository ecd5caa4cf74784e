// Package http implements the HTTP transport layer of the proxy.
//
// It exposes route wiring, request handlers, and middleware for the patient
// record endpoints. Request tracing, access logging, request metrics, the
// content type gate and Basic authentication run in this package before a
// request is delegated to the service layer.
package http
