package http

import (
	"net/http"

	"github.com/pcvolkmer/dnpm-kafka-rest-proxy/internal/logger"
)

const (
	authorizationHeader   = "Authorization"
	wwwAuthenticateHeader = "WWW-Authenticate"
	basicRealm            = `Basic realm="DNPM Kafka Rest Proxy Realm"`
)

// auth is an HTTP middleware that enforces the shared ETL token.
//
// The "Authorization" header is handed to the [crypto.CredentialVerifier]
// as is. Any rejection, whether the header is missing, malformed or carries
// the wrong secret, answers 401 Unauthorized with an empty body and a
// WWW-Authenticate challenge. The reason is not distinguished.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.verifier.Verify(r.Header.Get(authorizationHeader)) {
			logger.FromRequest(r).Warn().
				Bool("header_present", r.Header.Get(authorizationHeader) != "").
				Msg("request not authorized")

			w.Header().Set(wwwAuthenticateHeader, basicRealm)
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}
