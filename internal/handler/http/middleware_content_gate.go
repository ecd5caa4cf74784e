package http

import (
	"net/http"
	"slices"

	"github.com/pcvolkmer/dnpm-kafka-rest-proxy/models"
)

const unsupportedMediaTypeMessage = "This application accepts DNPM data model version 2.1 with content type " +
	"'" + models.ContentTypeJSON + "' or '" + models.ContentTypeMTB + "'"

// allowedContentTypes is matched exactly and case-sensitively. Parameters
// other than the listed charset are not normalized.
var allowedContentTypes = []string{
	models.ContentTypeJSON,
	models.ContentTypeJSONUTF8,
	models.ContentTypeMTB,
}

// acceptsContentType reports whether a declared Content-Type value is on the
// allow-list. A missing header is never accepted.
func acceptsContentType(declared string, present bool) bool {
	if !present {
		return false
	}
	return slices.Contains(allowedContentTypes, declared)
}

// withContentGate rejects requests with an unsupported Content-Type using
// 415 and a short guidance text. Body-less DELETE requests may omit the
// header; a DELETE that declares a type must still declare an allowed one.
func withContentGate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		values := r.Header.Values("Content-Type")
		present := len(values) > 0

		if r.Method == http.MethodDelete && !present {
			next.ServeHTTP(w, r)
			return
		}

		var declared string
		if present {
			declared = values[0]
		}

		if len(values) > 1 || !acceptsContentType(declared, present) {
			writeUnsupportedMediaType(w)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func writeUnsupportedMediaType(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusUnsupportedMediaType)
	_, _ = w.Write([]byte(unsupportedMediaTypeMessage))
}
