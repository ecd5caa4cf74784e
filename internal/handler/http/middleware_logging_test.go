package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestWithLogging(t *testing.T) {
	tests := []struct {
		name             string
		method           string
		path             string
		status           int
		body             string
		header           map[string]string
		checkLogContains []string
		checkLogOmits    []string
	}{
		{
			name:   "accepted post",
			method: http.MethodPost,
			path:   "/mtb/etl/patient-record",
			status: http.StatusAccepted,
			header: map[string]string{"Authorization": validAuthorization},
			checkLogContains: []string{
				`"method":"POST"`,
				`"uri":"/mtb/etl/patient-record"`,
				`"status":202`,
				`"size":0`,
				`"duration":`,
			},
			checkLogOmits: []string{"dG9rZW46dmVyeS1zZWNyZXQ="},
		},
		{
			name:   "unsupported media type",
			method: http.MethodPost,
			path:   "/mtb/etl/patient-record",
			status: http.StatusUnsupportedMediaType,
			body:   unsupportedMediaTypeMessage,
			checkLogContains: []string{
				`"status":415`,
				`"size":` + strconv.Itoa(len(unsupportedMediaTypeMessage)),
			},
		},
		{
			name:   "delete",
			method: http.MethodDelete,
			path:   "/mtb/etl/patient-record/P1",
			status: http.StatusAccepted,
			checkLogContains: []string{
				`"method":"DELETE"`,
				`"uri":"/mtb/etl/patient-record/P1"`,
			},
		},
		{
			name:             "handler writes nothing",
			method:           http.MethodGet,
			path:             "/health",
			checkLogContains: []string{`"status":200`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.status != 0 {
					w.WriteHeader(tt.status)
				}
				if tt.body != "" {
					_, _ = w.Write([]byte(tt.body))
				}
			})

			req := httptest.NewRequest(tt.method, tt.path, nil)
			for k, v := range tt.header {
				req.Header.Set(k, v)
			}
			req = req.WithContext(zerolog.New(&buf).WithContext(req.Context()))

			withLogging(next).ServeHTTP(httptest.NewRecorder(), req)

			out := buf.String()
			for _, want := range tt.checkLogContains {
				assert.Contains(t, out, want)
			}
			for _, omit := range tt.checkLogOmits {
				assert.NotContains(t, out, omit)
			}
		})
	}
}
