package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/growth-valuation-api/pkg/log"
)

func TestLoggingMiddleware_CorrelationIDAndStatus(t *testing.T) {
	log.SetupTestLogger()

	var correlationID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		correlationID = log.GetCorrelationID(r.Context())
		w.WriteHeader(http.StatusTeapot)
	})

	rec := httptest.NewRecorder()
	LoggingMiddleware()(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/funnel/controls", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Len(t, correlationID, 36)
}

func TestLogPanicMiddleware(t *testing.T) {
	log.SetupTestLogger()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("falha inesperada")
	})

	rec := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		LogPanicMiddleware()(next).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/valuation/simulate", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestCors(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})
	cors := Cors([]string{"http://localhost:3000"})

	tests := []struct {
		name          string
		method        string
		origin        string
		expectedAllow string
		expectCalled  bool
	}{
		{name: "origem permitida", method: http.MethodPost, origin: "http://localhost:3000", expectedAllow: "http://localhost:3000", expectCalled: true},
		{name: "origem desconhecida", method: http.MethodPost, origin: "http://other.example", expectedAllow: "", expectCalled: true},
		{name: "preflight", method: http.MethodOptions, origin: "http://localhost:3000", expectedAllow: "http://localhost:3000", expectCalled: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called = false
			req := httptest.NewRequest(tt.method, "/v1/funnel/simulate", nil)
			req.Header.Set("Origin", tt.origin)
			rec := httptest.NewRecorder()

			cors(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedAllow, rec.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, tt.expectCalled, called)
		})
	}
}
