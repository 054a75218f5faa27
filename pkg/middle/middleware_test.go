package middle

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestIDMiddleware(t *testing.T) {
	var seen string
	h := RequestIDMiddleware(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestID(r.Context())
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	require.NotEmpty(t, seen)
	assert.True(t, strings.HasPrefix(seen, "req-"))
	assert.Equal(t, seen, rr.Header().Get("X-Request-ID"))
}

func TestLoggingMiddlewareRecoversPanic(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	logger := zap.New(core)

	h := Chain(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { panic("boom") }),
		RequestIDMiddleware(logger),
		LoggingMiddleware(logger),
	)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/game/drop", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	require.Equal(t, 1, logs.FilterMessage("Internal Server Error").Len())

	entry := logs.FilterMessage("Request completed").All()
	require.Len(t, entry, 1)
	assert.Equal(t, int64(http.StatusInternalServerError), entry[0].ContextMap()["status"])
	assert.NotEmpty(t, entry[0].ContextMap()["request_id"])
}

func TestRequestLoggerFallback(t *testing.T) {
	fallback := zap.NewNop()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Same(t, fallback, RequestLogger(r.Context(), fallback))
}
