package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in       time.Duration
		expected string
	}{
		{in: 1234567 * time.Microsecond, expected: "1.2s"},
		{in: 12345 * time.Microsecond, expected: "12.3ms"},
		{in: 1234 * time.Nanosecond, expected: "1.2µs"},
		{in: 5 * time.Nanosecond, expected: "5ns"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatDuration(tt.in))
		})
	}
}

func TestRequestContextMiddleware(t *testing.T) {
	api := newTestDeps().api()

	var seen uuid.UUID
	handler := api.requestContextMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := getRequestIdFromCtx(r.Context())
		require.True(t, ok)
		seen = id
		assert.NotSame(t, api.logger, api.getLoggerOrBaseLogger(r.Context()))
	}))

	t.Run("invalid incoming id is replaced", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(requestIdHeader, "not-a-uuid")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.NotEqual(t, uuid.Nil, seen)
		assert.Equal(t, seen.String(), w.Header().Get(requestIdHeader))
	})

	t.Run("base logger without request context", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)

		assert.Same(t, api.logger, api.getLoggerOrBaseLogger(req.Context()))
	})
}
