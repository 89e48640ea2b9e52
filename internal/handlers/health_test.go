package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHealthHandler(t *testing.T) {
	ok := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("dial tcp: connection refused") }

	t.Run("all checks pass", func(t *testing.T) {
		h := NewHealthHandler(map[string]HealthCheck{"postgres": ok, "redis": ok})
		rr := serve(t, h, http.MethodGet, "/health", "/health", nil, nil)

		var resp HealthResponse
		decodeBody(t, rr, &resp)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "ok", resp.Status)
		assert.Equal(t, map[string]string{"postgres": "ok", "redis": "ok"}, resp.Checks)
	})

	t.Run("one check fails", func(t *testing.T) {
		h := NewHealthHandler(map[string]HealthCheck{"postgres": ok, "redis": down})
		rr := serve(t, h, http.MethodGet, "/health", "/health", nil, nil)

		var resp HealthResponse
		decodeBody(t, rr, &resp)
		assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
		assert.Equal(t, "unavailable", resp.Status)
		assert.Equal(t, "ok", resp.Checks["postgres"])
		assert.Equal(t, "unavailable", resp.Checks["redis"])
		assert.NotContains(t, rr.Body.String(), "connection refused")
	})
}
