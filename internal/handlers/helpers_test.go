package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/joaovitorrom/API-Sistema-Pets/internal/middlewares"
	"github.com/joaovitorrom/API-Sistema-Pets/internal/models"
)

var caller = models.Identity{ID: uuid.New(), Name: "Ana", Phone: "11999990000"}

// serve routes one request through a chi router so path parameters resolve.
// A non-nil identity is attached the way AuthMiddleware does it.
func serve(t *testing.T, h http.HandlerFunc, method, pattern, target string, body any, identity *models.Identity) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewBuffer(data)
	}

	r := chi.NewRouter()
	r.Method(method, pattern, h)

	req := httptest.NewRequest(method, target, reader)
	if identity != nil {
		req = req.WithContext(middlewares.WithIdentity(req.Context(), *identity))
	}
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), v))
}
