package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/joaovitorrom/API-Sistema-Pets/internal/adoption"
	"github.com/joaovitorrom/API-Sistema-Pets/internal/apperrors"
	"github.com/joaovitorrom/API-Sistema-Pets/internal/services"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
		wantDetails []string
	}{
		{
			name:        "invalid id",
			err:         apperrors.ErrInvalidID,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid id",
		},
		{
			name:        "validation",
			err:         &apperrors.ValidationError{Violations: []string{"name is required", "age is required"}},
			wantStatus:  http.StatusUnprocessableEntity,
			wantMessage: "name is required; age is required",
			wantDetails: []string{"name is required", "age is required"},
		},
		{
			name:        "authentication",
			err:         services.ErrInvalidCredentials,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "invalid email or password",
		},
		{
			name:        "authorization",
			err:         adoption.ErrOwnPet,
			wantStatus:  http.StatusForbidden,
			wantMessage: "cannot schedule a visit to your own pet",
		},
		{
			name:        "not found",
			err:         services.ErrPetNotFound,
			wantStatus:  http.StatusNotFound,
			wantMessage: "pet not found",
		},
		{
			name:        "conflict",
			err:         fmt.Errorf("schedule: %w", adoption.ErrNotAvailable),
			wantStatus:  http.StatusConflict,
			wantMessage: "pet is not available",
		},
		{
			name:        "internal errors are not leaked",
			err:         errors.New("pq: connection refused"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			writeError(rr, httptest.NewRequest(http.MethodGet, "/", nil), tt.err)

			var resp ErrorResponse
			decodeBody(t, rr, &resp)
			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantMessage, resp.Message)
			assert.Equal(t, tt.wantDetails, resp.Details)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
		})
	}
}
