package handlers

//go:generate mockgen -source=user.go -destination=user_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/joaovitorrom/API-Sistema-Pets/internal/middlewares"
	"github.com/joaovitorrom/API-Sistema-Pets/internal/models"
	"github.com/joaovitorrom/API-Sistema-Pets/internal/services"
)

// UserGetter loads public user profiles.
type UserGetter interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.UserDB, error)
}

// UserEditor edits the caller's own profile.
type UserEditor interface {
	Update(ctx context.Context, requester models.Identity, id uuid.UUID, in services.UpdateUserInput) error
}

// UserDeleter deletes the caller's own account.
type UserDeleter interface {
	Delete(ctx context.Context, requester models.Identity, id uuid.UUID) error
}

// EditUserRequest represents the JSON body for a profile edit
// swagger:model EditUserRequest
type EditUserRequest struct {
	// required: true
	Name string `json:"name"`

	// required: true
	Email string `json:"email"`

	// required: true
	Phone string `json:"phone"`

	// New password, applied only together with a matching confirmpassword
	Password string `json:"password"`

	ConfirmPassword string `json:"confirmpassword"`
}

// NewCheckUserHandler returns the profile of the token holder, or null for anonymous callers.
// @Summary Current user
// @Description Returns the profile bound to the bearer token, or null when no token is sent
// @Tags users
// @Produce json
// @Success 200 {object} models.UserDB "Current user or null"
// @Failure 401 {object} handlers.ErrorResponse "Invalid token"
// @Router /users/check [get]
// @Security BearerAuth
func NewCheckUserHandler(svc UserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := middlewares.IdentityFromContext(r.Context())
		if !ok {
			writeJSON(w, http.StatusOK, nil)
			return
		}

		user, err := svc.GetByID(r.Context(), identity.ID)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, user)
	}
}

// NewGetUserHandler returns a public user profile.
// @Summary Get user
// @Tags users
// @Produce json
// @Param id path string true "User id"
// @Success 200 {object} models.UserDB "User profile"
// @Failure 400 {object} handlers.ErrorResponse "Invalid id"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /users/{id} [get]
func NewGetUserHandler(svc UserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		user, err := svc.GetByID(r.Context(), id)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, user)
	}
}

// NewEditUserHandler returns an HTTP handler for profile edits.
// @Summary Edit user
// @Description Edits the caller's own profile. Email must stay unique.
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User id"
// @Param editUserRequest body handlers.EditUserRequest true "New profile"
// @Success 200 {object} handlers.MessageResponse "User updated"
// @Failure 400 {object} handlers.ErrorResponse "Invalid id or body"
// @Failure 401 {object} handlers.ErrorResponse "Missing or invalid token"
// @Failure 403 {object} handlers.ErrorResponse "Not the caller's account"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 409 {object} handlers.ErrorResponse "Email already registered"
// @Failure 422 {object} handlers.ErrorResponse "Missing or malformed fields"
// @Router /users/{id} [patch]
// @Security BearerAuth
func NewEditUserHandler(svc UserEditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		var req EditUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeBadBody(w, err)
			return
		}

		identity, _ := middlewares.IdentityFromContext(r.Context())
		err = svc.Update(r.Context(), identity, id, services.UpdateUserInput{
			Name:            req.Name,
			Email:           req.Email,
			Phone:           req.Phone,
			Password:        req.Password,
			ConfirmPassword: req.ConfirmPassword,
		})
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "User updated successfully"})
	}
}

// NewDeleteUserHandler returns an HTTP handler that deletes the caller's account and pets.
// @Summary Delete user
// @Description Deletes the caller's own account together with every pet they listed
// @Tags users
// @Produce json
// @Param id path string true "User id"
// @Success 200 {object} handlers.MessageResponse "User deleted"
// @Failure 400 {object} handlers.ErrorResponse "Invalid id"
// @Failure 401 {object} handlers.ErrorResponse "Missing or invalid token"
// @Failure 403 {object} handlers.ErrorResponse "Not the caller's account"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /users/{id} [delete]
// @Security BearerAuth
func NewDeleteUserHandler(svc UserDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		identity, _ := middlewares.IdentityFromContext(r.Context())
		if err := svc.Delete(r.Context(), identity, id); err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "User deleted successfully"})
	}
}
