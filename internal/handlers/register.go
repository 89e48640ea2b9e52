package handlers

//go:generate mockgen -source=register.go -destination=register_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/joaovitorrom/API-Sistema-Pets/internal/services"
)

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, in services.RegisterInput) (string, uuid.UUID, error)
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Display name
	// required: true
	// default: Ana
	Name string `json:"name"`

	// Email, unique among users
	// required: true
	// default: ana@example.com
	Email string `json:"email"`

	// Contact phone
	// required: true
	// default: 11999990000
	Phone string `json:"phone"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`

	// Password confirmation, must match password
	// required: true
	// default: secret123
	ConfirmPassword string `json:"confirmpassword"`
}

// AuthResponse is returned after registration and login
// swagger:model AuthResponse
type AuthResponse struct {
	// Success message
	// default: You are authenticated
	Message string `json:"message"`

	// Bearer token
	Token string `json:"token"`

	// Authenticated user id
	UserID uuid.UUID `json:"user_id"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a user account with a unique email and returns a bearer token. Passwords are stored as bcrypt hashes.
// @Tags users
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 201 {object} handlers.AuthResponse "User registered and authenticated"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 409 {object} handlers.ErrorResponse "Email already registered"
// @Failure 422 {object} handlers.ErrorResponse "Missing or malformed fields"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /users/register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeBadBody(w, err)
			return
		}

		token, userID, err := svc.Register(r.Context(), services.RegisterInput{
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

		writeJSON(w, http.StatusCreated, AuthResponse{
			Message: "You are authenticated",
			Token:   token,
			UserID:  userID,
		})
	}
}
