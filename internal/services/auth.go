package services

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/joaovitorrom/API-Sistema-Pets/internal/apperrors"
	"github.com/joaovitorrom/API-Sistema-Pets/internal/logger"
	"github.com/joaovitorrom/API-Sistema-Pets/internal/models"
)

// passwordCost is the bcrypt work factor for stored credentials.
const passwordCost = 12

// Field limits follow the users table; bcrypt reads at most 72 bytes of a password.
const (
	maxNameLength     = 100
	maxEmailLength    = 255
	maxPhoneLength    = 50
	maxPasswordLength = 72
)

// Error variables
var (
	ErrEmailAlreadyExists = fmt.Errorf("%w: email already registered", apperrors.ErrConflict)
	ErrInvalidCredentials = fmt.Errorf("%w: invalid email or password", apperrors.ErrAuthentication)
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error) // Returns nil when no user has the email
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, user *models.UserDB) error // Inserts a new user
}

// TokenGenerator issues access tokens.
type TokenGenerator interface {
	Generate(ctx context.Context, identity models.Identity) (string, error)
}

// RegisterInput holds the registration form.
type RegisterInput struct {
	Name            string
	Email           string
	Phone           string
	Password        string
	ConfirmPassword string
}

// Validate checks every field and reports all violations at once.
func (in RegisterInput) Validate() error {
	var v apperrors.Validator
	v.Check(in.Name != "", "name is required")
	checkEmail(&v, in.Email)
	v.Check(in.Phone != "", "phone is required")
	checkProfileLengths(&v, in.Name, in.Email, in.Phone, in.Password)
	v.Check(in.Password != "", "password is required")
	v.Check(in.ConfirmPassword != "", "confirmpassword is required")
	v.Check(in.Password == in.ConfirmPassword, "passwords do not match")
	return v.Err()
}

// checkEmail records a violation for a missing or malformed email.
func checkEmail(v *apperrors.Validator, email string) {
	v.Check(email != "", "email is required")
	if email != "" {
		v.Check(strings.Contains(email, "@") && strings.Contains(email, "."), "email is invalid")
	}
}

// checkProfileLengths records a violation for every field too long to store.
func checkProfileLengths(v *apperrors.Validator, name, email, phone, password string) {
	v.CheckLength(name, maxNameLength, "name")
	v.CheckLength(email, maxEmailLength, "email")
	v.CheckLength(phone, maxPhoneLength, "phone")
	v.Check(len(password) <= maxPasswordLength, fmt.Sprintf("password must be at most %d bytes", maxPasswordLength))
}

// AuthService handles registration and login.
type AuthService struct {
	reader UserReader
	writer UserWriter
	tokens TokenGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, tokens TokenGenerator) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		tokens: tokens,
	}
}

// Register creates a user and returns an access token for it.
func (svc *AuthService) Register(ctx context.Context, in RegisterInput) (string, uuid.UUID, error) {
	if err := in.Validate(); err != nil {
		return "", uuid.Nil, err
	}

	existing, err := svc.reader.GetByEmail(ctx, in.Email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "error", err)
		return "", uuid.Nil, err
	}
	if existing != nil {
		logger.Log.Infow("email already registered", "email", in.Email)
		return "", uuid.Nil, ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), passwordCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "error", err)
		return "", uuid.Nil, err
	}

	now := time.Now()
	user := &models.UserDB{
		ID:           uuid.New(),
		Name:         in.Name,
		Email:        in.Email,
		Phone:        in.Phone,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := svc.writer.Save(ctx, user); err != nil {
		logger.Log.Errorw("failed to save user", "email", in.Email, "error", err)
		return "", uuid.Nil, err
	}

	token, err := svc.tokens.Generate(ctx, user.Identity())
	if err != nil {
		logger.Log.Errorw("failed to generate token", "user_id", user.ID, "error", err)
		return "", uuid.Nil, err
	}

	return token, user.ID, nil
}

// Login authenticates a user and returns an access token.
func (svc *AuthService) Login(ctx context.Context, email, password string) (string, uuid.UUID, error) {
	var v apperrors.Validator
	checkEmail(&v, email)
	v.Check(password != "", "password is required")
	if err := v.Err(); err != nil {
		return "", uuid.Nil, err
	}

	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "error", err)
		return "", uuid.Nil, err
	}
	if user == nil {
		logger.Log.Infow("login for unknown email", "email", email)
		return "", uuid.Nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Infow("invalid credentials", "user_id", user.ID)
		return "", uuid.Nil, ErrInvalidCredentials
	}

	token, err := svc.tokens.Generate(ctx, user.Identity())
	if err != nil {
		logger.Log.Errorw("failed to generate token", "user_id", user.ID, "error", err)
		return "", uuid.Nil, err
	}

	return token, user.ID, nil
}
