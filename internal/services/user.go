package services

//go:generate mockgen -source=user.go -destination=user_mock.go -package=services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/joaovitorrom/API-Sistema-Pets/internal/apperrors"
	"github.com/joaovitorrom/API-Sistema-Pets/internal/logger"
	"github.com/joaovitorrom/API-Sistema-Pets/internal/models"
)

var (
	ErrUserNotFound     = fmt.Errorf("%w: user not found", apperrors.ErrNotFound)
	ErrNotAccountHolder = fmt.Errorf("%w: you can only change your own account", apperrors.ErrAuthorization)
)

// UserDirectory defines the user lookups needed for profile management.
type UserDirectory interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.UserDB, error)    // Returns nil when no user has the id
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error) // Returns nil when no user has the email
}

// UserModifier defines profile writes.
type UserModifier interface {
	Update(ctx context.Context, user *models.UserDB) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// CreatorPetsRemover deletes every pet listed by a user.
type CreatorPetsRemover interface {
	DeleteByCreator(ctx context.Context, creatorID uuid.UUID) ([]uuid.UUID, error) // Returns the deleted pet ids
}

// PetCacheInvalidator marks cached pets as removed. A marked pet is not cached
// again until the marker expires, even by reads that saw the row before commit.
type PetCacheInvalidator interface {
	Delete(ctx context.Context, id uuid.UUID) error
}

// UpdateUserInput holds the profile edit form. The password is only changed
// when Password and ConfirmPassword are both set and equal.
type UpdateUserInput struct {
	Name            string
	Email           string
	Phone           string
	Password        string
	ConfirmPassword string
}

func (in UpdateUserInput) Validate() error {
	var v apperrors.Validator
	v.Check(in.Name != "", "name is required")
	checkEmail(&v, in.Email)
	v.Check(in.Phone != "", "phone is required")
	checkProfileLengths(&v, in.Name, in.Email, in.Phone, in.Password)
	v.Check(in.Password == in.ConfirmPassword, "passwords do not match")
	return v.Err()
}

// UserService manages user profiles.
type UserService struct {
	users UserDirectory
	store UserModifier
	pets  CreatorPetsRemover
	cache PetCacheInvalidator
}

// NewUserService creates a new UserService. cache may be nil.
func NewUserService(users UserDirectory, store UserModifier, pets CreatorPetsRemover, cache PetCacheInvalidator) *UserService {
	return &UserService{
		users: users,
		store: store,
		pets:  pets,
		cache: cache,
	}
}

// GetByID returns the user profile.
func (svc *UserService) GetByID(ctx context.Context, id uuid.UUID) (*models.UserDB, error) {
	user, err := svc.users.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", id, "error", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// accountOf loads the user with id and checks it belongs to requester.
func (svc *UserService) accountOf(ctx context.Context, requester models.Identity, id uuid.UUID) (*models.UserDB, error) {
	user, err := svc.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user.ID != requester.ID {
		logger.Log.Infow("account access denied", "user_id", id, "requester_id", requester.ID)
		return nil, ErrNotAccountHolder
	}
	return user, nil
}

// Update edits the requester's own profile.
func (svc *UserService) Update(ctx context.Context, requester models.Identity, id uuid.UUID, in UpdateUserInput) error {
	user, err := svc.accountOf(ctx, requester, id)
	if err != nil {
		return err
	}
	if err := in.Validate(); err != nil {
		return err
	}

	if in.Email != user.Email {
		other, err := svc.users.GetByEmail(ctx, in.Email)
		if err != nil {
			logger.Log.Errorw("failed to check email", "error", err)
			return err
		}
		if other != nil && other.ID != user.ID {
			return ErrEmailAlreadyExists
		}
	}

	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), passwordCost)
		if err != nil {
			logger.Log.Errorw("failed to hash password", "error", err)
			return err
		}
		user.PasswordHash = string(hash)
	}

	user.Name = in.Name
	user.Email = in.Email
	user.Phone = in.Phone
	user.UpdatedAt = time.Now()

	if err := svc.store.Update(ctx, user); err != nil {
		logger.Log.Errorw("failed to update user", "user_id", id, "error", err)
		return err
	}
	return nil
}

// Delete removes the requester's account and every pet they listed.
// Both deletes share the request transaction when one is bound to ctx.
func (svc *UserService) Delete(ctx context.Context, requester models.Identity, id uuid.UUID) error {
	user, err := svc.accountOf(ctx, requester, id)
	if err != nil {
		return err
	}

	petIDs, err := svc.pets.DeleteByCreator(ctx, user.ID)
	if err != nil {
		logger.Log.Errorw("failed to delete user pets", "user_id", id, "error", err)
		return err
	}

	if err := svc.store.Delete(ctx, user.ID); err != nil {
		logger.Log.Errorw("failed to delete user", "user_id", id, "error", err)
		return err
	}

	// Runs before the transaction commits; on rollback the pets are only served uncached.
	if svc.cache != nil {
		for _, petID := range petIDs {
			if err := svc.cache.Delete(ctx, petID); err != nil {
				logger.Log.Warnw("failed to evict cached pet", "pet_id", petID, "error", err)
			}
		}
	}

	logger.Log.Infow("user deleted", "user_id", id, "pets_deleted", len(petIDs))
	return nil
}
