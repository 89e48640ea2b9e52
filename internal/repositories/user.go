package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/joaovitorrom/API-Sistema-Pets/internal/apperrors"
	"github.com/joaovitorrom/API-Sistema-Pets/internal/models"
)

// ErrEmailTaken is returned when the unique email index rejects a write.
var ErrEmailTaken = fmt.Errorf("%w: email already registered", apperrors.ErrConflict)

const userColumns = `id, name, email, phone, password_hash, created_at, updated_at`

// UserReadRepository handles user read operations
type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByID returns nil without error when no user has the id.
func (r *UserReadRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.UserDB, error) {
	query := `SELECT ` + userColumns + `
		FROM users
		WHERE id = $1`
	return r.get(ctx, query, id)
}

// GetByEmail returns nil without error when no user has the email.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	query := `SELECT ` + userColumns + `
		FROM users
		WHERE email = $1`
	return r.get(ctx, query, email)
}

func (r *UserReadRepository) get(ctx context.Context, query string, arg any) (*models.UserDB, error) {
	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, arg)

	logQuery(query, []any{arg}, user.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UserWriteRepository handles user write operations
type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewUserWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a new user.
func (r *UserWriteRepository) Save(ctx context.Context, user *models.UserDB) error {
	query := `
		INSERT INTO users (id, name, email, phone, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	args := []any{user.ID, user.Name, user.Email, user.Phone, user.PasswordHash, user.CreatedAt, user.UpdatedAt}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	logQuery(query, maskPassword(args, 4), rowsAffected(res), err)

	if isUniqueViolation(err) {
		return ErrEmailTaken
	}
	return err
}

// Update overwrites the mutable user fields.
func (r *UserWriteRepository) Update(ctx context.Context, user *models.UserDB) error {
	query := `
		UPDATE users
		SET name = $2, email = $3, phone = $4, password_hash = $5, updated_at = $6
		WHERE id = $1
	`
	args := []any{user.ID, user.Name, user.Email, user.Phone, user.PasswordHash, user.UpdatedAt}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	logQuery(query, maskPassword(args, 4), rowsAffected(res), err)

	if isUniqueViolation(err) {
		return ErrEmailTaken
	}
	return err
}

// Delete removes the user with the given id.
func (r *UserWriteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `
		DELETE FROM users
		WHERE id = $1
	`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, id)
	logQuery(query, []any{id}, rowsAffected(res), err)

	return err
}

func maskPassword(args []any, i int) []any {
	masked := make([]any, len(args))
	copy(masked, args)
	masked[i] = "***"
	return masked
}

func rowsAffected(res sql.Result) int64 {
	if res == nil {
		return 0
	}
	n, _ := res.RowsAffected()
	return n
}
