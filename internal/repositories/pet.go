package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/joaovitorrom/API-Sistema-Pets/internal/apperrors"
	"github.com/joaovitorrom/API-Sistema-Pets/internal/models"
)

// ErrPetModified is returned when the pet changed since it was loaded.
var ErrPetModified = fmt.Errorf("%w: pet was modified concurrently, reload and retry", apperrors.ErrConflict)

const petColumns = `id, name, age, weight, color, available,
	creator_id, creator_name, creator_phone, adopter_id, adopter_name,
	version, created_at, updated_at`

// PetReadRepository handles pet read operations
type PetReadRepository struct {
	db *sqlx.DB
}

func NewPetReadRepository(db *sqlx.DB) *PetReadRepository {
	return &PetReadRepository{db: db}
}

// GetByID returns nil without error when no pet has the id.
func (r *PetReadRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Pet, error) {
	query := `SELECT ` + petColumns + `
		FROM pets
		WHERE id = $1`

	var row models.PetDB
	err := r.db.GetContext(ctx, &row, query, id)

	logQuery(query, []any{id}, row.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return row.ToPet(), nil
}

// List returns all pets, newest first.
func (r *PetReadRepository) List(ctx context.Context) ([]models.Pet, error) {
	query := `SELECT ` + petColumns + `
		FROM pets
		ORDER BY created_at DESC`
	return r.list(ctx, query)
}

// ListByCreator returns the pets listed by the user, newest first.
func (r *PetReadRepository) ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]models.Pet, error) {
	query := `SELECT ` + petColumns + `
		FROM pets
		WHERE creator_id = $1
		ORDER BY created_at DESC`
	return r.list(ctx, query, creatorID)
}

// ListByAdopter returns the pets the user scheduled or adopted, newest first.
func (r *PetReadRepository) ListByAdopter(ctx context.Context, adopterID uuid.UUID) ([]models.Pet, error) {
	query := `SELECT ` + petColumns + `
		FROM pets
		WHERE adopter_id = $1
		ORDER BY created_at DESC`
	return r.list(ctx, query, adopterID)
}

func (r *PetReadRepository) list(ctx context.Context, query string, args ...any) ([]models.Pet, error) {
	var rows []models.PetDB
	err := r.db.SelectContext(ctx, &rows, query, args...)

	logQuery(query, args, len(rows), err)

	if err != nil {
		return nil, err
	}

	pets := make([]models.Pet, 0, len(rows))
	for _, row := range rows {
		pets = append(pets, *row.ToPet())
	}
	return pets, nil
}

// PetWriteRepository handles pet write operations
type PetWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewPetWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *PetWriteRepository {
	return &PetWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a new pet at version 1.
func (r *PetWriteRepository) Save(ctx context.Context, pet *models.Pet) error {
	query := `
		INSERT INTO pets (` + petColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, 1, $12, $13)
	`
	row := models.NewPetDB(pet)
	args := []any{
		row.ID, row.Name, row.Age, row.Weight, row.Color, row.Available,
		row.CreatorID, row.CreatorName, row.CreatorPhone, row.AdopterID, row.AdopterName,
		row.CreatedAt, row.UpdatedAt,
	}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	logQuery(query, args, rowsAffected(res), err)

	if err != nil {
		return err
	}
	pet.Version = 1
	return nil
}

// Update writes the mutable fields of pet if its version is still current,
// then advances pet.Version and pet.UpdatedAt.
func (r *PetWriteRepository) Update(ctx context.Context, pet *models.Pet) error {
	query := `
		UPDATE pets
		SET name = $2, age = $3, weight = $4, color = $5, available = $6,
		    adopter_id = $7, adopter_name = $8,
		    version = version + 1, updated_at = NOW()
		WHERE id = $1 AND version = $9
		RETURNING version, updated_at
	`
	row := models.NewPetDB(pet)
	args := []any{
		row.ID, row.Name, row.Age, row.Weight, row.Color, row.Available,
		row.AdopterID, row.AdopterName, row.Version,
	}

	var result struct {
		Version   int64     `db:"version"`
		UpdatedAt time.Time `db:"updated_at"`
	}
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &result, query, args...)

	logQuery(query, args, result.Version, err)

	if errors.Is(err, sql.ErrNoRows) {
		return ErrPetModified
	}
	if err != nil {
		return err
	}

	pet.Version = result.Version
	pet.UpdatedAt = result.UpdatedAt
	return nil
}

// DeleteByID removes the pet with the given id.
func (r *PetWriteRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	query := `
		DELETE FROM pets
		WHERE id = $1
	`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, id)
	logQuery(query, []any{id}, rowsAffected(res), err)

	return err
}

// DeleteByCreator removes every pet listed by the user and returns their ids.
func (r *PetWriteRepository) DeleteByCreator(ctx context.Context, creatorID uuid.UUID) ([]uuid.UUID, error) {
	query := `
		DELETE FROM pets
		WHERE creator_id = $1
		RETURNING id
	`

	var ids []uuid.UUID
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &ids, query, creatorID)

	logQuery(query, []any{creatorID}, len(ids), err)

	if err != nil {
		return nil, err
	}
	return ids, nil
}
