package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Creator is the snapshot of the user who listed a pet, copied at creation time.
type Creator struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Phone string    `json:"phone"`
}

// Adopter is the snapshot of the user holding a scheduled visit or adoption.
type Adopter struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// Pet is a pet listed for adoption.
// swagger:model Pet
type Pet struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Age       float64   `json:"age"`
	Weight    float64   `json:"weight"`
	Color     string    `json:"color"`
	Available bool      `json:"available"`
	Creator   Creator   `json:"user"`
	Adopter   *Adopter  `json:"adopter,omitempty"`
	Version   int64     `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PetDB represents a pet row in the database
type PetDB struct {
	ID           uuid.UUID      `db:"id"`
	Name         string         `db:"name"`
	Age          float64        `db:"age"`
	Weight       float64        `db:"weight"`
	Color        string         `db:"color"`
	Available    bool           `db:"available"`
	CreatorID    uuid.UUID      `db:"creator_id"`
	CreatorName  string         `db:"creator_name"`
	CreatorPhone string         `db:"creator_phone"`
	AdopterID    uuid.NullUUID  `db:"adopter_id"`
	AdopterName  sql.NullString `db:"adopter_name"`
	Version      int64          `db:"version"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

// NewPetDB flattens a pet into its row representation.
func NewPetDB(p *Pet) PetDB {
	row := PetDB{
		ID:           p.ID,
		Name:         p.Name,
		Age:          p.Age,
		Weight:       p.Weight,
		Color:        p.Color,
		Available:    p.Available,
		CreatorID:    p.Creator.ID,
		CreatorName:  p.Creator.Name,
		CreatorPhone: p.Creator.Phone,
		Version:      p.Version,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
	if p.Adopter != nil {
		row.AdopterID = uuid.NullUUID{UUID: p.Adopter.ID, Valid: true}
		row.AdopterName = sql.NullString{String: p.Adopter.Name, Valid: true}
	}
	return row
}

// ToPet rebuilds the pet with its creator and adopter snapshots.
func (r PetDB) ToPet() *Pet {
	p := &Pet{
		ID:        r.ID,
		Name:      r.Name,
		Age:       r.Age,
		Weight:    r.Weight,
		Color:     r.Color,
		Available: r.Available,
		Creator: Creator{
			ID:    r.CreatorID,
			Name:  r.CreatorName,
			Phone: r.CreatorPhone,
		},
		Version:   r.Version,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
	if r.AdopterID.Valid {
		p.Adopter = &Adopter{ID: r.AdopterID.UUID, Name: r.AdopterName.String}
	}
	return p
}
