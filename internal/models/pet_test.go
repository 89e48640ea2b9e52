package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestPetDB_RoundTripKeepsSnapshots(t *testing.T) {
	now := time.Now().UTC()
	creator := Creator{ID: uuid.New(), Name: "Ana", Phone: "555-0101"}

	tests := []struct {
		name    string
		adopter *Adopter
	}{
		{name: "without adopter"},
		{name: "with adopter", adopter: &Adopter{ID: uuid.New(), Name: "Bruno"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pet := &Pet{
				ID:        uuid.New(),
				Name:      "Rex",
				Age:       3,
				Weight:    10,
				Color:     "brown",
				Available: true,
				Creator:   creator,
				Adopter:   tt.adopter,
				Version:   2,
				CreatedAt: now,
				UpdatedAt: now,
			}

			row := NewPetDB(pet)
			assert.Equal(t, tt.adopter != nil, row.AdopterID.Valid)
			assert.Equal(t, tt.adopter != nil, row.AdopterName.Valid)
			assert.Equal(t, pet, row.ToPet())
		})
	}
}
