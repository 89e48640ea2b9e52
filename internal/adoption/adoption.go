// Package adoption holds the pet lifecycle state machine and the ownership rules
// attached to each transition. It works on loaded pet values only; loading and
// persisting belong to the caller.
//
// States:
//
//	created   available, no adopter
//	reserved  available, adopter set by ScheduleVisit
//	concluded not available, terminal for ScheduleVisit
package adoption

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/joaovitorrom/API-Sistema-Pets/internal/apperrors"
	"github.com/joaovitorrom/API-Sistema-Pets/internal/models"
)

// State is the lifecycle state of a pet.
type State string

const (
	StateCreated   State = "created"
	StateReserved  State = "reserved"
	StateConcluded State = "concluded"
)

// Transition failures.
var (
	ErrOwnPet           = fmt.Errorf("%w: cannot schedule a visit to your own pet", apperrors.ErrAuthorization)
	ErrNotCreator       = fmt.Errorf("%w: only the pet creator can do this", apperrors.ErrAuthorization)
	ErrAlreadyScheduled = fmt.Errorf("%w: visit already scheduled by this user", apperrors.ErrConflict)
	ErrNotAvailable     = fmt.Errorf("%w: pet is not available", apperrors.ErrConflict)
)

// Column widths of the pets table.
const (
	MaxNameLength  = 100
	MaxColorLength = 50
)

// Details are the descriptive fields of a pet supplied on create and update.
type Details struct {
	Name   string
	Age    float64
	Weight float64
	Color  string
}

// Validate checks every field and reports all violations at once.
func (d Details) Validate() error {
	var v apperrors.Validator
	v.Check(d.Name != "", "name is required")
	v.CheckLength(d.Name, MaxNameLength, "name")
	v.Check(d.Age != 0, "age is required")
	v.Check(d.Age >= 0, "age must be a positive number")
	v.Check(d.Weight != 0, "weight is required")
	v.Check(d.Weight >= 0, "weight must be a positive number")
	v.Check(d.Color != "", "color is required")
	v.CheckLength(d.Color, MaxColorLength, "color")
	return v.Err()
}

// StateOf derives the lifecycle state from the availability flag and adopter snapshot.
func StateOf(p *models.Pet) State {
	switch {
	case !p.Available:
		return StateConcluded
	case p.Adopter != nil:
		return StateReserved
	default:
		return StateCreated
	}
}

// NewPet builds an available pet owned by creator. Nothing is built when details are invalid.
func NewPet(creator models.Identity, d Details, now time.Time) (*models.Pet, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	return &models.Pet{
		ID:        uuid.New(),
		Name:      d.Name,
		Age:       d.Age,
		Weight:    d.Weight,
		Color:     d.Color,
		Available: true,
		Creator: models.Creator{
			ID:    creator.ID,
			Name:  creator.Name,
			Phone: creator.Phone,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// RequireCreator fails unless requesterID is the pet's creator.
func RequireCreator(p *models.Pet, requesterID uuid.UUID) error {
	if p.Creator.ID != requesterID {
		return ErrNotCreator
	}
	return nil
}

// ScheduleVisit reserves the pet for requester.
// A pending reservation by another user is replaced.
func ScheduleVisit(p *models.Pet, requester models.Identity) error {
	if p.Creator.ID == requester.ID {
		return ErrOwnPet
	}
	if p.Adopter != nil && p.Adopter.ID == requester.ID && p.Available {
		return ErrAlreadyScheduled
	}
	if !p.Available {
		return ErrNotAvailable
	}

	p.Adopter = &models.Adopter{ID: requester.ID, Name: requester.Name}
	return nil
}

// ConcludeAdoption marks the pet as adopted. The adopter snapshot is left untouched
// and may be absent. Concluding an adopted pet again is allowed.
func ConcludeAdoption(p *models.Pet, requesterID uuid.UUID) error {
	if err := RequireCreator(p, requesterID); err != nil {
		return err
	}

	p.Available = false
	return nil
}

// Update replaces the pet details. When available is non-nil it is applied as is,
// which lets the creator reopen or close adoption outside ScheduleVisit and
// ConcludeAdoption.
func Update(p *models.Pet, requesterID uuid.UUID, d Details, available *bool) error {
	if err := RequireCreator(p, requesterID); err != nil {
		return err
	}
	if err := d.Validate(); err != nil {
		return err
	}

	p.Name = d.Name
	p.Age = d.Age
	p.Weight = d.Weight
	p.Color = d.Color
	if available != nil {
		p.Available = *available
	}
	return nil
}
