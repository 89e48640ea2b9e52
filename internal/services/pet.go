package services

//go:generate mockgen -source=pet.go -destination=pet_mock.go -package=services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/joaovitorrom/API-Sistema-Pets/internal/adoption"
	"github.com/joaovitorrom/API-Sistema-Pets/internal/apperrors"
	"github.com/joaovitorrom/API-Sistema-Pets/internal/logger"
	"github.com/joaovitorrom/API-Sistema-Pets/internal/metrics"
	"github.com/joaovitorrom/API-Sistema-Pets/internal/models"
)

// ErrPetNotFound is returned when no pet has the requested id.
var ErrPetNotFound = fmt.Errorf("%w: pet not found", apperrors.ErrNotFound)

// PetReader defines read operations for pets.
type PetReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Pet, error) // Returns nil when no pet has the id
	List(ctx context.Context) ([]models.Pet, error)
	ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]models.Pet, error)
	ListByAdopter(ctx context.Context, adopterID uuid.UUID) ([]models.Pet, error)
}

// PetWriter defines write operations for pets.
type PetWriter interface {
	Save(ctx context.Context, pet *models.Pet) error
	Update(ctx context.Context, pet *models.Pet) error // Fails with a conflict when pet.Version is stale
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

// PetCache caches pets by id.
type PetCache interface {
	Get(ctx context.Context, id uuid.UUID) (*models.Pet, error)
	Set(ctx context.Context, pet *models.Pet) error // Keeps the cached pet when it has a higher version
	Delete(ctx context.Context, id uuid.UUID) error // Marks the pet removed until the entry expires
}

// EventPublisher publishes pet lifecycle events.
type EventPublisher interface {
	Publish(ctx context.Context, event models.PetEvent) error
}

// PetService runs the adoption lifecycle against the pet store.
type PetService struct {
	reader PetReader
	writer PetWriter
	cache  PetCache
	events EventPublisher
}

// NewPetService creates a new PetService. cache and events may be nil.
func NewPetService(reader PetReader, writer PetWriter, cache PetCache, events EventPublisher) *PetService {
	return &PetService{
		reader: reader,
		writer: writer,
		cache:  cache,
		events: events,
	}
}

// Create lists a new pet for adoption on behalf of creator.
func (s *PetService) Create(ctx context.Context, creator models.Identity, details adoption.Details) (*models.Pet, error) {
	pet, err := adoption.NewPet(creator, details, time.Now())
	if err == nil {
		err = s.writer.Save(ctx, pet)
	}
	metrics.ObserveLifecycle(metrics.OpCreate, err)
	if err != nil {
		logger.Log.Errorw("failed to create pet", "creator_id", creator.ID, "error", err)
		return nil, err
	}

	s.publish(ctx, models.PetCreated, pet.ID, creator.ID)
	return pet, nil
}

// GetAll returns every pet, newest first.
func (s *PetService) GetAll(ctx context.Context) ([]models.Pet, error) {
	pets, err := s.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list pets", "error", err)
		return nil, err
	}
	return pets, nil
}

// GetByCreator returns the pets listed by the user.
func (s *PetService) GetByCreator(ctx context.Context, creatorID uuid.UUID) ([]models.Pet, error) {
	pets, err := s.reader.ListByCreator(ctx, creatorID)
	if err != nil {
		logger.Log.Errorw("failed to list pets by creator", "creator_id", creatorID, "error", err)
		return nil, err
	}
	return pets, nil
}

// GetByAdopter returns the pets the user scheduled a visit to or adopted.
func (s *PetService) GetByAdopter(ctx context.Context, adopterID uuid.UUID) ([]models.Pet, error) {
	pets, err := s.reader.ListByAdopter(ctx, adopterID)
	if err != nil {
		logger.Log.Errorw("failed to list pets by adopter", "adopter_id", adopterID, "error", err)
		return nil, err
	}
	return pets, nil
}

// GetByID returns a pet, served from the cache when possible.
func (s *PetService) GetByID(ctx context.Context, id uuid.UUID) (*models.Pet, error) {
	if s.cache != nil {
		pet, err := s.cache.Get(ctx, id)
		if err == nil {
			metrics.ObserveCacheLookup(true)
			return pet, nil
		}
		metrics.ObserveCacheLookup(false)
		if !errors.Is(err, apperrors.ErrCacheMiss) {
			logger.Log.Warnw("pet cache unavailable, reading from database", "pet_id", id, "error", err)
		}
	}

	pet, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, pet); err != nil {
			logger.Log.Warnw("failed to cache pet", "pet_id", id, "error", err)
		}
	}
	return pet, nil
}

// Update replaces the pet details. available is applied only when non-nil.
func (s *PetService) Update(ctx context.Context, requester models.Identity, id uuid.UUID, details adoption.Details, available *bool) (*models.Pet, error) {
	return s.transition(ctx, metrics.OpUpdate, models.PetUpdated, requester, id, func(p *models.Pet) error {
		return adoption.Update(p, requester.ID, details, available)
	})
}

// ScheduleVisit reserves the pet for requester.
func (s *PetService) ScheduleVisit(ctx context.Context, requester models.Identity, id uuid.UUID) (*models.Pet, error) {
	return s.transition(ctx, metrics.OpSchedule, models.PetVisitScheduled, requester, id, func(p *models.Pet) error {
		return adoption.ScheduleVisit(p, requester)
	})
}

// ConcludeAdoption marks the pet as adopted.
func (s *PetService) ConcludeAdoption(ctx context.Context, requester models.Identity, id uuid.UUID) (*models.Pet, error) {
	return s.transition(ctx, metrics.OpConclude, models.PetAdoptionConcluded, requester, id, func(p *models.Pet) error {
		return adoption.ConcludeAdoption(p, requester.ID)
	})
}

// Remove deletes the pet. Only its creator may do so, whatever its state.
func (s *PetService) Remove(ctx context.Context, requester models.Identity, id uuid.UUID) error {
	pet, err := s.load(ctx, id)
	if err == nil {
		err = adoption.RequireCreator(pet, requester.ID)
	}
	if err == nil {
		err = s.writer.DeleteByID(ctx, id)
	}
	metrics.ObserveLifecycle(metrics.OpRemove, err)
	if err != nil {
		logger.Log.Errorw("failed to remove pet", "pet_id", id, "requester_id", requester.ID, "error", err)
		return err
	}

	s.evict(ctx, id)
	s.publish(ctx, models.PetRemoved, id, requester.ID)
	return nil
}

// transition loads the pet from the database, applies the change and stores it
// under the version it was loaded with.
func (s *PetService) transition(
	ctx context.Context,
	op, eventType string,
	requester models.Identity,
	id uuid.UUID,
	apply func(*models.Pet) error,
) (*models.Pet, error) {
	pet, err := s.load(ctx, id)
	if err == nil {
		err = apply(pet)
	}
	if err == nil {
		err = s.writer.Update(ctx, pet)
	}
	metrics.ObserveLifecycle(op, err)
	if err != nil {
		logger.Log.Errorw("pet transition failed", "operation", op, "pet_id", id, "requester_id", requester.ID, "error", err)
		return nil, err
	}

	s.refresh(ctx, pet)
	s.publish(ctx, eventType, id, requester.ID)
	return pet, nil
}

func (s *PetService) load(ctx context.Context, id uuid.UUID) (*models.Pet, error) {
	pet, err := s.reader.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if pet == nil {
		return nil, ErrPetNotFound
	}
	return pet, nil
}

// refresh replaces the cached pet with the version just written. The cache
// keeps whichever version is higher, so a concurrent read-through of the old
// row cannot overwrite it.
func (s *PetService) refresh(ctx context.Context, pet *models.Pet) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, pet); err != nil {
		logger.Log.Warnw("failed to refresh cached pet", "pet_id", pet.ID, "version", pet.Version, "error", err)
	}
}

func (s *PetService) evict(ctx context.Context, id uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, id); err != nil {
		logger.Log.Warnw("failed to evict cached pet", "pet_id", id, "error", err)
	}
}

// publish sends the event without failing the operation that produced it.
func (s *PetService) publish(ctx context.Context, eventType string, petID, actorID uuid.UUID) {
	if s.events == nil {
		return
	}

	event := models.PetEvent{
		EventID:   uuid.NewString(),
		PetID:     petID.String(),
		Type:      eventType,
		ActorID:   actorID.String(),
		Timestamp: time.Now().Unix(),
	}
	if err := s.events.Publish(ctx, event); err != nil {
		logger.Log.Warnw("failed to publish pet event", "event_id", event.EventID, "type", eventType, "error", err)
	}
}
