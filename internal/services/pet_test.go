package services_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joaovitorrom/API-Sistema-Pets/internal/adoption"
	"github.com/joaovitorrom/API-Sistema-Pets/internal/apperrors"
	"github.com/joaovitorrom/API-Sistema-Pets/internal/models"
	"github.com/joaovitorrom/API-Sistema-Pets/internal/services"
)

var rexDetails = adoption.Details{Name: "Rex", Age: 2, Weight: 10, Color: "black"}

var (
	alice = models.Identity{ID: uuid.New(), Name: "Alice", Phone: "1111"}
	bob   = models.Identity{ID: uuid.New(), Name: "Bob", Phone: "2222"}
	carol = models.Identity{ID: uuid.New(), Name: "Carol", Phone: "3333"}
)

// --- In-memory pet store with versioned updates ---
type memoryPets struct {
	mu   sync.Mutex
	pets map[uuid.UUID]models.Pet
}

func newMemoryPets() *memoryPets {
	return &memoryPets{pets: map[uuid.UUID]models.Pet{}}
}

func (s *memoryPets) GetByID(_ context.Context, id uuid.UUID) (*models.Pet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.pets[id]
	if !ok {
		return nil, nil
	}
	if p.Adopter != nil {
		a := *p.Adopter
		p.Adopter = &a
	}
	return &p, nil
}

func (s *memoryPets) List(context.Context) ([]models.Pet, error) { return nil, nil }

func (s *memoryPets) ListByCreator(context.Context, uuid.UUID) ([]models.Pet, error) {
	return nil, nil
}

func (s *memoryPets) ListByAdopter(context.Context, uuid.UUID) ([]models.Pet, error) {
	return nil, nil
}

func (s *memoryPets) Save(_ context.Context, pet *models.Pet) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	pet.Version = 1
	s.pets[pet.ID] = *pet
	return nil
}

func (s *memoryPets) Update(_ context.Context, pet *models.Pet) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pets[pet.ID].Version != pet.Version {
		return fmt.Errorf("%w: pet was modified concurrently", apperrors.ErrConflict)
	}
	pet.Version++
	s.pets[pet.ID] = *pet
	return nil
}

func (s *memoryPets) DeleteByID(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.pets, id)
	return nil
}

func TestPetService_RexScenario(t *testing.T) {
	store := newMemoryPets()
	svc := services.NewPetService(store, store, nil, nil)
	ctx := context.Background()

	rex, err := svc.Create(ctx, alice, rexDetails)
	require.NoError(t, err)
	assert.True(t, rex.Available)
	assert.Nil(t, rex.Adopter)
	assert.Equal(t, alice.ID, rex.Creator.ID)

	_, err = svc.ScheduleVisit(ctx, alice, rex.ID)
	assert.ErrorIs(t, err, adoption.ErrOwnPet)

	pet, err := svc.ScheduleVisit(ctx, bob, rex.ID)
	require.NoError(t, err)
	assert.Equal(t, &models.Adopter{ID: bob.ID, Name: "Bob"}, pet.Adopter)

	_, err = svc.ScheduleVisit(ctx, bob, rex.ID)
	assert.ErrorIs(t, err, adoption.ErrAlreadyScheduled)

	_, err = svc.ConcludeAdoption(ctx, bob, rex.ID)
	assert.ErrorIs(t, err, apperrors.ErrAuthorization)

	pet, err = svc.ConcludeAdoption(ctx, alice, rex.ID)
	require.NoError(t, err)
	assert.False(t, pet.Available)
	assert.Equal(t, bob.ID, pet.Adopter.ID)

	_, err = svc.ScheduleVisit(ctx, carol, rex.ID)
	assert.ErrorIs(t, err, adoption.ErrNotAvailable)

	assert.ErrorIs(t, svc.Remove(ctx, bob, rex.ID), apperrors.ErrAuthorization)
	require.NoError(t, svc.Remove(ctx, alice, rex.ID))

	_, err = svc.ScheduleVisit(ctx, carol, rex.ID)
	assert.ErrorIs(t, err, services.ErrPetNotFound)
}

func TestPetService_ConcurrentSchedulesOneWins(t *testing.T) {
	store := newMemoryPets()
	svc := services.NewPetService(store, store, nil, nil)
	ctx := context.Background()

	rex, err := svc.Create(ctx, alice, rexDetails)
	require.NoError(t, err)

	// Both requesters load version 1 before either writes.
	first, _ := store.GetByID(ctx, rex.ID)
	second, _ := store.GetByID(ctx, rex.ID)
	require.NoError(t, adoption.ScheduleVisit(first, bob))
	require.NoError(t, adoption.ScheduleVisit(second, carol))

	require.NoError(t, store.Update(ctx, first))
	assert.ErrorIs(t, store.Update(ctx, second), apperrors.ErrConflict)

	stored, _ := store.GetByID(ctx, rex.ID)
	assert.Equal(t, bob.ID, stored.Adopter.ID)
}

func TestPetService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	reader := services.NewMockPetReader(ctrl)
	writer := services.NewMockPetWriter(ctrl)
	events := services.NewMockEventPublisher(ctrl)
	svc := services.NewPetService(reader, writer, nil, events)
	ctx := context.Background()

	t.Run("publishes event", func(t *testing.T) {
		writer.EXPECT().Save(ctx, gomock.Any()).Return(nil)
		events.EXPECT().Publish(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, e models.PetEvent) error {
			assert.Equal(t, models.PetCreated, e.Type)
			assert.Equal(t, alice.ID.String(), e.ActorID)
			return errors.New("broker down")
		})

		pet, err := svc.Create(ctx, alice, rexDetails)
		require.NoError(t, err)
		assert.Equal(t, "Rex", pet.Name)
		assert.Equal(t, models.Creator{ID: alice.ID, Name: "Alice", Phone: "1111"}, pet.Creator)
	})

	t.Run("invalid details are not stored", func(t *testing.T) {
		_, err := svc.Create(ctx, alice, adoption.Details{Name: "Rex"})

		var verr *apperrors.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, []string{"age is required", "weight is required", "color is required"}, verr.Violations)
	})

	t.Run("store error", func(t *testing.T) {
		writer.EXPECT().Save(ctx, gomock.Any()).Return(errors.New("db error"))

		_, err := svc.Create(ctx, alice, rexDetails)
		assert.EqualError(t, err, "db error")
	})
}

func TestPetService_GetByID(t *testing.T) {
	ctx := context.Background()
	pet := &models.Pet{ID: uuid.New(), Name: "Rex", Available: true, Version: 2}

	t.Run("cache hit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cache := services.NewMockPetCache(ctrl)
		svc := services.NewPetService(services.NewMockPetReader(ctrl), services.NewMockPetWriter(ctrl), cache, nil)

		cache.EXPECT().Get(ctx, pet.ID).Return(pet, nil)

		got, err := svc.GetByID(ctx, pet.ID)
		require.NoError(t, err)
		assert.Equal(t, pet, got)
	})

	t.Run("cache miss fills cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reader := services.NewMockPetReader(ctrl)
		cache := services.NewMockPetCache(ctrl)
		svc := services.NewPetService(reader, services.NewMockPetWriter(ctrl), cache, nil)

		gomock.InOrder(
			cache.EXPECT().Get(ctx, pet.ID).Return(nil, apperrors.ErrCacheMiss),
			reader.EXPECT().GetByID(ctx, pet.ID).Return(pet, nil),
			cache.EXPECT().Set(ctx, pet).Return(nil),
		)

		got, err := svc.GetByID(ctx, pet.ID)
		require.NoError(t, err)
		assert.Equal(t, pet, got)
	})

	t.Run("cache down falls back to database", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reader := services.NewMockPetReader(ctrl)
		cache := services.NewMockPetCache(ctrl)
		svc := services.NewPetService(reader, services.NewMockPetWriter(ctrl), cache, nil)

		cache.EXPECT().Get(ctx, pet.ID).Return(nil, errors.New("dial tcp: refused"))
		reader.EXPECT().GetByID(ctx, pet.ID).Return(pet, nil)
		cache.EXPECT().Set(ctx, pet).Return(errors.New("dial tcp: refused"))

		got, err := svc.GetByID(ctx, pet.ID)
		require.NoError(t, err)
		assert.Equal(t, pet, got)
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reader := services.NewMockPetReader(ctrl)
		svc := services.NewPetService(reader, services.NewMockPetWriter(ctrl), nil, nil)

		reader.EXPECT().GetByID(ctx, pet.ID).Return(nil, nil)

		_, err := svc.GetByID(ctx, pet.ID)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func TestPetService_TransitionsRefreshCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	reader := services.NewMockPetReader(ctrl)
	writer := services.NewMockPetWriter(ctrl)
	cache := services.NewMockPetCache(ctrl)
	events := services.NewMockEventPublisher(ctrl)
	svc := services.NewPetService(reader, writer, cache, events)
	ctx := context.Background()

	pet := &models.Pet{ID: uuid.New(), Name: "Rex", Age: 2, Weight: 10, Color: "black", Available: true, Creator: models.Creator{ID: alice.ID}, Version: 3}
	closed := false

	gomock.InOrder(
		reader.EXPECT().GetByID(ctx, pet.ID).Return(pet, nil),
		writer.EXPECT().Update(ctx, pet).DoAndReturn(func(_ context.Context, p *models.Pet) error {
			p.Version++
			return nil
		}),
		cache.EXPECT().Set(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, p *models.Pet) error {
			assert.Equal(t, int64(4), p.Version)
			assert.False(t, p.Available)
			return nil
		}),
		events.EXPECT().Publish(ctx, gomock.Any()).Return(nil),
	)

	got, err := svc.Update(ctx, alice, pet.ID, adoption.Details{Name: "Rex II", Age: 3, Weight: 11, Color: "grey"}, &closed)
	require.NoError(t, err)
	assert.Equal(t, "Rex II", got.Name)
	assert.False(t, got.Available)
}

func TestPetService_RemoveMarksCacheEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	reader := services.NewMockPetReader(ctrl)
	writer := services.NewMockPetWriter(ctrl)
	cache := services.NewMockPetCache(ctrl)
	svc := services.NewPetService(reader, writer, cache, nil)
	ctx := context.Background()

	pet := &models.Pet{ID: uuid.New(), Available: true, Creator: models.Creator{ID: alice.ID}, Version: 2}

	gomock.InOrder(
		reader.EXPECT().GetByID(ctx, pet.ID).Return(pet, nil),
		writer.EXPECT().DeleteByID(ctx, pet.ID).Return(nil),
		cache.EXPECT().Delete(ctx, pet.ID).Return(nil),
	)

	require.NoError(t, svc.Remove(ctx, alice, pet.ID))
}

func TestPetService_StaleWriteIsConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	reader := services.NewMockPetReader(ctrl)
	writer := services.NewMockPetWriter(ctrl)
	svc := services.NewPetService(reader, writer, nil, nil)
	ctx := context.Background()

	pet := &models.Pet{ID: uuid.New(), Available: true, Creator: models.Creator{ID: alice.ID}, Version: 1}
	stale := fmt.Errorf("%w: pet was modified concurrently", apperrors.ErrConflict)

	reader.EXPECT().GetByID(ctx, pet.ID).Return(pet, nil)
	writer.EXPECT().Update(ctx, pet).Return(stale)

	_, err := svc.ScheduleVisit(ctx, bob, pet.ID)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestPetService_Lists(t *testing.T) {
	ctrl := gomock.NewController(t)
	reader := services.NewMockPetReader(ctrl)
	svc := services.NewPetService(reader, services.NewMockPetWriter(ctrl), nil, nil)
	ctx := context.Background()

	pets := []models.Pet{{Name: "Mia"}, {Name: "Rex"}}
	reader.EXPECT().List(ctx).Return(pets, nil)
	reader.EXPECT().ListByCreator(ctx, alice.ID).Return(pets[:1], nil)
	reader.EXPECT().ListByAdopter(ctx, bob.ID).Return(nil, errors.New("db error"))

	all, err := svc.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, pets, all)

	mine, err := svc.GetByCreator(ctx, alice.ID)
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	_, err = svc.GetByAdopter(ctx, bob.ID)
	assert.EqualError(t, err, "db error")
}
