package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/joaovitorrom/API-Sistema-Pets/internal/apperrors"
	"github.com/joaovitorrom/API-Sistema-Pets/internal/logger"
	"github.com/joaovitorrom/API-Sistema-Pets/internal/models"
)

// ErrCacheMiss is returned when the pet is not cached.
var ErrCacheMiss = apperrors.ErrCacheMiss

// removedMarker replaces the cached value of a removed pet until it expires.
const removedMarker = "removed"

// setIfNewer stores ARGV[1] unless the key holds the removal marker or a pet
// with a higher version than ARGV[2].
var setIfNewer = redis.NewScript(`
local cur = redis.call('GET', KEYS[1])
if cur then
	if cur == ARGV[4] then
		return 0
	end
	local ok, cached = pcall(cjson.decode, cur)
	if ok and type(cached) == 'table' and tonumber(cached['version']) and tonumber(cached['version']) > tonumber(ARGV[2]) then
		return 0
	end
end
if tonumber(ARGV[3]) > 0 then
	redis.call('SET', KEYS[1], ARGV[1], 'PX', ARGV[3])
else
	redis.call('SET', KEYS[1], ARGV[1])
end
return 1
`)

// PetCacheRepository caches pets by id in Redis
type PetCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached pets
}

func NewPetCacheRepository(client *redis.Client, expiration time.Duration) *PetCacheRepository {
	return &PetCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func petKey(id uuid.UUID) string {
	return fmt.Sprintf("pet:%s", id)
}

// Get returns the cached pet or ErrCacheMiss.
func (r *PetCacheRepository) Get(ctx context.Context, id uuid.UUID) (*models.Pet, error) {
	key := petKey(id)

	val, err := r.client.Get(ctx, key).Bytes()
	logger.Log.Debugw("cache get", "key", key, "error", err)
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, err
	}
	if string(val) == removedMarker {
		return nil, ErrCacheMiss
	}

	var pet models.Pet
	if err := json.Unmarshal(val, &pet); err != nil {
		return nil, fmt.Errorf("failed to decode cached pet %s: %w", key, err)
	}
	return &pet, nil
}

// Set caches the pet with the repository expiration. A pet older than the
// cached one, or one marked as removed, is left out.
func (r *PetCacheRepository) Set(ctx context.Context, pet *models.Pet) error {
	key := petKey(pet.ID)

	data, err := json.Marshal(pet)
	if err != nil {
		return err
	}

	stored, err := setIfNewer.Run(ctx, r.client, []string{key},
		data, pet.Version, r.exp.Milliseconds(), removedMarker).Int()
	logger.Log.Debugw("cache set", "key", key, "version", pet.Version, "stored", stored == 1, "ttl", r.exp, "error", err)
	return err
}

// Delete marks the pet as removed so that a read started before the removal
// cannot cache it again.
func (r *PetCacheRepository) Delete(ctx context.Context, id uuid.UUID) error {
	key := petKey(id)

	err := r.client.Set(ctx, key, removedMarker, r.exp).Err()
	logger.Log.Debugw("cache delete", "key", key, "error", err)
	return err
}
