package usage

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const defaultKeyPrefix = "diarykit:subscription:"

// RedisConfig configures the connection behind NewRedisStoreFromConfig.
// Load it with config.Load[usage.RedisConfig]().
type RedisConfig struct {
	ConnectionURL string `env:"USAGE_REDIS_URL,required"`
	KeyPrefix     string `env:"USAGE_REDIS_KEY_PREFIX" envDefault:"diarykit:subscription:"`
}

// NewRedisStoreFromConfig dials Redis, verifies the connection with a ping,
// and returns a store bound to the configured key prefix.
func NewRedisStoreFromConfig(ctx context.Context, cfg RedisConfig) (*RedisStore, error) {
	opts, err := redis.ParseURL(cfg.ConnectionURL)
	if err != nil {
		return nil, errors.Join(ErrRedisUnavailable, err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, errors.Join(ErrRedisUnavailable, err)
	}

	return NewRedisStore(client, WithKeyPrefix(cfg.KeyPrefix)), nil
}

// RedisStore persists subscription state as one JSON document per user.
// It backs sessions that outlive a device, e.g. when the same account is
// opened on a second phone before the app's own sync has run.
type RedisStore struct {
	client    *redis.Client
	keyPrefix string
}

// RedisStoreOption configures a RedisStore.
type RedisStoreOption func(*RedisStore)

// WithKeyPrefix overrides the default key prefix.
func WithKeyPrefix(prefix string) RedisStoreOption {
	return func(s *RedisStore) {
		if prefix != "" {
			s.keyPrefix = prefix
		}
	}
}

// NewRedisStore wraps an established Redis client.
// Panics on a nil client to fail fast during wiring.
func NewRedisStore(client *redis.Client, opts ...RedisStoreOption) *RedisStore {
	if client == nil {
		panic("usage: redis client is required")
	}

	s := &RedisStore{
		client:    client,
		keyPrefix: defaultKeyPrefix,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load retrieves the state for a user.
func (s *RedisStore) Load(ctx context.Context, userID uuid.UUID) (State, error) {
	raw, err := s.client.Get(ctx, s.key(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return State{}, ErrStateNotFound
	}
	if err != nil {
		return State{}, errors.Join(ErrFailedToLoadState, err)
	}

	var state State
	if err := json.Unmarshal(raw, &state); err != nil {
		return State{}, errors.Join(ErrFailedToLoadState, err)
	}
	return state, nil
}

// Save creates or updates the state, keyed by State.UserID.
func (s *RedisStore) Save(ctx context.Context, state State) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return errors.Join(ErrFailedToSaveState, err)
	}

	if err := s.client.Set(ctx, s.key(state.UserID), raw, 0).Err(); err != nil {
		return errors.Join(ErrFailedToSaveState, err)
	}
	return nil
}

func (s *RedisStore) key(userID uuid.UUID) string {
	return s.keyPrefix + userID.String()
}
