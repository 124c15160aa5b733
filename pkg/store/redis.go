package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/matzehuels/crossgen/pkg/errors"
	"github.com/matzehuels/crossgen/pkg/puzzle"
)

const (
	redisKeyPrefix = "crossgen:puzzle:"
	redisIndexKey  = "crossgen:puzzles"
)

// RedisConfig configures the Redis-backed store.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int

	// TTL expires stored puzzles after the given duration; zero keeps
	// them forever.
	TTL time.Duration
}

// Redis is a Redis-backed Store. Puzzles are stored as JSON values, with a
// set of known IDs maintained alongside for listing.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis connects to Redis and verifies the connection with a ping.
func NewRedis(ctx context.Context, cfg RedisConfig) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeStoreUnavailable, err, "redis ping %s", cfg.Addr)
	}
	return &Redis{client: client, ttl: cfg.TTL}, nil
}

// Save stores the puzzle as JSON and records its ID in the index set.
func (r *Redis) Save(ctx context.Context, p *puzzle.Puzzle) error {
	data, err := json.Marshal(p)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "marshal puzzle %s", p.ID)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, redisKeyPrefix+p.ID, data, r.ttl)
	pipe.SAdd(ctx, redisIndexKey, p.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return errors.Wrap(errors.ErrCodeStoreUnavailable, err, "save puzzle %s", p.ID)
	}
	return nil
}

// Get retrieves a puzzle by ID.
func (r *Redis) Get(ctx context.Context, id string) (*puzzle.Puzzle, error) {
	data, err := r.client.Get(ctx, redisKeyPrefix+id).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStoreUnavailable, err, "get puzzle %s", id)
	}

	var p puzzle.Puzzle
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "unmarshal puzzle %s", id)
	}
	return &p, nil
}

// List returns all puzzles, most recent first. IDs whose value has expired
// are skipped and removed from the index.
func (r *Redis) List(ctx context.Context) ([]*puzzle.Puzzle, error) {
	ids, err := r.client.SMembers(ctx, redisIndexKey).Result()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStoreUnavailable, err, "list puzzle IDs")
	}

	list := make([]*puzzle.Puzzle, 0, len(ids))
	for _, id := range ids {
		p, err := r.Get(ctx, id)
		if err == ErrNotFound {
			// TTL reaped the value but not the index entry.
			r.client.SRem(ctx, redisIndexKey, id)
			continue
		}
		if err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	sortByCreated(list)
	return list, nil
}

// Close closes the underlying client.
func (r *Redis) Close(ctx context.Context) error {
	return r.client.Close()
}
