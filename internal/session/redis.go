package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "session:"

// Redis is a Provider backing for multi-instance deployments: tokens live as
// Redis keys and expire via the key TTL.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

var _ Provider = (*Redis)(nil)

// NewRedis creates a Redis-backed session store.
func NewRedis(addr, password string, db int, ttl time.Duration) *Redis {
	return &Redis{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       db,
		}),
		ttl: ttl,
	}
}

func (r *Redis) Create(ctx context.Context, userID int, username string) (string, error) {
	token := uuid.NewString()

	payload, err := json.Marshal(Identity{UserID: userID, Username: username})
	if err != nil {
		return "", fmt.Errorf("marshal session data: %w", err)
	}

	if err := r.client.Set(ctx, redisKeyPrefix+token, payload, r.ttl).Err(); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}

	return token, nil
}

func (r *Redis) Resolve(ctx context.Context, token string) (*Identity, error) {
	data, err := r.client.Get(ctx, redisKeyPrefix+token).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	var identity Identity
	if err := json.Unmarshal(data, &identity); err != nil {
		return nil, fmt.Errorf("unmarshal session data: %w", err)
	}

	return &identity, nil
}

func (r *Redis) Destroy(ctx context.Context, token string) error {
	if err := r.client.Del(ctx, redisKeyPrefix+token).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
