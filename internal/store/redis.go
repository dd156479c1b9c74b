package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/vark-assess/backend/internal/models"
)

const sessionKeyPrefix = "vark:session:"

// RedisStore keeps sessions as JSON values. SESSION_TTL_HOURS sets an
// optional expiry (0 = keep forever); expiry is a storage concern, the
// assessment core never deletes sessions itself.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(ctx context.Context) (*RedisStore, error) {
	addr := os.Getenv("REDIS_URI")
	if addr == "" {
		addr = "localhost:6379"
	}
	addr = strings.TrimPrefix(addr, "redis://")

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})

	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	var ttl time.Duration
	if v := os.Getenv("SESSION_TTL_HOURS"); v != "" {
		if hours, err := strconv.Atoi(v); err == nil && hours > 0 {
			ttl = time.Duration(hours) * time.Hour
		}
	}

	return &RedisStore{client: client, ttl: ttl}, nil
}

func (s *RedisStore) Get(ctx context.Context, id string) (*models.Session, error) {
	data, err := s.client.Get(ctx, sessionKeyPrefix+id).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get session %s: %w", id, err)
	}

	var session models.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("decode session %s: %w", id, err)
	}
	return &session, nil
}

func (s *RedisStore) Save(ctx context.Context, session *models.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session %s: %w", session.ID, err)
	}

	if err := s.client.Set(ctx, sessionKeyPrefix+session.ID, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("save session %s: %w", session.ID, err)
	}
	return nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
