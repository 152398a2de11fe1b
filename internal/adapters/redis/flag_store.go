package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// FlagStore persists small string flags, such as the demo-mode switch the
// route gate consults. A missing key reads as the empty string rather than
// an error so callers can treat absence as "off".
type FlagStore struct {
	client redis.UniversalClient
	prefix string
}

// NewFlagStore creates a Redis-backed flag store.
func NewFlagStore(client redis.UniversalClient) *FlagStore {
	return &FlagStore{
		client: client,
		prefix: "flag:",
	}
}

func (s *FlagStore) Get(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", errors.New("flag key cannot be empty")
	}

	val, err := s.client.Get(ctx, s.prefix+key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("redis get flag: %w", err)
	}
	return val, nil
}

func (s *FlagStore) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return errors.New("flag key cannot be empty")
	}
	// Flags have no TTL; they persist until explicitly changed.
	return s.client.Set(ctx, s.prefix+key, value, 0).Err()
}
