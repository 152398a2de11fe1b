package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/landsight/prospect-api/internal/domain/maptool"
)

// PrefsStore persists per-user map preferences (base layer, last active
// tool). A user with no saved preferences reads back the zero value plus
// the roadmap default.
type PrefsStore struct {
	client redis.UniversalClient
	prefix string
}

// NewPrefsStore creates a Redis-backed map preferences store.
func NewPrefsStore(client redis.UniversalClient) *PrefsStore {
	return &PrefsStore{
		client: client,
		prefix: "mapprefs:",
	}
}

func (s *PrefsStore) Get(ctx context.Context, userID string) (maptool.Preferences, error) {
	if userID == "" {
		return maptool.Preferences{}, errors.New("user ID cannot be empty")
	}

	data, err := s.client.Get(ctx, s.prefix+userID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return maptool.DefaultPreferences(), nil
		}
		return maptool.Preferences{}, fmt.Errorf("redis get prefs: %w", err)
	}

	var prefs maptool.Preferences
	if unmarshalErr := json.Unmarshal([]byte(data), &prefs); unmarshalErr != nil {
		return maptool.Preferences{}, fmt.Errorf("unmarshal prefs: %w", unmarshalErr)
	}
	return prefs.Normalize(), nil
}

func (s *PrefsStore) Save(ctx context.Context, userID string, prefs maptool.Preferences) error {
	if userID == "" {
		return errors.New("user ID cannot be empty")
	}

	data, err := json.Marshal(prefs.Normalize())
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}
	return s.client.Set(ctx, s.prefix+userID, data, 0).Err()
}
