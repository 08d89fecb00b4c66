package redis

import (
	"encoding/json"
	"fmt"
	"time"
)

const (
	// userPageKeyPrefix prefixes the cached profile page of a user.
	userPageKeyPrefix = "sn:user:page:"

	// userPageTTL bounds staleness if an invalidation is ever missed.
	userPageTTL = 10 * time.Minute
)

func userPageKey(userID uint) string {
	return fmt.Sprintf("%s%d", userPageKeyPrefix, userID)
}

// CacheUserPage stores the rendered profile page of a user.
func CacheUserPage(userID uint, page interface{}) error {
	if client == nil {
		return fmt.Errorf("redis client not initialized")
	}

	data, err := json.Marshal(page)
	if err != nil {
		return fmt.Errorf("failed to marshal user page: %w", err)
	}

	if err := client.Set(ctx, userPageKey(userID), data, userPageTTL).Err(); err != nil {
		return fmt.Errorf("failed to cache user page: %w", err)
	}

	return nil
}

// GetUserPage loads a cached profile page into dest. Returns an error on a
// cache miss; callers fall back to the database.
func GetUserPage(userID uint, dest interface{}) error {
	if client == nil {
		return fmt.Errorf("redis client not initialized")
	}

	data, err := client.Get(ctx, userPageKey(userID)).Bytes()
	if err != nil {
		return fmt.Errorf("user page cache miss: %w", err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("failed to unmarshal cached user page: %w", err)
	}

	return nil
}

// InvalidateUserPages drops the cached pages of the given users. Mutations
// call this for every user whose page content changed (profile edits,
// friend add/remove, deletion).
func InvalidateUserPages(userIDs ...uint) error {
	if client == nil {
		return fmt.Errorf("redis client not initialized")
	}
	if len(userIDs) == 0 {
		return nil
	}

	keys := make([]string, len(userIDs))
	for i, id := range userIDs {
		keys[i] = userPageKey(id)
	}

	if err := client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to invalidate user pages: %w", err)
	}

	return nil
}
