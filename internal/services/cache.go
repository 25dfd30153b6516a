package services

import (
	"encoding/json"
	"fmt"
	"time"

	"rodacerta/frotagest/internal/common"
)

// cachedAs runs GetOrSet and normalizes the hit into its concrete type.
// The in-memory cache returns the stored pointer untouched, but Redis
// round-trips values through JSON, so a hit comes back as
// map[string]interface{}; re-marshaling it into T recovers the typed
// value either way.
func cachedAs[T any](cache common.CacheInterface, key string, ttl time.Duration, loader func() (any, error)) (*T, error) {
	val, err := cache.GetOrSet(key, ttl, loader)
	if err != nil {
		return nil, err
	}

	if typed, ok := val.(*T); ok {
		return typed, nil
	}

	data, err := json.Marshal(val)
	if err != nil {
		return nil, fmt.Errorf("cache %s: %w", key, err)
	}
	typed := new(T)
	if err := json.Unmarshal(data, typed); err != nil {
		return nil, fmt.Errorf("cache %s: %w", key, err)
	}
	return typed, nil
}
