package cache

import (
	"context"
	"time"
)

type Cache interface {
	Get(ctx context.Context, key string, value any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

func Key(prefix string, id string) string {
	return prefix + ":" + id
}

const (
	ItemKeyPrefix       = "item"
	ItemFirstPagePrefix = "items:first"
)

// ItemFirstPageKey names the cached first page of a listing. An empty
// category is the unfiltered listing.
func ItemFirstPageKey(category string) string {
	return Key(ItemFirstPagePrefix, category)
}
