package cache

import (
	"context"
	"time"
)

// AuthorCache remembers the display label of note authors by user id.
type AuthorCache interface {
	// GetAuthorLabels returns the cached labels for userIDs. Misses are absent from the map.
	GetAuthorLabels(ctx context.Context, userIDs []string) (map[string]string, error)
	SetAuthorLabels(ctx context.Context, labels map[string]string, ttl time.Duration) error
}
