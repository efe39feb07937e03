package redis

import (
	"context"
	"time"

	"github.com/oliverisaac/jotter/cache"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

type RedisAuthorCache struct {
	client redis.UniversalClient
}

var _ cache.AuthorCache = (*RedisAuthorCache)(nil)

func NewRedisAuthorCache(ctx context.Context, addr string) (*RedisAuthorCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.Wrapf(err, "connecting to redis at %s", addr)
	}

	return NewRedisAuthorCacheWithClient(client), nil
}

func NewRedisAuthorCacheWithClient(client redis.UniversalClient) *RedisAuthorCache {
	return &RedisAuthorCache{client: client}
}

func buildAuthorKey(userID string) string {
	return "author:{" + userID + "}:label"
}

func (c *RedisAuthorCache) GetAuthorLabels(ctx context.Context, userIDs []string) (map[string]string, error) {
	ret := make(map[string]string, len(userIDs))
	if len(userIDs) == 0 {
		return ret, nil
	}

	pipe := c.client.Pipeline()
	cmds := make([]*redis.StringCmd, len(userIDs))
	for i, id := range userIDs {
		cmds[i] = pipe.Get(ctx, buildAuthorKey(id))
	}
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, errors.Wrap(err, "reading author labels")
	}

	for i, cmd := range cmds {
		label, err := cmd.Result()
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			return nil, errors.Wrapf(err, "reading author label for %s", userIDs[i])
		}
		ret[userIDs[i]] = label
	}
	return ret, nil
}

func (c *RedisAuthorCache) SetAuthorLabels(ctx context.Context, labels map[string]string, ttl time.Duration) error {
	if len(labels) == 0 {
		return nil
	}

	pipe := c.client.Pipeline()
	for id, label := range labels {
		pipe.Set(ctx, buildAuthorKey(id), label, ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return errors.Wrap(err, "writing author labels")
	}
	return nil
}

func (c *RedisAuthorCache) Close() error {
	return c.client.Close()
}
