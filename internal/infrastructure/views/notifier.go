// Package views signals external renderers that a named view's cached result
// is stale and must be recomputed on next access.
package views

import (
	"context"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// InvalidateChannel carries view names whose cached results are stale.
const InvalidateChannel = "views:invalidate"

func cacheKey(view string) string {
	return "view:" + view
}

// RedisNotifier drops the view's cache entry and broadcasts the view name so
// subscribed renderers recompute. Failures are logged and swallowed; a missed
// signal only delays recomputation until the cache entry expires.
type RedisNotifier struct {
	rdb    *redis.Client
	logger *logrus.Logger
}

func NewRedisNotifier(rdb *redis.Client, logger *logrus.Logger) *RedisNotifier {
	return &RedisNotifier{rdb: rdb, logger: logger}
}

func (n *RedisNotifier) Invalidate(ctx context.Context, view string) {
	if n.rdb == nil {
		return
	}
	pipe := n.rdb.Pipeline()
	pipe.Del(ctx, cacheKey(view))
	pipe.Publish(ctx, InvalidateChannel, view)
	if _, err := pipe.Exec(ctx); err != nil && n.logger != nil {
		n.logger.WithError(err).WithField("view", view).Warn("view invalidation failed")
	}
}
