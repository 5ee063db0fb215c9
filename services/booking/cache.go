package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/joaquinperez028/landingPageNahuel-sub003/models"
	"github.com/joaquinperez028/landingPageNahuel-sub003/utils"
)

// cacheBackend is the slice of the redis client the availability cache uses.
type cacheBackend interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Incr(ctx context.Context, key string) *redis.IntCmd
}

// AvailabilityCache caches generated availability in redis, keyed by a
// per-class generation counter. Invalidation is a single INCR of the class
// counter: every payload key embeds the generation it was computed under, so
// bumping the counter orphans all stale entries at once without scanning. The
// TTL only bounds how long orphaned payloads linger.
//
// Writers must store under the generation they observed BEFORE computing the
// payload (Get returns it, Set takes it back). A payload computed at
// generation G and written after an INCR to G+1 lands under the already
// orphaned key, so it can never be served as fresh.
//
// A nil cache (or one without a redis client) degrades to a pass-through:
// Get always misses and Set/Invalidate are no-ops.
type AvailabilityCache struct {
	Client cacheBackend
	TTL    time.Duration
}

// NewAvailabilityCache constructs an AvailabilityCache over client.
func NewAvailabilityCache(client *redis.Client, ttl time.Duration) *AvailabilityCache {
	c := &AvailabilityCache{TTL: ttl}
	if client != nil {
		c.Client = client
	}
	return c
}

func genKey(class models.ResourceClass) string {
	return fmt.Sprintf("avail:gen:%s", class)
}

func payloadKey(gen int64, class models.ResourceClass, from, to time.Time) string {
	return fmt.Sprintf("avail:%d:%s:%s:%s",
		gen, class, from.UTC().Format("2006-01-02"), to.UTC().Format("2006-01-02"))
}

// Get returns the cached availability for the exact (class, from, to) query
// at the class's current generation, plus the generation it observed. On a
// miss the caller computes the payload and hands the same generation back to
// Set. A negative generation means the counter could not be read; Set
// discards such writes.
func (c *AvailabilityCache) Get(ctx context.Context, class models.ResourceClass, from, to time.Time) ([]models.DayAvailability, int64, bool) {
	if c == nil || c.Client == nil {
		return nil, 0, false
	}

	gen, err := c.generation(ctx, class)
	if err != nil {
		return nil, -1, false
	}

	raw, err := c.Client.Get(ctx, payloadKey(gen, class, from, to)).Bytes()
	if err != nil {
		if err != redis.Nil {
			utils.GetLogger().Warn("availability cache read failed", zap.Error(err))
		}
		return nil, gen, false
	}

	var days []models.DayAvailability
	if err := json.Unmarshal(raw, &days); err != nil {
		utils.GetLogger().Warn("availability cache entry corrupt", zap.Error(err))
		return nil, gen, false
	}
	return days, gen, true
}

// Set stores days under gen, the generation the caller observed before
// computing the payload. If an Invalidate bumped the counter in between, the
// entry lands under an orphaned key and is never read. Failures are logged
// and swallowed; the cache never gates a read path.
func (c *AvailabilityCache) Set(ctx context.Context, class models.ResourceClass, gen int64, from, to time.Time, days []models.DayAvailability) {
	if c == nil || c.Client == nil || gen < 0 {
		return
	}

	raw, err := json.Marshal(days)
	if err != nil {
		utils.GetLogger().Warn("availability cache marshal failed", zap.Error(err))
		return
	}
	if err := c.Client.Set(ctx, payloadKey(gen, class, from, to), raw, c.TTL).Err(); err != nil {
		utils.GetLogger().Warn("availability cache write failed", zap.Error(err))
	}
}

// Invalidate bumps the class's generation counter, orphaning every cached
// payload for that class in O(1).
func (c *AvailabilityCache) Invalidate(ctx context.Context, class models.ResourceClass) error {
	if c == nil || c.Client == nil {
		return nil
	}
	return c.Client.Incr(ctx, genKey(class)).Err()
}

func (c *AvailabilityCache) generation(ctx context.Context, class models.ResourceClass) (int64, error) {
	gen, err := c.Client.Get(ctx, genKey(class)).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		utils.GetLogger().Warn("availability generation read failed", zap.Error(err))
		return 0, err
	}
	return gen, nil
}
