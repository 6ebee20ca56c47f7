// Package tenantcache keeps slug to tenant resolutions in Redis so that host
// routing does not hit the database on every request.
//
// Only found tenants are cached. Redis failures are logged and the lookup falls
// through to the wrapped TenantLookup.
//
// Every slug has a generation counter next to its entry. Evict bumps the counter
// before deleting the entry, and a lookup stores its result only when the counter
// still holds the value read before the wrapped lookup started. A lookup that
// overlaps an eviction therefore never re-caches the record the eviction removed.
package tenantcache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"siparisqr/internal/core/domain/model/kernel"
	"siparisqr/internal/core/domain/model/tenant"
	"siparisqr/internal/core/ports"
	"siparisqr/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	keyPrefix        = "tenant:slug:"
	generationPrefix = "tenant:gen:"
)

// entryKey and generationKey share a hash tag so both land in one cluster slot.
func entryKey(slug string) string      { return keyPrefix + "{" + slug + "}" }
func generationKey(slug string) string { return generationPrefix + "{" + slug + "}" }

// DefaultTTL applies when the configured TTL is not positive.
const DefaultTTL = 5 * time.Minute

// stringGetter is satisfied by both the client and a WATCH transaction.
type stringGetter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

type cachedTenant struct {
	ID          string    `json:"id"`
	Slug        string    `json:"slug"`
	DisplayName string    `json:"displayName"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Cache is a read-through ports.TenantLookup.
type Cache struct {
	client redis.UniversalClient
	next   ports.TenantLookup
	ttl    time.Duration
	logger *zap.Logger
}

var (
	_ ports.TenantLookup           = (*Cache)(nil)
	_ ports.TenantCacheInvalidator = (*Cache)(nil)
)

func New(client redis.UniversalClient, next ports.TenantLookup, ttl time.Duration, logger *zap.Logger) (*Cache, error) {
	if client == nil {
		return nil, errs.NewValueIsRequiredError("client")
	}
	if next == nil {
		return nil, errs.NewValueIsRequiredError("next")
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Cache{client: client, next: next, ttl: ttl, logger: logger.With(zap.String("component", "tenantcache"))}, nil
}

func (c *Cache) FindTenantBySlug(ctx context.Context, slug string) (*tenant.Tenant, error) {
	key := entryKey(slug)

	data, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		t, decodeErr := decode(data)
		if decodeErr == nil {
			return t, nil
		}
		c.logger.Warn("dropping unreadable cache entry", zap.String("slug", slug), zap.Error(decodeErr))
		c.client.Del(ctx, key)
	case errors.Is(err, redis.Nil):
	case ctx.Err() != nil:
		return nil, ctx.Err()
	default:
		c.logger.Warn("cache read failed", zap.String("slug", slug), zap.Error(err))
	}

	generation, genErr := c.generation(ctx, c.client, slug)

	t, err := c.next.FindTenantBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	if genErr != nil {
		c.logger.Warn("cache generation read failed", zap.String("slug", slug), zap.Error(genErr))
		return t, nil
	}
	if err := c.store(ctx, slug, t, generation); err != nil {
		c.logger.Warn("cache write failed", zap.String("slug", slug), zap.Error(err))
	}
	return t, nil
}

// Evict removes the cached entry of slug and invalidates lookups still in flight.
// A missing entry is not an error.
func (c *Cache) Evict(ctx context.Context, slug string) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, generationKey(slug))
		pipe.Expire(ctx, generationKey(slug), c.ttl)
		pipe.Del(ctx, entryKey(slug))
		return nil
	})
	return err
}

// store writes t under slug unless the generation moved away from expected.
// A skipped write is not an error.
func (c *Cache) store(ctx context.Context, slug string, t *tenant.Tenant, expected int64) error {
	data, err := encode(t)
	if err != nil {
		return err
	}

	err = c.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := c.generation(ctx, tx, slug)
		if err != nil {
			return err
		}
		if current != expected {
			c.logger.Debug("tenant evicted during lookup, not caching", zap.String("slug", slug))
			return nil
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, entryKey(slug), data, c.ttl)
			return nil
		})
		return err
	}, generationKey(slug))
	if errors.Is(err, redis.TxFailedErr) {
		c.logger.Debug("tenant evicted during cache write, not caching", zap.String("slug", slug))
		return nil
	}
	return err
}

// generation returns the eviction counter of slug; a missing counter reads as zero.
func (c *Cache) generation(ctx context.Context, r stringGetter, slug string) (int64, error) {
	n, err := r.Get(ctx, generationKey(slug)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return n, err
}

func encode(t *tenant.Tenant) ([]byte, error) {
	return json.Marshal(cachedTenant{
		ID:          t.ID().String(),
		Slug:        t.Slug().String(),
		DisplayName: t.DisplayName(),
		Active:      t.IsActive(),
		CreatedAt:   t.CreatedAt(),
	})
}

func decode(data []byte) (*tenant.Tenant, error) {
	var ct cachedTenant
	if err := json.Unmarshal(data, &ct); err != nil {
		return nil, err
	}
	id, err := kernel.UUIDFromString(ct.ID)
	if err != nil {
		return nil, err
	}
	slug, err := tenant.NewSlug(ct.Slug)
	if err != nil {
		return nil, err
	}
	return tenant.RestoreTenant(id, slug, ct.DisplayName, ct.Active, ct.CreatedAt)
}
