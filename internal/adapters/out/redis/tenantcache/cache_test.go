package tenantcache_test

import (
	"testing"
	"time"

	"siparisqr/internal/adapters/out/redis/tenantcache"
	"siparisqr/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RequiresDependencies(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "localhost:0"})
	defer client.Close()

	_, err := tenantcache.New(nil, new(MockTenantLookup), time.Minute, nil)
	require.ErrorIs(t, err, errs.ErrValidation)

	_, err = tenantcache.New(client, nil, time.Minute, nil)
	require.ErrorIs(t, err, errs.ErrValidation)

	cache, err := tenantcache.New(client, new(MockTenantLookup), 0, nil)
	require.NoError(t, err)
	assert.NotNil(t, cache)
}
