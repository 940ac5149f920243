package locker

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeRedisRepository mimics the JSON-encoding behavior of the real
// repository so ownership comparison sees quoted values.
type fakeRedisRepository struct {
	values map[string]string
}

func newFakeRedisRepository() *fakeRedisRepository {
	return &fakeRedisRepository{values: map[string]string{}}
}

func (f *fakeRedisRepository) Get(ctx context.Context, key string) (string, error) {
	return f.values[key], nil
}

func (f *fakeRedisRepository) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	f.values[key] = fmt.Sprintf("%q", value)
	return nil
}

func (f *fakeRedisRepository) Delete(ctx context.Context, key string) error {
	delete(f.values, key)
	return nil
}

func (f *fakeRedisRepository) TrySetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) (bool, error) {
	if _, exists := f.values[key]; exists {
		return false, nil
	}
	f.values[key] = fmt.Sprintf("%q", value)
	return true, nil
}

func TestLockService(t *testing.T) {
	repo := newFakeRedisRepository()
	service := NewLockService(repo, zap.NewNop())
	ctx := context.Background()

	t.Run("Acquire Then Release", func(t *testing.T) {
		acquired, lockValue, err := service.TryLock(ctx, "test:lock", time.Minute)
		require.NoError(t, err)
		require.True(t, acquired)
		require.NotEmpty(t, lockValue)

		// Second acquisition must fail while held.
		acquiredAgain, _, err := service.TryLock(ctx, "test:lock", time.Minute)
		require.NoError(t, err)
		assert.False(t, acquiredAgain)

		require.NoError(t, service.Unlock(ctx, "test:lock", lockValue))

		acquiredAfter, _, err := service.TryLock(ctx, "test:lock", time.Minute)
		require.NoError(t, err)
		assert.True(t, acquiredAfter)
	})

	t.Run("Unlock With Wrong Value Fails", func(t *testing.T) {
		acquired, _, err := service.TryLock(ctx, "test:lock:other", time.Minute)
		require.NoError(t, err)
		require.True(t, acquired)

		err = service.Unlock(ctx, "test:lock:other", "not-the-owner")
		assert.Error(t, err)
	})

	t.Run("Unlock Missing Lock Is Noop", func(t *testing.T) {
		assert.NoError(t, service.Unlock(ctx, "test:lock:absent", "whatever"))
	})
}
