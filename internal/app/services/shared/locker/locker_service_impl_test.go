package locker

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockRedisRepository struct {
	mock.Mock
}

func (m *MockRedisRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	args := m.Called(ctx, key, value, exp)
	return args.Error(0)
}

func (m *MockRedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockRedisRepository) Expire(ctx context.Context, key string, exp time.Duration) (bool, error) {
	args := m.Called(ctx, key, exp)
	return args.Bool(0), args.Error(1)
}

func (m *MockRedisRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	args := m.Called(ctx, key, value, exp)
	return args.Bool(0), args.Error(1)
}

func newTestLockService(repo *MockRedisRepository) *lockService {
	return &lockService{redisRepo: repo, Log: zap.NewNop()}
}

func TestLockService_TryLock(t *testing.T) {
	ctx := context.Background()

	t.Run("acquired", func(t *testing.T) {
		repo := new(MockRedisRepository)
		repo.On("TrySetNX", ctx, "job", mock.AnythingOfType("string"), time.Minute).Return(true, nil)

		ok, value, err := newTestLockService(repo).TryLock(ctx, "job", time.Minute)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.NotEmpty(t, value)
		repo.AssertExpectations(t)
	})

	t.Run("held by someone else", func(t *testing.T) {
		repo := new(MockRedisRepository)
		repo.On("TrySetNX", ctx, "job", mock.AnythingOfType("string"), time.Minute).Return(false, nil)

		ok, value, err := newTestLockService(repo).TryLock(ctx, "job", time.Minute)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, value)
	})
}

func TestLockService_Unlock(t *testing.T) {
	ctx := context.Background()

	t.Run("owner releases", func(t *testing.T) {
		repo := new(MockRedisRepository)
		repo.On("Get", ctx, "job").Return(`"token"`, nil)
		repo.On("Delete", ctx, "job").Return(nil)

		require.NoError(t, newTestLockService(repo).Unlock(ctx, "job", "token"))
		repo.AssertExpectations(t)
	})

	t.Run("other owner is rejected", func(t *testing.T) {
		repo := new(MockRedisRepository)
		repo.On("Get", ctx, "job").Return(`"someone-else"`, nil)

		err := newTestLockService(repo).Unlock(ctx, "job", "token")
		assert.Error(t, err)
		repo.AssertNotCalled(t, "Delete", ctx, "job")
	})

	t.Run("expired lock is a no-op", func(t *testing.T) {
		repo := new(MockRedisRepository)
		repo.On("Get", ctx, "job").Return("", nil)

		assert.NoError(t, newTestLockService(repo).Unlock(ctx, "job", "token"))
	})
}

func TestLockService_Refresh(t *testing.T) {
	ctx := context.Background()

	repo := new(MockRedisRepository)
	repo.On("Get", ctx, "job").Return(`"token"`, nil).Once()
	repo.On("Expire", ctx, "job", 2*time.Minute).Return(true, nil).Once()
	require.NoError(t, newTestLockService(repo).Refresh(ctx, "job", "token", 2*time.Minute))

	repo.On("Get", ctx, "job").Return(`"other"`, nil).Once()
	assert.Error(t, newTestLockService(repo).Refresh(ctx, "job", "token", 2*time.Minute))
	repo.AssertExpectations(t)
}
