package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memoryRedis struct {
	mu   sync.Mutex
	data map[string]string
}

func newMemoryRedis() *memoryRedis {
	return &memoryRedis{data: map[string]string{}}
}

func (m *memoryRedis) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *memoryRedis) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = string(b)
	return nil
}

func (m *memoryRedis) Get(ctx context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data[key], nil
}

func (m *memoryRedis) Expire(ctx context.Context, key string, exp time.Duration) (bool, error) {
	return true, nil
}

func (m *memoryRedis) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	return false, nil
}

func TestSessionService_Lifecycle(t *testing.T) {
	ctx := context.Background()
	redis := newMemoryRedis()
	svc := NewSessionService(redis, zap.NewNop())

	refID := int64(42)
	user := &models.User{ID: 7, Email: "doc@hospital.test", Role: models.RoleDoctor, RefID: &refID}

	created, err := svc.CreateSession(ctx, user, time.Hour)
	require.NoError(t, err)
	assert.NotEmpty(t, created.SessionID)
	assert.Contains(t, redis.data, constvars.RedisKeySessionPrefix+created.SessionID)

	loaded, err := svc.GetSession(ctx, created.SessionID)
	require.NoError(t, err)
	assert.Equal(t, models.ActorContext{UserID: 7, Role: models.RoleDoctor, RefID: 42}, loaded.Actor())

	require.NoError(t, svc.DeleteSession(ctx, created.SessionID))
	_, err = svc.GetSession(ctx, created.SessionID)
	assert.Equal(t, constvars.StatusUnauthorized, exceptions.StatusCode(err))
}

func TestSessionService_ExpiredSession(t *testing.T) {
	ctx := context.Background()
	redis := newMemoryRedis()
	svc := NewSessionService(redis, zap.NewNop())

	expired := models.Session{SessionID: "old", UserID: 1, Role: models.RoleAdmin, ExpiresAt: time.Now().Add(-time.Minute)}
	require.NoError(t, redis.Set(ctx, constvars.RedisKeySessionPrefix+"old", expired, 0))

	_, err := svc.GetSession(ctx, "old")
	assert.Equal(t, constvars.StatusUnauthorized, exceptions.StatusCode(err))
}
