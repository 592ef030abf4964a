package appointments

import (
	"context"
	"errors"
	"hospital-service/internal/app/config"
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/constvars"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockLockerService struct {
	mock.Mock
}

func (m *MockLockerService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	args := m.Called(ctx, key, expiration)
	return args.Bool(0), args.String(1), args.Error(2)
}

func (m *MockLockerService) Unlock(ctx context.Context, key, lockValue string) error {
	return m.Called(ctx, key, lockValue).Error(0)
}

func (m *MockLockerService) Refresh(ctx context.Context, key, lockValue string, expiration time.Duration) error {
	return m.Called(ctx, key, lockValue, expiration).Error(0)
}

func newNoShowWorker(f bookingFixture, locker *MockLockerService) *NoShowWorker {
	cfg := &config.InternalConfig{Worker: config.AppWorker{NoShowCronSpec: "@hourly", NoShowGraceMinutes: 60}}
	worker := NewNoShowWorker(zap.NewNop(), cfg, locker, f.usecase)
	worker.now = func() time.Time { return time.Date(2025, 11, 20, 10, 30, 0, 0, time.UTC) }
	return worker
}

func TestNoShowWorker_RunOnce_MarksPastGracePeriod(t *testing.T) {
	f := newBookingFixture()
	ctx := context.Background()

	early, err := f.usecase.Create(ctx, staffActor, bookingRequest(5, "09:00"))
	require.NoError(t, err)
	withinGrace, err := f.usecase.Create(ctx, staffActor, bookingRequest(6, "10:00"))
	require.NoError(t, err)

	locker := new(MockLockerService)
	locker.On("TryLock", mock.Anything, constvars.RedisKeyNoShowWorkerLeader, noShowLeaderTTL).Return(true, "token-1", nil)
	locker.On("Unlock", mock.Anything, constvars.RedisKeyNoShowWorkerLeader, "token-1").Return(nil)
	locker.On("Refresh", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()

	newNoShowWorker(f, locker).runOnce(ctx)

	reloaded, _ := f.repo.FindByID(ctx, early.ID)
	assert.Equal(t, models.AppointmentStatusNoShow, reloaded.Status)
	reloaded, _ = f.repo.FindByID(ctx, withinGrace.ID)
	assert.Equal(t, models.AppointmentStatusScheduled, reloaded.Status)
	locker.AssertExpectations(t)
}

func TestNoShowWorker_RunOnce_SkipsWithoutLeadership(t *testing.T) {
	f := newBookingFixture()
	ctx := context.Background()

	booked, err := f.usecase.Create(ctx, staffActor, bookingRequest(5, "09:00"))
	require.NoError(t, err)

	tests := []struct {
		name string
		ok   bool
		err  error
	}{
		{"held elsewhere", false, nil},
		{"redis unavailable", false, errors.New("connection refused")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			locker := new(MockLockerService)
			locker.On("TryLock", mock.Anything, constvars.RedisKeyNoShowWorkerLeader, noShowLeaderTTL).Return(tt.ok, "", tt.err)

			newNoShowWorker(f, locker).runOnce(ctx)

			reloaded, _ := f.repo.FindByID(ctx, booked.ID)
			assert.Equal(t, models.AppointmentStatusScheduled, reloaded.Status)
			locker.AssertNotCalled(t, "Unlock", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestNoShowWorker_StartAndStop(t *testing.T) {
	f := newBookingFixture()
	locker := new(MockLockerService)
	worker := newNoShowWorker(f, locker)
	worker.cfg.Worker.NoShowCronSpec = "not a cron spec"

	worker.Start(context.Background())
	require.NotNil(t, worker.cron)
	assert.Len(t, worker.cron.Entries(), 1)
	worker.Stop()
}
