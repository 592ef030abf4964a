package dashboard

import (
	"context"
	"errors"
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockDashboardRepository struct {
	mock.Mock
}

func (m *MockDashboardRepository) GetStats(ctx context.Context, today time.Time) (*models.DashboardStats, error) {
	args := m.Called(ctx, today)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DashboardStats), args.Error(1)
}

func (m *MockDashboardRepository) GetRevenue(ctx context.Context, since time.Time) (*models.RevenueStats, error) {
	args := m.Called(ctx, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RevenueStats), args.Error(1)
}

func (m *MockDashboardRepository) GetDoctorPerformance(ctx context.Context, limit int) ([]models.DoctorPerformance, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]models.DoctorPerformance), args.Error(1)
}

type MockAppointmentRepository struct {
	mock.Mock
}

func (m *MockAppointmentRepository) Create(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error) {
	args := m.Called(ctx, appointment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) FindByID(ctx context.Context, appointmentID int64) (*models.Appointment, error) {
	args := m.Called(ctx, appointmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) FindAll(ctx context.Context, filter models.AppointmentFilter) ([]models.Appointment, int, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]models.Appointment), args.Int(1), args.Error(2)
}

func (m *MockAppointmentRepository) FindActiveByDate(ctx context.Context, date string, doctorID, patientID int64) ([]models.Appointment, error) {
	args := m.Called(ctx, date, doctorID, patientID)
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) Update(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error) {
	args := m.Called(ctx, appointment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) UpdateStatus(ctx context.Context, appointmentID int64, status models.AppointmentStatus) (*models.Appointment, error) {
	args := m.Called(ctx, appointmentID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) CountActiveSlot(ctx context.Context, slot models.Slot, excludeID int64) (int, error) {
	args := m.Called(ctx, slot, excludeID)
	return args.Int(0), args.Error(1)
}

func (m *MockAppointmentRepository) MarkNoShowBefore(ctx context.Context, cutoff time.Time) ([]models.Appointment, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).([]models.Appointment), args.Error(1)
}

type MockPatientRepository struct {
	mock.Mock
}

func (m *MockPatientRepository) Create(ctx context.Context, patient *models.Patient) (*models.Patient, error) {
	args := m.Called(ctx, patient)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Patient), args.Error(1)
}

func (m *MockPatientRepository) FindByID(ctx context.Context, patientID int64) (*models.Patient, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Patient), args.Error(1)
}

func (m *MockPatientRepository) FindAll(ctx context.Context, filter models.PatientFilter) ([]models.Patient, int, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]models.Patient), args.Int(1), args.Error(2)
}

func (m *MockPatientRepository) FindRecent(ctx context.Context, limit int) ([]models.Patient, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]models.Patient), args.Error(1)
}

func (m *MockPatientRepository) Update(ctx context.Context, patient *models.Patient) (*models.Patient, error) {
	args := m.Called(ctx, patient)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Patient), args.Error(1)
}

func (m *MockPatientRepository) Delete(ctx context.Context, patientID int64) error {
	return m.Called(ctx, patientID).Error(0)
}

type MockRedisRepository struct {
	mock.Mock
}

func (m *MockRedisRepository) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *MockRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	return m.Called(ctx, key, value, exp).Error(0)
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

var (
	adminActor   = models.ActorContext{UserID: 1, Role: models.RoleAdmin}
	staffActor   = models.ActorContext{UserID: 2, Role: models.RoleStaff, RefID: 3}
	doctorActor  = models.ActorContext{UserID: 3, Role: models.RoleDoctor, RefID: 1}
	patientActor = models.ActorContext{UserID: 4, Role: models.RolePatient, RefID: 5}

	fixedNow = time.Date(2025, 11, 20, 14, 30, 0, 0, time.UTC)
)

type dashboardFixture struct {
	usecase      *dashboardUsecase
	repo         *MockDashboardRepository
	appointments *MockAppointmentRepository
	patients     *MockPatientRepository
	redis        *MockRedisRepository
}

func newDashboardFixture() *dashboardFixture {
	f := &dashboardFixture{
		repo:         new(MockDashboardRepository),
		appointments: new(MockAppointmentRepository),
		patients:     new(MockPatientRepository),
		redis:        new(MockRedisRepository),
	}
	f.usecase = NewDashboardUsecase(f.repo, f.appointments, f.patients, f.redis, time.Minute, zap.NewNop()).(*dashboardUsecase)
	f.usecase.now = func() time.Time { return fixedNow }
	return f
}

func sampleStats() *models.DashboardStats {
	return &models.DashboardStats{
		TotalPatients:        120,
		TotalDoctors:         8,
		AppointmentsByStatus: map[string]int64{"Scheduled": 4, "Completed": 30},
		MonthlyRevenue:       decimal.RequireFromString("1079.10"),
		PendingAmount:        decimal.RequireFromString("579.10"),
	}
}

func TestDashboardUsecase_GetStats_CacheMissLoadsAndStores(t *testing.T) {
	f := newDashboardFixture()
	f.redis.On("Get", mock.Anything, constvars.RedisKeyDashboardStats).Return("", nil)
	f.repo.On("GetStats", mock.Anything, fixedNow).Return(sampleStats(), nil)
	f.redis.On("Set", mock.Anything, constvars.RedisKeyDashboardStats, mock.Anything, time.Minute).Return(nil)

	stats, err := f.usecase.GetStats(context.Background(), doctorActor)
	require.NoError(t, err)
	assert.Equal(t, int64(120), stats.TotalPatients)
	f.redis.AssertExpectations(t)
}

func TestDashboardUsecase_GetStats_CacheHit(t *testing.T) {
	f := newDashboardFixture()
	body, err := json.Marshal(sampleStats())
	require.NoError(t, err)
	f.redis.On("Get", mock.Anything, constvars.RedisKeyDashboardStats).Return(string(body), nil)

	stats, err := f.usecase.GetStats(context.Background(), staffActor)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("1079.10").Equal(stats.MonthlyRevenue))
	assert.Equal(t, int64(30), stats.AppointmentsByStatus["Completed"])
	f.repo.AssertNotCalled(t, "GetStats", mock.Anything, mock.Anything)
}

func TestDashboardUsecase_GetStats_RedisDownFallsBack(t *testing.T) {
	f := newDashboardFixture()
	f.redis.On("Get", mock.Anything, constvars.RedisKeyDashboardStats).Return("", errors.New("dial tcp: connection refused"))
	f.repo.On("GetStats", mock.Anything, fixedNow).Return(sampleStats(), nil)
	f.redis.On("Set", mock.Anything, constvars.RedisKeyDashboardStats, mock.Anything, time.Minute).Return(errors.New("dial tcp: connection refused"))

	stats, err := f.usecase.GetStats(context.Background(), adminActor)
	require.NoError(t, err)
	assert.Equal(t, int64(8), stats.TotalDoctors)
}

func TestDashboardUsecase_GetStats_PatientForbidden(t *testing.T) {
	f := newDashboardFixture()

	_, err := f.usecase.GetStats(context.Background(), patientActor)
	assert.Equal(t, constvars.StatusForbidden, exceptions.StatusCode(err))
}

func TestDashboardUsecase_GetTodayAppointments_RoleScoped(t *testing.T) {
	tests := []struct {
		name      string
		actor     models.ActorContext
		doctorID  int64
		patientID int64
	}{
		{"staff sees all", staffActor, 0, 0},
		{"doctor sees own", doctorActor, 1, 0},
		{"patient sees own", patientActor, 0, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newDashboardFixture()
			f.appointments.On("FindActiveByDate", mock.Anything, "2025-11-20", tt.doctorID, tt.patientID).
				Return([]models.Appointment{}, nil)

			_, err := f.usecase.GetTodayAppointments(context.Background(), tt.actor)
			require.NoError(t, err)
			f.appointments.AssertExpectations(t)
		})
	}
}

func TestDashboardUsecase_GetRevenue(t *testing.T) {
	f := newDashboardFixture()
	since := time.Date(2025, 10, 21, 0, 0, 0, 0, time.UTC)
	f.repo.On("GetRevenue", mock.Anything, since).Return(&models.RevenueStats{TotalRevenue: decimal.NewFromInt(5000)}, nil)

	revenue, err := f.usecase.GetRevenue(context.Background(), staffActor, 0)
	require.NoError(t, err)
	assert.Equal(t, constvars.DashboardRevenueDefaultDays, revenue.Days)
}

func TestDashboardUsecase_GetRevenue_Rejections(t *testing.T) {
	f := newDashboardFixture()

	_, err := f.usecase.GetRevenue(context.Background(), doctorActor, 30)
	assert.Equal(t, constvars.StatusForbidden, exceptions.StatusCode(err))

	_, err = f.usecase.GetRevenue(context.Background(), adminActor, 400)
	assert.Equal(t, constvars.StatusBadRequest, exceptions.StatusCode(err))

	f.repo.AssertNotCalled(t, "GetRevenue", mock.Anything, mock.Anything)
}

func TestDashboardUsecase_Limits(t *testing.T) {
	f := newDashboardFixture()
	f.patients.On("FindRecent", mock.Anything, constvars.DashboardRecentPatientsLimit).Return([]models.Patient{}, nil)
	f.repo.On("GetDoctorPerformance", mock.Anything, constvars.DashboardListMaxLimit).Return([]models.DoctorPerformance{}, nil)

	_, err := f.usecase.GetRecentPatients(context.Background(), doctorActor, 0)
	require.NoError(t, err)
	_, err = f.usecase.GetDoctorPerformance(context.Background(), adminActor, 500)
	require.NoError(t, err)

	f.patients.AssertExpectations(t)
	f.repo.AssertExpectations(t)
}
