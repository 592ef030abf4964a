package dashboard

import (
	"context"
	"hospital-service/internal/app/contracts"
	"hospital-service/internal/app/models"
	"hospital-service/internal/app/services/shared/access"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/exceptions"
	"hospital-service/internal/pkg/utils"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type dashboardUsecase struct {
	DashboardRepository   contracts.DashboardRepository
	AppointmentRepository contracts.AppointmentRepository
	PatientRepository     contracts.PatientRepository
	RedisRepository       contracts.RedisRepository
	CacheTTL              time.Duration
	Log                   *zap.Logger
	now                   func() time.Time
}

func NewDashboardUsecase(
	dashboardRepository contracts.DashboardRepository,
	appointmentRepository contracts.AppointmentRepository,
	patientRepository contracts.PatientRepository,
	redisRepository contracts.RedisRepository,
	cacheTTL time.Duration,
	logger *zap.Logger,
) contracts.DashboardUsecase {
	return &dashboardUsecase{
		DashboardRepository:   dashboardRepository,
		AppointmentRepository: appointmentRepository,
		PatientRepository:     patientRepository,
		RedisRepository:       redisRepository,
		CacheTTL:              cacheTTL,
		Log:                   logger,
		now:                   time.Now,
	}
}

// GetStats serves the hospital wide counters. They are identical for every caller, so one
// Redis entry is shared and a Redis outage only costs a database round trip.
func (uc *dashboardUsecase) GetStats(ctx context.Context, actor models.ActorContext) (*models.DashboardStats, error) {
	if err := access.Authorize(actor, access.ResourceDashboard, models.Owner{}, access.ActionRead); err != nil {
		return nil, err
	}

	requestID := utils.GetRequestID(ctx)
	cached, err := uc.RedisRepository.Get(ctx, constvars.RedisKeyDashboardStats)
	if err != nil {
		uc.Log.Warn("dashboardUsecase.GetStats cache read failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	} else if cached != "" {
		stats := new(models.DashboardStats)
		if err := json.Unmarshal([]byte(cached), stats); err == nil {
			return stats, nil
		}
	}

	stats, err := uc.DashboardRepository.GetStats(ctx, uc.now())
	if err != nil {
		return nil, err
	}

	if err := uc.RedisRepository.Set(ctx, constvars.RedisKeyDashboardStats, stats, uc.CacheTTL); err != nil {
		uc.Log.Warn("dashboardUsecase.GetStats cache write failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, constvars.RedisKeyDashboardStats),
			zap.Error(err),
		)
	}
	return stats, nil
}

// GetTodayAppointments lists the day's appointments that still hold a slot, narrowed to the
// caller's own rows for doctors and patients.
func (uc *dashboardUsecase) GetTodayAppointments(ctx context.Context, actor models.ActorContext) ([]models.Appointment, error) {
	var owner models.Owner
	switch actor.Role {
	case models.RoleDoctor:
		owner.DoctorID = actor.RefID
	case models.RolePatient:
		owner.PatientID = actor.RefID
	}

	if err := access.Authorize(actor, access.ResourceAppointment, owner, access.ActionRead); err != nil {
		return nil, err
	}

	today := uc.now().Format(constvars.DateLayout)
	return uc.AppointmentRepository.FindActiveByDate(ctx, today, owner.DoctorID, owner.PatientID)
}

func (uc *dashboardUsecase) GetRecentPatients(ctx context.Context, actor models.ActorContext, limit int) ([]models.Patient, error) {
	if err := access.Authorize(actor, access.ResourcePatient, models.Owner{}, access.ActionRead); err != nil {
		return nil, err
	}
	return uc.PatientRepository.FindRecent(ctx, clampLimit(limit, constvars.DashboardRecentPatientsLimit))
}

func (uc *dashboardUsecase) GetRevenue(ctx context.Context, actor models.ActorContext, days int) (*models.RevenueStats, error) {
	if err := requireBackOffice(actor, access.ResourceBilling); err != nil {
		return nil, err
	}

	if days == 0 {
		days = constvars.DashboardRevenueDefaultDays
	}
	if days < 1 || days > constvars.DashboardRevenueMaxDays {
		return nil, exceptions.ErrInvalidInput(nil, "days must be between 1 and 365")
	}

	since := utils.StartOfDay(uc.now()).AddDate(0, 0, -days)
	revenue, err := uc.DashboardRepository.GetRevenue(ctx, since)
	if err != nil {
		return nil, err
	}
	revenue.Days = days
	return revenue, nil
}

func (uc *dashboardUsecase) GetDoctorPerformance(ctx context.Context, actor models.ActorContext, limit int) ([]models.DoctorPerformance, error) {
	if err := requireBackOffice(actor, access.ResourceDashboard); err != nil {
		return nil, err
	}
	return uc.DashboardRepository.GetDoctorPerformance(ctx, clampLimit(limit, constvars.DashboardDoctorPerformanceTop))
}

// requireBackOffice limits the financial and staffing views to admins and staff.
func requireBackOffice(actor models.ActorContext, resource access.Resource) error {
	if actor.IsAdmin() || actor.IsStaff() {
		return nil
	}
	return exceptions.ErrForbiddenAccess(nil, actor.Role, actor.RefID, string(access.ActionRead), string(resource))
}

func clampLimit(limit, fallback int) int {
	if limit <= 0 {
		return fallback
	}
	if limit > constvars.DashboardListMaxLimit {
		return constvars.DashboardListMaxLimit
	}
	return limit
}
