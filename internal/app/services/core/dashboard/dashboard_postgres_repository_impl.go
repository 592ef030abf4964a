package dashboard

import (
	"context"
	"database/sql"
	"hospital-service/internal/app/contracts"
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/exceptions"
	"hospital-service/internal/pkg/queries"
	"hospital-service/internal/pkg/utils"
	"sync"
	"time"

	"go.uber.org/zap"
)

type dashboardPostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

var (
	dashboardPostgresRepositoryInstance contracts.DashboardRepository
	onceDashboardPostgresRepository     sync.Once
)

func NewDashboardPostgresRepository(db *sql.DB, logger *zap.Logger) contracts.DashboardRepository {
	onceDashboardPostgresRepository.Do(func() {
		instance := &dashboardPostgresRepository{
			DB:  db,
			Log: logger,
		}
		dashboardPostgresRepositoryInstance = instance
	})
	return dashboardPostgresRepositoryInstance
}

func (repo *dashboardPostgresRepository) GetStats(ctx context.Context, today time.Time) (*models.DashboardStats, error) {
	requestID := utils.GetRequestID(ctx)
	repo.Log.Info("dashboardPostgresRepository.GetStats called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	date := today.Format(constvars.DateLayout)
	stats := &models.DashboardStats{AppointmentsByStatus: map[string]int64{}}

	err := repo.DB.QueryRowContext(ctx, queries.CountDashboardTotals, date).Scan(
		&stats.TotalPatients,
		&stats.TotalDoctors,
		&stats.TotalStaff,
		&stats.TodayAppointments,
		&stats.NewPatientsThisWeek,
	)
	if err != nil {
		repo.Log.Error("dashboardPostgresRepository.GetStats error counting totals",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}

	rows, err := repo.DB.QueryContext(ctx, queries.CountAppointmentsByStatus)
	if err != nil {
		repo.Log.Error("dashboardPostgresRepository.GetStats error grouping appointments",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			status string
			count  int64
		)
		if err := rows.Scan(&status, &count); err != nil {
			return nil, exceptions.ErrPostgresDBScanData(err)
		}
		stats.AppointmentsByStatus[status] = count
	}
	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}

	err = repo.DB.QueryRowContext(ctx, queries.GetMonthlyRevenue, date).Scan(&stats.MonthlyRevenue, &stats.MonthlyBillCount)
	if err != nil {
		repo.Log.Error("dashboardPostgresRepository.GetStats error summing monthly revenue",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}

	err = repo.DB.QueryRowContext(ctx, queries.GetPendingAmount).Scan(&stats.PendingAmount)
	if err != nil {
		repo.Log.Error("dashboardPostgresRepository.GetStats error summing pending amount",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}

	repo.Log.Info("dashboardPostgresRepository.GetStats succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return stats, nil
}

func (repo *dashboardPostgresRepository) GetRevenue(ctx context.Context, since time.Time) (*models.RevenueStats, error) {
	requestID := utils.GetRequestID(ctx)
	repo.Log.Info("dashboardPostgresRepository.GetRevenue called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Time(constvars.LoggingCutoffKey, since),
	)

	revenue := &models.RevenueStats{
		ByMethod: []models.RevenueByMethod{},
		Daily:    []models.DailyRevenue{},
	}

	err := repo.DB.QueryRowContext(ctx, queries.GetRevenueTotals, since).Scan(
		&revenue.TotalRevenue,
		&revenue.PaidAmount,
		&revenue.PendingAmount,
	)
	if err != nil {
		repo.Log.Error("dashboardPostgresRepository.GetRevenue error summing totals",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}

	methodRows, err := repo.DB.QueryContext(ctx, queries.GetRevenueByPaymentMethod, since)
	if err != nil {
		repo.Log.Error("dashboardPostgresRepository.GetRevenue error grouping payment methods",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer methodRows.Close()

	for methodRows.Next() {
		var byMethod models.RevenueByMethod
		if err := methodRows.Scan(&byMethod.PaymentMethod, &byMethod.Count, &byMethod.Total); err != nil {
			return nil, exceptions.ErrPostgresDBScanData(err)
		}
		revenue.ByMethod = append(revenue.ByMethod, byMethod)
	}
	if err := methodRows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}

	dailyRows, err := repo.DB.QueryContext(ctx, queries.GetDailyRevenue, since)
	if err != nil {
		repo.Log.Error("dashboardPostgresRepository.GetRevenue error grouping days",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer dailyRows.Close()

	for dailyRows.Next() {
		var daily models.DailyRevenue
		if err := dailyRows.Scan(&daily.Date, &daily.Revenue); err != nil {
			return nil, exceptions.ErrPostgresDBScanData(err)
		}
		revenue.Daily = append(revenue.Daily, daily)
	}
	if err := dailyRows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}

	repo.Log.Info("dashboardPostgresRepository.GetRevenue succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(revenue.Daily)),
	)
	return revenue, nil
}

func (repo *dashboardPostgresRepository) GetDoctorPerformance(ctx context.Context, limit int) ([]models.DoctorPerformance, error) {
	requestID := utils.GetRequestID(ctx)
	repo.Log.Info("dashboardPostgresRepository.GetDoctorPerformance called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	rows, err := repo.DB.QueryContext(ctx, queries.GetDoctorPerformance, limit)
	if err != nil {
		repo.Log.Error("dashboardPostgresRepository.GetDoctorPerformance error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	performance := []models.DoctorPerformance{}
	for rows.Next() {
		var row models.DoctorPerformance
		err := rows.Scan(
			&row.DoctorID,
			&row.DoctorName,
			&row.SpecializationName,
			&row.TotalAppointments,
			&row.CompletedAppointments,
		)
		if err != nil {
			return nil, exceptions.ErrPostgresDBScanData(err)
		}
		performance = append(performance, row)
	}
	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}

	repo.Log.Info("dashboardPostgresRepository.GetDoctorPerformance succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(performance)),
	)
	return performance, nil
}
