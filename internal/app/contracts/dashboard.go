package contracts

import (
	"context"
	"hospital-service/internal/app/models"
	"time"
)

type DashboardRepository interface {
	GetStats(ctx context.Context, today time.Time) (*models.DashboardStats, error)
	GetRevenue(ctx context.Context, since time.Time) (*models.RevenueStats, error)
	GetDoctorPerformance(ctx context.Context, limit int) ([]models.DoctorPerformance, error)
}

type DashboardUsecase interface {
	GetStats(ctx context.Context, actor models.ActorContext) (*models.DashboardStats, error)
	GetTodayAppointments(ctx context.Context, actor models.ActorContext) ([]models.Appointment, error)
	GetRecentPatients(ctx context.Context, actor models.ActorContext, limit int) ([]models.Patient, error)
	GetRevenue(ctx context.Context, actor models.ActorContext, days int) (*models.RevenueStats, error)
	GetDoctorPerformance(ctx context.Context, actor models.ActorContext, limit int) ([]models.DoctorPerformance, error)
}
