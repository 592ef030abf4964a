package contracts

import (
	"context"
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/dto/requests"
)

type StaffRepository interface {
	Create(ctx context.Context, staff *models.Staff) (*models.Staff, error)
	FindByID(ctx context.Context, staffID int64) (*models.Staff, error)
	FindAll(ctx context.Context, filter models.StaffFilter) ([]models.Staff, int, error)
	Update(ctx context.Context, staff *models.Staff) (*models.Staff, error)
	Delete(ctx context.Context, staffID int64) error
}

type StaffUsecase interface {
	Create(ctx context.Context, actor models.ActorContext, request *requests.CreateStaff) (*models.Staff, error)
	FindByID(ctx context.Context, actor models.ActorContext, staffID int64) (*models.Staff, error)
	FindAll(ctx context.Context, actor models.ActorContext, filter models.StaffFilter) ([]models.Staff, int, error)
	Update(ctx context.Context, actor models.ActorContext, staffID int64, request *requests.UpdateStaff) (*models.Staff, error)
	Delete(ctx context.Context, actor models.ActorContext, staffID int64) error
}
