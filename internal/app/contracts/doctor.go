package contracts

import (
	"context"
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/dto/requests"
)

type DoctorRepository interface {
	Create(ctx context.Context, doctor *models.Doctor) (*models.Doctor, error)
	FindByID(ctx context.Context, doctorID int64) (*models.Doctor, error)
	FindAll(ctx context.Context, filter models.DoctorFilter) ([]models.Doctor, int, error)
	Update(ctx context.Context, doctor *models.Doctor) (*models.Doctor, error)
	Delete(ctx context.Context, doctorID int64) error
}

type DoctorUsecase interface {
	Create(ctx context.Context, actor models.ActorContext, request *requests.CreateDoctor) (*models.Doctor, error)
	FindByID(ctx context.Context, actor models.ActorContext, doctorID int64) (*models.Doctor, error)
	FindAll(ctx context.Context, actor models.ActorContext, filter models.DoctorFilter) ([]models.Doctor, int, error)
	Update(ctx context.Context, actor models.ActorContext, doctorID int64, request *requests.UpdateDoctor) (*models.Doctor, error)
	Delete(ctx context.Context, actor models.ActorContext, doctorID int64) error
}
