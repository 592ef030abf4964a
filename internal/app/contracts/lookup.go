package contracts

import (
	"context"
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/dto/requests"
)

type SpecializationRepository interface {
	Create(ctx context.Context, specialization *models.Specialization) (*models.Specialization, error)
	FindByID(ctx context.Context, specializationID int64) (*models.Specialization, error)
	FindAll(ctx context.Context) ([]models.Specialization, error)
	Update(ctx context.Context, specialization *models.Specialization) (*models.Specialization, error)
	Delete(ctx context.Context, specializationID int64) error
}

type SpecializationUsecase interface {
	Create(ctx context.Context, actor models.ActorContext, request *requests.Specialization) (*models.Specialization, error)
	FindByID(ctx context.Context, actor models.ActorContext, specializationID int64) (*models.Specialization, error)
	FindAll(ctx context.Context, actor models.ActorContext) ([]models.Specialization, error)
	Update(ctx context.Context, actor models.ActorContext, specializationID int64, request *requests.Specialization) (*models.Specialization, error)
	Delete(ctx context.Context, actor models.ActorContext, specializationID int64) error
}

type DepartmentRepository interface {
	Create(ctx context.Context, department *models.Department) (*models.Department, error)
	FindByID(ctx context.Context, departmentID int64) (*models.Department, error)
	FindAll(ctx context.Context) ([]models.Department, error)
	Update(ctx context.Context, department *models.Department) (*models.Department, error)
	Delete(ctx context.Context, departmentID int64) error
}

type DepartmentUsecase interface {
	Create(ctx context.Context, actor models.ActorContext, request *requests.Department) (*models.Department, error)
	FindByID(ctx context.Context, actor models.ActorContext, departmentID int64) (*models.Department, error)
	FindAll(ctx context.Context, actor models.ActorContext) ([]models.Department, error)
	Update(ctx context.Context, actor models.ActorContext, departmentID int64, request *requests.Department) (*models.Department, error)
	Delete(ctx context.Context, actor models.ActorContext, departmentID int64) error
}

type ClinicRepository interface {
	Create(ctx context.Context, clinic *models.Clinic) (*models.Clinic, error)
	FindByID(ctx context.Context, clinicID int64) (*models.Clinic, error)
	FindAll(ctx context.Context) ([]models.Clinic, error)
	Update(ctx context.Context, clinic *models.Clinic) (*models.Clinic, error)
	Delete(ctx context.Context, clinicID int64) error
}

type ClinicUsecase interface {
	Create(ctx context.Context, actor models.ActorContext, request *requests.Clinic) (*models.Clinic, error)
	FindByID(ctx context.Context, actor models.ActorContext, clinicID int64) (*models.Clinic, error)
	FindAll(ctx context.Context, actor models.ActorContext) ([]models.Clinic, error)
	Update(ctx context.Context, actor models.ActorContext, clinicID int64, request *requests.Clinic) (*models.Clinic, error)
	Delete(ctx context.Context, actor models.ActorContext, clinicID int64) error
}
