package contracts

import (
	"context"
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/dto/requests"
)

type PatientRepository interface {
	Create(ctx context.Context, patient *models.Patient) (*models.Patient, error)
	FindByID(ctx context.Context, patientID int64) (*models.Patient, error)
	FindAll(ctx context.Context, filter models.PatientFilter) ([]models.Patient, int, error)
	FindRecent(ctx context.Context, limit int) ([]models.Patient, error)
	Update(ctx context.Context, patient *models.Patient) (*models.Patient, error)
	Delete(ctx context.Context, patientID int64) error
}

type PatientUsecase interface {
	Create(ctx context.Context, actor models.ActorContext, request *requests.CreatePatient) (*models.Patient, error)
	FindByID(ctx context.Context, actor models.ActorContext, patientID int64) (*models.Patient, error)
	FindAll(ctx context.Context, actor models.ActorContext, filter models.PatientFilter) ([]models.Patient, int, error)
	Update(ctx context.Context, actor models.ActorContext, patientID int64, request *requests.UpdatePatient) (*models.Patient, error)
	Delete(ctx context.Context, actor models.ActorContext, patientID int64) error
}
