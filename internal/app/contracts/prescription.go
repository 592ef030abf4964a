package contracts

import (
	"context"
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/dto/requests"
)

type PrescriptionRepository interface {
	Create(ctx context.Context, prescription *models.Prescription) (*models.Prescription, error)
	FindByID(ctx context.Context, prescriptionID int64) (*models.Prescription, error)
	FindAll(ctx context.Context, filter models.PrescriptionFilter) ([]models.Prescription, int, error)
	Update(ctx context.Context, prescription *models.Prescription) (*models.Prescription, error)
	Delete(ctx context.Context, prescriptionID int64) error
}

type PrescriptionUsecase interface {
	Create(ctx context.Context, actor models.ActorContext, request *requests.CreatePrescription) (*models.Prescription, error)
	FindByID(ctx context.Context, actor models.ActorContext, prescriptionID int64) (*models.Prescription, error)
	FindAll(ctx context.Context, actor models.ActorContext, filter models.PrescriptionFilter) ([]models.Prescription, int, error)
	FindByPatient(ctx context.Context, actor models.ActorContext, patientID int64, pagination models.Pagination) ([]models.Prescription, int, error)
	Update(ctx context.Context, actor models.ActorContext, prescriptionID int64, request *requests.UpdatePrescription) (*models.Prescription, error)
	Delete(ctx context.Context, actor models.ActorContext, prescriptionID int64) error
}
