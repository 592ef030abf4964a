package contracts

import (
	"context"
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/dto/requests"
)

type MedicalRecordRepository interface {
	Create(ctx context.Context, record *models.MedicalRecord) (*models.MedicalRecord, error)
	FindByID(ctx context.Context, recordID int64) (*models.MedicalRecord, error)
	FindAll(ctx context.Context, filter models.MedicalRecordFilter) ([]models.MedicalRecord, int, error)
	Update(ctx context.Context, record *models.MedicalRecord) (*models.MedicalRecord, error)
	Delete(ctx context.Context, recordID int64) error
}

type MedicalRecordUsecase interface {
	Create(ctx context.Context, actor models.ActorContext, request *requests.CreateMedicalRecord) (*models.MedicalRecord, error)
	FindByID(ctx context.Context, actor models.ActorContext, recordID int64) (*models.MedicalRecord, error)
	FindAll(ctx context.Context, actor models.ActorContext, filter models.MedicalRecordFilter) ([]models.MedicalRecord, int, error)
	FindByPatient(ctx context.Context, actor models.ActorContext, patientID int64, pagination models.Pagination) ([]models.MedicalRecord, int, error)
	Update(ctx context.Context, actor models.ActorContext, recordID int64, request *requests.UpdateMedicalRecord) (*models.MedicalRecord, error)
	Delete(ctx context.Context, actor models.ActorContext, recordID int64) error
	UploadAttachment(ctx context.Context, actor models.ActorContext, recordID int64, request *requests.UploadAttachment) (*models.Attachment, error)
	FindAttachments(ctx context.Context, actor models.ActorContext, recordID int64) ([]models.Attachment, error)
}
