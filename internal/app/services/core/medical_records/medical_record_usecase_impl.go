package medical_records

import (
	"bytes"
	"context"
	"fmt"
	"hospital-service/internal/app/config"
	"hospital-service/internal/app/contracts"
	"hospital-service/internal/app/models"
	"hospital-service/internal/app/services/shared/access"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/exceptions"
	"hospital-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

type medicalRecordUsecase struct {
	MedicalRecordRepository contracts.MedicalRecordRepository
	PatientRepository       contracts.PatientRepository
	DoctorRepository        contracts.DoctorRepository
	Storage                 contracts.Storage
	InternalConfig          *config.InternalConfig
	Log                     *zap.Logger
}

func NewMedicalRecordUsecase(
	medicalRecordRepository contracts.MedicalRecordRepository,
	patientRepository contracts.PatientRepository,
	doctorRepository contracts.DoctorRepository,
	storage contracts.Storage,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.MedicalRecordUsecase {
	return &medicalRecordUsecase{
		MedicalRecordRepository: medicalRecordRepository,
		PatientRepository:       patientRepository,
		DoctorRepository:        doctorRepository,
		Storage:                 storage,
		InternalConfig:          internalConfig,
		Log:                     logger,
	}
}

func (uc *medicalRecordUsecase) Create(ctx context.Context, actor models.ActorContext, request *requests.CreateMedicalRecord) (*models.MedicalRecord, error) {
	doctorID := request.DoctorID
	if actor.IsDoctor() && doctorID == 0 {
		doctorID = actor.RefID
	}
	if doctorID == 0 {
		return nil, exceptions.ErrInvalidInput(nil, "doctor_id is required")
	}

	if err := access.Authorize(actor, access.ResourceMedicalRecord, models.Owner{PatientID: request.PatientID, DoctorID: doctorID}, access.ActionWrite); err != nil {
		return nil, err
	}

	record := &models.MedicalRecord{
		PatientID:     request.PatientID,
		DoctorID:      doctorID,
		AppointmentID: request.AppointmentID,
		Symptoms:      request.Symptoms,
		Diagnosis:     request.Diagnosis,
		TreatmentPlan: request.TreatmentPlan,
		Notes:         request.Notes,
	}
	if request.VitalSigns != nil {
		record.VitalSigns = *request.VitalSigns
	}
	if request.VisitDate != "" {
		visitDate, err := utils.ParseDate(request.VisitDate)
		if err != nil {
			return nil, exceptions.ErrCannotParseDate(err)
		}
		record.VisitDate = visitDate
	}

	if err := uc.ensureParticipants(ctx, record.PatientID, record.DoctorID); err != nil {
		return nil, err
	}

	created, err := uc.MedicalRecordRepository.Create(ctx, record)
	if err != nil {
		return nil, err
	}

	utils.LogBusinessEvent(uc.Log, "medical_record_created", utils.GetRequestID(ctx),
		zap.Int64(constvars.LoggingRecordIDKey, created.ID),
		zap.Int64(constvars.LoggingPatientIDKey, created.PatientID),
		zap.Int64(constvars.LoggingDoctorIDKey, created.DoctorID),
	)
	return created, nil
}

func (uc *medicalRecordUsecase) FindByID(ctx context.Context, actor models.ActorContext, recordID int64) (*models.MedicalRecord, error) {
	return uc.findAuthorized(ctx, actor, recordID, access.ActionRead)
}

func (uc *medicalRecordUsecase) FindAll(ctx context.Context, actor models.ActorContext, filter models.MedicalRecordFilter) ([]models.MedicalRecord, int, error) {
	if actor.IsDoctor() {
		filter.DoctorID = actor.RefID
	}
	if actor.IsPatient() {
		filter.PatientID = actor.RefID
	}

	if err := access.Authorize(actor, access.ResourceMedicalRecord, models.Owner{PatientID: filter.PatientID, DoctorID: filter.DoctorID}, access.ActionRead); err != nil {
		return nil, 0, err
	}
	return uc.MedicalRecordRepository.FindAll(ctx, filter)
}

// FindByPatient lists a patient's history. Doctors only ever see the entries they authored.
func (uc *medicalRecordUsecase) FindByPatient(ctx context.Context, actor models.ActorContext, patientID int64, pagination models.Pagination) ([]models.MedicalRecord, int, error) {
	filter := models.MedicalRecordFilter{PatientID: patientID, Pagination: pagination}
	if actor.IsDoctor() {
		filter.DoctorID = actor.RefID
	}

	if err := access.Authorize(actor, access.ResourceMedicalRecord, models.Owner{PatientID: patientID, DoctorID: filter.DoctorID}, access.ActionRead); err != nil {
		return nil, 0, err
	}

	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, 0, err
	}
	if patient == nil {
		return nil, 0, exceptions.ErrNotFound(nil, string(access.ResourcePatient), patientID)
	}

	return uc.MedicalRecordRepository.FindAll(ctx, filter)
}

func (uc *medicalRecordUsecase) Update(ctx context.Context, actor models.ActorContext, recordID int64, request *requests.UpdateMedicalRecord) (*models.MedicalRecord, error) {
	record, err := uc.findAuthorized(ctx, actor, recordID, access.ActionWrite)
	if err != nil {
		return nil, err
	}

	if request.Symptoms != nil {
		record.Symptoms = *request.Symptoms
	}
	if request.Diagnosis != nil {
		record.Diagnosis = *request.Diagnosis
	}
	if request.TreatmentPlan != nil {
		record.TreatmentPlan = *request.TreatmentPlan
	}
	if request.Notes != nil {
		record.Notes = *request.Notes
	}
	if request.VitalSigns != nil {
		record.VitalSigns = *request.VitalSigns
	}

	updated, err := uc.MedicalRecordRepository.Update(ctx, record)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, exceptions.ErrNotFound(nil, string(access.ResourceMedicalRecord), recordID)
	}

	utils.LogBusinessEvent(uc.Log, "medical_record_updated", utils.GetRequestID(ctx),
		zap.Int64(constvars.LoggingRecordIDKey, recordID),
	)
	return updated, nil
}

func (uc *medicalRecordUsecase) Delete(ctx context.Context, actor models.ActorContext, recordID int64) error {
	if _, err := uc.findAuthorized(ctx, actor, recordID, access.ActionWrite); err != nil {
		return err
	}

	if err := uc.MedicalRecordRepository.Delete(ctx, recordID); err != nil {
		return err
	}

	utils.LogBusinessEvent(uc.Log, "medical_record_deleted", utils.GetRequestID(ctx),
		zap.Int64(constvars.LoggingRecordIDKey, recordID),
		zap.String(constvars.LoggingActorRoleKey, actor.Role),
	)
	return nil
}

func (uc *medicalRecordUsecase) UploadAttachment(ctx context.Context, actor models.ActorContext, recordID int64, request *requests.UploadAttachment) (*models.Attachment, error) {
	if _, err := uc.findAuthorized(ctx, actor, recordID, access.ActionWrite); err != nil {
		return nil, err
	}

	maxSizeInMB := uc.InternalConfig.Minio.AttachmentMaxUploadSizeInMB
	if request.Size > maxSizeInMB*constvars.MB {
		return nil, exceptions.ErrFileTooLarge(nil, request.Size, maxSizeInMB)
	}

	bucketName := uc.InternalConfig.Minio.BucketName
	objectName := utils.GenerateObjectName(attachmentPrefix(recordID), request.FileName)
	objectName, err := uc.Storage.UploadFile(ctx, bucketName, objectName, bytes.NewReader(request.Content), request.Size, request.ContentType)
	if err != nil {
		uc.Log.Error("medicalRecordUsecase.UploadAttachment error uploading object",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingBucketKey, bucketName),
			zap.String(constvars.LoggingObjectKey, objectName),
			zap.Error(err),
		)
		return nil, err
	}

	url, err := uc.Storage.GetObjectUrlWithExpiryTime(ctx, bucketName, objectName, uc.urlExpiry())
	if err != nil {
		return nil, err
	}

	utils.LogBusinessEvent(uc.Log, "medical_record_attachment_uploaded", utils.GetRequestID(ctx),
		zap.Int64(constvars.LoggingRecordIDKey, recordID),
		zap.String(constvars.LoggingObjectKey, objectName),
	)
	return &models.Attachment{
		ObjectName:   objectName,
		FileName:     utils.OriginalFileName(objectName),
		Size:         request.Size,
		ContentType:  request.ContentType,
		LastModified: time.Now(),
		URL:          url,
	}, nil
}

func (uc *medicalRecordUsecase) FindAttachments(ctx context.Context, actor models.ActorContext, recordID int64) ([]models.Attachment, error) {
	if _, err := uc.findAuthorized(ctx, actor, recordID, access.ActionRead); err != nil {
		return nil, err
	}

	bucketName := uc.InternalConfig.Minio.BucketName
	attachments, err := uc.Storage.ListObjects(ctx, bucketName, attachmentPrefix(recordID))
	if err != nil {
		return nil, err
	}

	expiry := uc.urlExpiry()
	for i := range attachments {
		url, err := uc.Storage.GetObjectUrlWithExpiryTime(ctx, bucketName, attachments[i].ObjectName, expiry)
		if err != nil {
			return nil, err
		}
		attachments[i].URL = url
	}
	return attachments, nil
}

func (uc *medicalRecordUsecase) findAuthorized(ctx context.Context, actor models.ActorContext, recordID int64, action access.Action) (*models.MedicalRecord, error) {
	record, err := uc.MedicalRecordRepository.FindByID(ctx, recordID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, exceptions.ErrNotFound(nil, string(access.ResourceMedicalRecord), recordID)
	}

	if err := access.Authorize(actor, access.ResourceMedicalRecord, record.Owner(), action); err != nil {
		return nil, err
	}
	return record, nil
}

func (uc *medicalRecordUsecase) ensureParticipants(ctx context.Context, patientID, doctorID int64) error {
	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return err
	}
	if patient == nil {
		return exceptions.ErrNotFound(nil, string(access.ResourcePatient), patientID)
	}

	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return err
	}
	if doctor == nil {
		return exceptions.ErrNotFound(nil, string(access.ResourceDoctor), doctorID)
	}
	return nil
}

func (uc *medicalRecordUsecase) urlExpiry() time.Duration {
	return time.Duration(uc.InternalConfig.Minio.PreSignedUrlObjectExpiryTimeInHour) * time.Hour
}

func attachmentPrefix(recordID int64) string {
	return fmt.Sprintf(constvars.StorageMedicalRecordAttachmentPrefix, recordID)
}
