package prescriptions

import (
	"context"
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

type prescriptionUsecase struct {
	PrescriptionRepository  contracts.PrescriptionRepository
	MedicalRecordRepository contracts.MedicalRecordRepository
	PatientRepository       contracts.PatientRepository
	DoctorRepository        contracts.DoctorRepository
	Log                     *zap.Logger
}

func NewPrescriptionUsecase(
	prescriptionRepository contracts.PrescriptionRepository,
	medicalRecordRepository contracts.MedicalRecordRepository,
	patientRepository contracts.PatientRepository,
	doctorRepository contracts.DoctorRepository,
	logger *zap.Logger,
) contracts.PrescriptionUsecase {
	return &prescriptionUsecase{
		PrescriptionRepository:  prescriptionRepository,
		MedicalRecordRepository: medicalRecordRepository,
		PatientRepository:       patientRepository,
		DoctorRepository:        doctorRepository,
		Log:                     logger,
	}
}

func (uc *prescriptionUsecase) Create(ctx context.Context, actor models.ActorContext, request *requests.CreatePrescription) (*models.Prescription, error) {
	doctorID := request.DoctorID
	if actor.IsDoctor() && doctorID == 0 {
		doctorID = actor.RefID
	}
	if doctorID == 0 {
		return nil, exceptions.ErrInvalidInput(nil, "doctor_id is required")
	}
	if len(request.Medications) == 0 {
		return nil, exceptions.ErrInvalidInput(nil, "medications must contain at least one item")
	}

	if err := access.Authorize(actor, access.ResourcePrescription, models.Owner{PatientID: request.PatientID, DoctorID: doctorID}, access.ActionWrite); err != nil {
		return nil, err
	}

	validUntil, err := parseValidUntil(request.ValidUntil)
	if err != nil {
		return nil, err
	}

	if err := uc.ensureParticipants(ctx, request.PatientID, doctorID); err != nil {
		return nil, err
	}
	if request.MedicalRecordID != nil {
		if err := uc.ensureMedicalRecord(ctx, *request.MedicalRecordID, request.PatientID); err != nil {
			return nil, err
		}
	}

	created, err := uc.PrescriptionRepository.Create(ctx, &models.Prescription{
		PatientID:       request.PatientID,
		DoctorID:        doctorID,
		MedicalRecordID: request.MedicalRecordID,
		Medications:     models.Medications(request.Medications),
		Instructions:    request.Instructions,
		ValidUntil:      validUntil,
		Status:          models.PrescriptionStatusActive,
	})
	if err != nil {
		return nil, err
	}

	utils.LogBusinessEvent(uc.Log, "prescription_created", utils.GetRequestID(ctx),
		zap.Int64(constvars.LoggingPrescriptionIDKey, created.ID),
		zap.Int64(constvars.LoggingPatientIDKey, created.PatientID),
		zap.Int64(constvars.LoggingDoctorIDKey, created.DoctorID),
		zap.Int(constvars.LoggingCountKey, len(created.Medications)),
	)
	return created, nil
}

func (uc *prescriptionUsecase) FindByID(ctx context.Context, actor models.ActorContext, prescriptionID int64) (*models.Prescription, error) {
	return uc.findAuthorized(ctx, actor, prescriptionID, access.ActionRead)
}

func (uc *prescriptionUsecase) FindAll(ctx context.Context, actor models.ActorContext, filter models.PrescriptionFilter) ([]models.Prescription, int, error) {
	if actor.IsDoctor() {
		filter.DoctorID = actor.RefID
	}
	if actor.IsPatient() {
		filter.PatientID = actor.RefID
	}
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, 0, exceptions.ErrInvalidInput(nil, "status must be one of Active, Completed, Cancelled")
	}

	if err := access.Authorize(actor, access.ResourcePrescription, models.Owner{PatientID: filter.PatientID, DoctorID: filter.DoctorID}, access.ActionRead); err != nil {
		return nil, 0, err
	}
	return uc.PrescriptionRepository.FindAll(ctx, filter)
}

func (uc *prescriptionUsecase) FindByPatient(ctx context.Context, actor models.ActorContext, patientID int64, pagination models.Pagination) ([]models.Prescription, int, error) {
	filter := models.PrescriptionFilter{PatientID: patientID, Pagination: pagination}
	if actor.IsDoctor() {
		filter.DoctorID = actor.RefID
	}

	if err := access.Authorize(actor, access.ResourcePrescription, models.Owner{PatientID: patientID, DoctorID: filter.DoctorID}, access.ActionRead); err != nil {
		return nil, 0, err
	}

	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, 0, err
	}
	if patient == nil {
		return nil, 0, exceptions.ErrNotFound(nil, string(access.ResourcePatient), patientID)
	}

	return uc.PrescriptionRepository.FindAll(ctx, filter)
}

func (uc *prescriptionUsecase) Update(ctx context.Context, actor models.ActorContext, prescriptionID int64, request *requests.UpdatePrescription) (*models.Prescription, error) {
	prescription, err := uc.findAuthorized(ctx, actor, prescriptionID, access.ActionWrite)
	if err != nil {
		return nil, err
	}

	if request.Medications != nil {
		if len(*request.Medications) == 0 {
			return nil, exceptions.ErrInvalidInput(nil, "medications must contain at least one item")
		}
		prescription.Medications = models.Medications(*request.Medications)
	}
	if request.Instructions != nil {
		prescription.Instructions = *request.Instructions
	}
	if request.ValidUntil != nil {
		prescription.ValidUntil, err = parseValidUntil(*request.ValidUntil)
		if err != nil {
			return nil, err
		}
	}
	if request.Status != nil {
		status := models.PrescriptionStatus(*request.Status)
		if !status.IsValid() {
			return nil, exceptions.ErrInvalidInput(nil, "status must be one of Active, Completed, Cancelled")
		}
		prescription.Status = status
	}

	updated, err := uc.PrescriptionRepository.Update(ctx, prescription)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, exceptions.ErrNotFound(nil, string(access.ResourcePrescription), prescriptionID)
	}

	utils.LogBusinessEvent(uc.Log, "prescription_updated", utils.GetRequestID(ctx),
		zap.Int64(constvars.LoggingPrescriptionIDKey, prescriptionID),
		zap.String(constvars.LoggingStatusKey, string(updated.Status)),
	)
	return updated, nil
}

func (uc *prescriptionUsecase) Delete(ctx context.Context, actor models.ActorContext, prescriptionID int64) error {
	if _, err := uc.findAuthorized(ctx, actor, prescriptionID, access.ActionWrite); err != nil {
		return err
	}

	if err := uc.PrescriptionRepository.Delete(ctx, prescriptionID); err != nil {
		return err
	}

	utils.LogBusinessEvent(uc.Log, "prescription_deleted", utils.GetRequestID(ctx),
		zap.Int64(constvars.LoggingPrescriptionIDKey, prescriptionID),
		zap.String(constvars.LoggingActorRoleKey, actor.Role),
	)
	return nil
}

func (uc *prescriptionUsecase) findAuthorized(ctx context.Context, actor models.ActorContext, prescriptionID int64, action access.Action) (*models.Prescription, error) {
	prescription, err := uc.PrescriptionRepository.FindByID(ctx, prescriptionID)
	if err != nil {
		return nil, err
	}
	if prescription == nil {
		return nil, exceptions.ErrNotFound(nil, string(access.ResourcePrescription), prescriptionID)
	}

	if err := access.Authorize(actor, access.ResourcePrescription, prescription.Owner(), action); err != nil {
		return nil, err
	}
	return prescription, nil
}

func (uc *prescriptionUsecase) ensureParticipants(ctx context.Context, patientID, doctorID int64) error {
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

// ensureMedicalRecord rejects a link to a record that belongs to someone else.
func (uc *prescriptionUsecase) ensureMedicalRecord(ctx context.Context, recordID, patientID int64) error {
	record, err := uc.MedicalRecordRepository.FindByID(ctx, recordID)
	if err != nil {
		return err
	}
	if record == nil {
		return exceptions.ErrNotFound(nil, string(access.ResourceMedicalRecord), recordID)
	}
	if record.PatientID != patientID {
		return exceptions.ErrInvalidInput(nil, "medical_record_id belongs to a different patient")
	}
	return nil
}

func parseValidUntil(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	validUntil, err := utils.ParseDate(value)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}
	return &validUntil, nil
}
