package patients

import (
	"context"
	"errors"
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

type patientUsecase struct {
	PatientRepository contracts.PatientRepository
	Log               *zap.Logger
	now               func() time.Time
}

func NewPatientUsecase(patientRepository contracts.PatientRepository, logger *zap.Logger) contracts.PatientUsecase {
	return &patientUsecase{
		PatientRepository: patientRepository,
		Log:               logger,
		now:               time.Now,
	}
}

func (uc *patientUsecase) Create(ctx context.Context, actor models.ActorContext, request *requests.CreatePatient) (*models.Patient, error) {
	if err := access.Authorize(actor, access.ResourcePatient, models.Owner{}, access.ActionWrite); err != nil {
		return nil, err
	}

	patient := &models.Patient{
		FirstName:              request.FirstName,
		LastName:               request.LastName,
		Gender:                 request.Gender,
		BloodGroup:             request.BloodGroup,
		ContactNumber:          request.ContactNumber,
		Email:                  request.Email,
		Address:                request.Address,
		EmergencyContact:       request.EmergencyContact,
		EmergencyContactNumber: request.EmergencyContactNumber,
	}
	if request.DateOfBirth != "" {
		dateOfBirth, err := utils.ParseDate(request.DateOfBirth)
		if err != nil {
			return nil, exceptions.ErrCannotParseDate(err)
		}
		patient.DateOfBirth = &dateOfBirth
	}

	return CreateWithPatientNumber(ctx, uc.PatientRepository, uc.Log, patient, uc.now)
}

// CreateWithPatientNumber inserts patient under a freshly generated patient number, generating a
// new one whenever the insert collides on patients_patient_number_key.
func CreateWithPatientNumber(ctx context.Context, repo contracts.PatientRepository, logger *zap.Logger, patient *models.Patient, now func() time.Time) (*models.Patient, error) {
	requestID := utils.GetRequestID(ctx)

	var lastErr error
	for attempt := 1; attempt <= constvars.GeneratedNumberMaxAttempts; attempt++ {
		patient.PatientNumber = utils.GeneratePatientNumber(now())

		created, err := repo.Create(ctx, patient)
		if err == nil {
			utils.LogBusinessEvent(logger, "patient_created", requestID,
				zap.Int64(constvars.LoggingPatientIDKey, created.ID),
				zap.String(constvars.LoggingPatientNumberKey, created.PatientNumber),
			)
			return created, nil
		}

		constraint, ok := utils.UniqueViolation(err)
		if !ok || constraint != constvars.ConstraintPatientNumberKey {
			return nil, err
		}

		logger.Warn("patientUsecase.Create patient number collision, regenerating",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientNumberKey, patient.PatientNumber),
			zap.Int(constvars.LoggingAttemptKey, attempt),
		)
		lastErr = err
	}

	return nil, exceptions.ErrGeneratedNumberExhausted(lastErr, "patient_number", constvars.GeneratedNumberMaxAttempts)
}

func (uc *patientUsecase) FindByID(ctx context.Context, actor models.ActorContext, patientID int64) (*models.Patient, error) {
	patient, err := uc.findPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}

	if err := access.Authorize(actor, access.ResourcePatient, patient.Owner(), access.ActionRead); err != nil {
		return nil, err
	}
	return patient, nil
}

func (uc *patientUsecase) FindAll(ctx context.Context, actor models.ActorContext, filter models.PatientFilter) ([]models.Patient, int, error) {
	if err := access.Authorize(actor, access.ResourcePatient, models.Owner{}, access.ActionRead); err != nil {
		return nil, 0, err
	}
	return uc.PatientRepository.FindAll(ctx, filter)
}

func (uc *patientUsecase) Update(ctx context.Context, actor models.ActorContext, patientID int64, request *requests.UpdatePatient) (*models.Patient, error) {
	patient, err := uc.findPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}

	if err := access.Authorize(actor, access.ResourcePatient, patient.Owner(), access.ActionWrite); err != nil {
		return nil, err
	}

	if request.FirstName != nil {
		patient.FirstName = *request.FirstName
	}
	if request.LastName != nil {
		patient.LastName = *request.LastName
	}
	if request.DateOfBirth != nil {
		if *request.DateOfBirth == "" {
			patient.DateOfBirth = nil
		} else {
			dateOfBirth, err := utils.ParseDate(*request.DateOfBirth)
			if err != nil {
				return nil, exceptions.ErrCannotParseDate(err)
			}
			patient.DateOfBirth = &dateOfBirth
		}
	}
	if request.Gender != nil {
		patient.Gender = *request.Gender
	}
	if request.BloodGroup != nil {
		patient.BloodGroup = *request.BloodGroup
	}
	if request.ContactNumber != nil {
		patient.ContactNumber = *request.ContactNumber
	}
	if request.Email != nil {
		patient.Email = *request.Email
	}
	if request.Address != nil {
		patient.Address = *request.Address
	}
	if request.EmergencyContact != nil {
		patient.EmergencyContact = *request.EmergencyContact
	}
	if request.EmergencyContactNumber != nil {
		patient.EmergencyContactNumber = *request.EmergencyContactNumber
	}

	updated, err := uc.PatientRepository.Update(ctx, patient)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, exceptions.ErrNotFound(nil, string(access.ResourcePatient), patientID)
	}
	return updated, nil
}

func (uc *patientUsecase) Delete(ctx context.Context, actor models.ActorContext, patientID int64) error {
	patient, err := uc.findPatient(ctx, patientID)
	if err != nil {
		return err
	}

	// patients may edit their profile but never remove it
	if actor.IsPatient() {
		return exceptions.ErrForbiddenAccess(errors.New("patients cannot delete patient records"), actor.Role, actor.RefID, string(access.ActionWrite), string(access.ResourcePatient))
	}
	if err := access.Authorize(actor, access.ResourcePatient, patient.Owner(), access.ActionWrite); err != nil {
		return err
	}

	if err := uc.PatientRepository.Delete(ctx, patientID); err != nil {
		return err
	}

	utils.LogBusinessEvent(uc.Log, "patient_deleted", utils.GetRequestID(ctx),
		zap.Int64(constvars.LoggingPatientIDKey, patientID),
		zap.String(constvars.LoggingActorRoleKey, actor.Role),
	)
	return nil
}

func (uc *patientUsecase) findPatient(ctx context.Context, patientID int64) (*models.Patient, error) {
	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrNotFound(nil, string(access.ResourcePatient), patientID)
	}
	return patient, nil
}
