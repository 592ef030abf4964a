package doctors

import (
	"context"
	"hospital-service/internal/app/contracts"
	"hospital-service/internal/app/models"
	"hospital-service/internal/app/services/shared/access"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/exceptions"
	"hospital-service/internal/pkg/utils"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type doctorUsecase struct {
	DoctorRepository contracts.DoctorRepository
	Log              *zap.Logger
}

func NewDoctorUsecase(doctorRepository contracts.DoctorRepository, logger *zap.Logger) contracts.DoctorUsecase {
	return &doctorUsecase{
		DoctorRepository: doctorRepository,
		Log:              logger,
	}
}

func (uc *doctorUsecase) Create(ctx context.Context, actor models.ActorContext, request *requests.CreateDoctor) (*models.Doctor, error) {
	if err := access.Authorize(actor, access.ResourceDoctor, models.Owner{}, access.ActionWrite); err != nil {
		return nil, err
	}

	doctor := &models.Doctor{
		FirstName:        request.FirstName,
		LastName:         request.LastName,
		ContactNumber:    request.ContactNumber,
		Email:            request.Email,
		SpecializationID: request.SpecializationID,
		DepartmentID:     request.DepartmentID,
		LicenseNumber:    emptyToNil(request.LicenseNumber),
		Qualification:    request.Qualification,
		ExperienceYears:  request.ExperienceYears,
		ConsultationFee:  decimal.Zero,
	}
	if request.ConsultationFee != nil {
		if request.ConsultationFee.IsNegative() {
			return nil, exceptions.ErrInvalidInput(nil, "consultation_fee must not be negative")
		}
		doctor.ConsultationFee = *request.ConsultationFee
	}

	created, err := uc.DoctorRepository.Create(ctx, doctor)
	if err != nil {
		return nil, err
	}

	utils.LogBusinessEvent(uc.Log, "doctor_created", utils.GetRequestID(ctx),
		zap.Int64(constvars.LoggingDoctorIDKey, created.ID),
	)
	return created, nil
}

func (uc *doctorUsecase) FindByID(ctx context.Context, actor models.ActorContext, doctorID int64) (*models.Doctor, error) {
	if err := access.Authorize(actor, access.ResourceDoctor, models.Owner{DoctorID: doctorID}, access.ActionRead); err != nil {
		return nil, err
	}
	return uc.findDoctor(ctx, doctorID)
}

func (uc *doctorUsecase) FindAll(ctx context.Context, actor models.ActorContext, filter models.DoctorFilter) ([]models.Doctor, int, error) {
	if err := access.Authorize(actor, access.ResourceDoctor, models.Owner{}, access.ActionRead); err != nil {
		return nil, 0, err
	}
	return uc.DoctorRepository.FindAll(ctx, filter)
}

func (uc *doctorUsecase) Update(ctx context.Context, actor models.ActorContext, doctorID int64, request *requests.UpdateDoctor) (*models.Doctor, error) {
	if err := access.Authorize(actor, access.ResourceDoctor, models.Owner{DoctorID: doctorID}, access.ActionWrite); err != nil {
		return nil, err
	}

	doctor, err := uc.findDoctor(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	if request.FirstName != nil {
		doctor.FirstName = *request.FirstName
	}
	if request.LastName != nil {
		doctor.LastName = *request.LastName
	}
	if request.ContactNumber != nil {
		doctor.ContactNumber = *request.ContactNumber
	}
	if request.Email != nil {
		doctor.Email = *request.Email
	}
	if request.SpecializationID != nil {
		doctor.SpecializationID = *request.SpecializationID
	}
	if request.DepartmentID != nil {
		doctor.DepartmentID = request.DepartmentID
	}
	if request.LicenseNumber != nil {
		doctor.LicenseNumber = emptyToNil(request.LicenseNumber)
	}
	if request.Qualification != nil {
		doctor.Qualification = *request.Qualification
	}
	if request.ExperienceYears != nil {
		doctor.ExperienceYears = *request.ExperienceYears
	}
	if request.ConsultationFee != nil {
		if request.ConsultationFee.IsNegative() {
			return nil, exceptions.ErrInvalidInput(nil, "consultation_fee must not be negative")
		}
		doctor.ConsultationFee = *request.ConsultationFee
	}

	updated, err := uc.DoctorRepository.Update(ctx, doctor)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, exceptions.ErrNotFound(nil, string(access.ResourceDoctor), doctorID)
	}
	return updated, nil
}

func (uc *doctorUsecase) Delete(ctx context.Context, actor models.ActorContext, doctorID int64) error {
	if err := access.Authorize(actor, access.ResourceDoctor, models.Owner{DoctorID: doctorID}, access.ActionWrite); err != nil {
		return err
	}

	if _, err := uc.findDoctor(ctx, doctorID); err != nil {
		return err
	}

	if err := uc.DoctorRepository.Delete(ctx, doctorID); err != nil {
		return err
	}

	utils.LogBusinessEvent(uc.Log, "doctor_deleted", utils.GetRequestID(ctx),
		zap.Int64(constvars.LoggingDoctorIDKey, doctorID),
	)
	return nil
}

func (uc *doctorUsecase) findDoctor(ctx context.Context, doctorID int64) (*models.Doctor, error) {
	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrNotFound(nil, string(access.ResourceDoctor), doctorID)
	}
	return doctor, nil
}

// license numbers are unique when present, so blank input is stored as NULL
func emptyToNil(value *string) *string {
	if value == nil || *value == "" {
		return nil
	}
	return value
}
