package auth

import (
	"context"
	"hospital-service/internal/app/config"
	"hospital-service/internal/app/contracts"
	"hospital-service/internal/app/models"
	"hospital-service/internal/app/services/core/patients"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/dto/responses"
	"hospital-service/internal/pkg/exceptions"
	"hospital-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

type authUsecase struct {
	UserRepository    contracts.UserRepository
	PatientRepository contracts.PatientRepository
	DoctorRepository  contracts.DoctorRepository
	StaffRepository   contracts.StaffRepository
	SessionService    contracts.SessionService
	InternalConfig    *config.InternalConfig
	Log               *zap.Logger
	now               func() time.Time
}

func NewAuthUsecase(
	userRepository contracts.UserRepository,
	patientRepository contracts.PatientRepository,
	doctorRepository contracts.DoctorRepository,
	staffRepository contracts.StaffRepository,
	sessionService contracts.SessionService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AuthUsecase {
	return &authUsecase{
		UserRepository:    userRepository,
		PatientRepository: patientRepository,
		DoctorRepository:  doctorRepository,
		StaffRepository:   staffRepository,
		SessionService:    sessionService,
		InternalConfig:    internalConfig,
		Log:               logger,
		now:               time.Now,
	}
}

// RegisterPatient creates the patient profile first and then the login pointing at it. When the
// login cannot be created the fresh profile is removed again.
func (uc *authUsecase) RegisterPatient(ctx context.Context, request *requests.RegisterPatient) (*responses.Register, error) {
	requestID := utils.GetRequestID(ctx)
	utils.SanitizeRegisterPatientRequest(request)

	existing, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrEmailAlreadyExist(nil)
	}

	passwordHash, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	patient := &models.Patient{
		FirstName:     request.FirstName,
		LastName:      request.LastName,
		Gender:        request.Gender,
		BloodGroup:    request.BloodGroup,
		ContactNumber: request.ContactNumber,
		Email:         request.Email,
		Address:       request.Address,
	}
	if request.DateOfBirth != "" {
		dateOfBirth, err := utils.ParseDate(request.DateOfBirth)
		if err != nil {
			return nil, exceptions.ErrCannotParseDate(err)
		}
		patient.DateOfBirth = &dateOfBirth
	}

	createdPatient, err := patients.CreateWithPatientNumber(ctx, uc.PatientRepository, uc.Log, patient, uc.now)
	if err != nil {
		return nil, err
	}

	user, err := uc.UserRepository.Create(ctx, &models.User{
		Email:        request.Email,
		PasswordHash: passwordHash,
		Role:         models.RolePatient,
		RefID:        &createdPatient.ID,
		IsActive:     true,
	})
	if err != nil {
		if deleteErr := uc.PatientRepository.Delete(ctx, createdPatient.ID); deleteErr != nil {
			uc.Log.Warn("authUsecase.RegisterPatient failed to remove orphaned patient",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Int64(constvars.LoggingPatientIDKey, createdPatient.ID),
				zap.Error(deleteErr),
			)
		}
		return nil, err
	}

	utils.LogBusinessEvent(uc.Log, "patient_registered", requestID,
		zap.Int64(constvars.LoggingUserIDKey, user.ID),
		zap.Int64(constvars.LoggingPatientIDKey, createdPatient.ID),
	)
	return &responses.Register{User: *user, Patient: *createdPatient}, nil
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	requestID := utils.GetRequestID(ctx)
	utils.SanitizeLoginRequest(request)

	user, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || !utils.CheckPasswordHash(request.Password, user.PasswordHash) {
		utils.LogSecurityEvent(uc.Log, "login_failed", requestID, "medium",
			zap.String(constvars.LoggingEmailKey, request.Email),
		)
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}
	if !user.IsActive {
		utils.LogSecurityEvent(uc.Log, "login_deactivated_account", requestID, "medium",
			zap.Int64(constvars.LoggingUserIDKey, user.ID),
		)
		return nil, exceptions.ErrAccountDeactivated(nil)
	}

	ttl := time.Duration(uc.InternalConfig.App.LoginSessionExpiredTimeInHours) * time.Hour
	session, err := uc.SessionService.CreateSession(ctx, user, ttl)
	if err != nil {
		return nil, err
	}

	token, err := utils.GenerateSessionJWT(session.SessionID, uc.InternalConfig.JWT.Secret, session.ExpiresAt)
	if err != nil {
		return nil, err
	}

	loggedInAt := uc.now()
	if err := uc.UserRepository.UpdateLastLogin(ctx, user.ID, loggedInAt); err != nil {
		uc.Log.Warn("authUsecase.Login last login not recorded",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingUserIDKey, user.ID),
			zap.Error(err),
		)
	} else {
		user.LastLogin = &loggedInAt
	}

	utils.LogBusinessEvent(uc.Log, "user_logged_in", requestID,
		zap.Int64(constvars.LoggingUserIDKey, user.ID),
		zap.String(constvars.LoggingActorRoleKey, user.Role),
	)
	return &responses.Login{
		Token:     token,
		ExpiresAt: session.ExpiresAt,
		User:      *user,
	}, nil
}

func (uc *authUsecase) Logout(ctx context.Context, session *models.Session) error {
	if err := uc.SessionService.DeleteSession(ctx, session.SessionID); err != nil {
		return err
	}

	utils.LogBusinessEvent(uc.Log, "user_logged_out", utils.GetRequestID(ctx),
		zap.Int64(constvars.LoggingUserIDKey, session.UserID),
	)
	return nil
}

func (uc *authUsecase) Me(ctx context.Context, actor models.ActorContext) (*responses.Me, error) {
	user, err := uc.findUser(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}

	response := &responses.Me{User: *user}
	if actor.RefID == 0 {
		return response, nil
	}

	switch actor.Role {
	case models.RolePatient:
		response.Patient, err = uc.PatientRepository.FindByID(ctx, actor.RefID)
	case models.RoleDoctor:
		response.Doctor, err = uc.DoctorRepository.FindByID(ctx, actor.RefID)
	case models.RoleStaff:
		response.Staff, err = uc.StaffRepository.FindByID(ctx, actor.RefID)
	}
	if err != nil {
		return nil, err
	}
	return response, nil
}

func (uc *authUsecase) UpdatePassword(ctx context.Context, actor models.ActorContext, request *requests.UpdatePassword) error {
	user, err := uc.findUser(ctx, actor.UserID)
	if err != nil {
		return err
	}

	if !utils.CheckPasswordHash(request.CurrentPassword, user.PasswordHash) {
		utils.LogSecurityEvent(uc.Log, "password_change_rejected", utils.GetRequestID(ctx), "medium",
			zap.Int64(constvars.LoggingUserIDKey, user.ID),
		)
		return exceptions.ErrCurrentPasswordIncorrect(nil)
	}

	passwordHash, err := utils.HashPassword(request.NewPassword)
	if err != nil {
		return exceptions.ErrHashPassword(err)
	}

	if err := uc.UserRepository.UpdatePassword(ctx, user.ID, passwordHash); err != nil {
		return err
	}

	utils.LogSecurityEvent(uc.Log, "password_changed", utils.GetRequestID(ctx), "info",
		zap.Int64(constvars.LoggingUserIDKey, user.ID),
	)
	return nil
}

func (uc *authUsecase) findUser(ctx context.Context, userID int64) (*models.User, error) {
	user, err := uc.UserRepository.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotExist(nil)
	}
	return user, nil
}
