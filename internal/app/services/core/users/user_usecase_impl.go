package users

import (
	"context"
	"hospital-service/internal/app/contracts"
	"hospital-service/internal/app/models"
	"hospital-service/internal/app/services/shared/access"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/exceptions"
	"hospital-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type userUsecase struct {
	UserRepository   contracts.UserRepository
	DoctorRepository contracts.DoctorRepository
	StaffRepository  contracts.StaffRepository
	Log              *zap.Logger
}

func NewUserUsecase(
	userRepository contracts.UserRepository,
	doctorRepository contracts.DoctorRepository,
	staffRepository contracts.StaffRepository,
	logger *zap.Logger,
) contracts.UserUsecase {
	return &userUsecase{
		UserRepository:   userRepository,
		DoctorRepository: doctorRepository,
		StaffRepository:  staffRepository,
		Log:              logger,
	}
}

// Create provisions an admin, doctor or staff login. Patients sign up through registration.
func (uc *userUsecase) Create(ctx context.Context, actor models.ActorContext, request *requests.CreateUser) (*models.User, error) {
	if err := access.Authorize(actor, access.ResourceUser, models.Owner{}, access.ActionWrite); err != nil {
		return nil, err
	}

	utils.SanitizeCreateUserRequest(request)
	if err := uc.ensureProfile(ctx, request.Role, request.RefID); err != nil {
		return nil, err
	}

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

	created, err := uc.UserRepository.Create(ctx, &models.User{
		Email:        request.Email,
		PasswordHash: passwordHash,
		Role:         request.Role,
		RefID:        request.RefID,
		IsActive:     true,
	})
	if err != nil {
		return nil, err
	}

	utils.LogSecurityEvent(uc.Log, "user_created", utils.GetRequestID(ctx), "info",
		zap.Int64(constvars.LoggingUserIDKey, created.ID),
		zap.String(constvars.LoggingActorRoleKey, created.Role),
	)
	return created, nil
}

// ensureProfile checks that ref_id points at the profile row matching role.
func (uc *userUsecase) ensureProfile(ctx context.Context, role string, refID *int64) error {
	switch role {
	case models.RoleAdmin:
		if refID != nil {
			return exceptions.ErrInvalidInput(nil, "ref_id must be empty for admin users")
		}
		return nil

	case models.RoleDoctor:
		if refID == nil {
			return exceptions.ErrInvalidInput(nil, "ref_id is required for doctor users")
		}
		doctor, err := uc.DoctorRepository.FindByID(ctx, *refID)
		if err != nil {
			return err
		}
		if doctor == nil {
			return exceptions.ErrNotFound(nil, string(access.ResourceDoctor), *refID)
		}
		return nil

	case models.RoleStaff:
		if refID == nil {
			return exceptions.ErrInvalidInput(nil, "ref_id is required for staff users")
		}
		staff, err := uc.StaffRepository.FindByID(ctx, *refID)
		if err != nil {
			return err
		}
		if staff == nil {
			return exceptions.ErrNotFound(nil, string(access.ResourceStaff), *refID)
		}
		return nil
	}
	return exceptions.ErrInvalidRoleType(nil)
}
