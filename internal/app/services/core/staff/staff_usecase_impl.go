package staff

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

type staffUsecase struct {
	StaffRepository contracts.StaffRepository
	Log             *zap.Logger
}

func NewStaffUsecase(staffRepository contracts.StaffRepository, logger *zap.Logger) contracts.StaffUsecase {
	return &staffUsecase{
		StaffRepository: staffRepository,
		Log:             logger,
	}
}

func (uc *staffUsecase) Create(ctx context.Context, actor models.ActorContext, request *requests.CreateStaff) (*models.Staff, error) {
	if err := access.Authorize(actor, access.ResourceStaff, models.Owner{}, access.ActionWrite); err != nil {
		return nil, err
	}

	member := &models.Staff{
		FirstName:     request.FirstName,
		LastName:      request.LastName,
		ContactNumber: request.ContactNumber,
		Email:         request.Email,
		DepartmentID:  request.DepartmentID,
		Position:      request.Position,
	}
	if request.JoiningDate != "" {
		joiningDate, err := utils.ParseDate(request.JoiningDate)
		if err != nil {
			return nil, exceptions.ErrCannotParseDate(err)
		}
		member.JoiningDate = joiningDate
	}

	created, err := uc.StaffRepository.Create(ctx, member)
	if err != nil {
		return nil, err
	}

	utils.LogBusinessEvent(uc.Log, "staff_created", utils.GetRequestID(ctx),
		zap.Int64(constvars.LoggingStaffIDKey, created.ID),
	)
	return created, nil
}

func (uc *staffUsecase) FindByID(ctx context.Context, actor models.ActorContext, staffID int64) (*models.Staff, error) {
	if err := access.Authorize(actor, access.ResourceStaff, models.Owner{}, access.ActionRead); err != nil {
		return nil, err
	}
	return uc.findStaff(ctx, staffID)
}

func (uc *staffUsecase) FindAll(ctx context.Context, actor models.ActorContext, filter models.StaffFilter) ([]models.Staff, int, error) {
	if err := access.Authorize(actor, access.ResourceStaff, models.Owner{}, access.ActionRead); err != nil {
		return nil, 0, err
	}
	return uc.StaffRepository.FindAll(ctx, filter)
}

func (uc *staffUsecase) Update(ctx context.Context, actor models.ActorContext, staffID int64, request *requests.UpdateStaff) (*models.Staff, error) {
	if err := access.Authorize(actor, access.ResourceStaff, models.Owner{}, access.ActionWrite); err != nil {
		return nil, err
	}

	member, err := uc.findStaff(ctx, staffID)
	if err != nil {
		return nil, err
	}

	if request.FirstName != nil {
		member.FirstName = *request.FirstName
	}
	if request.LastName != nil {
		member.LastName = *request.LastName
	}
	if request.ContactNumber != nil {
		member.ContactNumber = *request.ContactNumber
	}
	if request.Email != nil {
		member.Email = *request.Email
	}
	if request.DepartmentID != nil {
		member.DepartmentID = request.DepartmentID
	}
	if request.Position != nil {
		member.Position = *request.Position
	}
	if request.JoiningDate != nil && *request.JoiningDate != "" {
		joiningDate, err := utils.ParseDate(*request.JoiningDate)
		if err != nil {
			return nil, exceptions.ErrCannotParseDate(err)
		}
		member.JoiningDate = joiningDate
	}

	updated, err := uc.StaffRepository.Update(ctx, member)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, exceptions.ErrNotFound(nil, string(access.ResourceStaff), staffID)
	}
	return updated, nil
}

func (uc *staffUsecase) Delete(ctx context.Context, actor models.ActorContext, staffID int64) error {
	if err := access.Authorize(actor, access.ResourceStaff, models.Owner{}, access.ActionWrite); err != nil {
		return err
	}

	if _, err := uc.findStaff(ctx, staffID); err != nil {
		return err
	}

	if err := uc.StaffRepository.Delete(ctx, staffID); err != nil {
		return err
	}

	utils.LogBusinessEvent(uc.Log, "staff_deleted", utils.GetRequestID(ctx),
		zap.Int64(constvars.LoggingStaffIDKey, staffID),
	)
	return nil
}

func (uc *staffUsecase) findStaff(ctx context.Context, staffID int64) (*models.Staff, error) {
	member, err := uc.StaffRepository.FindByID(ctx, staffID)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, exceptions.ErrNotFound(nil, string(access.ResourceStaff), staffID)
	}
	return member, nil
}
