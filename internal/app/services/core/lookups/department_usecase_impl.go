package lookups

import (
	"context"
	"hospital-service/internal/app/contracts"
	"hospital-service/internal/app/models"
	"hospital-service/internal/app/services/shared/access"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/exceptions"
	"time"

	"go.uber.org/zap"
)

type departmentUsecase struct {
	DepartmentRepository contracts.DepartmentRepository
	RedisRepository      contracts.RedisRepository
	CacheTTL             time.Duration
	Log                  *zap.Logger
}

func NewDepartmentUsecase(
	departmentPostgresRepository contracts.DepartmentRepository,
	redisRepository contracts.RedisRepository,
	cacheTTL time.Duration,
	logger *zap.Logger,
) contracts.DepartmentUsecase {
	return &departmentUsecase{
		DepartmentRepository: departmentPostgresRepository,
		RedisRepository:      redisRepository,
		CacheTTL:             cacheTTL,
		Log:                  logger,
	}
}

func (uc *departmentUsecase) Create(ctx context.Context, actor models.ActorContext, request *requests.Department) (*models.Department, error) {
	if err := access.Authorize(actor, access.ResourceDepartment, models.Owner{}, access.ActionWrite); err != nil {
		return nil, err
	}

	created, err := uc.DepartmentRepository.Create(ctx, &models.Department{
		Name:         request.Name,
		Description:  request.Description,
		HeadDoctorID: request.HeadDoctorID,
	})
	if err != nil {
		return nil, err
	}

	invalidate(ctx, uc.RedisRepository, uc.Log, constvars.RedisKeyDepartmentList)
	return created, nil
}

func (uc *departmentUsecase) FindByID(ctx context.Context, actor models.ActorContext, departmentID int64) (*models.Department, error) {
	if err := access.Authorize(actor, access.ResourceDepartment, models.Owner{}, access.ActionRead); err != nil {
		return nil, err
	}

	department, err := uc.DepartmentRepository.FindByID(ctx, departmentID)
	if err != nil {
		return nil, err
	}
	if department == nil {
		return nil, exceptions.ErrNotFound(nil, string(access.ResourceDepartment), departmentID)
	}
	return department, nil
}

func (uc *departmentUsecase) FindAll(ctx context.Context, actor models.ActorContext) ([]models.Department, error) {
	if err := access.Authorize(actor, access.ResourceDepartment, models.Owner{}, access.ActionRead); err != nil {
		return nil, err
	}
	return cachedList(ctx, uc.RedisRepository, constvars.RedisKeyDepartmentList, uc.CacheTTL, uc.DepartmentRepository.FindAll)
}

func (uc *departmentUsecase) Update(ctx context.Context, actor models.ActorContext, departmentID int64, request *requests.Department) (*models.Department, error) {
	if err := access.Authorize(actor, access.ResourceDepartment, models.Owner{}, access.ActionWrite); err != nil {
		return nil, err
	}

	updated, err := uc.DepartmentRepository.Update(ctx, &models.Department{
		ID:           departmentID,
		Name:         request.Name,
		Description:  request.Description,
		HeadDoctorID: request.HeadDoctorID,
	})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, exceptions.ErrNotFound(nil, string(access.ResourceDepartment), departmentID)
	}

	invalidate(ctx, uc.RedisRepository, uc.Log, constvars.RedisKeyDepartmentList)
	return updated, nil
}

func (uc *departmentUsecase) Delete(ctx context.Context, actor models.ActorContext, departmentID int64) error {
	if _, err := uc.FindByID(ctx, actor, departmentID); err != nil {
		return err
	}
	if err := access.Authorize(actor, access.ResourceDepartment, models.Owner{}, access.ActionWrite); err != nil {
		return err
	}

	if err := uc.DepartmentRepository.Delete(ctx, departmentID); err != nil {
		return err
	}

	invalidate(ctx, uc.RedisRepository, uc.Log, constvars.RedisKeyDepartmentList)
	return nil
}
