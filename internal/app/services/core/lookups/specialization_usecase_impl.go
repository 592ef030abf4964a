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

type specializationUsecase struct {
	SpecializationRepository contracts.SpecializationRepository
	RedisRepository          contracts.RedisRepository
	CacheTTL                 time.Duration
	Log                      *zap.Logger
}

func NewSpecializationUsecase(
	specializationPostgresRepository contracts.SpecializationRepository,
	redisRepository contracts.RedisRepository,
	cacheTTL time.Duration,
	logger *zap.Logger,
) contracts.SpecializationUsecase {
	return &specializationUsecase{
		SpecializationRepository: specializationPostgresRepository,
		RedisRepository:          redisRepository,
		CacheTTL:                 cacheTTL,
		Log:                      logger,
	}
}

func (uc *specializationUsecase) Create(ctx context.Context, actor models.ActorContext, request *requests.Specialization) (*models.Specialization, error) {
	if err := access.Authorize(actor, access.ResourceSpecialization, models.Owner{}, access.ActionWrite); err != nil {
		return nil, err
	}

	created, err := uc.SpecializationRepository.Create(ctx, &models.Specialization{
		Name:        request.Name,
		Description: request.Description,
	})
	if err != nil {
		return nil, err
	}

	invalidate(ctx, uc.RedisRepository, uc.Log, constvars.RedisKeySpecializationList)
	return created, nil
}

func (uc *specializationUsecase) FindByID(ctx context.Context, actor models.ActorContext, specializationID int64) (*models.Specialization, error) {
	if err := access.Authorize(actor, access.ResourceSpecialization, models.Owner{}, access.ActionRead); err != nil {
		return nil, err
	}

	specialization, err := uc.SpecializationRepository.FindByID(ctx, specializationID)
	if err != nil {
		return nil, err
	}
	if specialization == nil {
		return nil, exceptions.ErrNotFound(nil, string(access.ResourceSpecialization), specializationID)
	}
	return specialization, nil
}

func (uc *specializationUsecase) FindAll(ctx context.Context, actor models.ActorContext) ([]models.Specialization, error) {
	if err := access.Authorize(actor, access.ResourceSpecialization, models.Owner{}, access.ActionRead); err != nil {
		return nil, err
	}
	return cachedList(ctx, uc.RedisRepository, constvars.RedisKeySpecializationList, uc.CacheTTL, uc.SpecializationRepository.FindAll)
}

func (uc *specializationUsecase) Update(ctx context.Context, actor models.ActorContext, specializationID int64, request *requests.Specialization) (*models.Specialization, error) {
	if err := access.Authorize(actor, access.ResourceSpecialization, models.Owner{}, access.ActionWrite); err != nil {
		return nil, err
	}

	updated, err := uc.SpecializationRepository.Update(ctx, &models.Specialization{
		ID:          specializationID,
		Name:        request.Name,
		Description: request.Description,
	})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, exceptions.ErrNotFound(nil, string(access.ResourceSpecialization), specializationID)
	}

	invalidate(ctx, uc.RedisRepository, uc.Log, constvars.RedisKeySpecializationList)
	return updated, nil
}

func (uc *specializationUsecase) Delete(ctx context.Context, actor models.ActorContext, specializationID int64) error {
	if _, err := uc.FindByID(ctx, actor, specializationID); err != nil {
		return err
	}
	if err := access.Authorize(actor, access.ResourceSpecialization, models.Owner{}, access.ActionWrite); err != nil {
		return err
	}

	if err := uc.SpecializationRepository.Delete(ctx, specializationID); err != nil {
		return err
	}

	invalidate(ctx, uc.RedisRepository, uc.Log, constvars.RedisKeySpecializationList)
	return nil
}
