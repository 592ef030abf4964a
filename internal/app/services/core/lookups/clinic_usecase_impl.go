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

type clinicUsecase struct {
	ClinicRepository contracts.ClinicRepository
	RedisRepository  contracts.RedisRepository
	CacheTTL         time.Duration
	Log              *zap.Logger
}

func NewClinicUsecase(
	clinicPostgresRepository contracts.ClinicRepository,
	redisRepository contracts.RedisRepository,
	cacheTTL time.Duration,
	logger *zap.Logger,
) contracts.ClinicUsecase {
	return &clinicUsecase{
		ClinicRepository: clinicPostgresRepository,
		RedisRepository:  redisRepository,
		CacheTTL:         cacheTTL,
		Log:              logger,
	}
}

func (uc *clinicUsecase) Create(ctx context.Context, actor models.ActorContext, request *requests.Clinic) (*models.Clinic, error) {
	if err := access.Authorize(actor, access.ResourceClinic, models.Owner{}, access.ActionWrite); err != nil {
		return nil, err
	}

	created, err := uc.ClinicRepository.Create(ctx, &models.Clinic{
		Name:          request.Name,
		Address:       request.Address,
		ContactNumber: request.ContactNumber,
		Email:         request.Email,
	})
	if err != nil {
		return nil, err
	}

	invalidate(ctx, uc.RedisRepository, uc.Log, constvars.RedisKeyClinicList)
	return created, nil
}

func (uc *clinicUsecase) FindByID(ctx context.Context, actor models.ActorContext, clinicID int64) (*models.Clinic, error) {
	if err := access.Authorize(actor, access.ResourceClinic, models.Owner{}, access.ActionRead); err != nil {
		return nil, err
	}

	clinic, err := uc.ClinicRepository.FindByID(ctx, clinicID)
	if err != nil {
		return nil, err
	}
	if clinic == nil {
		return nil, exceptions.ErrNotFound(nil, string(access.ResourceClinic), clinicID)
	}
	return clinic, nil
}

func (uc *clinicUsecase) FindAll(ctx context.Context, actor models.ActorContext) ([]models.Clinic, error) {
	if err := access.Authorize(actor, access.ResourceClinic, models.Owner{}, access.ActionRead); err != nil {
		return nil, err
	}
	return cachedList(ctx, uc.RedisRepository, constvars.RedisKeyClinicList, uc.CacheTTL, uc.ClinicRepository.FindAll)
}

func (uc *clinicUsecase) Update(ctx context.Context, actor models.ActorContext, clinicID int64, request *requests.Clinic) (*models.Clinic, error) {
	if err := access.Authorize(actor, access.ResourceClinic, models.Owner{}, access.ActionWrite); err != nil {
		return nil, err
	}

	updated, err := uc.ClinicRepository.Update(ctx, &models.Clinic{
		ID:            clinicID,
		Name:          request.Name,
		Address:       request.Address,
		ContactNumber: request.ContactNumber,
		Email:         request.Email,
	})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, exceptions.ErrNotFound(nil, string(access.ResourceClinic), clinicID)
	}

	invalidate(ctx, uc.RedisRepository, uc.Log, constvars.RedisKeyClinicList)
	return updated, nil
}

func (uc *clinicUsecase) Delete(ctx context.Context, actor models.ActorContext, clinicID int64) error {
	if _, err := uc.FindByID(ctx, actor, clinicID); err != nil {
		return err
	}
	if err := access.Authorize(actor, access.ResourceClinic, models.Owner{}, access.ActionWrite); err != nil {
		return err
	}

	if err := uc.ClinicRepository.Delete(ctx, clinicID); err != nil {
		return err
	}

	invalidate(ctx, uc.RedisRepository, uc.Log, constvars.RedisKeyClinicList)
	return nil
}
