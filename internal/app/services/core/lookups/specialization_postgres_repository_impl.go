package lookups

import (
	"context"
	"database/sql"
	"hospital-service/internal/app/contracts"
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/exceptions"
	"hospital-service/internal/pkg/queries"
	"hospital-service/internal/pkg/utils"
	"sync"

	"go.uber.org/zap"
)

type specializationPostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

var (
	specializationPostgresRepositoryInstance contracts.SpecializationRepository
	onceSpecializationPostgresRepository     sync.Once
)

func NewSpecializationPostgresRepository(db *sql.DB, logger *zap.Logger) contracts.SpecializationRepository {
	onceSpecializationPostgresRepository.Do(func() {
		instance := &specializationPostgresRepository{
			DB:  db,
			Log: logger,
		}
		specializationPostgresRepositoryInstance = instance
	})
	return specializationPostgresRepositoryInstance
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSpecialization(row rowScanner) (*models.Specialization, error) {
	var specialization models.Specialization
	err := row.Scan(
		&specialization.ID,
		&specialization.Name,
		&specialization.Description,
		&specialization.CreatedAt,
		&specialization.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &specialization, nil
}

func (repo *specializationPostgresRepository) Create(ctx context.Context, specialization *models.Specialization) (*models.Specialization, error) {
	requestID := utils.GetRequestID(ctx)
	repo.Log.Info("specializationPostgresRepository.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	created, err := scanSpecialization(repo.DB.QueryRowContext(ctx, queries.InsertSpecialization, specialization.Name, specialization.Description))
	if err != nil {
		repo.Log.Error("specializationPostgresRepository.Create error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, utils.MapPostgresWriteError(err, exceptions.ErrPostgresDBInsertData)
	}

	repo.Log.Info("specializationPostgresRepository.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingLookupIDKey, created.ID),
	)
	return created, nil
}

func (repo *specializationPostgresRepository) FindByID(ctx context.Context, specializationID int64) (*models.Specialization, error) {
	requestID := utils.GetRequestID(ctx)
	repo.Log.Info("specializationPostgresRepository.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingLookupIDKey, specializationID),
	)

	specialization, err := scanSpecialization(repo.DB.QueryRowContext(ctx, queries.GetSpecializationByID, specializationID))
	if err == sql.ErrNoRows {
		repo.Log.Warn("specializationPostgresRepository.FindByID no rows found",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingLookupIDKey, specializationID),
		)
		return nil, nil
	} else if err != nil {
		repo.Log.Error("specializationPostgresRepository.FindByID error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingLookupIDKey, specializationID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}

	repo.Log.Info("specializationPostgresRepository.FindByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingLookupIDKey, specializationID),
	)
	return specialization, nil
}

func (repo *specializationPostgresRepository) FindAll(ctx context.Context) ([]models.Specialization, error) {
	requestID := utils.GetRequestID(ctx)
	repo.Log.Info("specializationPostgresRepository.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	rows, err := repo.DB.QueryContext(ctx, queries.GetAllSpecializations)
	if err != nil {
		repo.Log.Error("specializationPostgresRepository.FindAll error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	specializations := []models.Specialization{}
	for rows.Next() {
		specialization, err := scanSpecialization(rows)
		if err != nil {
			repo.Log.Error("specializationPostgresRepository.FindAll error scanning row",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, exceptions.ErrPostgresDBScanData(err)
		}
		specializations = append(specializations, *specialization)
	}

	if err := rows.Err(); err != nil {
		repo.Log.Error("specializationPostgresRepository.FindAll rows iteration error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}

	repo.Log.Info("specializationPostgresRepository.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(specializations)),
	)
	return specializations, nil
}

func (repo *specializationPostgresRepository) Update(ctx context.Context, specialization *models.Specialization) (*models.Specialization, error) {
	requestID := utils.GetRequestID(ctx)
	repo.Log.Info("specializationPostgresRepository.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingLookupIDKey, specialization.ID),
	)

	updated, err := scanSpecialization(repo.DB.QueryRowContext(ctx, queries.UpdateSpecialization,
		specialization.Name,
		specialization.Description,
		specialization.ID,
	))
	if err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		repo.Log.Error("specializationPostgresRepository.Update error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingLookupIDKey, specialization.ID),
			zap.Error(err),
		)
		return nil, utils.MapPostgresWriteError(err, exceptions.ErrPostgresDBUpdateData)
	}

	repo.Log.Info("specializationPostgresRepository.Update succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingLookupIDKey, specialization.ID),
	)
	return updated, nil
}

func (repo *specializationPostgresRepository) Delete(ctx context.Context, specializationID int64) error {
	requestID := utils.GetRequestID(ctx)
	repo.Log.Info("specializationPostgresRepository.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingLookupIDKey, specializationID),
	)

	if _, err := repo.DB.ExecContext(ctx, queries.DeleteSpecialization, specializationID); err != nil {
		repo.Log.Error("specializationPostgresRepository.Delete error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingLookupIDKey, specializationID),
			zap.Error(err),
		)
		return utils.MapPostgresDeleteError(err, "specialization")
	}

	repo.Log.Info("specializationPostgresRepository.Delete succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingLookupIDKey, specializationID),
	)
	return nil
}
