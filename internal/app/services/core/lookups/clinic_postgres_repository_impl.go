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

type clinicPostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

var (
	clinicPostgresRepositoryInstance contracts.ClinicRepository
	onceClinicPostgresRepository     sync.Once
)

func NewClinicPostgresRepository(db *sql.DB, logger *zap.Logger) contracts.ClinicRepository {
	onceClinicPostgresRepository.Do(func() {
		instance := &clinicPostgresRepository{
			DB:  db,
			Log: logger,
		}
		clinicPostgresRepositoryInstance = instance
	})
	return clinicPostgresRepositoryInstance
}

func scanClinic(row rowScanner) (*models.Clinic, error) {
	var clinic models.Clinic
	err := row.Scan(
		&clinic.ID,
		&clinic.Name,
		&clinic.Address,
		&clinic.ContactNumber,
		&clinic.Email,
		&clinic.CreatedAt,
		&clinic.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &clinic, nil
}

func (repo *clinicPostgresRepository) Create(ctx context.Context, clinic *models.Clinic) (*models.Clinic, error) {
	requestID := utils.GetRequestID(ctx)
	repo.Log.Info("clinicPostgresRepository.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	created, err := scanClinic(repo.DB.QueryRowContext(ctx, queries.InsertClinic, clinic.Name, clinic.Address, clinic.ContactNumber, clinic.Email))
	if err != nil {
		repo.Log.Error("clinicPostgresRepository.Create error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, utils.MapPostgresWriteError(err, exceptions.ErrPostgresDBInsertData)
	}

	repo.Log.Info("clinicPostgresRepository.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingLookupIDKey, created.ID),
	)
	return created, nil
}

func (repo *clinicPostgresRepository) FindByID(ctx context.Context, clinicID int64) (*models.Clinic, error) {
	requestID := utils.GetRequestID(ctx)
	repo.Log.Info("clinicPostgresRepository.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingLookupIDKey, clinicID),
	)

	clinic, err := scanClinic(repo.DB.QueryRowContext(ctx, queries.GetClinicByID, clinicID))
	if err == sql.ErrNoRows {
		repo.Log.Warn("clinicPostgresRepository.FindByID no rows found",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingLookupIDKey, clinicID),
		)
		return nil, nil
	} else if err != nil {
		repo.Log.Error("clinicPostgresRepository.FindByID error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingLookupIDKey, clinicID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}

	repo.Log.Info("clinicPostgresRepository.FindByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingLookupIDKey, clinicID),
	)
	return clinic, nil
}

func (repo *clinicPostgresRepository) FindAll(ctx context.Context) ([]models.Clinic, error) {
	requestID := utils.GetRequestID(ctx)
	repo.Log.Info("clinicPostgresRepository.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	rows, err := repo.DB.QueryContext(ctx, queries.GetAllClinics)
	if err != nil {
		repo.Log.Error("clinicPostgresRepository.FindAll error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	clinics := []models.Clinic{}
	for rows.Next() {
		clinic, err := scanClinic(rows)
		if err != nil {
			repo.Log.Error("clinicPostgresRepository.FindAll error scanning row",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, exceptions.ErrPostgresDBScanData(err)
		}
		clinics = append(clinics, *clinic)
	}

	if err := rows.Err(); err != nil {
		repo.Log.Error("clinicPostgresRepository.FindAll rows iteration error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}

	repo.Log.Info("clinicPostgresRepository.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(clinics)),
	)
	return clinics, nil
}

func (repo *clinicPostgresRepository) Update(ctx context.Context, clinic *models.Clinic) (*models.Clinic, error) {
	requestID := utils.GetRequestID(ctx)
	repo.Log.Info("clinicPostgresRepository.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingLookupIDKey, clinic.ID),
	)

	updated, err := scanClinic(repo.DB.QueryRowContext(ctx, queries.UpdateClinic,
		clinic.Name,
		clinic.Address,
		clinic.ContactNumber,
		clinic.Email,
		clinic.ID,
	))
	if err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		repo.Log.Error("clinicPostgresRepository.Update error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingLookupIDKey, clinic.ID),
			zap.Error(err),
		)
		return nil, utils.MapPostgresWriteError(err, exceptions.ErrPostgresDBUpdateData)
	}

	repo.Log.Info("clinicPostgresRepository.Update succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingLookupIDKey, clinic.ID),
	)
	return updated, nil
}

func (repo *clinicPostgresRepository) Delete(ctx context.Context, clinicID int64) error {
	requestID := utils.GetRequestID(ctx)
	repo.Log.Info("clinicPostgresRepository.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingLookupIDKey, clinicID),
	)

	if _, err := repo.DB.ExecContext(ctx, queries.DeleteClinic, clinicID); err != nil {
		repo.Log.Error("clinicPostgresRepository.Delete error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingLookupIDKey, clinicID),
			zap.Error(err),
		)
		return utils.MapPostgresDeleteError(err, "clinic")
	}

	repo.Log.Info("clinicPostgresRepository.Delete succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingLookupIDKey, clinicID),
	)
	return nil
}
