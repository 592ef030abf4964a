package patients

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

type patientPostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

var (
	patientPostgresRepositoryInstance contracts.PatientRepository
	oncePatientPostgresRepository     sync.Once
)

func NewPatientPostgresRepository(db *sql.DB, logger *zap.Logger) contracts.PatientRepository {
	oncePatientPostgresRepository.Do(func() {
		instance := &patientPostgresRepository{
			DB:  db,
			Log: logger,
		}
		patientPostgresRepositoryInstance = instance
	})
	return patientPostgresRepositoryInstance
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPatient(row rowScanner) (*models.Patient, error) {
	var patient models.Patient
	err := row.Scan(
		&patient.ID,
		&patient.PatientNumber,
		&patient.FirstName,
		&patient.LastName,
		&patient.DateOfBirth,
		&patient.Gender,
		&patient.BloodGroup,
		&patient.ContactNumber,
		&patient.Email,
		&patient.Address,
		&patient.EmergencyContact,
		&patient.EmergencyContactNumber,
		&patient.CreatedAt,
		&patient.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &patient, nil
}

func (repo *patientPostgresRepository) Create(ctx context.Context, patient *models.Patient) (*models.Patient, error) {
	requestID := utils.GetRequestID(ctx)
	repo.Log.Info("patientPostgresRepository.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientNumberKey, patient.PatientNumber),
	)

	row := repo.DB.QueryRowContext(ctx, queries.InsertPatient,
		patient.PatientNumber,
		patient.FirstName,
		patient.LastName,
		patient.DateOfBirth,
		patient.Gender,
		patient.BloodGroup,
		patient.ContactNumber,
		patient.Email,
		patient.Address,
		patient.EmergencyContact,
		patient.EmergencyContactNumber,
	)
	created, err := scanPatient(row)
	if err != nil {
		repo.Log.Error("patientPostgresRepository.Create error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientNumberKey, patient.PatientNumber),
			zap.Error(err),
		)
		return nil, utils.MapPostgresWriteError(err, exceptions.ErrPostgresDBInsertData)
	}

	repo.Log.Info("patientPostgresRepository.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingPatientIDKey, created.ID),
	)
	return created, nil
}

func (repo *patientPostgresRepository) FindByID(ctx context.Context, patientID int64) (*models.Patient, error) {
	requestID := utils.GetRequestID(ctx)
	repo.Log.Info("patientPostgresRepository.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingPatientIDKey, patientID),
	)

	patient, err := scanPatient(repo.DB.QueryRowContext(ctx, queries.GetPatientByID, patientID))
	if err == sql.ErrNoRows {
		repo.Log.Warn("patientPostgresRepository.FindByID no rows found",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingPatientIDKey, patientID),
		)
		return nil, nil
	} else if err != nil {
		repo.Log.Error("patientPostgresRepository.FindByID error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}

	repo.Log.Info("patientPostgresRepository.FindByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingPatientIDKey, patientID),
	)
	return patient, nil
}

func (repo *patientPostgresRepository) FindAll(ctx context.Context, filter models.PatientFilter) ([]models.Patient, int, error) {
	requestID := utils.GetRequestID(ctx)
	repo.Log.Info("patientPostgresRepository.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueryKey, filter.Search),
	)

	var total int
	if err := repo.DB.QueryRowContext(ctx, queries.CountPatients, filter.Search).Scan(&total); err != nil {
		repo.Log.Error("patientPostgresRepository.FindAll error counting rows",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, 0, exceptions.ErrPostgresDBFindData(err)
	}

	rows, err := repo.DB.QueryContext(ctx, queries.GetAllPatients, filter.Search, filter.Limit(), filter.Offset())
	if err != nil {
		repo.Log.Error("patientPostgresRepository.FindAll error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, 0, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	patients, err := repo.collect(rows)
	if err != nil {
		repo.Log.Error("patientPostgresRepository.FindAll error scanning rows",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, 0, exceptions.ErrPostgresDBScanData(err)
	}

	repo.Log.Info("patientPostgresRepository.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(patients)),
	)
	return patients, total, nil
}

func (repo *patientPostgresRepository) FindRecent(ctx context.Context, limit int) ([]models.Patient, error) {
	requestID := utils.GetRequestID(ctx)
	repo.Log.Info("patientPostgresRepository.FindRecent called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	rows, err := repo.DB.QueryContext(ctx, queries.GetRecentPatients, limit)
	if err != nil {
		repo.Log.Error("patientPostgresRepository.FindRecent error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	patients, err := repo.collect(rows)
	if err != nil {
		repo.Log.Error("patientPostgresRepository.FindRecent error scanning rows",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBScanData(err)
	}

	repo.Log.Info("patientPostgresRepository.FindRecent succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(patients)),
	)
	return patients, nil
}

func (repo *patientPostgresRepository) Update(ctx context.Context, patient *models.Patient) (*models.Patient, error) {
	requestID := utils.GetRequestID(ctx)
	repo.Log.Info("patientPostgresRepository.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingPatientIDKey, patient.ID),
	)

	row := repo.DB.QueryRowContext(ctx, queries.UpdatePatient,
		patient.FirstName,
		patient.LastName,
		patient.DateOfBirth,
		patient.Gender,
		patient.BloodGroup,
		patient.ContactNumber,
		patient.Email,
		patient.Address,
		patient.EmergencyContact,
		patient.EmergencyContactNumber,
		patient.ID,
	)
	updated, err := scanPatient(row)
	if err == sql.ErrNoRows {
		repo.Log.Warn("patientPostgresRepository.Update no rows found",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingPatientIDKey, patient.ID),
		)
		return nil, nil
	} else if err != nil {
		repo.Log.Error("patientPostgresRepository.Update error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingPatientIDKey, patient.ID),
			zap.Error(err),
		)
		return nil, utils.MapPostgresWriteError(err, exceptions.ErrPostgresDBUpdateData)
	}

	repo.Log.Info("patientPostgresRepository.Update succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingPatientIDKey, patient.ID),
	)
	return updated, nil
}

func (repo *patientPostgresRepository) Delete(ctx context.Context, patientID int64) error {
	requestID := utils.GetRequestID(ctx)
	repo.Log.Info("patientPostgresRepository.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingPatientIDKey, patientID),
	)

	if _, err := repo.DB.ExecContext(ctx, queries.DeletePatient, patientID); err != nil {
		repo.Log.Error("patientPostgresRepository.Delete error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
		return exceptions.ErrPostgresDBDeleteData(err)
	}

	repo.Log.Info("patientPostgresRepository.Delete succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingPatientIDKey, patientID),
	)
	return nil
}

func (repo *patientPostgresRepository) collect(rows *sql.Rows) ([]models.Patient, error) {
	patients := []models.Patient{}
	for rows.Next() {
		patient, err := scanPatient(rows)
		if err != nil {
			return nil, err
		}
		patients = append(patients, *patient)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return patients, nil
}
