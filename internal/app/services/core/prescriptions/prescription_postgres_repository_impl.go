package prescriptions

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
	"time"

	"go.uber.org/zap"
)

type prescriptionPostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

var (
	prescriptionPostgresRepositoryInstance contracts.PrescriptionRepository
	oncePrescriptionPostgresRepository     sync.Once
)

func NewPrescriptionPostgresRepository(db *sql.DB, logger *zap.Logger) contracts.PrescriptionRepository {
	oncePrescriptionPostgresRepository.Do(func() {
		instance := &prescriptionPostgresRepository{
			DB:  db,
			Log: logger,
		}
		prescriptionPostgresRepositoryInstance = instance
	})
	return prescriptionPostgresRepositoryInstance
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPrescription(row rowScanner) (*models.Prescription, error) {
	var (
		prescription models.Prescription
		instructions sql.NullString
		validUntil   sql.NullTime
	)
	err := row.Scan(
		&prescription.ID,
		&prescription.PatientID,
		&prescription.PatientName,
		&prescription.DoctorID,
		&prescription.DoctorName,
		&prescription.MedicalRecordID,
		&prescription.Medications,
		&instructions,
		&prescription.PrescriptionDate,
		&validUntil,
		&prescription.Status,
		&prescription.CreatedAt,
		&prescription.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	prescription.Instructions = instructions.String
	if validUntil.Valid {
		prescription.ValidUntil = &validUntil.Time
	}
	return &prescription, nil
}

func validUntilArg(validUntil *time.Time) interface{} {
	if validUntil == nil {
		return nil
	}
	return *validUntil
}

func (repo *prescriptionPostgresRepository) Create(ctx context.Context, prescription *models.Prescription) (*models.Prescription, error) {
	requestID := utils.GetRequestID(ctx)
	repo.Log.Info("prescriptionPostgresRepository.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingPatientIDKey, prescription.PatientID),
	)

	var prescriptionID int64
	err := repo.DB.QueryRowContext(ctx, queries.InsertPrescription,
		prescription.PatientID,
		prescription.DoctorID,
		prescription.MedicalRecordID,
		prescription.Medications,
		prescription.Instructions,
		validUntilArg(prescription.ValidUntil),
		string(prescription.Status),
	).Scan(&prescriptionID)
	if err != nil {
		repo.Log.Error("prescriptionPostgresRepository.Create error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, utils.MapPostgresWriteError(err, exceptions.ErrPostgresDBInsertData)
	}

	repo.Log.Info("prescriptionPostgresRepository.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingPrescriptionIDKey, prescriptionID),
	)
	return repo.FindByID(ctx, prescriptionID)
}

func (repo *prescriptionPostgresRepository) FindByID(ctx context.Context, prescriptionID int64) (*models.Prescription, error) {
	requestID := utils.GetRequestID(ctx)
	repo.Log.Info("prescriptionPostgresRepository.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingPrescriptionIDKey, prescriptionID),
	)

	prescription, err := scanPrescription(repo.DB.QueryRowContext(ctx, queries.GetPrescriptionByID, prescriptionID))
	if err == sql.ErrNoRows {
		repo.Log.Warn("prescriptionPostgresRepository.FindByID no rows found",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingPrescriptionIDKey, prescriptionID),
		)
		return nil, nil
	} else if err != nil {
		repo.Log.Error("prescriptionPostgresRepository.FindByID error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingPrescriptionIDKey, prescriptionID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}

	repo.Log.Info("prescriptionPostgresRepository.FindByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingPrescriptionIDKey, prescriptionID),
	)
	return prescription, nil
}

func (repo *prescriptionPostgresRepository) FindAll(ctx context.Context, filter models.PrescriptionFilter) ([]models.Prescription, int, error) {
	requestID := utils.GetRequestID(ctx)
	repo.Log.Info("prescriptionPostgresRepository.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Any(constvars.LoggingQueryParamsKey, filter),
	)

	var total int
	err := repo.DB.QueryRowContext(ctx, queries.CountPrescriptions, filter.PatientID, filter.DoctorID, string(filter.Status)).Scan(&total)
	if err != nil {
		repo.Log.Error("prescriptionPostgresRepository.FindAll error counting rows",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, 0, exceptions.ErrPostgresDBFindData(err)
	}

	rows, err := repo.DB.QueryContext(ctx, queries.GetAllPrescriptions,
		filter.PatientID,
		filter.DoctorID,
		string(filter.Status),
		filter.Limit(),
		filter.Offset(),
	)
	if err != nil {
		repo.Log.Error("prescriptionPostgresRepository.FindAll error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, 0, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	prescriptions := []models.Prescription{}
	for rows.Next() {
		prescription, err := scanPrescription(rows)
		if err != nil {
			repo.Log.Error("prescriptionPostgresRepository.FindAll error scanning row",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, 0, exceptions.ErrPostgresDBScanData(err)
		}
		prescriptions = append(prescriptions, *prescription)
	}

	if err := rows.Err(); err != nil {
		repo.Log.Error("prescriptionPostgresRepository.FindAll rows iteration error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, 0, exceptions.ErrPostgresDBFindData(err)
	}

	repo.Log.Info("prescriptionPostgresRepository.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(prescriptions)),
	)
	return prescriptions, total, nil
}

func (repo *prescriptionPostgresRepository) Update(ctx context.Context, prescription *models.Prescription) (*models.Prescription, error) {
	requestID := utils.GetRequestID(ctx)
	repo.Log.Info("prescriptionPostgresRepository.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingPrescriptionIDKey, prescription.ID),
	)

	result, err := repo.DB.ExecContext(ctx, queries.UpdatePrescription,
		prescription.Medications,
		prescription.Instructions,
		validUntilArg(prescription.ValidUntil),
		string(prescription.Status),
		prescription.ID,
	)
	if err != nil {
		repo.Log.Error("prescriptionPostgresRepository.Update error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingPrescriptionIDKey, prescription.ID),
			zap.Error(err),
		)
		return nil, utils.MapPostgresWriteError(err, exceptions.ErrPostgresDBUpdateData)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, exceptions.ErrPostgresDBUpdateData(err)
	}
	if affected == 0 {
		repo.Log.Warn("prescriptionPostgresRepository.Update no rows found",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingPrescriptionIDKey, prescription.ID),
		)
		return nil, nil
	}

	repo.Log.Info("prescriptionPostgresRepository.Update succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingPrescriptionIDKey, prescription.ID),
	)
	return repo.FindByID(ctx, prescription.ID)
}

func (repo *prescriptionPostgresRepository) Delete(ctx context.Context, prescriptionID int64) error {
	requestID := utils.GetRequestID(ctx)
	repo.Log.Info("prescriptionPostgresRepository.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingPrescriptionIDKey, prescriptionID),
	)

	if _, err := repo.DB.ExecContext(ctx, queries.DeletePrescription, prescriptionID); err != nil {
		repo.Log.Error("prescriptionPostgresRepository.Delete error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingPrescriptionIDKey, prescriptionID),
			zap.Error(err),
		)
		return utils.MapPostgresDeleteError(err, "prescription")
	}

	repo.Log.Info("prescriptionPostgresRepository.Delete succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingPrescriptionIDKey, prescriptionID),
	)
	return nil
}
