package medical_records

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

type medicalRecordPostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

var (
	medicalRecordPostgresRepositoryInstance contracts.MedicalRecordRepository
	onceMedicalRecordPostgresRepository     sync.Once
)

func NewMedicalRecordPostgresRepository(db *sql.DB, logger *zap.Logger) contracts.MedicalRecordRepository {
	onceMedicalRecordPostgresRepository.Do(func() {
		instance := &medicalRecordPostgresRepository{
			DB:  db,
			Log: logger,
		}
		medicalRecordPostgresRepositoryInstance = instance
	})
	return medicalRecordPostgresRepositoryInstance
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanMedicalRecord(row rowScanner) (*models.MedicalRecord, error) {
	var (
		record        models.MedicalRecord
		symptoms      sql.NullString
		diagnosis     sql.NullString
		treatmentPlan sql.NullString
		notes         sql.NullString
	)
	err := row.Scan(
		&record.ID,
		&record.PatientID,
		&record.PatientName,
		&record.DoctorID,
		&record.DoctorName,
		&record.AppointmentID,
		&record.VisitDate,
		&symptoms,
		&diagnosis,
		&treatmentPlan,
		&notes,
		&record.VitalSigns,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	record.Symptoms = symptoms.String
	record.Diagnosis = diagnosis.String
	record.TreatmentPlan = treatmentPlan.String
	record.Notes = notes.String
	return &record, nil
}

func (repo *medicalRecordPostgresRepository) Create(ctx context.Context, record *models.MedicalRecord) (*models.MedicalRecord, error) {
	requestID := utils.GetRequestID(ctx)
	repo.Log.Info("medicalRecordPostgresRepository.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingPatientIDKey, record.PatientID),
	)

	var visitDate interface{}
	if !record.VisitDate.IsZero() {
		visitDate = record.VisitDate
	}

	var recordID int64
	err := repo.DB.QueryRowContext(ctx, queries.InsertMedicalRecord,
		record.PatientID,
		record.DoctorID,
		record.AppointmentID,
		visitDate,
		record.Symptoms,
		record.Diagnosis,
		record.TreatmentPlan,
		record.Notes,
		record.VitalSigns,
	).Scan(&recordID)
	if err != nil {
		repo.Log.Error("medicalRecordPostgresRepository.Create error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, utils.MapPostgresWriteError(err, exceptions.ErrPostgresDBInsertData)
	}

	repo.Log.Info("medicalRecordPostgresRepository.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingRecordIDKey, recordID),
	)
	return repo.FindByID(ctx, recordID)
}

func (repo *medicalRecordPostgresRepository) FindByID(ctx context.Context, recordID int64) (*models.MedicalRecord, error) {
	requestID := utils.GetRequestID(ctx)
	repo.Log.Info("medicalRecordPostgresRepository.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingRecordIDKey, recordID),
	)

	record, err := scanMedicalRecord(repo.DB.QueryRowContext(ctx, queries.GetMedicalRecordByID, recordID))
	if err == sql.ErrNoRows {
		repo.Log.Warn("medicalRecordPostgresRepository.FindByID no rows found",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingRecordIDKey, recordID),
		)
		return nil, nil
	} else if err != nil {
		repo.Log.Error("medicalRecordPostgresRepository.FindByID error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingRecordIDKey, recordID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}

	repo.Log.Info("medicalRecordPostgresRepository.FindByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingRecordIDKey, recordID),
	)
	return record, nil
}

func (repo *medicalRecordPostgresRepository) FindAll(ctx context.Context, filter models.MedicalRecordFilter) ([]models.MedicalRecord, int, error) {
	requestID := utils.GetRequestID(ctx)
	repo.Log.Info("medicalRecordPostgresRepository.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Any(constvars.LoggingQueryParamsKey, filter),
	)

	var total int
	err := repo.DB.QueryRowContext(ctx, queries.CountMedicalRecords, filter.PatientID, filter.DoctorID).Scan(&total)
	if err != nil {
		repo.Log.Error("medicalRecordPostgresRepository.FindAll error counting rows",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, 0, exceptions.ErrPostgresDBFindData(err)
	}

	rows, err := repo.DB.QueryContext(ctx, queries.GetAllMedicalRecords,
		filter.PatientID,
		filter.DoctorID,
		filter.Limit(),
		filter.Offset(),
	)
	if err != nil {
		repo.Log.Error("medicalRecordPostgresRepository.FindAll error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, 0, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	records := []models.MedicalRecord{}
	for rows.Next() {
		record, err := scanMedicalRecord(rows)
		if err != nil {
			repo.Log.Error("medicalRecordPostgresRepository.FindAll error scanning row",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, 0, exceptions.ErrPostgresDBScanData(err)
		}
		records = append(records, *record)
	}

	if err := rows.Err(); err != nil {
		repo.Log.Error("medicalRecordPostgresRepository.FindAll rows iteration error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, 0, exceptions.ErrPostgresDBFindData(err)
	}

	repo.Log.Info("medicalRecordPostgresRepository.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(records)),
	)
	return records, total, nil
}

func (repo *medicalRecordPostgresRepository) Update(ctx context.Context, record *models.MedicalRecord) (*models.MedicalRecord, error) {
	requestID := utils.GetRequestID(ctx)
	repo.Log.Info("medicalRecordPostgresRepository.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingRecordIDKey, record.ID),
	)

	result, err := repo.DB.ExecContext(ctx, queries.UpdateMedicalRecord,
		record.Symptoms,
		record.Diagnosis,
		record.TreatmentPlan,
		record.Notes,
		record.VitalSigns,
		record.ID,
	)
	if err != nil {
		repo.Log.Error("medicalRecordPostgresRepository.Update error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingRecordIDKey, record.ID),
			zap.Error(err),
		)
		return nil, utils.MapPostgresWriteError(err, exceptions.ErrPostgresDBUpdateData)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, exceptions.ErrPostgresDBUpdateData(err)
	}
	if affected == 0 {
		return nil, nil
	}

	repo.Log.Info("medicalRecordPostgresRepository.Update succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingRecordIDKey, record.ID),
	)
	return repo.FindByID(ctx, record.ID)
}

func (repo *medicalRecordPostgresRepository) Delete(ctx context.Context, recordID int64) error {
	requestID := utils.GetRequestID(ctx)
	repo.Log.Info("medicalRecordPostgresRepository.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingRecordIDKey, recordID),
	)

	if _, err := repo.DB.ExecContext(ctx, queries.DeleteMedicalRecord, recordID); err != nil {
		repo.Log.Error("medicalRecordPostgresRepository.Delete error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingRecordIDKey, recordID),
			zap.Error(err),
		)
		return utils.MapPostgresDeleteError(err, "medical record")
	}

	repo.Log.Info("medicalRecordPostgresRepository.Delete succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingRecordIDKey, recordID),
	)
	return nil
}
