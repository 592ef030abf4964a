package doctors

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

type doctorPostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

var (
	doctorPostgresRepositoryInstance contracts.DoctorRepository
	onceDoctorPostgresRepository     sync.Once
)

func NewDoctorPostgresRepository(db *sql.DB, logger *zap.Logger) contracts.DoctorRepository {
	onceDoctorPostgresRepository.Do(func() {
		instance := &doctorPostgresRepository{
			DB:  db,
			Log: logger,
		}
		doctorPostgresRepositoryInstance = instance
	})
	return doctorPostgresRepositoryInstance
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanDoctor(row rowScanner) (*models.Doctor, error) {
	var doctor models.Doctor
	err := row.Scan(
		&doctor.ID,
		&doctor.FirstName,
		&doctor.LastName,
		&doctor.ContactNumber,
		&doctor.Email,
		&doctor.SpecializationID,
		&doctor.SpecializationName,
		&doctor.DepartmentID,
		&doctor.DepartmentName,
		&doctor.LicenseNumber,
		&doctor.Qualification,
		&doctor.ExperienceYears,
		&doctor.ConsultationFee,
		&doctor.CreatedAt,
		&doctor.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &doctor, nil
}

func (repo *doctorPostgresRepository) Create(ctx context.Context, doctor *models.Doctor) (*models.Doctor, error) {
	requestID := utils.GetRequestID(ctx)
	repo.Log.Info("doctorPostgresRepository.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var doctorID int64
	err := repo.DB.QueryRowContext(ctx, queries.InsertDoctor,
		doctor.FirstName,
		doctor.LastName,
		doctor.ContactNumber,
		doctor.Email,
		doctor.SpecializationID,
		doctor.DepartmentID,
		doctor.LicenseNumber,
		doctor.Qualification,
		doctor.ExperienceYears,
		doctor.ConsultationFee,
	).Scan(&doctorID)
	if err != nil {
		repo.Log.Error("doctorPostgresRepository.Create error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, utils.MapPostgresWriteError(err, exceptions.ErrPostgresDBInsertData)
	}

	repo.Log.Info("doctorPostgresRepository.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingDoctorIDKey, doctorID),
	)
	return repo.FindByID(ctx, doctorID)
}

func (repo *doctorPostgresRepository) FindByID(ctx context.Context, doctorID int64) (*models.Doctor, error) {
	requestID := utils.GetRequestID(ctx)
	repo.Log.Info("doctorPostgresRepository.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingDoctorIDKey, doctorID),
	)

	doctor, err := scanDoctor(repo.DB.QueryRowContext(ctx, queries.GetDoctorByID, doctorID))
	if err == sql.ErrNoRows {
		repo.Log.Warn("doctorPostgresRepository.FindByID no rows found",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingDoctorIDKey, doctorID),
		)
		return nil, nil
	} else if err != nil {
		repo.Log.Error("doctorPostgresRepository.FindByID error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingDoctorIDKey, doctorID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}

	repo.Log.Info("doctorPostgresRepository.FindByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingDoctorIDKey, doctorID),
	)
	return doctor, nil
}

func (repo *doctorPostgresRepository) FindAll(ctx context.Context, filter models.DoctorFilter) ([]models.Doctor, int, error) {
	requestID := utils.GetRequestID(ctx)
	repo.Log.Info("doctorPostgresRepository.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueryKey, filter.Search),
	)

	var total int
	err := repo.DB.QueryRowContext(ctx, queries.CountDoctors, filter.Search, filter.SpecializationID, filter.DepartmentID).Scan(&total)
	if err != nil {
		repo.Log.Error("doctorPostgresRepository.FindAll error counting rows",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, 0, exceptions.ErrPostgresDBFindData(err)
	}

	rows, err := repo.DB.QueryContext(ctx, queries.GetAllDoctors,
		filter.Search,
		filter.SpecializationID,
		filter.DepartmentID,
		filter.Limit(),
		filter.Offset(),
	)
	if err != nil {
		repo.Log.Error("doctorPostgresRepository.FindAll error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, 0, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	doctors := []models.Doctor{}
	for rows.Next() {
		doctor, err := scanDoctor(rows)
		if err != nil {
			repo.Log.Error("doctorPostgresRepository.FindAll error scanning row",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, 0, exceptions.ErrPostgresDBScanData(err)
		}
		doctors = append(doctors, *doctor)
	}

	if err := rows.Err(); err != nil {
		repo.Log.Error("doctorPostgresRepository.FindAll rows iteration error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, 0, exceptions.ErrPostgresDBFindData(err)
	}

	repo.Log.Info("doctorPostgresRepository.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(doctors)),
	)
	return doctors, total, nil
}

func (repo *doctorPostgresRepository) Update(ctx context.Context, doctor *models.Doctor) (*models.Doctor, error) {
	requestID := utils.GetRequestID(ctx)
	repo.Log.Info("doctorPostgresRepository.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingDoctorIDKey, doctor.ID),
	)

	result, err := repo.DB.ExecContext(ctx, queries.UpdateDoctor,
		doctor.FirstName,
		doctor.LastName,
		doctor.ContactNumber,
		doctor.Email,
		doctor.SpecializationID,
		doctor.DepartmentID,
		doctor.LicenseNumber,
		doctor.Qualification,
		doctor.ExperienceYears,
		doctor.ConsultationFee,
		doctor.ID,
	)
	if err != nil {
		repo.Log.Error("doctorPostgresRepository.Update error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingDoctorIDKey, doctor.ID),
			zap.Error(err),
		)
		return nil, utils.MapPostgresWriteError(err, exceptions.ErrPostgresDBUpdateData)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, exceptions.ErrPostgresDBUpdateData(err)
	}
	if affected == 0 {
		repo.Log.Warn("doctorPostgresRepository.Update no rows found",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingDoctorIDKey, doctor.ID),
		)
		return nil, nil
	}

	repo.Log.Info("doctorPostgresRepository.Update succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingDoctorIDKey, doctor.ID),
	)
	return repo.FindByID(ctx, doctor.ID)
}

func (repo *doctorPostgresRepository) Delete(ctx context.Context, doctorID int64) error {
	requestID := utils.GetRequestID(ctx)
	repo.Log.Info("doctorPostgresRepository.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingDoctorIDKey, doctorID),
	)

	if _, err := repo.DB.ExecContext(ctx, queries.DeleteDoctor, doctorID); err != nil {
		repo.Log.Error("doctorPostgresRepository.Delete error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingDoctorIDKey, doctorID),
			zap.Error(err),
		)
		return utils.MapPostgresDeleteError(err, "doctor")
	}

	repo.Log.Info("doctorPostgresRepository.Delete succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingDoctorIDKey, doctorID),
	)
	return nil
}
