package appointments

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

type appointmentPostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

var (
	appointmentPostgresRepositoryInstance contracts.AppointmentRepository
	onceAppointmentPostgresRepository     sync.Once
)

func NewAppointmentPostgresRepository(db *sql.DB, logger *zap.Logger) contracts.AppointmentRepository {
	onceAppointmentPostgresRepository.Do(func() {
		instance := &appointmentPostgresRepository{
			DB:  db,
			Log: logger,
		}
		appointmentPostgresRepositoryInstance = instance
	})
	return appointmentPostgresRepositoryInstance
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAppointment(row rowScanner) (*models.Appointment, error) {
	var (
		appointment models.Appointment
		reason      sql.NullString
		notes       sql.NullString
	)
	err := row.Scan(
		&appointment.ID,
		&appointment.PatientID,
		&appointment.PatientName,
		&appointment.DoctorID,
		&appointment.DoctorName,
		&appointment.ClinicID,
		&appointment.AppointmentDate,
		&appointment.AppointmentTime,
		&appointment.Status,
		&reason,
		&notes,
		&appointment.CreatedAt,
		&appointment.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	appointment.Reason = reason.String
	appointment.Notes = notes.String
	return &appointment, nil
}

func (repo *appointmentPostgresRepository) collect(rows *sql.Rows) ([]models.Appointment, error) {
	appointments := []models.Appointment{}
	for rows.Next() {
		appointment, err := scanAppointment(rows)
		if err != nil {
			return nil, exceptions.ErrPostgresDBScanData(err)
		}
		appointments = append(appointments, *appointment)
	}
	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return appointments, nil
}

func (repo *appointmentPostgresRepository) Create(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error) {
	requestID := utils.GetRequestID(ctx)
	repo.Log.Info("appointmentPostgresRepository.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingDoctorIDKey, appointment.DoctorID),
		zap.Int64(constvars.LoggingPatientIDKey, appointment.PatientID),
	)

	var appointmentID int64
	err := repo.DB.QueryRowContext(ctx, queries.InsertAppointment,
		appointment.PatientID,
		appointment.DoctorID,
		appointment.ClinicID,
		appointment.AppointmentDate,
		appointment.AppointmentTime,
		appointment.Status,
		appointment.Reason,
		appointment.Notes,
	).Scan(&appointmentID)
	if err != nil {
		repo.Log.Error("appointmentPostgresRepository.Create error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, utils.MapPostgresWriteError(err, exceptions.ErrPostgresDBInsertData)
	}

	repo.Log.Info("appointmentPostgresRepository.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingAppointmentIDKey, appointmentID),
	)
	return repo.FindByID(ctx, appointmentID)
}

func (repo *appointmentPostgresRepository) FindByID(ctx context.Context, appointmentID int64) (*models.Appointment, error) {
	requestID := utils.GetRequestID(ctx)
	repo.Log.Info("appointmentPostgresRepository.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	appointment, err := scanAppointment(repo.DB.QueryRowContext(ctx, queries.GetAppointmentByID, appointmentID))
	if err == sql.ErrNoRows {
		repo.Log.Warn("appointmentPostgresRepository.FindByID no rows found",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingAppointmentIDKey, appointmentID),
		)
		return nil, nil
	} else if err != nil {
		repo.Log.Error("appointmentPostgresRepository.FindByID error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingAppointmentIDKey, appointmentID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}

	repo.Log.Info("appointmentPostgresRepository.FindByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingAppointmentIDKey, appointmentID),
	)
	return appointment, nil
}

func (repo *appointmentPostgresRepository) FindAll(ctx context.Context, filter models.AppointmentFilter) ([]models.Appointment, int, error) {
	requestID := utils.GetRequestID(ctx)
	repo.Log.Info("appointmentPostgresRepository.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Any(constvars.LoggingQueryParamsKey, filter),
	)

	var total int
	err := repo.DB.QueryRowContext(ctx, queries.CountAppointments,
		string(filter.Status),
		filter.Date,
		filter.DoctorID,
		filter.PatientID,
	).Scan(&total)
	if err != nil {
		repo.Log.Error("appointmentPostgresRepository.FindAll error counting rows",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, 0, exceptions.ErrPostgresDBFindData(err)
	}

	rows, err := repo.DB.QueryContext(ctx, queries.GetAllAppointments,
		string(filter.Status),
		filter.Date,
		filter.DoctorID,
		filter.PatientID,
		filter.Limit(),
		filter.Offset(),
	)
	if err != nil {
		repo.Log.Error("appointmentPostgresRepository.FindAll error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, 0, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	appointments, err := repo.collect(rows)
	if err != nil {
		repo.Log.Error("appointmentPostgresRepository.FindAll error reading rows",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, 0, err
	}

	repo.Log.Info("appointmentPostgresRepository.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(appointments)),
	)
	return appointments, total, nil
}

func (repo *appointmentPostgresRepository) FindActiveByDate(ctx context.Context, date string, doctorID, patientID int64) ([]models.Appointment, error) {
	requestID := utils.GetRequestID(ctx)
	repo.Log.Info("appointmentPostgresRepository.FindActiveByDate called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueryKey, date),
	)

	rows, err := repo.DB.QueryContext(ctx, queries.GetActiveAppointmentsByDate, date, doctorID, patientID)
	if err != nil {
		repo.Log.Error("appointmentPostgresRepository.FindActiveByDate error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	appointments, err := repo.collect(rows)
	if err != nil {
		repo.Log.Error("appointmentPostgresRepository.FindActiveByDate error reading rows",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	repo.Log.Info("appointmentPostgresRepository.FindActiveByDate succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(appointments)),
	)
	return appointments, nil
}

func (repo *appointmentPostgresRepository) Update(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error) {
	requestID := utils.GetRequestID(ctx)
	repo.Log.Info("appointmentPostgresRepository.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingAppointmentIDKey, appointment.ID),
	)

	result, err := repo.DB.ExecContext(ctx, queries.UpdateAppointment,
		appointment.DoctorID,
		appointment.ClinicID,
		appointment.AppointmentDate,
		appointment.AppointmentTime,
		appointment.Status,
		appointment.Reason,
		appointment.Notes,
		appointment.ID,
	)
	if err != nil {
		repo.Log.Error("appointmentPostgresRepository.Update error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingAppointmentIDKey, appointment.ID),
			zap.Error(err),
		)
		return nil, utils.MapPostgresWriteError(err, exceptions.ErrPostgresDBUpdateData)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, exceptions.ErrPostgresDBUpdateData(err)
	}
	if affected == 0 {
		repo.Log.Warn("appointmentPostgresRepository.Update no rows found",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingAppointmentIDKey, appointment.ID),
		)
		return nil, nil
	}

	repo.Log.Info("appointmentPostgresRepository.Update succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingAppointmentIDKey, appointment.ID),
	)
	return repo.FindByID(ctx, appointment.ID)
}

func (repo *appointmentPostgresRepository) UpdateStatus(ctx context.Context, appointmentID int64, status models.AppointmentStatus) (*models.Appointment, error) {
	requestID := utils.GetRequestID(ctx)
	repo.Log.Info("appointmentPostgresRepository.UpdateStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingAppointmentIDKey, appointmentID),
		zap.String(constvars.LoggingNextStatusKey, string(status)),
	)

	result, err := repo.DB.ExecContext(ctx, queries.UpdateAppointmentStatus, status, appointmentID)
	if err != nil {
		repo.Log.Error("appointmentPostgresRepository.UpdateStatus error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingAppointmentIDKey, appointmentID),
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

	repo.Log.Info("appointmentPostgresRepository.UpdateStatus succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingAppointmentIDKey, appointmentID),
	)
	return repo.FindByID(ctx, appointmentID)
}

func (repo *appointmentPostgresRepository) CountActiveSlot(ctx context.Context, slot models.Slot, excludeID int64) (int, error) {
	requestID := utils.GetRequestID(ctx)
	repo.Log.Info("appointmentPostgresRepository.CountActiveSlot called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Any(constvars.LoggingAppointmentSlot, slot),
	)

	var count int
	err := repo.DB.QueryRowContext(ctx, queries.CountActiveAppointmentsBySlot,
		slot.DoctorID,
		slot.Date,
		slot.Time,
		excludeID,
	).Scan(&count)
	if err != nil {
		repo.Log.Error("appointmentPostgresRepository.CountActiveSlot error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return 0, exceptions.ErrPostgresDBFindData(err)
	}

	repo.Log.Info("appointmentPostgresRepository.CountActiveSlot succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, count),
	)
	return count, nil
}

func (repo *appointmentPostgresRepository) MarkNoShowBefore(ctx context.Context, cutoff time.Time) ([]models.Appointment, error) {
	requestID := utils.GetRequestID(ctx)
	repo.Log.Info("appointmentPostgresRepository.MarkNoShowBefore called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Time(constvars.LoggingCutoffKey, cutoff),
	)

	// appointment date and time are stored as clinic wall clock time
	localCutoff := cutoff.In(time.Local).Format(constvars.DateTimeLayout)
	rows, err := repo.DB.QueryContext(ctx, queries.MarkAppointmentsNoShowBefore, localCutoff)
	if err != nil {
		repo.Log.Error("appointmentPostgresRepository.MarkNoShowBefore error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBUpdateData(err)
	}
	defer rows.Close()

	marked := []models.Appointment{}
	for rows.Next() {
		appointment := models.Appointment{Status: models.AppointmentStatusNoShow}
		err := rows.Scan(
			&appointment.ID,
			&appointment.PatientID,
			&appointment.DoctorID,
			&appointment.AppointmentDate,
			&appointment.AppointmentTime,
		)
		if err != nil {
			repo.Log.Error("appointmentPostgresRepository.MarkNoShowBefore error scanning row",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, exceptions.ErrPostgresDBScanData(err)
		}
		marked = append(marked, appointment)
	}
	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBUpdateData(err)
	}

	repo.Log.Info("appointmentPostgresRepository.MarkNoShowBefore succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(marked)),
	)
	return marked, nil
}
