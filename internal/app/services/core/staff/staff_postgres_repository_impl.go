package staff

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

type staffPostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

var (
	staffPostgresRepositoryInstance contracts.StaffRepository
	onceStaffPostgresRepository     sync.Once
)

func NewStaffPostgresRepository(db *sql.DB, logger *zap.Logger) contracts.StaffRepository {
	onceStaffPostgresRepository.Do(func() {
		instance := &staffPostgresRepository{
			DB:  db,
			Log: logger,
		}
		staffPostgresRepositoryInstance = instance
	})
	return staffPostgresRepositoryInstance
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanStaff(row rowScanner) (*models.Staff, error) {
	var member models.Staff
	err := row.Scan(
		&member.ID,
		&member.FirstName,
		&member.LastName,
		&member.ContactNumber,
		&member.Email,
		&member.DepartmentID,
		&member.DepartmentName,
		&member.Position,
		&member.JoiningDate,
		&member.CreatedAt,
		&member.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (repo *staffPostgresRepository) Create(ctx context.Context, member *models.Staff) (*models.Staff, error) {
	requestID := utils.GetRequestID(ctx)
	repo.Log.Info("staffPostgresRepository.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	// a zero joining date lets the column default to today
	var joiningDate interface{}
	if !member.JoiningDate.IsZero() {
		joiningDate = member.JoiningDate
	}

	var staffID int64
	err := repo.DB.QueryRowContext(ctx, queries.InsertStaff,
		member.FirstName,
		member.LastName,
		member.ContactNumber,
		member.Email,
		member.DepartmentID,
		member.Position,
		joiningDate,
	).Scan(&staffID)
	if err != nil {
		repo.Log.Error("staffPostgresRepository.Create error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, utils.MapPostgresWriteError(err, exceptions.ErrPostgresDBInsertData)
	}

	repo.Log.Info("staffPostgresRepository.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingStaffIDKey, staffID),
	)
	return repo.FindByID(ctx, staffID)
}

func (repo *staffPostgresRepository) FindByID(ctx context.Context, staffID int64) (*models.Staff, error) {
	requestID := utils.GetRequestID(ctx)
	repo.Log.Info("staffPostgresRepository.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingStaffIDKey, staffID),
	)

	member, err := scanStaff(repo.DB.QueryRowContext(ctx, queries.GetStaffByID, staffID))
	if err == sql.ErrNoRows {
		repo.Log.Warn("staffPostgresRepository.FindByID no rows found",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingStaffIDKey, staffID),
		)
		return nil, nil
	} else if err != nil {
		repo.Log.Error("staffPostgresRepository.FindByID error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingStaffIDKey, staffID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}

	repo.Log.Info("staffPostgresRepository.FindByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingStaffIDKey, staffID),
	)
	return member, nil
}

func (repo *staffPostgresRepository) FindAll(ctx context.Context, filter models.StaffFilter) ([]models.Staff, int, error) {
	requestID := utils.GetRequestID(ctx)
	repo.Log.Info("staffPostgresRepository.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueryKey, filter.Search),
	)

	var total int
	if err := repo.DB.QueryRowContext(ctx, queries.CountStaff, filter.Search, filter.DepartmentID).Scan(&total); err != nil {
		repo.Log.Error("staffPostgresRepository.FindAll error counting rows",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, 0, exceptions.ErrPostgresDBFindData(err)
	}

	rows, err := repo.DB.QueryContext(ctx, queries.GetAllStaff, filter.Search, filter.DepartmentID, filter.Limit(), filter.Offset())
	if err != nil {
		repo.Log.Error("staffPostgresRepository.FindAll error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, 0, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	members := []models.Staff{}
	for rows.Next() {
		member, err := scanStaff(rows)
		if err != nil {
			repo.Log.Error("staffPostgresRepository.FindAll error scanning row",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, 0, exceptions.ErrPostgresDBScanData(err)
		}
		members = append(members, *member)
	}

	if err := rows.Err(); err != nil {
		repo.Log.Error("staffPostgresRepository.FindAll rows iteration error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, 0, exceptions.ErrPostgresDBFindData(err)
	}

	repo.Log.Info("staffPostgresRepository.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(members)),
	)
	return members, total, nil
}

func (repo *staffPostgresRepository) Update(ctx context.Context, member *models.Staff) (*models.Staff, error) {
	requestID := utils.GetRequestID(ctx)
	repo.Log.Info("staffPostgresRepository.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingStaffIDKey, member.ID),
	)

	result, err := repo.DB.ExecContext(ctx, queries.UpdateStaff,
		member.FirstName,
		member.LastName,
		member.ContactNumber,
		member.Email,
		member.DepartmentID,
		member.Position,
		member.JoiningDate,
		member.ID,
	)
	if err != nil {
		repo.Log.Error("staffPostgresRepository.Update error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingStaffIDKey, member.ID),
			zap.Error(err),
		)
		return nil, utils.MapPostgresWriteError(err, exceptions.ErrPostgresDBUpdateData)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, exceptions.ErrPostgresDBUpdateData(err)
	}
	if affected == 0 {
		repo.Log.Warn("staffPostgresRepository.Update no rows found",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingStaffIDKey, member.ID),
		)
		return nil, nil
	}

	repo.Log.Info("staffPostgresRepository.Update succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingStaffIDKey, member.ID),
	)
	return repo.FindByID(ctx, member.ID)
}

func (repo *staffPostgresRepository) Delete(ctx context.Context, staffID int64) error {
	requestID := utils.GetRequestID(ctx)
	repo.Log.Info("staffPostgresRepository.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingStaffIDKey, staffID),
	)

	if _, err := repo.DB.ExecContext(ctx, queries.DeleteStaff, staffID); err != nil {
		repo.Log.Error("staffPostgresRepository.Delete error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingStaffIDKey, staffID),
			zap.Error(err),
		)
		return exceptions.ErrPostgresDBDeleteData(err)
	}

	repo.Log.Info("staffPostgresRepository.Delete succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingStaffIDKey, staffID),
	)
	return nil
}
