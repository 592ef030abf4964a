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

type departmentPostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

var (
	departmentPostgresRepositoryInstance contracts.DepartmentRepository
	onceDepartmentPostgresRepository     sync.Once
)

func NewDepartmentPostgresRepository(db *sql.DB, logger *zap.Logger) contracts.DepartmentRepository {
	onceDepartmentPostgresRepository.Do(func() {
		instance := &departmentPostgresRepository{
			DB:  db,
			Log: logger,
		}
		departmentPostgresRepositoryInstance = instance
	})
	return departmentPostgresRepositoryInstance
}

func scanDepartment(row rowScanner) (*models.Department, error) {
	var department models.Department
	err := row.Scan(
		&department.ID,
		&department.Name,
		&department.Description,
		&department.HeadDoctorID,
		&department.HeadDoctorName,
		&department.CreatedAt,
		&department.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &department, nil
}

func (repo *departmentPostgresRepository) Create(ctx context.Context, department *models.Department) (*models.Department, error) {
	requestID := utils.GetRequestID(ctx)
	repo.Log.Info("departmentPostgresRepository.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var departmentID int64
	err := repo.DB.QueryRowContext(ctx, queries.InsertDepartment,
		department.Name,
		department.Description,
		department.HeadDoctorID,
	).Scan(&departmentID)
	if err != nil {
		repo.Log.Error("departmentPostgresRepository.Create error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, utils.MapPostgresWriteError(err, exceptions.ErrPostgresDBInsertData)
	}

	repo.Log.Info("departmentPostgresRepository.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingLookupIDKey, departmentID),
	)
	return repo.FindByID(ctx, departmentID)
}

func (repo *departmentPostgresRepository) FindByID(ctx context.Context, departmentID int64) (*models.Department, error) {
	requestID := utils.GetRequestID(ctx)
	repo.Log.Info("departmentPostgresRepository.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingLookupIDKey, departmentID),
	)

	department, err := scanDepartment(repo.DB.QueryRowContext(ctx, queries.GetDepartmentByID, departmentID))
	if err == sql.ErrNoRows {
		repo.Log.Warn("departmentPostgresRepository.FindByID no rows found",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingLookupIDKey, departmentID),
		)
		return nil, nil
	} else if err != nil {
		repo.Log.Error("departmentPostgresRepository.FindByID error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingLookupIDKey, departmentID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}

	repo.Log.Info("departmentPostgresRepository.FindByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingLookupIDKey, departmentID),
	)
	return department, nil
}

func (repo *departmentPostgresRepository) FindAll(ctx context.Context) ([]models.Department, error) {
	requestID := utils.GetRequestID(ctx)
	repo.Log.Info("departmentPostgresRepository.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	rows, err := repo.DB.QueryContext(ctx, queries.GetAllDepartments)
	if err != nil {
		repo.Log.Error("departmentPostgresRepository.FindAll error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	departments := []models.Department{}
	for rows.Next() {
		department, err := scanDepartment(rows)
		if err != nil {
			repo.Log.Error("departmentPostgresRepository.FindAll error scanning row",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, exceptions.ErrPostgresDBScanData(err)
		}
		departments = append(departments, *department)
	}

	if err := rows.Err(); err != nil {
		repo.Log.Error("departmentPostgresRepository.FindAll rows iteration error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}

	repo.Log.Info("departmentPostgresRepository.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(departments)),
	)
	return departments, nil
}

func (repo *departmentPostgresRepository) Update(ctx context.Context, department *models.Department) (*models.Department, error) {
	requestID := utils.GetRequestID(ctx)
	repo.Log.Info("departmentPostgresRepository.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingLookupIDKey, department.ID),
	)

	result, err := repo.DB.ExecContext(ctx, queries.UpdateDepartment,
		department.Name,
		department.Description,
		department.HeadDoctorID,
		department.ID,
	)
	if err != nil {
		repo.Log.Error("departmentPostgresRepository.Update error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingLookupIDKey, department.ID),
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

	repo.Log.Info("departmentPostgresRepository.Update succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingLookupIDKey, department.ID),
	)
	return repo.FindByID(ctx, department.ID)
}

func (repo *departmentPostgresRepository) Delete(ctx context.Context, departmentID int64) error {
	requestID := utils.GetRequestID(ctx)
	repo.Log.Info("departmentPostgresRepository.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingLookupIDKey, departmentID),
	)

	if _, err := repo.DB.ExecContext(ctx, queries.DeleteDepartment, departmentID); err != nil {
		repo.Log.Error("departmentPostgresRepository.Delete error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingLookupIDKey, departmentID),
			zap.Error(err),
		)
		return utils.MapPostgresDeleteError(err, "department")
	}

	repo.Log.Info("departmentPostgresRepository.Delete succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingLookupIDKey, departmentID),
	)
	return nil
}
