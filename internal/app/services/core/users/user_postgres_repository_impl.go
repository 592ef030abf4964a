package users

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

type userPostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

var (
	userPostgresRepositoryInstance contracts.UserRepository
	onceUserPostgresRepository     sync.Once
)

func NewUserPostgresRepository(db *sql.DB, logger *zap.Logger) contracts.UserRepository {
	onceUserPostgresRepository.Do(func() {
		instance := &userPostgresRepository{
			DB:  db,
			Log: logger,
		}
		userPostgresRepositoryInstance = instance
	})
	return userPostgresRepositoryInstance
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanUser(row rowScanner) (*models.User, error) {
	var (
		user      models.User
		lastLogin sql.NullTime
	)
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.RefID,
		&user.IsActive,
		&lastLogin,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if lastLogin.Valid {
		user.LastLogin = &lastLogin.Time
	}
	return &user, nil
}

func (repo *userPostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	requestID := utils.GetRequestID(ctx)
	repo.Log.Info("userPostgresRepository.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, user.Email),
	)

	created := *user
	err := repo.DB.QueryRowContext(ctx, queries.InsertUser,
		user.Email,
		user.PasswordHash,
		user.Role,
		user.RefID,
		user.IsActive,
	).Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		repo.Log.Error("userPostgresRepository.Create error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if constraint, ok := utils.UniqueViolation(err); ok && constraint == constvars.ConstraintUserEmailKey {
			return nil, exceptions.ErrEmailAlreadyExist(err)
		}
		return nil, utils.MapPostgresWriteError(err, exceptions.ErrPostgresDBInsertData)
	}

	repo.Log.Info("userPostgresRepository.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingUserIDKey, created.ID),
	)
	return &created, nil
}

func (repo *userPostgresRepository) FindByID(ctx context.Context, userID int64) (*models.User, error) {
	requestID := utils.GetRequestID(ctx)
	repo.Log.Info("userPostgresRepository.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingUserIDKey, userID),
	)

	user, err := scanUser(repo.DB.QueryRowContext(ctx, queries.GetUserByID, userID))
	if err == sql.ErrNoRows {
		repo.Log.Warn("userPostgresRepository.FindByID no rows found",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingUserIDKey, userID),
		)
		return nil, nil
	} else if err != nil {
		repo.Log.Error("userPostgresRepository.FindByID error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingUserIDKey, userID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}

	repo.Log.Info("userPostgresRepository.FindByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingUserIDKey, userID),
	)
	return user, nil
}

func (repo *userPostgresRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	requestID := utils.GetRequestID(ctx)
	repo.Log.Info("userPostgresRepository.FindByEmail called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, email),
	)

	user, err := scanUser(repo.DB.QueryRowContext(ctx, queries.GetUserByEmail, email))
	if err == sql.ErrNoRows {
		repo.Log.Warn("userPostgresRepository.FindByEmail no rows found",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEmailKey, email),
		)
		return nil, nil
	} else if err != nil {
		repo.Log.Error("userPostgresRepository.FindByEmail error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEmailKey, email),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}

	repo.Log.Info("userPostgresRepository.FindByEmail succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingUserIDKey, user.ID),
	)
	return user, nil
}

func (repo *userPostgresRepository) UpdatePassword(ctx context.Context, userID int64, passwordHash string) error {
	requestID := utils.GetRequestID(ctx)
	repo.Log.Info("userPostgresRepository.UpdatePassword called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingUserIDKey, userID),
	)

	result, err := repo.DB.ExecContext(ctx, queries.UpdateUserPassword, passwordHash, userID)
	if err != nil {
		repo.Log.Error("userPostgresRepository.UpdatePassword error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingUserIDKey, userID),
			zap.Error(err),
		)
		return exceptions.ErrPostgresDBUpdateData(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return exceptions.ErrPostgresDBUpdateData(err)
	}
	if affected == 0 {
		return exceptions.ErrUserNotExist(nil)
	}

	repo.Log.Info("userPostgresRepository.UpdatePassword succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingUserIDKey, userID),
	)
	return nil
}

func (repo *userPostgresRepository) UpdateLastLogin(ctx context.Context, userID int64, lastLogin time.Time) error {
	requestID := utils.GetRequestID(ctx)

	if _, err := repo.DB.ExecContext(ctx, queries.UpdateUserLastLogin, lastLogin, userID); err != nil {
		repo.Log.Error("userPostgresRepository.UpdateLastLogin error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingUserIDKey, userID),
			zap.Error(err),
		)
		return exceptions.ErrPostgresDBUpdateData(err)
	}
	return nil
}
