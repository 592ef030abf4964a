package users

import (
	"context"
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/exceptions"
	"hospital-service/internal/pkg/queries"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var userColumns = []string{
	"id", "email", "password_hash", "role", "ref_id", "is_active", "last_login", "created_at", "updated_at",
}

func TestUserPostgresRepository_FindByEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := &userPostgresRepository{DB: db, Log: zap.NewNop()}
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(queries.GetUserByEmail)).
		WithArgs("asha@example.com").
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow(
			int64(40), "asha@example.com", "$2a$10$hash", models.RolePatient, int64(5), true, nil, now, now,
		))

	user, err := repo.FindByEmail(context.Background(), "asha@example.com")
	require.NoError(t, err)
	require.NotNil(t, user.RefID)
	assert.Equal(t, int64(5), *user.RefID)
	assert.Nil(t, user.LastLogin)
	assert.Equal(t, models.ActorContext{UserID: 40, Role: models.RolePatient, RefID: 5}, user.Actor())
}

func TestUserPostgresRepository_FindByEmail_NoRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := &userPostgresRepository{DB: db, Log: zap.NewNop()}
	mock.ExpectQuery(regexp.QuoteMeta(queries.GetUserByEmail)).
		WithArgs("ghost@example.com").
		WillReturnRows(sqlmock.NewRows(userColumns))

	user, err := repo.FindByEmail(context.Background(), "ghost@example.com")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserPostgresRepository_Create_DuplicateEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := &userPostgresRepository{DB: db, Log: zap.NewNop()}
	mock.ExpectQuery(regexp.QuoteMeta(queries.InsertUser)).
		WithArgs("asha@example.com", "hash", models.RolePatient, int64(5), true).
		WillReturnError(&pq.Error{Code: "23505", Constraint: constvars.ConstraintUserEmailKey, Table: "users"})

	refID := int64(5)
	_, err = repo.Create(context.Background(), &models.User{
		Email:        "asha@example.com",
		PasswordHash: "hash",
		Role:         models.RolePatient,
		RefID:        &refID,
		IsActive:     true,
	})
	assert.Equal(t, constvars.StatusConflict, exceptions.StatusCode(err))
}

func TestUserPostgresRepository_UpdatePassword_UnknownUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := &userPostgresRepository{DB: db, Log: zap.NewNop()}
	mock.ExpectExec(regexp.QuoteMeta(queries.UpdateUserPassword)).
		WithArgs("hash", int64(77)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.UpdatePassword(context.Background(), 77, "hash")
	assert.Equal(t, constvars.StatusNotFound, exceptions.StatusCode(err))
}
