package staff

import (
	"context"
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/queries"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var staffRowColumns = []string{
	"id", "first_name", "last_name", "contact_number", "email", "department_id", "department_name",
	"position", "joining_date", "created_at", "updated_at",
}

func TestStaffPostgresRepository_Create_DefaultsJoiningDate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := &staffPostgresRepository{DB: db, Log: zap.NewNop()}
	today := time.Date(2025, 11, 20, 0, 0, 0, 0, time.UTC)
	departmentID := int64(3)

	mock.ExpectQuery(regexp.QuoteMeta(queries.InsertStaff)).
		WithArgs("Kiran", "", "", "", departmentID, "Receptionist", nil).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(8)))
	mock.ExpectQuery(regexp.QuoteMeta(queries.GetStaffByID)).
		WithArgs(int64(8)).
		WillReturnRows(sqlmock.NewRows(staffRowColumns).AddRow(
			int64(8), "Kiran", "", "", "", departmentID, "Front Desk", "Receptionist", today, today, today,
		))

	created, err := repo.Create(context.Background(), &models.Staff{
		FirstName:    "Kiran",
		DepartmentID: &departmentID,
		Position:     "Receptionist",
	})
	require.NoError(t, err)
	assert.Equal(t, "Front Desk", created.DepartmentName)
	assert.True(t, today.Equal(created.JoiningDate))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStaffPostgresRepository_FindAll(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := &staffPostgresRepository{DB: db, Log: zap.NewNop()}
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(queries.CountStaff)).
		WithArgs("", int64(0)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta(queries.GetAllStaff)).
		WithArgs("", int64(0), 10, 0).
		WillReturnRows(sqlmock.NewRows(staffRowColumns).AddRow(
			int64(1), "Lata", "M", "", "", nil, "", "Nurse", now, now, now,
		))

	members, total, err := repo.FindAll(context.Background(), models.StaffFilter{Pagination: models.Pagination{Page: 1, PageSize: 10}})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, members, 1)
	assert.Nil(t, members[0].DepartmentID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
