package patients

import (
	"context"
	"errors"
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/exceptions"
	"hospital-service/internal/pkg/queries"
	"hospital-service/internal/pkg/utils"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var patientRowColumns = []string{
	"id", "patient_number", "first_name", "last_name", "date_of_birth", "gender", "blood_group",
	"contact_number", "email", "address", "emergency_contact", "emergency_contact_number",
	"created_at", "updated_at",
}

func setupPatientRepository(t *testing.T) (*patientPostgresRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return &patientPostgresRepository{DB: db, Log: zap.NewNop()}, mock
}

func TestPatientPostgresRepository_Create(t *testing.T) {
	repo, mock := setupPatientRepository(t)
	now := time.Date(2025, 11, 1, 8, 0, 0, 0, time.UTC)

	patient := &models.Patient{
		PatientNumber: "PAT123456789",
		FirstName:     "Asha",
		LastName:      "Rao",
		Gender:        models.GenderFemale,
	}

	mock.ExpectQuery(regexp.QuoteMeta(queries.InsertPatient)).
		WithArgs(patient.PatientNumber, "Asha", "Rao", nil, models.GenderFemale, "", "", "", "", "", "").
		WillReturnRows(sqlmock.NewRows(patientRowColumns).AddRow(
			int64(7), patient.PatientNumber, "Asha", "Rao", nil, models.GenderFemale, "", "", "", "", "", "", now, now,
		))

	created, err := repo.Create(context.Background(), patient)
	require.NoError(t, err)
	assert.Equal(t, int64(7), created.ID)
	assert.Equal(t, "PAT123456789", created.PatientNumber)
	assert.Nil(t, created.DateOfBirth)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPatientPostgresRepository_Create_DuplicatePatientNumber(t *testing.T) {
	repo, mock := setupPatientRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta(queries.InsertPatient)).
		WillReturnError(&pq.Error{Code: "23505", Constraint: constvars.ConstraintPatientNumberKey, Table: "patients"})

	_, err := repo.Create(context.Background(), &models.Patient{PatientNumber: "PAT000000001", FirstName: "Asha"})
	require.Error(t, err)
	assert.Equal(t, constvars.StatusConflict, exceptions.StatusCode(err))

	constraint, ok := utils.UniqueViolation(err)
	assert.True(t, ok)
	assert.Equal(t, constvars.ConstraintPatientNumberKey, constraint)
}

func TestPatientPostgresRepository_FindByID_NotFound(t *testing.T) {
	repo, mock := setupPatientRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta(queries.GetPatientByID)).
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows(patientRowColumns))

	patient, err := repo.FindByID(context.Background(), 404)
	assert.NoError(t, err)
	assert.Nil(t, patient)
}

func TestPatientPostgresRepository_FindByID_DriverError(t *testing.T) {
	repo, mock := setupPatientRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta(queries.GetPatientByID)).
		WithArgs(int64(1)).
		WillReturnError(errors.New("connection reset"))

	_, err := repo.FindByID(context.Background(), 1)
	require.Error(t, err)
	assert.Equal(t, constvars.StatusInternalServerError, exceptions.StatusCode(err))
}

func TestPatientPostgresRepository_FindAll(t *testing.T) {
	repo, mock := setupPatientRepository(t)
	now := time.Now()
	dob := time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC)

	filter := models.PatientFilter{Search: "rao", Pagination: models.Pagination{Page: 2, PageSize: 10}}

	mock.ExpectQuery(regexp.QuoteMeta(queries.CountPatients)).
		WithArgs("rao").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(11))
	mock.ExpectQuery(regexp.QuoteMeta(queries.GetAllPatients)).
		WithArgs("rao", 10, 10).
		WillReturnRows(sqlmock.NewRows(patientRowColumns).AddRow(
			int64(11), "PAT000000011", "Ravi", "Rao", dob, models.GenderMale, "O+", "", "", "", "", "", now, now,
		))

	patients, total, err := repo.FindAll(context.Background(), filter)
	require.NoError(t, err)
	assert.Equal(t, 11, total)
	require.Len(t, patients, 1)
	assert.Equal(t, "Ravi Rao", patients[0].FullName())
	require.NotNil(t, patients[0].DateOfBirth)
	assert.True(t, dob.Equal(*patients[0].DateOfBirth))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPatientPostgresRepository_Update_NotFound(t *testing.T) {
	repo, mock := setupPatientRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta(queries.UpdatePatient)).
		WillReturnRows(sqlmock.NewRows(patientRowColumns))

	updated, err := repo.Update(context.Background(), &models.Patient{ID: 99, FirstName: "Ghost"})
	assert.NoError(t, err)
	assert.Nil(t, updated)
}
