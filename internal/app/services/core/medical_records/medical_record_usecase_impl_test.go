package medical_records

import (
	"context"
	"hospital-service/internal/app/config"
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/exceptions"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockMedicalRecordRepository struct {
	mock.Mock
}

func (m *MockMedicalRecordRepository) Create(ctx context.Context, record *models.MedicalRecord) (*models.MedicalRecord, error) {
	args := m.Called(ctx, record)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MedicalRecord), args.Error(1)
}

func (m *MockMedicalRecordRepository) FindByID(ctx context.Context, recordID int64) (*models.MedicalRecord, error) {
	args := m.Called(ctx, recordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MedicalRecord), args.Error(1)
}

func (m *MockMedicalRecordRepository) FindAll(ctx context.Context, filter models.MedicalRecordFilter) ([]models.MedicalRecord, int, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]models.MedicalRecord), args.Int(1), args.Error(2)
}

func (m *MockMedicalRecordRepository) Update(ctx context.Context, record *models.MedicalRecord) (*models.MedicalRecord, error) {
	args := m.Called(ctx, record)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MedicalRecord), args.Error(1)
}

func (m *MockMedicalRecordRepository) Delete(ctx context.Context, recordID int64) error {
	return m.Called(ctx, recordID).Error(0)
}

type MockPatientRepository struct {
	mock.Mock
}

func (m *MockPatientRepository) Create(ctx context.Context, patient *models.Patient) (*models.Patient, error) {
	args := m.Called(ctx, patient)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Patient), args.Error(1)
}

func (m *MockPatientRepository) FindByID(ctx context.Context, patientID int64) (*models.Patient, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Patient), args.Error(1)
}

func (m *MockPatientRepository) FindAll(ctx context.Context, filter models.PatientFilter) ([]models.Patient, int, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]models.Patient), args.Int(1), args.Error(2)
}

func (m *MockPatientRepository) FindRecent(ctx context.Context, limit int) ([]models.Patient, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]models.Patient), args.Error(1)
}

func (m *MockPatientRepository) Update(ctx context.Context, patient *models.Patient) (*models.Patient, error) {
	args := m.Called(ctx, patient)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Patient), args.Error(1)
}

func (m *MockPatientRepository) Delete(ctx context.Context, patientID int64) error {
	return m.Called(ctx, patientID).Error(0)
}

type MockDoctorRepository struct {
	mock.Mock
}

func (m *MockDoctorRepository) Create(ctx context.Context, doctor *models.Doctor) (*models.Doctor, error) {
	args := m.Called(ctx, doctor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Doctor), args.Error(1)
}

func (m *MockDoctorRepository) FindByID(ctx context.Context, doctorID int64) (*models.Doctor, error) {
	args := m.Called(ctx, doctorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Doctor), args.Error(1)
}

func (m *MockDoctorRepository) FindAll(ctx context.Context, filter models.DoctorFilter) ([]models.Doctor, int, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]models.Doctor), args.Int(1), args.Error(2)
}

func (m *MockDoctorRepository) Update(ctx context.Context, doctor *models.Doctor) (*models.Doctor, error) {
	args := m.Called(ctx, doctor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Doctor), args.Error(1)
}

func (m *MockDoctorRepository) Delete(ctx context.Context, doctorID int64) error {
	return m.Called(ctx, doctorID).Error(0)
}

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) UploadFile(ctx context.Context, bucketName, objectName string, file io.Reader, size int64, contentType string) (string, error) {
	args := m.Called(ctx, bucketName, objectName, file, size, contentType)
	return args.String(0), args.Error(1)
}

func (m *MockStorage) ListObjects(ctx context.Context, bucketName, prefix string) ([]models.Attachment, error) {
	args := m.Called(ctx, bucketName, prefix)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Attachment), args.Error(1)
}

func (m *MockStorage) GetObjectUrlWithExpiryTime(ctx context.Context, bucketName, objectName string, expiryTime time.Duration) (string, error) {
	args := m.Called(ctx, bucketName, objectName, expiryTime)
	return args.String(0), args.Error(1)
}

var (
	adminActor         = models.ActorContext{UserID: 1, Role: models.RoleAdmin}
	staffActor         = models.ActorContext{UserID: 2, Role: models.RoleStaff, RefID: 3}
	doctorActor        = models.ActorContext{UserID: 3, Role: models.RoleDoctor, RefID: 1}
	otherDoctorActor   = models.ActorContext{UserID: 6, Role: models.RoleDoctor, RefID: 2}
	patientActor       = models.ActorContext{UserID: 4, Role: models.RolePatient, RefID: 5}
	testInternalConfig = &config.InternalConfig{
		Minio: config.AppMinio{
			BucketName:                         "hospital-attachments",
			AttachmentMaxUploadSizeInMB:        1,
			PreSignedUrlObjectExpiryTimeInHour: 2,
		},
	}
)

type recordFixture struct {
	usecase  *medicalRecordUsecase
	repo     *MockMedicalRecordRepository
	patients *MockPatientRepository
	doctors  *MockDoctorRepository
	storage  *MockStorage
}

func newRecordFixture() *recordFixture {
	f := &recordFixture{
		repo:     new(MockMedicalRecordRepository),
		patients: new(MockPatientRepository),
		doctors:  new(MockDoctorRepository),
		storage:  new(MockStorage),
	}
	f.usecase = NewMedicalRecordUsecase(f.repo, f.patients, f.doctors, f.storage, testInternalConfig, zap.NewNop()).(*medicalRecordUsecase)
	return f
}

func ownRecord() *models.MedicalRecord {
	return &models.MedicalRecord{ID: 10, PatientID: 5, DoctorID: 1, Diagnosis: "Migraine"}
}

func TestMedicalRecordUsecase_Create_DoctorDefaultsToSelf(t *testing.T) {
	f := newRecordFixture()
	f.patients.On("FindByID", mock.Anything, int64(5)).Return(&models.Patient{ID: 5}, nil)
	f.doctors.On("FindByID", mock.Anything, int64(1)).Return(&models.Doctor{ID: 1}, nil)
	f.repo.On("Create", mock.Anything, mock.MatchedBy(func(record *models.MedicalRecord) bool {
		return record.DoctorID == 1 && record.PatientID == 5 && record.VisitDate.IsZero()
	})).Return(ownRecord(), nil)

	created, err := f.usecase.Create(context.Background(), doctorActor, &requests.CreateMedicalRecord{
		PatientID: 5,
		Diagnosis: "Migraine",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10), created.ID)
	f.repo.AssertExpectations(t)
}

func TestMedicalRecordUsecase_Create_ParsesVisitDate(t *testing.T) {
	f := newRecordFixture()
	f.patients.On("FindByID", mock.Anything, int64(5)).Return(&models.Patient{ID: 5}, nil)
	f.doctors.On("FindByID", mock.Anything, int64(1)).Return(&models.Doctor{ID: 1}, nil)
	f.repo.On("Create", mock.Anything, mock.MatchedBy(func(record *models.MedicalRecord) bool {
		return record.VisitDate.Equal(time.Date(2025, 11, 20, 0, 0, 0, 0, time.UTC))
	})).Return(ownRecord(), nil)

	_, err := f.usecase.Create(context.Background(), adminActor, &requests.CreateMedicalRecord{
		PatientID: 5,
		DoctorID:  1,
		VisitDate: "2025-11-20",
	})
	require.NoError(t, err)
}

func TestMedicalRecordUsecase_Create_RequiresDoctorForNonDoctors(t *testing.T) {
	f := newRecordFixture()

	_, err := f.usecase.Create(context.Background(), adminActor, &requests.CreateMedicalRecord{PatientID: 5})
	assert.Equal(t, constvars.StatusBadRequest, exceptions.StatusCode(err))
	f.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestMedicalRecordUsecase_Create_Forbidden(t *testing.T) {
	tests := []struct {
		name  string
		actor models.ActorContext
		req   *requests.CreateMedicalRecord
	}{
		{"doctor writing for a colleague", doctorActor, &requests.CreateMedicalRecord{PatientID: 5, DoctorID: 2}},
		{"staff", staffActor, &requests.CreateMedicalRecord{PatientID: 5, DoctorID: 1}},
		{"patient", patientActor, &requests.CreateMedicalRecord{PatientID: 5, DoctorID: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newRecordFixture()
			_, err := f.usecase.Create(context.Background(), tt.actor, tt.req)
			assert.Equal(t, constvars.StatusForbidden, exceptions.StatusCode(err))
		})
	}
}

func TestMedicalRecordUsecase_Create_UnknownPatient(t *testing.T) {
	f := newRecordFixture()
	f.patients.On("FindByID", mock.Anything, int64(99)).Return(nil, nil)

	_, err := f.usecase.Create(context.Background(), doctorActor, &requests.CreateMedicalRecord{PatientID: 99})
	assert.Equal(t, constvars.StatusNotFound, exceptions.StatusCode(err))
}

func TestMedicalRecordUsecase_FindByPatient_DoctorSeesOwnEntriesOnly(t *testing.T) {
	f := newRecordFixture()
	f.patients.On("FindByID", mock.Anything, int64(5)).Return(&models.Patient{ID: 5}, nil)
	f.repo.On("FindAll", mock.Anything, models.MedicalRecordFilter{
		PatientID:  5,
		DoctorID:   1,
		Pagination: models.Pagination{Page: 1, PageSize: 10},
	}).Return([]models.MedicalRecord{*ownRecord()}, 1, nil)

	records, total, err := f.usecase.FindByPatient(context.Background(), doctorActor, 5, models.Pagination{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	for _, record := range records {
		assert.Equal(t, doctorActor.RefID, record.DoctorID)
	}
}

func TestMedicalRecordUsecase_FindByPatient_PatientSeesOwnHistoryOnly(t *testing.T) {
	f := newRecordFixture()
	f.patients.On("FindByID", mock.Anything, int64(5)).Return(&models.Patient{ID: 5}, nil)
	f.repo.On("FindAll", mock.Anything, models.MedicalRecordFilter{PatientID: 5}).Return([]models.MedicalRecord{*ownRecord()}, 1, nil)

	records, total, err := f.usecase.FindByPatient(context.Background(), patientActor, 5, models.Pagination{})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Len(t, records, 1)

	_, _, err = f.usecase.FindByPatient(context.Background(), patientActor, 6, models.Pagination{})
	assert.Equal(t, constvars.StatusForbidden, exceptions.StatusCode(err))
}

func TestMedicalRecordUsecase_FindAll_PatientFilterForced(t *testing.T) {
	f := newRecordFixture()
	f.repo.On("FindAll", mock.Anything, models.MedicalRecordFilter{PatientID: 5}).Return([]models.MedicalRecord{*ownRecord()}, 1, nil)

	_, _, err := f.usecase.FindAll(context.Background(), patientActor, models.MedicalRecordFilter{PatientID: 6})
	require.NoError(t, err)
	f.repo.AssertExpectations(t)
}

func TestMedicalRecordUsecase_PatientReadsButCannotWriteOwnRecord(t *testing.T) {
	f := newRecordFixture()
	f.repo.On("FindByID", mock.Anything, int64(10)).Return(ownRecord(), nil)

	record, err := f.usecase.FindByID(context.Background(), patientActor, 10)
	require.NoError(t, err)
	assert.Equal(t, "Migraine", record.Diagnosis)

	diagnosis := "Self diagnosed"
	_, err = f.usecase.Update(context.Background(), patientActor, 10, &requests.UpdateMedicalRecord{Diagnosis: &diagnosis})
	assert.Equal(t, constvars.StatusForbidden, exceptions.StatusCode(err))
	f.repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestMedicalRecordUsecase_FindAll_DoctorFilterForced(t *testing.T) {
	f := newRecordFixture()
	f.repo.On("FindAll", mock.Anything, models.MedicalRecordFilter{DoctorID: 2}).Return([]models.MedicalRecord{}, 0, nil)

	_, _, err := f.usecase.FindAll(context.Background(), otherDoctorActor, models.MedicalRecordFilter{DoctorID: 1})
	require.NoError(t, err)
	f.repo.AssertExpectations(t)
}

func TestMedicalRecordUsecase_FindByID_OtherDoctorForbidden(t *testing.T) {
	f := newRecordFixture()
	f.repo.On("FindByID", mock.Anything, int64(10)).Return(ownRecord(), nil)

	_, err := f.usecase.FindByID(context.Background(), otherDoctorActor, 10)
	assert.Equal(t, constvars.StatusForbidden, exceptions.StatusCode(err))

	record, err := f.usecase.FindByID(context.Background(), staffActor, 10)
	require.NoError(t, err)
	assert.Equal(t, "Migraine", record.Diagnosis)
}

func TestMedicalRecordUsecase_Update_AppliesPatch(t *testing.T) {
	f := newRecordFixture()
	diagnosis := "Tension headache"
	f.repo.On("FindByID", mock.Anything, int64(10)).Return(ownRecord(), nil)
	f.repo.On("Update", mock.Anything, mock.MatchedBy(func(record *models.MedicalRecord) bool {
		return record.Diagnosis == diagnosis
	})).Return(&models.MedicalRecord{ID: 10, PatientID: 5, DoctorID: 1, Diagnosis: diagnosis}, nil)

	updated, err := f.usecase.Update(context.Background(), doctorActor, 10, &requests.UpdateMedicalRecord{Diagnosis: &diagnosis})
	require.NoError(t, err)
	assert.Equal(t, diagnosis, updated.Diagnosis)
}

func TestMedicalRecordUsecase_Delete_NotFound(t *testing.T) {
	f := newRecordFixture()
	f.repo.On("FindByID", mock.Anything, int64(404)).Return(nil, nil)

	err := f.usecase.Delete(context.Background(), adminActor, 404)
	assert.Equal(t, constvars.StatusNotFound, exceptions.StatusCode(err))
	f.repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestMedicalRecordUsecase_UploadAttachment(t *testing.T) {
	f := newRecordFixture()
	f.repo.On("FindByID", mock.Anything, int64(10)).Return(ownRecord(), nil)
	f.storage.On("UploadFile", mock.Anything, "hospital-attachments", mock.MatchedBy(func(objectName string) bool {
		return strings.HasPrefix(objectName, "medical-records/10/") && strings.HasSuffix(objectName, "_x-ray_scan.png")
	}), mock.Anything, int64(4), "image/png").Return("medical-records/10/object_x-ray_scan.png", nil)
	f.storage.On("GetObjectUrlWithExpiryTime", mock.Anything, "hospital-attachments", "medical-records/10/object_x-ray_scan.png", 2*time.Hour).
		Return("https://minio.local/signed", nil)

	attachment, err := f.usecase.UploadAttachment(context.Background(), doctorActor, 10, &requests.UploadAttachment{
		FileName:    "X-Ray Scan.png",
		ContentType: "image/png",
		Size:        4,
		Content:     []byte("scan"),
	})
	require.NoError(t, err)
	assert.Equal(t, "https://minio.local/signed", attachment.URL)
	assert.Equal(t, int64(4), attachment.Size)
	f.storage.AssertExpectations(t)
}

func TestMedicalRecordUsecase_UploadAttachment_TooLarge(t *testing.T) {
	f := newRecordFixture()
	f.repo.On("FindByID", mock.Anything, int64(10)).Return(ownRecord(), nil)

	_, err := f.usecase.UploadAttachment(context.Background(), doctorActor, 10, &requests.UploadAttachment{
		FileName: "huge.pdf",
		Size:     2 * constvars.MB,
	})
	assert.Equal(t, constvars.StatusBadRequest, exceptions.StatusCode(err))
	f.storage.AssertNotCalled(t, "UploadFile", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestMedicalRecordUsecase_FindAttachments_SignsEachObject(t *testing.T) {
	f := newRecordFixture()
	f.repo.On("FindByID", mock.Anything, int64(10)).Return(ownRecord(), nil)
	f.storage.On("ListObjects", mock.Anything, "hospital-attachments", "medical-records/10/").Return([]models.Attachment{
		{ObjectName: "medical-records/10/a_lab.pdf", FileName: "lab.pdf"},
		{ObjectName: "medical-records/10/b_scan.png", FileName: "scan.png"},
	}, nil)
	f.storage.On("GetObjectUrlWithExpiryTime", mock.Anything, "hospital-attachments", mock.AnythingOfType("string"), 2*time.Hour).
		Return("https://minio.local/signed", nil)

	attachments, err := f.usecase.FindAttachments(context.Background(), staffActor, 10)
	require.NoError(t, err)
	require.Len(t, attachments, 2)
	for _, attachment := range attachments {
		assert.NotEmpty(t, attachment.URL)
	}
	f.storage.AssertNumberOfCalls(t, "GetObjectUrlWithExpiryTime", 2)
}
