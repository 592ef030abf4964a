package controllers

import (
	"context"
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/exceptions"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockAppointmentUsecase struct {
	mock.Mock
}

func (m *MockAppointmentUsecase) Create(ctx context.Context, actor models.ActorContext, request *requests.CreateAppointment) (*models.Appointment, error) {
	args := m.Called(ctx, actor, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

func (m *MockAppointmentUsecase) FindByID(ctx context.Context, actor models.ActorContext, appointmentID int64) (*models.Appointment, error) {
	args := m.Called(ctx, actor, appointmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

func (m *MockAppointmentUsecase) FindAll(ctx context.Context, actor models.ActorContext, filter models.AppointmentFilter) ([]models.Appointment, int, error) {
	args := m.Called(ctx, actor, filter)
	return args.Get(0).([]models.Appointment), args.Int(1), args.Error(2)
}

func (m *MockAppointmentUsecase) FindByDoctor(ctx context.Context, actor models.ActorContext, doctorID int64, filter models.AppointmentFilter) ([]models.Appointment, int, error) {
	args := m.Called(ctx, actor, doctorID, filter)
	return args.Get(0).([]models.Appointment), args.Int(1), args.Error(2)
}

func (m *MockAppointmentUsecase) Update(ctx context.Context, actor models.ActorContext, appointmentID int64, request *requests.UpdateAppointment) (*models.Appointment, error) {
	args := m.Called(ctx, actor, appointmentID, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

func (m *MockAppointmentUsecase) UpdateStatus(ctx context.Context, actor models.ActorContext, appointmentID int64, status models.AppointmentStatus) (*models.Appointment, error) {
	args := m.Called(ctx, actor, appointmentID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

func (m *MockAppointmentUsecase) Cancel(ctx context.Context, actor models.ActorContext, appointmentID int64) (*models.Appointment, error) {
	args := m.Called(ctx, actor, appointmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

func (m *MockAppointmentUsecase) MarkNoShows(ctx context.Context, cutoff time.Time) (int, error) {
	args := m.Called(ctx, cutoff)
	return args.Int(0), args.Error(1)
}

func TestAppointmentController_Create(t *testing.T) {
	bookingDate := time.Date(2025, 11, 20, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		body       string
		setupMock  func(*MockAppointmentUsecase)
		wantStatus int
		wantMsg    string
	}{
		{
			name: "booked",
			body: `{"patient_id":5,"doctor_id":1,"appointment_date":"2025-11-20","appointment_time":"10:00:00"}`,
			setupMock: func(m *MockAppointmentUsecase) {
				m.On("Create", mock.Anything, staffSession.Actor(), mock.AnythingOfType("*requests.CreateAppointment")).
					Return(&models.Appointment{ID: 11, PatientID: 5, DoctorID: 1, AppointmentDate: bookingDate, AppointmentTime: "10:00:00", Status: models.AppointmentStatusScheduled}, nil)
			},
			wantStatus: constvars.StatusCreated,
			wantMsg:    constvars.CreateAppointmentSuccessMessage,
		},
		{
			name: "slot taken",
			body: `{"patient_id":6,"doctor_id":1,"appointment_date":"2025-11-20","appointment_time":"10:00:00"}`,
			setupMock: func(m *MockAppointmentUsecase) {
				m.On("Create", mock.Anything, staffSession.Actor(), mock.AnythingOfType("*requests.CreateAppointment")).
					Return(nil, exceptions.ErrSlotAlreadyBooked(nil, 1, "2025-11-20", "10:00:00"))
			},
			wantStatus: constvars.StatusConflict,
			wantMsg:    "This time slot is already booked",
		},
		{
			name:       "malformed time",
			body:       `{"patient_id":5,"doctor_id":1,"appointment_date":"2025-11-20","appointment_time":"25:00"}`,
			setupMock:  func(m *MockAppointmentUsecase) {},
			wantStatus: constvars.StatusBadRequest,
		},
		{
			name:       "broken json",
			body:       `{"doctor_id":`,
			setupMock:  func(m *MockAppointmentUsecase) {},
			wantStatus: constvars.StatusBadRequest,
		},
		{
			name: "deadline",
			body: `{"patient_id":5,"doctor_id":1,"appointment_date":"2025-11-20","appointment_time":"10:00:00"}`,
			setupMock: func(m *MockAppointmentUsecase) {
				m.On("Create", mock.Anything, staffSession.Actor(), mock.AnythingOfType("*requests.CreateAppointment")).
					Return(nil, context.DeadlineExceeded)
			},
			wantStatus: constvars.StatusGatewayTimeout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			usecase := new(MockAppointmentUsecase)
			tt.setupMock(usecase)
			ctrl := &AppointmentController{Log: zap.NewNop(), AppointmentUsecase: usecase}

			rec := httptest.NewRecorder()
			ctrl.Create(rec, newRequest(http.MethodPost, "/api/v1/appointments", strings.NewReader(tt.body), staffSession, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, decodeEnvelope(t, rec).Message)
			}
			usecase.AssertExpectations(t)
		})
	}
}

func TestAppointmentController_FindAll_ParsesFilter(t *testing.T) {
	usecase := new(MockAppointmentUsecase)
	ctrl := &AppointmentController{Log: zap.NewNop(), AppointmentUsecase: usecase}

	expected := models.AppointmentFilter{
		Status:     models.AppointmentStatusNoShow,
		Date:       "2025-11-20",
		DoctorID:   1,
		Pagination: models.Pagination{Page: 2, PageSize: 5},
	}
	usecase.On("FindAll", mock.Anything, staffSession.Actor(), expected).
		Return([]models.Appointment{{ID: 6}}, 11, nil)

	rec := httptest.NewRecorder()
	ctrl.FindAll(rec, newRequest(http.MethodGet, "/api/v1/appointments?status=No+Show&date=2025-11-20&doctor_id=1&page=2&page_size=5", nil, staffSession, nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeEnvelope(t, rec)
	require.NotNil(t, body.Pagination)
	assert.Equal(t, 11, body.Pagination.Total)
	assert.Contains(t, body.Pagination.NextURL, "page=3")
	usecase.AssertExpectations(t)
}

func TestAppointmentController_FindAll_RejectsUnknownStatus(t *testing.T) {
	usecase := new(MockAppointmentUsecase)
	ctrl := &AppointmentController{Log: zap.NewNop(), AppointmentUsecase: usecase}

	rec := httptest.NewRecorder()
	ctrl.FindAll(rec, newRequest(http.MethodGet, "/api/v1/appointments?status=Lost", nil, staffSession, nil))

	assert.Equal(t, constvars.StatusBadRequest, rec.Code)
	usecase.AssertNotCalled(t, "FindAll", mock.Anything, mock.Anything, mock.Anything)
}

func TestAppointmentController_UpdateStatus(t *testing.T) {
	usecase := new(MockAppointmentUsecase)
	ctrl := &AppointmentController{Log: zap.NewNop(), AppointmentUsecase: usecase}

	usecase.On("UpdateStatus", mock.Anything, staffSession.Actor(), int64(11), models.AppointmentStatusCompleted).
		Return(nil, exceptions.ErrInvalidStatusTransition(nil, "Scheduled", "Completed"))

	rec := httptest.NewRecorder()
	ctrl.UpdateStatus(rec, newRequest(http.MethodPut, "/api/v1/appointments/11/status", strings.NewReader(`{"status":"Completed"}`), staffSession,
		map[string]string{constvars.URLParamAppointmentID: "11"}))

	assert.Equal(t, constvars.StatusBadRequest, rec.Code)
	usecase.AssertExpectations(t)
}

func TestAppointmentController_Cancel_BadID(t *testing.T) {
	usecase := new(MockAppointmentUsecase)
	ctrl := &AppointmentController{Log: zap.NewNop(), AppointmentUsecase: usecase}

	rec := httptest.NewRecorder()
	ctrl.Cancel(rec, newRequest(http.MethodDelete, "/api/v1/appointments/abc", nil, staffSession,
		map[string]string{constvars.URLParamAppointmentID: "abc"}))

	assert.Equal(t, constvars.StatusBadRequest, rec.Code)
	usecase.AssertNotCalled(t, "Cancel", mock.Anything, mock.Anything, mock.Anything)
}

func TestAppointmentController_RequiresSession(t *testing.T) {
	ctrl := &AppointmentController{Log: zap.NewNop(), AppointmentUsecase: new(MockAppointmentUsecase)}

	rec := httptest.NewRecorder()
	ctrl.FindByID(rec, newRequest(http.MethodGet, "/api/v1/appointments/1", nil, nil,
		map[string]string{constvars.URLParamAppointmentID: "1"}))

	assert.Equal(t, constvars.StatusUnauthorized, rec.Code)
}
