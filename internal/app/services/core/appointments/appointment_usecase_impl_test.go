package appointments

import (
	"context"
	"errors"
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/exceptions"
	"hospital-service/internal/pkg/utils"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// memoryAppointmentRepository mimics appointments_active_slot_uidx so races that slip past the
// pre-check still surface as a unique violation.
type memoryAppointmentRepository struct {
	mu           sync.Mutex
	nextID       int64
	rows         map[int64]models.Appointment
	skipPrecheck bool
}

func newMemoryAppointmentRepository() *memoryAppointmentRepository {
	return &memoryAppointmentRepository{rows: map[int64]models.Appointment{}}
}

func (r *memoryAppointmentRepository) slotTaken(slot models.Slot, excludeID int64) int {
	count := 0
	for id, row := range r.rows {
		if id == excludeID || !row.Status.HoldsSlot() {
			continue
		}
		if row.DoctorID == slot.DoctorID && row.AppointmentDate.Format(constvars.DateLayout) == slot.Date && row.AppointmentTime == slot.Time {
			count++
		}
	}
	return count
}

func slotOf(a models.Appointment) models.Slot {
	return models.Slot{DoctorID: a.DoctorID, Date: a.AppointmentDate.Format(constvars.DateLayout), Time: a.AppointmentTime}
}

func activeSlotViolation() error {
	return utils.MapPostgresWriteError(
		&pq.Error{Code: "23505", Constraint: constvars.ConstraintActiveSlotIndex, Table: "appointments"},
		exceptions.ErrPostgresDBInsertData,
	)
}

func (r *memoryAppointmentRepository) Create(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if appointment.Status.HoldsSlot() && r.slotTaken(slotOf(*appointment), 0) > 0 {
		return nil, activeSlotViolation()
	}
	r.nextID++
	row := *appointment
	row.ID = r.nextID
	r.rows[row.ID] = row
	return &row, nil
}

func (r *memoryAppointmentRepository) FindByID(ctx context.Context, appointmentID int64) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[appointmentID]
	if !ok {
		return nil, nil
	}
	return &row, nil
}

func (r *memoryAppointmentRepository) FindAll(ctx context.Context, filter models.AppointmentFilter) ([]models.Appointment, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := []models.Appointment{}
	for _, row := range r.rows {
		if filter.Status != "" && row.Status != filter.Status {
			continue
		}
		if filter.Date != "" && row.AppointmentDate.Format(constvars.DateLayout) != filter.Date {
			continue
		}
		if filter.DoctorID != 0 && row.DoctorID != filter.DoctorID {
			continue
		}
		if filter.PatientID != 0 && row.PatientID != filter.PatientID {
			continue
		}
		result = append(result, row)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, len(result), nil
}

func (r *memoryAppointmentRepository) FindActiveByDate(ctx context.Context, date string, doctorID, patientID int64) ([]models.Appointment, error) {
	rows, _, err := r.FindAll(ctx, models.AppointmentFilter{Date: date, DoctorID: doctorID, PatientID: patientID})
	if err != nil {
		return nil, err
	}
	active := []models.Appointment{}
	for _, row := range rows {
		if row.Status.HoldsSlot() {
			active = append(active, row)
		}
	}
	return active, nil
}

func (r *memoryAppointmentRepository) Update(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[appointment.ID]; !ok {
		return nil, nil
	}
	if appointment.Status.HoldsSlot() && r.slotTaken(slotOf(*appointment), appointment.ID) > 0 {
		return nil, activeSlotViolation()
	}
	r.rows[appointment.ID] = *appointment
	row := *appointment
	return &row, nil
}

func (r *memoryAppointmentRepository) UpdateStatus(ctx context.Context, appointmentID int64, status models.AppointmentStatus) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[appointmentID]
	if !ok {
		return nil, nil
	}
	row.Status = status
	r.rows[appointmentID] = row
	return &row, nil
}

func (r *memoryAppointmentRepository) CountActiveSlot(ctx context.Context, slot models.Slot, excludeID int64) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.skipPrecheck {
		return 0, nil
	}
	return r.slotTaken(slot, excludeID), nil
}

func (r *memoryAppointmentRepository) MarkNoShowBefore(ctx context.Context, cutoff time.Time) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	marked := []models.Appointment{}
	for id, row := range r.rows {
		if row.Status != models.AppointmentStatusScheduled && row.Status != models.AppointmentStatusConfirmed {
			continue
		}
		clock, _ := time.Parse(constvars.TimeLayoutSeconds, row.AppointmentTime)
		start := row.AppointmentDate.Add(time.Duration(clock.Hour())*time.Hour + time.Duration(clock.Minute())*time.Minute)
		if start.Before(cutoff) {
			row.Status = models.AppointmentStatusNoShow
			r.rows[id] = row
			marked = append(marked, row)
		}
	}
	return marked, nil
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

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, routingKey string, payload interface{}) error {
	return m.Called(ctx, routingKey, payload).Error(0)
}

var (
	adminActor   = models.ActorContext{UserID: 1, Role: models.RoleAdmin}
	staffActor   = models.ActorContext{UserID: 2, Role: models.RoleStaff, RefID: 3}
	doctorActor  = models.ActorContext{UserID: 3, Role: models.RoleDoctor, RefID: 1}
	patientActor = models.ActorContext{UserID: 4, Role: models.RolePatient, RefID: 5}
)

type bookingFixture struct {
	usecase   *appointmentUsecase
	repo      *memoryAppointmentRepository
	publisher *MockEventPublisher
}

func newBookingFixture() bookingFixture {
	repo := newMemoryAppointmentRepository()

	doctors := new(MockDoctorRepository)
	doctors.On("FindByID", mock.Anything, int64(1)).Return(&models.Doctor{ID: 1, FirstName: "Asha"}, nil).Maybe()
	doctors.On("FindByID", mock.Anything, int64(2)).Return(&models.Doctor{ID: 2, FirstName: "Ravi"}, nil).Maybe()
	doctors.On("FindByID", mock.Anything, mock.Anything).Return(nil, nil).Maybe()

	patients := new(MockPatientRepository)
	patients.On("FindByID", mock.Anything, int64(5)).Return(&models.Patient{ID: 5}, nil).Maybe()
	patients.On("FindByID", mock.Anything, int64(6)).Return(&models.Patient{ID: 6}, nil).Maybe()
	patients.On("FindByID", mock.Anything, mock.Anything).Return(nil, nil).Maybe()

	publisher := new(MockEventPublisher)
	publisher.On("Publish", mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()

	return bookingFixture{
		usecase: &appointmentUsecase{
			AppointmentRepository: repo,
			DoctorRepository:      doctors,
			PatientRepository:     patients,
			EventPublisher:        publisher,
			Log:                   zap.NewNop(),
		},
		repo:      repo,
		publisher: publisher,
	}
}

func bookingRequest(patientID int64, clock string) *requests.CreateAppointment {
	return &requests.CreateAppointment{
		PatientID:       patientID,
		DoctorID:        1,
		AppointmentDate: "2025-11-20",
		AppointmentTime: clock,
		Reason:          "checkup",
	}
}

func TestAppointmentUsecase_Create_RejectsDoubleBooking(t *testing.T) {
	f := newBookingFixture()
	ctx := context.Background()

	first, err := f.usecase.Create(ctx, staffActor, bookingRequest(5, "10:00:00"))
	require.NoError(t, err)
	assert.Equal(t, models.AppointmentStatusScheduled, first.Status)
	assert.Equal(t, "10:00:00", first.AppointmentTime)

	_, err = f.usecase.Create(ctx, staffActor, bookingRequest(6, "10:00:00"))
	require.Error(t, err)
	assert.Equal(t, constvars.StatusConflict, exceptions.StatusCode(err))
	assert.Equal(t, "This time slot is already booked", exceptions.ClientMessage(err))

	f.publisher.AssertNumberOfCalls(t, "Publish", 1)
}

func TestAppointmentUsecase_Create_NormalizesTimeBeforeConflictCheck(t *testing.T) {
	f := newBookingFixture()
	ctx := context.Background()

	_, err := f.usecase.Create(ctx, staffActor, bookingRequest(5, "10:00"))
	require.NoError(t, err)

	_, err = f.usecase.Create(ctx, staffActor, bookingRequest(6, "10:00:45"))
	assert.Equal(t, constvars.StatusConflict, exceptions.StatusCode(err))
}

func TestAppointmentUsecase_Create_ConfirmedStillHoldsSlot(t *testing.T) {
	f := newBookingFixture()
	ctx := context.Background()

	first, err := f.usecase.Create(ctx, staffActor, bookingRequest(5, "11:30"))
	require.NoError(t, err)
	_, err = f.usecase.UpdateStatus(ctx, doctorActor, first.ID, models.AppointmentStatusConfirmed)
	require.NoError(t, err)

	_, err = f.usecase.Create(ctx, staffActor, bookingRequest(6, "11:30"))
	assert.Equal(t, constvars.StatusConflict, exceptions.StatusCode(err))
}

func TestAppointmentUsecase_Create_ConcurrentInsertMapsToConflict(t *testing.T) {
	f := newBookingFixture()
	ctx := context.Background()

	_, err := f.usecase.Create(ctx, staffActor, bookingRequest(5, "10:00"))
	require.NoError(t, err)

	f.repo.skipPrecheck = true
	_, err = f.usecase.Create(ctx, staffActor, bookingRequest(6, "10:00"))
	require.Error(t, err)
	assert.Equal(t, constvars.StatusConflict, exceptions.StatusCode(err))
	assert.Equal(t, constvars.ErrClientSlotAlreadyBooked, exceptions.ClientMessage(err))
}

func TestAppointmentUsecase_Cancel_FreesSlot(t *testing.T) {
	for _, terminal := range []models.AppointmentStatus{models.AppointmentStatusCancelled, models.AppointmentStatusNoShow} {
		t.Run(string(terminal), func(t *testing.T) {
			f := newBookingFixture()
			ctx := context.Background()

			first, err := f.usecase.Create(ctx, staffActor, bookingRequest(5, "09:15"))
			require.NoError(t, err)

			_, err = f.usecase.UpdateStatus(ctx, staffActor, first.ID, terminal)
			require.NoError(t, err)

			second, err := f.usecase.Create(ctx, staffActor, bookingRequest(6, "09:15"))
			require.NoError(t, err)
			assert.Equal(t, int64(6), second.PatientID)
		})
	}
}

func TestAppointmentUsecase_Create_PatientBooksForSelf(t *testing.T) {
	f := newBookingFixture()

	created, err := f.usecase.Create(context.Background(), patientActor, bookingRequest(6, "14:00"))
	require.NoError(t, err)
	assert.Equal(t, int64(5), created.PatientID)
}

func TestAppointmentUsecase_Create_Validation(t *testing.T) {
	f := newBookingFixture()
	ctx := context.Background()

	_, err := f.usecase.Create(ctx, staffActor, bookingRequest(0, "10:00"))
	assert.Equal(t, constvars.StatusBadRequest, exceptions.StatusCode(err))

	request := bookingRequest(5, "10:00")
	request.AppointmentDate = "20-11-2025"
	_, err = f.usecase.Create(ctx, staffActor, request)
	assert.Equal(t, constvars.StatusBadRequest, exceptions.StatusCode(err))

	_, err = f.usecase.Create(ctx, staffActor, bookingRequest(5, "25:61"))
	assert.Equal(t, constvars.StatusBadRequest, exceptions.StatusCode(err))

	request = bookingRequest(5, "10:00")
	request.DoctorID = 99
	_, err = f.usecase.Create(ctx, staffActor, request)
	assert.Equal(t, constvars.StatusNotFound, exceptions.StatusCode(err))

	_, err = f.usecase.Create(ctx, staffActor, bookingRequest(77, "10:00"))
	assert.Equal(t, constvars.StatusNotFound, exceptions.StatusCode(err))
}

func TestAppointmentUsecase_Create_DoctorCannotBookForColleague(t *testing.T) {
	f := newBookingFixture()

	request := bookingRequest(5, "10:00")
	request.DoctorID = 2
	_, err := f.usecase.Create(context.Background(), doctorActor, request)
	assert.Equal(t, constvars.StatusForbidden, exceptions.StatusCode(err))
}

func TestAppointmentUsecase_Create_PublishFailureIsIgnored(t *testing.T) {
	f := newBookingFixture()
	publisher := new(MockEventPublisher)
	publisher.On("Publish", mock.Anything, constvars.EventAppointmentBooked, mock.Anything).Return(errors.New("broker down"))
	f.usecase.EventPublisher = publisher

	created, err := f.usecase.Create(context.Background(), staffActor, bookingRequest(5, "10:00"))
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	publisher.AssertExpectations(t)
}

func TestAppointmentUsecase_UpdateStatus_StateMachine(t *testing.T) {
	tests := []struct {
		name  string
		path  []models.AppointmentStatus
		next  models.AppointmentStatus
		valid bool
	}{
		{"scheduled to confirmed", nil, models.AppointmentStatusConfirmed, true},
		{"scheduled to cancelled", nil, models.AppointmentStatusCancelled, true},
		{"scheduled to no show", nil, models.AppointmentStatusNoShow, true},
		{"scheduled to completed", nil, models.AppointmentStatusCompleted, false},
		{"scheduled to scheduled", nil, models.AppointmentStatusScheduled, false},
		{"confirmed to completed", []models.AppointmentStatus{models.AppointmentStatusConfirmed}, models.AppointmentStatusCompleted, true},
		{"confirmed to confirmed", []models.AppointmentStatus{models.AppointmentStatusConfirmed}, models.AppointmentStatusConfirmed, false},
		{"confirmed to scheduled", []models.AppointmentStatus{models.AppointmentStatusConfirmed}, models.AppointmentStatusScheduled, false},
		{"completed to cancelled", []models.AppointmentStatus{models.AppointmentStatusConfirmed, models.AppointmentStatusCompleted}, models.AppointmentStatusCancelled, false},
		{"cancelled to scheduled", []models.AppointmentStatus{models.AppointmentStatusCancelled}, models.AppointmentStatusScheduled, false},
		{"no show to confirmed", []models.AppointmentStatus{models.AppointmentStatusNoShow}, models.AppointmentStatusConfirmed, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newBookingFixture()
			ctx := context.Background()

			appointment, err := f.usecase.Create(ctx, staffActor, bookingRequest(5, "10:00"))
			require.NoError(t, err)
			for _, step := range tt.path {
				_, err := f.usecase.UpdateStatus(ctx, adminActor, appointment.ID, step)
				require.NoError(t, err)
			}

			updated, err := f.usecase.UpdateStatus(ctx, adminActor, appointment.ID, tt.next)
			if tt.valid {
				require.NoError(t, err)
				assert.Equal(t, tt.next, updated.Status)
				return
			}
			require.Error(t, err)
			assert.Equal(t, constvars.StatusBadRequest, exceptions.StatusCode(err))
		})
	}
}

func TestAppointmentUsecase_UpdateStatus_UnknownStatus(t *testing.T) {
	f := newBookingFixture()

	_, err := f.usecase.UpdateStatus(context.Background(), adminActor, 1, models.AppointmentStatus("Lost"))
	assert.Equal(t, constvars.StatusBadRequest, exceptions.StatusCode(err))
}

func TestAppointmentUsecase_UpdateStatus_NotFound(t *testing.T) {
	f := newBookingFixture()

	_, err := f.usecase.Cancel(context.Background(), adminActor, 404)
	assert.Equal(t, constvars.StatusNotFound, exceptions.StatusCode(err))
}

func TestAppointmentUsecase_Update_RescheduleChecksConflictExcludingSelf(t *testing.T) {
	f := newBookingFixture()
	ctx := context.Background()

	first, err := f.usecase.Create(ctx, staffActor, bookingRequest(5, "10:00"))
	require.NoError(t, err)
	_, err = f.usecase.Create(ctx, staffActor, bookingRequest(6, "11:00"))
	require.NoError(t, err)

	sameTime := "10:00:00"
	notes := "bring reports"
	updated, err := f.usecase.Update(ctx, staffActor, first.ID, &requests.UpdateAppointment{AppointmentTime: &sameTime, Notes: &notes})
	require.NoError(t, err)
	assert.Equal(t, "bring reports", updated.Notes)

	taken := "11:00"
	_, err = f.usecase.Update(ctx, staffActor, first.ID, &requests.UpdateAppointment{AppointmentTime: &taken})
	assert.Equal(t, constvars.StatusConflict, exceptions.StatusCode(err))
	assert.Equal(t, constvars.ErrClientSlotAlreadyBooked, exceptions.ClientMessage(err))

	free := "12:00"
	updated, err = f.usecase.Update(ctx, staffActor, first.ID, &requests.UpdateAppointment{AppointmentTime: &free})
	require.NoError(t, err)
	assert.Equal(t, "12:00:00", updated.AppointmentTime)
}

func TestAppointmentUsecase_Update_TerminalRejected(t *testing.T) {
	f := newBookingFixture()
	ctx := context.Background()

	appointment, err := f.usecase.Create(ctx, staffActor, bookingRequest(5, "10:00"))
	require.NoError(t, err)
	_, err = f.usecase.Cancel(ctx, patientActor, appointment.ID)
	require.NoError(t, err)

	later := "15:00"
	_, err = f.usecase.Update(ctx, staffActor, appointment.ID, &requests.UpdateAppointment{AppointmentTime: &later})
	assert.Equal(t, constvars.StatusBadRequest, exceptions.StatusCode(err))
}

func TestAppointmentUsecase_Update_StatusGoesThroughStateMachine(t *testing.T) {
	f := newBookingFixture()
	ctx := context.Background()

	appointment, err := f.usecase.Create(ctx, staffActor, bookingRequest(5, "10:00"))
	require.NoError(t, err)

	completed := string(models.AppointmentStatusCompleted)
	_, err = f.usecase.Update(ctx, staffActor, appointment.ID, &requests.UpdateAppointment{Status: &completed})
	assert.Equal(t, constvars.StatusBadRequest, exceptions.StatusCode(err))

	confirmed := string(models.AppointmentStatusConfirmed)
	updated, err := f.usecase.Update(ctx, staffActor, appointment.ID, &requests.UpdateAppointment{Status: &confirmed})
	require.NoError(t, err)
	assert.Equal(t, models.AppointmentStatusConfirmed, updated.Status)
}

func TestAppointmentUsecase_Update_OtherPatientForbidden(t *testing.T) {
	f := newBookingFixture()
	ctx := context.Background()

	appointment, err := f.usecase.Create(ctx, staffActor, bookingRequest(6, "10:00"))
	require.NoError(t, err)

	notes := "x"
	_, err = f.usecase.Update(ctx, patientActor, appointment.ID, &requests.UpdateAppointment{Notes: &notes})
	assert.Equal(t, constvars.StatusForbidden, exceptions.StatusCode(err))
}

func TestAppointmentUsecase_FindAll_OwnershipIsolation(t *testing.T) {
	f := newBookingFixture()
	ctx := context.Background()

	for i, patientID := range []int64{5, 6, 5, 6} {
		request := bookingRequest(patientID, time.Date(2025, 11, 20, 9+i, 0, 0, 0, time.UTC).Format(constvars.TimeLayoutMinutes))
		_, err := f.usecase.Create(ctx, staffActor, request)
		require.NoError(t, err)
	}
	request := bookingRequest(6, "16:00")
	request.DoctorID = 2
	_, err := f.usecase.Create(ctx, staffActor, request)
	require.NoError(t, err)

	rows, total, err := f.usecase.FindAll(ctx, patientActor, models.AppointmentFilter{PatientID: 6})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	for _, row := range rows {
		assert.Equal(t, patientActor.RefID, row.PatientID)
	}

	rows, _, err = f.usecase.FindAll(ctx, doctorActor, models.AppointmentFilter{})
	require.NoError(t, err)
	assert.Len(t, rows, 4)
	for _, row := range rows {
		assert.Equal(t, doctorActor.RefID, row.DoctorID)
	}

	_, total, err = f.usecase.FindAll(ctx, staffActor, models.AppointmentFilter{})
	require.NoError(t, err)
	assert.Equal(t, 5, total)
}

func TestAppointmentUsecase_FindByDoctor(t *testing.T) {
	f := newBookingFixture()
	ctx := context.Background()

	_, err := f.usecase.Create(ctx, staffActor, bookingRequest(5, "10:00"))
	require.NoError(t, err)

	rows, total, err := f.usecase.FindByDoctor(ctx, doctorActor, 1, models.AppointmentFilter{})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Len(t, rows, 1)

	_, _, err = f.usecase.FindByDoctor(ctx, doctorActor, 2, models.AppointmentFilter{})
	assert.Equal(t, constvars.StatusForbidden, exceptions.StatusCode(err))

	_, _, err = f.usecase.FindByDoctor(ctx, staffActor, 99, models.AppointmentFilter{})
	assert.Equal(t, constvars.StatusNotFound, exceptions.StatusCode(err))
}

func TestAppointmentUsecase_FindByID_Ownership(t *testing.T) {
	f := newBookingFixture()
	ctx := context.Background()

	other, err := f.usecase.Create(ctx, staffActor, bookingRequest(6, "10:00"))
	require.NoError(t, err)

	_, err = f.usecase.FindByID(ctx, patientActor, other.ID)
	assert.Equal(t, constvars.StatusForbidden, exceptions.StatusCode(err))

	found, err := f.usecase.FindByID(ctx, doctorActor, other.ID)
	require.NoError(t, err)
	assert.Equal(t, other.ID, found.ID)
}

func TestAppointmentUsecase_MarkNoShows(t *testing.T) {
	f := newBookingFixture()
	ctx := context.Background()

	past, err := f.usecase.Create(ctx, staffActor, bookingRequest(5, "08:00"))
	require.NoError(t, err)
	future, err := f.usecase.Create(ctx, staffActor, bookingRequest(6, "18:00"))
	require.NoError(t, err)

	count, err := f.usecase.MarkNoShows(ctx, time.Date(2025, 11, 20, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	reloaded, _ := f.repo.FindByID(ctx, past.ID)
	assert.Equal(t, models.AppointmentStatusNoShow, reloaded.Status)
	reloaded, _ = f.repo.FindByID(ctx, future.ID)
	assert.Equal(t, models.AppointmentStatusScheduled, reloaded.Status)
}
