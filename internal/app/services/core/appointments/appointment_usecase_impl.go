package appointments

import (
	"context"
	"hospital-service/internal/app/contracts"
	"hospital-service/internal/app/models"
	"hospital-service/internal/app/services/shared/access"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/exceptions"
	"hospital-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

type appointmentUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
	DoctorRepository      contracts.DoctorRepository
	PatientRepository     contracts.PatientRepository
	EventPublisher        contracts.EventPublisher
	Log                   *zap.Logger
}

type statusChangedEvent struct {
	AppointmentID int64                    `json:"appointment_id"`
	PatientID     int64                    `json:"patient_id"`
	DoctorID      int64                    `json:"doctor_id"`
	From          models.AppointmentStatus `json:"from"`
	To            models.AppointmentStatus `json:"to"`
}

func NewAppointmentUsecase(
	appointmentRepository contracts.AppointmentRepository,
	doctorRepository contracts.DoctorRepository,
	patientRepository contracts.PatientRepository,
	eventPublisher contracts.EventPublisher,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	return &appointmentUsecase{
		AppointmentRepository: appointmentRepository,
		DoctorRepository:      doctorRepository,
		PatientRepository:     patientRepository,
		EventPublisher:        eventPublisher,
		Log:                   logger,
	}
}

func (uc *appointmentUsecase) Create(ctx context.Context, actor models.ActorContext, request *requests.CreateAppointment) (*models.Appointment, error) {
	patientID := request.PatientID
	if actor.IsPatient() {
		patientID = actor.RefID
	}
	if patientID == 0 {
		return nil, exceptions.ErrInvalidInput(nil, "patient_id is required")
	}

	appointmentDate, err := utils.ParseDate(request.AppointmentDate)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}
	appointmentTime, err := utils.NormalizeTime(request.AppointmentTime)
	if err != nil {
		return nil, exceptions.ErrCannotParseTime(err)
	}

	owner := models.Owner{PatientID: patientID, DoctorID: request.DoctorID}
	if err := access.Authorize(actor, access.ResourceAppointment, owner, access.ActionWrite); err != nil {
		return nil, err
	}

	if err := uc.ensureDoctorExists(ctx, request.DoctorID); err != nil {
		return nil, err
	}
	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrNotFound(nil, string(access.ResourcePatient), patientID)
	}

	slot := models.Slot{
		DoctorID: request.DoctorID,
		Date:     appointmentDate.Format(constvars.DateLayout),
		Time:     appointmentTime,
	}
	if err := uc.ensureSlotFree(ctx, slot, 0); err != nil {
		return nil, err
	}

	created, err := uc.AppointmentRepository.Create(ctx, &models.Appointment{
		PatientID:       patientID,
		DoctorID:        request.DoctorID,
		ClinicID:        request.ClinicID,
		AppointmentDate: appointmentDate,
		AppointmentTime: appointmentTime,
		Status:          models.AppointmentStatusScheduled,
		Reason:          request.Reason,
		Notes:           request.Notes,
	})
	if err != nil {
		return nil, mapSlotConflict(err, slot)
	}

	utils.LogBusinessEvent(uc.Log, "appointment_booked", utils.GetRequestID(ctx),
		zap.Int64(constvars.LoggingAppointmentIDKey, created.ID),
		zap.Any(constvars.LoggingAppointmentSlot, slot),
		zap.String(constvars.LoggingActorRoleKey, actor.Role),
	)
	uc.publish(ctx, constvars.EventAppointmentBooked, created)
	return created, nil
}

func (uc *appointmentUsecase) FindByID(ctx context.Context, actor models.ActorContext, appointmentID int64) (*models.Appointment, error) {
	appointment, err := uc.findAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	if err := access.Authorize(actor, access.ResourceAppointment, appointment.Owner(), access.ActionRead); err != nil {
		return nil, err
	}
	return appointment, nil
}

func (uc *appointmentUsecase) FindAll(ctx context.Context, actor models.ActorContext, filter models.AppointmentFilter) ([]models.Appointment, int, error) {
	filter = scopeFilter(actor, filter)

	owner := models.Owner{PatientID: filter.PatientID, DoctorID: filter.DoctorID}
	if err := access.Authorize(actor, access.ResourceAppointment, owner, access.ActionRead); err != nil {
		return nil, 0, err
	}
	return uc.AppointmentRepository.FindAll(ctx, filter)
}

func (uc *appointmentUsecase) FindByDoctor(ctx context.Context, actor models.ActorContext, doctorID int64, filter models.AppointmentFilter) ([]models.Appointment, int, error) {
	if err := uc.ensureDoctorExists(ctx, doctorID); err != nil {
		return nil, 0, err
	}

	filter.DoctorID = doctorID
	if actor.IsPatient() {
		filter.PatientID = actor.RefID
	}

	owner := models.Owner{PatientID: filter.PatientID, DoctorID: doctorID}
	if err := access.Authorize(actor, access.ResourceAppointment, owner, access.ActionRead); err != nil {
		return nil, 0, err
	}
	return uc.AppointmentRepository.FindAll(ctx, filter)
}

func (uc *appointmentUsecase) Update(ctx context.Context, actor models.ActorContext, appointmentID int64, request *requests.UpdateAppointment) (*models.Appointment, error) {
	appointment, err := uc.findAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	if err := access.Authorize(actor, access.ResourceAppointment, appointment.Owner(), access.ActionWrite); err != nil {
		return nil, err
	}
	if appointment.Status.IsTerminal() {
		return nil, exceptions.ErrAppointmentFinalized(nil, string(appointment.Status))
	}

	previousStatus := appointment.Status
	slotChanged := false

	if request.DoctorID != nil && *request.DoctorID != appointment.DoctorID {
		if err := access.Authorize(actor, access.ResourceAppointment, models.Owner{PatientID: appointment.PatientID, DoctorID: *request.DoctorID}, access.ActionWrite); err != nil {
			return nil, err
		}
		if err := uc.ensureDoctorExists(ctx, *request.DoctorID); err != nil {
			return nil, err
		}
		appointment.DoctorID = *request.DoctorID
		slotChanged = true
	}
	if request.AppointmentDate != nil {
		appointmentDate, err := utils.ParseDate(*request.AppointmentDate)
		if err != nil {
			return nil, exceptions.ErrCannotParseDate(err)
		}
		if !appointmentDate.Equal(appointment.AppointmentDate) {
			appointment.AppointmentDate = appointmentDate
			slotChanged = true
		}
	}
	if request.AppointmentTime != nil {
		appointmentTime, err := utils.NormalizeTime(*request.AppointmentTime)
		if err != nil {
			return nil, exceptions.ErrCannotParseTime(err)
		}
		if appointmentTime != appointment.AppointmentTime {
			appointment.AppointmentTime = appointmentTime
			slotChanged = true
		}
	}
	if request.ClinicID != nil {
		appointment.ClinicID = request.ClinicID
	}
	if request.Reason != nil {
		appointment.Reason = *request.Reason
	}
	if request.Notes != nil {
		appointment.Notes = *request.Notes
	}
	if request.Status != nil {
		next := models.AppointmentStatus(*request.Status)
		// repeating the current status inside a patch is a no-op
		if next != appointment.Status {
			if !appointment.Status.CanTransitionTo(next) {
				return nil, exceptions.ErrInvalidStatusTransition(nil, string(appointment.Status), string(next))
			}
			appointment.Status = next
		}
	}

	slot := models.Slot{
		DoctorID: appointment.DoctorID,
		Date:     appointment.AppointmentDate.Format(constvars.DateLayout),
		Time:     appointment.AppointmentTime,
	}
	if slotChanged && appointment.Status.HoldsSlot() {
		if err := uc.ensureSlotFree(ctx, slot, appointment.ID); err != nil {
			return nil, err
		}
	}

	updated, err := uc.AppointmentRepository.Update(ctx, appointment)
	if err != nil {
		return nil, mapSlotConflict(err, slot)
	}
	if updated == nil {
		return nil, exceptions.ErrNotFound(nil, string(access.ResourceAppointment), appointmentID)
	}

	utils.LogBusinessEvent(uc.Log, "appointment_updated", utils.GetRequestID(ctx),
		zap.Int64(constvars.LoggingAppointmentIDKey, updated.ID),
		zap.Bool("rescheduled", slotChanged),
		zap.String(constvars.LoggingActorRoleKey, actor.Role),
	)
	if updated.Status != previousStatus {
		uc.publishStatusChange(ctx, updated, previousStatus)
	}
	return updated, nil
}

func (uc *appointmentUsecase) UpdateStatus(ctx context.Context, actor models.ActorContext, appointmentID int64, status models.AppointmentStatus) (*models.Appointment, error) {
	if !status.IsValid() {
		return nil, exceptions.ErrInvalidInput(nil, "status "+constvars.CustomValidationErrorMessages["appointment_status"])
	}

	appointment, err := uc.findAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	if err := access.Authorize(actor, access.ResourceAppointment, appointment.Owner(), access.ActionWrite); err != nil {
		return nil, err
	}
	if !appointment.Status.CanTransitionTo(status) {
		return nil, exceptions.ErrInvalidStatusTransition(nil, string(appointment.Status), string(status))
	}

	updated, err := uc.AppointmentRepository.UpdateStatus(ctx, appointmentID, status)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, exceptions.ErrNotFound(nil, string(access.ResourceAppointment), appointmentID)
	}

	utils.LogBusinessEvent(uc.Log, "appointment_status_changed", utils.GetRequestID(ctx),
		zap.Int64(constvars.LoggingAppointmentIDKey, appointmentID),
		zap.String(constvars.LoggingStatusKey, string(appointment.Status)),
		zap.String(constvars.LoggingNextStatusKey, string(status)),
		zap.String(constvars.LoggingActorRoleKey, actor.Role),
	)
	uc.publishStatusChange(ctx, updated, appointment.Status)
	return updated, nil
}

func (uc *appointmentUsecase) Cancel(ctx context.Context, actor models.ActorContext, appointmentID int64) (*models.Appointment, error) {
	return uc.UpdateStatus(ctx, actor, appointmentID, models.AppointmentStatusCancelled)
}

func (uc *appointmentUsecase) MarkNoShows(ctx context.Context, cutoff time.Time) (int, error) {
	marked, err := uc.AppointmentRepository.MarkNoShowBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	for i := range marked {
		uc.publish(ctx, constvars.EventAppointmentStatusChanged, statusChangedEvent{
			AppointmentID: marked[i].ID,
			PatientID:     marked[i].PatientID,
			DoctorID:      marked[i].DoctorID,
			To:            models.AppointmentStatusNoShow,
		})
	}

	utils.LogBusinessEvent(uc.Log, "appointments_marked_no_show", utils.GetRequestID(ctx),
		zap.Time(constvars.LoggingCutoffKey, cutoff),
		zap.Int(constvars.LoggingCountKey, len(marked)),
	)
	return len(marked), nil
}

func (uc *appointmentUsecase) findAppointment(ctx context.Context, appointmentID int64) (*models.Appointment, error) {
	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrNotFound(nil, string(access.ResourceAppointment), appointmentID)
	}
	return appointment, nil
}

func (uc *appointmentUsecase) ensureDoctorExists(ctx context.Context, doctorID int64) error {
	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return err
	}
	if doctor == nil {
		return exceptions.ErrNotFound(nil, string(access.ResourceDoctor), doctorID)
	}
	return nil
}

func (uc *appointmentUsecase) ensureSlotFree(ctx context.Context, slot models.Slot, excludeID int64) error {
	count, err := uc.AppointmentRepository.CountActiveSlot(ctx, slot, excludeID)
	if err != nil {
		return err
	}
	if count > 0 {
		uc.Log.Info("appointmentUsecase slot already held",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Any(constvars.LoggingAppointmentSlot, slot),
		)
		return exceptions.ErrSlotAlreadyBooked(nil, slot.DoctorID, slot.Date, slot.Time)
	}
	return nil
}

func (uc *appointmentUsecase) publishStatusChange(ctx context.Context, appointment *models.Appointment, from models.AppointmentStatus) {
	uc.publish(ctx, constvars.EventAppointmentStatusChanged, statusChangedEvent{
		AppointmentID: appointment.ID,
		PatientID:     appointment.PatientID,
		DoctorID:      appointment.DoctorID,
		From:          from,
		To:            appointment.Status,
	})
}

func (uc *appointmentUsecase) publish(ctx context.Context, routingKey string, payload interface{}) {
	if err := uc.EventPublisher.Publish(ctx, routingKey, payload); err != nil {
		uc.Log.Warn("appointmentUsecase event not published",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingEventKey, routingKey),
			zap.Error(err),
		)
	}
}

// mapSlotConflict turns a unique violation on the active slot index, raised when a concurrent
// booking slipped past the pre-check, into the same conflict the pre-check reports.
func mapSlotConflict(err error, slot models.Slot) error {
	if constraint, ok := utils.UniqueViolation(err); ok && constraint == constvars.ConstraintActiveSlotIndex {
		return exceptions.ErrSlotAlreadyBooked(nil, slot.DoctorID, slot.Date, slot.Time)
	}
	return err
}

func scopeFilter(actor models.ActorContext, filter models.AppointmentFilter) models.AppointmentFilter {
	switch {
	case actor.IsPatient():
		filter.PatientID = actor.RefID
	case actor.IsDoctor():
		filter.DoctorID = actor.RefID
	}
	return filter
}
