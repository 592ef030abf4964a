package contracts

import (
	"context"
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/dto/requests"
	"time"
)

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error)
	FindByID(ctx context.Context, appointmentID int64) (*models.Appointment, error)
	FindAll(ctx context.Context, filter models.AppointmentFilter) ([]models.Appointment, int, error)
	// FindActiveByDate lists appointments on date that still hold their slot. Zero ids do not filter.
	FindActiveByDate(ctx context.Context, date string, doctorID, patientID int64) ([]models.Appointment, error)
	Update(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error)
	UpdateStatus(ctx context.Context, appointmentID int64, status models.AppointmentStatus) (*models.Appointment, error)
	// CountActiveSlot counts slot holders for the triple, ignoring excludeID when it is non zero.
	CountActiveSlot(ctx context.Context, slot models.Slot, excludeID int64) (int, error)
	// MarkNoShowBefore moves Scheduled and Confirmed appointments starting before cutoff to No Show.
	MarkNoShowBefore(ctx context.Context, cutoff time.Time) ([]models.Appointment, error)
}

type AppointmentUsecase interface {
	Create(ctx context.Context, actor models.ActorContext, request *requests.CreateAppointment) (*models.Appointment, error)
	FindByID(ctx context.Context, actor models.ActorContext, appointmentID int64) (*models.Appointment, error)
	FindAll(ctx context.Context, actor models.ActorContext, filter models.AppointmentFilter) ([]models.Appointment, int, error)
	FindByDoctor(ctx context.Context, actor models.ActorContext, doctorID int64, filter models.AppointmentFilter) ([]models.Appointment, int, error)
	Update(ctx context.Context, actor models.ActorContext, appointmentID int64, request *requests.UpdateAppointment) (*models.Appointment, error)
	UpdateStatus(ctx context.Context, actor models.ActorContext, appointmentID int64, status models.AppointmentStatus) (*models.Appointment, error)
	Cancel(ctx context.Context, actor models.ActorContext, appointmentID int64) (*models.Appointment, error)
	MarkNoShows(ctx context.Context, cutoff time.Time) (int, error)
}
