package models

import "time"

type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "Scheduled"
	AppointmentStatusConfirmed AppointmentStatus = "Confirmed"
	AppointmentStatusCompleted AppointmentStatus = "Completed"
	AppointmentStatusCancelled AppointmentStatus = "Cancelled"
	AppointmentStatusNoShow    AppointmentStatus = "No Show"
)

var appointmentTransitions = map[AppointmentStatus][]AppointmentStatus{
	AppointmentStatusScheduled: {AppointmentStatusConfirmed, AppointmentStatusCancelled, AppointmentStatusNoShow},
	AppointmentStatusConfirmed: {AppointmentStatusCompleted, AppointmentStatusCancelled, AppointmentStatusNoShow},
}

func (s AppointmentStatus) IsValid() bool {
	switch s {
	case AppointmentStatusScheduled, AppointmentStatusConfirmed, AppointmentStatusCompleted,
		AppointmentStatusCancelled, AppointmentStatusNoShow:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is possible from s.
func (s AppointmentStatus) IsTerminal() bool {
	return s == AppointmentStatusCompleted || s == AppointmentStatusCancelled || s == AppointmentStatusNoShow
}

// HoldsSlot reports whether an appointment in status s occupies its doctor's slot.
func (s AppointmentStatus) HoldsSlot() bool {
	return s != AppointmentStatusCancelled && s != AppointmentStatusNoShow
}

// CanTransitionTo is false for s == next.
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	for _, allowed := range appointmentTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type Appointment struct {
	ID              int64             `json:"id"`
	PatientID       int64             `json:"patient_id"`
	PatientName     string            `json:"patient_name,omitempty"`
	DoctorID        int64             `json:"doctor_id"`
	DoctorName      string            `json:"doctor_name,omitempty"`
	ClinicID        *int64            `json:"clinic_id"`
	AppointmentDate time.Time         `json:"appointment_date"`
	AppointmentTime string            `json:"appointment_time"`
	Status          AppointmentStatus `json:"status"`
	Reason          string            `json:"reason"`
	Notes           string            `json:"notes"`
	TimeModel
}

func (a Appointment) Owner() Owner {
	return Owner{PatientID: a.PatientID, DoctorID: a.DoctorID}
}

// Slot is the (doctor, date, time) triple guarded against double booking.
type Slot struct {
	DoctorID int64
	Date     string
	Time     string
}

type AppointmentFilter struct {
	Status    AppointmentStatus
	Date      string
	DoctorID  int64
	PatientID int64
	Pagination
}
