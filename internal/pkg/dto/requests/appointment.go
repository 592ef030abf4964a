package requests

type CreateAppointment struct {
	PatientID       int64  `json:"patient_id" validate:"omitempty,gt=0"`
	DoctorID        int64  `json:"doctor_id" validate:"required,gt=0"`
	ClinicID        *int64 `json:"clinic_id" validate:"omitempty,gt=0"`
	AppointmentDate string `json:"appointment_date" validate:"required,booking_date"`
	AppointmentTime string `json:"appointment_time" validate:"required,booking_time"`
	Reason          string `json:"reason"`
	Notes           string `json:"notes"`
}

type UpdateAppointment struct {
	DoctorID        *int64  `json:"doctor_id" validate:"omitempty,gt=0"`
	ClinicID        *int64  `json:"clinic_id" validate:"omitempty,gt=0"`
	AppointmentDate *string `json:"appointment_date" validate:"omitempty,booking_date"`
	AppointmentTime *string `json:"appointment_time" validate:"omitempty,booking_time"`
	Status          *string `json:"status" validate:"omitempty,oneof=Scheduled Confirmed Completed Cancelled 'No Show'"`
	Reason          *string `json:"reason"`
	Notes           *string `json:"notes"`
}

type UpdateAppointmentStatus struct {
	Status string `json:"status" validate:"required,oneof=Scheduled Confirmed Completed Cancelled 'No Show'"`
}

type AppointmentFilter struct {
	Status    string `validate:"omitempty,oneof=Scheduled Confirmed Completed Cancelled 'No Show'"`
	Date      string `validate:"omitempty,booking_date"`
	DoctorID  int64
	PatientID int64
	Pagination
}
