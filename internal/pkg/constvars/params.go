package constvars

const (
	URLParamPatientID      = "patient_id"
	URLParamDoctorID       = "doctor_id"
	URLParamStaffID        = "staff_id"
	URLParamAppointmentID  = "appointment_id"
	URLParamRecordID       = "record_id"
	URLParamPrescriptionID = "prescription_id"
	URLParamBillingID      = "billing_id"
	URLParamSpecialization = "specialization_id"
	URLParamDepartmentID   = "department_id"
	URLParamClinicID       = "clinic_id"
)

const (
	URLQueryParamPage      = "page"
	URLQueryParamPageSize  = "page_size"
	URLQueryParamSearch    = "search"
	URLQueryParamStatus    = "status"
	URLQueryParamDate      = "date"
	URLQueryParamDoctorID  = "doctor_id"
	URLQueryParamPatientID = "patient_id"
	URLQueryParamDays      = "days"
	URLQueryParamLimit     = "limit"
)

const (
	MultipartFormFileKey = "file"
)
