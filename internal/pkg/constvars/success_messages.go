package constvars

const (
	// Auth
	RegisterSuccessMessage       = "registration successful"
	LoginSuccessMessage          = "login successful"
	LogoutSuccessMessage         = "logout successful"
	GetProfileSuccessMessage     = "get profile successfully"
	UpdatePasswordSuccessMessage = "password updated successfully"
	CreateUserSuccessMessage     = "user created successfully"

	// Patients
	GetPatientsSuccessMessage   = "get patients successfully"
	GetPatientSuccessMessage    = "get patient successfully"
	CreatePatientSuccessMessage = "patient created successfully"
	UpdatePatientSuccessMessage = "patient updated successfully"
	DeletePatientSuccessMessage = "patient deleted successfully"

	// Doctors
	GetDoctorsSuccessMessage   = "get doctors successfully"
	GetDoctorSuccessMessage    = "get doctor successfully"
	CreateDoctorSuccessMessage = "doctor created successfully"
	UpdateDoctorSuccessMessage = "doctor updated successfully"
	DeleteDoctorSuccessMessage = "doctor deleted successfully"

	// Staff
	GetStaffListSuccessMessage = "get staff successfully"
	GetStaffSuccessMessage     = "get staff member successfully"
	CreateStaffSuccessMessage  = "staff member created successfully"
	UpdateStaffSuccessMessage  = "staff member updated successfully"
	DeleteStaffSuccessMessage  = "staff member deleted successfully"

	// Lookups
	GetSpecializationsSuccessMessage   = "get specializations successfully"
	GetSpecializationSuccessMessage    = "get specialization successfully"
	CreateSpecializationSuccessMessage = "specialization created successfully"
	UpdateSpecializationSuccessMessage = "specialization updated successfully"
	DeleteSpecializationSuccessMessage = "specialization deleted successfully"
	GetDepartmentsSuccessMessage       = "get departments successfully"
	GetDepartmentSuccessMessage        = "get department successfully"
	CreateDepartmentSuccessMessage     = "department created successfully"
	UpdateDepartmentSuccessMessage     = "department updated successfully"
	DeleteDepartmentSuccessMessage     = "department deleted successfully"
	GetClinicsSuccessMessage           = "get clinics successfully"
	GetClinicSuccessMessage            = "get clinic successfully"
	CreateClinicSuccessMessage         = "clinic created successfully"
	UpdateClinicSuccessMessage         = "clinic updated successfully"
	DeleteClinicSuccessMessage         = "clinic deleted successfully"

	// Appointments
	GetAppointmentsSuccessMessage         = "get appointments successfully"
	GetAppointmentSuccessMessage          = "get appointment successfully"
	CreateAppointmentSuccessMessage       = "appointment created successfully"
	UpdateAppointmentSuccessMessage       = "appointment updated successfully"
	UpdateAppointmentStatusSuccessMessage = "appointment status updated successfully"
	CancelAppointmentSuccessMessage       = "appointment cancelled successfully"

	// Medical records
	GetMedicalRecordsSuccessMessage   = "get medical records successfully"
	GetMedicalRecordSuccessMessage    = "get medical record successfully"
	CreateMedicalRecordSuccessMessage = "medical record created successfully"
	UpdateMedicalRecordSuccessMessage = "medical record updated successfully"
	DeleteMedicalRecordSuccessMessage = "medical record deleted successfully"
	UploadAttachmentSuccessMessage    = "attachment uploaded successfully"
	GetAttachmentsSuccessMessage      = "get attachments successfully"

	// Prescriptions
	GetPrescriptionsSuccessMessage   = "get prescriptions successfully"
	GetPrescriptionSuccessMessage    = "get prescription successfully"
	CreatePrescriptionSuccessMessage = "prescription created successfully"
	UpdatePrescriptionSuccessMessage = "prescription updated successfully"
	DeletePrescriptionSuccessMessage = "prescription deleted successfully"

	// Billing
	GetBillingsSuccessMessage   = "get bills successfully"
	GetBillingSuccessMessage    = "get bill successfully"
	CreateBillingSuccessMessage = "bill created successfully"
	UpdateBillingSuccessMessage = "bill updated successfully"
	CancelBillingSuccessMessage = "bill cancelled successfully"
	RecordPaymentSuccessMessage = "payment recorded successfully"
	GetPaymentsSuccessMessage   = "get payments successfully"

	// Dashboard
	GetDashboardStatsSuccessMessage    = "get dashboard statistics successfully"
	GetTodayAppointmentsSuccessMessage = "get today's appointments successfully"
	GetRecentPatientsSuccessMessage    = "get recent patients successfully"
	GetRevenueSuccessMessage           = "get revenue statistics successfully"
	GetDoctorPerformanceSuccessMessage = "get doctor performance successfully"
)
