package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "HSP_SVC_"
)

const (
	AppPaginationUrlFormat = "%s?page=%d&page_size=%d"
	DefaultPage            = 1
	DefaultPageSize        = 10
	MaxPageSize            = 100
)

const (
	PatientNumberPrefix = "PAT"
	InvoiceNumberPrefix = "INV"

	// attempts before a generated unique number collision is surfaced to the caller
	GeneratedNumberMaxAttempts = 5
)

const (
	DashboardRevenueDefaultDays   = 30
	DashboardRevenueMaxDays       = 365
	DashboardRecentPatientsLimit  = 5
	DashboardDoctorPerformanceTop = 10
	DashboardListMaxLimit         = 50
)

const (
	DateLayout        = "2006-01-02"
	TimeLayoutMinutes = "15:04"
	TimeLayoutSeconds = "15:04:05"
	DateTimeLayout    = "2006-01-02 15:04:05"
)

const (
	RedisKeySpecializationList = "hospital:specializations:list"
	RedisKeyDepartmentList     = "hospital:departments:list"
	RedisKeyClinicList         = "hospital:clinics:list"
	RedisKeyDashboardStats     = "hospital:dashboard:stats"
	RedisKeySessionPrefix      = "hospital:session:"
	RedisKeyNoShowWorkerLeader = "hospital:noshow:leader"
)

const (
	EventAppointmentBooked        = "appointment.booked"
	EventAppointmentStatusChanged = "appointment.status_changed"
	EventBillingCreated           = "billing.created"
	EventPaymentRecorded          = "payment.recorded"
)

const (
	StorageMedicalRecordAttachmentPrefix = "medical-records/%d/"
	MB                                   = 1 << 20
)

const (
	ConstraintActiveSlotIndex  = "appointments_active_slot_uidx"
	ConstraintPatientNumberKey = "patients_patient_number_key"
	ConstraintInvoiceNumberKey = "billings_invoice_number_key"
	ConstraintUserEmailKey     = "users_email_key"
)
