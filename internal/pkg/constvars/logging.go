package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingQueryParamsKey    = "query_params"
	LoggingOperationKey      = "operation"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingStatusCodeKey     = "status_code"
	LoggingActorRoleKey      = "actor_role"
	LoggingCountKey          = "count"
	LoggingAttemptKey        = "attempt"
	LoggingRedisKey          = "redis_key"
	LoggingEventKey          = "event"
	LoggingObjectKey         = "object_key"
	LoggingBucketKey         = "bucket"
	LoggingCronSpecKey       = "cron_spec"
	LoggingCutoffKey         = "cutoff"
	LoggingUserIDKey         = "user_id"
	LoggingEmailKey          = "email"
	LoggingPatientIDKey      = "patient_id"
	LoggingPatientNumberKey  = "patient_number"
	LoggingDoctorIDKey       = "doctor_id"
	LoggingStaffIDKey        = "staff_id"
	LoggingAppointmentIDKey  = "appointment_id"
	LoggingAppointmentSlot   = "appointment_slot"
	LoggingStatusKey         = "status"
	LoggingNextStatusKey     = "next_status"
	LoggingBillingIDKey      = "billing_id"
	LoggingInvoiceNumberKey  = "invoice_number"
	LoggingNetAmountKey      = "net_amount"
	LoggingTotalPaidKey      = "total_paid"
	LoggingPaymentIDKey      = "payment_id"
	LoggingRecordIDKey       = "medical_record_id"
	LoggingPrescriptionIDKey = "prescription_id"
	LoggingLookupIDKey       = "lookup_id"

	LoggingLockValueKey         = "lock_value"
	LoggingLockStoredValueKey   = "lock_stored_value"
	LoggingLockExpectedValueKey = "lock_expected_value"
	LoggingLockExpirationKey    = "lock_expiration"
)
