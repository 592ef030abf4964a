package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":     "is required",
	"email":        "must be a valid email",
	"alphanum":     "must contain only alphanumeric characters",
	"min":          "must be at least %s",
	"max":          "maximum at %s",
	"eqfield":      "must match %s",
	"password":     "must be at least 8 characters long, contain at least one special character, one uppercase letter and one digit",
	"numeric":      "must be a number",
	"len":          "must be %s characters long",
	"oneof":        "must be one of [%s]",
	"gt":           "must be greater than %s",
	"gte":          "must be greater than or equal to %s",
	"lt":           "must be less than %s",
	"lte":          "must be less than or equal to %s",
	"url":          "must be a valid URL",
	"dive":         "contains an invalid item",
	"excludes":     "must not contain %s",
	"required_if":  "is required when %s is %s",
	"booking_date": "must be a valid date in YYYY-MM-DD format",
	"booking_time": "must be a valid time in HH:MM or HH:MM:SS format",
	"phone":        "must be a valid phone number",
	"blood_group":  "must be one of [A+ A- B+ B- AB+ AB- O+ O-]",
	"gender":       "must be one of [Male Female Other]",
	"role":         "must be one of [admin doctor staff patient]",

	"appointment_status": "must be one of [Scheduled Confirmed Completed Cancelled No Show]",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":         true,
	"max":         true,
	"len":         true,
	"eqfield":     true,
	"gt":          true,
	"gte":         true,
	"lt":          true,
	"lte":         true,
	"excludes":    true,
	"oneof":       true,
	"required_if": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientInvalidEmailOrPassword        = "invalid email or password"
	ErrClientAccountDeactivated            = "your account has been deactivated"
	ErrClientEmailAlreadyExists            = "email already used"
	ErrClientCurrentPasswordIncorrect      = "current password is incorrect"
	ErrClientResourceNotFound              = "%s not found"
	ErrClientSlotAlreadyBooked             = "This time slot is already booked"
	ErrClientInvalidStatusTransition       = "cannot change appointment status from %s to %s"
	ErrClientAppointmentFinalized          = "appointment is already %s and cannot be changed"
	ErrClientInvalidPaymentAmount          = "payment amount must be greater than zero"
	ErrClientBillingCancelled              = "bill is cancelled and cannot be changed"
	ErrClientBillingAlreadyPaid            = "bill is already paid and cannot be cancelled"
	ErrClientDuplicateData                 = "%s already exists"
	ErrClientReferencedDataNotFound        = "referenced %s does not exist"
	ErrClientDataStillReferenced           = "%s is still in use and cannot be deleted"
	ErrClientTooManyRequests               = "too many requests, please try again later"
	ErrClientFileTooLarge                  = "file exceeds the maximum upload size of %d MB"
)

// Error messages for developers
const (
	ErrDevInvalidInput             = "invalid input"
	ErrDevCannotParseJSON          = "cannot parse JSON into struct or other data types"
	ErrDevCannotParseTime          = "cannot parse time into the given format"
	ErrDevCannotMarshalJSON        = "cannot convert struct or other data types to JSON"
	ErrDevCannotParseMultipartForm = "cannot parse multipart form body"
	ErrDevCannotParseDate          = "cannot parse the requested date"
	ErrDevFailedToHashPassword     = "failed to hash password"
	ErrDevInvalidCredentials       = "invalid credentials"
	ErrDevAccountInactive          = "account is inactive"

	// Usecase messages
	ErrDevEmailAlreadyExists       = "email already exists"
	ErrDevUserNotExists            = "user not exists in our system"
	ErrDevResourceNotFound         = "%s with id %d not found"
	ErrDevSlotAlreadyBooked        = "doctor %d already has an active appointment at %s %s"
	ErrDevInvalidStatusTransition  = "transition %s -> %s is not allowed"
	ErrDevAppointmentFinalized     = "appointment in terminal status %s"
	ErrDevInvalidPaymentAmount     = "payment amount %s is not positive"
	ErrDevBillingCancelled         = "billing %d is cancelled"
	ErrDevBillingAlreadyPaid       = "billing %d is paid"
	ErrDevDuplicateData            = "unique constraint %s violated"
	ErrDevReferencedDataNotFound   = "foreign key constraint %s violated"
	ErrDevDataStillReferenced      = "delete blocked by foreign key constraint %s"
	ErrDevGeneratedNumberExhausted = "could not generate a unique %s after %d attempts"

	// Validation messages
	ErrDevValidationFailed           = "validation failed"
	ErrDevURLParamIDValidationFailed = "parameter %s validation failed"
	ErrDevQueryParamValidationFailed = "query parameter %s validation failed"

	// Authentication messages
	ErrDevAuthSigningMethod         = "unexpected signing method"
	ErrDevAuthTokenInvalidOrExpired = "invalid or expired token"
	ErrDevAuthTokenMissing          = "token missing"
	ErrDevAuthInvalidSession        = "invalid session"
	ErrDevAuthPermissionDenied      = "permission denied"
	ErrDevAuthGenerateToken         = "failed to generate token"
	ErrDevAuthRoleNotExists         = "role doesn't exist on the system"
	ErrDevAuthAccessPolicyDenied    = "role %s with ref %d cannot %s %s"

	// Database messages
	ErrDevDBFailedToInsertData = "failed to insert data into database"
	ErrDevDBFailedToUpdateData = "failed to update data into database"
	ErrDevDBFailedToFindData   = "failed when do find data on database"
	ErrDevDBFailedToDeleteData = "failed when do delete data on database"
	ErrDevDBFailedToScanData   = "failed when scanning rows from database"
	ErrDevDBFailedToBeginTx    = "failed to begin database transaction"
	ErrDevDBFailedToCommitTx   = "failed to commit database transaction"

	// Minio messages
	ErrDevMinioFailedToCreateObject          = "failed to create object into minio storage with bucket name '%s'"
	ErrDevMinioFailedToGetObjectPresignedURL = "failed to get object URL from minio storage with bucket name '%s'"
	ErrDevMinioFailedToListObjects           = "failed to list objects from minio storage with bucket name '%s'"

	// Redis messages
	ErrDevRedisSetData    = "failed to SET data into redis"
	ErrDevRedisGetData    = "failed to GET data from redis"
	ErrDevRedisDeleteData = "failed to DELETE data from redis"
	ErrDevRedisExpire     = "failed to EXPIRE data in redis"
	ErrDevRedisSetNX      = "failed to SETNX data into redis"
	ErrDevRedisUnlock     = "lock %s is not owned by this holder"

	// RabbitMQ messages
	ErrDevRabbitMQPublishMessage = "failed to publish message to exchange %s"

	// Server messages
	ErrDevServerProcess          = "server failed to process something related to machine system"
	ErrDevServerNotFound         = "resource not found"
	ErrDevServerMethodNotAllowed = "method not allowed"
	ErrDevServerDeadlineExceeded = "deadline exceeded"
	ErrDevRequestLimitExceeded   = "request limit exceeded"
	ErrDevFileTooLarge           = "uploaded file size %d exceeds limit %d"
)

const (
	ErrFileLocationUnknown = "file location unknown"
	ErrFunctionNameUnknown = "function name unknown"
)

const (
	ErrEnvParsing = "Error parsing %s: %v, will use default value"
)
