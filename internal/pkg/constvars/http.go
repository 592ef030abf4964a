package constvars

const (
	MIMEApplicationJSON = "application/json"
)

const (
	StatusOK      = 200
	StatusCreated = 201

	StatusBadRequest       = 400
	StatusUnauthorized     = 401
	StatusForbidden        = 403
	StatusNotFound         = 404
	StatusMethodNotAllowed = 405
	StatusConflict         = 409
	StatusTooManyRequests  = 429

	StatusInternalServerError = 500
	StatusServiceUnavailable  = 503
	StatusGatewayTimeout      = 504
)

const (
	HeaderAuthorization = "Authorization"
	HeaderContentType   = "Content-Type"
	HeaderXRequestID    = "X-Request-ID"
)

const (
	AuthorizationBearerPrefix = "Bearer "
)
