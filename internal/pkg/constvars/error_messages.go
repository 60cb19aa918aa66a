package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"oneof":    "must be one of [%s]",
	"gt":       "must be greater than %s",
	"gte":      "must be greater than or equal to %s",
	"lte":      "must be less than or equal to %s",
	"uuid":     "must be a valid UUID",
	"datetime": "must be a valid timestamp",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
	"gt":    true,
	"gte":   true,
	"lte":   true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "cannot process request"
	ErrClientSomethingWrongWithApplication = "something wrong with the application"
	ErrClientServerLongRespond             = "server took too long to respond"
	ErrClientInvalidUsernameOrPassword     = "invalid email or password"
	ErrClientNotAuthorized                 = "Unauthorized access"
	ErrClientNotLoggedIn                   = "you are not logged in"
	ErrClientServiceUnreachable            = "backend service is unreachable"
)

// Error messages for developers
const (
	ErrDevValidationFailed          = "Validation failed"
	ErrDevCannotParseJSON           = "Failed to parse JSON request body"
	ErrDevCannotMarshalJSON         = "Failed to marshal value into JSON"
	ErrDevCreateHTTPRequest         = "Failed to create HTTP request"
	ErrDevSendHTTPRequest           = "Failed to send HTTP request"
	ErrDevDecodeBackendResponse     = "Failed to decode %s service response"
	ErrDevBackendRejectedRequest    = "%s service rejected the request"
	ErrDevServerDeadlineExceeded    = "Server deadline exceeded"
	ErrDevAuthTokenMissing          = "Authorization token is missing"
	ErrDevAuthTokenInvalidOrExpired = "Authorization token is invalid or expired"
	ErrDevAuthInvalidCredentials    = "Invalid credentials"
	ErrDevAuthRoleNotAllowed        = "Role is not allowed to access this resource"
	ErrDevUnknownService            = "Unknown backend service: %s"
	ErrDevRedisGetData              = "Failed to get data from redis"
	ErrDevRedisSetData              = "Failed to set data to redis"
	ErrDevRedisDeleteData           = "Failed to delete data from redis"
	ErrDevServerProcess             = "Error processing the request"
)
