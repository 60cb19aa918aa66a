package constvars

const (
	LoggingRequestIDKey    = "request_id"
	LoggingSessionIDKey    = "session_id"
	LoggingMethodKey       = "method"
	LoggingEndpointKey     = "endpoint"
	LoggingRemoteAddrKey   = "remote_addr"
	LoggingUserAgentKey    = "user_agent"
	LoggingQueryKey        = "query"
	LoggingStatusCodeKey   = "status_code"
	LoggingDurationKey     = "duration"
	LoggingSuccessKey      = "success"
	LoggingServiceKey      = "service"
	LoggingEmailKey        = "email"
	LoggingRoleKey         = "role"
	LoggingDoctorIDKey     = "doctor_id"
	LoggingRoomIDKey       = "room_id"
	LoggingConsultationKey = "consultation_id"
)
