package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_SESSION_ID_KEY           ContextKey = "session_id"
	CONTEXT_USER_KEY                 ContextKey = "user"
	CONTEXT_TOKEN_KEY                ContextKey = "token"
)

const (
	REQUEST_ID_PREFIX = "PNDCR_GW_"
)

const (
	TokenStorageKeyFormat = "pandacare:token:%s"
)

const (
	RoleRedirectPacilianDashboard  = "/pacilian/dashboard"
	RoleRedirectCaregiverDashboard = "/caregiver/dashboard"
)
