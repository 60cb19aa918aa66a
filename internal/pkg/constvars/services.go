package constvars

// ServiceName identifies one of the backend microservices fronted by the
// gateway. Each service enforces its own authorization policy for the same
// bearer token, so verification results are never shared between them.
type ServiceName string

const (
	ServiceAuth       ServiceName = "auth"
	ServiceKonsultasi ServiceName = "konsultasi"
	ServiceDoctorList ServiceName = "doctorList"
	ServiceRating     ServiceName = "rating"
	ServiceChat       ServiceName = "chat"
)

// KnownServices lists all supported backend services. Useful for validation.
var KnownServices = []ServiceName{
	ServiceAuth,
	ServiceKonsultasi,
	ServiceDoctorList,
	ServiceRating,
	ServiceChat,
}

const (
	VerifyEndpointPath = "/auth/verify"
	LoginEndpointPath  = "/auth/login"
	LogoutEndpointPath = "/auth/logout"
)
