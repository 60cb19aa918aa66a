package contracts

import (
	"context"
	"pandacare-gateway/internal/pkg/constvars"
)

// ServiceVerifier answers whether the session's token is currently accepted
// by one specific backend service. Always fail-closed: no token, unknown
// service, network failure, or malformed response all read as false.
type ServiceVerifier interface {
	VerifyTokenForService(ctx context.Context, sessionID string, service constvars.ServiceName) bool
}
