package contracts

import (
	"context"
	"pandacare-gateway/internal/app/models"
)

// SessionInvalidator is how HTTP call sites force-logout a session without
// holding a reference to the whole session manager. Every backend client
// calls it when a service answers 401.
type SessionInvalidator interface {
	InvalidateSession(ctx context.Context, sessionID string)
}

type SessionManager interface {
	SessionInvalidator

	// Resolve returns the current user for the session, or nil when the
	// session is absent, expired, or undecodable. An expired token is
	// cleared as a side effect.
	Resolve(ctx context.Context, sessionID string) *models.UserData

	// Login authenticates against the auth service, stores the returned
	// token, and reports the user's role for post-login redirects. Auth
	// service errors are propagated unchanged.
	Login(ctx context.Context, sessionID, email, password string) (models.Role, error)

	// Logout clears the local session unconditionally. The remote logout
	// call is best effort; its failure is swallowed.
	Logout(ctx context.Context, sessionID string) error
}
