package middlewares

import (
	"context"
	"errors"
	"net/http"
	"pandacare-gateway/internal/app/models"
	"pandacare-gateway/internal/app/services/shared/tokenstore"
	"pandacare-gateway/internal/pkg/constvars"
	"pandacare-gateway/internal/pkg/exceptions"
	"pandacare-gateway/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

// Protect gates a route behind three checks, in order: a live session, the
// backend service's own verdict on the token, and an optional role
// allowlist. The failure modes differ on purpose: a missing or rejected
// session redirects to login and (on rejection) tears the session down,
// while a role mismatch answers 403 in place and leaves the session alone,
// so the user can navigate back to pages their role does allow.
func (m *Middlewares) Protect(service constvars.ServiceName, allowedRoles ...models.Role) func(http.Handler) http.Handler {
	if service == "" {
		service = constvars.ServiceAuth
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

			sessionID, _ := ctx.Value(constvars.CONTEXT_SESSION_ID_KEY).(string)
			if sessionID == "" {
				m.redirectToLogin(w, r)
				return
			}

			user := m.SessionManager.Resolve(ctx, sessionID)
			if user == nil {
				m.redirectToLogin(w, r)
				return
			}

			if !m.Verifier.VerifyTokenForService(ctx, sessionID, service) {
				m.Log.Info("route guard: service rejected token",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.String(constvars.LoggingSessionIDKey, sessionID),
					zap.String(constvars.LoggingServiceKey, string(service)),
				)
				m.SessionManager.InvalidateSession(ctx, sessionID)
				m.redirectToLogin(w, r)
				return
			}

			if len(allowedRoles) > 0 && !roleAllowed(user.Role, allowedRoles) {
				m.Log.Info("route guard: role not allowed",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.String(constvars.LoggingSessionIDKey, sessionID),
					zap.String(constvars.LoggingRoleKey, string(user.Role)),
				)
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrRoleNotAllowed(errors.New("role "+string(user.Role)+" not in allowlist")))
				return
			}

			ttl := time.Duration(m.InternalConfig.Session.TokenTTLInHour) * time.Hour
			token := tokenstore.New(m.Storage, sessionID, ttl, m.Log).GetToken(ctx)

			ctx = context.WithValue(ctx, constvars.CONTEXT_USER_KEY, user)
			ctx = context.WithValue(ctx, constvars.CONTEXT_TOKEN_KEY, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func (m *Middlewares) redirectToLogin(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, m.InternalConfig.App.LoginURL, constvars.StatusSeeOther)
}

func roleAllowed(role models.Role, allowed []models.Role) bool {
	for _, candidate := range allowed {
		if role == candidate {
			return true
		}
	}
	return false
}
