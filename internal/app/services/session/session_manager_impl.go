package session

import (
	"context"
	"pandacare-gateway/internal/app/config"
	"pandacare-gateway/internal/app/contracts"
	"pandacare-gateway/internal/app/models"
	"pandacare-gateway/internal/app/services/shared/tokenstore"
	"pandacare-gateway/internal/pkg/constvars"
	"pandacare-gateway/internal/pkg/dto/requests"
	"pandacare-gateway/internal/pkg/exceptions"
	"sync"
	"time"

	"go.uber.org/zap"
)

type sessionManager struct {
	storage        contracts.TokenStorage
	authClient     contracts.AuthClient
	internalConfig *config.InternalConfig
	log            *zap.Logger
}

var (
	sessionManagerInstance *sessionManager
	onceSessionManager     sync.Once
)

func NewSessionManager(
	storage contracts.TokenStorage,
	authClient contracts.AuthClient,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.SessionManager {
	onceSessionManager.Do(func() {
		sessionManagerInstance = &sessionManager{
			storage:        storage,
			authClient:     authClient,
			internalConfig: internalConfig,
			log:            logger,
		}
	})
	return sessionManagerInstance
}

func (s *sessionManager) store(sessionID string) *tokenstore.Store {
	ttl := time.Duration(s.internalConfig.Session.TokenTTLInHour) * time.Hour
	return tokenstore.New(s.storage, sessionID, ttl, s.log)
}

func (s *sessionManager) Resolve(ctx context.Context, sessionID string) *models.UserData {
	store := s.store(sessionID)
	user := store.GetUser(ctx)
	if user == nil {
		// an expired or garbled token is dead weight, drop it
		if store.GetToken(ctx) != "" {
			store.ClearAuth(ctx)
		}
		return nil
	}
	return user
}

func (s *sessionManager) Login(ctx context.Context, sessionID, email, password string) (models.Role, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.log.Info("sessionManager.Login",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
		zap.String(constvars.LoggingEmailKey, email),
	)

	loginData, err := s.authClient.Login(ctx, &requests.Login{Email: email, Password: password})
	if err != nil {
		return "", err
	}

	role, err := models.ParseRole(loginData.Role)
	if err != nil {
		return "", exceptions.ErrDecodeResponse(err, constvars.ServiceAuth)
	}

	ttl := time.Duration(s.internalConfig.Session.TokenTTLInHour) * time.Hour
	if loginData.ExpiresIn > 0 {
		ttl = time.Duration(loginData.ExpiresIn) * time.Second
	}
	tokenstore.New(s.storage, sessionID, ttl, s.log).SetToken(ctx, loginData.AccessToken)

	return role, nil
}

func (s *sessionManager) Logout(ctx context.Context, sessionID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.log.Info("sessionManager.Logout",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)

	store := s.store(sessionID)
	if token := store.GetToken(ctx); token != "" {
		// remote logout is best effort, the local session dies regardless
		if err := s.authClient.Logout(ctx, token); err != nil {
			s.log.Warn("sessionManager.Logout remote logout failed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		}
	}
	store.ClearAuth(ctx)
	return nil
}

func (s *sessionManager) InvalidateSession(ctx context.Context, sessionID string) {
	s.log.Info("sessionManager.InvalidateSession",
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)
	s.store(sessionID).ClearAuth(ctx)
}
