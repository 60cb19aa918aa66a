package middlewares

import (
	"pandacare-gateway/internal/app/config"
	"pandacare-gateway/internal/app/contracts"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	SessionManager contracts.SessionManager
	Verifier       contracts.ServiceVerifier
	Storage        contracts.TokenStorage
	InternalConfig *config.InternalConfig
}

func NewMiddlewares(
	logger *zap.Logger,
	sessionManager contracts.SessionManager,
	verifier contracts.ServiceVerifier,
	storage contracts.TokenStorage,
	internalConfig *config.InternalConfig,
) *Middlewares {
	return &Middlewares{
		Log:            logger,
		SessionManager: sessionManager,
		Verifier:       verifier,
		Storage:        storage,
		InternalConfig: internalConfig,
	}
}
