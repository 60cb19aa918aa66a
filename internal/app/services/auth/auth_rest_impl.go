package auth

import (
	"context"
	"net/http"
	"pandacare-gateway/internal/app/config"
	"pandacare-gateway/internal/app/contracts"
	"pandacare-gateway/internal/app/services/shared/backend"
	"pandacare-gateway/internal/pkg/constvars"
	"pandacare-gateway/internal/pkg/dto/requests"
	"pandacare-gateway/internal/pkg/dto/responses"
	"sync"
	"time"

	"go.uber.org/zap"
)

type authClient struct {
	caller *backend.Caller
}

var (
	authClientInstance *authClient
	onceAuthClient     sync.Once
)

func NewAuthClient(internalConfig *config.InternalConfig, invalidator contracts.SessionInvalidator, logger *zap.Logger) contracts.AuthClient {
	onceAuthClient.Do(func() {
		authClientInstance = &authClient{
			caller: &backend.Caller{
				Service: constvars.ServiceAuth,
				BaseUrl: internalConfig.Services.AuthBaseUrl,
				HTTPClient: &http.Client{
					Timeout: time.Duration(internalConfig.App.RequestTimeoutInSecond) * time.Second,
				},
				Invalidator: invalidator,
				Log:         logger,
			},
		}
	})
	return authClientInstance
}

func (c *authClient) Login(ctx context.Context, request *requests.Login) (*responses.LoginData, error) {
	loginData := new(responses.LoginData)
	if err := c.caller.Do(ctx, constvars.MethodPost, constvars.LoginEndpointPath, "", request, loginData); err != nil {
		return nil, err
	}
	return loginData, nil
}

func (c *authClient) Logout(ctx context.Context, token string) error {
	return c.caller.Do(ctx, constvars.MethodPost, constvars.LogoutEndpointPath, token, nil, nil)
}
