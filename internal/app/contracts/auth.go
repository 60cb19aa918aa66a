package contracts

import (
	"context"
	"pandacare-gateway/internal/pkg/dto/requests"
	"pandacare-gateway/internal/pkg/dto/responses"
)

type AuthClient interface {
	Login(ctx context.Context, request *requests.Login) (*responses.LoginData, error)
	Logout(ctx context.Context, token string) error
}
