package session

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"
	"time"

	"pandacare-gateway/internal/app/config"
	"pandacare-gateway/internal/app/services/shared/tokenstore"
	"pandacare-gateway/internal/pkg/dto/requests"
	"pandacare-gateway/internal/pkg/dto/responses"
	"pandacare-gateway/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockAuthClient struct {
	mock.Mock
}

func (m *mockAuthClient) Login(ctx context.Context, request *requests.Login) (*responses.LoginData, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.LoginData), args.Error(1)
}

func (m *mockAuthClient) Logout(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func newTestManager(authClient *mockAuthClient) (*sessionManager, *tokenstore.MemoryStorage) {
	storage := tokenstore.NewMemoryStorage()
	manager := &sessionManager{
		storage:    storage,
		authClient: authClient,
		internalConfig: &config.InternalConfig{
			Session: config.Session{TokenTTLInHour: 1},
		},
		log: zap.NewNop(),
	}
	return manager, storage
}

func validToken(t *testing.T, role string, exp time.Time) string {
	t.Helper()
	header, err := json.Marshal(map[string]string{"alg": "HS256", "typ": "JWT"})
	require.NoError(t, err)
	payload, err := json.Marshal(map[string]interface{}{
		"id":   "user-1",
		"sub":  "budi@pandacare.id",
		"name": "Budi",
		"role": role,
		"iat":  exp.Add(-time.Hour).Unix(),
		"exp":  exp.Unix(),
	})
	require.NoError(t, err)
	return base64.RawURLEncoding.EncodeToString(header) + "." +
		base64.RawURLEncoding.EncodeToString(payload) + "." +
		base64.RawURLEncoding.EncodeToString([]byte("sig"))
}

func TestLogin_StoresTokenAndReturnsRole(t *testing.T) {
	ctx := context.Background()
	authClient := new(mockAuthClient)
	manager, _ := newTestManager(authClient)

	token := validToken(t, "PACILIAN", time.Now().Add(time.Hour))
	authClient.On("Login", mock.Anything, &requests.Login{
		Email:    "budi@pandacare.id",
		Password: "rahasia-banget",
	}).Return(&responses.LoginData{
		AccessToken: token,
		Email:       "budi@pandacare.id",
		Name:        "Budi",
		Role:        "PACILIAN",
		ExpiresIn:   3600,
	}, nil)

	role, err := manager.Login(ctx, "sid-1", "budi@pandacare.id", "rahasia-banget")
	require.NoError(t, err)
	assert.Equal(t, "PACILIAN", string(role))

	user := manager.Resolve(ctx, "sid-1")
	require.NotNil(t, user)
	assert.Equal(t, "budi@pandacare.id", user.Email)
	authClient.AssertExpectations(t)
}

func TestLogin_AuthErrorDoesNotTouchStorage(t *testing.T) {
	ctx := context.Background()
	authClient := new(mockAuthClient)
	manager, _ := newTestManager(authClient)

	authErr := exceptions.ErrInvalidUsernameOrPassword(errors.New("401 from auth"))
	authClient.On("Login", mock.Anything, mock.Anything).Return(nil, authErr)

	_, err := manager.Login(ctx, "sid-1", "budi@pandacare.id", "salah-terus")
	assert.ErrorIs(t, err, authErr)
	assert.Nil(t, manager.Resolve(ctx, "sid-1"))
}

func TestLogin_UnknownRoleIsRejected(t *testing.T) {
	ctx := context.Background()
	authClient := new(mockAuthClient)
	manager, _ := newTestManager(authClient)

	authClient.On("Login", mock.Anything, mock.Anything).Return(&responses.LoginData{
		AccessToken: "whatever",
		Role:        "SUPERADMIN",
	}, nil)

	_, err := manager.Login(ctx, "sid-1", "budi@pandacare.id", "rahasia-banget")
	assert.Error(t, err)
	assert.Nil(t, manager.Resolve(ctx, "sid-1"))
}

func TestLogout_AlwaysClearsLocalSession(t *testing.T) {
	ctx := context.Background()

	t.Run("remote logout succeeds", func(t *testing.T) {
		authClient := new(mockAuthClient)
		manager, _ := newTestManager(authClient)
		token := validToken(t, "PACILIAN", time.Now().Add(time.Hour))
		manager.store("sid-1").SetToken(ctx, token)
		authClient.On("Logout", mock.Anything, token).Return(nil)

		require.NoError(t, manager.Logout(ctx, "sid-1"))
		assert.Nil(t, manager.Resolve(ctx, "sid-1"))
		authClient.AssertExpectations(t)
	})

	t.Run("remote logout fails", func(t *testing.T) {
		authClient := new(mockAuthClient)
		manager, _ := newTestManager(authClient)
		token := validToken(t, "CAREGIVER", time.Now().Add(time.Hour))
		manager.store("sid-2").SetToken(ctx, token)
		authClient.On("Logout", mock.Anything, token).Return(errors.New("auth service down"))

		require.NoError(t, manager.Logout(ctx, "sid-2"))
		assert.Nil(t, manager.Resolve(ctx, "sid-2"))
	})

	t.Run("no token, no remote call", func(t *testing.T) {
		authClient := new(mockAuthClient)
		manager, _ := newTestManager(authClient)

		require.NoError(t, manager.Logout(ctx, "sid-3"))
		authClient.AssertNotCalled(t, "Logout", mock.Anything, mock.Anything)
	})
}

func TestResolve_ExpiredTokenIsCleared(t *testing.T) {
	ctx := context.Background()
	manager, _ := newTestManager(new(mockAuthClient))

	store := manager.store("sid-1")
	store.SetToken(ctx, validToken(t, "PACILIAN", time.Now().Add(-time.Minute)))

	assert.Nil(t, manager.Resolve(ctx, "sid-1"))
	assert.Equal(t, "", store.GetToken(ctx))
}

func TestInvalidateSession_OnlyTargetSession(t *testing.T) {
	ctx := context.Background()
	manager, _ := newTestManager(new(mockAuthClient))

	exp := time.Now().Add(time.Hour)
	manager.store("sid-a").SetToken(ctx, validToken(t, "PACILIAN", exp))
	manager.store("sid-b").SetToken(ctx, validToken(t, "CAREGIVER", exp))

	manager.InvalidateSession(ctx, "sid-a")

	assert.Nil(t, manager.Resolve(ctx, "sid-a"))
	require.NotNil(t, manager.Resolve(ctx, "sid-b"))
}
