package verify

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pandacare-gateway/internal/app/config"
	"pandacare-gateway/internal/app/services/shared/tokenstore"
	"pandacare-gateway/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func verifyHandler(t *testing.T, wantToken string, valid bool, calls *int) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		*calls++
		require.Equal(t, constvars.MethodPost, r.Method)
		require.Equal(t, constvars.VerifyEndpointPath, r.URL.Path)
		require.Equal(t, constvars.AuthorizationBearerPrefix+wantToken, r.Header.Get(constvars.HeaderAuthorization))
		w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
		if valid {
			w.Write([]byte(`{"status":200,"message":"ok","timestamp":"2025-05-20T10:00:00Z","data":{"valid":true}}`))
		} else {
			w.Write([]byte(`{"status":200,"message":"ok","timestamp":"2025-05-20T10:00:00Z","data":{"valid":false}}`))
		}
	}
}

func newTestVerifier(storage *tokenstore.MemoryStorage, services config.Services) *serviceVerifier {
	return &serviceVerifier{
		storage: storage,
		internalConfig: &config.InternalConfig{
			Services: services,
			Session:  config.Session{TokenTTLInHour: 1},
		},
		httpClient: &http.Client{Timeout: 2 * time.Second},
		log:        zap.NewNop(),
	}
}

func TestVerifyTokenForService_PerServiceIndependence(t *testing.T) {
	ctx := context.Background()
	token := "header.payload.sig"

	konsultasiCalls, chatCalls := 0, 0
	konsultasiServer := httptest.NewServer(verifyHandler(t, token, true, &konsultasiCalls))
	defer konsultasiServer.Close()
	chatServer := httptest.NewServer(verifyHandler(t, token, false, &chatCalls))
	defer chatServer.Close()

	storage := tokenstore.NewMemoryStorage()
	verifier := newTestVerifier(storage, config.Services{
		KonsultasiBaseUrl: konsultasiServer.URL,
		ChatBaseUrl:       chatServer.URL,
	})
	tokenstore.New(storage, "sid-1", time.Hour, zap.NewNop()).SetToken(ctx, token)

	// same token, two services, independent verdicts
	assert.True(t, verifier.VerifyTokenForService(ctx, "sid-1", constvars.ServiceKonsultasi))
	assert.False(t, verifier.VerifyTokenForService(ctx, "sid-1", constvars.ServiceChat))
	assert.Equal(t, 1, konsultasiCalls)
	assert.Equal(t, 1, chatCalls)
}

func TestVerifyTokenForService_NoTokenSkipsNetwork(t *testing.T) {
	ctx := context.Background()
	calls := 0
	server := httptest.NewServer(verifyHandler(t, "unused", true, &calls))
	defer server.Close()

	verifier := newTestVerifier(tokenstore.NewMemoryStorage(), config.Services{AuthBaseUrl: server.URL})

	assert.False(t, verifier.VerifyTokenForService(ctx, "sid-none", constvars.ServiceAuth))
	assert.Equal(t, 0, calls)
}

func TestVerifyTokenForService_FailsClosed(t *testing.T) {
	ctx := context.Background()
	storage := tokenstore.NewMemoryStorage()
	tokenstore.New(storage, "sid-1", time.Hour, zap.NewNop()).SetToken(ctx, "some-token")

	t.Run("unknown service", func(t *testing.T) {
		verifier := newTestVerifier(storage, config.Services{})
		assert.False(t, verifier.VerifyTokenForService(ctx, "sid-1", constvars.ServiceName("billing")))
	})

	t.Run("service unreachable", func(t *testing.T) {
		server := httptest.NewServer(http.NotFoundHandler())
		server.Close()
		verifier := newTestVerifier(storage, config.Services{RatingBaseUrl: server.URL})
		assert.False(t, verifier.VerifyTokenForService(ctx, "sid-1", constvars.ServiceRating))
	})

	t.Run("non-200 answer", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()
		verifier := newTestVerifier(storage, config.Services{RatingBaseUrl: server.URL})
		assert.False(t, verifier.VerifyTokenForService(ctx, "sid-1", constvars.ServiceRating))
	})

	t.Run("garbled body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("<html>definitely not json</html>"))
		}))
		defer server.Close()
		verifier := newTestVerifier(storage, config.Services{RatingBaseUrl: server.URL})
		assert.False(t, verifier.VerifyTokenForService(ctx, "sid-1", constvars.ServiceRating))
	})

	t.Run("missing data payload", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status":200,"message":"ok","timestamp":"2025-05-20T10:00:00Z"}`))
		}))
		defer server.Close()
		verifier := newTestVerifier(storage, config.Services{RatingBaseUrl: server.URL})
		assert.False(t, verifier.VerifyTokenForService(ctx, "sid-1", constvars.ServiceRating))
	})
}
