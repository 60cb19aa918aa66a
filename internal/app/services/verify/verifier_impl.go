package verify

import (
	"context"
	"io"
	"net/http"
	"pandacare-gateway/internal/app/config"
	"pandacare-gateway/internal/app/contracts"
	"pandacare-gateway/internal/app/services/shared/tokenstore"
	"pandacare-gateway/internal/pkg/constvars"
	"pandacare-gateway/internal/pkg/dto/responses"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// serviceVerifier asks one backend service whether it accepts the session's
// token right now. Results are never cached and never shared between
// services: each service runs its own policy over the same token.
type serviceVerifier struct {
	storage        contracts.TokenStorage
	internalConfig *config.InternalConfig
	httpClient     *http.Client
	log            *zap.Logger
}

var (
	serviceVerifierInstance *serviceVerifier
	onceServiceVerifier     sync.Once
)

func NewServiceVerifier(
	storage contracts.TokenStorage,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.ServiceVerifier {
	onceServiceVerifier.Do(func() {
		serviceVerifierInstance = &serviceVerifier{
			storage:        storage,
			internalConfig: internalConfig,
			httpClient: &http.Client{
				Timeout: time.Duration(internalConfig.App.RequestTimeoutInSecond) * time.Second,
			},
			log: logger,
		}
	})
	return serviceVerifierInstance
}

// VerifyTokenForService is fail-closed: every failure mode short-circuits to
// false. A missing token never reaches the network.
func (v *serviceVerifier) VerifyTokenForService(ctx context.Context, sessionID string, service constvars.ServiceName) bool {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	ttl := time.Duration(v.internalConfig.Session.TokenTTLInHour) * time.Hour
	token := tokenstore.New(v.storage, sessionID, ttl, v.log).GetToken(ctx)
	if token == "" {
		return false
	}

	baseUrl := v.internalConfig.ServiceBaseUrl(service)
	if baseUrl == "" {
		v.log.Error("serviceVerifier.VerifyTokenForService unknown service",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingServiceKey, string(service)),
		)
		return false
	}

	request, err := http.NewRequestWithContext(ctx, constvars.MethodPost, baseUrl+constvars.VerifyEndpointPath, nil)
	if err != nil {
		v.log.Error("serviceVerifier.VerifyTokenForService cannot build request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingServiceKey, string(service)),
			zap.Error(err),
		)
		return false
	}
	request.Header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+token)
	request.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	response, err := v.httpClient.Do(request)
	if err != nil {
		v.log.Error("serviceVerifier.VerifyTokenForService request failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingServiceKey, string(service)),
			zap.Error(err),
		)
		return false
	}
	defer response.Body.Close()

	if response.StatusCode != constvars.StatusOK {
		v.log.Info("serviceVerifier.VerifyTokenForService rejected",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingServiceKey, string(service)),
			zap.Int(constvars.LoggingStatusCodeKey, response.StatusCode),
		)
		return false
	}

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return false
	}

	var envelope responses.BackendEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		v.log.Error("serviceVerifier.VerifyTokenForService cannot decode envelope",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingServiceKey, string(service)),
			zap.Error(err),
		)
		return false
	}

	var verifyData responses.VerifyData
	if err := json.Unmarshal(envelope.Data, &verifyData); err != nil {
		return false
	}
	return verifyData.Valid
}
