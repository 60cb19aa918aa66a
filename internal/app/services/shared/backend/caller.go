package backend

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"pandacare-gateway/internal/app/contracts"
	"pandacare-gateway/internal/pkg/constvars"
	"pandacare-gateway/internal/pkg/dto/responses"
	"pandacare-gateway/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// Caller is the HTTP plumbing every backend client shares: marshal the
// payload, attach the bearer token, unwrap the response envelope. A 401 on
// an authenticated call kills the caller's session on the spot, so the next
// request starts from a clean logged-out state.
type Caller struct {
	Service     constvars.ServiceName
	BaseUrl     string
	HTTPClient  *http.Client
	Invalidator contracts.SessionInvalidator
	Log         *zap.Logger
}

// Do performs one backend round trip. An empty token means an
// unauthenticated call (login); a 401 there is a credentials failure, not a
// dead session. When out is non-nil the envelope's data payload is decoded
// into it.
func (c *Caller) Do(ctx context.Context, method, path, token string, payload, out interface{}) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("backend.Caller.Do",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingServiceKey, string(c.Service)),
		zap.String(constvars.LoggingMethodKey, method),
		zap.String(constvars.LoggingEndpointKey, path),
	)

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return exceptions.ErrCannotMarshalJSON(err)
		}
		body = bytes.NewReader(raw)
	}

	request, err := http.NewRequestWithContext(ctx, method, c.BaseUrl+path, body)
	if err != nil {
		return exceptions.ErrCreateHTTPRequest(err)
	}
	request.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	if requestID != "" {
		request.Header.Set(constvars.HeaderXRequestID, requestID)
	}
	if token != "" {
		request.Header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+token)
	}

	response, err := c.HTTPClient.Do(request)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return exceptions.ErrServerDeadlineExceeded(err)
		}
		return exceptions.ErrSendHTTPRequest(err)
	}
	defer response.Body.Close()

	raw, err := io.ReadAll(response.Body)
	if err != nil {
		return exceptions.ErrDecodeResponse(err, c.Service)
	}

	if response.StatusCode == constvars.StatusUnauthorized {
		if token == "" {
			return exceptions.ErrInvalidUsernameOrPassword(errors.New(string(raw)))
		}
		if sessionID, ok := ctx.Value(constvars.CONTEXT_SESSION_ID_KEY).(string); ok && sessionID != "" && c.Invalidator != nil {
			c.Invalidator.InvalidateSession(ctx, sessionID)
		}
		return exceptions.ErrTokenInvalidOrExpired(errors.New(string(raw)))
	}
	if response.StatusCode >= constvars.StatusBadRequest {
		return exceptions.ErrBackendRejected(errors.New(string(raw)), c.Service)
	}

	if out == nil {
		return nil
	}

	var envelope responses.BackendEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return exceptions.ErrDecodeResponse(err, c.Service)
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return exceptions.ErrDecodeResponse(err, c.Service)
	}
	return nil
}
