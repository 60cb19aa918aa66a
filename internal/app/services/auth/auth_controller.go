package auth

import (
	"context"
	"errors"
	"net/http"
	"pandacare-gateway/internal/app/config"
	"pandacare-gateway/internal/app/contracts"
	"pandacare-gateway/internal/app/models"
	"pandacare-gateway/internal/pkg/constvars"
	"pandacare-gateway/internal/pkg/dto/requests"
	"pandacare-gateway/internal/pkg/dto/responses"
	"pandacare-gateway/internal/pkg/exceptions"
	"pandacare-gateway/internal/pkg/utils"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type AuthController struct {
	SessionManager contracts.SessionManager
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
}

var (
	authControllerInstance *AuthController
	onceAuthController     sync.Once
)

func NewAuthController(sessionManager contracts.SessionManager, internalConfig *config.InternalConfig, logger *zap.Logger) *AuthController {
	onceAuthController.Do(func() {
		authControllerInstance = &AuthController{
			SessionManager: sessionManager,
			InternalConfig: internalConfig,
			Log:            logger,
		}
	})
	return authControllerInstance
}

func (ctrl *AuthController) requestTimeout() time.Duration {
	return time.Duration(ctrl.InternalConfig.App.RequestTimeoutInSecond) * time.Second
}

func (ctrl *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), ctrl.requestTimeout())
	defer cancel()

	request := new(requests.Login)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	sessionID, _ := ctx.Value(constvars.CONTEXT_SESSION_ID_KEY).(string)
	if sessionID == "" {
		sessionID = utils.GenerateSessionID()
		ctx = context.WithValue(ctx, constvars.CONTEXT_SESSION_ID_KEY, sessionID)
	}

	role, err := ctrl.SessionManager.Login(ctx, sessionID, request.Email, request.Password)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     ctrl.InternalConfig.Session.CookieName,
		Value:    sessionID,
		Path:     "/",
		MaxAge:   ctrl.InternalConfig.Session.TokenTTLInHour * 3600,
		HttpOnly: true,
		Secure:   ctrl.InternalConfig.App.Env == "production",
		SameSite: http.SameSiteLaxMode,
	})

	redirectTo := constvars.RoleRedirectPacilianDashboard
	if role == models.RoleCaregiver {
		redirectTo = constvars.RoleRedirectCaregiverDashboard
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LoginSuccess, responses.Login{
		Role:       string(role),
		RedirectTo: redirectTo,
	})
}

func (ctrl *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), ctrl.requestTimeout())
	defer cancel()

	sessionID, _ := ctx.Value(constvars.CONTEXT_SESSION_ID_KEY).(string)
	if sessionID != "" {
		if err := ctrl.SessionManager.Logout(ctx, sessionID); err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, err)
			return
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     ctrl.InternalConfig.Session.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LogoutSuccess, nil)
}

func (ctrl *AuthController) Profile(w http.ResponseWriter, r *http.Request) {
	user, ok := r.Context().Value(constvars.CONTEXT_USER_KEY).(*models.UserData)
	if !ok || user == nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrTokenMissing(errors.New("no user in request context")))
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ProfileGetSuccess, responses.Profile{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
		Role:  string(user.Role),
	})
}
