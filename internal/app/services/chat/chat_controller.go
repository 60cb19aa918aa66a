package chat

import (
	"context"
	"net/http"
	"pandacare-gateway/internal/app/config"
	"pandacare-gateway/internal/app/contracts"
	"pandacare-gateway/internal/pkg/constvars"
	"pandacare-gateway/internal/pkg/dto/requests"
	"pandacare-gateway/internal/pkg/exceptions"
	"pandacare-gateway/internal/pkg/utils"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const (
	defaultMessagePage     = 1
	defaultMessagePageSize = 20

	// long-poll requests hold the connection longer than regular calls
	pollTimeout = 25 * time.Second
)

type ChatController struct {
	Client         contracts.ChatClient
	Poller         *Poller
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
}

var (
	chatControllerInstance *ChatController
	onceChatController     sync.Once
)

func NewChatController(client contracts.ChatClient, poller *Poller, internalConfig *config.InternalConfig, logger *zap.Logger) *ChatController {
	onceChatController.Do(func() {
		chatControllerInstance = &ChatController{
			Client:         client,
			Poller:         poller,
			InternalConfig: internalConfig,
			Log:            logger,
		}
	})
	return chatControllerInstance
}

func (ctrl *ChatController) withTimeout(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), time.Duration(ctrl.InternalConfig.App.RequestTimeoutInSecond)*time.Second)
}

func (ctrl *ChatController) Rooms(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := ctrl.withTimeout(r)
	defer cancel()

	token, _ := ctx.Value(constvars.CONTEXT_TOKEN_KEY).(string)
	rooms, err := ctrl.Client.FindRooms(ctx, token)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ChatRoomListSuccess, rooms)
}

func (ctrl *ChatController) Messages(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := ctrl.withTimeout(r)
	defer cancel()

	page := queryInt(r, "page", defaultMessagePage)
	pageSize := queryInt(r, "pageSize", defaultMessagePageSize)

	token, _ := ctx.Value(constvars.CONTEXT_TOKEN_KEY).(string)
	roomID := chi.URLParam(r, "roomID")
	messagePage, err := ctrl.Client.FindMessages(ctx, token, roomID, page, pageSize)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ChatMessageListSuccess, messagePage)
}

func (ctrl *ChatController) Poll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pollTimeout)
	defer cancel()

	token, _ := ctx.Value(constvars.CONTEXT_TOKEN_KEY).(string)
	roomID := chi.URLParam(r, "roomID")
	afterMessageID := r.URL.Query().Get("after")

	messages, err := ctrl.Poller.WaitForNew(ctx, token, roomID, afterMessageID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ChatMessageListSuccess, messages)
}

func (ctrl *ChatController) Send(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := ctrl.withTimeout(r)
	defer cancel()

	request := new(requests.SendChatMessage)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	token, _ := ctx.Value(constvars.CONTEXT_TOKEN_KEY).(string)
	roomID := chi.URLParam(r, "roomID")
	message, err := ctrl.Client.SendMessage(ctx, token, roomID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.ChatMessageSentSuccess, message)
}

func queryInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return fallback
	}
	return value
}
