package chat

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
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

type chatClient struct {
	caller *backend.Caller
}

var (
	chatClientInstance *chatClient
	onceChatClient     sync.Once
)

func NewChatClient(internalConfig *config.InternalConfig, invalidator contracts.SessionInvalidator, logger *zap.Logger) contracts.ChatClient {
	onceChatClient.Do(func() {
		chatClientInstance = &chatClient{
			caller: &backend.Caller{
				Service: constvars.ServiceChat,
				BaseUrl: internalConfig.Services.ChatBaseUrl,
				HTTPClient: &http.Client{
					Timeout: time.Duration(internalConfig.App.RequestTimeoutInSecond) * time.Second,
				},
				Invalidator: invalidator,
				Log:         logger,
			},
		}
	})
	return chatClientInstance
}

func (c *chatClient) FindRooms(ctx context.Context, token string) ([]responses.ChatRoom, error) {
	var rooms []responses.ChatRoom
	if err := c.caller.Do(ctx, constvars.MethodGet, "/rooms", token, nil, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

func (c *chatClient) FindMessages(ctx context.Context, token, roomID string, page, pageSize int) (*responses.ChatMessagePage, error) {
	messagePage := new(responses.ChatMessagePage)
	path := fmt.Sprintf("/rooms/%s/messages?page=%d&pageSize=%d", url.PathEscape(roomID), page, pageSize)
	if err := c.caller.Do(ctx, constvars.MethodGet, path, token, nil, messagePage); err != nil {
		return nil, err
	}
	return messagePage, nil
}

func (c *chatClient) FindMessagesAfter(ctx context.Context, token, roomID, afterMessageID string) ([]responses.ChatMessage, error) {
	var messages []responses.ChatMessage
	path := fmt.Sprintf("/rooms/%s/messages?after=%s", url.PathEscape(roomID), url.QueryEscape(afterMessageID))
	if err := c.caller.Do(ctx, constvars.MethodGet, path, token, nil, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

func (c *chatClient) SendMessage(ctx context.Context, token, roomID string, request *requests.SendChatMessage) (*responses.ChatMessage, error) {
	message := new(responses.ChatMessage)
	path := fmt.Sprintf("/rooms/%s/messages", url.PathEscape(roomID))
	if err := c.caller.Do(ctx, constvars.MethodPost, path, token, request, message); err != nil {
		return nil, err
	}
	return message, nil
}
