package contracts

import (
	"context"
	"pandacare-gateway/internal/pkg/dto/requests"
	"pandacare-gateway/internal/pkg/dto/responses"
)

type ChatClient interface {
	FindRooms(ctx context.Context, token string) ([]responses.ChatRoom, error)
	FindMessages(ctx context.Context, token, roomID string, page, pageSize int) (*responses.ChatMessagePage, error)
	FindMessagesAfter(ctx context.Context, token, roomID, afterMessageID string) ([]responses.ChatMessage, error)
	SendMessage(ctx context.Context, token, roomID string, request *requests.SendChatMessage) (*responses.ChatMessage, error)
}
