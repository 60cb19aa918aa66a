package chat

import (
	"context"
	"errors"
	"testing"
	"time"

	"pandacare-gateway/internal/pkg/dto/requests"
	"pandacare-gateway/internal/pkg/dto/responses"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type scriptedChatClient struct {
	answers [][]responses.ChatMessage
	err     error
	calls   int
}

func (s *scriptedChatClient) FindRooms(ctx context.Context, token string) ([]responses.ChatRoom, error) {
	return nil, nil
}

func (s *scriptedChatClient) FindMessages(ctx context.Context, token, roomID string, page, pageSize int) (*responses.ChatMessagePage, error) {
	return nil, nil
}

func (s *scriptedChatClient) FindMessagesAfter(ctx context.Context, token, roomID, afterMessageID string) ([]responses.ChatMessage, error) {
	if s.err != nil {
		return nil, s.err
	}
	answer := s.answers[0]
	if len(s.answers) > 1 {
		s.answers = s.answers[1:]
	}
	s.calls++
	return answer, nil
}

func (s *scriptedChatClient) SendMessage(ctx context.Context, token, roomID string, request *requests.SendChatMessage) (*responses.ChatMessage, error) {
	return nil, nil
}

func TestWaitForNew_ReturnsOnFirstNews(t *testing.T) {
	client := &scriptedChatClient{
		answers: [][]responses.ChatMessage{
			{},
			{},
			{{ID: "m3", RoomID: "room-1", Content: "halo"}},
		},
	}
	poller := NewPoller(client, time.Millisecond, zap.NewNop())

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	messages, err := poller.WaitForNew(ctx, "token-1", "room-1", "m2")
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "m3", messages[0].ID)
	assert.Equal(t, 3, client.calls)
}

func TestWaitForNew_EmptyOnDeadline(t *testing.T) {
	client := &scriptedChatClient{answers: [][]responses.ChatMessage{{}}}
	poller := NewPoller(client, time.Millisecond, zap.NewNop())

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	messages, err := poller.WaitForNew(ctx, "token-1", "room-1", "m1")
	require.NoError(t, err)
	assert.Empty(t, messages)
}

func TestWaitForNew_PropagatesBackendError(t *testing.T) {
	client := &scriptedChatClient{err: errors.New("chat service down")}
	poller := NewPoller(client, time.Millisecond, zap.NewNop())

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	_, err := poller.WaitForNew(ctx, "token-1", "room-1", "m1")
	assert.Error(t, err)
}
