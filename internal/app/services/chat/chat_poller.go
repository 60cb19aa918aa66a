package chat

import (
	"context"
	"pandacare-gateway/internal/app/contracts"
	"pandacare-gateway/internal/pkg/dto/responses"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Poller turns the chat service's plain message listing into a long-poll:
// it re-queries at a fixed rate until something new shows up or the
// caller's deadline runs out. The limiter keeps a slow backend from being
// hammered by an impatient browser.
type Poller struct {
	client   contracts.ChatClient
	interval time.Duration
	log      *zap.Logger
}

func NewPoller(client contracts.ChatClient, interval time.Duration, logger *zap.Logger) *Poller {
	return &Poller{
		client:   client,
		interval: interval,
		log:      logger,
	}
}

// WaitForNew blocks until the room has messages newer than afterMessageID.
// Returns an empty slice when the context expires first; backend errors are
// returned as-is on the first failing probe.
func (p *Poller) WaitForNew(ctx context.Context, token, roomID, afterMessageID string) ([]responses.ChatMessage, error) {
	limiter := rate.NewLimiter(rate.Every(p.interval), 1)
	for {
		if err := limiter.Wait(ctx); err != nil {
			// deadline hit between probes: no news is a valid answer
			return []responses.ChatMessage{}, nil
		}
		messages, err := p.client.FindMessagesAfter(ctx, token, roomID, afterMessageID)
		if err != nil {
			if ctx.Err() != nil {
				return []responses.ChatMessage{}, nil
			}
			return nil, err
		}
		if len(messages) > 0 {
			return messages, nil
		}
	}
}
