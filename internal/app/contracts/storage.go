package contracts

import (
	"context"
	"time"
)

// TokenStorage is the persistent key/value slot behind the token store.
// Implementations must treat a missing key as ("", nil), not as an error.
type TokenStorage interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, exp time.Duration) error
	Delete(ctx context.Context, key string) error
}
