package tokenstore

import (
	"context"
	"fmt"
	"pandacare-gateway/internal/app/contracts"
	"pandacare-gateway/internal/app/models"
	"pandacare-gateway/internal/pkg/constvars"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
)

// Store is the single source of truth for one session's bearer token. It
// owns the persisted slot, claim decoding, and expiry arithmetic. Reads
// always fail closed: an unreachable storage or an undecodable token is
// indistinguishable from "no token".
type Store struct {
	storage contracts.TokenStorage
	key     string
	ttl     time.Duration
	log     *zap.Logger
	nowFn   func() time.Time
}

func New(storage contracts.TokenStorage, sessionID string, ttl time.Duration, log *zap.Logger) *Store {
	return &Store{
		storage: storage,
		key:     fmt.Sprintf(constvars.TokenStorageKeyFormat, sessionID),
		ttl:     ttl,
		log:     log,
		nowFn:   time.Now,
	}
}

// SetToken overwrites the persisted token. The write always succeeds from
// the caller's point of view; a storage failure is logged and the bad state
// surfaces later as "no token" on read.
func (s *Store) SetToken(ctx context.Context, token string) {
	if err := s.storage.Set(ctx, s.key, token, s.ttl); err != nil {
		s.log.Error("tokenstore.SetToken storage write failed",
			zap.String("key", s.key),
			zap.Error(err),
		)
	}
}

// GetToken returns the persisted token, or the empty string when the slot
// was never set, was cleared, or the storage is unavailable.
func (s *Store) GetToken(ctx context.Context) string {
	token, err := s.storage.Get(ctx, s.key)
	if err != nil {
		s.log.Debug("tokenstore.GetToken storage read failed",
			zap.String("key", s.key),
			zap.Error(err),
		)
		return ""
	}
	return token
}

// IsTokenExpired reports whether the session must be treated as expired.
// No token and an undecodable token both count as expired. The boundary is
// inclusive: a token whose exp equals the current second is already expired.
func (s *Store) IsTokenExpired(ctx context.Context) bool {
	token := s.GetToken(ctx)
	if token == "" {
		return true
	}
	claims := DecodeClaims(token)
	if claims == nil {
		return true
	}
	return s.nowFn().Unix() >= claims.ExpiresAt
}

// GetUser rebuilds the user identity from the stored token. Returns nil
// unless a token is present, unexpired, and fully decodable.
func (s *Store) GetUser(ctx context.Context) *models.UserData {
	token := s.GetToken(ctx)
	if token == "" {
		return nil
	}
	claims := DecodeClaims(token)
	if claims == nil {
		return nil
	}
	if s.nowFn().Unix() >= claims.ExpiresAt {
		return nil
	}
	user, err := claims.ToUserData()
	if err != nil {
		return nil
	}
	return user
}

// ClearAuth removes the persisted token. Idempotent; clearing an empty slot
// is not an error.
func (s *Store) ClearAuth(ctx context.Context) {
	if err := s.storage.Delete(ctx, s.key); err != nil {
		s.log.Error("tokenstore.ClearAuth storage delete failed",
			zap.String("key", s.key),
			zap.Error(err),
		)
	}
}

// DecodeClaims decodes the payload segment of a three-part token without
// verifying its signature. Returns nil on any structural, base64, JSON, or
// role failure. Never panics.
func DecodeClaims(token string) *models.TokenClaims {
	claims := &models.TokenClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil
	}
	if _, err := models.ParseRole(claims.Role); err != nil {
		return nil
	}
	return claims
}
