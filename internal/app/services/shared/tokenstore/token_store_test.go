package tokenstore

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func forgeToken(t *testing.T, claims map[string]interface{}) string {
	t.Helper()
	header, err := json.Marshal(map[string]string{"alg": "HS256", "typ": "JWT"})
	require.NoError(t, err)
	payload, err := json.Marshal(claims)
	require.NoError(t, err)
	return base64.RawURLEncoding.EncodeToString(header) + "." +
		base64.RawURLEncoding.EncodeToString(payload) + "." +
		base64.RawURLEncoding.EncodeToString([]byte("signature"))
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(NewMemoryStorage(), "test-session", time.Hour, zap.NewNop())
}

func TestDecodeClaims_MalformedTokens(t *testing.T) {
	malformed := []string{
		"",
		"not-a-token",
		"only.two",
		"a.b.c.d",
		"!!!.???.###",
		forgeToken(t, map[string]interface{}{"role": "SUPERADMIN", "exp": time.Now().Add(time.Hour).Unix()}),
		"header." + base64.RawURLEncoding.EncodeToString([]byte("{not json")) + ".sig",
	}

	for _, token := range malformed {
		assert.Nil(t, DecodeClaims(token), "token %q should not decode", token)
	}
}

func TestIsTokenExpired_FailsClosed(t *testing.T) {
	ctx := context.Background()

	t.Run("no token stored", func(t *testing.T) {
		store := newTestStore(t)
		assert.True(t, store.IsTokenExpired(ctx))
		assert.Nil(t, store.GetUser(ctx))
	})

	t.Run("undecodable token stored", func(t *testing.T) {
		store := newTestStore(t)
		store.SetToken(ctx, "garbage-token")
		assert.True(t, store.IsTokenExpired(ctx))
		assert.Nil(t, store.GetUser(ctx))
	})

	t.Run("storage unavailable", func(t *testing.T) {
		store := New(failingStorage{}, "test-session", time.Hour, zap.NewNop())
		assert.True(t, store.IsTokenExpired(ctx))
		assert.Equal(t, "", store.GetToken(ctx))
		assert.Nil(t, store.GetUser(ctx))
	})
}

func TestIsTokenExpired_Boundary(t *testing.T) {
	ctx := context.Background()
	exp := time.Date(2025, 5, 20, 10, 0, 0, 0, time.UTC)
	token := forgeToken(t, map[string]interface{}{
		"id":   "user-1",
		"sub":  "budi@pandacare.id",
		"name": "Budi",
		"role": "PACILIAN",
		"iat":  exp.Add(-time.Hour).Unix(),
		"exp":  exp.Unix(),
	})

	cases := []struct {
		name    string
		now     time.Time
		expired bool
	}{
		{"one second before exp", exp.Add(-time.Second), false},
		{"exactly at exp", exp, true},
		{"one second after exp", exp.Add(time.Second), true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := newTestStore(t)
			store.SetToken(ctx, token)
			store.nowFn = func() time.Time { return tc.now }
			assert.Equal(t, tc.expired, store.IsTokenExpired(ctx))
		})
	}
}

func TestSetGetClear_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	tokens := []string{"xyz", "a.b.c", forgeToken(t, map[string]interface{}{"role": "PACILIAN"})}
	for _, token := range tokens {
		store.SetToken(ctx, token)
		assert.Equal(t, token, store.GetToken(ctx))
	}

	store.ClearAuth(ctx)
	assert.Equal(t, "", store.GetToken(ctx))

	// clearing an empty slot is fine
	store.ClearAuth(ctx)
	assert.Equal(t, "", store.GetToken(ctx))
}

func TestGetUser_MapsClaims(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	store.SetToken(ctx, forgeToken(t, map[string]interface{}{
		"id":   "user-42",
		"sub":  "siti@pandacare.id",
		"name": "Siti",
		"role": "CAREGIVER",
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(time.Hour).Unix(),
	}))

	user := store.GetUser(ctx)
	require.NotNil(t, user)
	assert.Equal(t, "user-42", user.ID)
	assert.Equal(t, "siti@pandacare.id", user.Email)
	assert.Equal(t, "Siti", user.Name)
	assert.Equal(t, "CAREGIVER", string(user.Role))
}

type failingStorage struct{}

func (failingStorage) Get(ctx context.Context, key string) (string, error) {
	return "", errors.New("storage unavailable")
}

func (failingStorage) Set(ctx context.Context, key string, value string, exp time.Duration) error {
	return errors.New("storage unavailable")
}

func (failingStorage) Delete(ctx context.Context, key string) error {
	return errors.New("storage unavailable")
}
