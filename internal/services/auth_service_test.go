package services

import (
	"context"
	"testing"

	"astro-chat/config"
	astro_errors "astro-chat/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthService(repo *fakeAccountRepo) *AuthService {
	return NewAuthService(repo, &config.Config{
		JWTSecret:    "test-secret",
		JWTExpiryMin: 60,
	})
}

func TestRegisterAndLogin(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := newTestAuthService(repo)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "alice@example.com", "password123"))
	require.Equal(t, 1, repo.count())

	token, err := svc.Login(ctx, "alice@example.com", "password123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ParseAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", claims.Email)

	identity, err := svc.Validate(ctx, claims)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", identity.Email)
	assert.Equal(t, claims.AccountID, identity.AccountID.String())
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := newTestAuthService(repo)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "alice@example.com", "password123"))

	err := svc.Register(ctx, "alice@example.com", "otherpassword")
	assert.ErrorIs(t, err, astro_errors.ErrAlreadyExists)
	assert.Equal(t, 1, repo.count())
}

func TestRegisterRejectsWeakInput(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := newTestAuthService(repo)
	ctx := context.Background()

	assert.ErrorIs(t, svc.Register(ctx, "", "password123"), astro_errors.ErrInvalidInput)
	assert.ErrorIs(t, svc.Register(ctx, "alice@example.com", ""), astro_errors.ErrInvalidInput)
	assert.ErrorIs(t, svc.Register(ctx, "alice@example.com", "short"), astro_errors.ErrInvalidInput)
	assert.Equal(t, 0, repo.count())
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := newTestAuthService(repo)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "alice@example.com", "password123"))

	_, err := svc.Login(ctx, "alice@example.com", "wrongpassword")
	assert.ErrorIs(t, err, astro_errors.ErrUnauthorized)
}

func TestLoginUnknownEmail(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := newTestAuthService(repo)

	_, err := svc.Login(context.Background(), "nobody@example.com", "password123")
	assert.ErrorIs(t, err, astro_errors.ErrUnauthorized)
}

func TestParseAccessTokenRejectsGarbage(t *testing.T) {
	svc := newTestAuthService(newFakeAccountRepo())

	_, err := svc.ParseAccessToken("")
	assert.ErrorIs(t, err, astro_errors.ErrUnauthorized)

	_, err = svc.ParseAccessToken("not.a.token")
	assert.ErrorIs(t, err, astro_errors.ErrUnauthorized)
}

func TestParseAccessTokenRejectsWrongSecret(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := newTestAuthService(repo)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "alice@example.com", "password123"))
	token, err := svc.Login(ctx, "alice@example.com", "password123")
	require.NoError(t, err)

	other := NewAuthService(repo, &config.Config{JWTSecret: "different-secret", JWTExpiryMin: 60})
	_, err = other.ParseAccessToken(token)
	assert.ErrorIs(t, err, astro_errors.ErrUnauthorized)
}

func TestIdentityContextRoundTrip(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := newTestAuthService(repo)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "alice@example.com", "password123"))
	a, err := repo.GetByEmail(ctx, "alice@example.com")
	require.NoError(t, err)

	id := Identity{AccountID: a.ID, Email: a.Email}
	ctx = WithIdentityContext(ctx, id)

	got, ok := IdentityFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, id, got)

	_, ok = IdentityFromContext(context.Background())
	assert.False(t, ok)
}
