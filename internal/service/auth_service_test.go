package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestAuthService_RegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	svc := NewAuthService(newFakeUserRepo(), testSecret, time.Hour)

	user, err := svc.Register(ctx, "Ann", "  Ann@Example.com ", "s3cretpass")
	require.NoError(t, err)
	assert.Equal(t, "ann@example.com", user.Email)
	assert.Empty(t, user.PasswordHash)
	assert.False(t, user.ID.IsZero())

	token, loggedIn, err := svc.Login(ctx, "ann@example.com", "s3cretpass")
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)
	assert.Empty(t, loggedIn.PasswordHash)

	ownerID, err := ParseToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, user.OwnerID(), ownerID)
}

func TestAuthService_Profile(t *testing.T) {
	ctx := context.Background()
	svc := NewAuthService(newFakeUserRepo(), testSecret, time.Hour)
	user, err := svc.Register(ctx, "Ann", "ann@example.com", "s3cretpass")
	require.NoError(t, err)

	profile, err := svc.Profile(ctx, user.OwnerID())
	require.NoError(t, err)
	assert.Equal(t, "Ann", profile.Name)
	assert.Empty(t, profile.PasswordHash)

	_, err = svc.Profile(ctx, "not-hex")
	assert.ErrorIs(t, err, ErrUnauthenticated)

	_, err = svc.Profile(ctx, ownerA)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestAuthService_RegisterDuplicate(t *testing.T) {
	ctx := context.Background()
	svc := NewAuthService(newFakeUserRepo(), testSecret, time.Hour)

	_, err := svc.Register(ctx, "Ann", "ann@example.com", "s3cretpass")
	require.NoError(t, err)
	_, err = svc.Register(ctx, "Other Ann", "ANN@example.com", "anotherpass")
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestAuthService_RegisterValidation(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), testSecret, time.Hour)
	_, err := svc.Register(context.Background(), " ", "ann@example.com", "pw")
	assert.ErrorIs(t, err, ErrValidationFailed)
}

func TestAuthService_LoginFailures(t *testing.T) {
	ctx := context.Background()
	svc := NewAuthService(newFakeUserRepo(), testSecret, time.Hour)
	_, err := svc.Register(ctx, "Ann", "ann@example.com", "s3cretpass")
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "ann@example.com", "wrong")
	assert.ErrorIs(t, err, ErrAuthenticationFailed)

	_, _, err = svc.Login(ctx, "nobody@example.com", "s3cretpass")
	assert.ErrorIs(t, err, ErrAuthenticationFailed)

	_, _, err = svc.Login(ctx, "", "")
	assert.ErrorIs(t, err, ErrValidationFailed)
}

func TestAuthService_RepositoryErrorSurfaces(t *testing.T) {
	repo := newFakeUserRepo()
	repo.err = errBoom
	svc := NewAuthService(repo, testSecret, time.Hour)

	_, err := svc.Register(context.Background(), "Ann", "ann@example.com", "s3cretpass")
	assert.ErrorIs(t, err, errBoom)
}

func TestParseToken_Rejects(t *testing.T) {
	ctx := context.Background()
	svc := NewAuthService(newFakeUserRepo(), testSecret, time.Hour)
	_, err := svc.Register(ctx, "Ann", "ann@example.com", "s3cretpass")
	require.NoError(t, err)
	token, _, err := svc.Login(ctx, "ann@example.com", "s3cretpass")
	require.NoError(t, err)

	_, err = ParseToken(token, "other-secret")
	assert.Error(t, err)

	_, err = ParseToken("not.a.token", testSecret)
	assert.Error(t, err)
}

func TestNewAuthService_PanicsWithoutSecret(t *testing.T) {
	assert.Panics(t, func() { NewAuthService(newFakeUserRepo(), "", time.Hour) })
}
