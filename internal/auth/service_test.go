package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func testService() *Service {
	creds := Credentials{Email: "admin@leadcore.test", Password: "s3cret"}
	return NewService(NewMemoryRepository(), creds, time.Hour)
}

func TestLoginLogout(t *testing.T) {
	svc := testService()
	ctx := context.Background()

	sess, err := svc.Login(ctx, "admin@leadcore.test", "s3cret")
	require.NoError(t, err)
	require.NotEmpty(t, sess.Token)
	require.Equal(t, "admin@leadcore.test", sess.Email)

	got, err := svc.Current(ctx, sess.Token)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, sess.Email, got.Email)

	require.NoError(t, svc.Logout(ctx, sess.Token))
	got, err = svc.Current(ctx, sess.Token)
	require.NoError(t, err)
	require.Nil(t, got)

	// logging out twice is harmless
	require.NoError(t, svc.Logout(ctx, sess.Token))
}

func TestServiceLoginRejectsBadCredentials(t *testing.T) {
	svc := testService()
	ctx := context.Background()

	_, err := svc.Login(ctx, "admin@leadcore.test", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, "intruder@leadcore.test", "s3cret")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, "", "")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestCurrentExpiredSession(t *testing.T) {
	creds := Credentials{Email: "a@b.c", Password: "p"}
	svc := NewService(NewMemoryRepository(), creds, -time.Minute)
	ctx := context.Background()

	sess, err := svc.Login(ctx, "a@b.c", "p")
	require.NoError(t, err)

	got, err := svc.Current(ctx, sess.Token)
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestCurrentEmptyToken(t *testing.T) {
	svc := testService()
	got, err := svc.Current(context.Background(), "")
	require.NoError(t, err)
	require.Nil(t, got)
}
