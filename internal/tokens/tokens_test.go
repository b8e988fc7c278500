package tokens

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	secret := "test-secret-key-0123456789abcdef"
	raw, err := GenerateAccessToken(secret, "admin@leadcore.test", time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	v := &Verifier{Secret: secret}
	claims, err := v.Verify(context.Background(), raw)
	require.NoError(t, err)
	require.Equal(t, "admin", claims["sub"])
	require.Equal(t, "admin@leadcore.test", claims["email"])
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	raw, err := GenerateAccessToken("secret-a", "admin@leadcore.test", time.Minute)
	require.NoError(t, err)

	v := &Verifier{Secret: "secret-b"}
	_, err = v.Verify(context.Background(), raw)
	require.Error(t, err)
}

func TestVerifyRejectsExpired(t *testing.T) {
	secret := "test-secret-key-0123456789abcdef"
	raw, err := GenerateAccessToken(secret, "admin@leadcore.test", -time.Minute)
	require.NoError(t, err)

	v := &Verifier{Secret: secret}
	_, err = v.Verify(context.Background(), raw)
	require.Error(t, err)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	v := &Verifier{Secret: "whatever"}
	_, err := v.Verify(context.Background(), "not.a.jwt")
	require.Error(t, err)
}
