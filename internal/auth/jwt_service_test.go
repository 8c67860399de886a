package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/reliefmap/reliefmap/internal/models"
)

func TestJWTServiceRoundTrip(t *testing.T) {
	svc, err := NewJWTService(JWTConfig{
		Secret: "test-secret",
		Issuer: "reliefmap-test",
	})
	require.NoError(t, err)

	token, err := svc.GenerateAccessToken(AccessTokenInput{
		UserID:    "user-1",
		Username:  "alice",
		Role:      models.RoleAdmin,
		SessionID: "session-1",
	})
	require.NoError(t, err)

	claims, err := svc.ValidateAccessToken(token)
	require.NoError(t, err)
	require.Equal(t, "user-1", claims.UserID)
	require.Equal(t, "alice", claims.Username)
	require.Equal(t, models.RoleAdmin, claims.Role)
	require.Equal(t, "session-1", claims.SessionID)
	require.Equal(t, "reliefmap-test", claims.Issuer)
}

func TestJWTServiceRequiresSecret(t *testing.T) {
	_, err := NewJWTService(JWTConfig{})
	require.Error(t, err)
}

func TestJWTServiceRequiresUserID(t *testing.T) {
	svc, err := NewJWTService(JWTConfig{Secret: "test-secret"})
	require.NoError(t, err)

	_, err = svc.GenerateAccessToken(AccessTokenInput{Username: "alice"})
	require.Error(t, err)
}

func TestJWTServiceRejectsExpiredToken(t *testing.T) {
	issued := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := issued

	svc, err := NewJWTService(JWTConfig{
		Secret:         "test-secret",
		AccessTokenTTL: time.Minute,
		Clock:          func() time.Time { return clock },
	})
	require.NoError(t, err)

	token, err := svc.GenerateAccessToken(AccessTokenInput{UserID: "user-1"})
	require.NoError(t, err)

	clock = issued.Add(2 * time.Minute)
	_, err = svc.ValidateAccessToken(token)
	require.Error(t, err)
}

func TestJWTServiceRejectsForeignSignature(t *testing.T) {
	issuer, err := NewJWTService(JWTConfig{Secret: "secret-a"})
	require.NoError(t, err)
	verifier, err := NewJWTService(JWTConfig{Secret: "secret-b"})
	require.NoError(t, err)

	token, err := issuer.GenerateAccessToken(AccessTokenInput{UserID: "user-1"})
	require.NoError(t, err)

	_, err = verifier.ValidateAccessToken(token)
	require.Error(t, err)
}
