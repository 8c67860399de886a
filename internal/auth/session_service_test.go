package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/reliefmap/reliefmap/internal/database/testutil"
	"github.com/reliefmap/reliefmap/internal/models"
)

func newSessionService(t *testing.T, cfg SessionConfig) (*SessionService, *gorm.DB) {
	t.Helper()

	db := testutil.MustOpenTestDB(t, testutil.WithAutoMigrate())
	jwtSvc, err := NewJWTService(JWTConfig{Secret: "test-secret"})
	require.NoError(t, err)
	svc, err := NewSessionService(db, jwtSvc, cfg)
	require.NoError(t, err)
	return svc, db
}

func createTestUser(t *testing.T, db *gorm.DB, username string, role models.Role) *models.User {
	t.Helper()

	user := &models.User{Username: username, Password: "hashed", Role: role}
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestSessionServiceCreateSession(t *testing.T) {
	svc, db := newSessionService(t, SessionConfig{})
	user := createTestUser(t, db, "alice", models.RoleMember)

	pair, session, err := svc.CreateSession(user, SessionMetadata{IPAddress: "10.0.0.1", UserAgent: "test-agent"})
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	require.Equal(t, user.ID, session.UserID)
	require.Equal(t, "10.0.0.1", session.IPAddress)

	claims, err := svc.jwt.ValidateAccessToken(pair.AccessToken)
	require.NoError(t, err)
	require.Equal(t, user.ID, claims.UserID)
	require.Equal(t, session.ID, claims.SessionID)
}

func TestSessionServiceRefreshRotatesToken(t *testing.T) {
	svc, db := newSessionService(t, SessionConfig{})
	user := createTestUser(t, db, "alice", models.RoleMember)

	pair, session, err := svc.CreateSession(user, SessionMetadata{})
	require.NoError(t, err)

	newPair, refreshed, err := svc.RefreshSession(pair.RefreshToken)
	require.NoError(t, err)
	require.Equal(t, session.ID, refreshed.ID)
	require.NotEqual(t, pair.RefreshToken, newPair.RefreshToken)

	claims, err := svc.jwt.ValidateAccessToken(newPair.AccessToken)
	require.NoError(t, err)
	require.Equal(t, "alice", claims.Username)

	// The old refresh token is no longer usable.
	_, _, err = svc.RefreshSession(pair.RefreshToken)
	require.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionServiceRefreshExpired(t *testing.T) {
	clock := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	svc, db := newSessionService(t, SessionConfig{
		RefreshTokenTTL: time.Hour,
		Clock:           func() time.Time { return clock },
	})
	user := createTestUser(t, db, "alice", models.RoleMember)

	pair, _, err := svc.CreateSession(user, SessionMetadata{})
	require.NoError(t, err)

	svc.now = func() time.Time { return clock.Add(2 * time.Hour) }
	_, _, err = svc.RefreshSession(pair.RefreshToken)
	require.ErrorIs(t, err, ErrSessionExpired)
}

func TestSessionServiceRevoke(t *testing.T) {
	svc, db := newSessionService(t, SessionConfig{})
	user := createTestUser(t, db, "alice", models.RoleMember)

	pair, session, err := svc.CreateSession(user, SessionMetadata{})
	require.NoError(t, err)

	require.NoError(t, svc.RevokeSession(session.ID))

	_, _, err = svc.RefreshSession(pair.RefreshToken)
	require.ErrorIs(t, err, ErrSessionRevoked)

	// Revoking twice reports not found.
	require.ErrorIs(t, svc.RevokeSession(session.ID), ErrSessionNotFound)
}

func TestSessionServicePurgeExpired(t *testing.T) {
	clock := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	svc, db := newSessionService(t, SessionConfig{
		RefreshTokenTTL: time.Hour,
		Clock:           func() time.Time { return clock },
	})
	user := createTestUser(t, db, "alice", models.RoleMember)

	_, _, err := svc.CreateSession(user, SessionMetadata{})
	require.NoError(t, err)

	removed, err := svc.PurgeExpired(clock.Add(2 * time.Hour))
	require.NoError(t, err)
	require.Equal(t, int64(1), removed)

	var count int64
	require.NoError(t, db.Model(&models.Session{}).Count(&count).Error)
	require.Zero(t, count)
}
