package maintenance

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	iauth "github.com/reliefmap/reliefmap/internal/auth"
	"github.com/reliefmap/reliefmap/internal/database/testutil"
	"github.com/reliefmap/reliefmap/internal/models"
	"github.com/reliefmap/reliefmap/internal/services"
)

func TestCleanerRunOnce(t *testing.T) {
	db := testutil.MustOpenTestDB(t, testutil.WithAutoMigrate())
	now := time.Date(2026, 2, 10, 15, 0, 0, 0, time.UTC)

	jwtSvc, err := iauth.NewJWTService(iauth.JWTConfig{Secret: "test-secret"})
	require.NoError(t, err)
	sessions, err := iauth.NewSessionService(db, jwtSvc, iauth.SessionConfig{})
	require.NoError(t, err)
	audit, err := services.NewAuditService(db)
	require.NoError(t, err)

	user := models.User{Username: "alice", Password: "hashed", Role: models.RoleMember}
	require.NoError(t, db.Create(&user).Error)

	expired := models.Session{
		UserID:       user.ID,
		RefreshToken: "expired-token",
		ExpiresAt:    now.Add(-time.Hour),
		LastUsedAt:   now.Add(-2 * time.Hour),
	}
	active := models.Session{
		UserID:       user.ID,
		RefreshToken: "active-token",
		ExpiresAt:    now.Add(time.Hour),
		LastUsedAt:   now,
	}
	require.NoError(t, db.Create(&expired).Error)
	require.NoError(t, db.Create(&active).Error)

	oldLog := models.AuditLog{
		Action:    "marker.approved",
		Result:    "success",
		CreatedAt: now.AddDate(0, 0, -120),
	}
	freshLog := models.AuditLog{
		Action:    "marker.rejected",
		Result:    "success",
		CreatedAt: now,
	}
	require.NoError(t, db.Create(&oldLog).Error)
	require.NoError(t, db.Create(&freshLog).Error)

	cleaner := NewCleaner(sessions, audit, WithNow(func() time.Time { return now }))
	require.NoError(t, cleaner.RunOnce(context.Background()))

	var sessionCount int64
	require.NoError(t, db.Model(&models.Session{}).Count(&sessionCount).Error)
	require.Equal(t, int64(1), sessionCount)

	var auditCount int64
	require.NoError(t, db.Model(&models.AuditLog{}).Count(&auditCount).Error)
	require.Equal(t, int64(1), auditCount)
}

func TestCleanerStartAndStop(t *testing.T) {
	db := testutil.MustOpenTestDB(t, testutil.WithAutoMigrate())

	jwtSvc, err := iauth.NewJWTService(iauth.JWTConfig{Secret: "test-secret"})
	require.NoError(t, err)
	sessions, err := iauth.NewSessionService(db, jwtSvc, iauth.SessionConfig{})
	require.NoError(t, err)
	audit, err := services.NewAuditService(db)
	require.NoError(t, err)

	cleaner := NewCleaner(sessions, audit)
	require.NoError(t, cleaner.Start())

	stopCtx := cleaner.Stop()
	select {
	case <-stopCtx.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("scheduler did not stop in time")
	}
}

func TestCleanerWithoutDependencies(t *testing.T) {
	cleaner := NewCleaner(nil, nil)
	require.NoError(t, cleaner.Start())
	require.NoError(t, cleaner.RunOnce(context.Background()))
}
