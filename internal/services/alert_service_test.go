package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/reliefmap/reliefmap/internal/database/testutil"
	"github.com/reliefmap/reliefmap/internal/models"
)

func newAlertService(t *testing.T) *AlertService {
	t.Helper()

	db := testutil.MustOpenTestDB(t, testutil.WithAutoMigrate())
	svc, err := NewAlertService(db)
	require.NoError(t, err)
	return svc
}

func TestAlertServiceCreateDefaultsTimestamp(t *testing.T) {
	svc := newAlertService(t)
	ctx := context.Background()

	now := time.Date(2026, 7, 10, 14, 0, 0, 0, time.UTC)
	svc.timeNow = func() time.Time { return now }

	created, err := svc.Create(ctx, &models.Alert{
		Severity: "warning",
		Title:    "Heavy rainfall expected",
		Content:  "Stay clear of low-lying areas",
		Source:   "Met Department",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.Equal(t, now, created.Timestamp.UTC())
}

func TestAlertServiceCreateKeepsCallerTimestamp(t *testing.T) {
	svc := newAlertService(t)

	supplied := time.Date(2026, 7, 9, 6, 0, 0, 0, time.UTC)
	created, err := svc.Create(context.Background(), &models.Alert{
		Title:     "River level rising",
		Timestamp: supplied,
	})
	require.NoError(t, err)
	require.Equal(t, supplied, created.Timestamp.UTC())
}

func TestAlertServiceCreateRequiresTitle(t *testing.T) {
	svc := newAlertService(t)

	_, err := svc.Create(context.Background(), &models.Alert{Severity: "info"})
	require.Error(t, err)
}

func TestAlertServiceListNewestFirst(t *testing.T) {
	svc := newAlertService(t)
	ctx := context.Background()

	older := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	newer := older.Add(48 * time.Hour)

	_, err := svc.Create(ctx, &models.Alert{Title: "old", Timestamp: older})
	require.NoError(t, err)
	_, err = svc.Create(ctx, &models.Alert{Title: "new", Timestamp: newer})
	require.NoError(t, err)

	alerts, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, alerts, 2)
	require.Equal(t, "new", alerts[0].Title)
	require.Equal(t, "old", alerts[1].Title)
}

func TestAlertServiceDelete(t *testing.T) {
	svc := newAlertService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, &models.Alert{Title: "expired advisory"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	alerts, err := svc.List(ctx)
	require.NoError(t, err)
	require.Empty(t, alerts)

	require.ErrorIs(t, svc.Delete(ctx, created.ID), ErrAlertNotFound)
	require.ErrorIs(t, svc.Delete(ctx, ""), ErrAlertNotFound)
}
