package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/reliefmap/reliefmap/internal/database/testutil"
	"github.com/reliefmap/reliefmap/internal/models"
)

func newMarkerService(t *testing.T) (*MarkerService, *AuditService) {
	t.Helper()

	db := testutil.MustOpenTestDB(t, testutil.WithAutoMigrate())
	audit, err := NewAuditService(db)
	require.NoError(t, err)
	svc, err := NewMarkerService(db, audit)
	require.NoError(t, err)
	return svc, audit
}

func TestMarkerServiceReportForcesPendingStatus(t *testing.T) {
	svc, _ := newMarkerService(t)
	ctx := context.Background()

	stamped := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	svc.timeNow = func() time.Time { return stamped }

	marker := &models.MapMarker{
		Type:      "flood",
		Lat:       6.9271,
		Lng:       79.8612,
		Name:      "Kelani river overflow",
		Severity:  "high",
		Status:    models.MarkerStatusApproved, // caller tries to self-approve
		Timestamp: stamped.AddDate(-1, 0, 0),
	}

	created, err := svc.Report(ctx, marker, "alice")
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.Equal(t, models.MarkerStatusPending, created.Status)
	require.Equal(t, stamped, created.Timestamp.UTC())
	require.Equal(t, "alice", created.SubmittedBy)
}

func TestMarkerServiceReportRequiresType(t *testing.T) {
	svc, _ := newMarkerService(t)

	_, err := svc.Report(context.Background(), &models.MapMarker{Lat: 1, Lng: 2}, "alice")
	require.Error(t, err)
}

func TestMarkerServiceModerationFlow(t *testing.T) {
	svc, audit := newMarkerService(t)
	ctx := context.Background()

	marker, err := svc.Report(ctx, &models.MapMarker{Type: "shelter", Name: "Town hall"}, "bob")
	require.NoError(t, err)

	pending, err := svc.GetPending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)

	require.NoError(t, svc.Approve(ctx, marker.ID, "admin"))

	approved, err := svc.GetApproved(ctx)
	require.NoError(t, err)
	require.Len(t, approved, 1)
	require.Equal(t, marker.ID, approved[0].ID)

	pending, err = svc.GetPending(ctx)
	require.NoError(t, err)
	require.Empty(t, pending)

	// Decisions are last-write-wins: rejecting an approved marker succeeds.
	require.NoError(t, svc.Reject(ctx, marker.ID, "admin"))

	rejected, err := svc.GetRejected(ctx)
	require.NoError(t, err)
	require.Len(t, rejected, 1)

	logs, err := audit.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	actions := []string{logs[0].Action, logs[1].Action}
	require.Contains(t, actions, "marker.approved")
	require.Contains(t, actions, "marker.rejected")
}

func TestMarkerServiceDecideUnknownID(t *testing.T) {
	svc, _ := newMarkerService(t)
	ctx := context.Background()

	require.ErrorIs(t, svc.Approve(ctx, "no-such-id", "admin"), ErrMarkerNotFound)
	require.ErrorIs(t, svc.Reject(ctx, "", "admin"), ErrMarkerNotFound)
}

func TestMarkerServiceGetByUser(t *testing.T) {
	svc, _ := newMarkerService(t)
	ctx := context.Background()

	_, err := svc.Report(ctx, &models.MapMarker{Type: "flood"}, "alice")
	require.NoError(t, err)
	second, err := svc.Report(ctx, &models.MapMarker{Type: "landslide"}, "alice")
	require.NoError(t, err)
	_, err = svc.Report(ctx, &models.MapMarker{Type: "shelter"}, "bob")
	require.NoError(t, err)

	require.NoError(t, svc.Reject(ctx, second.ID, "admin"))

	mine, err := svc.GetByUser(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, mine, 2)

	// Rejected submissions stay visible on the personal dashboard.
	statuses := []string{mine[0].Status, mine[1].Status}
	require.Contains(t, statuses, models.MarkerStatusRejected)

	none, err := svc.GetByUser(ctx, "")
	require.NoError(t, err)
	require.Empty(t, none)
}
