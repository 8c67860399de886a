package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/reliefmap/reliefmap/internal/database/testutil"
	"github.com/reliefmap/reliefmap/internal/models"
)

func newHelpRequestService(t *testing.T) *HelpRequestService {
	t.Helper()

	db := testutil.MustOpenTestDB(t, testutil.WithAutoMigrate())
	svc, err := NewHelpRequestService(db)
	require.NoError(t, err)
	return svc
}

func TestHelpRequestServiceSubmitKeepsNeedsOrder(t *testing.T) {
	svc := newHelpRequestService(t)
	ctx := context.Background()

	created, err := svc.Submit(ctx, &models.HelpRequest{
		Name:    "Nimal",
		Phone:   "0771234567",
		Lat:     6.0535,
		Lng:     80.2210,
		Needs:   datatypes.NewJSONSlice([]string{"water", "medicine", "boat"}),
		Details: "Three families stranded on rooftops",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	listed, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	require.Equal(t, []string{"water", "medicine", "boat"}, []string(listed[0].Needs))
}

func TestHelpRequestServiceSubmitRequiresName(t *testing.T) {
	svc := newHelpRequestService(t)

	_, err := svc.Submit(context.Background(), &models.HelpRequest{Details: "anonymous plea"})
	require.Error(t, err)
}
