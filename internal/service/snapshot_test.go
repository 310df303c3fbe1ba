package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/finwell/finwell-server/internal/models"
	"github.com/sirupsen/logrus"
	logrustest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveSnapshotRecomputesNetWorth(t *testing.T) {
	stores := emptyStores()
	var inserted *models.NetWorthSnapshot
	stores.insert = func(snap *models.NetWorthSnapshot) error {
		inserted = snap
		return nil
	}
	svc := newTestService(stores)

	// Tampered net worth must be overwritten from its inputs.
	svc.SaveSnapshot(context.Background(), "owner-1", &models.NetWorthSnapshot{
		TotalAssets:      300000,
		TotalLiabilities: 120000,
		NetWorth:         999999,
	})

	require.NotNil(t, inserted)
	assert.Equal(t, 180000.0, inserted.NetWorth)
}

func TestSaveSnapshotSwallowsWriteErrors(t *testing.T) {
	stores := emptyStores()
	stores.insert = func(*models.NetWorthSnapshot) error {
		return errors.New("insert failed")
	}
	logger, hook := logrustest.NewNullLogger()
	svc := NewService(stores, logger)
	svc.now = func() time.Time { return testClock }

	svc.SaveSnapshot(context.Background(), "owner-1", &models.NetWorthSnapshot{})

	require.NotEmpty(t, hook.Entries)
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
}

func TestSaveSnapshotSkipsMissingInput(t *testing.T) {
	stores := emptyStores()
	called := false
	stores.insert = func(*models.NetWorthSnapshot) error {
		called = true
		return nil
	}
	svc := newTestService(stores)

	svc.SaveSnapshot(context.Background(), "", &models.NetWorthSnapshot{})
	svc.SaveSnapshot(context.Background(), "owner-1", nil)

	assert.False(t, called)
}

func TestHistoryWindow(t *testing.T) {
	stores := emptyStores()
	points := []models.HistoricalPoint{{NetWorth: 1000, Date: testClock.AddDate(0, -1, 0)}}
	stores.history = func() ([]models.HistoricalPoint, error) { return points, nil }
	svc := newTestService(stores)

	got, err := svc.History(context.Background(), "owner-1", 6)
	require.NoError(t, err)
	assert.Equal(t, points, got)
}
