package cmd

import (
	"testing"
	"time"

	"github.com/inovacc/fuelr/internal/model"
)

func TestRunStatus(t *testing.T) {
	resetGlobalFlags(t)

	statusHistory = 0

	cachePath := writeCatalogCache(t)

	mock := NewMockStore()
	mock.Config = &model.Config{CachePath: cachePath, RefreshThreshold: "24h"}
	mock.Refreshes = []model.RefreshRecord{
		{
			UID:          "rec-2",
			StartedAt:    time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC),
			Elapsed:      2 * time.Second,
			Pages:        25,
			Models:       1247,
			CacheWritten: true,
		},
		{
			UID:       "rec-1",
			StartedAt: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
			Elapsed:   time.Second,
			Error:     "no models fetched",
		},
	}

	cleanup := withMockStore(mock)
	defer cleanup()

	if err := runStatus(statusCmd, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	statusHistory = 10

	if err := runStatus(statusCmd, nil); err != nil {
		t.Fatalf("unexpected error with history: %v", err)
	}
}

func TestRunStatus_NoCacheNoHistory(t *testing.T) {
	resetGlobalFlags(t)

	statusHistory = 5

	mock := NewMockStore()

	cleanup := withMockStore(mock)
	defer cleanup()

	if err := runStatus(statusCmd, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
