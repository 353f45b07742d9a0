package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/inovacc/fuelr/internal/application"
	"github.com/inovacc/fuelr/internal/model"
)

// historyLimit is how many refresh records the store keeps.
const historyLimit = 50

// refreshKeyTime is a fixed-width timestamp layout so refresh keys order
// chronologically when compared as strings.
const refreshKeyTime = "2006-01-02T15:04:05.000000000Z07:00"

// Store defines the state operations used by the CLI.
type Store interface {
	Ping() error
	GetConfig() (*model.Config, error)
	SaveConfig(cfg *model.Config) error
	SaveRefresh(rec *model.RefreshRecord) error
	LastRefresh() (*model.RefreshRecord, error)
	ListRefreshes(limit int) ([]model.RefreshRecord, error)
	Close() error
}

// Open opens the state store under the application directory, creating it
// on first use. The backend is selected at build time: bbolt by default,
// SQLite with -tags sqlite.
func Open() (Store, error) {
	dir, err := application.GetApplicationDirectory()
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("creating state directory: %w", err)
	}

	return initStore(filepath.Join(dir, stateFileName))
}

func refreshKey(rec *model.RefreshRecord) string {
	return rec.StartedAt.UTC().Format(refreshKeyTime) + "/" + rec.UID
}
