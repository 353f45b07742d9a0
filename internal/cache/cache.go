// Package cache stores the Fuel catalog snapshot as a pretty-printed JSON
// file on local disk.
package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/inovacc/fuelr/internal/model"
)

// ErrNoPath means no cache file location could be resolved.
var ErrNoPath = errors.New("no cache path")

const (
	vendorDir = "open-robotics"
	appDir    = "gz-fuel"
	fileName  = "model_cache.json"
)

// DefaultPath returns the platform location of the catalog cache file,
// e.g. ~/.cache/open-robotics/gz-fuel/model_cache.json on Linux.
func DefaultPath() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("resolve user cache dir: %w", err)
	}

	return filepath.Join(base, vendorDir, appDir, fileName), nil
}

// Load reads and decodes the catalog snapshot at path.
func Load(path string) ([]model.FuelModel, error) {
	if path == "" {
		return nil, ErrNoPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read cache: %w", err)
	}

	var models []model.FuelModel
	if err := json.Unmarshal(data, &models); err != nil {
		return nil, fmt.Errorf("decode cache: %w", err)
	}

	return models, nil
}

// LastModified returns the modification time of the cache file.
func LastModified(path string) (time.Time, error) {
	if path == "" {
		return time.Time{}, ErrNoPath
	}

	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, fmt.Errorf("stat cache: %w", err)
	}

	return info.ModTime(), nil
}

// Persist writes the snapshot to path as pretty-printed JSON.
// Content is written atomically (temp file then rename).
func Persist(path string, models []model.FuelModel) error {
	if path == "" {
		return ErrNoPath
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}

	data, err := json.MarshalIndent(models, "", "  ")
	if err != nil {
		return fmt.Errorf("encode cache: %w", err)
	}

	tempPath := path + ".tmp"
	if err := os.WriteFile(tempPath, data, 0644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}
