package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/inovacc/fuelr/internal/model"
)

func resetModelsFlags(t *testing.T) {
	t.Helper()

	resetGlobalFlags(t)

	modelsOwner = ""
	modelsTag = ""
	modelsPrivate = false
	modelsPublic = false
	modelsOutput = ""
}

// writeCatalogCache drops a cache file with a small fixed catalog and
// returns its path.
func writeCatalogCache(t *testing.T) string {
	t.Helper()

	payload := `[
  {"name": "Shelf", "owner": "acme", "tags": ["warehouse"], "private": false},
  {"name": "Gripper", "owner": "acme", "tags": ["arm"], "private": true},
  {"name": "Chair", "owner": "OpenRobotics", "tags": [], "private": false}
]`

	path := filepath.Join(t.TempDir(), "model_cache.json")
	if err := os.WriteFile(path, []byte(payload), 0644); err != nil {
		t.Fatal(err)
	}

	return path
}

func TestRunModels_EmptyCache(t *testing.T) {
	resetModelsFlags(t)

	mock := NewMockStore()
	mock.Config = &model.Config{CachePath: filepath.Join(t.TempDir(), "model_cache.json")}

	cleanup := withMockStore(mock)
	defer cleanup()

	if err := runModels(modelsCmd, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRunModels_OutputFormats(t *testing.T) {
	resetModelsFlags(t)

	cachePath := writeCatalogCache(t)

	mock := NewMockStore()
	mock.Config = &model.Config{CachePath: cachePath}

	cleanup := withMockStore(mock)
	defer cleanup()

	for _, format := range []string{model.OutputTable, model.OutputJSON, model.OutputCSV} {
		modelsOutput = format

		if err := runModels(modelsCmd, nil); err != nil {
			t.Errorf("output %s: unexpected error: %v", format, err)
		}
	}

	modelsOutput = "yaml"

	if err := runModels(modelsCmd, nil); err == nil {
		t.Error("expected an error for an unknown output format")
	}
}

func TestRunModels_Filters(t *testing.T) {
	resetModelsFlags(t)

	cachePath := writeCatalogCache(t)

	mock := NewMockStore()
	mock.Config = &model.Config{CachePath: cachePath}

	cleanup := withMockStore(mock)
	defer cleanup()

	modelsOwner = "acme"
	modelsTag = "arm"
	modelsPrivate = true

	if err := runModels(modelsCmd, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRunModels_PrivatePublicExclusive(t *testing.T) {
	resetModelsFlags(t)

	mock := NewMockStore()

	cleanup := withMockStore(mock)
	defer cleanup()

	modelsPrivate = true
	modelsPublic = true

	if err := runModels(modelsCmd, nil); err == nil {
		t.Fatal("expected --private and --public together to fail")
	}
}

func TestRunOwnersAndTags(t *testing.T) {
	resetGlobalFlags(t)

	ownersOutput = ""
	tagsOutput = ""

	cachePath := writeCatalogCache(t)

	mock := NewMockStore()
	mock.Config = &model.Config{CachePath: cachePath}

	cleanup := withMockStore(mock)
	defer cleanup()

	if err := runOwners(ownersCmd, nil); err != nil {
		t.Errorf("owners: unexpected error: %v", err)
	}

	if err := runTags(tagsCmd, nil); err != nil {
		t.Errorf("tags: unexpected error: %v", err)
	}

	ownersOutput = model.OutputJSON
	tagsOutput = model.OutputCSV

	if err := runOwners(ownersCmd, nil); err != nil {
		t.Errorf("owners json: unexpected error: %v", err)
	}

	if err := runTags(tagsCmd, nil); err != nil {
		t.Errorf("tags csv: unexpected error: %v", err)
	}
}
