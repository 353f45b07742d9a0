package cmd

import (
	"github.com/inovacc/fuelr/internal/model"
	"github.com/inovacc/fuelr/internal/store"
)

// MockStore is a mock implementation of store.Store for testing.
type MockStore struct {
	// Config data
	Config *model.Config

	// Refresh history, newest first
	Refreshes []model.RefreshRecord

	// Error injection
	PingErr          error
	GetConfigErr     error
	SaveConfigErr    error
	SaveRefreshErr   error
	LastRefreshErr   error
	ListRefreshesErr error
	CloseErr         error

	// Call tracking
	SaveConfigCalled  bool
	SavedConfig       *model.Config
	SaveRefreshCalled bool
	SavedRefresh      *model.RefreshRecord
	CloseCalled       bool
}

// NewMockStore creates a new MockStore with default values.
func NewMockStore() *MockStore {
	return &MockStore{}
}

// Ping implements store.Store.
func (m *MockStore) Ping() error {
	return m.PingErr
}

// GetConfig implements store.Store. Like the real store it hands out the
// defaults when nothing was saved yet.
func (m *MockStore) GetConfig() (*model.Config, error) {
	if m.GetConfigErr != nil {
		return nil, m.GetConfigErr
	}

	if m.Config == nil {
		cfg := model.DefaultConfig()
		return &cfg, nil
	}

	cfg := *m.Config

	return &cfg, nil
}

// SaveConfig implements store.Store.
func (m *MockStore) SaveConfig(cfg *model.Config) error {
	m.SaveConfigCalled = true
	m.SavedConfig = cfg

	if m.SaveConfigErr != nil {
		return m.SaveConfigErr
	}

	m.Config = cfg

	return nil
}

// SaveRefresh implements store.Store.
func (m *MockStore) SaveRefresh(rec *model.RefreshRecord) error {
	m.SaveRefreshCalled = true
	m.SavedRefresh = rec

	if m.SaveRefreshErr != nil {
		return m.SaveRefreshErr
	}

	m.Refreshes = append([]model.RefreshRecord{*rec}, m.Refreshes...)

	return nil
}

// LastRefresh implements store.Store.
func (m *MockStore) LastRefresh() (*model.RefreshRecord, error) {
	if m.LastRefreshErr != nil {
		return nil, m.LastRefreshErr
	}

	if len(m.Refreshes) == 0 {
		return nil, nil
	}

	rec := m.Refreshes[0]

	return &rec, nil
}

// ListRefreshes implements store.Store.
func (m *MockStore) ListRefreshes(limit int) ([]model.RefreshRecord, error) {
	if m.ListRefreshesErr != nil {
		return nil, m.ListRefreshesErr
	}

	if limit <= 0 || limit > len(m.Refreshes) {
		limit = len(m.Refreshes)
	}

	out := make([]model.RefreshRecord, limit)
	copy(out, m.Refreshes[:limit])

	return out, nil
}

// Close implements store.Store.
func (m *MockStore) Close() error {
	m.CloseCalled = true

	return m.CloseErr
}

// withMockStore sets up the storeFactory to return the mock store,
// and returns a cleanup function to restore the original factory.
func withMockStore(mock *MockStore) func() {
	original := storeFactory
	storeFactory = func() (store.Store, error) {
		return mock, nil
	}

	return func() {
		storeFactory = original
	}
}

// withMockStoreError sets up the storeFactory to return an error.
func withMockStoreError(err error) func() {
	original := storeFactory
	storeFactory = func() (store.Store, error) {
		return nil, err
	}

	return func() {
		storeFactory = original
	}
}
