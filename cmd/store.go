package cmd

import (
	"github.com/inovacc/fuelr/internal/store"
)

// storeFactory is the function used to open the state store.
// It can be overridden in tests to return a mock store.
var storeFactory = func() (store.Store, error) {
	return store.Open()
}

// getStore returns a store.Store instance.
// In production, this opens the real on-disk store.
// In tests, storeFactory can be replaced to return a mock.
func getStore() (store.Store, error) {
	return storeFactory()
}
