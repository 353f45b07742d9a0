package model

import "time"

// RefreshRecord is one catalog refresh attempt kept in the state store.
type RefreshRecord struct {
	// UID is the unique identifier (UUID)
	UID string `json:"uid"`

	// StartedAt is when the refresh began
	StartedAt time.Time `json:"started_at"`

	// Elapsed is how long the attempt took
	Elapsed time.Duration `json:"elapsed"`

	// Pages is the number of pages that contributed records
	Pages int `json:"pages"`

	// Models is the size of the resulting snapshot
	Models int `json:"models"`

	// CacheWritten indicates the cache file was persisted
	CacheWritten bool `json:"cache_written"`

	// Error is the failure cause; empty on success
	Error string `json:"error,omitempty"`
}
