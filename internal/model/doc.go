// Package model defines the data structures used throughout fuelr.
//
// This package contains the core domain models shared by the catalog
// client, the cache file store, the state store and the CLI.
//
// # FuelModel
//
// The [FuelModel] struct is one model record in the wire format served by
// the Fuel catalog API. Its JSON tags are the wire contract: the server
// emits createdAt/updatedAt in camelCase and everything else in
// snake_case, and tags/categories may be absent entirely.
//
// # Config
//
// The [Config] struct holds the CLI configuration persisted in the state
// store:
//
//	type Config struct {
//	    BaseURL          string // Fuel server base URL ("" = default)
//	    Token            string // Private-token header value
//	    CachePath        string // catalog cache file override
//	    RefreshThreshold string // staleness threshold ("" = never stale)
//	    Output           string // default list output format
//	}
//
// # RefreshRecord
//
// The [RefreshRecord] struct is one refresh attempt kept in the refresh
// history, success or failure.
package model
