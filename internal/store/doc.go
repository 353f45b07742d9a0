// Package store provides the local state storage layer for fuelr.
//
// The package defines the [Store] interface over the CLI configuration
// and the refresh history, allowing different storage backends to be used
// interchangeably. The backend is selected at build time:
//   - Default: BoltDB
//   - With -tags sqlite: SQLite via modernc.org/sqlite
//
// Use [Open] to open the store at its default location under the
// application directory:
//
//	st, err := store.Open()
//	if err != nil { ... }
//	defer st.Close()
//	cfg, err := st.GetConfig()
//
// Both backends keep JSON-encoded values and cap the refresh history at
// the 50 most recent records.
package store
