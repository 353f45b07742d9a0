// Package fuel is the Gazebo Fuel catalog client.
//
// A [Client] fetches the paginated model list from a Fuel server, keeps
// the result as an in-memory snapshot and answers filter and aggregation
// queries over it. The snapshot is backed by a pretty-printed JSON cache
// file (see the cache package) that is loaded silently at construction
// and rewritten on request after a refresh.
//
// # Refresh semantics
//
// [Client.Refresh] walks {base_url}models?page=N starting at page 1 and
// stops at the first fetch error, decode error or empty page. Whatever
// accumulated up to that point is the new snapshot; the terminating cause
// is logged at debug level and not surfaced. Only an entirely empty
// accumulation is an error ([ErrEmptyCatalog]) and leaves the previously
// held snapshot in place.
//
// # Queries
//
// Query methods take an explicit snapshot so callers can layer filters;
// passing nil uses the held snapshot. Filters preserve catalog order.
// [Client.Owners] and [Client.Tags] dedup case-insensitively (first
// spelling wins) and sort case-insensitively ascending.
//
// # Concurrency
//
// A Client is not safe for concurrent use. The cache file has no lock
// either: two processes refreshing against the same path will race and
// the last writer wins. Callers that need coordination must provide it
// themselves.
package fuel
