// Package core provides the query and mutation engine for the
// life-expectancy dataset.
//
// This package contains all domain logic independent of any UI or
// transport layer: the parameterized read views (single-country trend,
// regional ranking, subregion maxima, keyword search, multi-country
// comparison series) and the validated write operations (insert, point
// update, range delete). It can be driven by web handlers, CLI tools,
// or tests without modification.
//
// # Service
//
// All operations hang off [Service], which owns the injected
// connection pool and the per-query deadline. Reads return typed row
// slices; an empty slice is a successful "no data" result, never an
// error. Writes return either a sentinel outcome ([ErrCountryUnknown],
// a [ConflictError]) or the number of affected rows, letting callers
// distinguish warnings from failures.
//
// # Error taxonomy
//
// Inputs are checked before the store is touched and fail with
// [ValidationError]. Uniqueness violations surface as [ConflictError]
// with a message that names the fix. Everything else coming back from
// the store is wrapped in [StoreError] and mapped to a generic
// user-facing message by [MapError].
package core
