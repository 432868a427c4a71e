// Package store holds the check-in state and everything derived from it.
//
// This package is internal to summitcheckin and owns the authoritative
// attendance state: the running total, per-team counts and the ordered list
// of check-ins. It has no knowledge of HTTP or of the dashboard; the server
// package only reads the projections produced here.
//
// The main components are:
//
//   - [State]: The state value with the check-in operation and derived views
//   - [Snapshot]: Read projection rendered by the dashboard after every change
//   - [Deserialize] / [State.Serialize]: The persisted JSON representation
//   - [MemoryStore]: Concurrency-safe owner of one State with pub/sub and persistence
//
// Users of the summitcheckin library should not need to interact with this
// package directly. The root package re-exports the public types.
package store
