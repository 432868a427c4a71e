// Package storage provides the local key-value storage the check-in state is
// saved to.
//
// Three drivers are available through [Open]:
//
//   - "memory": process-local map, nothing survives a restart
//   - "file": one JSON file per key inside a directory
//   - "sqlite": a single key/value table in an embedded SQLite database
//
// All drivers report a missing key as [ErrNotFound] and are safe for
// concurrent use.
package storage
