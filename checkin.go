package summitcheckin

import (
	"github.com/jpalmerr/summitcheckin/internal/storage"
	"github.com/jpalmerr/summitcheckin/internal/store"
)

// Team identifies the group an attendee checks in with.
type Team = store.Team

// Known teams, in enumeration order.
const (
	TeamWater = store.TeamWater
	TeamZero  = store.TeamZero
	TeamPower = store.TeamPower
)

// UnknownTeamLabel is shown for team values outside the known set.
const UnknownTeamLabel = store.UnknownTeamLabel

// Attendee is one check-in record.
type Attendee = store.Attendee

// CheckInResult is returned by a successful check-in.
type CheckInResult = store.CheckInResult

// Snapshot is the read projection rendered by the dashboard.
type Snapshot = store.Snapshot

// Winner is the leading team or the tie between teams.
type Winner = store.Winner

// WinnerKind distinguishes a single leader from a tie.
type WinnerKind = store.WinnerKind

// Winner kinds.
const (
	WinnerSingle = store.WinnerSingle
	WinnerTie    = store.WinnerTie
)

// ValidationError is a user-correctable check-in failure.
type ValidationError = store.ValidationError

// Validation failures of [Board.SubmitCheckIn]; match with errors.Is.
var (
	ErrMissingName = store.ErrMissingName
	ErrMissingTeam = store.ErrMissingTeam
)

// KnownTeams returns the known teams in enumeration order.
func KnownTeams() []Team {
	return store.KnownTeams()
}

// StorageKey is the key the state is saved under.
const StorageKey = store.StorageKey

// Storage is the local key-value storage the state is saved to.
type Storage = storage.Storage

// Storage drivers accepted by [OpenStorage].
const (
	DriverMemory = storage.DriverMemory
	DriverFile   = storage.DriverFile
	DriverSQLite = storage.DriverSQLite
)

// ErrNotFound is returned by Storage.Get when nothing is saved under the key.
var ErrNotFound = storage.ErrNotFound

// OpenStorage opens one of the built-in storage drivers.
//
// path is a directory for [DriverFile] and a database file for
// [DriverSQLite]; it is ignored for [DriverMemory].
func OpenStorage(driver, path string) (Storage, error) {
	return storage.Open(driver, path)
}
