package summitcheckin

import (
	"errors"
	"log/slog"
)

// boardConfig holds mutable state during Board construction.
type boardConfig struct {
	title            string
	port             int
	goal             int
	logger           *slog.Logger
	storage          Storage
	checkInCallbacks []func(CheckInResult)
}

// Option is a function that configures a [Board] during construction.
//
// Options return an error if validation fails.
//
// Built-in options: [WithPort], [WithGoal], [WithTitle], [WithLogger],
// [WithStorage], [WithCheckInCallback].
type Option func(*boardConfig) error

// WithPort sets the HTTP port for the dashboard server.
//
// Defaults to 8080 if not specified. Returns an error if the port is outside
// the valid range (1-65535).
func WithPort(port int) Option {
	return func(cfg *boardConfig) error {
		if port < 1 || port > 65535 {
			return errors.New("port must be between 1 and 65535")
		}
		cfg.port = port
		return nil
	}
}

// WithGoal sets the attendance goal progress is measured against.
//
// Defaults to 50. Once the total reaches the goal the dashboard shows the
// celebration message. Returns an error if goal is zero or negative.
//
// Example:
//
//	b, err := summitcheckin.New(
//	    summitcheckin.WithGoal(120),
//	)
func WithGoal(goal int) Option {
	return func(cfg *boardConfig) error {
		if goal <= 0 {
			return errors.New("goal must be positive")
		}
		cfg.goal = goal
		return nil
	}
}

// WithTitle sets the dashboard title displayed in the browser tab and header.
//
// If not specified, defaults to "Summit Check-In".
func WithTitle(title string) Option {
	return func(cfg *boardConfig) error {
		cfg.title = title
		return nil
	}
}

// WithLogger sets a custom [slog.Logger] for the Board.
//
// If not specified, [slog.Default] is used. Returns an error if the logger
// is nil.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *boardConfig) error {
		if logger == nil {
			return errors.New("logger cannot be nil")
		}
		cfg.logger = logger
		return nil
	}
}

// WithStorage sets where the state is saved and restored from.
//
// The Board does not close the storage; the caller owns it. Use
// [OpenStorage] for the built-in drivers. If not specified, the state lives
// in memory only.
//
// Example:
//
//	st, err := summitcheckin.OpenStorage(summitcheckin.DriverSQLite, "checkins.db")
//	if err != nil {
//	    return err
//	}
//	defer st.Close()
//
//	b, err := summitcheckin.New(summitcheckin.WithStorage(st))
//
// Returns an error if the storage is nil.
func WithStorage(st Storage) Option {
	return func(cfg *boardConfig) error {
		if st == nil {
			return errors.New("storage cannot be nil")
		}
		cfg.storage = st
		return nil
	}
}

// WithCheckInCallback registers a function to be called after every
// successful check-in.
//
// The callback receives the new record, the welcome message and the
// snapshot taken right after the check-in. Multiple callbacks run in
// registration order. Callbacks run synchronously on the check-in path, so
// they must be non-blocking; panics are recovered and logged.
//
// Nil callbacks are silently ignored.
func WithCheckInCallback(cb func(CheckInResult)) Option {
	return func(cfg *boardConfig) error {
		if cb == nil {
			return nil
		}
		cfg.checkInCallbacks = append(cfg.checkInCallbacks, cb)
		return nil
	}
}
