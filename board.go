package summitcheckin

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/google/uuid"

	"github.com/jpalmerr/summitcheckin/dashboard"
	"github.com/jpalmerr/summitcheckin/internal/server"
	"github.com/jpalmerr/summitcheckin/internal/storage"
	"github.com/jpalmerr/summitcheckin/internal/store"
)

const (
	defaultPort = 8080
	defaultGoal = 50
)

// Board is the check-in board: one attendance state, its persistence and
// the dashboard that renders it.
//
// Board is created using [New] with functional options and served with
// [Board.Start]. Check-ins can arrive through the dashboard form or
// programmatically through [Board.SubmitCheckIn]; both paths share the same
// state, persistence and callbacks.
//
// The typical lifecycle is:
//
//	b, err := summitcheckin.New(summitcheckin.WithGoal(100))
//	if err != nil {
//	    slog.Error("failed to create board", "error", err)
//	    os.Exit(1)
//	}
//
//	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
//	defer cancel()
//
//	b.Start(ctx) // blocks until context cancelled
type Board struct {
	title  string
	port   int
	goal   int
	logger *slog.Logger
	store  *callbackStore
}

// New creates a [Board] with the given options and restores the state saved
// in the configured storage.
//
// Defaults:
//   - Port: 8080
//   - Goal: 50
//   - Storage: in-memory (nothing survives a restart)
//
// A missing or unreadable saved state is not an error; the board starts
// empty and the problem is logged. Returns an error if any option is invalid.
func New(opts ...Option) (*Board, error) {
	cfg := &boardConfig{
		port: defaultPort,
		goal: defaultGoal,
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if cfg.port < 1 || cfg.port > 65535 {
		return nil, fmt.Errorf("port must be between 1 and 65535, got %d", cfg.port)
	}
	if cfg.goal < 1 {
		return nil, fmt.Errorf("goal must be positive, got %d", cfg.goal)
	}

	logger := cfg.logger
	if logger == nil {
		logger = slog.Default()
	}

	kv := cfg.storage
	if kv == nil {
		kv = storage.NewMemory()
	}

	ms := store.NewMemoryStore(cfg.goal, kv, logger)
	ms.Load(context.Background())

	return &Board{
		title:  cfg.title,
		port:   cfg.port,
		goal:   cfg.goal,
		logger: logger,
		store: &callbackStore{
			MemoryStore: ms,
			callbacks:   cfg.checkInCallbacks,
			logger:      logger,
		},
	}, nil
}

// Start serves the dashboard until the context is cancelled.
//
// Start is a blocking call. The dashboard is available at
// http://localhost:<port> and the JSON API under /api. Returns nil on
// graceful shutdown, or an error if the HTTP server fails to start.
func (b *Board) Start(ctx context.Context) error {
	snap := b.store.Snapshot()
	b.logger.Info("check-in board starting",
		"goal", b.goal,
		"total_attendees", snap.TotalAttendees,
	)
	b.logger.Info("dashboard available", "url", fmt.Sprintf("http://localhost:%d", b.port))

	// check if context already cancelled
	if ctx.Err() != nil {
		return nil
	}

	httpServer := server.NewServer(b.store, b.port, dashboard.Assets, b.title, b.logger)
	if err := httpServer.Start(ctx); err != nil {
		return fmt.Errorf("failed to start HTTP server: %w", err)
	}

	<-ctx.Done()
	b.logger.Info("check-in board stopped")
	return nil
}

// SubmitCheckIn records one attendee.
//
// The name is trimmed. An empty name fails with [ErrMissingName], an empty
// team with [ErrMissingTeam]; in both cases nothing changes. Team values
// outside the known set are accepted and counted as-is.
//
// On success the new state is saved, dashboard clients are updated and
// check-in callbacks run before SubmitCheckIn returns.
func (b *Board) SubmitCheckIn(ctx context.Context, name string, team Team) (CheckInResult, error) {
	return b.store.CheckIn(ctx, name, team)
}

// Snapshot returns the current read projection: counters, progress, the
// winner once the goal is reached, and the check-in list.
func (b *Board) Snapshot() Snapshot {
	return b.store.Snapshot()
}

// Winner returns the leading team, or the tie, over the known teams.
func (b *Board) Winner() Winner {
	return b.store.State().Winner()
}

// Port returns the configured HTTP port for the dashboard server.
func (b *Board) Port() int {
	return b.port
}

// Goal returns the attendance goal.
func (b *Board) Goal() int {
	return b.goal
}

// Title returns the configured dashboard title.
func (b *Board) Title() string {
	return b.title
}

// callbackStore runs check-in callbacks after every successful check-in,
// whichever path it came through.
type callbackStore struct {
	*store.MemoryStore
	callbacks []func(CheckInResult)
	logger    *slog.Logger
}

func (c *callbackStore) CheckIn(ctx context.Context, name string, team store.Team) (store.CheckInResult, error) {
	res, err := c.MemoryStore.CheckIn(ctx, name, team)
	if err != nil {
		return res, err
	}

	for _, cb := range c.callbacks {
		invokeCallbackSafe(cb, res, c.logger)
	}
	return res, nil
}

// invokeCallbackSafe calls a check-in callback with panic recovery.
// Panics are logged with a correlation id and stack but do not propagate.
func invokeCallbackSafe(cb func(CheckInResult), result CheckInResult, logger *slog.Logger) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("check-in callback panicked",
				"correlation_id", uuid.NewString(),
				"panic", fmt.Sprintf("%v", r),
				"stack", string(debug.Stack()),
				"team", result.Attendee.Team,
				"total_attendees", result.Snapshot.TotalAttendees,
			)
		}
	}()
	cb(result)
}
