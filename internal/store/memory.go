package store

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/jpalmerr/summitcheckin/internal/storage"
)

// subscriberBuffer is the channel buffer handed to each subscriber.
const subscriberBuffer = 100

// MemoryStore is the in-memory implementation of [Store].
//
// MemoryStore owns exactly one [State]. Every check-in runs under a single
// lock: apply, serialize, save to the configured [KV], then fan the new
// snapshot out to subscribers. Readers never observe a half-applied
// check-in, and subscribers receive snapshots in check-in order.
//
// Subscribers receive updates via buffered channels (buffer size 100).
// Sends are non-blocking; if a subscriber's buffer is full, the snapshot is
// dropped for that subscriber.
type MemoryStore struct {
	mu     sync.RWMutex
	state  *State
	goal   int
	kv     KV
	logger *slog.Logger

	subscribers map[chan Snapshot]struct{}
	subMu       sync.RWMutex
}

// NewMemoryStore creates an empty store that measures progress against goal.
//
// kv may be nil, in which case nothing is persisted. logger may be nil, in
// which case [slog.Default] is used. Call [MemoryStore.Load] to restore a
// previously saved state.
func NewMemoryStore(goal int, kv KV, logger *slog.Logger) *MemoryStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &MemoryStore{
		state:       NewState(),
		goal:        goal,
		kv:          kv,
		logger:      logger,
		subscribers: make(map[chan Snapshot]struct{}),
	}
}

// Load replaces the in-memory state with the one saved under [StorageKey].
//
// Load never fails: a missing key, a read error or corrupt data all leave
// the store with the empty state. Read and parse problems are logged.
func (m *MemoryStore) Load(ctx context.Context) {
	if m.kv == nil {
		return
	}

	raw, err := m.kv.Get(ctx, StorageKey)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			m.logger.Debug("no saved state", "key", StorageKey)
		} else {
			m.logger.Error("failed to read saved state", "key", StorageKey, "error", err)
		}
		return
	}

	st := Deserialize(raw, m.logger)

	m.mu.Lock()
	m.state = st
	m.mu.Unlock()

	m.logger.Info("saved state restored",
		"total_attendees", st.TotalAttendees,
		"check_ins", len(st.CheckIns),
	)
}

// CheckIn implements [Store].
//
// A save failure is logged and does not undo the check-in; the next
// successful save writes the full state again.
func (m *MemoryStore) CheckIn(ctx context.Context, name string, team Team) (CheckInResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec, msg, err := m.state.ApplyCheckIn(name, team)
	if err != nil {
		return CheckInResult{}, err
	}

	m.saveLocked(ctx)

	snap := m.state.Snapshot(m.goal)
	m.notifySubscribers(snap)

	return CheckInResult{Attendee: rec, Message: msg, Snapshot: snap}, nil
}

// saveLocked writes the serialized state. Caller must hold m.mu.
func (m *MemoryStore) saveLocked(ctx context.Context) {
	if m.kv == nil {
		return
	}

	raw, err := m.state.Serialize()
	if err != nil {
		m.logger.Error("failed to serialize state", "error", err)
		return
	}
	if err := m.kv.Put(ctx, StorageKey, raw); err != nil {
		m.logger.Error("failed to save state", "key", StorageKey, "error", err)
	}
}

// Snapshot implements [Store].
func (m *MemoryStore) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state.Snapshot(m.goal)
}

// State returns a deep copy of the current state.
func (m *MemoryStore) State() *State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state.Clone()
}

// Goal returns the attendance goal progress is measured against.
func (m *MemoryStore) Goal() int {
	return m.goal
}

// Subscribe creates a new subscription and returns a channel for receiving snapshots.
//
// The returned channel has a buffer of 100 messages. If the buffer fills
// (slow consumer), new snapshots are dropped for this subscriber.
//
// Caller must call [MemoryStore.Unsubscribe] when done to prevent resource leaks.
func (m *MemoryStore) Subscribe() <-chan Snapshot {
	ch := make(chan Snapshot, subscriberBuffer)

	m.subMu.Lock()
	m.subscribers[ch] = struct{}{}
	m.subMu.Unlock()

	return ch
}

// Unsubscribe removes a subscription and closes its channel.
//
// Safe to call multiple times or with an unknown channel.
func (m *MemoryStore) Unsubscribe(ch <-chan Snapshot) {
	m.subMu.Lock()
	defer m.subMu.Unlock()

	for subCh := range m.subscribers {
		if subCh == ch {
			delete(m.subscribers, subCh)
			close(subCh)
			break
		}
	}
}

// notifySubscribers sends snap to every subscriber without blocking.
func (m *MemoryStore) notifySubscribers(snap Snapshot) {
	m.subMu.RLock()
	defer m.subMu.RUnlock()

	for ch := range m.subscribers {
		select {
		case ch <- snap:
		default:
			// subscriber is slow, drop the message
		}
	}
}
