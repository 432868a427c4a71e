package store

import "context"

// CheckInResult is what a successful check-in hands back to the caller.
type CheckInResult struct {
	// Attendee is the record that was appended.
	Attendee Attendee

	// Message is the welcome message for the form.
	Message string

	// Snapshot is the projection right after the check-in.
	Snapshot Snapshot
}

// Store defines the operations the dashboard server needs.
//
// Store implementations must be safe for concurrent access. The pub/sub
// mechanism pushes a fresh [Snapshot] to connected clients after every
// check-in (e.g., via Server-Sent Events).
type Store interface {
	// CheckIn validates and records one attendee, then persists the state.
	// Validation failures are returned as *ValidationError and change nothing.
	CheckIn(ctx context.Context, name string, team Team) (CheckInResult, error)

	// Snapshot returns the current read projection.
	Snapshot() Snapshot

	// Subscribe returns a channel that receives a snapshot after each check-in.
	// The returned channel has a buffer; slow consumers may miss updates.
	// Caller must call Unsubscribe when done to prevent resource leaks.
	Subscribe() <-chan Snapshot

	// Unsubscribe removes a subscription and closes the channel.
	// Safe to call with a channel that was already unsubscribed.
	Unsubscribe(ch <-chan Snapshot)
}

// KV is the local key-value storage the serialized state is written to.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
}
