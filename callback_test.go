package summitcheckin

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

func TestWithCheckInCallback_InvokedOnCheckIn(t *testing.T) {
	var got []CheckInResult
	b, err := New(
		WithLogger(testLogger()),
		WithCheckInCallback(func(r CheckInResult) {
			got = append(got, r)
		}),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if _, err := b.SubmitCheckIn(context.Background(), "Ada", TeamZero); err != nil {
		t.Fatalf("SubmitCheckIn() error = %v", err)
	}

	if len(got) != 1 {
		t.Fatalf("callback invoked %d times, want 1", len(got))
	}
	if got[0].Attendee.Name != "Ada" || got[0].Snapshot.TotalAttendees != 1 {
		t.Errorf("callback received %+v", got[0])
	}
	if got[0].Message != "Welcome, Ada! You checked in with Team Net Zero." {
		t.Errorf("Message = %q", got[0].Message)
	}
}

func TestWithCheckInCallback_NotInvokedOnValidationError(t *testing.T) {
	calls := 0
	b, err := New(
		WithLogger(testLogger()),
		WithCheckInCallback(func(CheckInResult) { calls++ }),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	_, _ = b.SubmitCheckIn(context.Background(), "", TeamWater)
	_, _ = b.SubmitCheckIn(context.Background(), "Ada", "")

	if calls != 0 {
		t.Errorf("callback invoked %d times for failed check-ins, want 0", calls)
	}
}

func TestWithCheckInCallback_ExecutionOrder(t *testing.T) {
	var mu sync.Mutex
	var order []string

	record := func(name string) func(CheckInResult) {
		return func(CheckInResult) {
			mu.Lock()
			defer mu.Unlock()
			order = append(order, name)
		}
	}

	b, err := New(
		WithLogger(testLogger()),
		WithCheckInCallback(record("first")),
		WithCheckInCallback(record("second")),
		WithCheckInCallback(record("third")),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if _, err := b.SubmitCheckIn(context.Background(), "Ada", TeamWater); err != nil {
		t.Fatalf("SubmitCheckIn() error = %v", err)
	}

	if got := strings.Join(order, ","); got != "first,second,third" {
		t.Errorf("order = %s, want first,second,third", got)
	}
}

func TestWithCheckInCallback_PanicRecovery(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	afterPanic := false
	b, err := New(
		WithLogger(logger),
		WithCheckInCallback(func(CheckInResult) { panic("callback exploded") }),
		WithCheckInCallback(func(CheckInResult) { afterPanic = true }),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	res, err := b.SubmitCheckIn(context.Background(), "Ada", TeamPower)
	if err != nil {
		t.Fatalf("SubmitCheckIn() error = %v", err)
	}
	if res.Snapshot.TotalAttendees != 1 {
		t.Error("check-in should succeed even if a callback panics")
	}
	if !afterPanic {
		t.Error("callbacks after a panicking one should still run")
	}

	logs := buf.String()
	if !strings.Contains(logs, "check-in callback panicked") {
		t.Errorf("expected panic to be logged, got %q", logs)
	}
	if !strings.Contains(logs, "correlation_id=") {
		t.Errorf("expected correlation id in log, got %q", logs)
	}
}

func TestWithCheckInCallback_SeesPersistedState(t *testing.T) {
	st, err := OpenStorage(DriverMemory, "")
	if err != nil {
		t.Fatalf("OpenStorage() error = %v", err)
	}

	var saved []byte
	b, err := New(
		WithLogger(testLogger()),
		WithStorage(st),
		WithCheckInCallback(func(CheckInResult) {
			saved, _ = st.Get(context.Background(), StorageKey)
		}),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if _, err := b.SubmitCheckIn(context.Background(), "Ada", TeamWater); err != nil {
		t.Fatalf("SubmitCheckIn() error = %v", err)
	}

	// callbacks fire after the state is saved
	if !bytes.Contains(saved, []byte(`"name":"Ada"`)) {
		t.Errorf("saved state at callback time = %s", saved)
	}
}
