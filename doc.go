// Package summitcheckin provides an embeddable attendee check-in board for
// events: attendees check in with a name and a team, the board tallies
// per-team and total counts, tracks progress toward an attendance goal and
// announces the leading team once the goal is reached.
//
// # Quick Start
//
// Create a board and serve the dashboard with graceful shutdown:
//
//	st, _ := summitcheckin.OpenStorage(summitcheckin.DriverFile, "data")
//	defer st.Close()
//
//	b, _ := summitcheckin.New(
//	    summitcheckin.WithGoal(50),
//	    summitcheckin.WithStorage(st),
//	)
//
//	// Set up graceful shutdown on SIGINT/SIGTERM
//	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
//	defer stop()
//
//	b.Start(ctx) // blocks until context is cancelled
//
// # Check-ins
//
// Check-ins come from the dashboard form or from [Board.SubmitCheckIn]:
//
//	res, err := b.SubmitCheckIn(ctx, "Ada", summitcheckin.TeamWater)
//	if errors.Is(err, summitcheckin.ErrMissingName) {
//	    // show err.Error() next to the form
//	}
//	fmt.Println(res.Message) // Welcome, Ada! You checked in with Team Water Wise.
//
// Every successful check-in is saved under [StorageKey] before it is
// acknowledged. The saved format is a JSON object with totalAttendees,
// teamCounts and attendeeList; loading it never fails, corrupt fields fall
// back to their empty values.
//
// # Architecture
//
// The board consists of several internal packages (under internal/):
//
//   - internal/store: the attendance state, derived views and the saved format
//   - internal/storage: key-value drivers (memory, file, sqlite)
//   - internal/server: HTTP server with JSON API and Server-Sent Events
//   - dashboard: Embedded web UI assets
//
// The internal packages are not part of the public API and may change
// without notice.
package summitcheckin
