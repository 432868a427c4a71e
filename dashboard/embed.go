// Package dashboard provides the embedded web UI for the check-in board.
//
// The page holds the check-in form, the team counters, the progress bar and
// the attendee list. It renders whatever snapshot the server sends and keeps
// no state of its own.
package dashboard

import "embed"

// Assets is an embedded filesystem containing the dashboard web UI.
//
// The filesystem structure is:
//
//	assets/
//	  index.html    - Check-in page with inline CSS and JavaScript
//
// The server substitutes {{.Title}} in index.html before serving it.
//
//go:embed assets/*
var Assets embed.FS
