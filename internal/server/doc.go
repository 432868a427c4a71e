// Package server provides the HTTP server for the check-in dashboard and API.
//
// This package is internal to summitcheckin and handles all HTTP concerns:
//
//   - Dashboard serving: Serves the embedded HTML/CSS/JS dashboard at "/"
//   - REST API: "/api/state" returns the current snapshot, "/api/checkins"
//     accepts a check-in from the form
//   - Server-Sent Events: A fresh snapshot after every check-in at "/api/sse"
//
// The server supports graceful shutdown via context cancellation, with a
// 5-second timeout for in-flight requests.
//
// Users of the summitcheckin library should not need to interact with this
// package directly. The server is started automatically by [summitcheckin.Board.Start].
package server
