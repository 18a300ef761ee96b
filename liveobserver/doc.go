// Package liveobserver is an optional real-time Observer that streams
// grid snapshots to browser clients over a websocket.
//
// What:
//
//   - Snapshot: a JSON-serializable view of the grid at one instant.
//   - Hub: an Observer that fans Snapshot updates out to every connected
//     client, dropping intervening updates a slow client can't keep up
//     with (snapshots are idempotent, so only the latest matters).
//   - Handler: a gorilla/mux router exposing a /ws upgrade endpoint.
//
// Why:
//
//   - A browser-based live view needs no windowing library: a
//     per-connection publisher with ping/pong liveness and a
//     rate-limited publish loop (gorilla/websocket + errgroup) pushes
//     idempotent snapshot updates to a browser at a bounded rate, and
//     gorilla/mux registers the /ws route.
package liveobserver
