package liveobserver

import (
	"github.com/gorilla/mux"
)

// Handler builds a router exposing hub's websocket endpoint at /ws.
func Handler[T any](hub *Hub[T]) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/ws", hub.ServeWS)
	return r
}
