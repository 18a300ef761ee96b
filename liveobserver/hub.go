package liveobserver

import (
	"net/http"
	"sync"

	"github.com/Mechazawa/wave-function-collapse/observer"
)

// Hub is an Observer that fans Snapshot updates out to every connected
// websocket client. It is safe for concurrent use.
type Hub[T any] struct {
	mu      sync.Mutex
	clients map[chan Snapshot]struct{}
}

// NewHub returns an empty Hub.
func NewHub[T any]() *Hub[T] {
	return &Hub[T]{clients: make(map[chan Snapshot]struct{})}
}

// Notify implements observer.Observer. It never blocks: a client whose
// update channel is still full from a previous send misses this update,
// which is fine since the next Snapshot is a complete state on its own.
func (h *Hub[T]) Notify(e observer.Event[T]) {
	snap := BuildSnapshot(e.Kind.String(), e.View)

	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.clients {
		select {
		case ch <- snap:
		default:
		}
	}
}

// ServeWS upgrades r to a websocket and streams Snapshot updates to it
// until the client disconnects. It blocks until then, so callers
// typically invoke it directly from an http.HandlerFunc.
func (h *Hub[T]) ServeWS(w http.ResponseWriter, r *http.Request) {
	updates := make(chan Snapshot, 1)
	h.addClient(updates)
	defer h.removeClient(updates)

	c, err := newClient(updates, w, r)
	if err != nil {
		return
	}
	_ = c.sync()
}

func (h *Hub[T]) addClient(ch chan Snapshot) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[ch] = struct{}{}
}

func (h *Hub[T]) removeClient(ch chan Snapshot) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, ch)
	close(ch)
}
