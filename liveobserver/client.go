package liveobserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	channerics "github.com/niceyeti/channerics/channels"
	"golang.org/x/sync/errgroup"
)

const (
	writeWait        = 1 * time.Second
	pubResolution    = 100 * time.Millisecond
	pingResolution   = 200 * time.Millisecond
	pongWait         = pingResolution * 4
	readDeadline     = time.Second
	writeDeadline    = time.Second
	closeGracePeriod = 10 * time.Second
)

var upgrader = websocket.Upgrader{}

// ErrPongDeadlineExceeded indicates a client stopped responding to pings.
var ErrPongDeadlineExceeded = errors.New("liveobserver: client disconnect, pong deadline exceeded")

// ErrSockCongestion indicates too many waiters on a socket operation.
var ErrSockCongestion = errors.New("liveobserver: socket operation failed due to congestion")

// client publishes Snapshot updates to a single websocket connection.
// An update that arrives within pubResolution of the previous send is
// dropped and not sent later, so the final update reaches the client only
// if it arrives after that window.
type client struct {
	updates <-chan Snapshot
	sock    *websock
	rootCtx context.Context
}

// newClient upgrades an HTTP request to a websocket and returns a
// publisher fed from updates.
func newClient(updates <-chan Snapshot, w http.ResponseWriter, r *http.Request) (*client, error) {
	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return nil, err
	}

	return &client{
		updates: updates,
		sock:    newWebsock(ws),
		rootCtx: r.Context(),
	}, nil
}

// sync runs the ping/pong liveness check and the publish loop until the
// client disconnects or the request context is cancelled.
func (c *client) sync() error {
	group, groupCtx := errgroup.WithContext(c.rootCtx)

	group.Go(func() error { return c.pingPong(groupCtx) })
	group.Go(func() error { return c.publish(groupCtx) })

	err := group.Wait()
	c.sock.Close()
	return err
}

func (c *client) pingPong(ctx context.Context) error {
	pong := make(chan struct{}, 1)
	c.sock.conn.SetPongHandler(func(string) error {
		select {
		case pong <- struct{}{}:
		default:
		}
		return nil
	})

	ticks := channerics.NewTicker(ctx.Done(), pingResolution)
	lastPong := time.Now()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticks:
			if time.Since(lastPong) > pongWait {
				return ErrPongDeadlineExceeded
			}
			if err := c.ping(ctx); err != nil {
				return err
			}
		case <-pong:
			lastPong = time.Now()
		}
	}
}

func (c *client) ping(ctx context.Context) error {
	return c.sock.Write(ctx, func(ws *websocket.Conn) error {
		return ws.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait))
	})
}

func (c *client) publish(ctx context.Context) error {
	lastSync := time.Now().Add(-pubResolution)

	for {
		select {
		case <-ctx.Done():
			return nil
		case snap, ok := <-c.updates:
			if !ok {
				return nil
			}
			if time.Since(lastSync) < pubResolution {
				continue
			}
			lastSync = time.Now()

			err := c.sock.Write(ctx, func(ws *websocket.Conn) error {
				if err := ws.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
					return fmt.Errorf("liveobserver: set deadline: %w", err)
				}
				return ws.WriteJSON(snap)
			})
			if err != nil {
				return err
			}
		}
	}
}

// websock serializes writes to a websocket, which tolerates only one
// concurrent writer.
type websock struct {
	writeSem chan struct{}
	conn     *websocket.Conn
}

func newWebsock(conn *websocket.Conn) *websock {
	return &websock{writeSem: make(chan struct{}, 1), conn: conn}
}

func (s *websock) Write(ctx context.Context, fn func(*websocket.Conn) error) error {
	select {
	case <-ctx.Done():
		return nil
	case s.writeSem <- struct{}{}:
		defer func() { <-s.writeSem }()
		return fn(s.conn)
	case <-time.After(writeDeadline):
		return ErrSockCongestion
	}
}

func (s *websock) Close() {
	_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
	_ = s.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	_ = s.conn.Close()
}
