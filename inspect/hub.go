// Package inspect streams widget state to WebSocket observers.
//
// Frames are JSON text messages with an envelope {type, ts, data}. A new
// observer first receives "state_init" carrying the current Snapshot, then
// one frame per widget event published through a Publisher.
package inspect

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 5 * time.Second
	pongWait   = 30 * time.Second
	pingPeriod = 20 * time.Second
)

// Hub owns the observer set and the latest Snapshot. Run folds every event
// into the snapshot before fanning its frame out, so the state_init frame
// an observer gets on joining matches the frames that follow it.
type Hub struct {
	logger *slog.Logger
	now    func() time.Time
	queue  int

	events chan event
	joins  chan *observer
	leaves chan *observer
	done   chan struct{}

	// Owned by Run.
	observers map[*observer]struct{}
	snap      Snapshot

	mu     sync.Mutex
	latest Snapshot
	count  int
}

// HubConfig sizes the hub queues. Zero values pick defaults.
type HubConfig struct {
	// ObserverQueue is the number of frames buffered per observer before
	// it is dropped as too slow.
	ObserverQueue int
	// EventQueue is the number of widget events buffered for Run.
	EventQueue int
}

// NewHub constructs a hub. Call Run to start it.
func NewHub(logger *slog.Logger, cfg HubConfig) *Hub {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if cfg.ObserverQueue <= 0 {
		cfg.ObserverQueue = 32
	}
	if cfg.EventQueue <= 0 {
		cfg.EventQueue = 128
	}
	snap := initialSnapshot()
	return &Hub{
		logger:    logger,
		now:       time.Now,
		queue:     cfg.ObserverQueue,
		events:    make(chan event, cfg.EventQueue),
		joins:     make(chan *observer),
		leaves:    make(chan *observer, 64),
		done:      make(chan struct{}),
		observers: make(map[*observer]struct{}),
		snap:      snap,
		latest:    snap,
	}
}

// Run applies events and membership changes until ctx is canceled, then
// disconnects every observer. Run must be called once.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	h.logger.Info("inspect hub starting")

	for {
		select {
		case <-ctx.Done():
			for o := range h.observers {
				h.drop(o, "shutdown")
			}
			h.logger.Info("inspect hub stopped")
			return
		case o := <-h.joins:
			h.greet(o)
		case o := <-h.leaves:
			h.drop(o, "gone")
		case e := <-h.events:
			h.apply(e)
		}
	}
}

// Snapshot returns the state as of the last event Run applied.
func (h *Hub) Snapshot() Snapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.latest
}

// Observers returns the number of connected observers.
func (h *Hub) Observers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.count
}

// publish queues e for Run. It never blocks the widget; when the queue is
// full the event is lost.
func (h *Hub) publish(e event) {
	select {
	case h.events <- e:
	default:
		h.logger.Warn("inspect event queue full, dropping event", "type", e.typ)
	}
}

// join hands o to Run. It reports false once the hub has stopped.
func (h *Hub) join(o *observer) bool {
	select {
	case h.joins <- o:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) leave(o *observer) {
	select {
	case h.leaves <- o:
	case <-h.done:
	}
}

func (h *Hub) greet(o *observer) {
	frame, err := event{typ: TypeStateInit, at: h.now(), data: h.snap}.encode()
	if err != nil {
		h.logger.Warn("inspect snapshot encode failed", "error", err)
		o.close()
		return
	}
	// The queue of a new observer is empty.
	o.out <- frame
	h.observers[o] = struct{}{}
	h.sync()
	h.logger.Info("inspect observer joined", "addr", o.addr, "observers", len(h.observers))
}

func (h *Hub) apply(e event) {
	e.apply(&h.snap)
	defer h.sync()

	frame, err := e.encode()
	if err != nil {
		h.logger.Warn("inspect event encode failed", "type", e.typ, "error", err)
		return
	}
	for o := range h.observers {
		select {
		case o.out <- frame:
		default:
			h.drop(o, "slow")
		}
	}
}

func (h *Hub) drop(o *observer, reason string) {
	if _, ok := h.observers[o]; !ok {
		return
	}
	delete(h.observers, o)
	o.close()
	h.sync()
	h.logger.Info("inspect observer left", "addr", o.addr, "reason", reason, "observers", len(h.observers))
}

func (h *Hub) sync() {
	h.mu.Lock()
	h.latest = h.snap
	h.count = len(h.observers)
	h.mu.Unlock()
}

// observer is one connected WebSocket peer.
type observer struct {
	conn *websocket.Conn
	addr string
	out  chan []byte
	once sync.Once
}

func newObserver(conn *websocket.Conn, addr string, queue int) *observer {
	return &observer{conn: conn, addr: addr, out: make(chan []byte, max(queue, 1))}
}

func (o *observer) close() {
	o.once.Do(func() {
		if o.conn != nil {
			_ = o.conn.Close()
		}
		close(o.out)
	})
}

// serve writes o's frames and keepalive pings until the hub drops o or a
// write fails. It starts the reader that notices the peer going away.
func (h *Hub) serve(o *observer) {
	go h.watch(o)

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	for {
		select {
		case frame, ok := <-o.out:
			_ = o.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = o.conn.WriteMessage(websocket.CloseMessage, nil)
				return
			}
			if err := o.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				h.gone(o, err)
				return
			}
		case <-ticker.C:
			_ = o.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := o.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				h.gone(o, err)
				return
			}
		}
	}
}

// watch discards whatever the peer sends until its connection fails.
func (h *Hub) watch(o *observer) {
	_ = o.conn.SetReadDeadline(time.Now().Add(pongWait))
	o.conn.SetPongHandler(func(string) error {
		return o.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := o.conn.ReadMessage(); err != nil {
			h.gone(o, err)
			return
		}
	}
}

func (h *Hub) gone(o *observer, err error) {
	var ce *websocket.CloseError
	switch {
	case errors.Is(err, websocket.ErrCloseSent):
	case errors.As(err, &ce):
		h.logger.Debug("inspect observer closed", "addr", o.addr, "code", ce.Code, "reason", ce.Text)
	default:
		h.logger.Debug("inspect observer lost", "addr", o.addr, "error", err)
	}
	h.leave(o)
}
