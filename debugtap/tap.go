// Package debugtap streams dispatched pointer events to remote inspectors over
// WebSocket, so interaction on a headset can be watched from a desktop.
//
//	tap := debugtap.New(256)
//	pointer.AddEntityStore(tap)
//	go tap.Run(ctx)
//	http.Handle("/events", tap)
package debugtap

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/phanxgames/laser"
)

const writeTimeout = 2 * time.Second

// Record is the JSON form of a pointer event sent to inspectors.
type Record struct {
	Kind       string     `json:"kind"`
	Pointer    int        `json:"pointer"`
	Element    string     `json:"element"`
	ElementID  uint32     `json:"elementId"`
	EntityID   uint32     `json:"entityId,omitempty"`
	Local      [2]float64 `json:"local"`
	World      [3]float64 `json:"world"`
	Distance   float64    `json:"distance,omitempty"`
	WorldDelta [3]float64 `json:"worldDelta"`
}

func newRecord(ev laser.PointerEvent) Record {
	return Record{
		Kind:       ev.Kind.String(),
		Pointer:    ev.PointerID,
		Element:    ev.ElementName,
		ElementID:  ev.ElementID,
		EntityID:   ev.EntityID,
		Local:      [2]float64{ev.Local.X, ev.Local.Y},
		World:      [3]float64(ev.World),
		Distance:   ev.Distance,
		WorldDelta: [3]float64(ev.WorldDelta),
	}
}

// Tap is a laser.EntityStore that forwards events to connected WebSocket
// clients. EmitEvent never blocks the tick: when the buffer is full the event
// is dropped and counted.
type Tap struct {
	upgrader websocket.Upgrader
	events   chan Record

	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}

	dropped atomic.Uint64
}

// New creates a tap buffering up to size events between ticks and Run.
func New(size int) *Tap {
	if size <= 0 {
		size = 256
	}
	return &Tap{
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		events:  make(chan Record, size),
		clients: make(map[*websocket.Conn]struct{}),
	}
}

// EmitEvent queues ev for broadcast.
func (t *Tap) EmitEvent(ev laser.PointerEvent) {
	select {
	case t.events <- newRecord(ev):
	default:
		t.dropped.Add(1)
	}
}

// Dropped returns the number of events discarded because the buffer was full.
func (t *Tap) Dropped() uint64 {
	return t.dropped.Load()
}

// Clients returns the number of connected inspectors.
func (t *Tap) Clients() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.clients)
}

// ServeHTTP upgrades the request to a WebSocket and keeps the connection
// registered until the client goes away.
func (t *Tap) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := t.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[debugtap] upgrade: %v", err)
		return
	}
	t.mu.Lock()
	t.clients[conn] = struct{}{}
	t.mu.Unlock()

	// Inspectors only listen; reading detects the close.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
	t.remove(conn)
}

func (t *Tap) remove(conn *websocket.Conn) {
	t.mu.Lock()
	_, ok := t.clients[conn]
	delete(t.clients, conn)
	t.mu.Unlock()
	if ok {
		_ = conn.Close()
	}
}

// Run broadcasts queued events until ctx is cancelled, then closes every
// client connection.
func (t *Tap) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			t.closeAll()
			return ctx.Err()
		case rec := <-t.events:
			data, err := json.Marshal(rec)
			if err != nil {
				log.Printf("[debugtap] marshal: %v", err)
				continue
			}
			t.broadcast(data)
		}
	}
}

func (t *Tap) broadcast(data []byte) {
	t.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(t.clients))
	for c := range t.clients {
		conns = append(conns, c)
	}
	t.mu.Unlock()

	for _, c := range conns {
		_ = c.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := c.WriteMessage(websocket.TextMessage, data); err != nil {
			t.remove(c)
		}
	}
}

func (t *Tap) closeAll() {
	t.mu.Lock()
	conns := t.clients
	t.clients = make(map[*websocket.Conn]struct{})
	t.mu.Unlock()
	for c := range conns {
		_ = c.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		_ = c.Close()
	}
}
