package stream

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/yeonjoon13/flight-collision-sim/internal/model"
)

const (
	writeWait  = 5 * time.Second
	sendBuffer = 16
)

// FrameSource is satisfied by *flights.Store.
type FrameSource interface {
	Latest() (model.Frame, bool)
}

// client owns one connection. Only its writer goroutine writes to conn.
type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub tracks connected websocket clients and pushes frames to them.
type Hub struct {
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*client]bool
}

func NewHub() *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		clients: make(map[*client]bool),
	}
}

// ServeHTTP upgrades the connection and keeps it registered until the
// client goes away.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	c := &client{conn: conn, send: make(chan []byte, sendBuffer)}
	h.mu.Lock()
	h.clients[c] = true
	h.mu.Unlock()
	log.Printf("New client connected: %s", conn.RemoteAddr())

	go c.writeLoop()

	// Clients don't send anything we act on; reading only detects close.
	for {
		if _, _, err := conn.NextReader(); err != nil {
			h.remove(c)
			log.Printf("Client disconnected: %s", conn.RemoteAddr())
			return
		}
	}
}

func (c *client) writeLoop() {
	for msg := range c.send {
		_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			log.Printf("WebSocket write error: %v", err)
			// Closing unblocks the reader in ServeHTTP, which unregisters us.
			c.conn.Close()
			for range c.send {
			}
			return
		}
	}
}

// remove unregisters c and stops its writer. Safe to call more than once.
func (h *Hub) remove(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[c] {
		delete(h.clients, c)
		close(c.send)
	}
}

// Clients returns the number of connected clients.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Broadcast queues f as JSON for every client. It never waits on the
// network; a client whose queue is full is disconnected.
func (h *Hub) Broadcast(f model.Frame) error {
	msg, err := json.Marshal(f)
	if err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		select {
		case c.send <- msg:
		default:
			log.Printf("Client %s send buffer full, disconnecting", c.conn.RemoteAddr())
			delete(h.clients, c)
			close(c.send)
			c.conn.Close()
		}
	}
	return nil
}

// Run broadcasts the source's latest frame every interval until ctx is done.
// A frame is only sent once.
func (h *Hub) Run(ctx context.Context, src FrameSource, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var last model.Frame
	sent := false
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			f, ok := src.Latest()
			if !ok || sent && f.Tick == last.Tick && f.Timestamp == last.Timestamp {
				continue
			}
			if err := h.Broadcast(f); err != nil {
				log.Printf("JSON marshaling error: %v", err)
				continue
			}
			last, sent = f, true
		}
	}
}
