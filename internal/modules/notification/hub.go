package notification

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	sendBuffer = 16
)

type client struct {
	conn *websocket.Conn
	send chan interface{}
}

// Hub tracks one live websocket per user for pushing notifications as
// they happen. Delivery goes through a buffered per-connection channel
// drained by a write pump, so SendToUser never waits on the network: a
// slow or stalled peer drops messages, not the caller.
type Hub struct {
	clients map[int64]*client
	mutex   sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[int64]*client),
	}
}

func (h *Hub) Register(userID int64, conn *websocket.Conn) {
	cl := &client{conn: conn, send: make(chan interface{}, sendBuffer)}

	h.mutex.Lock()
	if old, exists := h.clients[userID]; exists && old != nil {
		close(old.send)
	}
	h.clients[userID] = cl
	h.mutex.Unlock()

	go h.writePump(userID, cl)
}

func (h *Hub) Unregister(userID int64) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if cl, exists := h.clients[userID]; exists && cl != nil {
		close(cl.send)
		delete(h.clients, userID)
	}
}

// SendToUser enqueues a message for the user's connection. Returns false
// when the user is offline or their send buffer is full; it never blocks.
func (h *Hub) SendToUser(userID int64, message interface{}) bool {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	cl, exists := h.clients[userID]
	if !exists || cl == nil {
		return false
	}

	select {
	case cl.send <- message:
		return true
	default:
		return false
	}
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for userID, cl := range h.clients {
		if cl != nil {
			close(cl.send)
		}
		delete(h.clients, userID)
	}
}

// writePump drains the send channel onto the wire. Every write carries a
// deadline; a peer that stops reading gets its connection dropped.
func (h *Hub) writePump(userID int64, cl *client) {
	defer cl.conn.Close()

	for msg := range cl.send {
		_ = cl.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := cl.conn.WriteJSON(msg); err != nil {
			h.drop(userID, cl)
			return
		}
	}
}

// drop removes the client only if it is still the user's current
// connection; a reconnect may already have replaced it.
func (h *Hub) drop(userID int64, cl *client) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if cur, exists := h.clients[userID]; exists && cur == cl {
		delete(h.clients, userID)
	}
}
