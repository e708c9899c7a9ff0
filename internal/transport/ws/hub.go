package ws

import (
	"sync"
)

type Conn interface {
	Send(msg Message) error
	Close() error
	UserID() string
}

// Hub owns the room membership table. A connection belongs to at most one
// room at a time; all access goes through Bind/Unbind/Broadcast.
type Hub struct {
	mu    sync.RWMutex
	rooms map[string]map[Conn]struct{} // sessionID -> set of connections
	bound map[Conn]string              // connection -> sessionID
}

func NewHub() *Hub {
	return &Hub{
		rooms: make(map[string]map[Conn]struct{}),
		bound: make(map[Conn]string),
	}
}

// Bind places c into the session's room, leaving its previous room first.
func (h *Hub) Bind(c Conn, sessionID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.removeLocked(c)

	rs, ok := h.rooms[sessionID]
	if !ok {
		rs = make(map[Conn]struct{})
		h.rooms[sessionID] = rs
	}
	rs[c] = struct{}{}
	h.bound[c] = sessionID
}

// Unbind removes c from its room, if any.
func (h *Hub) Unbind(c Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.removeLocked(c)
}

func (h *Hub) removeLocked(c Conn) {
	sessionID, ok := h.bound[c]
	if !ok {
		return
	}
	delete(h.bound, c)

	if rs, ok := h.rooms[sessionID]; ok {
		delete(rs, c)
		if len(rs) == 0 {
			delete(h.rooms, sessionID)
		}
	}
}

// Room reports which session c is currently bound to.
func (h *Hub) Room(c Conn) (string, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	sessionID, ok := h.bound[c]
	return sessionID, ok
}

// Members reports current room occupancy.
func (h *Hub) Members(sessionID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.rooms[sessionID])
}

// Broadcast delivers msg to every room member except origin, best-effort.
func (h *Hub) Broadcast(sessionID string, msg Message, origin Conn) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if rs, ok := h.rooms[sessionID]; ok {
		for c := range rs {
			if c == origin {
				continue
			}
			_ = c.Send(msg) // a slow or dead peer just misses the event
		}
	}
}
