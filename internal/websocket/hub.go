package websocket

import (
	"encoding/json"
	"sync"
)

// Hub is the process-local connection registry: at most one live user
// connection per client id, plus any number of admin observer sessions.
// It holds no durable state; a restart empties it.
type Hub struct {
	mu     sync.RWMutex
	users  map[string]*Client
	admins map[*Client]struct{}
}

func NewHub() *Hub {
	return &Hub{
		users:  make(map[string]*Client),
		admins: make(map[*Client]struct{}),
	}
}

// RegisterUser records the connection for its client id. A duplicate connect
// for the same id overwrites the previous handle; the previous holder is not
// notified and simply stops receiving admin replies.
func (h *Hub) RegisterUser(c *Client) {
	h.mu.Lock()
	h.users[c.ID] = c
	h.mu.Unlock()
}

// UnregisterUser removes the connection, but only while it is still the
// registered handle for its id. A stale connection that was already replaced
// must not evict its successor.
func (h *Hub) UnregisterUser(c *Client) {
	h.mu.Lock()
	if h.users[c.ID] == c {
		delete(h.users, c.ID)
	}
	h.mu.Unlock()
}

func (h *Hub) RegisterAdmin(c *Client) {
	h.mu.Lock()
	h.admins[c] = struct{}{}
	h.mu.Unlock()
}

func (h *Hub) UnregisterAdmin(c *Client) {
	h.mu.Lock()
	delete(h.admins, c)
	h.mu.Unlock()
}

// BroadcastToAdmins fans an event out to every connected admin session.
// Each recipient gets an independent non-blocking enqueue, so one slow admin
// cannot stall the others.
func (h *Hub) BroadcastToAdmins(event interface{}) {
	payload, err := json.Marshal(event)
	if err != nil {
		return
	}
	h.mu.RLock()
	for admin := range h.admins {
		admin.SendMessage(payload)
	}
	h.mu.RUnlock()
}

// SendToUser delivers an event to the named user session. It reports whether
// a session with that id was connected at the time of the call.
func (h *Hub) SendToUser(clientID string, event interface{}) bool {
	payload, err := json.Marshal(event)
	if err != nil {
		return false
	}
	h.mu.RLock()
	client, ok := h.users[clientID]
	h.mu.RUnlock()
	if !ok {
		return false
	}
	client.SendMessage(payload)
	return true
}

func (h *Hub) UserCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.users)
}

func (h *Hub) AdminCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.admins)
}
