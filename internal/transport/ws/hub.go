package ws

import (
	"encoding/json"
	"log"
	"sync"

	"sybil/internal/model"
)

// MessageType defines the type of WebSocket message
type MessageType string

const (
	MsgVerdictScored MessageType = "verdict_scored"
	MsgPolicyUpdated MessageType = "policy_updated"
)

// Message is the WebSocket envelope format
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// VerdictEvent is the payload for verdict_scored messages.
type VerdictEvent struct {
	SubmissionID string         `json:"submissionId"`
	Verdict      *model.Verdict `json:"verdict"`
}

// PolicyEvent is the payload for policy_updated messages.
type PolicyEvent struct {
	Chars int `json:"chars"`
}

// Hub manages the host dashboard feed: every connected host client
// receives every verdict as it is scored.
type Hub struct {
	conns map[*Connection]struct{}

	mu sync.RWMutex

	register   chan *Connection
	unregister chan *Connection
	broadcast  chan *Message
}

// Connection represents one subscribed feed client.
type Connection struct {
	Send chan []byte
	Hub  *Hub
}

// NewHub creates the feed hub and starts its dispatch loop.
func NewHub() *Hub {
	h := &Hub{
		conns:      make(map[*Connection]struct{}),
		register:   make(chan *Connection),
		unregister: make(chan *Connection),
		broadcast:  make(chan *Message, 256),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			h.conns[conn] = struct{}{}
			h.mu.Unlock()
			log.Printf("Feed client connected (%d active)", h.ClientCount())

		case conn := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.conns[conn]; ok {
				delete(h.conns, conn)
				close(conn.Send)
			}
			h.mu.Unlock()
			log.Printf("Feed client disconnected (%d active)", h.ClientCount())

		case msg := <-h.broadcast:
			data, _ := json.Marshal(msg)
			h.mu.RLock()
			for conn := range h.conns {
				select {
				case conn.Send <- data:
				default:
					// Drop message if buffer full
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Register adds a connection
func (h *Hub) Register(conn *Connection) {
	h.register <- conn
}

// Unregister removes a connection
func (h *Hub) Unregister(conn *Connection) {
	h.unregister <- conn
}

// ClientCount returns the number of subscribed clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns)
}

// BroadcastVerdict pushes a scored verdict to every feed client
// (implements service.Broadcaster).
func (h *Hub) BroadcastVerdict(submissionID string, verdict *model.Verdict) {
	payload, _ := json.Marshal(&VerdictEvent{SubmissionID: submissionID, Verdict: verdict})
	h.broadcast <- &Message{
		Type:    MsgVerdictScored,
		Payload: payload,
	}
}

// BroadcastPolicyUpdated announces a policy replacement to the feed.
func (h *Hub) BroadcastPolicyUpdated(chars int) {
	payload, _ := json.Marshal(&PolicyEvent{Chars: chars})
	h.broadcast <- &Message{
		Type:    MsgPolicyUpdated,
		Payload: payload,
	}
}
