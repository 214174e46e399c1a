package websocket

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"educonnect/feed"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	maxMessageSize = 4096
)

// searchMessage is what the client sends on every keystroke.
type searchMessage struct {
	Type   string `json:"type"`
	Query  string `json:"query"`
	Filter string `json:"filter"`
	Sort   string `json:"sort"`
}

type Client struct {
	manager   *Manager
	conn      *websocket.Conn
	userID    string
	send      chan []byte
	debouncer *feed.Debouncer

	// mu serializes sends with shutdown: a debounced search fires on its
	// own timer goroutine and may outlive readPump, so send must never
	// race the channel close.
	mu     sync.Mutex
	closed bool
}

func newClient(m *Manager, conn *websocket.Conn, userID string) *Client {
	return &Client{
		manager:   m,
		conn:      conn,
		userID:    userID,
		send:      make(chan []byte, 16),
		debouncer: feed.NewDebouncer(m.debounce),
	}
}

func (c *Client) readPump() {
	defer func() {
		c.debouncer.Stop()
		c.manager.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("ws read error: %v", err)
			}
			return
		}

		var msg searchMessage
		if err := json.Unmarshal(data, &msg); err != nil || msg.Type != "search" {
			continue
		}

		// Each keystroke restarts the quiescence window; only the value
		// that survives it reaches the pipeline.
		query := msg
		c.debouncer.Trigger(func() { c.runSearch(query) })
	}
}

func (c *Client) runSearch(msg searchMessage) {
	filter := msg.Filter
	if filter == "" {
		filter = feed.FilterAll
	}
	sortMode := feed.SortMode(msg.Sort)
	if !feed.KnownSortMode(sortMode) {
		sortMode = feed.SortRecent
	}

	posts := feed.Query(c.manager.store.AllPosts(), msg.Query, filter, sortMode)

	data, err := json.Marshal(map[string]interface{}{
		"type":   "results",
		"posts":  posts,
		"count":  len(posts),
		"search": msg.Query,
	})
	if err != nil {
		log.Printf("ws marshal error: %v", err)
		return
	}

	c.enqueue(data)
}

// enqueue hands a frame to writePump. A frame arriving after shutdown (a
// late debounced search) or against a full buffer is dropped.
func (c *Client) enqueue(data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	select {
	case c.send <- data:
	default:
	}
}

// shutdown closes the send channel exactly once, under the same lock that
// guards enqueue. Called by the manager when the client unregisters.
func (c *Client) shutdown() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.closed = true
	close(c.send)
}

func (c *Client) writePump() {
	defer c.conn.Close()

	for message := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}

	c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}
