// Package websocket serves the live feed search. Clients stream keystrokes
// as search messages; each connection debounces them and pushes the query
// result back once input has been quiet for the configured window.
package websocket

import (
	"log"
	"net/http"
	"time"

	"educonnect/store"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// CORS is enforced on the HTTP routes; the socket accepts any origin
	// the browser was allowed to reach it from.
	CheckOrigin: func(r *http.Request) bool { return true },
}

type Manager struct {
	store    *store.Store
	debounce time.Duration

	// clients is owned by the Start loop; nothing else touches it.
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
}

func NewManager(st *store.Store, debounce time.Duration) *Manager {
	return &Manager{
		store:      st,
		debounce:   debounce,
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

// Start runs the registration loop. Call it once, in its own goroutine.
func (m *Manager) Start() {
	for {
		select {
		case client := <-m.register:
			m.clients[client] = true
			log.Printf("ws client registered, total %d", len(m.clients))

		case client := <-m.unregister:
			if _, ok := m.clients[client]; ok {
				delete(m.clients, client)
				client.shutdown()
			}
			log.Printf("ws client unregistered, total %d", len(m.clients))
		}
	}
}

// Serve upgrades the request and starts the client pumps. The caller has
// already authenticated the user.
func (m *Manager) Serve(w http.ResponseWriter, r *http.Request, userID string) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade failed: %v", err)
		return
	}

	client := newClient(m, conn, userID)
	m.register <- client

	go client.writePump()
	go client.readPump()
}
