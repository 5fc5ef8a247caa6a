package websocket

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/anqasa/smarttaxi/internal/pkg/logger"
)

// defaultWriteTimeout bounds one push to one UI client. Broadcast is called
// from usecase paths that hold state locks upstream, so a stalled client must
// never block it indefinitely.
const defaultWriteTimeout = 5 * time.Second

// Event types pushed to the UI layer
const (
	EventTaxis        = "taxis"
	EventNotification = "notification"
	EventState        = "state"
	EventPosition     = "position"
)

// Event is one message pushed to connected UI clients
type Event struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// Manager manages WebSocket connections from the local UI layer and pushes
// state change events to them.
type Manager struct {
	sync.Mutex
	clients      map[*websocket.Conn]struct{}
	upgrader     websocket.Upgrader
	writeTimeout time.Duration
}

// NewManager creates a new WebSocket manager
func NewManager() *Manager {
	return &Manager{
		clients: make(map[*websocket.Conn]struct{}),
		upgrader: websocket.Upgrader{
			// The bridge binds to loopback; the UI shell is the only caller
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		writeTimeout: defaultWriteTimeout,
	}
}

// HandleConnection upgrades the request and keeps the connection registered
// until the client disconnects.
func (m *Manager) HandleConnection(c echo.Context) error {
	ws, err := m.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}

	m.addClient(ws)
	defer m.removeClient(ws)

	logger.Debug("UI client connected", logger.Int("clients", m.ClientCount()))

	// Inbound messages are not part of the protocol; the read loop only
	// detects disconnects.
	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			return nil
		}
	}
}

// Broadcast pushes an event to every connected UI client
func (m *Manager) Broadcast(eventType string, payload interface{}) {
	event := Event{Type: eventType, Payload: payload}

	m.Lock()
	defer m.Unlock()

	for ws := range m.clients {
		ws.SetWriteDeadline(time.Now().Add(m.writeTimeout))
		if err := ws.WriteJSON(event); err != nil {
			logger.Warn("Failed to push event to UI client",
				logger.String("event", eventType),
				logger.Err(err))
			ws.Close()
			delete(m.clients, ws)
		}
	}
}

// ClientCount returns the number of connected UI clients
func (m *Manager) ClientCount() int {
	m.Lock()
	defer m.Unlock()
	return len(m.clients)
}

// Close disconnects all clients
func (m *Manager) Close() {
	m.Lock()
	defer m.Unlock()

	for ws := range m.clients {
		ws.Close()
		delete(m.clients, ws)
	}
}

func (m *Manager) addClient(ws *websocket.Conn) {
	m.Lock()
	defer m.Unlock()
	m.clients[ws] = struct{}{}
}

func (m *Manager) removeClient(ws *websocket.Conn) {
	m.Lock()
	defer m.Unlock()

	if _, ok := m.clients[ws]; ok {
		ws.Close()
		delete(m.clients, ws)
	}
}
