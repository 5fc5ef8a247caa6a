package websocket

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	gorilla "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(m *Manager) *httptest.Server {
	e := echo.New()
	e.GET("/ws", m.HandleConnection)
	return httptest.NewServer(e)
}

func dialTestServer(t *testing.T, server *httptest.Server) *gorilla.Conn {
	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws"
	conn, _, err := gorilla.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	return conn
}

func TestNewManager(t *testing.T) {
	// Act
	manager := NewManager()

	// Assert
	assert.NotNil(t, manager)
	assert.Equal(t, 0, manager.ClientCount())
}

func TestManager_Broadcast(t *testing.T) {
	// Arrange
	manager := NewManager()
	server := newTestServer(manager)
	defer server.Close()

	conn := dialTestServer(t, server)
	defer conn.Close()

	assert.Eventually(t, func() bool {
		return manager.ClientCount() == 1
	}, time.Second, 10*time.Millisecond)

	// Act
	manager.Broadcast(EventNotification, map[string]string{"message": "Logged in"})

	// Assert
	conn.SetReadDeadline(time.Now().Add(time.Second))
	var event Event
	require.NoError(t, conn.ReadJSON(&event))
	assert.Equal(t, EventNotification, event.Type)

	payload, ok := event.Payload.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Logged in", payload["message"])
}

func TestManager_BroadcastDropsStalledClient(t *testing.T) {
	// Arrange: a client that never reads, so the connection's buffers fill up
	manager := NewManager()
	manager.writeTimeout = 50 * time.Millisecond
	server := newTestServer(manager)
	defer server.Close()

	conn := dialTestServer(t, server)
	defer conn.Close()

	assert.Eventually(t, func() bool {
		return manager.ClientCount() == 1
	}, time.Second, 10*time.Millisecond)

	// Act: push large payloads until the write deadline trips. Each call is
	// bounded by the deadline, so this loop cannot hang.
	payload := strings.Repeat("x", 256*1024)
	for i := 0; i < 40 && manager.ClientCount() > 0; i++ {
		manager.Broadcast(EventTaxis, payload)
	}

	// Assert: the stalled client was dropped rather than blocking Broadcast
	assert.Equal(t, 0, manager.ClientCount())
}

func TestManager_ClientDisconnectUnregisters(t *testing.T) {
	// Arrange
	manager := NewManager()
	server := newTestServer(manager)
	defer server.Close()

	conn := dialTestServer(t, server)

	assert.Eventually(t, func() bool {
		return manager.ClientCount() == 1
	}, time.Second, 10*time.Millisecond)

	// Act
	conn.Close()

	// Assert
	assert.Eventually(t, func() bool {
		return manager.ClientCount() == 0
	}, time.Second, 10*time.Millisecond)
}

func TestManager_Close(t *testing.T) {
	// Arrange
	manager := NewManager()
	server := newTestServer(manager)
	defer server.Close()

	conn := dialTestServer(t, server)
	defer conn.Close()

	assert.Eventually(t, func() bool {
		return manager.ClientCount() == 1
	}, time.Second, 10*time.Millisecond)

	// Act
	manager.Close()

	// Assert
	assert.Equal(t, 0, manager.ClientCount())

	// The closed connection fails on the next read
	conn.SetReadDeadline(time.Now().Add(time.Second))
	_, _, err := conn.ReadMessage()
	assert.Error(t, err)
}
