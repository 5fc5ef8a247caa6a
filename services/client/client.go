package client

import (
	"context"
	"sync"

	"github.com/anqasa/smarttaxi/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_client.go -package=mocks github.com/anqasa/smarttaxi/services/client Broadcaster,PositionProvider

// Credential holds the current bearer token. The session store is the only
// writer; the gateway reads it at call time, so token rotation propagates to
// every outbound request immediately.
type Credential struct {
	mu    sync.RWMutex
	token string
}

// Set replaces the current token
func (c *Credential) Set(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

// Get returns the current token, empty when anonymous
func (c *Credential) Get() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// Clear discards the current token
func (c *Credential) Clear() {
	c.Set("")
}

// Broadcaster pushes state change events to the UI layer
type Broadcaster interface {
	Broadcast(eventType string, payload interface{})
}

// PositionProvider obtains a one-shot device position at startup
type PositionProvider interface {
	CurrentPosition(ctx context.Context) (models.GeoPosition, error)
}
