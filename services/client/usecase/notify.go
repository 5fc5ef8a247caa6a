package usecase

import (
	"sync"
	"time"

	"github.com/anqasa/smarttaxi/internal/pkg/models"
	"github.com/anqasa/smarttaxi/internal/pkg/websocket"
	"github.com/anqasa/smarttaxi/services/client"
)

// Notifier is the single-slot notification queue. Posting replaces the
// visible notification and restarts the dismissal timer; the superseded timer
// is cancelled so only one auto-dismiss fires per post.
type Notifier struct {
	mu      sync.Mutex
	current *models.Notification
	timer   *time.Timer
	ttl     time.Duration
	bcast   client.Broadcaster
}

// NewNotifier creates a notifier with the given auto-dismiss TTL
func NewNotifier(ttl time.Duration, bcast client.Broadcaster) *Notifier {
	return &Notifier{
		ttl:   ttl,
		bcast: bcast,
	}
}

// Post replaces the current notification and restarts the dismissal timer
func (n *Notifier) Post(kind, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.timer != nil {
		n.timer.Stop()
	}

	posted := &models.Notification{
		Kind:     kind,
		Message:  message,
		PostedAt: time.Now(),
	}
	n.current = posted
	n.bcast.Broadcast(websocket.EventNotification, posted)

	// The callback dismisses only the notification it was armed for; a
	// stopped timer that already fired must not clear a successor.
	n.timer = time.AfterFunc(n.ttl, func() {
		n.expire(posted)
	})
}

// Dismiss clears the current notification and cancels its timer
func (n *Notifier) Dismiss() {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
	if n.current != nil {
		n.current = nil
		n.bcast.Broadcast(websocket.EventNotification, nil)
	}
}

// Current returns the visible notification, nil when none
func (n *Notifier) Current() *models.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

func (n *Notifier) expire(posted *models.Notification) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.current != posted {
		return
	}
	n.current = nil
	n.timer = nil
	n.bcast.Broadcast(websocket.EventNotification, nil)
}

// Notification returns the currently visible notification for the UI layer
func (uc *ClientUC) Notification() *models.Notification {
	return uc.notifier.Current()
}

// DismissNotification clears the visible notification explicitly
func (uc *ClientUC) DismissNotification() {
	uc.notifier.Dismiss()
}
