package usecase

import (
	"sync"
	"time"

	"github.com/anqasa/smarttaxi/internal/pkg/models"
	"github.com/anqasa/smarttaxi/internal/pkg/scheduler"
	"github.com/anqasa/smarttaxi/services/client"
)

// ClientUC owns the session, the role/activation state machine and the
// polling loops. All shared state is guarded by mu; the loops run their ticks
// outside the lock and re-check the session epoch before applying results.
type ClientUC struct {
	cfg   *models.Config
	cred  *client.Credential
	gw    client.BackendGW
	repo  client.StateRepo
	bcast client.Broadcaster

	mu      sync.Mutex
	state   models.SessionState
	profile *models.UserProfile
	// epoch increments on every login, restore and logout. A tick result
	// carrying a stale epoch belongs to a previous session and is discarded.
	epoch uint64

	hasPosition bool
	position    models.GeoPosition

	taxis  []models.NearbyTaxi
	csInfo *models.CustomerServiceInfo

	nearbyLoop *scheduler.Loop
	reportLoop *scheduler.Loop
	notifier   *Notifier
}

// NewClientUC creates the client runtime core
func NewClientUC(
	cfg *models.Config,
	cred *client.Credential,
	gw client.BackendGW,
	repo client.StateRepo,
	bcast client.Broadcaster,
) *ClientUC {
	return &ClientUC{
		cfg:        cfg,
		cred:       cred,
		gw:         gw,
		repo:       repo,
		bcast:      bcast,
		state:      models.StateAnonymous,
		nearbyLoop: scheduler.NewLoop("nearby-taxis", time.Duration(cfg.Poll.NearbyIntervalSec)*time.Second),
		reportLoop: scheduler.NewLoop("location-report", time.Duration(cfg.Poll.ReportIntervalSec)*time.Second),
		notifier:   NewNotifier(time.Duration(cfg.Poll.NotificationTTLSec)*time.Second, bcast),
	}
}

// Close stops all loops and releases resources
func (uc *ClientUC) Close() {
	uc.nearbyLoop.Stop()
	uc.reportLoop.Stop()
	uc.notifier.Dismiss()
}
