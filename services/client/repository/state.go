package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/anqasa/smarttaxi/internal/pkg/models"
)

// Storage keys. The bearer credential lives under a single key, read once at
// startup and cleared on logout or rejection.
const (
	credentialKey      = "access_token"
	customerServiceKey = "customer_service_info"
)

const schema = `
CREATE TABLE IF NOT EXISTS client_state (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
)`

// StateRepo is the client-local durable store backed by a sqlite file
type StateRepo struct {
	db *sqlx.DB
}

// NewStateRepo opens (and initializes on first run) the local store
func NewStateRepo(cfg *models.Config) (*StateRepo, error) {
	db, err := sqlx.Connect("sqlite", cfg.Storage.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open local store: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize local store: %w", err)
	}

	return &StateRepo{db: db}, nil
}

// NewStateRepoWithDB creates a repo over an existing database handle
func NewStateRepoWithDB(db *sqlx.DB) *StateRepo {
	return &StateRepo{db: db}
}

// GetCredential returns the persisted bearer credential, empty when absent
func (r *StateRepo) GetCredential(ctx context.Context) (string, error) {
	return r.get(ctx, credentialKey)
}

// SaveCredential persists the bearer credential for future process starts
func (r *StateRepo) SaveCredential(ctx context.Context, token string) error {
	return r.set(ctx, credentialKey, token)
}

// DeleteCredential discards the persisted bearer credential
func (r *StateRepo) DeleteCredential(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM client_state WHERE key = ?", credentialKey)
	if err != nil {
		return fmt.Errorf("failed to delete credential: %w", err)
	}
	return nil
}

// GetCustomerServiceInfo returns the cached reference data, nil when absent
func (r *StateRepo) GetCustomerServiceInfo(ctx context.Context) (*models.CustomerServiceInfo, error) {
	raw, err := r.get(ctx, customerServiceKey)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, nil
	}

	var info models.CustomerServiceInfo
	if err := json.Unmarshal([]byte(raw), &info); err != nil {
		return nil, fmt.Errorf("failed to decode cached customer service info: %w", err)
	}
	return &info, nil
}

// SaveCustomerServiceInfo caches the reference data locally
func (r *StateRepo) SaveCustomerServiceInfo(ctx context.Context, info *models.CustomerServiceInfo) error {
	raw, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("failed to encode customer service info: %w", err)
	}
	return r.set(ctx, customerServiceKey, string(raw))
}

// Close closes the underlying database
func (r *StateRepo) Close() error {
	return r.db.Close()
}

func (r *StateRepo) get(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.GetContext(ctx, &value, "SELECT value FROM client_state WHERE key = ?", key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", key, err)
	}
	return value, nil
}

func (r *StateRepo) set(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO client_state (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, value)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}
