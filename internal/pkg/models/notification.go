package models

import "time"

// Notification kinds
const (
	NotificationSuccess = "success"
	NotificationError   = "error"
)

// Notification is a user-facing status message. At most one is visible at a
// time; posting a new one supersedes the current one.
type Notification struct {
	Kind     string    `json:"kind"`
	Message  string    `json:"message"`
	PostedAt time.Time `json:"posted_at"`
}

// CustomerServiceInfo is read-only reference data fetched once at startup
type CustomerServiceInfo struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
}
