package entities

import "time"

// NotificationSeverity controls how a toast is rendered
type NotificationSeverity string

const (
	SeverityDefault     NotificationSeverity = "default"
	SeverityDestructive NotificationSeverity = "destructive"
)

// Notification is a user-visible toast
type Notification struct {
	ID          string               `json:"id"`
	Title       string               `json:"title"`
	Description string               `json:"description"`
	Severity    NotificationSeverity `json:"severity"`
	CreatedAt   time.Time            `json:"created_at"`
}
