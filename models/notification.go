package models

import "time"

const (
	NotificationTypeBlockedDate = "blocked_date"
	NotificationTypeEmergency   = "emergency"
)

// TickerNotification is a visitor-facing announcement derived from a blocked
// date. Its display window is not stored; it is computed from Date by the
// ticker service so a policy change never leaves stale windows behind.
type TickerNotification struct {
	ID                   string    `bson:"id" json:"id"`
	Message              string    `bson:"message" json:"message"`
	Type                 string    `bson:"type" json:"type"`
	Date                 string    `bson:"date" json:"date"` // the blocked calendar day
	IsActive             bool      `bson:"isActive" json:"isActive"`
	Priority             int       `bson:"priority" json:"priority"`
	RelatedBlockedDateID string    `bson:"relatedBlockedDateId" json:"relatedBlockedDateId"`
	CreatedAt            time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt            time.Time `bson:"updatedAt" json:"updatedAt"`
}

// TickerNotificationView is what the public ticker endpoint returns, with the
// display window resolved.
type TickerNotificationView struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	IsActive  bool      `json:"isActive"`
	Priority  int       `json:"priority"`
}
