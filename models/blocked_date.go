package models

import "time"

// BlockedDate marks a calendar day (or specific slots on it) as unbookable.
// An empty TimeSlots list blocks the whole day.
type BlockedDate struct {
	ID            string    `bson:"id" json:"id"`
	Date          string    `bson:"date" json:"date"` // "2025-09-19"
	TimeSlots     []string  `bson:"timeSlots,omitempty" json:"timeSlots,omitempty"`
	Reason        string    `bson:"reason" json:"reason"`
	BlockedBy     string    `bson:"blockedBy" json:"blockedBy"`
	BlockedByName string    `bson:"blockedByName" json:"blockedByName"`
	IsActive      bool      `bson:"isActive" json:"isActive"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt" json:"updatedAt"`
}

// CreateBlockedDateRequest is the admin payload for blocking a date.
type CreateBlockedDateRequest struct {
	Date      string   `json:"date" binding:"required"`
	TimeSlots []string `json:"timeSlots"`
	Reason    string   `json:"reason" binding:"required"`
}

// UpdateBlockedDateRequest carries a partial update; nil fields are untouched.
type UpdateBlockedDateRequest struct {
	Reason    *string   `json:"reason,omitempty"`
	IsActive  *bool     `json:"isActive,omitempty"`
	TimeSlots *[]string `json:"timeSlots,omitempty"`
}

// BlockedDateFilter narrows admin list queries.
type BlockedDateFilter struct {
	StartDate string
	EndDate   string
	IsActive  *bool
}
