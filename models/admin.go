package models

import "time"

// Admin is a dashboard account. PasswordHash is a bcrypt hash and is never
// serialized to JSON.
type Admin struct {
	ID           string    `bson:"id" json:"id"`
	Email        string    `bson:"email" json:"email"`
	Name         string    `bson:"name" json:"name"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// AdminLoginRequest is the credentials payload for the dashboard login.
type AdminLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// DashboardStats summarizes the admin landing view.
type DashboardStats struct {
	TotalAppointments   int64 `json:"totalAppointments"`
	PendingAppointments int64 `json:"pendingAppointments"`
	TodayAppointments   int64 `json:"todayAppointments"`
	ActiveBlockedDates  int64 `json:"activeBlockedDates"`
}
