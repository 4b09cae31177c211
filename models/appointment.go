package models

import "time"

// Appointment statuses. The full set is authoritative for every endpoint,
// including admin status updates.
const (
	AppointmentPending   = "pending"
	AppointmentConfirmed = "confirmed"
	AppointmentCancelled = "cancelled"
	AppointmentCompleted = "completed"
	AppointmentNoShow    = "no-show"
)

// AppointmentStatuses lists every accepted status value.
var AppointmentStatuses = []string{
	AppointmentPending,
	AppointmentConfirmed,
	AppointmentCancelled,
	AppointmentCompleted,
	AppointmentNoShow,
}

// IsValidAppointmentStatus reports whether s is a known status.
func IsValidAppointmentStatus(s string) bool {
	for _, v := range AppointmentStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// Appointment is a patient's booking request.
type Appointment struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Phone     string    `bson:"phone" json:"phone"`
	Service   string    `bson:"service" json:"service"`
	Date      string    `bson:"date" json:"date"` // "2025-09-19"
	Time      string    `bson:"time" json:"time"` // slot label, e.g. "10:30 AM"
	Message   string    `bson:"message,omitempty" json:"message,omitempty"`
	Status    string    `bson:"status" json:"status"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// BookAppointmentRequest is the public booking form payload.
type BookAppointmentRequest struct {
	Name         string `json:"name" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Phone        string `json:"phone" binding:"required"`
	Service      string `json:"service" binding:"required"`
	Date         string `json:"date" binding:"required"`
	Time         string `json:"time" binding:"required"`
	Message      string `json:"message"`
	CaptchaToken string `json:"captchaToken"`
}

// AppointmentFilter narrows admin list queries.
type AppointmentFilter struct {
	Date   string
	Status string
}
