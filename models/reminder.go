package models

// ReminderPayload is the asynq task body for a scheduled appointment reminder.
type ReminderPayload struct {
	AppointmentID string `json:"appointmentId"`
	Email         string `json:"email"`
	Name          string `json:"name"`
	Service       string `json:"service"`
	Date          string `json:"date"`
	Time          string `json:"time"`
}
