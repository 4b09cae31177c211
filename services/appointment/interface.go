package appointment

import (
	"context"

	appointmentRepo "sctclinic/database/repository/appointment"
	blockedDateRepo "sctclinic/database/repository/blockeddate"
	"sctclinic/models"
	"sctclinic/services/availability"
	"sctclinic/services/notify"
	"sctclinic/services/tasks"
)

// Service owns the appointment lifecycle: public booking plus the admin
// status flow.
type Service interface {
	Book(ctx context.Context, req models.BookAppointmentRequest, clientIP string) (*models.Appointment, error)
	List(ctx context.Context, filter models.AppointmentFilter) ([]models.Appointment, error)
	UpdateStatus(ctx context.Context, id, status string) (*models.Appointment, error)
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (*models.DashboardStats, error)
}

// DefaultService is the production implementation.
type DefaultService struct {
	Repo        appointmentRepo.AppointmentRepository
	BlockedRepo blockedDateRepo.BlockedDateRepository
	Resolver    availability.Resolver
	Mailer      notify.Mailer
	Reminders   tasks.ReminderScheduler

	// VerifyCaptcha guards the public booking form. Nil disables the check
	// (tests, local development without a secret).
	VerifyCaptcha func(token, remoteIP string) error
}
