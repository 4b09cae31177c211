package appointment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"sctclinic/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Reminders go out the evening before the visit.
const reminderHourOfDay = 18

func (s *DefaultService) Book(ctx context.Context, req models.BookAppointmentRequest, clientIP string) (*models.Appointment, error) {
	if s.VerifyCaptcha != nil {
		if err := s.VerifyCaptcha(req.CaptchaToken, clientIP); err != nil {
			zap.L().Warn("captcha verification failed", zap.String("ip", clientIP), zap.Error(err))
			return nil, &CaptchaError{Message: "CAPTCHA verification failed"}
		}
	}

	fields := map[string]string{}
	day, err := time.ParseInLocation("2006-01-02", req.Date, time.UTC)
	if err != nil {
		fields["date"] = "date must be in YYYY-MM-DD format"
	}
	if !isClinicSlot(req.Time) {
		fields["time"] = fmt.Sprintf("unknown time slot %q", req.Time)
	}
	if strings.TrimSpace(req.Name) == "" {
		fields["name"] = "name is required"
	}
	if len(fields) > 0 {
		return nil, &ValidationError{Message: "Invalid appointment payload", Fields: fields}
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	if day.Before(today) {
		return nil, &ValidationError{Message: "Cannot book dates in the past"}
	}

	// Availability is re-checked server-side; the date picker is only a hint.
	avail, err := s.Resolver.ResolveDay(ctx, req.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve availability: %w", err)
	}
	if avail.AllBlocked {
		msg := "The clinic is not taking appointments on this date"
		if avail.BlockReason != "" {
			msg = fmt.Sprintf("%s: %s", msg, avail.BlockReason)
		}
		return nil, &SlotUnavailableError{Message: msg}
	}
	if !contains(avail.AvailableSlots, req.Time) {
		return nil, &SlotUnavailableError{Message: "This time slot is no longer available"}
	}

	now := time.Now().UTC()
	appt := models.Appointment{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(req.Name),
		Email:     strings.TrimSpace(req.Email),
		Phone:     strings.TrimSpace(req.Phone),
		Service:   req.Service,
		Date:      req.Date,
		Time:      req.Time,
		Message:   strings.TrimSpace(req.Message),
		Status:    models.AppointmentPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.Repo.Create(ctx, appt); err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	if s.Mailer != nil {
		go func(a models.Appointment) {
			if err := s.Mailer.SendAppointmentReceived(a); err != nil {
				zap.L().Warn("failed to send booking acknowledgement",
					zap.String("appointmentId", a.ID), zap.Error(err))
			}
		}(appt)
	}

	return &appt, nil
}

func (s *DefaultService) List(ctx context.Context, filter models.AppointmentFilter) ([]models.Appointment, error) {
	return s.Repo.List(ctx, filter)
}

func (s *DefaultService) UpdateStatus(ctx context.Context, id, status string) (*models.Appointment, error) {
	if !models.IsValidAppointmentStatus(status) {
		return nil, &ValidationError{
			Message: "Invalid appointment status",
			Fields:  map[string]string{"status": fmt.Sprintf("status must be one of %s", strings.Join(models.AppointmentStatuses, ", "))},
		}
	}

	if err := s.Repo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{Message: "Appointment not found"}
		}
		return nil, fmt.Errorf("failed to update appointment status: %w", err)
	}

	appt, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to reload appointment: %w", err)
	}

	if status == models.AppointmentConfirmed {
		s.onConfirmed(*appt)
	}
	return appt, nil
}

// onConfirmed sends the confirmation email and schedules the reminder for
// the evening before. Both are best effort.
func (s *DefaultService) onConfirmed(appt models.Appointment) {
	if s.Mailer != nil {
		go func() {
			if err := s.Mailer.SendAppointmentConfirmed(appt); err != nil {
				zap.L().Warn("failed to send confirmation email",
					zap.String("appointmentId", appt.ID), zap.Error(err))
			}
		}()
	}

	if s.Reminders == nil {
		return
	}
	day, err := time.ParseInLocation("2006-01-02", appt.Date, time.UTC)
	if err != nil {
		return
	}
	fireAt := day.AddDate(0, 0, -1).Add(reminderHourOfDay * time.Hour)
	if fireAt.Before(time.Now().UTC()) {
		return
	}
	payload := models.ReminderPayload{
		AppointmentID: appt.ID,
		Email:         appt.Email,
		Name:          appt.Name,
		Service:       appt.Service,
		Date:          appt.Date,
		Time:          appt.Time,
	}
	if err := s.Reminders.ScheduleReminder(payload, fireAt); err != nil {
		zap.L().Warn("failed to schedule reminder",
			zap.String("appointmentId", appt.ID), zap.Error(err))
	}
}

func (s *DefaultService) Delete(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return &NotFoundError{Message: "Appointment not found"}
		}
		return fmt.Errorf("failed to delete appointment: %w", err)
	}
	return nil
}

func (s *DefaultService) Stats(ctx context.Context) (*models.DashboardStats, error) {
	total, err := s.Repo.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	pending, err := s.Repo.CountByStatus(ctx, models.AppointmentPending)
	if err != nil {
		return nil, err
	}
	today, err := s.Repo.CountByDate(ctx, time.Now().UTC().Format("2006-01-02"))
	if err != nil {
		return nil, err
	}
	blocked, err := s.BlockedRepo.CountActive(ctx)
	if err != nil {
		return nil, err
	}
	return &models.DashboardStats{
		TotalAppointments:   total,
		PendingAppointments: pending,
		TodayAppointments:   today,
		ActiveBlockedDates:  blocked,
	}, nil
}

func isClinicSlot(label string) bool {
	for _, s := range models.ClinicSlots {
		if s == label {
			return true
		}
	}
	return false
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
