package notify

import (
	"fmt"

	"sctclinic/config"
	"sctclinic/models"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"
)

// Mailer sends patient-facing booking emails.
type Mailer interface {
	SendAppointmentReceived(appt models.Appointment) error
	SendAppointmentConfirmed(appt models.Appointment) error
	SendAppointmentReminder(p models.ReminderPayload) error
}

// SendGridMailer is the production implementation. When no API key is
// configured it logs and skips, so local runs do not need SendGrid.
type SendGridMailer struct{}

func NewSendGridMailer() *SendGridMailer {
	return &SendGridMailer{}
}

func (m *SendGridMailer) send(toEmail, toName, subject, plain string) error {
	apiKey := config.AppConfig.SendgridAPIKey
	if apiKey == "" {
		zap.L().Info("SENDGRID_API_KEY not configured, skipping email",
			zap.String("to", toEmail), zap.String("subject", subject))
		return nil
	}

	from := mail.NewEmail(config.AppConfig.SendgridFromName, config.AppConfig.SendgridFromEmail)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, plain, "")

	client := sendgrid.NewSendClient(apiKey)
	resp, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("sendgrid send failed: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("sendgrid returned status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}

func (m *SendGridMailer) SendAppointmentReceived(appt models.Appointment) error {
	clinic := config.AppConfig.ClinicName
	subject := fmt.Sprintf("We received your appointment request - %s", clinic)
	body := fmt.Sprintf(
		"Dear %s,\n\nWe have received your appointment request.\n\n"+
			"Service: %s\nDate: %s\nTime: %s\n\n"+
			"Our team will confirm your appointment shortly.\n\n%s",
		appt.Name, appt.Service, appt.Date, appt.Time, clinic,
	)
	return m.send(appt.Email, appt.Name, subject, body)
}

func (m *SendGridMailer) SendAppointmentConfirmed(appt models.Appointment) error {
	clinic := config.AppConfig.ClinicName
	subject := fmt.Sprintf("Your appointment is confirmed - %s", clinic)
	body := fmt.Sprintf(
		"Dear %s,\n\nYour appointment has been confirmed.\n\n"+
			"Service: %s\nDate: %s\nTime: %s\n\n"+
			"Please arrive 10 minutes early. If you need to reschedule, call the clinic.\n\n%s",
		appt.Name, appt.Service, appt.Date, appt.Time, clinic,
	)
	return m.send(appt.Email, appt.Name, subject, body)
}

func (m *SendGridMailer) SendAppointmentReminder(p models.ReminderPayload) error {
	clinic := config.AppConfig.ClinicName
	subject := fmt.Sprintf("Appointment reminder - %s", clinic)
	body := fmt.Sprintf(
		"Dear %s,\n\nThis is a reminder of your upcoming appointment.\n\n"+
			"Service: %s\nDate: %s\nTime: %s\n\nSee you soon.\n\n%s",
		p.Name, p.Service, p.Date, p.Time, clinic,
	)
	return m.send(p.Email, p.Name, subject, body)
}
