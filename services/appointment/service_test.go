package appointment

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"sctclinic/models"
	"sctclinic/services/availability"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeApptRepo struct {
	mu   sync.Mutex
	byID map[string]models.Appointment
}

func newFakeApptRepo() *fakeApptRepo {
	return &fakeApptRepo{byID: map[string]models.Appointment{}}
}

func (f *fakeApptRepo) Create(ctx context.Context, a models.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.byID[a.ID] = a
	return nil
}

func (f *fakeApptRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.byID[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &a, nil
}

func (f *fakeApptRepo) GetByDate(ctx context.Context, date string) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Appointment
	for _, a := range f.byID {
		if a.Date == date {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeApptRepo) List(ctx context.Context, filter models.AppointmentFilter) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Appointment
	for _, a := range f.byID {
		if filter.Date != "" && a.Date != filter.Date {
			continue
		}
		if filter.Status != "" && a.Status != filter.Status {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (f *fakeApptRepo) UpdateStatus(ctx context.Context, id, status string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.byID[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	a.Status = status
	f.byID[id] = a
	return nil
}

func (f *fakeApptRepo) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byID[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeApptRepo) CountAll(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.byID)), nil
}

func (f *fakeApptRepo) CountByStatus(ctx context.Context, status string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, a := range f.byID {
		if a.Status == status {
			n++
		}
	}
	return n, nil
}

func (f *fakeApptRepo) CountByDate(ctx context.Context, date string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, a := range f.byID {
		if a.Date == date {
			n++
		}
	}
	return n, nil
}

func (f *fakeApptRepo) EnsureIndexes() error { return nil }

type fakeBlockedRepo struct {
	blocks map[string]models.BlockedDate
}

func (f *fakeBlockedRepo) Create(ctx context.Context, bd models.BlockedDate) error { return nil }
func (f *fakeBlockedRepo) GetByID(ctx context.Context, id string) (*models.BlockedDate, error) {
	return nil, mongo.ErrNoDocuments
}
func (f *fakeBlockedRepo) GetActiveByDate(ctx context.Context, date string) (*models.BlockedDate, error) {
	bd, ok := f.blocks[date]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &bd, nil
}
func (f *fakeBlockedRepo) List(ctx context.Context, filter models.BlockedDateFilter) ([]models.BlockedDate, error) {
	return nil, nil
}
func (f *fakeBlockedRepo) Save(ctx context.Context, bd *models.BlockedDate) error { return nil }
func (f *fakeBlockedRepo) Delete(ctx context.Context, id string) error            { return nil }
func (f *fakeBlockedRepo) CountActive(ctx context.Context) (int64, error) {
	return int64(len(f.blocks)), nil
}
func (f *fakeBlockedRepo) EnsureIndexes() error { return nil }

type recordingScheduler struct {
	mu       sync.Mutex
	payloads []models.ReminderPayload
	fireAts  []time.Time
}

func (s *recordingScheduler) ScheduleReminder(p models.ReminderPayload, fireAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payloads = append(s.payloads, p)
	s.fireAts = append(s.fireAts, fireAt)
	return nil
}

func futureDate(days int) string {
	return time.Now().UTC().AddDate(0, 0, days).Format("2006-01-02")
}

func newService(blocks map[string]models.BlockedDate) (*DefaultService, *fakeApptRepo, *recordingScheduler) {
	repo := newFakeApptRepo()
	blocked := &fakeBlockedRepo{blocks: blocks}
	scheduler := &recordingScheduler{}
	svc := &DefaultService{
		Repo:        repo,
		BlockedRepo: blocked,
		Resolver:    &availability.DefaultResolver{BlockedRepo: blocked, AppointmentRepo: repo},
		Reminders:   scheduler,
	}
	return svc, repo, scheduler
}

func validBooking(date string) models.BookAppointmentRequest {
	return models.BookAppointmentRequest{
		Name:    "Asha Verma",
		Email:   "asha@example.com",
		Phone:   "+911234567890",
		Service: "Antenatal Checkup",
		Date:    date,
		Time:    "10:30 AM",
	}
}

func TestBookAppointment(t *testing.T) {
	svc, repo, _ := newService(nil)

	appt, err := svc.Book(context.Background(), validBooking(futureDate(3)), "1.2.3.4")
	require.NoError(t, err)

	assert.Equal(t, models.AppointmentPending, appt.Status)
	assert.NotEmpty(t, appt.ID)
	stored, err := repo.GetByID(context.Background(), appt.ID)
	require.NoError(t, err)
	assert.Equal(t, "Asha Verma", stored.Name)
}

func TestBookRejectsPastDate(t *testing.T) {
	svc, _, _ := newService(nil)

	_, err := svc.Book(context.Background(), validBooking("2020-01-01"), "1.2.3.4")
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Cannot book dates in the past", vErr.Message)
}

func TestBookRejectsUnknownSlot(t *testing.T) {
	svc, _, _ := newService(nil)

	req := validBooking(futureDate(3))
	req.Time = "02:00 PM" // midday gap, never offered
	_, err := svc.Book(context.Background(), req, "1.2.3.4")

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "time")
}

func TestBookRejectsBlockedDay(t *testing.T) {
	date := futureDate(3)
	svc, repo, _ := newService(map[string]models.BlockedDate{
		date: {Date: date, Reason: "Doctor unavailable", IsActive: true},
	})

	_, err := svc.Book(context.Background(), validBooking(date), "1.2.3.4")
	var slotErr *SlotUnavailableError
	require.ErrorAs(t, err, &slotErr)
	assert.Contains(t, slotErr.Message, "Doctor unavailable")
	assert.Empty(t, repo.byID)
}

func TestBookRejectsTakenSlot(t *testing.T) {
	date := futureDate(3)
	svc, _, _ := newService(nil)

	_, err := svc.Book(context.Background(), validBooking(date), "1.2.3.4")
	require.NoError(t, err)

	_, err = svc.Book(context.Background(), validBooking(date), "1.2.3.4")
	var slotErr *SlotUnavailableError
	require.ErrorAs(t, err, &slotErr)
}

func TestBookRejectsFailedCaptcha(t *testing.T) {
	svc, repo, _ := newService(nil)
	svc.VerifyCaptcha = func(token, ip string) error { return errors.New("bad token") }

	_, err := svc.Book(context.Background(), validBooking(futureDate(3)), "1.2.3.4")
	var capErr *CaptchaError
	require.ErrorAs(t, err, &capErr)
	assert.Empty(t, repo.byID)
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	svc, _, _ := newService(nil)
	_, err := svc.UpdateStatus(context.Background(), "any", "visited")

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
}

func TestUpdateStatusUnknownID(t *testing.T) {
	svc, _, _ := newService(nil)
	_, err := svc.UpdateStatus(context.Background(), "nope", models.AppointmentConfirmed)

	var nfErr *NotFoundError
	require.ErrorAs(t, err, &nfErr)
}

func TestConfirmSchedulesReminder(t *testing.T) {
	svc, _, scheduler := newService(nil)
	appt, err := svc.Book(context.Background(), validBooking(futureDate(7)), "1.2.3.4")
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(context.Background(), appt.ID, models.AppointmentConfirmed)
	require.NoError(t, err)
	assert.Equal(t, models.AppointmentConfirmed, updated.Status)

	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()
	require.Len(t, scheduler.payloads, 1)
	assert.Equal(t, appt.ID, scheduler.payloads[0].AppointmentID)
	day, _ := time.ParseInLocation("2006-01-02", appt.Date, time.UTC)
	assert.Equal(t, day.AddDate(0, 0, -1).Add(18*time.Hour), scheduler.fireAts[0])
}

func TestStats(t *testing.T) {
	date := futureDate(0)
	svc, repo, _ := newService(map[string]models.BlockedDate{
		futureDate(9): {Date: futureDate(9), Reason: "Holiday", IsActive: true},
	})

	req := validBooking(date)
	req.Time = "05:00 PM"
	_, err := svc.Book(context.Background(), req, "1.2.3.4")
	require.NoError(t, err)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.TotalAppointments)
	assert.Equal(t, int64(1), stats.PendingAppointments)
	assert.Equal(t, int64(1), stats.TodayAppointments)
	assert.Equal(t, int64(1), stats.ActiveBlockedDates)
	assert.Len(t, repo.byID, 1)
}

func TestDeleteAppointment(t *testing.T) {
	svc, repo, _ := newService(nil)
	appt, err := svc.Book(context.Background(), validBooking(futureDate(3)), "1.2.3.4")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), appt.ID))
	assert.Empty(t, repo.byID)

	var nfErr *NotFoundError
	require.ErrorAs(t, svc.Delete(context.Background(), appt.ID), &nfErr)
}
