package availability

import (
	"context"
	"testing"

	"sctclinic/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeBlockedRepo struct {
	blocks map[string]models.BlockedDate // keyed by date
}

func (f *fakeBlockedRepo) Create(ctx context.Context, bd models.BlockedDate) error { return nil }
func (f *fakeBlockedRepo) GetByID(ctx context.Context, id string) (*models.BlockedDate, error) {
	return nil, mongo.ErrNoDocuments
}
func (f *fakeBlockedRepo) GetActiveByDate(ctx context.Context, date string) (*models.BlockedDate, error) {
	bd, ok := f.blocks[date]
	if !ok || !bd.IsActive {
		return nil, mongo.ErrNoDocuments
	}
	return &bd, nil
}
func (f *fakeBlockedRepo) List(ctx context.Context, filter models.BlockedDateFilter) ([]models.BlockedDate, error) {
	return nil, nil
}
func (f *fakeBlockedRepo) Save(ctx context.Context, bd *models.BlockedDate) error { return nil }
func (f *fakeBlockedRepo) Delete(ctx context.Context, id string) error            { return nil }
func (f *fakeBlockedRepo) CountActive(ctx context.Context) (int64, error)         { return 0, nil }
func (f *fakeBlockedRepo) EnsureIndexes() error                                   { return nil }

type fakeApptRepo struct {
	appts []models.Appointment
}

func (f *fakeApptRepo) Create(ctx context.Context, a models.Appointment) error { return nil }
func (f *fakeApptRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	return nil, mongo.ErrNoDocuments
}
func (f *fakeApptRepo) GetByDate(ctx context.Context, date string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range f.appts {
		if a.Date == date {
			out = append(out, a)
		}
	}
	return out, nil
}
func (f *fakeApptRepo) List(ctx context.Context, filter models.AppointmentFilter) ([]models.Appointment, error) {
	return f.appts, nil
}
func (f *fakeApptRepo) UpdateStatus(ctx context.Context, id, status string) error { return nil }
func (f *fakeApptRepo) Delete(ctx context.Context, id string) error               { return nil }
func (f *fakeApptRepo) CountAll(ctx context.Context) (int64, error)               { return 0, nil }
func (f *fakeApptRepo) CountByStatus(ctx context.Context, s string) (int64, error) {
	return 0, nil
}
func (f *fakeApptRepo) CountByDate(ctx context.Context, d string) (int64, error) { return 0, nil }
func (f *fakeApptRepo) EnsureIndexes() error                                     { return nil }

func newResolver(blocks map[string]models.BlockedDate, appts []models.Appointment) *DefaultResolver {
	return &DefaultResolver{
		BlockedRepo:     &fakeBlockedRepo{blocks: blocks},
		AppointmentRepo: &fakeApptRepo{appts: appts},
	}
}

func TestResolveDayNoBlocksNoAppointments(t *testing.T) {
	r := newResolver(nil, nil)
	day, err := r.ResolveDay(context.Background(), "2025-09-19")
	require.NoError(t, err)

	assert.False(t, day.AllBlocked)
	assert.Equal(t, models.ClinicSlots, day.AvailableSlots)
}

func TestResolveDayWholeDayBlocked(t *testing.T) {
	r := newResolver(map[string]models.BlockedDate{
		"2025-09-19": {Date: "2025-09-19", Reason: "Doctor unavailable", IsActive: true},
	}, nil)

	day, err := r.ResolveDay(context.Background(), "2025-09-19")
	require.NoError(t, err)

	assert.True(t, day.AllBlocked)
	assert.Equal(t, "Doctor unavailable", day.BlockReason)
	assert.Empty(t, day.AvailableSlots)
}

func TestResolveDayPartialBlock(t *testing.T) {
	r := newResolver(map[string]models.BlockedDate{
		"2025-09-19": {Date: "2025-09-19", Reason: "Surgery", TimeSlots: []string{"10:30 AM"}, IsActive: true},
	}, nil)

	day, err := r.ResolveDay(context.Background(), "2025-09-19")
	require.NoError(t, err)

	assert.False(t, day.AllBlocked)
	assert.Len(t, day.AvailableSlots, len(models.ClinicSlots)-1)
	assert.NotContains(t, day.AvailableSlots, "10:30 AM")
}

func TestResolveDayInactiveBlockIgnored(t *testing.T) {
	r := newResolver(map[string]models.BlockedDate{
		"2025-09-19": {Date: "2025-09-19", Reason: "Old", IsActive: false},
	}, nil)

	day, err := r.ResolveDay(context.Background(), "2025-09-19")
	require.NoError(t, err)
	assert.False(t, day.AllBlocked)
	assert.Equal(t, models.ClinicSlots, day.AvailableSlots)
}

func TestResolveDayAppointmentsConsumeSlots(t *testing.T) {
	r := newResolver(nil, []models.Appointment{
		{Date: "2025-09-19", Time: "11:00 AM", Status: models.AppointmentPending},
		{Date: "2025-09-19", Time: "05:00 PM", Status: models.AppointmentConfirmed},
		{Date: "2025-09-19", Time: "06:00 PM", Status: models.AppointmentCancelled},
		{Date: "2025-09-20", Time: "10:00 AM", Status: models.AppointmentPending},
	})

	day, err := r.ResolveDay(context.Background(), "2025-09-19")
	require.NoError(t, err)

	assert.NotContains(t, day.AvailableSlots, "11:00 AM")
	assert.NotContains(t, day.AvailableSlots, "05:00 PM")
	// Cancelled bookings release the slot; other days never count.
	assert.Contains(t, day.AvailableSlots, "06:00 PM")
	assert.Contains(t, day.AvailableSlots, "10:00 AM")
}

func TestResolveDayCombinesBlocksAndBookings(t *testing.T) {
	r := newResolver(map[string]models.BlockedDate{
		"2025-09-19": {Date: "2025-09-19", Reason: "Surgery", TimeSlots: []string{"09:30 AM"}, IsActive: true},
	}, []models.Appointment{
		{Date: "2025-09-19", Time: "10:00 AM", Status: models.AppointmentPending},
	})

	day, err := r.ResolveDay(context.Background(), "2025-09-19")
	require.NoError(t, err)

	assert.NotContains(t, day.AvailableSlots, "09:30 AM")
	assert.NotContains(t, day.AvailableSlots, "10:00 AM")
	assert.Len(t, day.AvailableSlots, len(models.ClinicSlots)-2)
}

func TestResolveDayBadDate(t *testing.T) {
	r := newResolver(nil, nil)
	_, err := r.ResolveDay(context.Background(), "next tuesday")
	assert.ErrorIs(t, err, ErrBadDate)
}
