package blockeddate

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	blockedDateRepo "sctclinic/database/repository/blockeddate"
	"sctclinic/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeBlockedRepo struct {
	byID      map[string]models.BlockedDate
	createErr error
	saveErr   error
}

func newFakeBlockedRepo() *fakeBlockedRepo {
	return &fakeBlockedRepo{byID: map[string]models.BlockedDate{}}
}

func (f *fakeBlockedRepo) Create(ctx context.Context, bd models.BlockedDate) error {
	if f.createErr != nil {
		return f.createErr
	}
	for _, existing := range f.byID {
		if existing.Date == bd.Date && existing.IsActive && bd.IsActive {
			return blockedDateRepo.ErrDuplicateActiveDate
		}
	}
	f.byID[bd.ID] = bd
	return nil
}

func (f *fakeBlockedRepo) GetByID(ctx context.Context, id string) (*models.BlockedDate, error) {
	bd, ok := f.byID[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &bd, nil
}

func (f *fakeBlockedRepo) GetActiveByDate(ctx context.Context, date string) (*models.BlockedDate, error) {
	for _, bd := range f.byID {
		if bd.Date == date && bd.IsActive {
			out := bd
			return &out, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeBlockedRepo) List(ctx context.Context, filter models.BlockedDateFilter) ([]models.BlockedDate, error) {
	var out []models.BlockedDate
	for _, bd := range f.byID {
		if filter.StartDate != "" && bd.Date < filter.StartDate {
			continue
		}
		if filter.EndDate != "" && bd.Date > filter.EndDate {
			continue
		}
		if filter.IsActive != nil && bd.IsActive != *filter.IsActive {
			continue
		}
		out = append(out, bd)
	}
	return out, nil
}

func (f *fakeBlockedRepo) Save(ctx context.Context, bd *models.BlockedDate) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	if _, ok := f.byID[bd.ID]; !ok {
		return mongo.ErrNoDocuments
	}
	f.byID[bd.ID] = *bd
	return nil
}

func (f *fakeBlockedRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeBlockedRepo) CountActive(ctx context.Context) (int64, error) {
	var n int64
	for _, bd := range f.byID {
		if bd.IsActive {
			n++
		}
	}
	return n, nil
}

func (f *fakeBlockedRepo) EnsureIndexes() error { return nil }

type fakeNotifRepo struct {
	byBlockedID map[string]models.TickerNotification
	createErr   error
}

func newFakeNotifRepo() *fakeNotifRepo {
	return &fakeNotifRepo{byBlockedID: map[string]models.TickerNotification{}}
}

func (f *fakeNotifRepo) Create(ctx context.Context, n models.TickerNotification) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.byBlockedID[n.RelatedBlockedDateID] = n
	return nil
}

func (f *fakeNotifRepo) GetByBlockedDateID(ctx context.Context, id string) (*models.TickerNotification, error) {
	n, ok := f.byBlockedID[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &n, nil
}

func (f *fakeNotifRepo) Save(ctx context.Context, n *models.TickerNotification) error {
	f.byBlockedID[n.RelatedBlockedDateID] = *n
	return nil
}

func (f *fakeNotifRepo) DeleteByBlockedDateID(ctx context.Context, id string) error {
	delete(f.byBlockedID, id)
	return nil
}

func (f *fakeNotifRepo) ListActive(ctx context.Context) ([]models.TickerNotification, error) {
	var out []models.TickerNotification
	for _, n := range f.byBlockedID {
		if n.IsActive {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *fakeNotifRepo) EnsureIndexes() error { return nil }

func futureDate(days int) string {
	return time.Now().UTC().AddDate(0, 0, days).Format("2006-01-02")
}

func newService() (*DefaultService, *fakeBlockedRepo, *fakeNotifRepo) {
	repo := newFakeBlockedRepo()
	notifs := newFakeNotifRepo()
	return &DefaultService{Repo: repo, NotifRepo: notifs}, repo, notifs
}

func TestCreateBlockedDate(t *testing.T) {
	svc, repo, notifs := newService()

	bd, err := svc.Create(context.Background(), models.CreateBlockedDateRequest{
		Date:      futureDate(5),
		TimeSlots: []string{"10:30 AM", "11:00 AM"},
		Reason:    "Doctor unavailable",
	}, "admin-1", "Dr. Admin")
	require.NoError(t, err)

	require.NotEmpty(t, bd.ID)
	assert.True(t, bd.IsActive)
	assert.Equal(t, "admin-1", bd.BlockedBy)
	assert.Equal(t, []string{"10:30 AM", "11:00 AM"}, bd.TimeSlots)
	assert.Contains(t, repo.byID, bd.ID)

	n, err := notifs.GetByBlockedDateID(context.Background(), bd.ID)
	require.NoError(t, err)
	assert.Equal(t, bd.ID, n.ID)
	assert.Equal(t, 1, n.Priority)
	assert.Equal(t, models.NotificationTypeBlockedDate, n.Type)
	assert.True(t, n.IsActive)
	assert.Contains(t, n.Message, "Doctor unavailable")
	assert.Contains(t, n.Message, "10:30 AM")
}

func TestCreateRejectsPastDate(t *testing.T) {
	svc, _, notifs := newService()

	_, err := svc.Create(context.Background(), models.CreateBlockedDateRequest{
		Date:   "2020-01-01",
		Reason: "Holiday",
	}, "admin-1", "Dr. Admin")

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Cannot block dates in the past", vErr.Message)
	assert.Empty(t, notifs.byBlockedID)
}

func TestCreateRejectsBadPayload(t *testing.T) {
	svc, _, _ := newService()

	_, err := svc.Create(context.Background(), models.CreateBlockedDateRequest{
		Date:      "not-a-date",
		TimeSlots: []string{"01:23 AM"},
		Reason:    strings.Repeat("x", 60),
	}, "admin-1", "Dr. Admin")

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "date")
	assert.Contains(t, vErr.Fields, "reason")
	assert.Contains(t, vErr.Fields, "timeSlots")
}

func TestCreateRejectsDuplicateActiveDate(t *testing.T) {
	svc, _, _ := newService()
	date := futureDate(3)

	_, err := svc.Create(context.Background(), models.CreateBlockedDateRequest{Date: date, Reason: "Holiday"}, "a", "A")
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), models.CreateBlockedDateRequest{Date: date, Reason: "Again"}, "a", "A")
	var cErr *ConflictError
	require.ErrorAs(t, err, &cErr)
	assert.Equal(t, "Date is already blocked", cErr.Message)
}

func TestCreateCompensatesWhenNotificationFails(t *testing.T) {
	svc, repo, notifs := newService()
	notifs.createErr = errors.New("insert failed")

	_, err := svc.Create(context.Background(), models.CreateBlockedDateRequest{
		Date:   futureDate(2),
		Reason: "Holiday",
	}, "a", "A")

	require.Error(t, err)
	assert.Empty(t, repo.byID, "blocked date should have been rolled back")
	assert.Empty(t, notifs.byBlockedID)
}

func TestUpdateReasonRecomposesNotification(t *testing.T) {
	svc, _, notifs := newService()
	bd, err := svc.Create(context.Background(), models.CreateBlockedDateRequest{
		Date: futureDate(4), Reason: "Doctor unavailable",
	}, "a", "A")
	require.NoError(t, err)

	// Simulate a dismissed/inactive notification; a reason edit re-surfaces it.
	n := notifs.byBlockedID[bd.ID]
	n.IsActive = false
	notifs.byBlockedID[bd.ID] = n

	newReason := "Clinic closed for maintenance"
	updated, err := svc.Update(context.Background(), bd.ID, models.UpdateBlockedDateRequest{Reason: &newReason})
	require.NoError(t, err)
	assert.Equal(t, newReason, updated.Reason)

	n = notifs.byBlockedID[bd.ID]
	assert.Contains(t, n.Message, newReason)
	assert.True(t, n.IsActive)
}

func TestUpdateReasonWithExplicitDeactivate(t *testing.T) {
	svc, _, notifs := newService()
	bd, err := svc.Create(context.Background(), models.CreateBlockedDateRequest{
		Date: futureDate(4), Reason: "Doctor unavailable",
	}, "a", "A")
	require.NoError(t, err)

	newReason := "Rescheduled"
	inactive := false
	_, err = svc.Update(context.Background(), bd.ID, models.UpdateBlockedDateRequest{
		Reason:   &newReason,
		IsActive: &inactive,
	})
	require.NoError(t, err)

	n := notifs.byBlockedID[bd.ID]
	assert.False(t, n.IsActive, "explicit isActive=false wins over the reason-change reactivation")
}

func TestUpdateIsIdempotentForDeactivate(t *testing.T) {
	svc, repo, _ := newService()
	bd, err := svc.Create(context.Background(), models.CreateBlockedDateRequest{
		Date: futureDate(4), Reason: "Holiday",
	}, "a", "A")
	require.NoError(t, err)

	inactive := false
	for i := 0; i < 2; i++ {
		_, err = svc.Update(context.Background(), bd.ID, models.UpdateBlockedDateRequest{IsActive: &inactive})
		require.NoError(t, err, "repeat deactivation must not error")
	}
	assert.False(t, repo.byID[bd.ID].IsActive)
}

func TestUpdateUnknownID(t *testing.T) {
	svc, _, _ := newService()
	inactive := false
	_, err := svc.Update(context.Background(), "nope", models.UpdateBlockedDateRequest{IsActive: &inactive})

	var nfErr *NotFoundError
	require.ErrorAs(t, err, &nfErr)
}

func TestDeleteCascadesToNotification(t *testing.T) {
	svc, repo, notifs := newService()
	bd, err := svc.Create(context.Background(), models.CreateBlockedDateRequest{
		Date: futureDate(4), Reason: "Holiday",
	}, "a", "A")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), bd.ID))
	assert.NotContains(t, repo.byID, bd.ID)
	assert.NotContains(t, notifs.byBlockedID, bd.ID)
}

func TestDeleteUnknownID(t *testing.T) {
	svc, _, _ := newService()
	err := svc.Delete(context.Background(), "nope")

	var nfErr *NotFoundError
	require.ErrorAs(t, err, &nfErr)
}

func TestListRoundTripPreservesSlotOrder(t *testing.T) {
	svc, _, _ := newService()
	date := futureDate(6)
	slots := []string{"10:30 AM", "11:00 AM"}

	_, err := svc.Create(context.Background(), models.CreateBlockedDateRequest{
		Date: date, TimeSlots: slots, Reason: "Doctor unavailable",
	}, "a", "A")
	require.NoError(t, err)

	records, err := svc.List(context.Background(), models.BlockedDateFilter{StartDate: date, EndDate: date})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, slots, records[0].TimeSlots)
}
