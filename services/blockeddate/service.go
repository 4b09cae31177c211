package blockeddate

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	blockedDateRepo "sctclinic/database/repository/blockeddate"
	"sctclinic/models"
	"sctclinic/services/ticker"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const maxReasonLength = 50

func (s *DefaultService) Create(ctx context.Context, req models.CreateBlockedDateRequest, adminID, adminName string) (*models.BlockedDate, error) {
	fields := map[string]string{}

	day, err := time.ParseInLocation("2006-01-02", req.Date, time.UTC)
	if err != nil {
		fields["date"] = "date must be in YYYY-MM-DD format"
	}
	reason := strings.TrimSpace(req.Reason)
	if reason == "" || len(reason) > maxReasonLength {
		fields["reason"] = fmt.Sprintf("reason must be between 1 and %d characters", maxReasonLength)
	}
	if slotErr := validateSlots(req.TimeSlots); slotErr != "" {
		fields["timeSlots"] = slotErr
	}
	if len(fields) > 0 {
		return nil, &ValidationError{Message: "Invalid blocked date payload", Fields: fields}
	}

	// Date-only comparison; the time of day never matters here.
	today := time.Now().UTC().Truncate(24 * time.Hour)
	if day.Before(today) {
		return nil, &ValidationError{Message: "Cannot block dates in the past"}
	}

	now := time.Now().UTC()
	bd := models.BlockedDate{
		ID:            uuid.New().String(),
		Date:          req.Date,
		TimeSlots:     req.TimeSlots,
		Reason:        reason,
		BlockedBy:     adminID,
		BlockedByName: adminName,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.Repo.Create(ctx, bd); err != nil {
		if errors.Is(err, blockedDateRepo.ErrDuplicateActiveDate) {
			return nil, &ConflictError{Message: "Date is already blocked"}
		}
		return nil, fmt.Errorf("failed to create blocked date: %w", err)
	}

	notif := models.TickerNotification{
		ID:                   bd.ID,
		Message:              ticker.ComposeMessage(bd.Reason, bd.Date, bd.TimeSlots),
		Type:                 models.NotificationTypeBlockedDate,
		Date:                 bd.Date,
		IsActive:             true,
		Priority:             1,
		RelatedBlockedDateID: bd.ID,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	// The two inserts are not transactional; if the notification insert
	// fails, undo the block so the pair never drifts apart.
	if err := s.NotifRepo.Create(ctx, notif); err != nil {
		if delErr := s.Repo.Delete(ctx, bd.ID); delErr != nil {
			zap.L().Error("compensating delete of blocked date failed",
				zap.String("id", bd.ID), zap.Error(delErr))
		}
		return nil, fmt.Errorf("failed to create ticker notification: %w", err)
	}

	ticker.InvalidateFeedCache(ctx, s.Cache)
	return &bd, nil
}

func (s *DefaultService) List(ctx context.Context, filter models.BlockedDateFilter) ([]models.BlockedDate, error) {
	return s.Repo.List(ctx, filter)
}

func (s *DefaultService) Update(ctx context.Context, id string, req models.UpdateBlockedDateRequest) (*models.BlockedDate, error) {
	bd, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{Message: "Blocked date not found"}
		}
		return nil, fmt.Errorf("failed to load blocked date: %w", err)
	}

	reasonChanged := false
	slotsChanged := false

	if req.Reason != nil {
		reason := strings.TrimSpace(*req.Reason)
		if reason == "" || len(reason) > maxReasonLength {
			return nil, &ValidationError{
				Message: "Invalid blocked date payload",
				Fields:  map[string]string{"reason": fmt.Sprintf("reason must be between 1 and %d characters", maxReasonLength)},
			}
		}
		reasonChanged = reason != bd.Reason
		bd.Reason = reason
	}
	if req.TimeSlots != nil {
		if slotErr := validateSlots(*req.TimeSlots); slotErr != "" {
			return nil, &ValidationError{
				Message: "Invalid blocked date payload",
				Fields:  map[string]string{"timeSlots": slotErr},
			}
		}
		slotsChanged = true
		bd.TimeSlots = *req.TimeSlots
	}
	if req.IsActive != nil {
		bd.IsActive = *req.IsActive
	}
	bd.UpdatedAt = time.Now().UTC()

	if err := s.Repo.Save(ctx, bd); err != nil {
		if errors.Is(err, blockedDateRepo.ErrDuplicateActiveDate) {
			return nil, &ConflictError{Message: "Date is already blocked"}
		}
		return nil, fmt.Errorf("failed to update blocked date: %w", err)
	}

	s.syncNotification(ctx, bd, req, reasonChanged || slotsChanged)
	ticker.InvalidateFeedCache(ctx, s.Cache)
	return bd, nil
}

// syncNotification pushes a blocked-date mutation through to its ticker
// notification. Failures are logged, never surfaced: the block itself has
// already been updated.
func (s *DefaultService) syncNotification(ctx context.Context, bd *models.BlockedDate, req models.UpdateBlockedDateRequest, messageChanged bool) {
	n, err := s.NotifRepo.GetByBlockedDateID(ctx, bd.ID)
	if err != nil {
		zap.L().Warn("ticker notification missing for blocked date",
			zap.String("blockedDateId", bd.ID), zap.Error(err))
		return
	}

	if messageChanged {
		n.Message = ticker.ComposeMessage(bd.Reason, bd.Date, bd.TimeSlots)
		// An edited message re-surfaces the notice unless the same update
		// explicitly deactivated the block.
		n.IsActive = true
	}
	if req.IsActive != nil {
		n.IsActive = *req.IsActive
	}
	n.UpdatedAt = time.Now().UTC()

	if err := s.NotifRepo.Save(ctx, n); err != nil {
		zap.L().Error("failed to sync ticker notification",
			zap.String("blockedDateId", bd.ID), zap.Error(err))
	}
}

func (s *DefaultService) Delete(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return &NotFoundError{Message: "Blocked date not found"}
		}
		return fmt.Errorf("failed to delete blocked date: %w", err)
	}

	// Best effort: the block is gone either way, and the ticker filters by
	// the blocked day's window anyway.
	if err := s.NotifRepo.DeleteByBlockedDateID(ctx, id); err != nil {
		zap.L().Warn("failed to delete ticker notification",
			zap.String("blockedDateId", id), zap.Error(err))
	}
	ticker.InvalidateFeedCache(ctx, s.Cache)
	return nil
}

func validateSlots(slots []string) string {
	for _, slot := range slots {
		if !isClinicSlot(slot) {
			return fmt.Sprintf("unknown time slot %q", slot)
		}
	}
	return ""
}

func isClinicSlot(label string) bool {
	for _, s := range models.ClinicSlots {
		if s == label {
			return true
		}
	}
	return false
}
