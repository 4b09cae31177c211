package blockeddate

import (
	"context"

	blockedDateRepo "sctclinic/database/repository/blockeddate"
	notificationRepo "sctclinic/database/repository/notification"
	"sctclinic/models"

	"github.com/go-redis/redis/v8"
)

// Service owns the blocked-date lifecycle and keeps the derived ticker
// notification in step with every mutation.
type Service interface {
	Create(ctx context.Context, req models.CreateBlockedDateRequest, adminID, adminName string) (*models.BlockedDate, error)
	List(ctx context.Context, filter models.BlockedDateFilter) ([]models.BlockedDate, error)
	Update(ctx context.Context, id string, req models.UpdateBlockedDateRequest) (*models.BlockedDate, error)
	Delete(ctx context.Context, id string) error
}

// DefaultService is the production implementation. Cache, when set, is the
// ticker feed cache; mutations drop it so visitors never poll a stale feed.
type DefaultService struct {
	Repo      blockedDateRepo.BlockedDateRepository
	NotifRepo notificationRepo.NotificationRepository
	Cache     *redis.Client
}
