// File: database/repository/notification/interface.go
package notificationRepo

import (
	"context"

	"sctclinic/database"
	"sctclinic/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type NotificationRepository interface {
	Create(ctx context.Context, n models.TickerNotification) error
	GetByBlockedDateID(ctx context.Context, blockedDateID string) (*models.TickerNotification, error)
	Save(ctx context.Context, n *models.TickerNotification) error
	DeleteByBlockedDateID(ctx context.Context, blockedDateID string) error
	ListActive(ctx context.Context) ([]models.TickerNotification, error)
	EnsureIndexes() error
}

type mongoNotificationRepo struct {
	coll *mongo.Collection
}

// NewMongoNotificationRepo constructs a new MongoDB NotificationRepository.
func NewMongoNotificationRepo() NotificationRepository {
	return &mongoNotificationRepo{
		coll: database.DB().Collection("tickerNotifications"),
	}
}
