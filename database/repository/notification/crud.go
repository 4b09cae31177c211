// File: database/repository/notification/crud.go
package notificationRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"sctclinic/models"
)

func (r *mongoNotificationRepo) Create(ctx context.Context, n models.TickerNotification) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, n)
	return err
}

func (r *mongoNotificationRepo) GetByBlockedDateID(ctx context.Context, blockedDateID string) (*models.TickerNotification, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var n models.TickerNotification
	err := r.coll.FindOne(ctx, bson.M{"relatedBlockedDateId": blockedDateID}).Decode(&n)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *mongoNotificationRepo) Save(ctx context.Context, n *models.TickerNotification) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": n.ID}, n)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoNotificationRepo) DeleteByBlockedDateID(ctx context.Context, blockedDateID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.coll.DeleteOne(ctx, bson.M{"relatedBlockedDateId": blockedDateID})
	return err
}

func (r *mongoNotificationRepo) ListActive(ctx context.Context) ([]models.TickerNotification, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "priority", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"isActive": true}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []models.TickerNotification
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}

// EnsureIndexes creates the necessary indexes on the tickerNotifications collection.
func (r *mongoNotificationRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		{
			Keys:    bson.D{{Key: "relatedBlockedDateId", Value: 1}},
			Options: options.Index().SetName("related_blocked_date_idx"),
		},
		{
			Keys:    bson.D{{Key: "isActive", Value: 1}, {Key: "priority", Value: -1}},
			Options: options.Index().SetName("active_priority_idx"),
		},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create tickerNotifications indexes: %w", err)
	}
	return nil
}
