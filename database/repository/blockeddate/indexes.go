// File: database/repository/blockeddate/indexes.go
package blockedDateRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the blockedDates collection.
// The partial unique index on (date, isActive: true) is what makes duplicate
// active blocks impossible at the storage layer; handlers never rely on a
// check-then-insert.
func (r *mongoBlockedDateRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		{
			Keys: bson.D{{Key: "date", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetName("unique_active_date").
				SetPartialFilterExpression(bson.D{{Key: "isActive", Value: true}}),
		},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create blockedDates indexes: %w", err)
	}
	return nil
}
