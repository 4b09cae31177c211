// File: database/repository/blockeddate/crud.go
package blockedDateRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"sctclinic/models"
)

func (r *mongoBlockedDateRepo) Create(ctx context.Context, bd models.BlockedDate) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, bd); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateActiveDate
		}
		return err
	}
	return nil
}

func (r *mongoBlockedDateRepo) GetByID(ctx context.Context, id string) (*models.BlockedDate, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var bd models.BlockedDate
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&bd); err != nil {
		return nil, err
	}
	return &bd, nil
}

func (r *mongoBlockedDateRepo) GetActiveByDate(ctx context.Context, date string) (*models.BlockedDate, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var bd models.BlockedDate
	err := r.coll.FindOne(ctx, bson.M{"date": date, "isActive": true}).Decode(&bd)
	if err != nil {
		return nil, err
	}
	return &bd, nil
}

func (r *mongoBlockedDateRepo) List(ctx context.Context, filter models.BlockedDateFilter) ([]models.BlockedDate, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	query := bson.M{}
	dateRange := bson.M{}
	if filter.StartDate != "" {
		dateRange["$gte"] = filter.StartDate
	}
	if filter.EndDate != "" {
		dateRange["$lte"] = filter.EndDate
	}
	if len(dateRange) > 0 {
		query["date"] = dateRange
	}
	if filter.IsActive != nil {
		query["isActive"] = *filter.IsActive
	}

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []models.BlockedDate
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *mongoBlockedDateRepo) Save(ctx context.Context, bd *models.BlockedDate) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": bd.ID}, bd)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateActiveDate
		}
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoBlockedDateRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoBlockedDateRepo) CountActive(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return r.coll.CountDocuments(ctx, bson.M{"isActive": true})
}
