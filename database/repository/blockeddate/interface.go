// File: database/repository/blockeddate/interface.go
package blockedDateRepo

import (
	"context"
	"errors"

	"sctclinic/database"
	"sctclinic/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrDuplicateActiveDate is returned when an active block already exists for
// the same date. The partial unique index raises it on insert and on any
// update that re-activates a block.
var ErrDuplicateActiveDate = errors.New("an active block already exists for this date")

type BlockedDateRepository interface {
	Create(ctx context.Context, bd models.BlockedDate) error
	GetByID(ctx context.Context, id string) (*models.BlockedDate, error)
	GetActiveByDate(ctx context.Context, date string) (*models.BlockedDate, error)
	List(ctx context.Context, filter models.BlockedDateFilter) ([]models.BlockedDate, error)
	Save(ctx context.Context, bd *models.BlockedDate) error
	Delete(ctx context.Context, id string) error
	CountActive(ctx context.Context) (int64, error)
	EnsureIndexes() error
}

type mongoBlockedDateRepo struct {
	coll *mongo.Collection
}

// NewMongoBlockedDateRepo constructs a new MongoDB BlockedDateRepository.
func NewMongoBlockedDateRepo() BlockedDateRepository {
	return &mongoBlockedDateRepo{
		coll: database.DB().Collection("blockedDates"),
	}
}
