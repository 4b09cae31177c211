// services/availability/service.go
package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	appointmentRepo "sctclinic/database/repository/appointment"
	blockedDateRepo "sctclinic/database/repository/blockeddate"
	"sctclinic/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrBadDate is returned for a malformed date parameter.
var ErrBadDate = errors.New("date must be in YYYY-MM-DD format")

// Resolver computes which consultation slots remain offerable on a date.
type Resolver interface {
	ResolveDay(ctx context.Context, date string) (*models.DayAvailability, error)
}

// DefaultResolver combines the active block for a date with the appointments
// already holding slots on it.
type DefaultResolver struct {
	BlockedRepo     blockedDateRepo.BlockedDateRepository
	AppointmentRepo appointmentRepo.AppointmentRepository
}

func (r *DefaultResolver) ResolveDay(ctx context.Context, date string) (*models.DayAvailability, error) {
	if _, err := time.ParseInLocation("2006-01-02", date, time.UTC); err != nil {
		return nil, ErrBadDate
	}

	unavailable := make(map[string]bool)

	block, err := r.BlockedRepo.GetActiveByDate(ctx, date)
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("failed to look up blocked date: %w", err)
	}
	if block != nil {
		if len(block.TimeSlots) == 0 {
			// Whole day closed.
			return &models.DayAvailability{
				Date:           date,
				AvailableSlots: []string{},
				AllBlocked:     true,
				BlockReason:    block.Reason,
			}, nil
		}
		for _, slot := range block.TimeSlots {
			unavailable[slot] = true
		}
	}

	booked, err := r.AppointmentRepo.GetByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to look up appointments: %w", err)
	}
	for _, appt := range booked {
		if appt.Status == models.AppointmentCancelled {
			continue
		}
		unavailable[appt.Time] = true
	}

	available := make([]string, 0, len(models.ClinicSlots))
	for _, slot := range models.ClinicSlots {
		if !unavailable[slot] {
			available = append(available, slot)
		}
	}

	return &models.DayAvailability{
		Date:           date,
		AvailableSlots: available,
	}, nil
}
