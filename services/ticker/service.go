package ticker

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	notificationRepo "sctclinic/database/repository/notification"
	"sctclinic/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	feedCacheKey = "ticker:active"
	feedCacheTTL = 60 * time.Second
)

// FeedService assembles the public ticker feed.
type FeedService interface {
	ActiveNotifications(ctx context.Context) ([]models.TickerNotificationView, error)
}

// DefaultFeedService reads stored notifications, resolves each display
// window, and filters to those visible right now. A short-TTL Redis cache
// sits in front because this is the site-wide polling path.
type DefaultFeedService struct {
	Repo  notificationRepo.NotificationRepository
	Cache *redis.Client
	Now   func() time.Time // overridable in tests; nil means time.Now
}

func (s *DefaultFeedService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now().UTC()
}

func (s *DefaultFeedService) ActiveNotifications(ctx context.Context) ([]models.TickerNotificationView, error) {
	if s.Cache != nil {
		if raw, err := s.Cache.Get(ctx, feedCacheKey).Result(); err == nil {
			var cached []models.TickerNotificationView
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				return cached, nil
			}
		}
	}

	stored, err := s.Repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	views := make([]models.TickerNotificationView, 0, len(stored))
	for _, n := range stored {
		start, end, err := Window(n.Date)
		if err != nil {
			zap.L().Warn("ticker notification has an unparseable date",
				zap.String("id", n.ID), zap.String("date", n.Date))
			continue
		}
		if now.Before(start) || now.After(end) {
			continue
		}
		views = append(views, models.TickerNotificationView{
			ID:        n.ID,
			Message:   n.Message,
			Type:      n.Type,
			StartDate: start,
			EndDate:   end,
			IsActive:  n.IsActive,
			Priority:  n.Priority,
		})
	}

	sort.SliceStable(views, func(i, j int) bool {
		return views[i].Priority > views[j].Priority
	})

	if s.Cache != nil {
		if data, err := json.Marshal(views); err == nil {
			if err := s.Cache.Set(ctx, feedCacheKey, data, feedCacheTTL).Err(); err != nil {
				zap.L().Warn("failed to cache ticker feed", zap.Error(err))
			}
		}
	}
	return views, nil
}

// InvalidateFeedCache drops the cached feed after a blocked-date mutation so
// visitors never see a deleted notice for the cache TTL.
func InvalidateFeedCache(ctx context.Context, cache *redis.Client) {
	if cache == nil {
		return
	}
	if err := cache.Del(ctx, feedCacheKey).Err(); err != nil {
		zap.L().Warn("failed to invalidate ticker feed cache", zap.Error(err))
	}
}
