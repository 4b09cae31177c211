package middleware

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"sctclinic/config"
	"sctclinic/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const rateLimitWindow = time.Minute

// allowRedis runs a fixed-window counter in Redis so the limit holds across
// instances. The INCR/EXPIRE pair is atomic per command; the worst case on a
// race is one extra request in the first window, which is fine here.
func allowRedis(ctx context.Context, client *redis.Client, ip string, limit int) (bool, error) {
	key := fmt.Sprintf("ratelimit:%s:%d", ip, time.Now().Unix()/int64(rateLimitWindow.Seconds()))
	count, err := client.Incr(ctx, key).Result()
	if err != nil {
		return false, err
	}
	if count == 1 {
		if err := client.Expire(ctx, key, rateLimitWindow).Err(); err != nil {
			return false, err
		}
	}
	return count <= int64(limit), nil
}

// inProcessLimiterStore is the fallback when Redis is unavailable: a map of
// client IPs to token buckets, local to this process.
type inProcessLimiterStore struct {
	limiters map[string]*rate.Limiter
	mu       sync.Mutex
}

var fallbackStore = &inProcessLimiterStore{
	limiters: make(map[string]*rate.Limiter),
}

func (s *inProcessLimiterStore) getLimiter(ip string, perMinute int) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	limiter, exists := s.limiters[ip]
	if !exists {
		limiter = rate.NewLimiter(rate.Every(rateLimitWindow/time.Duration(perMinute)), perMinute)
		s.limiters[ip] = limiter
	}
	return limiter
}

// RateLimitMiddleware limits requests per client IP.
func RateLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := config.AppConfig.MaxRequestsPerMin
		if limit <= 0 {
			c.Next()
			return
		}
		ip := getClientIP(c)

		allowed := true
		if client := utils.GetRateLimitClient(); client != nil {
			ok, err := allowRedis(c.Request.Context(), client, ip, limit)
			if err != nil {
				// Redis hiccup: degrade to the local limiter rather than
				// failing the request.
				zap.L().Warn("rate limit counter unavailable", zap.Error(err))
				allowed = fallbackStore.getLimiter(ip, limit).Allow()
			} else {
				allowed = ok
			}
		} else {
			allowed = fallbackStore.getLimiter(ip, limit).Allow()
		}

		if !allowed {
			zap.L().Warn("Rate limit exceeded", zap.String("ip", ip))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, utils.APIResponse{
				Success: false, Message: "Rate limit exceeded. Try again later.",
			})
			return
		}
		c.Next()
	}
}
