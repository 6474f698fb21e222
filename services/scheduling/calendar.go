package scheduling

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"pawmart/models"
	"pawmart/utils"

	"go.uber.org/zap"
)

// IsProviderActiveOn reports whether the schedule has any window matching
// the date's weekday. Pure and occupancy-independent: a date with zero FREE
// slots left is still active for calendar colouring.
func IsProviderActiveOn(schedule *models.WeeklySchedule, date time.Time) bool {
	if schedule == nil {
		return false
	}
	return schedule.ActiveOn(date.Weekday())
}

func monthCacheKey(providerID string, year int, month time.Month) string {
	return fmt.Sprintf("calendar:%s:%04d-%02d", providerID, year, month)
}

func (s *DefaultSchedulingService) MonthActivity(ctx context.Context, providerID string, year int, month time.Month) ([]models.ActiveDay, error) {
	logger := utils.GetLogger()

	if month < time.January || month > time.December {
		return nil, newValidationError("month", "invalid month %d", month)
	}

	key := monthCacheKey(providerID, year, month)
	if s.CacheClient != nil {
		if cached, err := s.CacheClient.Get(ctx, key).Result(); err == nil {
			var days []models.ActiveDay
			if err := json.Unmarshal([]byte(cached), &days); err == nil {
				return days, nil
			}
		}
	}

	schedule, err := s.GetAvailability(ctx, providerID)
	if err != nil {
		return nil, err
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	var days []models.ActiveDay
	for d := first; d.Month() == month; d = d.AddDate(0, 0, 1) {
		days = append(days, models.ActiveDay{
			Date:   d.Format(utils.DateLayout),
			Active: IsProviderActiveOn(schedule, d),
		})
	}

	if s.CacheClient != nil {
		if data, err := json.Marshal(days); err == nil {
			ttl := s.CacheTTL
			if ttl <= 0 {
				ttl = 5 * time.Minute
			}
			if err := s.CacheClient.Set(ctx, key, data, ttl).Err(); err != nil {
				logger.Warn("failed to cache month activity",
					zap.String("key", key), zap.Error(err))
			}
		}
	}
	return days, nil
}

// invalidateMonthCache drops every cached month projection for the
// provider so calendar cells reflect a schedule change immediately.
func (s *DefaultSchedulingService) invalidateMonthCache(ctx context.Context, providerID string) {
	if s.CacheClient == nil {
		return
	}
	logger := utils.GetLogger()
	pattern := fmt.Sprintf("calendar:%s:*", providerID)
	keys, err := s.CacheClient.Keys(ctx, pattern).Result()
	if err != nil {
		logger.Warn("failed to scan calendar cache", zap.String("pattern", pattern), zap.Error(err))
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := s.CacheClient.Del(ctx, keys...).Err(); err != nil {
		logger.Warn("failed to invalidate calendar cache", zap.Strings("keys", keys), zap.Error(err))
	}
}
