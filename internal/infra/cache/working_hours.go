package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-ReservationCore/internal/domain"
)

const workingHoursCacheName = "working_hours"

// WorkingHours кеширующая обёртка над источником рабочих часов
type WorkingHours struct {
	source WorkingHoursSource
	cache  jsonCache
}

// NewWorkingHours создает кеш рабочих часов
func NewWorkingHours(source WorkingHoursSource, rdb *redis.Client, ttl time.Duration, metrics Metrics, logger Logger) *WorkingHours {
	return &WorkingHours{
		source: source,
		cache: jsonCache{
			rdb:     rdb,
			name:    workingHoursCacheName,
			ttl:     ttl,
			metrics: metrics,
			logger:  logger,
		},
	}
}

// GetByInstance читает расписание из кеша, при промахе - из источника
func (w *WorkingHours) GetByInstance(ctx context.Context, instanceID string) (domain.WeeklyHours, error) {
	var hours domain.WeeklyHours
	if w.cache.get(ctx, instanceID, &hours) {
		return hours, nil
	}

	hours, err := w.source.GetByInstance(ctx, instanceID)
	if err != nil {
		return nil, err
	}

	w.cache.set(ctx, instanceID, hours)
	return hours, nil
}

// Update пишет в источник и сбрасывает кеш
func (w *WorkingHours) Update(ctx context.Context, instanceID string, hours domain.WeeklyHours) error {
	if err := w.source.Update(ctx, instanceID, hours); err != nil {
		return err
	}
	w.cache.invalidate(ctx, instanceID)
	return nil
}
