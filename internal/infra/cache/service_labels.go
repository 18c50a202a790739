package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const serviceLabelsCacheName = "service_labels"

// ServiceLabels кеширующая обёртка над справочником услуг
type ServiceLabels struct {
	source ServiceLabelsSource
	cache  jsonCache
}

// NewServiceLabels создает кеш справочника услуг
func NewServiceLabels(source ServiceLabelsSource, rdb *redis.Client, ttl time.Duration, metrics Metrics, logger Logger) *ServiceLabels {
	return &ServiceLabels{
		source: source,
		cache: jsonCache{
			rdb:     rdb,
			name:    serviceLabelsCacheName,
			ttl:     ttl,
			metrics: metrics,
			logger:  logger,
		},
	}
}

// GetLabels читает справочник из кеша, при промахе - из источника
func (s *ServiceLabels) GetLabels(ctx context.Context, instanceID string) (map[string]string, error) {
	var labels map[string]string
	if s.cache.get(ctx, instanceID, &labels) {
		return labels, nil
	}

	labels, err := s.source.GetLabels(ctx, instanceID)
	if err != nil {
		return nil, err
	}

	s.cache.set(ctx, instanceID, labels)
	return labels, nil
}
