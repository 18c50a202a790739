package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationCore/internal/domain"
	"github.com/m04kA/SMC-ReservationCore/pkg/logger"
)

type countingHours struct {
	hours   domain.WeeklyHours
	err     error
	calls   int
	updates int
}

func (c *countingHours) GetByInstance(context.Context, string) (domain.WeeklyHours, error) {
	c.calls++
	return c.hours, c.err
}

func (c *countingHours) Update(_ context.Context, _ string, hours domain.WeeklyHours) error {
	c.updates++
	c.hours = hours
	return nil
}

type countingLabels struct {
	labels map[string]string
	calls  int
}

func (c *countingLabels) GetLabels(context.Context, string) (map[string]string, error) {
	c.calls++
	return c.labels, nil
}

type recordingMetrics struct {
	results []string
}

func (m *recordingMetrics) IncCacheResult(_, result string) {
	m.results = append(m.results, result)
}

func newRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return mr, rdb
}

func TestWorkingHours_ReadThrough(t *testing.T) {
	mr, rdb := newRedis(t)
	source := &countingHours{hours: domain.WeeklyHours{domain.Monday: {Open: "08:00", Close: "18:00"}}}
	m := &recordingMetrics{}
	c := NewWorkingHours(source, rdb, time.Minute, m, logger.Nop())
	ctx := context.Background()

	first, err := c.GetByInstance(ctx, "inst-1")
	require.NoError(t, err)
	second, err := c.GetByInstance(ctx, "inst-1")
	require.NoError(t, err)

	assert.Equal(t, source.hours, first)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, source.calls)
	assert.Equal(t, []string{resultMiss, resultHit}, m.results)
	assert.True(t, mr.Exists("smc:working_hours:inst-1"))

	mr.FastForward(2 * time.Minute)
	assert.False(t, mr.Exists("smc:working_hours:inst-1"))
}

func TestWorkingHours_NullHoursAreCached(t *testing.T) {
	_, rdb := newRedis(t)
	source := &countingHours{hours: nil}
	c := NewWorkingHours(source, rdb, time.Minute, &recordingMetrics{}, logger.Nop())
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		hours, err := c.GetByInstance(ctx, "inst-1")
		require.NoError(t, err)
		assert.Nil(t, hours)
	}
	assert.Equal(t, 1, source.calls)
}

func TestWorkingHours_UpdateInvalidates(t *testing.T) {
	mr, rdb := newRedis(t)
	source := &countingHours{hours: domain.WeeklyHours{}}
	c := NewWorkingHours(source, rdb, time.Minute, &recordingMetrics{}, logger.Nop())
	ctx := context.Background()

	_, err := c.GetByInstance(ctx, "inst-1")
	require.NoError(t, err)
	require.True(t, mr.Exists("smc:working_hours:inst-1"))

	updated := domain.WeeklyHours{domain.Friday: {Open: "10:00", Close: "14:00"}}
	require.NoError(t, c.Update(ctx, "inst-1", updated))
	assert.False(t, mr.Exists("smc:working_hours:inst-1"))

	got, err := c.GetByInstance(ctx, "inst-1")
	require.NoError(t, err)
	assert.Equal(t, updated, got)
	assert.Equal(t, 2, source.calls)
}

func TestWorkingHours_SourceErrorNotCached(t *testing.T) {
	mr, rdb := newRedis(t)
	boom := errors.New("db down")
	source := &countingHours{err: boom}
	c := NewWorkingHours(source, rdb, time.Minute, &recordingMetrics{}, logger.Nop())

	_, err := c.GetByInstance(context.Background(), "inst-1")
	assert.ErrorIs(t, err, boom)
	assert.False(t, mr.Exists("smc:working_hours:inst-1"))
}

func TestWorkingHours_RedisDownFallsBackToSource(t *testing.T) {
	mr, rdb := newRedis(t)
	source := &countingHours{hours: domain.WeeklyHours{}}
	m := &recordingMetrics{}
	c := NewWorkingHours(source, rdb, time.Minute, m, logger.Nop())
	mr.Close()

	_, err := c.GetByInstance(context.Background(), "inst-1")
	require.NoError(t, err)
	assert.Equal(t, 1, source.calls)
	assert.Equal(t, []string{resultError}, m.results)
}

func TestServiceLabels_ReadThrough(t *testing.T) {
	mr, rdb := newRedis(t)
	source := &countingLabels{labels: map[string]string{"s1": "Mycie"}}
	c := NewServiceLabels(source, rdb, time.Minute, &recordingMetrics{}, logger.Nop())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		labels, err := c.GetLabels(ctx, "inst-1")
		require.NoError(t, err)
		assert.Equal(t, "Mycie", labels["s1"])
	}
	assert.Equal(t, 1, source.calls)
	assert.True(t, mr.Exists("smc:service_labels:inst-1"))
	assert.Greater(t, mr.TTL("smc:service_labels:inst-1"), time.Duration(0))
}
