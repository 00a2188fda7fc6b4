package services_test

import (
	"testing"
	"time"

	"deliveryfilter/internal/core/domain/model/kernel"
	"deliveryfilter/internal/core/domain/model/order"
	"deliveryfilter/internal/core/domain/services"
	"deliveryfilter/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const region order.RegionIndex = 123456

var windowStart = time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

func newID() kernel.UUID {
	id, err := kernel.UUIDFromString(uuid.NewString())
	if err != nil {
		panic(err)
	}
	return id
}

func newOrder(t *testing.T, r order.RegionIndex, at time.Time) *order.Order {
	t.Helper()
	o, err := order.NewOrder(newID(), 5.0, r, at)
	require.NoError(t, err)
	return o
}

func TestOrderFilter_Filter(t *testing.T) {
	filter := services.NewOrderFilter(discardLogger())

	t.Run("should include both window boundaries and exclude just outside", func(t *testing.T) {
		atStart := newOrder(t, region, windowStart)
		atEnd := newOrder(t, region, windowStart.Add(30*time.Minute))
		inside := newOrder(t, region, windowStart.Add(10*time.Minute))
		before := newOrder(t, region, windowStart.Add(-time.Second))
		after := newOrder(t, region, windowStart.Add(30*time.Minute+time.Second))

		got, err := filter.Filter([]*order.Order{before, atStart, inside, atEnd, after}, region, &windowStart)

		require.NoError(t, err)
		assert.Equal(t, []*order.Order{atStart, inside, atEnd}, got)
	})

	t.Run("should keep only the target region", func(t *testing.T) {
		match := newOrder(t, region, windowStart)
		other := newOrder(t, 999999, windowStart.Add(10*time.Minute))

		got, err := filter.Filter([]*order.Order{match, other}, region, &windowStart)

		require.NoError(t, err)
		assert.Equal(t, []*order.Order{match}, got)
	})

	t.Run("should be idempotent", func(t *testing.T) {
		orders := []*order.Order{
			newOrder(t, region, windowStart.Add(5*time.Minute)),
			newOrder(t, region, windowStart.Add(45*time.Minute)),
			newOrder(t, 222222, windowStart.Add(5*time.Minute)),
			newOrder(t, region, windowStart.Add(30*time.Minute)),
		}

		once, err := filter.Filter(orders, region, &windowStart)
		require.NoError(t, err)
		twice, err := filter.Filter(once, region, &windowStart)
		require.NoError(t, err)

		assert.Equal(t, once, twice)
		assert.Len(t, once, 2)
	})

	t.Run("should skip orders not built by NewOrder", func(t *testing.T) {
		got, err := filter.Filter([]*order.Order{{}, nil}, region, &windowStart)

		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("should fail the step for an invalid target region", func(t *testing.T) {
		for _, r := range []order.RegionIndex{0, -1, 12345, 1234567} {
			got, err := filter.Filter([]*order.Order{newOrder(t, region, windowStart)}, r, &windowStart)

			require.ErrorIs(t, err, services.ErrRegionIndexIsInvalid, "region %d", r)
			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
			assert.Nil(t, got)
		}
	})
}

func TestOrderFilter_MissingWindowStart(t *testing.T) {
	now := windowStart.Add(time.Hour)
	clock := func() time.Time { return now }
	inWindow := newOrder(t, region, now.Add(15*time.Minute))
	early := newOrder(t, region, windowStart)

	for name, start := range map[string]*time.Time{"nil": nil, "zero": {}} {
		t.Run(name, func(t *testing.T) {
			logger, buf := bufferLogger()
			filter := services.NewOrderFilterWithClock(logger, clock)

			got, err := filter.Filter([]*order.Order{early, inWindow}, region, start)

			require.NoError(t, err)
			assert.Equal(t, []*order.Order{inWindow}, got)
			assert.Contains(t, buf.String(), "using current time")
			assert.Contains(t, buf.String(), "2024-01-01 11:00:00")
		})
	}
}

func TestOrderFilter_RecoversFromPanic(t *testing.T) {
	logger, buf := bufferLogger()
	filter := services.NewOrderFilterWithClock(logger, func() time.Time { panic("clock unavailable") })

	got, err := filter.Filter([]*order.Order{newOrder(t, region, windowStart)}, region, nil)

	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)
	assert.Contains(t, buf.String(), "filter evaluation failed")
}

func TestWindow(t *testing.T) {
	from, to := services.Window(windowStart)

	assert.Equal(t, windowStart, from)
	assert.Equal(t, windowStart.Add(services.DeliveryWindow), to)
	assert.Equal(t, 30*time.Minute, services.DeliveryWindow)
}
