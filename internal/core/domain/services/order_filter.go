package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"deliveryfilter/internal/core/domain/model/kernel"
	"deliveryfilter/internal/core/domain/model/order"
)

// DeliveryWindow is the length of the closed delivery window.
const DeliveryWindow = 30 * time.Minute

// ErrRegionIndexIsInvalid wraps a target region that is not a 6-digit number.
// It is fatal for the run, unlike per-order validation failures.
var ErrRegionIndexIsInvalid = errors.New("target region index is invalid")

// OrderFilter selects the orders of one region whose delivery time falls in
// [windowStart, windowStart+DeliveryWindow].
type OrderFilter struct {
	logger *slog.Logger
	now    func() time.Time
}

// NewOrderFilter creates a filter that uses time.Now when no window start is configured.
func NewOrderFilter(logger *slog.Logger) OrderFilter {
	return NewOrderFilterWithClock(logger, time.Now)
}

// NewOrderFilterWithClock is NewOrderFilter with an explicit clock.
func NewOrderFilterWithClock(logger *slog.Logger, now func() time.Time) OrderFilter {
	return OrderFilter{
		logger: logger.With("component", "order_filter"),
		now:    now,
	}
}

// Window returns the closed interval that starts at start.
func Window(start time.Time) (time.Time, time.Time) {
	return start, start.Add(DeliveryWindow)
}

// Filter returns the matching orders in input order.
//
// A nil or zero windowStart is replaced by the current time and logged. An
// invalid region fails the whole step. A panic while evaluating orders is
// recovered, logged, and reported as no matches.
func (f OrderFilter) Filter(
	orders []*order.Order,
	region order.RegionIndex,
	windowStart *time.Time,
) (result []*order.Order, err error) {
	if regionErr := region.Validate(); regionErr != nil {
		f.logger.Error("region index must be a positive 6-digit number", "region", int(region), "error", regionErr)
		return nil, fmt.Errorf("%w: %w", ErrRegionIndexIsInvalid, regionErr)
	}

	defer func() {
		if r := recover(); r != nil {
			f.logger.Error("filter evaluation failed", "panic", r)
			result, err = []*order.Order{}, nil
		}
	}()

	var start time.Time
	if windowStart == nil || windowStart.IsZero() {
		start = f.now()
		f.logger.Warn("first delivery time is not set, using current time",
			"window_start", kernel.FormatDeliveryTime(start))
	} else {
		start = *windowStart
	}

	from, to := Window(start)
	result = make([]*order.Order, 0, len(orders))
	for _, o := range orders {
		if o.Validate() != nil {
			continue
		}
		if o.Region() != region {
			continue
		}
		t := o.DeliveryTime()
		if t.Before(from) || t.After(to) {
			continue
		}
		result = append(result, o)
	}

	return result, nil
}
