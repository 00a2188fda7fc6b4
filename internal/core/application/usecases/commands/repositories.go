// Package commands contains the batch operations of the order filter.
// Each command is a validated value built by its New* constructor and run by a
// handler that owns the orchestration and error policy.
package commands

import (
	"time"

	"deliveryfilter/internal/core/domain/model/order"
)

// Domain services the handler depends on. services.OrderValidator and
// services.OrderFilter satisfy them.
type (
	// OrderValidator turns raw candidates into validated orders.
	OrderValidator interface {
		ValidateAll(candidates []order.Candidate) ([]*order.Order, int)
	}

	// OrderFilter selects orders by region and delivery window.
	OrderFilter interface {
		Filter(orders []*order.Order, region order.RegionIndex, windowStart *time.Time) ([]*order.Order, error)
	}
)
