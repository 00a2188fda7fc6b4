// Package orderrepo reads delivery orders from flat files and writes the
// filtered result back to disk.
//
// Input files ending in ".txt" are read one order per line,
// "<id><sep><weight><sep><regionIndex><sep><deliveryTime>". Any other
// extension is read as a JSON array of OrderDTO objects.
package orderrepo

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	"deliveryfilter/internal/core/domain/model/kernel"
	"deliveryfilter/internal/core/domain/model/order"
	"deliveryfilter/internal/pkg/errs"
)

// OrderDTO is one element of a JSON input file. Member names match
// case-insensitively; an absent or null member leaves the field nil.
//
// IndexRegion accepts any JSON number with a whole value, so 123456.0 and
// 1.23456e5 both read as 123456.
type OrderDTO struct {
	OrderID      *string      `json:"orderId"`
	Weight       *float64     `json:"weight"`
	IndexRegion  *json.Number `json:"indexRegion"`
	TimeDelivery *string      `json:"timeDelivery"`
}

// toCandidate converts a DTO. Malformed strings are errors; absent members are not.
func toCandidate(dto OrderDTO, source string, loc *time.Location) (order.Candidate, error) {
	c := order.Candidate{Source: source, Weight: dto.Weight}

	if dto.OrderID != nil {
		id, err := kernel.UUIDFromString(*dto.OrderID)
		if err != nil {
			return order.Candidate{}, errs.NewValueIsInvalidErrorWithCause("orderId", fmt.Errorf("%s: %w", source, err))
		}
		c.ID = &id
	}

	if dto.IndexRegion != nil {
		region, err := regionFromNumber(*dto.IndexRegion)
		if err != nil {
			return order.Candidate{}, errs.NewValueIsInvalidErrorWithCause("indexRegion", fmt.Errorf("%s: %w", source, err))
		}
		c.RegionIndex = &region
	}

	if dto.TimeDelivery != nil {
		t, err := kernel.ParseDeliveryTime(*dto.TimeDelivery, loc)
		if err != nil {
			return order.Candidate{}, errs.NewValueIsInvalidErrorWithCause("timeDelivery", fmt.Errorf("%s: %w", source, err))
		}
		c.DeliveryTime = &t
	}

	return c, nil
}

func regionFromNumber(n json.Number) (order.RegionIndex, error) {
	if i, err := n.Int64(); err == nil {
		return order.RegionIndex(i), nil
	}
	f, err := n.Float64()
	if err != nil || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return 0, fmt.Errorf("%q is not a whole number", n.String())
	}
	return order.RegionIndex(f), nil
}
