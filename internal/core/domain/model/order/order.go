package order

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"deliveryfilter/internal/core/domain/model/kernel"
	"deliveryfilter/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned by Validate for an Order that did not come from NewOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is a validated delivery order. It has no setters: once NewOrder
// returns it, the value never changes.
type Order struct {
	id           kernel.UUID
	weight       float64
	region       RegionIndex
	deliveryTime time.Time

	guard guard.ConstructorGuard
}

// NewOrder applies the field rules in order (ID, weight, region index,
// delivery time) and returns the first one that fails.
//
// Example:
//
//	o, err := order.NewOrder(id, 5.0, 123456, deliveryTime)
//	if err != nil {
//	    // err names the rejected field, e.g. "value is required: order id"
//	}
func NewOrder(id kernel.UUID, weight float64, region RegionIndex, deliveryTime time.Time) (*Order, error) {
	if err := ValidateID(&id); err != nil {
		return nil, err
	}
	if err := ValidateWeight(&weight); err != nil {
		return nil, err
	}
	if err := ValidateRegionIndex(&region); err != nil {
		return nil, err
	}
	if err := ValidateDeliveryTime(&deliveryTime); err != nil {
		return nil, err
	}

	return &Order{
		id:           id,
		weight:       weight,
		region:       region,
		deliveryTime: deliveryTime,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// FromCandidate validates a raw record. Absent fields are reported as
// required before any range check on the fields that follow them.
func FromCandidate(c Candidate) (*Order, error) {
	if err := ValidateID(c.ID); err != nil {
		return nil, err
	}
	if err := ValidateWeight(c.Weight); err != nil {
		return nil, err
	}
	if err := ValidateRegionIndex(c.RegionIndex); err != nil {
		return nil, err
	}
	if err := ValidateDeliveryTime(c.DeliveryTime); err != nil {
		return nil, err
	}

	return NewOrder(*c.ID, *c.Weight, *c.RegionIndex, *c.DeliveryTime)
}

// Validate reports whether o was built by NewOrder.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares orders field by field, delivery time to the second.
func (o *Order) IsEqual(other *Order) bool {
	if o == nil || other == nil {
		return o == other
	}
	return o.id.IsEqual(other.id) &&
		o.weight == other.weight &&
		o.region == other.region &&
		o.deliveryTime.Truncate(time.Second).Equal(other.deliveryTime.Truncate(time.Second))
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) Weight() float64 {
	return o.weight
}

func (o *Order) Region() RegionIndex {
	return o.region
}

func (o *Order) DeliveryTime() time.Time {
	return o.deliveryTime
}

// String renders the result-file line: "<id>, <weight>,<region>, yyyy-MM-dd HH:mm:ss".
// Weight uses the shortest exact decimal form, so 5.0 prints as "5".
func (o *Order) String() string {
	return fmt.Sprintf("%s, %s,%d, %s",
		o.id,
		strconv.FormatFloat(o.weight, 'f', -1, 64),
		o.region,
		kernel.FormatDeliveryTime(o.deliveryTime),
	)
}
