package order

import (
	"time"

	"deliveryfilter/internal/core/domain/model/kernel"
	"deliveryfilter/internal/pkg/errs"
)

const (
	// MinWeight is the lightest accepted order, in kilograms (inclusive).
	MinWeight = 0.1
	// MaxWeight is the heaviest accepted order, in kilograms (inclusive).
	MaxWeight = 1000.0
)

// ValidateID requires a present, non-nil order ID.
func ValidateID(id *kernel.UUID) error {
	if id == nil {
		return errs.NewValueIsRequiredError("order id")
	}
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("order id", err)
	}
	return nil
}

// ValidateWeight requires MinWeight <= weight <= MaxWeight.
func ValidateWeight(weight *float64) error {
	if weight == nil {
		return errs.NewValueIsRequiredError("weight")
	}
	// NaN fails both comparisons, so it is rejected as well.
	if !(*weight >= MinWeight && *weight <= MaxWeight) {
		return errs.NewValueIsOutOfRangeError("weight", *weight, MinWeight, MaxWeight)
	}
	return nil
}

// ValidateRegionIndex requires a present 6-digit region index.
func ValidateRegionIndex(region *RegionIndex) error {
	if region == nil {
		return errs.NewValueIsRequiredError("region index")
	}
	return region.Validate()
}

// ValidateDeliveryTime requires a present, non-zero delivery time.
func ValidateDeliveryTime(deliveryTime *time.Time) error {
	if deliveryTime == nil || deliveryTime.IsZero() {
		return errs.NewValueIsRequiredError("delivery time")
	}
	return nil
}
