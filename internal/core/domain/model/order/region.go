package order

import (
	"strconv"

	"deliveryfilter/internal/pkg/errs"
)

const (
	// MinRegionIndex is the smallest 6-digit region index.
	MinRegionIndex RegionIndex = 100000
	// MaxRegionIndex is the largest 6-digit region index.
	MaxRegionIndex RegionIndex = 999999
)

// RegionIndex identifies a delivery district.
type RegionIndex int

// ParseRegionIndex converts a decimal string. It does not check the range.
func ParseRegionIndex(s string) (RegionIndex, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("region index", err)
	}
	return RegionIndex(n), nil
}

// Validate requires a positive 6-digit value.
func (r RegionIndex) Validate() error {
	if r < MinRegionIndex || r > MaxRegionIndex {
		return errs.NewValueIsOutOfRangeError("region index", int(r), int(MinRegionIndex), int(MaxRegionIndex))
	}
	return nil
}

func (r RegionIndex) String() string {
	return strconv.Itoa(int(r))
}
