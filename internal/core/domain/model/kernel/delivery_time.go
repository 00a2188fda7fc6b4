package kernel

import (
	"fmt"
	"strings"
	"time"

	"deliveryfilter/internal/pkg/errs"
)

// DeliveryTimeLayout is the layout of the configured first-delivery time and of
// every timestamp written to the result file.
const DeliveryTimeLayout = "2006-01-02 15:04:05"

// inputLayouts are tried in order by ParseDeliveryTime. RFC3339 also accepts
// fractional seconds.
var inputLayouts = []string{
	DeliveryTimeLayout,
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	"2006-01-02",
	"02.01.2006 15:04:05",
	"02.01.2006 15:04",
	"02.01.2006",
	"01/02/2006 15:04:05",
	"1/2/2006 3:04:05 PM",
	"01/02/2006",
}

// ParseDeliveryTime parses an input-file timestamp. It accepts the canonical
// layout plus the ISO and common locale forms found in exported order lists.
// Timestamps without an offset are interpreted in loc (time.Local when nil);
// timestamps with an offset are converted to loc, so the result always reads
// as a wall clock time in loc.
func ParseDeliveryTime(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}

	value := strings.TrimSpace(s)
	if value == "" {
		return time.Time{}, errs.NewValueIsRequiredError("delivery time")
	}

	for _, layout := range inputLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t.In(loc), nil
		}
	}

	return time.Time{}, errs.NewValueIsInvalidErrorWithCause(
		"delivery time",
		fmt.Errorf("%q matches no supported layout", value),
	)
}

// ParseFirstDeliveryTime parses the configured window start, which must use
// DeliveryTimeLayout exactly.
func ParseFirstDeliveryTime(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}

	t, err := time.ParseInLocation(DeliveryTimeLayout, s, loc)
	if err != nil {
		return time.Time{}, errs.NewValueIsInvalidErrorWithCause(
			"first delivery time",
			fmt.Errorf("%q: expected format yyyy-MM-dd HH:mm:ss", s),
		)
	}
	return t, nil
}

// FormatDeliveryTime renders t with DeliveryTimeLayout, dropping sub-second precision.
func FormatDeliveryTime(t time.Time) string {
	return t.Format(DeliveryTimeLayout)
}
