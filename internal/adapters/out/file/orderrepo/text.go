package orderrepo

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"deliveryfilter/internal/core/domain/model/kernel"
	"deliveryfilter/internal/core/domain/model/order"
	"deliveryfilter/internal/pkg/errs"
)

const (
	// DefaultSeparator is used when no separator is configured.
	DefaultSeparator = ","

	textFieldCount = 4
	utf8BOM        = "\ufeff"
)

// parseLine turns one text line into a fully populated candidate.
// Fields are trimmed, so the result-file format parses back with separator ",".
func parseLine(line, separator, source string, loc *time.Location) (order.Candidate, error) {
	parts := strings.Split(line, separator)
	if len(parts) != textFieldCount {
		return order.Candidate{}, errs.NewValueIsInvalidErrorWithCause(
			"line",
			fmt.Errorf("expected %d fields separated by %q, got %d", textFieldCount, separator, len(parts)),
		)
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	id, err := kernel.UUIDFromString(parts[0])
	if err != nil {
		return order.Candidate{}, errs.NewValueIsInvalidErrorWithCause("order id", err)
	}

	weight, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return order.Candidate{}, errs.NewValueIsInvalidErrorWithCause("weight", err)
	}

	region, err := order.ParseRegionIndex(parts[2])
	if err != nil {
		return order.Candidate{}, err
	}

	deliveryTime, err := kernel.ParseDeliveryTime(parts[3], loc)
	if err != nil {
		return order.Candidate{}, err
	}

	return order.NewCandidate(id, weight, region, deliveryTime, source), nil
}

// splitLines splits on "\n", drops a trailing "\r" from each line and a leading BOM.
func splitLines(data []byte) []string {
	text := strings.TrimPrefix(string(data), utf8BOM)
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	// A final newline does not start another record.
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}
