package commands

import (
	"errors"
	"time"

	"deliveryfilter/internal/core/domain/model/order"
	"deliveryfilter/internal/pkg/guard"
)

const defaultSeparator = ","

var (
	ErrFilterOrdersCommandIsNotConstructed = errors.New(
		"FilterOrdersCommand must be created via NewFilterOrdersCommand constructor",
	)
	ErrSourceIsRequired = errors.New("delivery orders path is required")
)

// FilterOrdersCommand describes one run: where the orders come from, which
// region and window to keep, and where the result goes.
//
// The target region and the result path are not checked here. An invalid
// region fails the filter step and a missing result path is reported by the
// writer, so both surface where the run would use them.
//
// Example:
//
//	start := time.Date(2024, 1, 1, 10, 0, 0, 0, time.Local)
//	cmd, err := NewFilterOrdersCommand("orders.txt", ",", 123456, &start, "result.txt")
//	if err != nil {
//	    return fmt.Errorf("invalid run parameters: %w", err)
//	}
//	report, err := handler.Handle(ctx, cmd)
type FilterOrdersCommand struct { //nolint:recvcheck //using for validation
	source      string
	separator   string
	region      order.RegionIndex
	windowStart *time.Time
	resultPath  string

	guard guard.ConstructorGuard
}

// NewFilterOrdersCommand builds the command. An empty separator defaults to ",";
// a nil windowStart lets the filter fall back to the current time.
func NewFilterOrdersCommand(
	source, separator string,
	region order.RegionIndex,
	windowStart *time.Time,
	resultPath string,
) (FilterOrdersCommand, error) {
	cmd := FilterOrdersCommand{
		region:     region,
		resultPath: resultPath,
		guard:      guard.NewConstructorGuard(),
	}

	if err := cmd.setSource(source); err != nil {
		return FilterOrdersCommand{}, err
	}
	cmd.setSeparator(separator)
	cmd.setWindowStart(windowStart)

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c FilterOrdersCommand) Validate() error {
	return c.guard.Validate(ErrFilterOrdersCommandIsNotConstructed)
}

func (c FilterOrdersCommand) Source() string {
	return c.source
}

func (c FilterOrdersCommand) Separator() string {
	return c.separator
}

func (c FilterOrdersCommand) Region() order.RegionIndex {
	return c.region
}

// WindowStart returns a copy of the configured window start, or nil.
func (c FilterOrdersCommand) WindowStart() *time.Time {
	if c.windowStart == nil {
		return nil
	}
	start := *c.windowStart
	return &start
}

func (c FilterOrdersCommand) ResultPath() string {
	return c.resultPath
}

func (c *FilterOrdersCommand) setSource(source string) error {
	if source == "" {
		return ErrSourceIsRequired
	}
	c.source = source
	return nil
}

func (c *FilterOrdersCommand) setSeparator(separator string) {
	if separator == "" {
		separator = defaultSeparator
	}
	c.separator = separator
}

func (c *FilterOrdersCommand) setWindowStart(windowStart *time.Time) {
	if windowStart == nil {
		return
	}
	start := *windowStart
	c.windowStart = &start
}
