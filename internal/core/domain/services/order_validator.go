package services

import (
	"errors"
	"log/slog"

	"deliveryfilter/internal/core/domain/model/order"
	"deliveryfilter/internal/pkg/errs"
)

// OrderValidator accepts or rejects candidates one at a time.
type OrderValidator struct {
	logger *slog.Logger
}

// NewOrderValidator creates a validator that reports rejections to logger.
func NewOrderValidator(logger *slog.Logger) OrderValidator {
	return OrderValidator{
		logger: logger.With("component", "order_validator"),
	}
}

// Validate returns the validated order, or the first failing rule as the
// rejection reason. A rejection is a normal outcome and is logged as a warning.
func (v OrderValidator) Validate(c order.Candidate) (*order.Order, error) {
	o, err := order.FromCandidate(c)
	if err != nil {
		v.logger.Warn("order failed validation and was skipped",
			"source", c.Source,
			"field", rejectedField(err),
			"error", err,
		)
		return nil, err
	}
	return o, nil
}

// ValidateAll keeps the accepted orders in input order and returns how many were rejected.
func (v OrderValidator) ValidateAll(candidates []order.Candidate) ([]*order.Order, int) {
	orders := make([]*order.Order, 0, len(candidates))
	rejected := 0

	for _, c := range candidates {
		o, err := v.Validate(c)
		if err != nil {
			rejected++
			continue
		}
		orders = append(orders, o)
	}

	return orders, rejected
}

func rejectedField(err error) string {
	var required *errs.ValueIsRequiredError
	if errors.As(err, &required) {
		return required.ParamName
	}
	var outOfRange *errs.ValueIsOutOfRangeError
	if errors.As(err, &outOfRange) {
		return outOfRange.ParamName
	}
	return ""
}
