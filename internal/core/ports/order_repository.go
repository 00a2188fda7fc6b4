package ports

import (
	"context"

	"deliveryfilter/internal/core/domain/model/order"
	"deliveryfilter/internal/pkg/errs"
)

var (
	// ErrNothingToSave is returned by OrderWriter.Save for an empty order list.
	ErrNothingToSave = errs.NewValueIsRequiredError("orders to save")
	// ErrResultPathIsRequired is returned by OrderWriter.Save for an empty output path.
	ErrResultPathIsRequired = errs.NewValueIsRequiredError("result file path")
)

// OrderReader loads raw order records from an input file.
type OrderReader interface {
	// Load returns the candidates of path in file order. Records that cannot be
	// parsed are skipped and logged; a missing or unreadable file is an error.
	Load(ctx context.Context, path, separator string) ([]order.Candidate, error)
}

// OrderWriter stores the filtered orders.
type OrderWriter interface {
	// Save writes one line per order to path, replacing any existing file.
	// It returns ErrNothingToSave or ErrResultPathIsRequired without touching
	// the filesystem when there is nothing to write or nowhere to write it.
	Save(ctx context.Context, orders []*order.Order, path string) error
}

// OrderRepository is the flat-file store: input on one side, results on the other.
type OrderRepository interface {
	OrderReader
	OrderWriter
}
