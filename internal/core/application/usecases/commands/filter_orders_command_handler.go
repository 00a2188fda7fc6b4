package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"deliveryfilter/internal/core/ports"
)

// ErrPipelinePanicked wraps a panic recovered while handling a run.
var ErrPipelinePanicked = errors.New("order processing panicked")

// Report summarises a run. Counts are filled up to the stage the run reached.
type Report struct {
	Stage    Stage
	Loaded   int
	Rejected int
	Filtered int
	Written  int
}

// FilterOrdersCommandHandler runs load → validate → filter → save for one
// FilterOrdersCommand. It is the only error boundary of a run:
//   - no orders after loading (missing file, bad JSON, everything rejected)
//     stops the run without an error
//   - an invalid target region stops the run with an error
//   - nothing to write, or no result path, completes the run with Written == 0
//   - a write failure is logged and stops the run without an error
//   - a panic in any stage is recovered and returned as ErrPipelinePanicked
type FilterOrdersCommandHandler struct {
	reader    ports.OrderReader
	writer    ports.OrderWriter
	validator OrderValidator
	filter    OrderFilter
	logger    *slog.Logger
}

// NewFilterOrdersCommandHandler wires the handler to its ports and domain services.
func NewFilterOrdersCommandHandler(
	reader ports.OrderReader,
	writer ports.OrderWriter,
	validator OrderValidator,
	filter OrderFilter,
	logger *slog.Logger,
) FilterOrdersCommandHandler {
	return FilterOrdersCommandHandler{
		reader:    reader,
		writer:    writer,
		validator: validator,
		filter:    filter,
		logger:    logger.With("component", "filter_orders_handler"),
	}
}

// Handle processes the command. The returned Report is always populated; the
// error is non-nil only when the run was stopped by a fatal condition.
func (h *FilterOrdersCommandHandler) Handle(ctx context.Context, cmd FilterOrdersCommand) (report Report, err error) {
	if err = cmd.Validate(); err != nil {
		return Report{Stage: Unknown}, err
	}

	report.Stage = Started
	defer func() {
		if r := recover(); r != nil {
			h.logger.ErrorContext(ctx, "order processing failed", "stage", report.Stage.String(), "panic", r)
			report.Stage = Stopped
			err = fmt.Errorf("%w: %v", ErrPipelinePanicked, r)
		}
	}()

	h.logger.InfoContext(ctx, "starting order processing", "source", cmd.Source())

	candidates, loadErr := h.reader.Load(ctx, cmd.Source(), cmd.Separator())
	if loadErr != nil {
		h.logger.ErrorContext(ctx, "failed to load orders", "source", cmd.Source(), "error", loadErr)
	}

	orders, rejected := h.validator.ValidateAll(candidates)
	report.Loaded = len(orders)
	report.Rejected = rejected
	if len(orders) == 0 {
		h.logger.WarnContext(ctx, "no orders loaded from the file", "source", cmd.Source(), "rejected", rejected)
		return h.stop(report), nil
	}
	if report.Stage, err = report.Stage.Next(); err != nil {
		return h.stop(report), err
	}
	h.logger.InfoContext(ctx, "loaded orders",
		"count", report.Loaded, "rejected", report.Rejected, "source", cmd.Source())

	filtered, err := h.filter.Filter(orders, cmd.Region(), cmd.WindowStart())
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to filter orders", "region", int(cmd.Region()), "error", err)
		return h.stop(report), err
	}
	report.Filtered = len(filtered)
	if report.Stage, err = report.Stage.Next(); err != nil {
		return h.stop(report), err
	}
	h.logger.InfoContext(ctx, "filtered orders", "count", report.Filtered, "region", int(cmd.Region()))

	switch saveErr := h.writer.Save(ctx, filtered, cmd.ResultPath()); {
	case saveErr == nil:
		report.Written = len(filtered)
		h.logger.InfoContext(ctx, "filtered orders saved", "count", report.Written, "path", cmd.ResultPath())
	case errors.Is(saveErr, ports.ErrNothingToSave), errors.Is(saveErr, ports.ErrResultPathIsRequired):
		h.logger.WarnContext(ctx, "no result file written", "path", cmd.ResultPath(), "reason", saveErr)
	default:
		h.logger.ErrorContext(ctx, "failed to save orders", "path", cmd.ResultPath(), "error", saveErr)
		return h.stop(report), nil
	}

	if report.Stage, err = report.Stage.Next(); err != nil {
		return h.stop(report), err
	}
	h.logger.InfoContext(ctx, "order processing completed", "stage", report.Stage.String())
	return report, nil
}

func (h *FilterOrdersCommandHandler) stop(report Report) Report {
	if stopped, err := report.Stage.Stop(); err == nil {
		report.Stage = stopped
	} else {
		report.Stage = Stopped
	}
	return report
}
