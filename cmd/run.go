package cmd

import (
	"context"
	"log/slog"
)

const (
	ExitOK      = 0
	ExitFailure = 1
)

// Run performs one filtering run and returns the process exit code.
// Configuration and startup errors are written to logger before returning
// ExitFailure, so they reach the log file like every other diagnostic.
func Run(ctx context.Context, args []string, env Env, logger *slog.Logger) int {
	logger.InfoContext(ctx, "program started")

	config, err := Load(args, env)
	if err != nil {
		logger.ErrorContext(ctx, "failed to load configuration", "error", err)
		return ExitFailure
	}

	app, err := NewCompositionRoot(config, logger)
	if err != nil {
		logger.ErrorContext(ctx, "failed to build application", "error", err)
		return ExitFailure
	}

	command, err := app.CreateFilterOrdersCommand()
	if err != nil {
		logger.ErrorContext(ctx, "failed to create command", "error", err)
		return ExitFailure
	}

	handler := app.CreateFilterOrdersCommandHandler()
	report, err := handler.Handle(ctx, command)
	if err != nil {
		logger.ErrorContext(ctx, "run failed", "stage", report.Stage.String(), "error", err)
		return ExitFailure
	}

	logger.InfoContext(ctx, "program finished",
		"stage", report.Stage.String(),
		"loaded", report.Loaded,
		"rejected", report.Rejected,
		"filtered", report.Filtered,
		"written", report.Written,
	)
	return ExitOK
}
