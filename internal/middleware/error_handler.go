package middleware

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"

	"shop-console/internal/errors"
	"shop-console/internal/logger"
	"shop-console/internal/render"
	"shop-console/internal/repositories"
	"shop-console/internal/services"
	"shop-console/internal/validation"

	"github.com/go-playground/validator/v10"
)

// ErrorHandler turns the error returned by a command into console output, a log entry,
// an error metric and a process exit code
type ErrorHandler struct {
	out     io.Writer
	logger  *slog.Logger
	metrics services.MetricsRecorderInterface
}

func NewErrorHandler(out io.Writer, logger *slog.Logger, metrics services.MetricsRecorderInterface) *ErrorHandler {
	return &ErrorHandler{
		out:     out,
		logger:  logger,
		metrics: metrics,
	}
}

// Handle reports err and returns the exit code. A nil error exits with 0.
func (h *ErrorHandler) Handle(ctx context.Context, err error) int {
	if err == nil {
		return errors.ExitOK
	}

	traceID := logger.TraceIDFromContext(ctx)
	if traceID == "" {
		traceID = "unknown"
	}

	cmdErr := ClassifyError(err)
	exitCode := cmdErr.ExitCode()

	logLevel := slog.LevelError
	if exitCode == errors.ExitUsage {
		logLevel = slog.LevelWarn
	}

	h.logger.Log(ctx, logLevel, "Command failed",
		"trace_id", traceID,
		"error_code", cmdErr.Code,
		"exit_code", exitCode,
		"message", cmdErr.Message,
		"error", err.Error(),
	)

	if h.metrics != nil {
		h.metrics.IncrementCounter("command_error", map[string]string{
			"code": string(cmdErr.Code),
		})
	}

	fmt.Fprintf(h.out, "Error: %s\n", cmdErr.Error())
	for _, detail := range cmdErr.Details {
		fmt.Fprintf(h.out, "  - %s\n", detail)
	}

	return exitCode
}

// ClassifyError maps an error to a command error carrying its code
func ClassifyError(err error) *errors.CommandError {
	var cmdErr *errors.CommandError
	if stderrors.As(err, &cmdErr) {
		return cmdErr
	}

	switch {
	case stderrors.Is(err, render.ErrInvalidFormat):
		return errors.NewCommandError(errors.ValidationInvalidFormat, err)
	case stderrors.Is(err, repositories.ErrInvalidFilterField),
		stderrors.Is(err, repositories.ErrInvalidConditionType):
		return errors.NewCommandError(errors.ValidationInvalidFilter, err)
	}

	var validationErrs validator.ValidationErrors
	if stderrors.As(err, &validationErrs) {
		return errors.NewCommandError(
			errors.ValidationGeneral,
			nil,
			errors.WithDetails(validation.FormatErrors(err)...),
		)
	}

	return errors.NewCommandError(errors.SystemUnexpectedError, err)
}
