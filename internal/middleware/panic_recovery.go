package middleware

import (
	"fmt"
	"log/slog"
	"runtime/debug"

	"shop-console/internal/errors"

	"github.com/spf13/cobra"
)

// RunE is the signature of a cobra command body
type RunE func(cmd *cobra.Command, args []string) error

// PanicRecovery wraps a command body and turns a panic into a SYSTEM_001 command error
func PanicRecovery(logger *slog.Logger, next RunE) RunE {
	return func(cmd *cobra.Command, args []string) (err error) {
		defer func() {
			if r := recover(); r != nil {
				traceID := GetTraceID(cmd)
				if traceID == "" {
					traceID = "unknown"
				}

				logger.Error("Panic recovered",
					"trace_id", traceID,
					"panic", fmt.Sprintf("%v", r),
					"stack_trace", string(debug.Stack()),
					"command", cmd.CommandPath(),
				)

				err = errors.NewCommandError(
					errors.SystemInternalError,
					nil,
					errors.WithTraceID(traceID),
				)
			}
		}()

		return next(cmd, args)
	}
}
