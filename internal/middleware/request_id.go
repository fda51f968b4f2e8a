package middleware

import (
	"context"

	"shop-console/internal/logger"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// RequestID returns a PersistentPreRunE hook that assigns a unique trace ID to the
// command invocation. A trace ID already present on the command context is kept.
func RequestID() func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		if logger.TraceIDFromContext(ctx) == "" {
			ctx = logger.ContextWithTraceID(ctx, uuid.New().String())
		}

		cmd.SetContext(ctx)
		return nil
	}
}

// GetTraceID extracts the trace ID from the command context
// Returns empty string if not found
func GetTraceID(cmd *cobra.Command) string {
	return logger.TraceIDFromContext(cmd.Context())
}
