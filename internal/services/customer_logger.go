package services

import (
	"context"
	"log/slog"
	"time"

	"shop-console/internal/logger"
)

const (
	// RedactedValue is used to mask sensitive information in logs to avoid logging PII
	RedactedValue = "***REDACTED***"
)

// CustomerLogger provides structured logging for customer-related operations
type CustomerLogger struct {
	logger *slog.Logger
}

// NewCustomerLogger creates a new customer logger
func NewCustomerLogger(logger *slog.Logger) CustomerLoggerInterface {
	return &CustomerLogger{
		logger: logger,
	}
}

// LogCustomerSearchStarted logs the start of a customer search operation
func (cl *CustomerLogger) LogCustomerSearchStarted(ctx context.Context, search string, filterGroups int) {
	query := ""
	if search != "" {
		query = RedactedValue // Mask query to avoid logging PII
	}

	cl.logger.InfoContext(ctx, "customer search started",
		slog.String("event_type", "customer_search_started"),
		slog.String("query", query),
		slog.Int("filter_groups", filterGroups),
		slog.Time("timestamp", time.Now()),
		slog.String("trace_id", logger.TraceIDFromContext(ctx)),
	)
}

// LogCustomerSearchCompleted logs the completion of a customer search
func (cl *CustomerLogger) LogCustomerSearchCompleted(ctx context.Context, resultsCount int, totalCount int64, durationMs int64) {
	cl.logger.InfoContext(ctx, "customer search completed",
		slog.String("event_type", "customer_search_completed"),
		slog.Int("results_count", resultsCount),
		slog.Int64("total_count", totalCount),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("trace_id", logger.TraceIDFromContext(ctx)),
	)
}

// LogCustomerSearchFailed logs a failed customer search
func (cl *CustomerLogger) LogCustomerSearchFailed(ctx context.Context, errorMsg string, durationMs int64) {
	cl.logger.WarnContext(ctx, "customer search failed",
		slog.String("event_type", "customer_search_failed"),
		slog.String("error", errorMsg),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("trace_id", logger.TraceIDFromContext(ctx)),
	)
}
