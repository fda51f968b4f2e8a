package services

import (
	"context"
	"time"

	"shop-console/internal/models"
)

// CustomerSearchServiceInterface defines the contract for customer search operations
type CustomerSearchServiceInterface interface {
	// ListCustomers returns the customers whose email, first name or last name contain search.
	// An empty search matches every customer.
	ListCustomers(ctx context.Context, search string) (*models.CustomerSearchResults, error)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

type CustomerLoggerInterface interface {
	LogCustomerSearchStarted(ctx context.Context, search string, filterGroups int)
	LogCustomerSearchCompleted(ctx context.Context, resultsCount int, totalCount int64, durationMs int64)
	LogCustomerSearchFailed(ctx context.Context, errorMsg string, durationMs int64)
}
