package services

import (
	"context"
	"time"

	"shop-console/internal/models"
	"shop-console/internal/repositories"
)

const (
	SearchFieldEmail     = "email"
	SearchFieldFirstname = "firstname"
	SearchFieldLastname  = "lastname"

	DefaultSortField = "entity_id"
)

var searchFields = []string{SearchFieldEmail, SearchFieldFirstname, SearchFieldLastname}

// CustomerSearchService handles customer search operations
type CustomerSearchService struct {
	customerRepo repositories.CustomerRepositoryInterface
	logger       CustomerLoggerInterface
	metrics      MetricsRecorderInterface
	pageSize     int
}

// NewCustomerSearchService creates a new customer search service.
// A pageSize of zero returns every matching customer.
func NewCustomerSearchService(
	customerRepo repositories.CustomerRepositoryInterface,
	logger CustomerLoggerInterface,
	metrics MetricsRecorderInterface,
	pageSize int,
) CustomerSearchServiceInterface {
	return &CustomerSearchService{
		customerRepo: customerRepo,
		logger:       logger,
		metrics:      metrics,
		pageSize:     pageSize,
	}
}

// BuildCriteria builds the lookup for a search term.
// An empty term yields match-all criteria. Otherwise the criteria holds a single OR group of
// email, firstname and lastname LIKE %search%. The term is not escaped, so % and _ inside it
// act as wildcards.
func BuildCriteria(search string) models.SearchCriteria {
	return newCriteriaBuilder(search).Create()
}

func newCriteriaBuilder(search string) *models.SearchCriteriaBuilder {
	builder := models.NewSearchCriteriaBuilder()
	if search == "" {
		return builder
	}

	pattern := "%" + search + "%"
	filters := make([]models.Filter, 0, len(searchFields))
	for _, field := range searchFields {
		filters = append(filters, models.NewFilter(field, models.ConditionLike, pattern))
	}
	return builder.AddFilters(filters...)
}

// ListCustomers searches the customer repository.
// Repository errors are returned as they are.
func (s *CustomerSearchService) ListCustomers(ctx context.Context, search string) (*models.CustomerSearchResults, error) {
	start := time.Now()

	builder := newCriteriaBuilder(search).AddSortOrder(DefaultSortField, models.SortASC)
	if s.pageSize > 0 {
		builder.SetPageSize(s.pageSize).SetCurrentPage(1)
	}
	criteria := builder.Create()

	s.logger.LogCustomerSearchStarted(ctx, search, len(criteria.FilterGroups))

	results, err := s.customerRepo.GetList(criteria)
	duration := time.Since(start)
	s.metrics.RecordProcessingTime("customer_search", duration)
	if err != nil {
		s.logger.LogCustomerSearchFailed(ctx, err.Error(), duration.Milliseconds())
		s.metrics.IncrementCounter("customer_search_request", map[string]string{"status": "failure"})
		return nil, err
	}

	s.logger.LogCustomerSearchCompleted(ctx, len(results.Items), results.TotalCount, duration.Milliseconds())
	s.metrics.IncrementCounter("customer_search_request", map[string]string{"status": "success"})
	s.metrics.RecordGauge("customer_search_results", float64(len(results.Items)), nil)

	return results, nil
}
