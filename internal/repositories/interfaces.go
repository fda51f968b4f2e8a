package repositories

import (
	"shop-console/internal/models"
)

// CustomerRepositoryInterface defines the contract for customer repository operations
type CustomerRepositoryInterface interface {
	// GetList returns the customers matching the criteria together with the total match count
	GetList(criteria models.SearchCriteria) (*models.CustomerSearchResults, error)
}
