package repositories

import (
	"errors"
	"fmt"
	"strings"

	"shop-console/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrInvalidFilterField   = errors.New("invalid filter field")
	ErrInvalidConditionType = errors.New("invalid condition type")
)

// customerColumns maps the field names accepted in search criteria to table columns
var customerColumns = map[string]string{
	"id":         "entity_id",
	"entity_id":  "entity_id",
	"email":      "email",
	"firstname":  "firstname",
	"lastname":   "lastname",
	"website_id": "website_id",
	"created_at": "created_at",
	"updated_at": "updated_at",
}

// CustomerRepository handles database operations for customers
type CustomerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a new customer repository
func NewCustomerRepository(db *gorm.DB) CustomerRepositoryInterface {
	return &CustomerRepository{
		db: db,
	}
}

// GetList returns the customers matching the criteria.
// Filters inside a group are OR'd, groups are AND'd.
func (r *CustomerRepository) GetList(criteria models.SearchCriteria) (*models.CustomerSearchResults, error) {
	filters, err := filterScope(criteria.FilterGroups)
	if err != nil {
		return nil, err
	}

	orders := make([]clause.OrderByColumn, 0, len(criteria.SortOrders))
	for _, order := range criteria.SortOrders {
		column, err := resolveColumn(order.Field)
		if err != nil {
			return nil, err
		}
		orders = append(orders, clause.OrderByColumn{
			Column: clause.Column{Name: column},
			Desc:   order.Direction == models.SortDESC,
		})
	}

	var total int64
	if err := r.db.Model(&models.Customer{}).Scopes(filters).Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count customers: %w", err)
	}

	query := r.db.Model(&models.Customer{}).Scopes(filters)
	for _, order := range orders {
		query = query.Order(order)
	}
	if criteria.PageSize > 0 {
		query = query.Offset(criteria.Offset()).Limit(criteria.PageSize)
	}

	customers := []models.Customer{}
	if err := query.Find(&customers).Error; err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}

	return &models.CustomerSearchResults{
		Items:          customers,
		TotalCount:     total,
		SearchCriteria: criteria,
	}, nil
}

func filterScope(groups []models.FilterGroup) (func(*gorm.DB) *gorm.DB, error) {
	type where struct {
		sql  string
		args []interface{}
	}

	wheres := make([]where, 0, len(groups))
	for _, group := range groups {
		fragments := make([]string, 0, len(group.Filters))
		var args []interface{}
		for _, filter := range group.Filters {
			fragment, fragmentArgs, err := compileFilter(filter)
			if err != nil {
				return nil, err
			}
			fragments = append(fragments, fragment)
			args = append(args, fragmentArgs...)
		}
		if len(fragments) == 0 {
			continue
		}
		wheres = append(wheres, where{
			sql:  "(" + strings.Join(fragments, " OR ") + ")",
			args: args,
		})
	}

	return func(db *gorm.DB) *gorm.DB {
		for _, w := range wheres {
			db = db.Where(w.sql, w.args...)
		}
		return db
	}, nil
}

func compileFilter(filter models.Filter) (string, []interface{}, error) {
	column, err := resolveColumn(filter.Field())
	if err != nil {
		return "", nil, err
	}

	value := filter.Value()
	switch filter.ConditionType() {
	case models.ConditionEq:
		return column + " = ?", []interface{}{value}, nil
	case models.ConditionNeq:
		return column + " <> ?", []interface{}{value}, nil
	case models.ConditionLike:
		return "LOWER(" + column + ") LIKE LOWER(?)", []interface{}{value}, nil
	case models.ConditionNotLike:
		return "LOWER(" + column + ") NOT LIKE LOWER(?)", []interface{}{value}, nil
	case models.ConditionIn:
		return column + " IN ?", []interface{}{value}, nil
	case models.ConditionNotIn:
		return column + " NOT IN ?", []interface{}{value}, nil
	case models.ConditionGt:
		return column + " > ?", []interface{}{value}, nil
	case models.ConditionLt:
		return column + " < ?", []interface{}{value}, nil
	case models.ConditionGteq:
		return column + " >= ?", []interface{}{value}, nil
	case models.ConditionLteq:
		return column + " <= ?", []interface{}{value}, nil
	case models.ConditionNull:
		return column + " IS NULL", nil, nil
	case models.ConditionNotNull:
		return column + " IS NOT NULL", nil, nil
	default:
		return "", nil, fmt.Errorf("%w: %s", ErrInvalidConditionType, filter.ConditionType())
	}
}

func resolveColumn(field string) (string, error) {
	column, ok := customerColumns[field]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrInvalidFilterField, field)
	}
	return column, nil
}
