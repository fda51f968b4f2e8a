package models

// ConditionType is the comparison applied by a Filter
type ConditionType string

const (
	ConditionEq      ConditionType = "eq"
	ConditionNeq     ConditionType = "neq"
	ConditionLike    ConditionType = "like"
	ConditionNotLike ConditionType = "nlike"
	ConditionIn      ConditionType = "in"
	ConditionNotIn   ConditionType = "nin"
	ConditionGt      ConditionType = "gt"
	ConditionLt      ConditionType = "lt"
	ConditionGteq    ConditionType = "gteq"
	ConditionLteq    ConditionType = "lteq"
	ConditionNull    ConditionType = "null"
	ConditionNotNull ConditionType = "notnull"
)

// SortDirection is the direction of a SortOrder
type SortDirection string

const (
	SortASC  SortDirection = "ASC"
	SortDESC SortDirection = "DESC"
)

// Filter is a single field/condition/value triple
type Filter struct {
	field         string
	conditionType ConditionType
	value         interface{}
}

// NewFilter creates a filter. An empty condition type defaults to eq.
func NewFilter(field string, conditionType ConditionType, value interface{}) Filter {
	if conditionType == "" {
		conditionType = ConditionEq
	}
	return Filter{
		field:         field,
		conditionType: conditionType,
		value:         value,
	}
}

func (f Filter) Field() string {
	return f.field
}

func (f Filter) ConditionType() ConditionType {
	return f.conditionType
}

func (f Filter) Value() interface{} {
	return f.value
}

// FilterGroup holds filters that are OR'd together. Groups are AND'd with each other.
type FilterGroup struct {
	Filters []Filter
}

// SortOrder orders results by a field
type SortOrder struct {
	Field     string
	Direction SortDirection
}

// SearchCriteria describes a repository lookup: filter groups, sort orders and paging.
// A PageSize of zero means the result set is not paginated.
type SearchCriteria struct {
	FilterGroups []FilterGroup
	SortOrders   []SortOrder
	PageSize     int
	CurrentPage  int
}

// IsMatchAll reports whether the criteria restricts nothing
func (c SearchCriteria) IsMatchAll() bool {
	return len(c.FilterGroups) == 0
}

// Offset returns the row offset for the current page
func (c SearchCriteria) Offset() int {
	if c.PageSize <= 0 || c.CurrentPage <= 1 {
		return 0
	}
	return (c.CurrentPage - 1) * c.PageSize
}

// SearchCriteriaBuilder accumulates filter groups, sort orders and paging.
// Create returns the criteria and resets the builder.
type SearchCriteriaBuilder struct {
	filterGroups []FilterGroup
	sortOrders   []SortOrder
	pageSize     int
	currentPage  int
}

// NewSearchCriteriaBuilder creates an empty builder
func NewSearchCriteriaBuilder() *SearchCriteriaBuilder {
	return &SearchCriteriaBuilder{}
}

// AddFilters appends one OR group made of the given filters. Calling it with no filters is a no-op.
func (b *SearchCriteriaBuilder) AddFilters(filters ...Filter) *SearchCriteriaBuilder {
	if len(filters) == 0 {
		return b
	}
	group := FilterGroup{Filters: make([]Filter, len(filters))}
	copy(group.Filters, filters)
	b.filterGroups = append(b.filterGroups, group)
	return b
}

// AddSortOrder appends a sort order
func (b *SearchCriteriaBuilder) AddSortOrder(field string, direction SortDirection) *SearchCriteriaBuilder {
	if direction == "" {
		direction = SortASC
	}
	b.sortOrders = append(b.sortOrders, SortOrder{Field: field, Direction: direction})
	return b
}

// SetPageSize sets the page size, zero disables paging
func (b *SearchCriteriaBuilder) SetPageSize(size int) *SearchCriteriaBuilder {
	b.pageSize = size
	return b
}

// SetCurrentPage sets the 1-based page number
func (b *SearchCriteriaBuilder) SetCurrentPage(page int) *SearchCriteriaBuilder {
	b.currentPage = page
	return b
}

// Create returns the accumulated criteria and resets the builder
func (b *SearchCriteriaBuilder) Create() SearchCriteria {
	criteria := SearchCriteria{
		FilterGroups: b.filterGroups,
		SortOrders:   b.sortOrders,
		PageSize:     b.pageSize,
		CurrentPage:  b.currentPage,
	}
	if criteria.FilterGroups == nil {
		criteria.FilterGroups = []FilterGroup{}
	}
	*b = SearchCriteriaBuilder{}
	return criteria
}
