package dto

import (
	"strconv"
	"time"

	"shop-console/internal/models"
)

// CreatedAtLayout is the timestamp layout of the created_at column
const CreatedAtLayout = "2006-01-02 15:04:05"

// CustomerListHeaders are the customer:list columns, in output order
var CustomerListHeaders = []string{"id", "email", "firstname", "lastname", "website", "created_at"}

// ListCustomersRequest holds the parsed customer:list input
type ListCustomersRequest struct {
	Search string
	Format string
}

// CustomerRow is the customer:list projection of a customer
type CustomerRow struct {
	ID        uint
	Email     string
	Firstname string
	Lastname  string
	Website   uint
	CreatedAt time.Time
}

// NewCustomerRow projects a customer to its list row
func NewCustomerRow(customer models.Customer) CustomerRow {
	return CustomerRow{
		ID:        customer.ID,
		Email:     customer.Email,
		Firstname: customer.Firstname,
		Lastname:  customer.Lastname,
		Website:   customer.WebsiteID,
		CreatedAt: customer.CreatedAt,
	}
}

// Values returns the row cells in CustomerListHeaders order
func (r CustomerRow) Values() []string {
	return []string{
		strconv.FormatUint(uint64(r.ID), 10),
		r.Email,
		r.Firstname,
		r.Lastname,
		strconv.FormatUint(uint64(r.Website), 10),
		r.CreatedAt.UTC().Format(CreatedAtLayout),
	}
}

// CustomerTable projects customers to table cells, keeping their order
func CustomerTable(customers []models.Customer) [][]string {
	rows := make([][]string, 0, len(customers))
	for _, customer := range customers {
		rows = append(rows, NewCustomerRow(customer).Values())
	}
	return rows
}
