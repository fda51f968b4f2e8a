package models

import (
	"errors"
	"regexp"
	"time"

	"gorm.io/gorm"
)

var (
	customerEmailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// Customer is a row of the customer entity table
type Customer struct {
	ID        uint      `gorm:"column:entity_id;primaryKey;autoIncrement" json:"id"`
	Email     string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_customer_email_website" json:"email"`
	Firstname string    `gorm:"column:firstname;type:varchar(255)" json:"firstname"`
	Lastname  string    `gorm:"column:lastname;type:varchar(255)" json:"lastname"`
	WebsiteID uint      `gorm:"column:website_id;not null;default:0;uniqueIndex:idx_customer_email_website" json:"website_id"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = now
	}

	return c.Validate()
}

func (c *Customer) Validate() error {
	if c.Email == "" {
		return errors.New("email is required")
	}

	if !customerEmailRegex.MatchString(c.Email) {
		return errors.New("invalid email format")
	}

	return nil
}

func (c *Customer) TableName() string {
	return "customer_entity"
}

// CustomerSearchResults is the result set of a customer repository lookup
type CustomerSearchResults struct {
	Items          []Customer
	TotalCount     int64
	SearchCriteria SearchCriteria
}
