package models

import (
	"time"

	"github.com/diewo77/go-customers/validation"
)

// Customer is the registry's single entity. Number is the externally
// meaningful business key, distinct from the auto-assigned ID. Records are
// never deleted; Active only controls whether the listing shows them.
type Customer struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Number string `gorm:"size:50;uniqueIndex;not null" json:"number"`
	Name   string `gorm:"size:255;not null;index" json:"name"`

	Address    string `gorm:"size:500" json:"address,omitempty"`
	PostalCode string `gorm:"size:20" json:"postal_code,omitempty"`
	City       string `gorm:"size:100" json:"city,omitempty"`
	Country    string `gorm:"size:100" json:"country,omitempty"`

	VATNumber string `gorm:"size:20" json:"vat_number,omitempty"`
	Phone     string `gorm:"size:50" json:"phone,omitempty"`
	Mobile    string `gorm:"size:50" json:"mobile,omitempty"`
	Email     string `gorm:"size:255" json:"email,omitempty"`
	Website   string `gorm:"size:255" json:"website,omitempty"`
	Notes     string `gorm:"size:2000" json:"notes,omitempty"`

	Active bool `gorm:"not null;default:true" json:"active"`
}

// Validate checks the already-normalized record against the business rules
// and returns the violations in display order. All checks run; nothing
// short-circuits.
func (c *Customer) Validate() validation.Violations {
	v := validation.Violations{}
	validation.Required(c.Name, "Name is required.", &v)
	validation.Email(c.Email, "Invalid email address.", &v)
	validation.BelgianVAT(c.VATNumber, "Invalid Belgian VAT number.", &v)
	return v
}
