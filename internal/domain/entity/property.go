package entity

import (
	"time"

	"github.com/google/uuid"
)

// PropertyStatus represents the listing state of a property.
type PropertyStatus string

const (
	// PropertyStatusActive indicates the listing is visible and rentable.
	PropertyStatusActive PropertyStatus = "active"
	// PropertyStatusRented indicates the property has been rented out.
	PropertyStatusRented PropertyStatus = "rented"
	// PropertyStatusArchived indicates the listing was withdrawn.
	PropertyStatusArchived PropertyStatus = "archived"
)

// IsValid checks if the PropertyStatus is a valid value.
func (s PropertyStatus) IsValid() bool {
	switch s {
	case PropertyStatusActive, PropertyStatusRented, PropertyStatusArchived:
		return true
	default:
		return false
	}
}

// Property is a rental listing. It references its canonical Address by ID;
// the address itself is shared between listings at the same location.
type Property struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID // The profile that published the listing.
	AddressID   uuid.UUID // The resolved canonical address.
	Title       string
	Description string
	RentAmount  float64
	Currency    string // ISO-4217 code, e.g., "EUR".
	Status      PropertyStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
