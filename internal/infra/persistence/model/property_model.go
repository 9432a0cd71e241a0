package model

import (
	"time"

	"github.com/google/uuid"
)

// PropertyModel is the GORM-specific struct for the 'properties' table.
type PropertyModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	OwnerID     uuid.UUID `gorm:"not null;index:idx_properties_owner"`
	AddressID   uuid.UUID `gorm:"not null;index:idx_properties_address"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	RentAmount  float64   `gorm:"type:decimal(12,2);not null"`
	Currency    string    `gorm:"type:varchar(3);not null"`
	Status      string    `gorm:"type:varchar(20);not null;default:'active'"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (PropertyModel) TableName() string {
	return "properties"
}
