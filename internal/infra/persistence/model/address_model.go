// Package model contains the GORM-specific structs for the persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
)

// AddressModel is the GORM-specific struct for the 'addresses' table.
// NormalizedKey carries the unique index that enforces deduplication; the
// find-before-create in the resolver is only an optimization on top of it.
type AddressModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Street        string    `gorm:"type:varchar(255);not null"`
	Number        string    `gorm:"type:varchar(50)"`
	Unit          string    `gorm:"type:varchar(50)"`
	Floor         string    `gorm:"type:varchar(50)"`
	Block         string    `gorm:"type:varchar(50)"`
	BuildingName  string    `gorm:"type:varchar(255)"`
	LandPlot      string    `gorm:"type:varchar(100)"`
	City          string    `gorm:"type:varchar(100);not null"`
	State         string    `gorm:"type:varchar(100)"`
	PostalCode    string    `gorm:"type:varchar(20)"`
	Country       string    `gorm:"type:varchar(100)"`
	CountryCode   string    `gorm:"type:varchar(2);not null"`
	Lines         []string  `gorm:"type:jsonb;serializer:json"`
	Latitude      float64   `gorm:"type:decimal(10,8);not null"`
	Longitude     float64   `gorm:"type:decimal(11,8);not null"`
	NormalizedKey string    `gorm:"type:char(40);not null;uniqueIndex:idx_addresses_normalized_key"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (AddressModel) TableName() string {
	return "addresses"
}
