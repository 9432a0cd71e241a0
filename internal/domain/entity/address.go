// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// MaxAddressLines is the maximum number of free-form address lines per address.
const MaxAddressLines = 5

// MaxAddressLineLength is the maximum length of a single address line.
const MaxAddressLineLength = 200

// Address is the canonical record for a physical location. Two submissions
// that describe the same place converge to a single Address through the
// normalized key (see ComputeNormalizedKey).
type Address struct {
	ID            uuid.UUID // The Global Unique Identifier (GUID) for the address.
	Street        string    // Street name, e.g., "Calle de Alcalá".
	Number        string    // Street number, kept as a string ("123", "12 bis").
	Unit          string    // Apartment / suite / door within the building.
	Floor         string    // Floor within the building.
	Block         string    // Block identifier for multi-block developments.
	BuildingName  string    // Named building, e.g., "Torre Picasso".
	LandPlot      string    // Land-plot / cadastral identifier.
	City          string    // City or municipality.
	State         string    // State, province or region. Optional.
	PostalCode    string    // Postal code.
	Country       string    // Full country name as submitted.
	CountryCode   string    // ISO-2 country code, upper-cased.
	Lines         []string  // Free-form address lines (at most MaxAddressLines).
	Location      orb.Point // Geographic point, longitude/latitude order.
	NormalizedKey string    // Deterministic deduplication key, see ComputeNormalizedKey.
	CreatedAt     time.Time // Timestamp of when this address was created.
	UpdatedAt     time.Time // Timestamp of the last modification.
}

// Longitude returns the longitude component of the location.
func (a *Address) Longitude() float64 {
	return a.Location.Lon()
}

// Latitude returns the latitude component of the location.
func (a *Address) Latitude() float64 {
	return a.Location.Lat()
}

// HasValidLocation reports whether the location falls inside the valid
// longitude/latitude ranges.
func (a *Address) HasValidLocation() bool {
	lon, lat := a.Location.Lon(), a.Location.Lat()

	return lon >= -180 && lon <= 180 && lat >= -90 && lat <= 90
}
