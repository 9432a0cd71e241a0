package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultFolderName is the display name of the per-profile default folder.
const DefaultFolderName = "My Saves"

// SavedPropertyFolder groups a profile's saved properties. Exactly one folder
// per profile has IsDefault set; the default folder cannot be renamed or
// deleted.
//
// PropertyCount is denormalized and maintained by incremental ±1 adjustments
// on save/unsave/move. A full list refresh recomputes it from the records and
// is treated as authoritative.
type SavedPropertyFolder struct {
	ID            uuid.UUID
	ProfileID     uuid.UUID
	Name          string
	Color         string
	Icon          string
	IsDefault     bool
	PropertyCount int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
