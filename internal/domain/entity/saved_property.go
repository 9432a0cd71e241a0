package entity

import (
	"time"

	"github.com/google/uuid"
)

// SavedProperty is a bookmark linking a profile to a property, optionally
// filed into a folder. A nil FolderID means "uncategorized". At most one
// record exists per (profile, property) pair.
type SavedProperty struct {
	ID         uuid.UUID  // The unique identifier of the bookmark.
	ProfileID  uuid.UUID  // The owning profile.
	PropertyID uuid.UUID  // The referenced property. Reference only, no ownership.
	FolderID   *uuid.UUID // Folder assignment; nil when uncategorized.
	Notes      string     // Free-text note attached by the user.
	AddedAt    time.Time  // When the property was first saved.
	UpdatedAt  time.Time  // Last modification (note edit, folder move).
}
