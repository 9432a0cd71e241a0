package model

import (
	"time"

	"github.com/google/uuid"
)

// SavedPropertyModel is the GORM-specific struct for the 'saved_properties'
// table. The composite unique index enforces at most one record per
// (profile, property) pair; save is an upsert on top of it.
type SavedPropertyModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	ProfileID  uuid.UUID  `gorm:"not null;uniqueIndex:idx_saved_properties_profile_property;index:idx_saved_properties_profile"`
	PropertyID uuid.UUID  `gorm:"not null;uniqueIndex:idx_saved_properties_profile_property"`
	FolderID   *uuid.UUID `gorm:"index:idx_saved_properties_folder"`
	Notes      string     `gorm:"type:text"`
	AddedAt    time.Time  `gorm:"not null;autoCreateTime"`
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (SavedPropertyModel) TableName() string {
	return "saved_properties"
}
