package model

import (
	"time"

	"github.com/google/uuid"
)

// SavedPropertyFolderModel is the GORM-specific struct for the
// 'saved_property_folders' table. PropertyCount is denormalized and adjusted
// incrementally; the partial unique index keeps one default folder per profile.
type SavedPropertyFolderModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	ProfileID     uuid.UUID `gorm:"not null;index:idx_folders_profile;uniqueIndex:idx_folders_profile_default,where:is_default"`
	Name          string    `gorm:"type:varchar(100);not null"`
	Color         string    `gorm:"type:varchar(20)"`
	Icon          string    `gorm:"type:varchar(50)"`
	IsDefault     bool      `gorm:"not null;default:false"`
	PropertyCount int64     `gorm:"not null;default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (SavedPropertyFolderModel) TableName() string {
	return "saved_property_folders"
}
