package entity

import "time"

// SavedView is a named filter preset for a resource list. Query holds the
// URL-encoded QueryState so applying a view is just re-parsing it.
type SavedView struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	Resource  string `gorm:"size:64;not null;index:idx_saved_view_resource"`
	Name      string `gorm:"size:128;not null"`
	Query     string `gorm:"size:2048;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (SavedView) TableName() string {
	return "console_saved_view"
}
