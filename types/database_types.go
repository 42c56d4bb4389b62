package types

import (
	"time"
)

// ThemePreference stores the dark mode flag of one client
type ThemePreference struct {
	ClientID  string `gorm:"primaryKey;size:128"`
	Dark      bool   `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ThemePreference) TableName() string {
	return "theme_preferences"
}
