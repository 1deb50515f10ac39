package models

import "time"

// Entry is one row of the key-value persistence layer: the goal collection
// lives under a single key, each monthly memory under its own key.
type Entry struct {
	Key       string `gorm:"primaryKey"`
	Value     string `gorm:"not null"`
	UpdatedAt time.Time
}

func (Entry) TableName() string {
	return "kv_entries"
}
