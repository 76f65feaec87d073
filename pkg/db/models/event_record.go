package models

import (
	"time"

	"github.com/google/uuid"
)

// EventRecord is a local event near a store. Zero or more per date.
type EventRecord struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Date       time.Time `gorm:"column:date;type:date;not null;index" json:"date"`
	Title      string    `gorm:"column:title;not null" json:"title"`
	Location   string    `gorm:"column:location;not null;default:''" json:"location"`
	DistanceKM float64   `gorm:"column:distance_km;not null;default:0" json:"distance_km"`
	Category   string    `gorm:"column:category;not null;default:''" json:"category"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (EventRecord) TableName() string { return "event_records" }
