package models

import (
	"time"

	"github.com/google/uuid"
)

// WeatherRecord is the day's observed weather for a location. One row per date is
// assumed downstream; duplicate ingests overwrite (last write wins).
type WeatherRecord struct {
	ID            uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Date          time.Time `gorm:"column:date;type:date;not null;uniqueIndex:idx_weather_date" json:"date"`
	Location      string    `gorm:"column:location;not null;default:''" json:"location"`
	TempAvg       float64   `gorm:"column:temp_avg;not null;default:0" json:"temp_avg"`
	TempMax       float64   `gorm:"column:temp_max;not null;default:0" json:"temp_max"`
	TempMin       float64   `gorm:"column:temp_min;not null;default:0" json:"temp_min"`
	Humidity      float64   `gorm:"column:humidity;not null;default:0" json:"humidity"`
	Precipitation float64   `gorm:"column:precipitation;not null;default:0" json:"precipitation"`
	Condition     string    `gorm:"column:condition;not null;default:''" json:"condition"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (WeatherRecord) TableName() string { return "weather_records" }
