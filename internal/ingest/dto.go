package ingest

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/storepulse/storepulse-backend/pkg/db/models"
)

const dateLayout = "2006-01-02"

// SalesRowInput is one sales row as submitted by the importer.
type SalesRowInput struct {
	Date            string  `json:"date" validate:"required,datetime=2006-01-02"`
	StoreID         string  `json:"store_id" validate:"required"`
	Department      string  `json:"department"`
	ProductCategory string  `json:"product_category"`
	RevenueExTax    float64 `json:"revenue_ex_tax" validate:"gte=0"`
	Footfall        int     `json:"footfall" validate:"gte=0"`
	Transactions    int     `json:"transactions" validate:"gte=0"`
	Discounts       float64 `json:"discounts" validate:"gte=0"`
	Tax             float64 `json:"tax" validate:"gte=0"`
}

// WeatherRowInput is one observed-weather row as submitted by the importer.
type WeatherRowInput struct {
	Date          string  `json:"date" validate:"required,datetime=2006-01-02"`
	Location      string  `json:"location"`
	TempAvg       float64 `json:"temp_avg"`
	TempMax       float64 `json:"temp_max"`
	TempMin       float64 `json:"temp_min"`
	Humidity      float64 `json:"humidity" validate:"gte=0,lte=100"`
	Precipitation float64 `json:"precipitation" validate:"gte=0"`
	Condition     string  `json:"condition"`
}

// EventRowInput is one local-event row as submitted by the importer.
type EventRowInput struct {
	Date       string  `json:"date" validate:"required,datetime=2006-01-02"`
	Title      string  `json:"title" validate:"required"`
	Location   string  `json:"location"`
	DistanceKM float64 `json:"distance_km" validate:"gte=0"`
	Category   string  `json:"category"`
}

// Result reports how many rows a batch ingest persisted.
type Result struct {
	Accepted int `json:"accepted"`
}

func (r SalesRowInput) toModel() (models.SalesRecord, error) {
	date, err := time.Parse(dateLayout, r.Date)
	if err != nil {
		return models.SalesRecord{}, err
	}
	return models.SalesRecord{
		Date:            date,
		StoreID:         r.StoreID,
		Department:      r.Department,
		ProductCategory: r.ProductCategory,
		RevenueExTax:    decimal.NewFromFloat(r.RevenueExTax),
		Footfall:        r.Footfall,
		Transactions:    r.Transactions,
		Discounts:       decimal.NewFromFloat(r.Discounts),
		Tax:             decimal.NewFromFloat(r.Tax),
	}, nil
}

func (r WeatherRowInput) toModel() (models.WeatherRecord, error) {
	date, err := time.Parse(dateLayout, r.Date)
	if err != nil {
		return models.WeatherRecord{}, err
	}
	return models.WeatherRecord{
		Date:          date,
		Location:      r.Location,
		TempAvg:       r.TempAvg,
		TempMax:       r.TempMax,
		TempMin:       r.TempMin,
		Humidity:      r.Humidity,
		Precipitation: r.Precipitation,
		Condition:     r.Condition,
	}, nil
}

func (r EventRowInput) toModel() (models.EventRecord, error) {
	date, err := time.Parse(dateLayout, r.Date)
	if err != nil {
		return models.EventRecord{}, err
	}
	return models.EventRecord{
		Date:       date,
		Title:      r.Title,
		Location:   r.Location,
		DistanceKM: r.DistanceKM,
		Category:   r.Category,
	}, nil
}
