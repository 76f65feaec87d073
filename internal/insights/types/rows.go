package types

// DailyAggregate joins one sales-bearing calendar date with that day's weather and
// events. Built fresh per analysis call and never persisted.
type DailyAggregate struct {
	Date              string         `json:"date"`
	TotalSales        float64        `json:"totalSales"`
	TotalFootfall     int            `json:"totalFootfall"`
	TotalTransactions int            `json:"totalTransactions"`
	DayOfWeek         int            `json:"dayOfWeek"`
	Temperature       *float64       `json:"temperature,omitempty"`
	Humidity          *float64       `json:"humidity,omitempty"`
	Precipitation     *float64       `json:"precipitation,omitempty"`
	WeatherCondition  *string        `json:"weatherCondition,omitempty"`
	IsRainy           bool           `json:"isRainy"`
	IsSunny           bool           `json:"isSunny"`
	HasEvent          bool           `json:"hasEvent"`
	Events            []EventSummary `json:"events"`
}

// EventSummary is the slice of an event row carried on a DailyAggregate.
type EventSummary struct {
	Title      string  `json:"title"`
	Location   string  `json:"location"`
	DistanceKM float64 `json:"distance_km"`
}

// CorrelationResult reports one factor's association with daily sales.
// Correlation is always finite and clamped to [-1, 1].
type CorrelationResult struct {
	Factor       string  `json:"factor"`
	Correlation  float64 `json:"correlation"`
	Significance float64 `json:"significance"`
	SampleSize   int     `json:"sampleSize"`
	Description  string  `json:"description"`
}

// HeatmapCell is one populated cell of the weekday × weather grid. Cells with no
// matching days are never emitted.
type HeatmapCell struct {
	X       string  `json:"x"`
	Y       string  `json:"y"`
	Value   float64 `json:"value"`
	Tooltip string  `json:"tooltip"`
}

// ComparisonRow lines up a date's sales against the previous day and the same date
// one year earlier. Missing lookups report 0 rather than a sentinel.
type ComparisonRow struct {
	Date         string  `json:"date"`
	Current      float64 `json:"current"`
	PreviousDay  float64 `json:"previousDay"`
	PreviousYear float64 `json:"previousYear"`
	DayOfWeek    int     `json:"dayOfWeek"`
	Weather      *string `json:"weather,omitempty"`
	HasEvent     bool    `json:"hasEvent"`
}

// AnalysisSummary is the reduced view over all correlation results.
type AnalysisSummary struct {
	StrongestPositive *CorrelationResult `json:"strongestPositive"`
	StrongestNegative *CorrelationResult `json:"strongestNegative"`
	TotalAnalyzedDays int                `json:"totalAnalyzedDays"`
	AverageDailySales float64            `json:"averageDailySales"`
}
