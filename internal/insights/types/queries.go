package types

import "time"

// AnalysisRequest scopes one correlation analysis run. EndDate is inclusive.
type AnalysisRequest struct {
	StartDate  time.Time
	EndDate    time.Time
	StoreID    string
	Department string
	Category   string
}

// Filter returns the record filter matching this request's scope.
func (r AnalysisRequest) Filter() RecordFilter {
	return RecordFilter{
		Start:      r.StartDate,
		End:        r.EndDate,
		StoreID:    r.StoreID,
		Department: r.Department,
		Category:   r.Category,
	}
}

// RecordFilter scopes gateway fetches. Zero-valued optional fields mean "all".
type RecordFilter struct {
	Start      time.Time
	End        time.Time
	StoreID    string
	Department string
	Category   string
}

// ShiftYears returns the same filter moved by the given number of calendar years.
func (f RecordFilter) ShiftYears(years int) RecordFilter {
	shifted := f
	shifted.Start = f.Start.AddDate(years, 0, 0)
	shifted.End = f.End.AddDate(years, 0, 0)
	return shifted
}

// AnalysisResponse is the combined analysis payload returned to the API layer.
type AnalysisResponse struct {
	Correlations   []CorrelationResult `json:"correlations"`
	HeatmapData    []HeatmapCell       `json:"heatmapData"`
	ComparisonData []ComparisonRow     `json:"comparisonData"`
	Summary        AnalysisSummary     `json:"summary"`
}
