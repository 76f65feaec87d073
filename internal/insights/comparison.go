package insights

import (
	"sort"

	"github.com/storepulse/storepulse-backend/internal/insights/types"
)

// BuildComparisonSeries emits one row per aggregate, pairing each date's sales with
// the previous calendar day (from the same aggregate set) and the same date one year
// earlier (from the secondary aggregate set). Missing lookups report 0 — a documented
// approximation, not a sentinel. Rows are sorted ascending by date.
func BuildComparisonSeries(aggregates, previousYear []types.DailyAggregate) []types.ComparisonRow {
	salesByDate := make(map[string]float64, len(aggregates))
	for _, agg := range aggregates {
		salesByDate[agg.Date] = agg.TotalSales
	}
	previousYearByDate := make(map[string]float64, len(previousYear))
	for _, agg := range previousYear {
		previousYearByDate[agg.Date] = agg.TotalSales
	}

	rows := make([]types.ComparisonRow, 0, len(aggregates))
	for _, agg := range aggregates {
		row := types.ComparisonRow{
			Date:      agg.Date,
			Current:   agg.TotalSales,
			DayOfWeek: agg.DayOfWeek,
			Weather:   agg.WeatherCondition,
			HasEvent:  agg.HasEvent,
		}
		if date, ok := parseAggregateDate(agg.Date); ok {
			row.PreviousDay = salesByDate[date.AddDate(0, 0, -1).Format(dateLayout)]
			row.PreviousYear = previousYearByDate[date.AddDate(-1, 0, 0).Format(dateLayout)]
		}
		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Date < rows[j].Date
	})
	return rows
}
