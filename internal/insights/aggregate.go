package insights

import (
	"sort"
	"time"

	"github.com/storepulse/storepulse-backend/internal/insights/types"
	"github.com/storepulse/storepulse-backend/pkg/db/models"
)

const dateLayout = "2006-01-02"

// BuildDailyAggregates joins sales, weather, and event rows into one DailyAggregate
// per sales-bearing date. Dates with no sales rows are never synthesized; weather and
// event rows for sales-less dates are dropped. The result is sorted ascending by date
// so repeated runs over identical inputs produce identical output.
func BuildDailyAggregates(sales []models.SalesRecord, weather []models.WeatherRecord, events []models.EventRecord) []types.DailyAggregate {
	byDate := make(map[string]*types.DailyAggregate, len(sales))
	for _, rec := range sales {
		key := rec.Date.Format(dateLayout)
		agg, ok := byDate[key]
		if !ok {
			agg = &types.DailyAggregate{
				Date:      key,
				DayOfWeek: int(rec.Date.Weekday()),
				Events:    []types.EventSummary{},
			}
			byDate[key] = agg
		}
		agg.TotalSales += rec.RevenueExTax.InexactFloat64()
		agg.TotalFootfall += rec.Footfall
		agg.TotalTransactions += rec.Transactions
	}

	// One weather row per date is assumed; duplicates resolve last-write-wins.
	weatherByDate := make(map[string]models.WeatherRecord, len(weather))
	for _, rec := range weather {
		weatherByDate[rec.Date.Format(dateLayout)] = rec
	}

	eventsByDate := make(map[string][]models.EventRecord, len(events))
	for _, rec := range events {
		key := rec.Date.Format(dateLayout)
		eventsByDate[key] = append(eventsByDate[key], rec)
	}

	for key, agg := range byDate {
		if rec, ok := weatherByDate[key]; ok {
			temp := rec.TempAvg
			humidity := rec.Humidity
			precipitation := rec.Precipitation
			condition := rec.Condition
			agg.Temperature = &temp
			agg.Humidity = &humidity
			agg.Precipitation = &precipitation
			agg.WeatherCondition = &condition
			agg.IsRainy = IsRainyCondition(condition)
			agg.IsSunny = IsSunnyCondition(condition)
		}
		for _, ev := range eventsByDate[key] {
			agg.Events = append(agg.Events, types.EventSummary{
				Title:      ev.Title,
				Location:   ev.Location,
				DistanceKM: ev.DistanceKM,
			})
		}
		agg.HasEvent = len(agg.Events) > 0
	}

	aggregates := make([]types.DailyAggregate, 0, len(byDate))
	for _, agg := range byDate {
		aggregates = append(aggregates, *agg)
	}
	sort.Slice(aggregates, func(i, j int) bool {
		return aggregates[i].Date < aggregates[j].Date
	})
	return aggregates
}

func parseAggregateDate(value string) (time.Time, bool) {
	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}
