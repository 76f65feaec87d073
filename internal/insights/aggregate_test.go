package insights

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/storepulse/storepulse-backend/pkg/db/models"
)

func day(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		t.Fatalf("parse date %q: %v", value, err)
	}
	return parsed
}

func salesRow(t *testing.T, date string, revenue int64, footfall, transactions int) models.SalesRecord {
	t.Helper()
	return models.SalesRecord{
		Date:         day(t, date),
		StoreID:      "store-1",
		RevenueExTax: decimal.NewFromInt(revenue),
		Footfall:     footfall,
		Transactions: transactions,
	}
}

func TestBuildDailyAggregatesGroupsByDate(t *testing.T) {
	sales := []models.SalesRecord{
		salesRow(t, "2025-06-02", 1200, 40, 25),
		salesRow(t, "2025-06-02", 800, 30, 15),
		salesRow(t, "2025-06-03", 500, 20, 10),
	}
	weather := []models.WeatherRecord{
		{Date: day(t, "2025-06-02"), TempAvg: 21.5, Humidity: 60, Precipitation: 0, Condition: "Sunny"},
	}
	events := []models.EventRecord{
		{Date: day(t, "2025-06-03"), Title: "Street market", Location: "Main Square", DistanceKM: 0.4},
	}

	aggregates := BuildDailyAggregates(sales, weather, events)
	if len(aggregates) != 2 {
		t.Fatalf("expected 2 aggregates, got %d", len(aggregates))
	}

	first := aggregates[0]
	if first.Date != "2025-06-02" {
		t.Fatalf("expected ascending date order, got %q first", first.Date)
	}
	if first.TotalSales != 2000 {
		t.Errorf("expected summed sales 2000, got %v", first.TotalSales)
	}
	if first.TotalFootfall != 70 || first.TotalTransactions != 40 {
		t.Errorf("expected footfall 70 / transactions 40, got %d / %d", first.TotalFootfall, first.TotalTransactions)
	}
	if first.DayOfWeek != 1 {
		t.Errorf("2025-06-02 is a Monday, got day of week %d", first.DayOfWeek)
	}
	if first.Temperature == nil || *first.Temperature != 21.5 {
		t.Errorf("expected temperature 21.5, got %v", first.Temperature)
	}
	if !first.IsSunny || first.IsRainy {
		t.Errorf("expected sunny flags for %q", *first.WeatherCondition)
	}
	if first.HasEvent || len(first.Events) != 0 {
		t.Error("no events expected on 2025-06-02")
	}

	second := aggregates[1]
	if second.Temperature != nil || second.WeatherCondition != nil {
		t.Error("expected nil weather fields when no weather row matches")
	}
	if !second.HasEvent || len(second.Events) != 1 {
		t.Fatalf("expected one event on 2025-06-03, got %d", len(second.Events))
	}
	if second.Events[0].Title != "Street market" {
		t.Errorf("unexpected event title %q", second.Events[0].Title)
	}
}

func TestBuildDailyAggregatesDropsSaleslessDates(t *testing.T) {
	weather := []models.WeatherRecord{{Date: day(t, "2025-06-02"), Condition: "Rain"}}
	events := []models.EventRecord{{Date: day(t, "2025-06-02"), Title: "Concert"}}

	aggregates := BuildDailyAggregates(nil, weather, events)
	if len(aggregates) != 0 {
		t.Fatalf("dates without sales must not be synthesized, got %d aggregates", len(aggregates))
	}
}

func TestBuildDailyAggregatesEmptyInput(t *testing.T) {
	aggregates := BuildDailyAggregates(nil, nil, nil)
	if len(aggregates) != 0 {
		t.Fatalf("expected empty result, got %d", len(aggregates))
	}
}
