package insights

import (
	"math"
	"strings"
	"testing"

	"github.com/storepulse/storepulse-backend/internal/insights/types"
)

func TestBuildHeatmapSparseGrid(t *testing.T) {
	sunny := "Sunny"
	rainy := "Light Rain"

	// Two sunny Mondays and one rainy Tuesday, overall mean 100.
	aggregates := []types.DailyAggregate{
		makeAggregate(t, "2025-06-02", 110),
		makeAggregate(t, "2025-06-09", 130),
		makeAggregate(t, "2025-06-03", 60),
	}
	aggregates[0].WeatherCondition = &sunny
	aggregates[1].WeatherCondition = &sunny
	aggregates[2].WeatherCondition = &rainy

	cells := BuildHeatmap(aggregates)
	if len(cells) != 2 {
		t.Fatalf("expected 2 populated cells, got %d", len(cells))
	}

	mondaySunny := cells[0]
	if mondaySunny.X != "Monday" || mondaySunny.Y != BucketSunny {
		t.Fatalf("unexpected first cell %s/%s", mondaySunny.X, mondaySunny.Y)
	}
	if math.Abs(mondaySunny.Value-1.2) > 1e-9 {
		t.Errorf("expected Monday/sunny ratio 1.2, got %v", mondaySunny.Value)
	}
	if !strings.Contains(mondaySunny.Tooltip, "2 day(s)") {
		t.Errorf("tooltip should report the day count, got %q", mondaySunny.Tooltip)
	}

	tuesdayRainy := cells[1]
	if tuesdayRainy.X != "Tuesday" || tuesdayRainy.Y != BucketRainy {
		t.Fatalf("unexpected second cell %s/%s", tuesdayRainy.X, tuesdayRainy.Y)
	}
	if math.Abs(tuesdayRainy.Value-0.6) > 1e-9 {
		t.Errorf("expected Tuesday/rainy ratio 0.6, got %v", tuesdayRainy.Value)
	}
}

func TestBuildHeatmapMissingWeatherFallsToOther(t *testing.T) {
	aggregates := []types.DailyAggregate{makeAggregate(t, "2025-06-02", 100)}

	cells := BuildHeatmap(aggregates)
	if len(cells) != 1 {
		t.Fatalf("expected 1 cell, got %d", len(cells))
	}
	if cells[0].Y != BucketOther {
		t.Errorf("nil weather condition should land in %q, got %q", BucketOther, cells[0].Y)
	}
}

func TestBuildHeatmapZeroMean(t *testing.T) {
	aggregates := []types.DailyAggregate{
		makeAggregate(t, "2025-06-02", 0),
		makeAggregate(t, "2025-06-03", 0),
	}

	for _, cell := range BuildHeatmap(aggregates) {
		if cell.Value != 0 {
			t.Errorf("zero overall mean must produce value 0, got %v", cell.Value)
		}
	}
}

func TestBuildHeatmapEmptyInput(t *testing.T) {
	cells := BuildHeatmap(nil)
	if cells == nil || len(cells) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", cells)
	}
}
