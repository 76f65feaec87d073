package insights

import (
	"fmt"
	"math"

	"github.com/storepulse/storepulse-backend/internal/insights/types"
)

// Minimum number of aggregates before any correlation is attempted, and the minimum
// sample per continuous weather variable.
const minSampleSize = 3

var weekdayLabels = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// ComputeCorrelations derives all factor scores from the daily aggregates. Fewer than
// three aggregates short-circuits to an empty result set; individual factors with too
// few samples are omitted (event lift degrades to a placeholder instead). Every
// returned correlation is finite and within [-1, 1].
func ComputeCorrelations(aggregates []types.DailyAggregate) []types.CorrelationResult {
	if len(aggregates) < minSampleSize {
		return []types.CorrelationResult{}
	}

	overallMean := meanSales(aggregates)

	results := make([]types.CorrelationResult, 0, 12)
	results = append(results, dayOfWeekEffects(aggregates, overallMean)...)
	results = append(results, continuousCorrelations(aggregates)...)
	if rain, ok := rainMeanShift(aggregates, overallMean); ok {
		results = append(results, rain)
	}
	results = append(results, eventLift(aggregates, overallMean))

	// Malformed upstream numbers are the only way NaN can reach this point.
	filtered := results[:0]
	for _, r := range results {
		if math.IsNaN(r.Correlation) {
			continue
		}
		filtered = append(filtered, r)
	}
	return filtered
}

// dayOfWeekEffects scores each weekday's mean sales as a deviation ratio from the
// overall mean. The significance values are fixed heuristics, not test statistics.
func dayOfWeekEffects(aggregates []types.DailyAggregate, overallMean float64) []types.CorrelationResult {
	var sums [7]float64
	var counts [7]int
	for _, agg := range aggregates {
		if agg.DayOfWeek < 0 || agg.DayOfWeek > 6 {
			continue
		}
		sums[agg.DayOfWeek] += agg.TotalSales
		counts[agg.DayOfWeek]++
	}

	results := make([]types.CorrelationResult, 0, 7)
	for dow := 0; dow < 7; dow++ {
		if counts[dow] == 0 {
			continue
		}
		dayMean := sums[dow] / float64(counts[dow])
		score := clamp(dayMean/overallMean - 1)

		significance := 0.5
		if counts[dow] >= minSampleSize {
			significance = 0.95
		}

		results = append(results, types.CorrelationResult{
			Factor:       weekdayLabels[dow],
			Correlation:  score,
			Significance: significance,
			SampleSize:   counts[dow],
			Description:  fmt.Sprintf("%s sales average %+.1f%% versus the overall daily mean", weekdayLabels[dow], score*100),
		})
	}
	return results
}

// continuousCorrelations computes Pearson coefficients between daily sales and each
// continuous weather variable that has enough defined samples.
func continuousCorrelations(aggregates []types.DailyAggregate) []types.CorrelationResult {
	variables := []struct {
		factor string
		value  func(types.DailyAggregate) *float64
	}{
		{"temperature", func(a types.DailyAggregate) *float64 { return a.Temperature }},
		{"humidity", func(a types.DailyAggregate) *float64 { return a.Humidity }},
		{"precipitation", func(a types.DailyAggregate) *float64 { return a.Precipitation }},
	}

	results := make([]types.CorrelationResult, 0, len(variables))
	for _, variable := range variables {
		var xs, ys []float64
		for _, agg := range aggregates {
			if v := variable.value(agg); v != nil {
				xs = append(xs, *v)
				ys = append(ys, agg.TotalSales)
			}
		}
		if len(xs) < minSampleSize {
			continue
		}

		r := pearson(xs, ys)

		significance := 0.8
		if len(xs) >= 10 {
			significance = 0.95
		}

		results = append(results, types.CorrelationResult{
			Factor:       variable.factor,
			Correlation:  clamp(r),
			Significance: significance,
			SampleSize:   len(xs),
			Description:  fmt.Sprintf("Pearson correlation between daily sales and %s across %d days", variable.factor, len(xs)),
		})
	}
	return results
}

// pearson computes the product-moment coefficient using population sums. A zero
// denominator (no variance in either series) yields 0 rather than NaN.
func pearson(xs, ys []float64) float64 {
	n := float64(len(xs))
	var sumX, sumY, sumXY, sumX2, sumY2 float64
	for i := range xs {
		sumX += xs[i]
		sumY += ys[i]
		sumXY += xs[i] * ys[i]
		sumX2 += xs[i] * xs[i]
		sumY2 += ys[i] * ys[i]
	}

	denominator := math.Sqrt((n*sumX2 - sumX*sumX) * (n*sumY2 - sumY*sumY))
	if denominator == 0 {
		return 0
	}
	return (n*sumXY - sumX*sumY) / denominator
}

// rainMeanShift reports how rainy-day sales deviate from the overall mean. The factor
// is only emitted when both a rainy and a sunny subset exist, so the shift has a
// contrast to be read against.
func rainMeanShift(aggregates []types.DailyAggregate, overallMean float64) (types.CorrelationResult, bool) {
	var rainy, sunny []types.DailyAggregate
	for _, agg := range aggregates {
		switch {
		case agg.IsRainy:
			rainy = append(rainy, agg)
		case agg.IsSunny:
			sunny = append(sunny, agg)
		}
	}
	if len(rainy) == 0 || len(sunny) == 0 {
		return types.CorrelationResult{}, false
	}

	rainyMean := meanSales(rainy)
	score := clamp((rainyMean - overallMean) / overallMean)

	significance := 0.7
	if min(len(rainy), len(sunny)) >= 5 {
		significance = 0.9
	}

	return types.CorrelationResult{
		Factor:       "rain",
		Correlation:  score,
		Significance: significance,
		SampleSize:   len(rainy),
		Description:  fmt.Sprintf("Rainy-day sales shift %+.1f%% versus the overall daily mean (%d rainy days)", score*100, len(rainy)),
	}, true
}

// eventLift compares event-day sales against event-free days. An empty partition on
// either side produces a zero-significance placeholder instead of omitting the factor.
func eventLift(aggregates []types.DailyAggregate, overallMean float64) types.CorrelationResult {
	var eventDays, quietDays []types.DailyAggregate
	for _, agg := range aggregates {
		if agg.HasEvent {
			eventDays = append(eventDays, agg)
		} else {
			quietDays = append(quietDays, agg)
		}
	}

	if len(eventDays) == 0 || len(quietDays) == 0 {
		return types.CorrelationResult{
			Factor:       "event",
			Correlation:  0,
			Significance: 0,
			SampleSize:   len(eventDays),
			Description:  "Not enough event data to estimate event lift",
		}
	}

	eventMean := meanSales(eventDays)
	quietMean := meanSales(quietDays)
	score := clamp((eventMean - quietMean) / overallMean)

	significance := 0.7
	if min(len(eventDays), len(quietDays)) >= 5 {
		significance = 0.9
	}

	return types.CorrelationResult{
		Factor:       "event",
		Correlation:  score,
		Significance: significance,
		SampleSize:   len(eventDays),
		Description:  fmt.Sprintf("Event-day sales lift %+.1f%% versus event-free days (%d event days)", score*100, len(eventDays)),
	}
}

func meanSales(aggregates []types.DailyAggregate) float64 {
	if len(aggregates) == 0 {
		return 0
	}
	var total float64
	for _, agg := range aggregates {
		total += agg.TotalSales
	}
	return total / float64(len(aggregates))
}

// clamp bounds ratio-based scores to [-1, 1]; infinities from zero-mean divisions
// collapse to the nearest bound.
func clamp(value float64) float64 {
	if value > 1 {
		return 1
	}
	if value < -1 {
		return -1
	}
	return value
}
