package insights

import (
	"fmt"

	"github.com/storepulse/storepulse-backend/internal/insights/types"
)

var heatmapBuckets = [4]string{BucketSunny, BucketCloudy, BucketRainy, BucketOther}

// BuildHeatmap buckets the aggregates into a weekday × weather grid of normalized
// average-sales ratios (1.0 = overall mean). Cells with no matching days are skipped,
// so the grid is sparse rather than zero-padded.
func BuildHeatmap(aggregates []types.DailyAggregate) []types.HeatmapCell {
	if len(aggregates) == 0 {
		return []types.HeatmapCell{}
	}

	overallMean := meanSales(aggregates)

	type cellAccumulator struct {
		sum   float64
		count int
	}
	cells := make(map[[2]int]*cellAccumulator)
	for _, agg := range aggregates {
		if agg.DayOfWeek < 0 || agg.DayOfWeek > 6 {
			continue
		}
		bucket := bucketIndex(agg)
		key := [2]int{agg.DayOfWeek, bucket}
		acc, ok := cells[key]
		if !ok {
			acc = &cellAccumulator{}
			cells[key] = acc
		}
		acc.sum += agg.TotalSales
		acc.count++
	}

	result := make([]types.HeatmapCell, 0, len(cells))
	for dow := 0; dow < 7; dow++ {
		for bucket := range heatmapBuckets {
			acc, ok := cells[[2]int{dow, bucket}]
			if !ok {
				continue
			}
			cellMean := acc.sum / float64(acc.count)
			value := 0.0
			if overallMean != 0 {
				value = cellMean / overallMean
			}
			result = append(result, types.HeatmapCell{
				X:     weekdayLabels[dow],
				Y:     heatmapBuckets[bucket],
				Value: value,
				Tooltip: fmt.Sprintf("%s / %s: average sales %.0f over %d day(s)",
					weekdayLabels[dow], heatmapBuckets[bucket], cellMean, acc.count),
			})
		}
	}
	return result
}

// bucketIndex places an aggregate in the heatmap's weather dimension. Missing weather
// data falls into "other", same as unrecognized condition text.
func bucketIndex(agg types.DailyAggregate) int {
	if agg.WeatherCondition == nil {
		return 3
	}
	switch ClassifyCondition(*agg.WeatherCondition) {
	case BucketSunny:
		return 0
	case BucketCloudy:
		return 1
	case BucketRainy:
		return 2
	default:
		return 3
	}
}
