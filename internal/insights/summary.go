package insights

import "github.com/storepulse/storepulse-backend/internal/insights/types"

// Reduce scans the correlation results for the strongest associations of each sign
// and attaches the aggregate-level statistics. Either strongest field is nil when no
// result of that sign exists.
func Reduce(correlations []types.CorrelationResult, aggregates []types.DailyAggregate) types.AnalysisSummary {
	summary := types.AnalysisSummary{
		TotalAnalyzedDays: len(aggregates),
		AverageDailySales: meanSales(aggregates),
	}

	for i := range correlations {
		result := correlations[i]
		if result.Correlation > 0 {
			if summary.StrongestPositive == nil || result.Correlation > summary.StrongestPositive.Correlation {
				copied := result
				summary.StrongestPositive = &copied
			}
		}
		if result.Correlation < 0 {
			if summary.StrongestNegative == nil || result.Correlation < summary.StrongestNegative.Correlation {
				copied := result
				summary.StrongestNegative = &copied
			}
		}
	}
	return summary
}
