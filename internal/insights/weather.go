package insights

import "strings"

// Weather buckets used by the heatmap and the rain/sun correlation factors.
const (
	BucketSunny  = "sunny"
	BucketCloudy = "cloudy"
	BucketRainy  = "rainy"
	BucketOther  = "other"
)

// ClassifyCondition maps free-text weather condition strings ("Light rain",
// "Partly sunny", ...) onto one of the four buckets via substring matching.
// The token set is part of the observable contract with historical dashboards
// and must not change. Rain wins over sun when both tokens appear.
func ClassifyCondition(condition string) string {
	text := strings.ToLower(strings.TrimSpace(condition))
	switch {
	case text == "":
		return BucketOther
	case strings.Contains(text, "rain"), strings.Contains(text, "shower"), strings.Contains(text, "drizzle"):
		return BucketRainy
	case strings.Contains(text, "sun"), strings.Contains(text, "clear"):
		return BucketSunny
	case strings.Contains(text, "cloud"), strings.Contains(text, "overcast"):
		return BucketCloudy
	default:
		return BucketOther
	}
}

// IsRainyCondition reports whether the condition text classifies as rainy.
func IsRainyCondition(condition string) bool {
	return ClassifyCondition(condition) == BucketRainy
}

// IsSunnyCondition reports whether the condition text classifies as sunny.
func IsSunnyCondition(condition string) bool {
	return ClassifyCondition(condition) == BucketSunny
}
