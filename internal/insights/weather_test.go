package insights

import "testing"

func TestClassifyCondition(t *testing.T) {
	cases := []struct {
		condition string
		want      string
	}{
		{"Light Rain", BucketRainy},
		{"rain showers", BucketRainy},
		{"Drizzle", BucketRainy},
		{"Sunny", BucketSunny},
		{"Clear", BucketSunny},
		{"Partly Cloudy", BucketCloudy},
		{"Overcast", BucketCloudy},
		{"Fog", BucketOther},
		{"", BucketOther},
		// Rain takes precedence over sun when both words appear.
		{"Sunny with rain showers", BucketRainy},
	}

	for _, tc := range cases {
		if got := ClassifyCondition(tc.condition); got != tc.want {
			t.Errorf("ClassifyCondition(%q) = %q, want %q", tc.condition, got, tc.want)
		}
	}
}

func TestRainyAndSunnyPredicates(t *testing.T) {
	if !IsRainyCondition("Heavy Rain") {
		t.Error("expected Heavy Rain to be rainy")
	}
	if IsRainyCondition("Sunny") {
		t.Error("expected Sunny not to be rainy")
	}
	if !IsSunnyCondition("Clear sky") {
		t.Error("expected Clear sky to be sunny")
	}
	if IsSunnyCondition("Sunny with rain showers") {
		t.Error("rain should win over sun in mixed conditions")
	}
}
