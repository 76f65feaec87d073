package insights

import (
	"net/http"
	"strings"
	"time"

	"github.com/storepulse/storepulse-backend/internal/insights/types"
	"github.com/storepulse/storepulse-backend/pkg/config"
	pkgerrors "github.com/storepulse/storepulse-backend/pkg/errors"
)

const dateLayout = "2006-01-02"

// resolveAnalysisRequest builds the analysis scope from query parameters. Explicit
// from/to dates win over presets; both bounds are inclusive calendar days.
func resolveAnalysisRequest(r *http.Request, now time.Time, cfg config.AnalysisConfig) (types.AnalysisRequest, error) {
	query := r.URL.Query()
	from := strings.TrimSpace(query.Get("from"))
	to := strings.TrimSpace(query.Get("to"))

	var start, end time.Time
	switch {
	case from != "" || to != "":
		if from == "" || to == "" {
			return types.AnalysisRequest{}, pkgerrors.New(pkgerrors.CodeValidation, "from and to must be provided together")
		}
		parsedFrom, err := time.Parse(dateLayout, from)
		if err != nil {
			return types.AnalysisRequest{}, pkgerrors.New(pkgerrors.CodeValidation, "invalid from date")
		}
		parsedTo, err := time.Parse(dateLayout, to)
		if err != nil {
			return types.AnalysisRequest{}, pkgerrors.New(pkgerrors.CodeValidation, "invalid to date")
		}
		start, end = parsedFrom, parsedTo
	default:
		preset := strings.TrimSpace(query.Get("preset"))
		if preset == "" {
			preset = cfg.DefaultPreset
		}
		days, ok := presetDays(preset)
		if !ok {
			return types.AnalysisRequest{}, pkgerrors.New(pkgerrors.CodeValidation, "invalid preset")
		}
		end = now.Truncate(24 * time.Hour)
		start = end.AddDate(0, 0, -(days - 1))
	}

	if end.Before(start) {
		return types.AnalysisRequest{}, pkgerrors.New(pkgerrors.CodeValidation, "end date must not precede start date")
	}
	if cfg.MaxWindowDays > 0 {
		windowDays := int(end.Sub(start).Hours()/24) + 1
		if windowDays > cfg.MaxWindowDays {
			return types.AnalysisRequest{}, pkgerrors.New(pkgerrors.CodeValidation, "analysis window too large")
		}
	}

	return types.AnalysisRequest{
		StartDate:  start,
		EndDate:    end,
		StoreID:    strings.TrimSpace(query.Get("store_id")),
		Department: strings.TrimSpace(query.Get("department")),
		Category:   strings.TrimSpace(query.Get("category")),
	}, nil
}

func presetDays(value string) (int, bool) {
	switch strings.ToLower(value) {
	case "7d":
		return 7, true
	case "30d":
		return 30, true
	case "90d":
		return 90, true
	case "365d":
		return 365, true
	default:
		return 0, false
	}
}

// cacheKeyParts flattens a request into the ordered key segments for the cache.
func cacheKeyParts(req types.AnalysisRequest) []string {
	return []string{
		req.StartDate.Format(dateLayout),
		req.EndDate.Format(dateLayout),
		req.StoreID,
		req.Department,
		req.Category,
	}
}
