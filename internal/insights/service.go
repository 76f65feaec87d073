package insights

import (
	"context"
	"fmt"

	"github.com/storepulse/storepulse-backend/internal/insights/types"
	"github.com/storepulse/storepulse-backend/pkg/clock"
	"github.com/storepulse/storepulse-backend/pkg/db/models"
	pkgerrors "github.com/storepulse/storepulse-backend/pkg/errors"
	"github.com/storepulse/storepulse-backend/pkg/logger"
	"golang.org/x/sync/errgroup"
)

// Gateway supplies the filtered row sets the analysis runs over. Implementations must
// fail loudly on connectivity errors; the engine never retries and never accepts
// partial data.
type Gateway interface {
	FetchSales(ctx context.Context, filter types.RecordFilter) ([]models.SalesRecord, error)
	FetchWeather(ctx context.Context, filter types.RecordFilter) ([]models.WeatherRecord, error)
	FetchEvents(ctx context.Context, filter types.RecordFilter) ([]models.EventRecord, error)
}

// Service runs correlation analysis over a date window.
type Service interface {
	// Analyze joins the primary row sets, computes all factor correlations, the
	// weekday × weather heatmap, the day/year-over-year comparison series, and the
	// reduced summary. Any primary fetch failure aborts the whole analysis.
	Analyze(ctx context.Context, req types.AnalysisRequest) (*types.AnalysisResponse, error)
}

type service struct {
	gateway Gateway
	logg    *logger.Logger
	clock   clock.Clock
}

// NewService builds the analysis service around an injected gateway.
func NewService(gateway Gateway, logg *logger.Logger, clk clock.Clock) (Service, error) {
	if gateway == nil {
		return nil, fmt.Errorf("gateway required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	if clk == nil {
		clk = clock.System()
	}
	return &service{gateway: gateway, logg: logg, clock: clk}, nil
}

func (s *service) Analyze(ctx context.Context, req types.AnalysisRequest) (*types.AnalysisResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	started := s.clock.Now()
	filter := req.Filter()

	// The three primary reads are independent; fetch them in parallel and join
	// before aggregation.
	var (
		sales   []models.SalesRecord
		weather []models.WeatherRecord
		events  []models.EventRecord
	)
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		rows, err := s.gateway.FetchSales(groupCtx, filter)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "failed to fetch sales data")
		}
		sales = rows
		return nil
	})
	group.Go(func() error {
		rows, err := s.gateway.FetchWeather(groupCtx, filter)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "failed to fetch weather data")
		}
		weather = rows
		return nil
	})
	group.Go(func() error {
		rows, err := s.gateway.FetchEvents(groupCtx, filter)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "failed to fetch events data")
		}
		events = rows
		return nil
	})
	if err := group.Wait(); err != nil {
		return nil, err
	}

	aggregates := BuildDailyAggregates(sales, weather, events)

	// The previous-year fetch only feeds the comparison series, so it overlaps with
	// the correlation and heatmap computation.
	type secondaryResult struct {
		aggregates []types.DailyAggregate
		err        error
	}
	secondaryCh := make(chan secondaryResult, 1)
	go func() {
		rows, err := s.gateway.FetchSales(ctx, filter.ShiftYears(-1))
		if err != nil {
			secondaryCh <- secondaryResult{err: err}
			return
		}
		secondaryCh <- secondaryResult{aggregates: BuildDailyAggregates(rows, nil, nil)}
	}()

	correlations := ComputeCorrelations(aggregates)
	heatmap := BuildHeatmap(aggregates)

	secondary := <-secondaryCh
	if secondary.err != nil {
		// Degraded, not fatal: the comparison series falls back to zero for the
		// previous-year column.
		warnCtx := s.logg.WithField(ctx, "error", secondary.err.Error())
		s.logg.Warn(warnCtx, "previous-year comparison fetch failed, defaulting to zero")
		secondary.aggregates = nil
	}

	comparisons := BuildComparisonSeries(aggregates, secondary.aggregates)
	summary := Reduce(correlations, aggregates)

	doneCtx := s.logg.WithFields(ctx, map[string]any{
		"analyzed_days": summary.TotalAnalyzedDays,
		"factors":       len(correlations),
		"duration_ms":   s.clock.Now().Sub(started).Milliseconds(),
	})
	s.logg.Info(doneCtx, "correlation analysis complete")

	return &types.AnalysisResponse{
		Correlations:   correlations,
		HeatmapData:    heatmap,
		ComparisonData: comparisons,
		Summary:        summary,
	}, nil
}

func validateRequest(req types.AnalysisRequest) error {
	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return pkgerrors.New(pkgerrors.CodeValidation, "start and end dates are required")
	}
	if req.EndDate.Before(req.StartDate) {
		return pkgerrors.New(pkgerrors.CodeValidation, "end date must not precede start date")
	}
	return nil
}
