package ingest

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/storepulse/storepulse-backend/pkg/db/models"
	pkgerrors "github.com/storepulse/storepulse-backend/pkg/errors"
	"github.com/storepulse/storepulse-backend/pkg/logger"
	"go.uber.org/multierr"
)

type recordsRepository interface {
	UpsertSales(ctx context.Context, rows []models.SalesRecord) error
	UpsertWeather(ctx context.Context, rows []models.WeatherRecord) error
	InsertEvents(ctx context.Context, rows []models.EventRecord) error
}

// Service persists importer batches. A batch is all-or-nothing: any invalid row
// rejects the whole batch with per-row validation details.
type Service interface {
	IngestSales(ctx context.Context, rows []SalesRowInput) (*Result, error)
	IngestWeather(ctx context.Context, rows []WeatherRowInput) (*Result, error)
	IngestEvents(ctx context.Context, rows []EventRowInput) (*Result, error)
}

type service struct {
	repo     recordsRepository
	validate *validator.Validate
	logg     *logger.Logger
	batchMax int
}

// NewService builds an ingest service around the records repository.
func NewService(repo recordsRepository, logg *logger.Logger, batchMax int) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("records repository required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	if batchMax <= 0 {
		batchMax = 1000
	}
	return &service{
		repo:     repo,
		validate: validator.New(),
		logg:     logg,
		batchMax: batchMax,
	}, nil
}

func (s *service) IngestSales(ctx context.Context, rows []SalesRowInput) (*Result, error) {
	if err := s.checkBatchSize(len(rows)); err != nil {
		return nil, err
	}

	var invalid error
	converted := make([]models.SalesRecord, 0, len(rows))
	for i, row := range rows {
		if err := s.validate.Struct(row); err != nil {
			invalid = multierr.Append(invalid, fmt.Errorf("row %d: %w", i, err))
			continue
		}
		record, err := row.toModel()
		if err != nil {
			invalid = multierr.Append(invalid, fmt.Errorf("row %d: %w", i, err))
			continue
		}
		converted = append(converted, record)
	}
	if invalid != nil {
		return nil, rejectBatch(invalid)
	}

	if err := s.repo.UpsertSales(ctx, converted); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist sales batch")
	}
	s.logg.Info(s.logg.WithField(ctx, "rows", len(converted)), "sales batch ingested")
	return &Result{Accepted: len(converted)}, nil
}

func (s *service) IngestWeather(ctx context.Context, rows []WeatherRowInput) (*Result, error) {
	if err := s.checkBatchSize(len(rows)); err != nil {
		return nil, err
	}

	var invalid error
	converted := make([]models.WeatherRecord, 0, len(rows))
	for i, row := range rows {
		if err := s.validate.Struct(row); err != nil {
			invalid = multierr.Append(invalid, fmt.Errorf("row %d: %w", i, err))
			continue
		}
		record, err := row.toModel()
		if err != nil {
			invalid = multierr.Append(invalid, fmt.Errorf("row %d: %w", i, err))
			continue
		}
		converted = append(converted, record)
	}
	if invalid != nil {
		return nil, rejectBatch(invalid)
	}

	if err := s.repo.UpsertWeather(ctx, converted); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist weather batch")
	}
	s.logg.Info(s.logg.WithField(ctx, "rows", len(converted)), "weather batch ingested")
	return &Result{Accepted: len(converted)}, nil
}

func (s *service) IngestEvents(ctx context.Context, rows []EventRowInput) (*Result, error) {
	if err := s.checkBatchSize(len(rows)); err != nil {
		return nil, err
	}

	var invalid error
	converted := make([]models.EventRecord, 0, len(rows))
	for i, row := range rows {
		if err := s.validate.Struct(row); err != nil {
			invalid = multierr.Append(invalid, fmt.Errorf("row %d: %w", i, err))
			continue
		}
		record, err := row.toModel()
		if err != nil {
			invalid = multierr.Append(invalid, fmt.Errorf("row %d: %w", i, err))
			continue
		}
		converted = append(converted, record)
	}
	if invalid != nil {
		return nil, rejectBatch(invalid)
	}

	if err := s.repo.InsertEvents(ctx, converted); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist events batch")
	}
	s.logg.Info(s.logg.WithField(ctx, "rows", len(converted)), "events batch ingested")
	return &Result{Accepted: len(converted)}, nil
}

func (s *service) checkBatchSize(size int) error {
	if size == 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "batch is empty")
	}
	if size > s.batchMax {
		return pkgerrors.New(pkgerrors.CodeValidation,
			fmt.Sprintf("batch exceeds the %d row limit", s.batchMax))
	}
	return nil
}

func rejectBatch(invalid error) error {
	details := make([]string, 0)
	for _, err := range multierr.Errors(invalid) {
		details = append(details, err.Error())
	}
	return pkgerrors.New(pkgerrors.CodeValidation, "batch contains invalid rows").
		WithDetails(details)
}
