package records

import (
	"context"

	"github.com/google/uuid"
	"github.com/storepulse/storepulse-backend/internal/insights/types"
	"github.com/storepulse/storepulse-backend/pkg/db/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository is the data access gateway for imported sales, weather, and event rows.
// Fetch methods return rows ordered ascending by date; filters with zero-valued
// optional fields match everything.
type Repository interface {
	FetchSales(ctx context.Context, filter types.RecordFilter) ([]models.SalesRecord, error)
	FetchWeather(ctx context.Context, filter types.RecordFilter) ([]models.WeatherRecord, error)
	FetchEvents(ctx context.Context, filter types.RecordFilter) ([]models.EventRecord, error)

	UpsertSales(ctx context.Context, rows []models.SalesRecord) error
	UpsertWeather(ctx context.Context, rows []models.WeatherRecord) error
	InsertEvents(ctx context.Context, rows []models.EventRecord) error

	WithTx(tx *gorm.DB) Repository
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds a records repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) FetchSales(ctx context.Context, filter types.RecordFilter) ([]models.SalesRecord, error) {
	var rows []models.SalesRecord
	query := r.scoped(ctx, filter)
	if filter.Department != "" {
		query = query.Where("department = ?", filter.Department)
	}
	if filter.Category != "" {
		query = query.Where("product_category = ?", filter.Category)
	}
	if err := query.Order("date ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) FetchWeather(ctx context.Context, filter types.RecordFilter) ([]models.WeatherRecord, error) {
	var rows []models.WeatherRecord
	err := r.db.WithContext(ctx).
		Where("date >= ? AND date <= ?", filter.Start, filter.End).
		Order("date ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) FetchEvents(ctx context.Context, filter types.RecordFilter) ([]models.EventRecord, error) {
	var rows []models.EventRecord
	err := r.db.WithContext(ctx).
		Where("date >= ? AND date <= ?", filter.Start, filter.End).
		Order("date ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// scoped applies the date window plus the store filter shared by sales fetches.
func (r *repository) scoped(ctx context.Context, filter types.RecordFilter) *gorm.DB {
	query := r.db.WithContext(ctx).
		Model(&models.SalesRecord{}).
		Where("date >= ? AND date <= ?", filter.Start, filter.End)
	if filter.StoreID != "" {
		query = query.Where("store_id = ?", filter.StoreID)
	}
	return query
}

func (r *repository) UpsertSales(ctx context.Context, rows []models.SalesRecord) error {
	if len(rows) == 0 {
		return nil
	}
	for i := range rows {
		if rows[i].ID == uuid.Nil {
			rows[i].ID = uuid.New()
		}
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "date"}, {Name: "store_id"}, {Name: "department"}, {Name: "product_category"},
			},
			DoUpdates: clause.AssignmentColumns([]string{
				"revenue_ex_tax", "footfall", "transactions", "discounts", "tax", "updated_at",
			}),
		}).
		Create(&rows).Error
}

func (r *repository) UpsertWeather(ctx context.Context, rows []models.WeatherRecord) error {
	if len(rows) == 0 {
		return nil
	}
	for i := range rows {
		if rows[i].ID == uuid.Nil {
			rows[i].ID = uuid.New()
		}
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"location", "temp_avg", "temp_max", "temp_min", "humidity", "precipitation", "condition", "updated_at",
			}),
		}).
		Create(&rows).Error
}

func (r *repository) InsertEvents(ctx context.Context, rows []models.EventRecord) error {
	if len(rows) == 0 {
		return nil
	}
	for i := range rows {
		if rows[i].ID == uuid.Nil {
			rows[i].ID = uuid.New()
		}
	}
	return r.db.WithContext(ctx).Create(&rows).Error
}
