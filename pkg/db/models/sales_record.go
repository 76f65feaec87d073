package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SalesRecord is one imported daily sales row. Rows are immutable once ingested;
// re-ingesting the same (date, store, department, category) tuple replaces the row.
type SalesRecord struct {
	ID              uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Date            time.Time       `gorm:"column:date;type:date;not null;index:idx_sales_scope,unique,priority:1" json:"date"`
	StoreID         string          `gorm:"column:store_id;not null;index:idx_sales_scope,unique,priority:2" json:"store_id"`
	Department      string          `gorm:"column:department;not null;default:'';index:idx_sales_scope,unique,priority:3" json:"department"`
	ProductCategory string          `gorm:"column:product_category;not null;default:'';index:idx_sales_scope,unique,priority:4" json:"product_category"`
	RevenueExTax    decimal.Decimal `gorm:"column:revenue_ex_tax;type:numeric(14,2);not null" json:"revenue_ex_tax"`
	Footfall        int             `gorm:"column:footfall;not null;default:0" json:"footfall"`
	Transactions    int             `gorm:"column:transactions;not null;default:0" json:"transactions"`
	Discounts       decimal.Decimal `gorm:"column:discounts;type:numeric(14,2);not null;default:0" json:"discounts"`
	Tax             decimal.Decimal `gorm:"column:tax;type:numeric(14,2);not null;default:0" json:"tax"`
	CreatedAt       time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (SalesRecord) TableName() string { return "sales_records" }
