package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// StockStatus describes the availability of a product in the catalog.
type StockStatus string

const (
	StockInStock  StockStatus = "IN_STOCK"
	StockLowStock StockStatus = "LOW_STOCK"
	StockSoldOut  StockStatus = "SOLD_OUT"
)

// Product represents a sellable item in the catalog.
// Only an operator may mutate products; order creation reads them to
// snapshot name/price at order time.
type Product struct {
	ID               string          `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name             string          `json:"name" validate:"required,min=2,max=100"`
	Description      string          `json:"description" validate:"omitempty,max=500"`
	Price            decimal.Decimal `json:"price" gorm:"type:decimal(12,2)"`
	Category         string          `json:"category" validate:"omitempty,max=100"`
	ImageURL         string          `json:"image_url" validate:"omitempty,url"`
	IsNew            bool            `json:"is_new"`
	IsMondaySpecial  bool            `json:"is_monday_special"`
	IsRamadanSpecial bool            `json:"is_ramadan_special"`
	StockStatus      StockStatus     `json:"stock_status" gorm:"type:varchar(20);default:IN_STOCK" validate:"omitempty,oneof=IN_STOCK LOW_STOCK SOLD_OUT"`
	gorm.Model       // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
