package inventory

import (
	"time"
)

// Item is a stock-keeping unit tracked in a warehouse location.
type Item struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	SKU       string    `json:"sku" gorm:"column:sku;not null"`
	Name      string    `json:"name" gorm:"not null"`
	Quantity  int       `json:"quantity" gorm:"not null"`
	Unit      string    `json:"unit"`
	MinStock  int       `json:"min_stock" gorm:"column:min_stock;not null"`
	Location  string    `json:"location"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
}

func (Item) TableName() string {
	return "inventory_items"
}

const (
	ReferencePrefix = "SKU"
	OrderColumn     = "created_at"
	DefaultUnit     = "pcs"
)

// Units the stock form offers.
var Units = []string{"pcs", "kg", "ltr", "box", "pallet"}

// IsLowStock reports whether quantity is at or below the minimum threshold.
// Equal counts as low stock. Computed at display time, never persisted.
func (i *Item) IsLowStock() bool {
	return i.Quantity <= i.MinStock
}

type StockStatus string

const (
	StockStatusIn  StockStatus = "in_stock"
	StockStatusLow StockStatus = "low_stock"
)

var StockStatusLabels = map[StockStatus]string{
	StockStatusIn:  "In Stock",
	StockStatusLow: "Low Stock",
}

func (i *Item) StockState() StockStatus {
	if i.IsLowStock() {
		return StockStatusLow
	}
	return StockStatusIn
}
