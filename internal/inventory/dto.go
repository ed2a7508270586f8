package inventory

import (
	"strings"
	"time"

	"github.com/usahaku/erp-dashboard/internal"
	"github.com/usahaku/erp-dashboard/internal/resource"
	"github.com/usahaku/erp-dashboard/pkg/types"
)

// ItemDTO is the form draft for creating or replacing an inventory item.
type ItemDTO struct {
	SKU      string        `json:"sku"`
	Name     string        `json:"name"`
	Quantity types.FlexInt `json:"quantity"`
	Unit     string        `json:"unit"`
	MinStock types.FlexInt `json:"min_stock"`
	Location string        `json:"location"`
}

func (dto ItemDTO) Validate() error {
	if strings.TrimSpace(dto.Name) == "" {
		return internal.NewValidationFieldError("name", "item name is required", internal.ErrCodeRequiredField)
	}
	if strings.TrimSpace(dto.Location) == "" {
		return internal.NewValidationFieldError("location", "location is required", internal.ErrCodeRequiredField)
	}
	if dto.Quantity < 0 {
		return internal.NewValidationFieldError("quantity", "quantity cannot be negative", internal.ErrCodeInvalidNumber)
	}
	if dto.MinStock < 0 {
		return internal.NewValidationFieldError("min_stock", "minimum stock cannot be negative", internal.ErrCodeInvalidNumber)
	}
	return nil
}

func (dto ItemDTO) toItem(now time.Time) *Item {
	unit := dto.Unit
	if unit == "" {
		unit = DefaultUnit
	}
	return &Item{
		SKU:      resource.DefaultReference(dto.SKU, ReferencePrefix, now),
		Name:     dto.Name,
		Quantity: dto.Quantity.Int(),
		Unit:     unit,
		MinStock: dto.MinStock.Int(),
		Location: dto.Location,
	}
}

func draftFrom(item *Item) ItemDTO {
	return ItemDTO{
		SKU:      item.SKU,
		Name:     item.Name,
		Quantity: types.FlexInt(item.Quantity),
		Unit:     item.Unit,
		MinStock: types.FlexInt(item.MinStock),
		Location: item.Location,
	}
}

// ItemResponse decorates a record with its derived stock flag.
type ItemResponse struct {
	Item
	StockStatus StockStatus `json:"stock_status"`
	StockLabel  string      `json:"stock_label"`
}

func toResponse(item *Item) ItemResponse {
	state := item.StockState()
	return ItemResponse{
		Item:        *item,
		StockStatus: state,
		StockLabel:  StockStatusLabels[state],
	}
}

type ItemsResponse struct {
	Items []ItemResponse `json:"items"`
}
