package sales

import (
	"strings"
	"time"

	"github.com/usahaku/erp-dashboard/internal"
	"github.com/usahaku/erp-dashboard/internal/resource"
	"github.com/usahaku/erp-dashboard/pkg/types"
)

type OrderDTO struct {
	Reference    string          `json:"reference"`
	CustomerName string          `json:"customer_name"`
	TotalAmount  types.FlexFloat `json:"total_amount"`
	Status       Status          `json:"status"`
	Date         types.Date      `json:"date"`
}

func (dto OrderDTO) Validate() error {
	if strings.TrimSpace(dto.CustomerName) == "" {
		return internal.NewValidationFieldError("customer_name", "customer name is required", internal.ErrCodeRequiredField)
	}
	if dto.Status != "" && !dto.Status.Valid() {
		return internal.NewValidationFieldError("status", "unknown order status", internal.ErrCodeInvalidStatus)
	}
	if dto.TotalAmount < 0 {
		return internal.NewValidationFieldError("total_amount", "total amount cannot be negative", internal.ErrCodeInvalidNumber)
	}
	return nil
}

func (dto OrderDTO) toOrder(now time.Time) *Order {
	status := dto.Status
	if status == "" {
		status = StatusPending
	}
	date := dto.Date
	if date.IsZero() {
		date = types.DateOf(now)
	}
	return &Order{
		Reference:    resource.DefaultReference(dto.Reference, ReferencePrefix, now),
		CustomerName: dto.CustomerName,
		TotalAmount:  dto.TotalAmount.Float64(),
		Status:       status,
		Date:         date,
	}
}

func draftFrom(order *Order) OrderDTO {
	return OrderDTO{
		Reference:    order.Reference,
		CustomerName: order.CustomerName,
		TotalAmount:  types.FlexFloat(order.TotalAmount),
		Status:       order.Status,
		Date:         order.Date,
	}
}

type OrderResponse struct {
	Order
	StatusLabel string `json:"status_label"`
}

func toResponse(order *Order) OrderResponse {
	return OrderResponse{
		Order:       *order,
		StatusLabel: order.Status.Label(),
	}
}

type OrdersResponse struct {
	Orders []OrderResponse `json:"orders"`
}
