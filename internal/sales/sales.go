package sales

import (
	"time"

	"github.com/usahaku/erp-dashboard/pkg/types"
)

// Order is a customer sales order moving through fulfilment.
type Order struct {
	ID           int64      `json:"id" gorm:"primaryKey"`
	Reference    string     `json:"reference" gorm:"not null"`
	CustomerName string     `json:"customer_name" gorm:"column:customer_name;not null"`
	TotalAmount  float64    `json:"total_amount" gorm:"column:total_amount;not null"`
	Status       Status     `json:"status" gorm:"default:pending"`
	Date         types.Date `json:"date" gorm:"type:date"`
	CreatedAt    time.Time  `json:"created_at" gorm:"column:created_at;autoCreateTime"`
}

func (Order) TableName() string {
	return "sales_orders"
}

const (
	ReferencePrefix = "SO"
	OrderColumn     = "date"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusShipped   Status = "shipped"
	StatusDelivered Status = "delivered"
)

var StatusLabels = map[Status]string{
	StatusPending:   "Pending",
	StatusConfirmed: "Confirmed",
	StatusShipped:   "Shipped",
	StatusDelivered: "Delivered",
}

func (s Status) Valid() bool {
	_, ok := StatusLabels[s]
	return ok
}

func (s Status) Label() string {
	return StatusLabels[s]
}
