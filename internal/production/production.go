package production

import (
	"time"

	"github.com/usahaku/erp-dashboard/pkg/types"
)

// Record is one production order with its planned output quantity.
type Record struct {
	ID          int64      `json:"id" gorm:"primaryKey"`
	Reference   string     `json:"reference" gorm:"not null"`
	ProductName string     `json:"product_name" gorm:"column:product_name;not null"`
	Quantity    int        `json:"quantity" gorm:"not null"`
	Status      Status     `json:"status" gorm:"default:planned"`
	Date        types.Date `json:"date" gorm:"type:date"`
	CreatedAt   time.Time  `json:"created_at" gorm:"column:created_at;autoCreateTime"`
}

func (Record) TableName() string {
	return "production_records"
}

const (
	ReferencePrefix = "PRD"
	OrderColumn     = "created_at"
)

type Status string

const (
	StatusPlanned    Status = "planned"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// StatusLabels is exhaustive over the status set; adding a status without a
// label fails the Valid check in validation tests.
var StatusLabels = map[Status]string{
	StatusPlanned:    "Planned",
	StatusInProgress: "In Progress",
	StatusCompleted:  "Completed",
}

func (s Status) Valid() bool {
	_, ok := StatusLabels[s]
	return ok
}

func (s Status) Label() string {
	return StatusLabels[s]
}
