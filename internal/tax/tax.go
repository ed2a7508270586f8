package tax

import (
	"time"

	"github.com/usahaku/erp-dashboard/pkg/types"
)

// Record is a tax obligation for a monthly period. Overdue status is
// derived from the due date at read time and never stored.
type Record struct {
	ID        int64      `json:"id" gorm:"primaryKey"`
	Reference string     `json:"reference" gorm:"not null"`
	Type      Type       `json:"type" gorm:"not null"`
	Period    string     `json:"period" gorm:"not null"`
	Amount    float64    `json:"amount" gorm:"not null"`
	Status    Status     `json:"status" gorm:"default:pending"`
	DueDate   types.Date `json:"due_date" gorm:"column:due_date;type:date"`
	CreatedAt time.Time  `json:"created_at" gorm:"column:created_at;autoCreateTime"`
}

func (Record) TableName() string {
	return "tax_records"
}

const (
	ReferencePrefix = "TAX"
	OrderColumn     = "due_date"

	// PeriodLayout is the month granularity periods are filed at.
	PeriodLayout = "2006-01"
)

// IsOverdue reports whether the record's due date has passed without
// payment. Paid records are never overdue.
func (r *Record) IsOverdue(today types.Date) bool {
	if r.Status == StatusPaid {
		return false
	}
	return !r.DueDate.IsZero() && r.DueDate.Before(today)
}

type Type string

const (
	TypePPN   Type = "ppn"
	TypePPh   Type = "pph"
	TypeCukai Type = "cukai"
)

var TypeLabels = map[Type]string{
	TypePPN:   "PPN (VAT)",
	TypePPh:   "PPh (Income Tax)",
	TypeCukai: "Cukai (Excise)",
}

func (t Type) Valid() bool {
	_, ok := TypeLabels[t]
	return ok
}

func (t Type) Label() string {
	return TypeLabels[t]
}

type Status string

const (
	StatusPending Status = "pending"
	StatusFiled   Status = "filed"
	StatusPaid    Status = "paid"
)

var StatusLabels = map[Status]string{
	StatusPending: "Pending",
	StatusFiled:   "Filed",
	StatusPaid:    "Paid",
}

func (s Status) Valid() bool {
	_, ok := StatusLabels[s]
	return ok
}

func (s Status) Label() string {
	return StatusLabels[s]
}
