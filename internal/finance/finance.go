package finance

import (
	"time"

	"github.com/usahaku/erp-dashboard/pkg/types"
)

// Transaction is one income or expense entry in the company ledger.
type Transaction struct {
	ID          int64           `json:"id" gorm:"primaryKey"`
	Reference   string          `json:"reference" gorm:"not null"`
	Type        TransactionType `json:"type" gorm:"not null"`
	Category    string          `json:"category"`
	Amount      float64         `json:"amount" gorm:"not null"`
	Description string          `json:"description"`
	Date        types.Date      `json:"date" gorm:"type:date"`
	CreatedAt   time.Time       `json:"created_at" gorm:"column:created_at;autoCreateTime"`
}

func (Transaction) TableName() string {
	return "finance_transactions"
}

const (
	ReferencePrefix = "FIN"
	OrderColumn     = "date"
)

type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

var TypeLabels = map[TransactionType]string{
	TypeIncome:  "Income",
	TypeExpense: "Expense",
}

func (t TransactionType) Valid() bool {
	_, ok := TypeLabels[t]
	return ok
}

func (t TransactionType) Label() string {
	return TypeLabels[t]
}

// Summary aggregates the fetched rows, mirroring the ledger page's income,
// expense and net balance cards.
type Summary struct {
	TotalIncome  float64 `json:"total_income"`
	TotalExpense float64 `json:"total_expense"`
	NetBalance   float64 `json:"net_balance"`
}

func Summarize(transactions []*Transaction) Summary {
	var summary Summary
	for _, tx := range transactions {
		switch tx.Type {
		case TypeIncome:
			summary.TotalIncome += tx.Amount
		case TypeExpense:
			summary.TotalExpense += tx.Amount
		}
	}
	summary.NetBalance = summary.TotalIncome - summary.TotalExpense
	return summary
}
