package finance

import (
	"strings"
	"time"

	"github.com/usahaku/erp-dashboard/internal"
	"github.com/usahaku/erp-dashboard/internal/resource"
	"github.com/usahaku/erp-dashboard/pkg/types"
)

type TransactionDTO struct {
	Reference   string          `json:"reference"`
	Type        TransactionType `json:"type"`
	Category    string          `json:"category"`
	Amount      types.FlexFloat `json:"amount"`
	Description string          `json:"description"`
	Date        types.Date      `json:"date"`
}

func (dto TransactionDTO) Validate() error {
	if dto.Type != "" && !dto.Type.Valid() {
		return internal.NewValidationFieldError("type", "type must be income or expense", internal.ErrCodeInvalidType)
	}
	if strings.TrimSpace(dto.Category) == "" {
		return internal.NewValidationFieldError("category", "category is required", internal.ErrCodeRequiredField)
	}
	if strings.TrimSpace(dto.Description) == "" {
		return internal.NewValidationFieldError("description", "description is required", internal.ErrCodeRequiredField)
	}
	if dto.Amount < 0 {
		return internal.NewValidationFieldError("amount", "amount cannot be negative", internal.ErrCodeInvalidNumber)
	}
	return nil
}

func (dto TransactionDTO) toTransaction(now time.Time) *Transaction {
	txType := dto.Type
	if txType == "" {
		txType = TypeExpense
	}
	date := dto.Date
	if date.IsZero() {
		date = types.DateOf(now)
	}
	return &Transaction{
		Reference:   resource.DefaultReference(dto.Reference, ReferencePrefix, now),
		Type:        txType,
		Category:    dto.Category,
		Amount:      dto.Amount.Float64(),
		Description: dto.Description,
		Date:        date,
	}
}

func draftFrom(tx *Transaction) TransactionDTO {
	return TransactionDTO{
		Reference:   tx.Reference,
		Type:        tx.Type,
		Category:    tx.Category,
		Amount:      types.FlexFloat(tx.Amount),
		Description: tx.Description,
		Date:        tx.Date,
	}
}

type TransactionResponse struct {
	Transaction
	TypeLabel string `json:"type_label"`
}

func toResponse(tx *Transaction) TransactionResponse {
	return TransactionResponse{
		Transaction: *tx,
		TypeLabel:   tx.Type.Label(),
	}
}

// TransactionsResponse carries the rows together with the ledger summary.
type TransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Summary      Summary               `json:"summary"`
}
