package tax

import (
	"strings"
	"time"

	"github.com/usahaku/erp-dashboard/internal"
	"github.com/usahaku/erp-dashboard/internal/resource"
	"github.com/usahaku/erp-dashboard/pkg/types"
)

type RecordDTO struct {
	Reference string          `json:"reference"`
	Type      Type            `json:"type"`
	Period    string          `json:"period"`
	Amount    types.FlexFloat `json:"amount"`
	Status    Status          `json:"status"`
	DueDate   types.Date      `json:"due_date"`
}

func (dto RecordDTO) Validate() error {
	if dto.Type != "" && !dto.Type.Valid() {
		return internal.NewValidationFieldError("type", "unknown tax type", internal.ErrCodeInvalidType)
	}
	period := strings.TrimSpace(dto.Period)
	if period == "" {
		return internal.NewValidationFieldError("period", "tax period is required", internal.ErrCodeRequiredField)
	}
	if _, err := time.Parse(PeriodLayout, period); err != nil {
		return internal.NewValidationFieldError("period", "period must be formatted as YYYY-MM", internal.ErrCodeInvalidPeriod)
	}
	if dto.Amount < 0 {
		return internal.NewValidationFieldError("amount", "amount cannot be negative", internal.ErrCodeInvalidNumber)
	}
	if dto.Status != "" && !dto.Status.Valid() {
		return internal.NewValidationFieldError("status", "unknown tax status", internal.ErrCodeInvalidStatus)
	}
	return nil
}

func (dto RecordDTO) toRecord(now time.Time) *Record {
	taxType := dto.Type
	if taxType == "" {
		taxType = TypePPN
	}
	status := dto.Status
	if status == "" {
		status = StatusPending
	}
	dueDate := dto.DueDate
	if dueDate.IsZero() {
		dueDate = types.DateOf(now)
	}
	return &Record{
		Reference: resource.DefaultReference(dto.Reference, ReferencePrefix, now),
		Type:      taxType,
		Period:    strings.TrimSpace(dto.Period),
		Amount:    dto.Amount.Float64(),
		Status:    status,
		DueDate:   dueDate,
	}
}

func draftFrom(record *Record) RecordDTO {
	return RecordDTO{
		Reference: record.Reference,
		Type:      record.Type,
		Period:    record.Period,
		Amount:    types.FlexFloat(record.Amount),
		Status:    record.Status,
		DueDate:   record.DueDate,
	}
}

type RecordResponse struct {
	Record
	TypeLabel   string `json:"type_label"`
	StatusLabel string `json:"status_label"`
	Overdue     bool   `json:"overdue"`
}

func toResponse(record *Record, today types.Date) RecordResponse {
	return RecordResponse{
		Record:      *record,
		TypeLabel:   record.Type.Label(),
		StatusLabel: record.Status.Label(),
		Overdue:     record.IsOverdue(today),
	}
}

type RecordsResponse struct {
	Records []RecordResponse `json:"records"`
}
