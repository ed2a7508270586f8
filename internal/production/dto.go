package production

import (
	"strings"
	"time"

	"github.com/usahaku/erp-dashboard/internal"
	"github.com/usahaku/erp-dashboard/internal/resource"
	"github.com/usahaku/erp-dashboard/pkg/types"
)

type RecordDTO struct {
	Reference   string        `json:"reference"`
	ProductName string        `json:"product_name"`
	Quantity    types.FlexInt `json:"quantity"`
	Status      Status        `json:"status"`
	Date        types.Date    `json:"date"`
}

func (dto RecordDTO) Validate() error {
	if strings.TrimSpace(dto.ProductName) == "" {
		return internal.NewValidationFieldError("product_name", "product name is required", internal.ErrCodeRequiredField)
	}
	if dto.Status != "" && !dto.Status.Valid() {
		return internal.NewValidationFieldError("status", "unknown production status", internal.ErrCodeInvalidStatus)
	}
	if dto.Quantity < 0 {
		return internal.NewValidationFieldError("quantity", "quantity cannot be negative", internal.ErrCodeInvalidNumber)
	}
	return nil
}

func (dto RecordDTO) toRecord(now time.Time) *Record {
	status := dto.Status
	if status == "" {
		status = StatusPlanned
	}
	date := dto.Date
	if date.IsZero() {
		date = types.DateOf(now)
	}
	return &Record{
		Reference:   resource.DefaultReference(dto.Reference, ReferencePrefix, now),
		ProductName: dto.ProductName,
		Quantity:    dto.Quantity.Int(),
		Status:      status,
		Date:        date,
	}
}

func draftFrom(record *Record) RecordDTO {
	return RecordDTO{
		Reference:   record.Reference,
		ProductName: record.ProductName,
		Quantity:    types.FlexInt(record.Quantity),
		Status:      record.Status,
		Date:        record.Date,
	}
}

type RecordResponse struct {
	Record
	StatusLabel string `json:"status_label"`
}

func toResponse(record *Record) RecordResponse {
	return RecordResponse{
		Record:      *record,
		StatusLabel: record.Status.Label(),
	}
}

type RecordsResponse struct {
	Records []RecordResponse `json:"records"`
}
