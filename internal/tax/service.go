package tax

import (
	"context"
	"log/slog"
	"time"

	"github.com/usahaku/erp-dashboard/internal"
	"github.com/usahaku/erp-dashboard/internal/resource"
	"github.com/usahaku/erp-dashboard/pkg/types"
)

type Service struct {
	records *resource.Service[Record]
	logger  *slog.Logger
	now     func() time.Time
}

func NewService(store resource.Store[Record], logger *slog.Logger, opts resource.Options) *Service {
	return &Service{
		records: resource.NewService(store, "tax record", logger, opts),
		logger:  logger,
		now:     time.Now,
	}
}

func (s *Service) List(ctx context.Context) ([]RecordResponse, error) {
	records, err := s.records.List(ctx)
	if err != nil {
		return nil, err
	}

	today := types.DateOf(s.now())
	responses := make([]RecordResponse, len(records))
	for i, record := range records {
		responses[i] = toResponse(record, today)
	}
	return responses, nil
}

func (s *Service) Create(ctx context.Context, dto RecordDTO) (*RecordResponse, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	record := dto.toRecord(s.now())
	if err := s.records.Create(ctx, record); err != nil {
		return nil, err
	}

	s.logger.Info("tax record created",
		"record_id", record.ID,
		"reference", record.Reference,
		"type", record.Type,
		"period", record.Period)
	resp := toResponse(record, types.DateOf(s.now()))
	return &resp, nil
}

func (s *Service) Update(ctx context.Context, id int64, dto RecordDTO) (*RecordResponse, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	record := dto.toRecord(s.now())
	if err := s.records.Update(ctx, id, record); err != nil {
		return nil, err
	}
	record.ID = id

	s.logger.Info("tax record updated", "record_id", id, "reference", record.Reference)
	resp := toResponse(record, types.DateOf(s.now()))
	return &resp, nil
}

func (s *Service) Delete(ctx context.Context, id int64, confirmed bool) (bool, error) {
	if !confirmed {
		s.logger.Info("tax record deletion declined", "record_id", id)
		return false, nil
	}
	if err := s.records.Delete(ctx, id); err != nil {
		return false, err
	}
	s.logger.Info("tax record deleted", "record_id", id)
	return true, nil
}

func (s *Service) NewDraft() RecordDTO {
	now := s.now()
	return RecordDTO{
		Type:    TypePPN,
		Period:  now.Format(PeriodLayout),
		Status:  StatusPending,
		DueDate: types.DateOf(now),
	}
}

func (s *Service) DraftFor(ctx context.Context, id int64) (*RecordDTO, error) {
	records, err := s.records.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, record := range records {
		if record.ID == id {
			draft := draftFrom(record)
			return &draft, nil
		}
	}
	return nil, internal.NewNotFoundError("tax record not found")
}
