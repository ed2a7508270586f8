package sales

import (
	"context"
	"log/slog"
	"time"

	"github.com/usahaku/erp-dashboard/internal"
	"github.com/usahaku/erp-dashboard/internal/resource"
	"github.com/usahaku/erp-dashboard/pkg/types"
)

type Service struct {
	records *resource.Service[Order]
	logger  *slog.Logger
	now     func() time.Time
}

func NewService(store resource.Store[Order], logger *slog.Logger, opts resource.Options) *Service {
	return &Service{
		records: resource.NewService(store, "sales order", logger, opts),
		logger:  logger,
		now:     time.Now,
	}
}

func (s *Service) List(ctx context.Context) ([]OrderResponse, error) {
	orders, err := s.records.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]OrderResponse, len(orders))
	for i, order := range orders {
		responses[i] = toResponse(order)
	}
	return responses, nil
}

func (s *Service) Create(ctx context.Context, dto OrderDTO) (*OrderResponse, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	order := dto.toOrder(s.now())
	if err := s.records.Create(ctx, order); err != nil {
		return nil, err
	}

	s.logger.Info("sales order created",
		"order_id", order.ID,
		"reference", order.Reference,
		"total_amount", order.TotalAmount)
	resp := toResponse(order)
	return &resp, nil
}

func (s *Service) Update(ctx context.Context, id int64, dto OrderDTO) (*OrderResponse, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	order := dto.toOrder(s.now())
	if err := s.records.Update(ctx, id, order); err != nil {
		return nil, err
	}
	order.ID = id

	s.logger.Info("sales order updated", "order_id", id, "reference", order.Reference)
	resp := toResponse(order)
	return &resp, nil
}

func (s *Service) Delete(ctx context.Context, id int64, confirmed bool) (bool, error) {
	if !confirmed {
		s.logger.Info("sales order deletion declined", "order_id", id)
		return false, nil
	}
	if err := s.records.Delete(ctx, id); err != nil {
		return false, err
	}
	s.logger.Info("sales order deleted", "order_id", id)
	return true, nil
}

func (s *Service) NewDraft() OrderDTO {
	return OrderDTO{Status: StatusPending, Date: types.DateOf(s.now())}
}

func (s *Service) DraftFor(ctx context.Context, id int64) (*OrderDTO, error) {
	orders, err := s.records.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, order := range orders {
		if order.ID == id {
			draft := draftFrom(order)
			return &draft, nil
		}
	}
	return nil, internal.NewNotFoundError("sales order not found")
}
