package inventory

import (
	"context"
	"log/slog"
	"time"

	"github.com/usahaku/erp-dashboard/internal"
	"github.com/usahaku/erp-dashboard/internal/resource"
)

type Service struct {
	records *resource.Service[Item]
	logger  *slog.Logger
	now     func() time.Time
}

func NewService(store resource.Store[Item], logger *slog.Logger, opts resource.Options) *Service {
	return &Service{
		records: resource.NewService(store, "inventory item", logger, opts),
		logger:  logger,
		now:     time.Now,
	}
}

func (s *Service) List(ctx context.Context) ([]ItemResponse, error) {
	items, err := s.records.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]ItemResponse, len(items))
	for i, item := range items {
		responses[i] = toResponse(item)
	}
	return responses, nil
}

func (s *Service) Create(ctx context.Context, dto ItemDTO) (*ItemResponse, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	item := dto.toItem(s.now())
	if err := s.records.Create(ctx, item); err != nil {
		return nil, err
	}

	s.logger.Info("inventory item created", "item_id", item.ID, "sku", item.SKU)
	resp := toResponse(item)
	return &resp, nil
}

func (s *Service) Update(ctx context.Context, id int64, dto ItemDTO) (*ItemResponse, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	item := dto.toItem(s.now())
	if err := s.records.Update(ctx, id, item); err != nil {
		return nil, err
	}
	item.ID = id

	s.logger.Info("inventory item updated", "item_id", id, "sku", item.SKU)
	resp := toResponse(item)
	return &resp, nil
}

// Delete requires confirmation. A declined confirmation is a no-op, not an
// error: no store call is issued and the list stays unchanged.
func (s *Service) Delete(ctx context.Context, id int64, confirmed bool) (bool, error) {
	if !confirmed {
		s.logger.Info("inventory item deletion declined", "item_id", id)
		return false, nil
	}
	if err := s.records.Delete(ctx, id); err != nil {
		return false, err
	}
	s.logger.Info("inventory item deleted", "item_id", id)
	return true, nil
}

// NewDraft returns the cleared form draft with its defaults.
func (s *Service) NewDraft() ItemDTO {
	return ItemDTO{Unit: DefaultUnit}
}

// DraftFor copies an existing record's fields into a draft for editing. The
// record comes from the listed rows; the store contract has no point lookup.
func (s *Service) DraftFor(ctx context.Context, id int64) (*ItemDTO, error) {
	items, err := s.records.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		if item.ID == id {
			draft := draftFrom(item)
			return &draft, nil
		}
	}
	return nil, internal.NewNotFoundError("inventory item not found")
}
