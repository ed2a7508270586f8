package finance

import (
	"context"
	"log/slog"
	"time"

	"github.com/usahaku/erp-dashboard/internal"
	"github.com/usahaku/erp-dashboard/internal/resource"
	"github.com/usahaku/erp-dashboard/pkg/types"
)

type Service struct {
	records *resource.Service[Transaction]
	logger  *slog.Logger
	now     func() time.Time
}

func NewService(store resource.Store[Transaction], logger *slog.Logger, opts resource.Options) *Service {
	return &Service{
		records: resource.NewService(store, "finance transaction", logger, opts),
		logger:  logger,
		now:     time.Now,
	}
}

// List returns the transactions ordered by date descending plus the income,
// expense and net-balance summary computed over the same rows.
func (s *Service) List(ctx context.Context) (*TransactionsResponse, error) {
	transactions, err := s.records.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]TransactionResponse, len(transactions))
	for i, tx := range transactions {
		responses[i] = toResponse(tx)
	}
	return &TransactionsResponse{
		Transactions: responses,
		Summary:      Summarize(transactions),
	}, nil
}

func (s *Service) Create(ctx context.Context, dto TransactionDTO) (*TransactionResponse, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	tx := dto.toTransaction(s.now())
	if err := s.records.Create(ctx, tx); err != nil {
		return nil, err
	}

	s.logger.Info("finance transaction created",
		"transaction_id", tx.ID,
		"reference", tx.Reference,
		"type", tx.Type,
		"amount", tx.Amount)
	resp := toResponse(tx)
	return &resp, nil
}

func (s *Service) Update(ctx context.Context, id int64, dto TransactionDTO) (*TransactionResponse, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	tx := dto.toTransaction(s.now())
	if err := s.records.Update(ctx, id, tx); err != nil {
		return nil, err
	}
	tx.ID = id

	s.logger.Info("finance transaction updated", "transaction_id", id, "reference", tx.Reference)
	resp := toResponse(tx)
	return &resp, nil
}

func (s *Service) Delete(ctx context.Context, id int64, confirmed bool) (bool, error) {
	if !confirmed {
		s.logger.Info("finance transaction deletion declined", "transaction_id", id)
		return false, nil
	}
	if err := s.records.Delete(ctx, id); err != nil {
		return false, err
	}
	s.logger.Info("finance transaction deleted", "transaction_id", id)
	return true, nil
}

func (s *Service) NewDraft() TransactionDTO {
	return TransactionDTO{Type: TypeExpense, Date: types.DateOf(s.now())}
}

func (s *Service) DraftFor(ctx context.Context, id int64) (*TransactionDTO, error) {
	transactions, err := s.records.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, tx := range transactions {
		if tx.ID == id {
			draft := draftFrom(tx)
			return &draft, nil
		}
	}
	return nil, internal.NewNotFoundError("finance transaction not found")
}
