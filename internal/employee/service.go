package employee

import (
	"context"
	"log/slog"
	"time"

	"github.com/usahaku/erp-dashboard/internal"
	"github.com/usahaku/erp-dashboard/internal/resource"
	"github.com/usahaku/erp-dashboard/pkg/types"
)

type Service struct {
	records *resource.Service[Employee]
	logger  *slog.Logger
	now     func() time.Time
}

func NewService(store resource.Store[Employee], logger *slog.Logger, opts resource.Options) *Service {
	return &Service{
		records: resource.NewService(store, "employee", logger, opts),
		logger:  logger,
		now:     time.Now,
	}
}

func (s *Service) List(ctx context.Context) ([]*Employee, error) {
	return s.records.List(ctx)
}

func (s *Service) Create(ctx context.Context, dto EmployeeDTO) (*Employee, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	emp := dto.toEmployee(s.now())
	if err := s.records.Create(ctx, emp); err != nil {
		return nil, err
	}

	s.logger.Info("employee created",
		"record_id", emp.ID,
		"employee_id", emp.EmployeeID,
		"department", emp.Department)
	return emp, nil
}

func (s *Service) Update(ctx context.Context, id int64, dto EmployeeDTO) (*Employee, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	emp := dto.toEmployee(s.now())
	if err := s.records.Update(ctx, id, emp); err != nil {
		return nil, err
	}
	emp.ID = id

	s.logger.Info("employee updated", "record_id", id, "employee_id", emp.EmployeeID)
	return emp, nil
}

func (s *Service) Delete(ctx context.Context, id int64, confirmed bool) (bool, error) {
	if !confirmed {
		s.logger.Info("employee deletion declined", "record_id", id)
		return false, nil
	}
	if err := s.records.Delete(ctx, id); err != nil {
		return false, err
	}
	s.logger.Info("employee deleted", "record_id", id)
	return true, nil
}

func (s *Service) NewDraft() EmployeeDTO {
	return EmployeeDTO{
		HireDate: types.DateOf(s.now()),
	}
}

func (s *Service) DraftFor(ctx context.Context, id int64) (*EmployeeDTO, error) {
	employees, err := s.records.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, emp := range employees {
		if emp.ID == id {
			draft := draftFrom(emp)
			return &draft, nil
		}
	}
	return nil, internal.NewNotFoundError("employee not found")
}
