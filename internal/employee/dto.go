package employee

import (
	"strings"
	"time"

	"github.com/usahaku/erp-dashboard/internal"
	"github.com/usahaku/erp-dashboard/internal/resource"
	"github.com/usahaku/erp-dashboard/pkg/types"
)

type EmployeeDTO struct {
	EmployeeID string     `json:"employee_id"`
	Name       string     `json:"name"`
	Department string     `json:"department"`
	Position   string     `json:"position"`
	Email      string     `json:"email"`
	Phone      string     `json:"phone"`
	HireDate   types.Date `json:"hire_date"`
}

func (dto EmployeeDTO) Validate() error {
	if strings.TrimSpace(dto.Name) == "" {
		return internal.NewValidationFieldError("name", "employee name is required", internal.ErrCodeRequiredField)
	}
	if strings.TrimSpace(dto.Department) == "" {
		return internal.NewValidationFieldError("department", "department is required", internal.ErrCodeRequiredField)
	}
	if !ValidDepartment(dto.Department) {
		return internal.NewValidationFieldError("department", "unknown department", internal.ErrCodeInvalidType)
	}
	if strings.TrimSpace(dto.Position) == "" {
		return internal.NewValidationFieldError("position", "position is required", internal.ErrCodeRequiredField)
	}
	email := strings.TrimSpace(dto.Email)
	if email == "" {
		return internal.NewValidationFieldError("email", "email is required", internal.ErrCodeRequiredField)
	}
	if !strings.Contains(email, "@") {
		return internal.NewValidationFieldError("email", "email address is malformed", internal.ErrCodeInvalidType)
	}
	return nil
}

func (dto EmployeeDTO) toEmployee(now time.Time) *Employee {
	hireDate := dto.HireDate
	if hireDate.IsZero() {
		hireDate = types.DateOf(now)
	}
	return &Employee{
		EmployeeID: resource.DefaultReference(dto.EmployeeID, ReferencePrefix, now),
		Name:       dto.Name,
		Department: dto.Department,
		Position:   dto.Position,
		Email:      strings.TrimSpace(dto.Email),
		Phone:      dto.Phone,
		HireDate:   hireDate,
	}
}

func draftFrom(emp *Employee) EmployeeDTO {
	return EmployeeDTO{
		EmployeeID: emp.EmployeeID,
		Name:       emp.Name,
		Department: emp.Department,
		Position:   emp.Position,
		Email:      emp.Email,
		Phone:      emp.Phone,
		HireDate:   emp.HireDate,
	}
}

type EmployeesResponse struct {
	Employees []*Employee `json:"employees"`
}
