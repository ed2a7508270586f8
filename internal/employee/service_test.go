package employee_test

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/usahaku/erp-dashboard/internal"
	"github.com/usahaku/erp-dashboard/internal/employee"
	"github.com/usahaku/erp-dashboard/internal/resource"
	"github.com/usahaku/erp-dashboard/pkg/types"
)

func TestEmployee(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Employee Suite")
}

type MockStore struct {
	employees []*employee.Employee
}

func (m *MockStore) List(ctx context.Context) ([]*employee.Employee, error) {
	return m.employees, nil
}

func (m *MockStore) Insert(ctx context.Context, emp *employee.Employee) error {
	emp.ID = int64(len(m.employees) + 1)
	m.employees = append(m.employees, emp)
	return nil
}

func (m *MockStore) Update(ctx context.Context, id int64, emp *employee.Employee) error {
	for i, existing := range m.employees {
		if existing.ID == id {
			emp.ID = id
			m.employees[i] = emp
			return nil
		}
	}
	return resource.ErrNotFound
}

func (m *MockStore) Delete(ctx context.Context, id int64) error {
	for i, existing := range m.employees {
		if existing.ID == id {
			m.employees = append(m.employees[:i], m.employees[i+1:]...)
			return nil
		}
	}
	return resource.ErrNotFound
}

var _ = Describe("Employee Service", func() {
	var (
		store   *MockStore
		service *employee.Service
		ctx     context.Context
	)

	BeforeEach(func() {
		store = &MockStore{}
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = employee.NewService(store, logger, resource.Options{
			Timeout:       2 * time.Second,
			RetryAttempts: 1,
			RetryBackoff:  time.Millisecond,
		})
		ctx = context.Background()
	})

	Describe("Create", func() {
		It("should generate an employee ID when the draft leaves it blank", func() {
			emp, err := service.Create(ctx, employee.EmployeeDTO{
				Name:       "Budi Santoso",
				Department: "Production",
				Position:   "Line Supervisor",
				Email:      "budi@usahaku.co.id",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(emp.EmployeeID).To(MatchRegexp(`^EMP-\d+$`))
			Expect(emp.HireDate.Equal(types.Today())).To(BeTrue())
		})

		It("should reject an unknown department", func() {
			_, err := service.Create(ctx, employee.EmployeeDTO{
				Name:       "Budi Santoso",
				Department: "Logistics",
				Position:   "Driver",
				Email:      "budi@usahaku.co.id",
			})
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Type).To(Equal(internal.ErrorTypeValidation))
		})

		It("should reject a malformed email", func() {
			_, err := service.Create(ctx, employee.EmployeeDTO{
				Name:       "Budi Santoso",
				Department: "Production",
				Position:   "Line Supervisor",
				Email:      "not-an-email",
			})
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Type).To(Equal(internal.ErrorTypeValidation))
		})

		It("should require name, department, position and email", func() {
			_, err := service.Create(ctx, employee.EmployeeDTO{Name: "Budi Santoso"})
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Type).To(Equal(internal.ErrorTypeValidation))
			Expect(store.employees).To(BeEmpty())
		})
	})

	Describe("ValidDepartment", func() {
		It("should accept the org chart departments", func() {
			for _, dept := range employee.Departments {
				Expect(employee.ValidDepartment(dept)).To(BeTrue())
			}
		})

		It("should reject anything else", func() {
			Expect(employee.ValidDepartment("Security")).To(BeFalse())
		})
	})
})
