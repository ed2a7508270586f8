package employee

import (
	"time"

	"github.com/usahaku/erp-dashboard/pkg/types"
)

// Employee is a staff record. EmployeeID is the human-facing badge
// number; blank IDs on intake get a generated EMP reference.
type Employee struct {
	ID         int64      `json:"id" gorm:"primaryKey"`
	EmployeeID string     `json:"employee_id" gorm:"column:employee_id;not null"`
	Name       string     `json:"name" gorm:"not null"`
	Department string     `json:"department" gorm:"not null"`
	Position   string     `json:"position" gorm:"not null"`
	Email      string     `json:"email" gorm:"not null"`
	Phone      string     `json:"phone"`
	HireDate   types.Date `json:"hire_date" gorm:"column:hire_date;type:date"`
	CreatedAt  time.Time  `json:"created_at" gorm:"column:created_at;autoCreateTime"`
}

func (Employee) TableName() string {
	return "employees"
}

const (
	ReferencePrefix = "EMP"
	OrderColumn     = "hire_date"
)

// Departments mirrors the org chart used on intake forms.
var Departments = []string{
	"Production",
	"Sales",
	"Marketing",
	"Finance",
	"IT",
	"HR",
}

func ValidDepartment(dept string) bool {
	for _, d := range Departments {
		if d == dept {
			return true
		}
	}
	return false
}
