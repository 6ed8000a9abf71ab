package employee

import (
	"time"

	"github.com/sghrms/payroll-backend-go/internal/statutory"
)

type Employee struct {
	ID               string
	UserID           *string
	CompanyID        string
	ManagerID        *string
	EmployeeCode     string
	FullName         string
	DOB              *time.Time
	Residency        statutory.ResidencyClass
	HireDate         time.Time
	ResignationDate  *time.Time
	EmploymentStatus EmploymentStatus
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        *time.Time
}

type EmploymentStatus string

const (
	EmploymentStatusActive     EmploymentStatus = "active"
	EmploymentStatusResigned   EmploymentStatus = "resigned"
	EmploymentStatusTerminated EmploymentStatus = "terminated"
)

// AgeAt returns the employee's whole-year age on the given date, or false
// when no date of birth is recorded.
func (e Employee) AgeAt(date time.Time) (int, bool) {
	if e.DOB == nil {
		return 0, false
	}
	age := date.Year() - e.DOB.Year()
	anniversary := time.Date(date.Year(), e.DOB.Month(), e.DOB.Day(), 0, 0, 0, 0, time.UTC)
	if date.Before(anniversary) {
		age--
	}
	if age < 0 {
		age = 0
	}
	return age, true
}
