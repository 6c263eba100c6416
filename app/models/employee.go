package models

// Employee represents a payroll subject. EmployeeID is the external
// HR code (e.g. "EMP-1247"), distinct from the internal numeric id.
type Employee struct {
	ID                int     `json:"id"`
	EmployeeID        string  `json:"employeeId" validate:"required"`
	Name              string  `json:"name" validate:"required"`
	Department        string  `json:"department" validate:"required"`
	Email             string  `json:"email" validate:"required,email"`
	Avatar            *string `json:"avatar"`
	AverageMonthlyOT  *string `json:"averageMonthlyOT"`
	PerformanceRating *string `json:"performanceRating"`
}
