package store

import (
	"sort"

	"github.com/randyellis-wealthberry/LedgerIQDashboard/app/models"
)

// GetEmployee returns the employee with the given id, or nil.
func (s *MemStore) GetEmployee(id int) *models.Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.employees[id]
}

// GetEmployeeByEmployeeID looks an employee up by external HR code.
func (s *MemStore) GetEmployeeByEmployeeID(code string) *models.Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for id := 1; id < s.nextEmployeeID; id++ {
		if e, ok := s.employees[id]; ok && e.EmployeeID == code {
			return e
		}
	}
	return nil
}

// GetAllEmployees returns every employee in insertion order.
func (s *MemStore) GetAllEmployees() []*models.Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Employee, 0, len(s.employees))
	for _, e := range s.employees {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// CreateEmployee assigns the next employee id and stores the record.
// Optional fields stay nil when the caller leaves them unset.
func (s *MemStore) CreateEmployee(employee models.Employee) *models.Employee {
	s.mu.Lock()
	defer s.mu.Unlock()

	employee.ID = s.nextEmployeeID
	s.nextEmployeeID++
	s.employees[employee.ID] = &employee
	return &employee
}
