package store

import (
	"sort"

	"github.com/randyellis-wealthberry/LedgerIQDashboard/app/models"
)

// GetAnomaly returns the raw anomaly with the given id (no employee
// join), or nil.
func (s *MemStore) GetAnomaly(id int) *models.Anomaly {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.anomalies[id]
}

// GetAnomalyWithEmployee returns the anomaly joined with its employee.
// A miss on either the anomaly or the referenced employee returns nil;
// a dangling employee reference is never surfaced as an error.
func (s *MemStore) GetAnomalyWithEmployee(id int) *models.AnomalyWithEmployee {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.joinEmployee(s.anomalies[id])
}

// GetAnomalyWithInsights returns the joined anomaly together with the
// first AI insight attached to it, when one exists.
func (s *MemStore) GetAnomalyWithInsights(id int) *models.AnomalyWithInsights {
	s.mu.RLock()
	defer s.mu.RUnlock()

	joined := s.joinEmployee(s.anomalies[id])
	if joined == nil {
		return nil
	}
	return &models.AnomalyWithInsights{
		AnomalyWithEmployee: *joined,
		AiInsight:           s.findInsight(id),
	}
}

// GetAllAnomalies returns every anomaly joined with its employee,
// most recently detected first. Anomalies whose employee is missing
// are silently excluded. Ties on DetectedAt keep insertion order.
func (s *MemStore) GetAllAnomalies() []*models.AnomalyWithEmployee {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.allAnomaliesLocked()
}

// GetAnomaliesByRiskLevel filters the full joined list by exact risk
// level match.
func (s *MemStore) GetAnomaliesByRiskLevel(level models.RiskLevel) []*models.AnomalyWithEmployee {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.AnomalyWithEmployee, 0)
	for _, a := range s.allAnomaliesLocked() {
		if a.RiskLevel == level {
			out = append(out, a)
		}
	}
	return out
}

// GetAnomaliesByDepartment filters the full joined list by exact
// employee department match.
func (s *MemStore) GetAnomaliesByDepartment(department string) []*models.AnomalyWithEmployee {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.AnomalyWithEmployee, 0)
	for _, a := range s.allAnomaliesLocked() {
		if a.Employee.Department == department {
			out = append(out, a)
		}
	}
	return out
}

// CreateAnomaly assigns the next anomaly id, stamps DetectedAt with
// the current time and stores the record. Status defaults to
// "Under Review"; a freshly created anomaly is never pre-resolved.
// Returns the raw anomaly, not joined.
func (s *MemStore) CreateAnomaly(anomaly models.Anomaly) *models.Anomaly {
	s.mu.Lock()
	defer s.mu.Unlock()

	anomaly.ID = s.nextAnomalyID
	s.nextAnomalyID++
	anomaly.DetectedAt = s.now()
	anomaly.ResolvedAt = nil
	if anomaly.Status == "" {
		anomaly.Status = models.StatusUnderReview
	}
	s.anomalies[anomaly.ID] = &anomaly
	return &anomaly
}

// UpdateAnomalyStatus replaces the status of the anomaly with the
// given id and returns the updated record, or nil on an unknown id.
// Exactly when the new status is "Resolved", ResolvedAt is stamped
// with the current time; moving a resolved anomaly back to another
// status leaves its old ResolvedAt in place.
func (s *MemStore) UpdateAnomalyStatus(id int, status models.AnomalyStatus) *models.Anomaly {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.anomalies[id]
	if !ok {
		return nil
	}

	updated := *current
	updated.Status = status
	if status == models.StatusResolved {
		now := s.now()
		updated.ResolvedAt = &now
	}
	s.anomalies[id] = &updated
	return &updated
}

// joinEmployee builds the employee-joined view of an anomaly. Callers
// must hold the lock.
func (s *MemStore) joinEmployee(anomaly *models.Anomaly) *models.AnomalyWithEmployee {
	if anomaly == nil {
		return nil
	}
	employee, ok := s.employees[anomaly.EmployeeID]
	if !ok {
		return nil
	}
	return &models.AnomalyWithEmployee{Anomaly: *anomaly, Employee: *employee}
}

// allAnomaliesLocked is GetAllAnomalies without the locking; callers
// must hold at least the read lock.
func (s *MemStore) allAnomaliesLocked() []*models.AnomalyWithEmployee {
	out := make([]*models.AnomalyWithEmployee, 0, len(s.anomalies))
	for id := 1; id < s.nextAnomalyID; id++ {
		if joined := s.joinEmployee(s.anomalies[id]); joined != nil {
			out = append(out, joined)
		}
	}
	// Stable: equal timestamps keep insertion order from the id walk above.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DetectedAt.After(out[j].DetectedAt)
	})
	return out
}
