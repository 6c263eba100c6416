package store

import "github.com/randyellis-wealthberry/LedgerIQDashboard/app/models"

// GetAiInsight returns the first insight attached to the given
// anomaly, or nil. The seed data carries at most one per anomaly.
func (s *MemStore) GetAiInsight(anomalyID int) *models.AiInsight {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.findInsight(anomalyID)
}

// CreateAiInsight assigns the next insight id and stores the record.
func (s *MemStore) CreateAiInsight(insight models.AiInsight) *models.AiInsight {
	s.mu.Lock()
	defer s.mu.Unlock()

	insight.ID = s.nextInsightID
	s.nextInsightID++
	s.insights[insight.ID] = &insight
	return &insight
}

// findInsight scans insights in id order for the first match on
// anomaly id. Callers must hold the lock.
func (s *MemStore) findInsight(anomalyID int) *models.AiInsight {
	for id := 1; id < s.nextInsightID; id++ {
		if ins, ok := s.insights[id]; ok && ins.AnomalyID == anomalyID {
			return ins
		}
	}
	return nil
}
