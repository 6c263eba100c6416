package store

import (
	"sync"
	"time"

	"github.com/randyellis-wealthberry/LedgerIQDashboard/app/models"
)

// MemStore owns all in-memory collections. Records are keyed by
// auto-incrementing integer ids; counters only ever increase, so ids
// are never reused. Fiber serves requests on multiple goroutines, so
// every operation takes the single store lock; stored records are
// treated as immutable snapshots (updates replace the pointer, never
// mutate in place), which keeps values returned to callers safe to
// read after the lock is released.
type MemStore struct {
	mu sync.RWMutex

	// now is the clock used for DetectedAt/ResolvedAt stamps and the
	// dashboard day buckets; tests override it.
	now func() time.Time

	users     map[int]*models.User
	employees map[int]*models.Employee
	anomalies map[int]*models.Anomaly
	insights  map[int]*models.AiInsight

	nextUserID     int
	nextEmployeeID int
	nextAnomalyID  int
	nextInsightID  int
}

// New returns an empty store. Tests use this directly; the server
// wiring uses NewSeeded.
func New() *MemStore {
	return &MemStore{
		now:            time.Now,
		users:          make(map[int]*models.User),
		employees:      make(map[int]*models.Employee),
		anomalies:      make(map[int]*models.Anomaly),
		insights:       make(map[int]*models.AiInsight),
		nextUserID:     1,
		nextEmployeeID: 1,
		nextAnomalyID:  1,
		nextInsightID:  1,
	}
}

// NewSeeded returns a store pre-populated with the demo data set:
// three employees, three anomalies and two AI insights.
func NewSeeded() *MemStore {
	s := New()
	s.seed()
	return s
}
