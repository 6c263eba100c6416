package store

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/randyellis-wealthberry/LedgerIQDashboard/app/models"
)

const trendDays = 14

// GetDashboardStats computes the aggregate dashboard summary from the
// current anomaly set: critical count, pending-review count, count
// resolved since local midnight, total amount still at risk, and a
// 14-day trend series of daily anomaly counts by risk level (oldest
// first, ending today).
func (s *MemStore) GetDashboardStats() *models.DashboardStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := s.allAnomaliesLocked()
	now := s.now()
	todayStart := startOfDay(now)

	stats := &models.DashboardStats{}
	atRisk := decimal.Zero
	for _, a := range all {
		if a.RiskLevel == models.RiskCritical {
			stats.CriticalAnomalies++
		}
		if a.Status == models.StatusUnderReview {
			stats.PendingReview++
		}
		if a.Status == models.StatusResolved && a.ResolvedAt != nil && !a.ResolvedAt.Before(todayStart) {
			stats.ResolvedToday++
		}
		if a.Status != models.StatusResolved {
			amount, err := decimal.NewFromString(a.Amount)
			if err == nil {
				atRisk = atRisk.Add(amount)
			}
		}
	}
	stats.AmountAtRisk = formatCurrency(atRisk)

	stats.Trends = make([]models.TrendPoint, 0, trendDays)
	for i := trendDays - 1; i >= 0; i-- {
		dayStart := todayStart.AddDate(0, 0, -i)
		dayEnd := dayStart.AddDate(0, 0, 1)

		point := models.TrendPoint{Date: dayStart.Format("Jan 2")}
		for _, a := range all {
			if a.DetectedAt.Before(dayStart) || !a.DetectedAt.Before(dayEnd) {
				continue
			}
			switch a.RiskLevel {
			case models.RiskCritical:
				point.Critical++
			case models.RiskHigh:
				point.High++
			case models.RiskMedium:
				point.Medium++
			}
		}
		stats.Trends = append(stats.Trends, point)
	}

	return stats
}

func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// formatCurrency renders a decimal amount as a dollar string with
// thousands separators and no decimal places, e.g. "$21,200".
func formatCurrency(amount decimal.Decimal) string {
	n := amount.Round(0).IntPart()
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}

	digits := strconv.FormatInt(n, 10)
	var grouped []byte
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			grouped = append(grouped, ',')
		}
		grouped = append(grouped, d)
	}
	return sign + "$" + string(grouped)
}
