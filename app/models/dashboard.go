package models

// TrendPoint is one daily bucket of the dashboard trend series.
type TrendPoint struct {
	Date     string `json:"date"`
	Critical int    `json:"critical"`
	High     int    `json:"high"`
	Medium   int    `json:"medium"`
}

// DashboardStats is the aggregate summary shown on the dashboard,
// computed on demand from the current anomaly collection.
type DashboardStats struct {
	CriticalAnomalies int          `json:"criticalAnomalies"`
	PendingReview     int          `json:"pendingReview"`
	ResolvedToday     int          `json:"resolvedToday"`
	AmountAtRisk      string       `json:"amountAtRisk"`
	Trends            []TrendPoint `json:"trends"`
}
