package models

// RiskLevel classifies the severity of a detected payroll anomaly.
type RiskLevel string

const (
	RiskCritical RiskLevel = "Critical"
	RiskHigh     RiskLevel = "High"
	RiskMedium   RiskLevel = "Medium"
	RiskLow      RiskLevel = "Low"
)

// AnomalyStatus tracks where an anomaly sits in the review workflow.
type AnomalyStatus string

const (
	StatusUnderReview   AnomalyStatus = "Under Review"
	StatusInvestigating AnomalyStatus = "Investigating"
	StatusResolved      AnomalyStatus = "Resolved"
)
