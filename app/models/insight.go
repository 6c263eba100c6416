package models

// AiInsight is canned explanatory text attached to an anomaly: root
// cause, risk assessment and a list of recommended actions.
type AiInsight struct {
	ID                 int      `json:"id"`
	AnomalyID          int      `json:"anomalyId" validate:"required,gt=0"`
	RootCause          string   `json:"rootCause" validate:"required"`
	RiskAssessment     string   `json:"riskAssessment" validate:"required"`
	RecommendedActions []string `json:"recommendedActions" validate:"required"`
	HistoricalMatches  []string `json:"historicalMatches"`
	Confidence         int      `json:"confidence" validate:"gte=0,lte=100"`
}
