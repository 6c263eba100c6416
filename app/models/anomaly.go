package models

import "time"

// Anomaly is a single flagged payroll irregularity. Money fields are
// decimal strings as they arrive from the payroll feed; arithmetic on
// them happens in the store layer.
type Anomaly struct {
	ID                  int           `json:"id"`
	EmployeeID          int           `json:"employeeId" validate:"required,gt=0"`
	Type                string        `json:"type" validate:"required"`
	Description         string        `json:"description" validate:"required"`
	RiskLevel           RiskLevel     `json:"riskLevel" validate:"required,oneof=Critical High Medium Low"`
	Amount              string        `json:"amount" validate:"required"`
	Variance            *string       `json:"variance"`
	Confidence          int           `json:"confidence" validate:"gte=0,lte=100"`
	Status              AnomalyStatus `json:"status"`
	PayPeriod           string        `json:"payPeriod" validate:"required"`
	OvertimeHours       *string       `json:"overtimeHours"`
	NormalOvertimeHours *string       `json:"normalOvertimeHours"`
	HourlyRate          *string       `json:"hourlyRate"`
	DetectedAt          time.Time     `json:"detectedAt"`
	ResolvedAt          *time.Time    `json:"resolvedAt"`
}

// AnomalyWithEmployee is an Anomaly joined with its referenced employee.
type AnomalyWithEmployee struct {
	Anomaly
	Employee Employee `json:"employee"`
}

// AnomalyWithInsights additionally carries the AI insight attached to
// the anomaly, when one exists.
type AnomalyWithInsights struct {
	AnomalyWithEmployee
	AiInsight *AiInsight `json:"aiInsight,omitempty"`
}
