package store

import (
	"time"

	"github.com/randyellis-wealthberry/LedgerIQDashboard/app/models"
)

func strPtr(s string) *string { return &s }

// seed loads the demo data set the dashboard ships with: three
// employees, three anomalies across the risk spectrum and two canned
// AI insights. Anomaly timestamps are relative to the current time so
// the dashboard always shows recent activity.
func (s *MemStore) seed() {
	now := s.now()

	employees := []models.Employee{
		{
			EmployeeID:        "EMP-1247",
			Name:              "Sarah Chen",
			Department:        "Engineering",
			Email:             "sarah.chen@company.com",
			Avatar:            strPtr("https://images.unsplash.com/photo-1494790108755-2616b45a4b1c?ixlib=rb-1.2.1&ixid=eyJhcHBfaWQiOjEyMDd9&auto=format&fit=facearea&facepad=2&w=256&h=256&q=80"),
			AverageMonthlyOT:  strPtr("18.3"),
			PerformanceRating: strPtr("Excellent"),
		},
		{
			EmployeeID:        "EMP-2156",
			Name:              "Marcus Johnson",
			Department:        "Sales",
			Email:             "marcus.johnson@company.com",
			Avatar:            strPtr("https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?ixlib=rb-1.2.1&ixid=eyJhcHBfaWQiOjEyMDd9&auto=format&fit=facearea&facepad=2&w=256&h=256&q=80"),
			AverageMonthlyOT:  strPtr("12.5"),
			PerformanceRating: strPtr("Good"),
		},
		{
			EmployeeID:        "EMP-3094",
			Name:              "Emma Rodriguez",
			Department:        "Marketing",
			Email:             "emma.rodriguez@company.com",
			Avatar:            strPtr("https://images.unsplash.com/photo-1438761681033-6461ffad8d80?ixlib=rb-1.2.1&ixid=eyJhcHBfaWQiOjEyMDd9&auto=format&fit=facearea&facepad=2&w=256&h=256&q=80"),
			AverageMonthlyOT:  strPtr("9.8"),
			PerformanceRating: strPtr("Excellent"),
		},
	}
	for _, e := range employees {
		employee := e
		employee.ID = s.nextEmployeeID
		s.nextEmployeeID++
		s.employees[employee.ID] = &employee
	}

	resolvedAt := now.Add(-3 * time.Minute)
	anomalies := []models.Anomaly{
		{
			EmployeeID:          1,
			Type:                "Overtime Spike",
			Description:         "287% above baseline",
			RiskLevel:           models.RiskCritical,
			Amount:              "12450.00",
			Variance:            strPtr("+287%"),
			Confidence:          94,
			Status:              models.StatusUnderReview,
			PayPeriod:           "Nov 1-15, 2024",
			OvertimeHours:       strPtr("62.5"),
			NormalOvertimeHours: strPtr("16.2"),
			HourlyRate:          strPtr("75.00"),
			DetectedAt:          now.Add(-2 * time.Minute),
		},
		{
			EmployeeID:  2,
			Type:        "Duplicate Entry",
			Description: "Potential double payment",
			RiskLevel:   models.RiskHigh,
			Amount:      "8750.00",
			Confidence:  87,
			Status:      models.StatusInvestigating,
			PayPeriod:   "Nov 1-15, 2024",
			HourlyRate:  strPtr("65.00"),
			DetectedAt:  now.Add(-5 * time.Minute),
		},
		{
			EmployeeID:  3,
			Type:        "Rate Variance",
			Description: "15% above standard rate",
			RiskLevel:   models.RiskMedium,
			Amount:      "3200.00",
			Variance:    strPtr("+15%"),
			Confidence:  78,
			Status:      models.StatusResolved,
			PayPeriod:   "Nov 1-15, 2024",
			HourlyRate:  strPtr("55.00"),
			DetectedAt:  now.Add(-8 * time.Minute),
			ResolvedAt:  &resolvedAt,
		},
	}
	for _, a := range anomalies {
		anomaly := a
		anomaly.ID = s.nextAnomalyID
		s.nextAnomalyID++
		s.anomalies[anomaly.ID] = &anomaly
	}

	insights := []models.AiInsight{
		{
			AnomalyID:      1,
			RootCause:      "Project deadline pressure likely caused extended work hours. Similar pattern observed during Q3 product launch.",
			RiskAssessment: "High probability of legitimate overtime. Low risk of fraudulent activity (8%).",
			RecommendedActions: []string{
				"Approve with manager verification",
				"Request manager approval",
				"Investigate further",
			},
			HistoricalMatches: []string{
				"Similar pattern (Q3 2023) - 94% match",
				"Holiday overtime spike - 87% match",
			},
			Confidence: 94,
		},
		{
			AnomalyID:      2,
			RootCause:      "Duplicate payroll entries detected in system. Potential manual entry error during payroll processing.",
			RiskAssessment: "Medium risk of overpayment. System error most likely cause rather than fraud.",
			RecommendedActions: []string{
				"Review payroll entries",
				"Verify with HR department",
				"Implement additional validation",
			},
			HistoricalMatches: []string{
				"Duplicate entry pattern (Oct 2024) - 91% match",
			},
			Confidence: 87,
		},
	}
	for _, i := range insights {
		insight := i
		insight.ID = s.nextInsightID
		s.nextInsightID++
		s.insights[insight.ID] = &insight
	}
}
