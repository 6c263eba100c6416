package anomalies

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/randyellis-wealthberry/LedgerIQDashboard/app/models"
	"github.com/randyellis-wealthberry/LedgerIQDashboard/app/store"
)

var validate = validator.New()

// Filter dropdowns on the dashboard send these sentinels instead of
// omitting the query parameter.
const (
	allRiskLevels  = "All Risk Levels"
	allDepartments = "All Departments"
)

type updateStatusRequest struct {
	Status models.AnomalyStatus `json:"status" validate:"required,oneof='Under Review' 'Investigating' 'Resolved'"`
}

// GetAnomaliesAPI lists anomalies joined with their employees, most
// recently detected first. Supports riskLevel and department query
// filters; riskLevel wins when both are present.
func GetAnomaliesAPI(st *store.MemStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		riskLevel := c.Query("riskLevel")
		department := c.Query("department")

		var result []*models.AnomalyWithEmployee
		if riskLevel != "" && riskLevel != allRiskLevels {
			result = st.GetAnomaliesByRiskLevel(models.RiskLevel(riskLevel))
		} else if department != "" && department != allDepartments {
			result = st.GetAnomaliesByDepartment(department)
		} else {
			result = st.GetAllAnomalies()
		}

		return c.JSON(result)
	}
}

// GetAnomalyAPI returns a single anomaly with its employee and
// attached AI insight.
func GetAnomalyAPI(st *store.MemStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid anomaly ID"})
		}

		anomaly := st.GetAnomalyWithInsights(id)
		if anomaly == nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Anomaly not found"})
		}

		return c.JSON(anomaly)
	}
}

// UpdateAnomalyStatusAPI moves an anomaly to a new review status. The
// status value is validated here; the store accepts whatever it is
// given.
func UpdateAnomalyStatusAPI(st *store.MemStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid anomaly ID"})
		}

		var req updateStatusRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
		}
		if err := validate.Struct(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid status value"})
		}

		updated := st.UpdateAnomalyStatus(id, req.Status)
		if updated == nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Anomaly not found"})
		}

		return c.JSON(updated)
	}
}

// CreateAnomalyAPI records a new anomaly. The referenced employee must
// exist; the store itself would happily accept a dangling reference
// and then silently drop the anomaly from every joined view.
func CreateAnomalyAPI(st *store.MemStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var anomaly models.Anomaly
		if err := c.BodyParser(&anomaly); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
		}
		if err := validate.Struct(&anomaly); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid anomaly payload", "details": err.Error()})
		}
		if anomaly.Status != "" {
			if err := validate.Var(anomaly.Status, "oneof='Under Review' 'Investigating' 'Resolved'"); err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid status value"})
			}
		}
		if st.GetEmployee(anomaly.EmployeeID) == nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unknown employee"})
		}

		created := st.CreateAnomaly(anomaly)
		return c.Status(fiber.StatusCreated).JSON(created)
	}
}
