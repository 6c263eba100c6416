package dashboard

import (
	"github.com/gofiber/fiber/v2"

	"github.com/randyellis-wealthberry/LedgerIQDashboard/app/store"
)

// GetDashboard renders the server-side status dashboard page.
func GetDashboard(st *store.MemStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		stats := st.GetDashboardStats()
		return c.Render("dashboard/index", fiber.Map{
			"Title":       "LedgerIQ - Payroll Anomaly Monitor",
			"CurrentPage": "dashboard",
			"Stats":       stats,
			"Anomalies":   st.GetAllAnomalies(),
		})
	}
}

// GetDashboardStatsAPI returns dashboard statistics as JSON.
func GetDashboardStatsAPI(st *store.MemStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(st.GetDashboardStats())
	}
}
