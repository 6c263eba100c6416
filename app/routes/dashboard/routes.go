package dashboard

import (
	"github.com/gofiber/fiber/v2"

	"github.com/randyellis-wealthberry/LedgerIQDashboard/app/store"
)

func SetupDashboardRoutes(app *fiber.App, st *store.MemStore) {
	app.Get("/", GetDashboard(st))
	app.Get("/api/dashboard/stats", GetDashboardStatsAPI(st))
}
