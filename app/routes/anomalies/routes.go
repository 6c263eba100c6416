package anomalies

import (
	"github.com/gofiber/fiber/v2"

	"github.com/randyellis-wealthberry/LedgerIQDashboard/app/store"
)

func SetupAnomaliesRoutes(app *fiber.App, st *store.MemStore) {
	api := app.Group("/api/anomalies")
	api.Get("/", GetAnomaliesAPI(st))
	api.Post("/", CreateAnomalyAPI(st))
	api.Get("/:id", GetAnomalyAPI(st))
	api.Patch("/:id/status", UpdateAnomalyStatusAPI(st))
}
