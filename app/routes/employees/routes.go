package employees

import (
	"github.com/gofiber/fiber/v2"

	"github.com/randyellis-wealthberry/LedgerIQDashboard/app/store"
)

func SetupEmployeesRoutes(app *fiber.App, st *store.MemStore) {
	api := app.Group("/api/employees")
	api.Get("/", GetEmployeesAPI(st))
	api.Post("/", CreateEmployeeAPI(st))
}
