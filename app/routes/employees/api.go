package employees

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/randyellis-wealthberry/LedgerIQDashboard/app/models"
	"github.com/randyellis-wealthberry/LedgerIQDashboard/app/store"
)

var validate = validator.New()

// GetEmployeesAPI lists all employees in insertion order.
func GetEmployeesAPI(st *store.MemStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(st.GetAllEmployees())
	}
}

// CreateEmployeeAPI registers a new employee. The external HR code
// must be unique; the store does not enforce that, so it is checked
// here before creating.
func CreateEmployeeAPI(st *store.MemStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var employee models.Employee
		if err := c.BodyParser(&employee); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
		}
		if err := validate.Struct(&employee); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid employee payload", "details": err.Error()})
		}
		if st.GetEmployeeByEmployeeID(employee.EmployeeID) != nil {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Employee ID already exists"})
		}

		created := st.CreateEmployee(employee)
		return c.Status(fiber.StatusCreated).JSON(created)
	}
}
