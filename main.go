package main

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/template/html/v2"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/randyellis-wealthberry/LedgerIQDashboard/app/config"
	"github.com/randyellis-wealthberry/LedgerIQDashboard/app/logging"
	"github.com/randyellis-wealthberry/LedgerIQDashboard/app/models"
	"github.com/randyellis-wealthberry/LedgerIQDashboard/app/routes/anomalies"
	"github.com/randyellis-wealthberry/LedgerIQDashboard/app/routes/dashboard"
	"github.com/randyellis-wealthberry/LedgerIQDashboard/app/routes/employees"
	"github.com/randyellis-wealthberry/LedgerIQDashboard/app/store"
)

// errorHandler renders JSON errors for API requests and an error page
// for web requests.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	if len(c.Path()) >= 4 && c.Path()[:4] == "/api" {
		return c.Status(code).JSON(fiber.Map{
			"error": err.Error(),
			"code":  code,
		})
	}

	if code == fiber.StatusNotFound {
		return c.Status(code).Render("404", fiber.Map{
			"Title": "Page Not Found - LedgerIQ",
		})
	}
	return c.Status(code).Render("error", fiber.Map{
		"Title":        "Error - LedgerIQ",
		"ErrorCode":    code,
		"ErrorMessage": err.Error(),
	})
}

// requestID tags every request with an id, echoes it in the response
// header and stashes a request-scoped logger in locals.
func requestID(base *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("X-Request-ID", id)
		c.Locals("logger", logging.WithRequestID(base, id))
		return c.Next()
	}
}

// bootstrapAdmin seeds one user from ADMIN_USERNAME/ADMIN_PASSWORD so
// a fresh deployment has a known account. The store keeps passwords
// opaque; hashing happens here at the boundary.
func bootstrapAdmin(cfg *config.Config, st *store.MemStore, log *zap.Logger) {
	if cfg.AdminUsername == "" || cfg.AdminPassword == "" {
		return
	}
	if st.GetUserByUsername(cfg.AdminUsername) != nil {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Error("failed to hash admin password", zap.Error(err))
		return
	}
	user := st.CreateUser(models.User{Username: cfg.AdminUsername, Password: string(hash)})
	log.Info("bootstrap admin user created", zap.String("username", user.Username), zap.Int("id", user.ID))
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	log, err := logging.NewLogger(cfg.ServiceName)
	if err != nil {
		panic(fmt.Sprintf("failed to create logger: %v", err))
	}
	defer log.Sync()

	// One store instance for the process lifetime, seeded with the
	// demo data set and passed to every route group by handle.
	st := store.NewSeeded()
	bootstrapAdmin(cfg, st, log)

	engine := html.New("./app/templates", ".html")

	app := fiber.New(fiber.Config{
		Views:        engine,
		ViewsLayout:  "layouts/main",
		ErrorHandler: errorHandler,
	})

	app.Use(logger.New())
	app.Use(cors.New())
	app.Use(requestID(log))

	dashboard.SetupDashboardRoutes(app, st)
	anomalies.SetupAnomaliesRoutes(app, st)
	employees.SetupEmployeesRoutes(app, st)

	// Catch-all route for 404 errors (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Page not found")
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	log.Info("server starting", zap.String("addr", addr))
	if err := app.Listen(addr); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
