package main

import (
	"encoding/json"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/template/html/v2"

	"github.com/prepschoollefy-maker/shidouhoukokusyo-sub001/app/config"
	"github.com/prepschoollefy-maker/shidouhoukokusyo-sub001/app/database"
	"github.com/prepschoollefy-maker/shidouhoukokusyo-sub001/app/routes/auth"
	"github.com/prepschoollefy-maker/shidouhoukokusyo-sub001/app/routes/billing"
	"github.com/prepschoollefy-maker/shidouhoukokusyo-sub001/app/routes/contracts"
	"github.com/prepschoollefy-maker/shidouhoukokusyo-sub001/app/routes/dashboard"
	"github.com/prepschoollefy-maker/shidouhoukokusyo-sub001/app/routes/lectures"
	"github.com/prepschoollefy-maker/shidouhoukokusyo-sub001/app/routes/materials"
	"github.com/prepschoollefy-maker/shidouhoukokusyo-sub001/app/routes/reports"
	"github.com/prepschoollefy-maker/shidouhoukokusyo-sub001/app/routes/schedules"
	"github.com/prepschoollefy-maker/shidouhoukokusyo-sub001/app/routes/students"
	"github.com/prepschoollefy-maker/shidouhoukokusyo-sub001/app/routes/teachers"
	"github.com/prepschoollefy-maker/shidouhoukokusyo-sub001/app/services"
)

// customErrorHandler handles HTTP errors with custom templates
func customErrorHandler(c *fiber.Ctx, err error) error {
	// Status code defaults to 500
	code := fiber.StatusInternalServerError

	// Retrieve the custom status code if it's a *fiber.Error
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	// Check if this is an API request
	if len(c.Path()) >= 4 && c.Path()[:4] == "/api" {
		return c.Status(code).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"code":    code,
		})
	}

	// Handle different error codes for web requests
	switch code {
	case 404:
		return c.Status(404).Render("404", fiber.Map{
			"Title":       "ページが見つかりません - 指導報告書",
			"CurrentPage": "",
		})
	case 403:
		return c.Status(403).Render("error", fiber.Map{
			"Title":        "アクセス禁止 - 指導報告書",
			"CurrentPage":  "",
			"ErrorCode":    "403",
			"ErrorTitle":   "Access Forbidden",
			"ErrorMessage": "You don't have permission to access this resource.",
		})
	case 401:
		return c.Status(401).Render("error", fiber.Map{
			"Title":        "ログインが必要です - 指導報告書",
			"CurrentPage":  "",
			"ErrorCode":    "401",
			"ErrorTitle":   "Unauthorized",
			"ErrorMessage": "Please log in to access this resource.",
		})
	case 500:
		return c.Status(500).Render("500", fiber.Map{
			"Title":        "サーバーエラー - 指導報告書",
			"CurrentPage":  "",
			"ErrorCode":    "500",
			"ErrorTitle":   "Internal Server Error",
			"ErrorMessage": "We're experiencing technical difficulties. Please try again later.",
			"ShowRetry":    true,
		})
	default:
		return c.Status(code).Render("error", fiber.Map{
			"Title":        "エラー - 指導報告書",
			"CurrentPage":  "",
			"ErrorCode":    code,
			"ErrorTitle":   "An Error Occurred",
			"ErrorMessage": err.Error(),
		})
	}
}

func main() {
	// Billing months are calendar months in Japan Standard Time
	loc, err := time.LoadLocation("Asia/Tokyo")
	if err != nil {
		log.Printf("Warning: Failed to load Asia/Tokyo location, falling back to UTC+9: %v", err)
		time.Local = time.FixedZone("JST", 9*60*60)
	} else {
		time.Local = loc
	}
	log.Printf("Application time zone set to: %s", time.Local.String())

	// Load env and initialize database
	config.Init()
	defer config.GetDB().Close()

	// Run database migrations
	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Gemini client for parent summaries
	if err := config.InitGemini(); err != nil {
		log.Printf("Warning: %v; monthly summaries disabled", err)
	}

	// Start background scheduler
	services.StartScheduler(config.GetDB())

	// Initialize template engine
	engine := html.New("./app/templates", ".html")
	engine.AddFunc("json", func(v interface{}) (string, error) {
		b, err := json.Marshal(v)
		return string(b), err
	})
	engine.Reload(true) // Enable template reloading for development
	engine.Debug(false) // Disable debug mode to reduce verbose logs

	// Create Fiber app
	app := fiber.New(fiber.Config{
		Views:             engine,
		ViewsLayout:       "layouts/main",
		PassLocalsToViews: true,
		ErrorHandler:      customErrorHandler,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// Static files
	app.Static("/static", "./static")
	app.Get("/favicon.ico", func(c *fiber.Ctx) error {
		return c.SendFile("./static/favicon.ico")
	})

	// Routes
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/auth/login")
	})

	// Setup auth routes
	auth.SetupAuthRoutes(app)

	// Setup dashboard routes
	dashboard.SetupDashboardRoutes(app)

	// Setup students routes
	students.SetupStudentsRoutes(app)

	// Setup teachers routes
	teachers.SetupTeachersRoutes(app)

	// Setup contracts routes
	contracts.SetupContractsRoutes(app)

	// Setup lectures routes
	lectures.SetupLecturesRoutes(app)

	// Setup materials routes
	materials.SetupMaterialsRoutes(app)

	// Setup billing routes
	billing.SetupBillingRoutes(app)

	// Setup schedules routes
	schedules.SetupSchedulesRoutes(app)

	// Setup reports routes
	reports.SetupReportsRoutes(app)

	// Catch-all route for 404 errors (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Page not found")
	})

	// Start server
	log.Println("Server starting on :8080")
	log.Fatal(app.Listen(":8080"))
}
