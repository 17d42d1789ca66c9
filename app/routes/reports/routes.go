package reports

import (
	"github.com/gofiber/fiber/v2"

	"github.com/prepschoollefy-maker/shidouhoukokusyo-sub001/app/config"
	"github.com/prepschoollefy-maker/shidouhoukokusyo-sub001/app/routes/auth"
)

// SetupReportsRoutes sets up the lesson report routes
func SetupReportsRoutes(app *fiber.App) {
	reports := app.Group("/reports")
	reports.Use(auth.AuthMiddleware)

	api := app.Group("/api/reports")
	api.Use(auth.AuthMiddleware)

	// Web routes
	reports.Get("/", func(c *fiber.Ctx) error {
		return c.Render("reports/index", fiber.Map{
			"Title":       "指導報告 - 指導報告書",
			"CurrentPage": "reports",
			"user":        c.Locals("user"),
		})
	})

	// Manual summary run for administrators, outside the monthly schedule
	api.Post("/summaries/generate", auth.RoleMiddleware("admin"), func(c *fiber.Ctx) error {
		return GenerateSummariesAPI(c, config.GetDB())
	})

	// API routes
	api.Get("/student/:studentId", func(c *fiber.Ctx) error {
		return GetStudentReportsAPI(c, config.GetDB())
	})
	api.Get("/lesson/:lessonId", func(c *fiber.Ctx) error {
		return GetReportByLessonAPI(c, config.GetDB())
	})
	api.Get("/:id", func(c *fiber.Ctx) error {
		return GetReportByIDAPI(c, config.GetDB())
	})
	api.Post("/", func(c *fiber.Ctx) error {
		return CreateReportAPI(c, config.GetDB())
	})
	api.Put("/:id", func(c *fiber.Ctx) error {
		return UpdateReportAPI(c, config.GetDB())
	})
	api.Delete("/:id", func(c *fiber.Ctx) error {
		return DeleteReportAPI(c, config.GetDB())
	})
}
