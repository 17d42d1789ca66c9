package schedules

import (
	"github.com/gofiber/fiber/v2"

	"github.com/prepschoollefy-maker/shidouhoukokusyo-sub001/app/config"
	"github.com/prepschoollefy-maker/shidouhoukokusyo-sub001/app/routes/auth"
)

// SetupSchedulesRoutes sets up the lesson schedule routes
func SetupSchedulesRoutes(app *fiber.App) {
	schedules := app.Group("/schedules")
	schedules.Use(auth.AuthMiddleware)

	api := app.Group("/api/schedules")
	api.Use(auth.AuthMiddleware)

	// Web routes
	schedules.Get("/", func(c *fiber.Ctx) error {
		return c.Render("schedules/index", fiber.Map{
			"Title":       "スケジュール - 指導報告書",
			"CurrentPage": "schedules",
			"user":        c.Locals("user"),
		})
	})

	// Template API routes
	api.Get("/templates", func(c *fiber.Ctx) error {
		return GetLessonTemplatesAPI(c, config.GetDB())
	})
	api.Post("/templates", func(c *fiber.Ctx) error {
		return CreateLessonTemplateAPI(c, config.GetDB())
	})
	api.Delete("/templates/:id", func(c *fiber.Ctx) error {
		return DeleteLessonTemplateAPI(c, config.GetDB())
	})

	// Lesson API routes
	api.Get("/lessons", func(c *fiber.Ctx) error {
		return GetLessonsAPI(c, config.GetDB())
	})
	api.Post("/lessons", func(c *fiber.Ctx) error {
		return CreateLessonAPI(c, config.GetDB())
	})
	api.Put("/lessons/:id/status", func(c *fiber.Ctx) error {
		return UpdateLessonStatusAPI(c, config.GetDB())
	})
	api.Delete("/lessons/:id", func(c *fiber.Ctx) error {
		return DeleteLessonAPI(c, config.GetDB())
	})

	// Month generation from templates
	api.Post("/generate", func(c *fiber.Ctx) error {
		return GenerateMonthAPI(c, config.GetDB())
	})

	// Closed day API routes
	api.Get("/closed-days", func(c *fiber.Ctx) error {
		return GetClosedDaysAPI(c, config.GetDB())
	})
	api.Post("/closed-days", func(c *fiber.Ctx) error {
		return CreateClosedDayAPI(c, config.GetDB())
	})
	api.Delete("/closed-days/:id", func(c *fiber.Ctx) error {
		return DeleteClosedDayAPI(c, config.GetDB())
	})
}
