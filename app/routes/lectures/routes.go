package lectures

import (
	"github.com/gofiber/fiber/v2"

	"github.com/prepschoollefy-maker/shidouhoukokusyo-sub001/app/config"
	"github.com/prepschoollefy-maker/shidouhoukokusyo-sub001/app/routes/auth"
)

// SetupLecturesRoutes sets up the seasonal lecture routes
func SetupLecturesRoutes(app *fiber.App) {
	lectures := app.Group("/lectures")
	lectures.Use(auth.AuthMiddleware)

	lecturesAPI := app.Group("/api/lectures")
	lecturesAPI.Use(auth.AuthMiddleware)

	// Web routes
	lectures.Get("/", func(c *fiber.Ctx) error {
		return c.Render("lectures/index", fiber.Map{
			"Title":       "講習管理 - 指導報告書",
			"CurrentPage": "lectures",
			"user":        c.Locals("user"),
		})
	})

	// API routes
	lecturesAPI.Get("/", func(c *fiber.Ctx) error {
		return GetLecturesAPI(c, config.GetDB())
	})

	lecturesAPI.Get("/:id", func(c *fiber.Ctx) error {
		return GetLectureByIDAPI(c, config.GetDB())
	})

	lecturesAPI.Post("/", func(c *fiber.Ctx) error {
		return CreateLectureAPI(c, config.GetDB())
	})

	lecturesAPI.Put("/:id", func(c *fiber.Ctx) error {
		return UpdateLectureAPI(c, config.GetDB())
	})

	lecturesAPI.Delete("/:id", func(c *fiber.Ctx) error {
		return DeleteLectureAPI(c, config.GetDB())
	})
}
