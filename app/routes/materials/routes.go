package materials

import (
	"github.com/gofiber/fiber/v2"

	"github.com/prepschoollefy-maker/shidouhoukokusyo-sub001/app/config"
	"github.com/prepschoollefy-maker/shidouhoukokusyo-sub001/app/routes/auth"
)

// SetupMaterialsRoutes sets up the material sales routes
func SetupMaterialsRoutes(app *fiber.App) {
	materials := app.Group("/materials")
	materials.Use(auth.AuthMiddleware)

	materialsAPI := app.Group("/api/materials")
	materialsAPI.Use(auth.AuthMiddleware)

	// Web routes
	materials.Get("/", func(c *fiber.Ctx) error {
		return c.Render("materials/index", fiber.Map{
			"Title":       "教材販売 - 指導報告書",
			"CurrentPage": "materials",
			"user":        c.Locals("user"),
		})
	})

	// API routes
	materialsAPI.Get("/", func(c *fiber.Ctx) error {
		return GetMaterialSalesAPI(c, config.GetDB())
	})

	materialsAPI.Get("/:id", func(c *fiber.Ctx) error {
		return GetMaterialSaleByIDAPI(c, config.GetDB())
	})

	materialsAPI.Post("/", func(c *fiber.Ctx) error {
		return CreateMaterialSaleAPI(c, config.GetDB())
	})

	materialsAPI.Put("/:id", func(c *fiber.Ctx) error {
		return UpdateMaterialSaleAPI(c, config.GetDB())
	})

	materialsAPI.Delete("/:id", func(c *fiber.Ctx) error {
		return DeleteMaterialSaleAPI(c, config.GetDB())
	})
}
