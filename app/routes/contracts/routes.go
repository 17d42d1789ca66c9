package contracts

import (
	"github.com/gofiber/fiber/v2"

	"github.com/prepschoollefy-maker/shidouhoukokusyo-sub001/app/config"
	"github.com/prepschoollefy-maker/shidouhoukokusyo-sub001/app/routes/auth"
)

// SetupContractsRoutes sets up the contracts routes
func SetupContractsRoutes(app *fiber.App) {
	contracts := app.Group("/contracts")
	contracts.Use(auth.AuthMiddleware)

	contractsAPI := app.Group("/api/contracts")
	contractsAPI.Use(auth.AuthMiddleware)

	// Web routes
	contracts.Get("/", func(c *fiber.Ctx) error {
		return c.Render("contracts/index", fiber.Map{
			"Title":       "契約管理 - 指導報告書",
			"CurrentPage": "contracts",
			"user":        c.Locals("user"),
		})
	})

	// API routes
	contractsAPI.Get("/", func(c *fiber.Ctx) error {
		return GetContractsAPI(c, config.GetDB())
	})

	contractsAPI.Get("/:id", func(c *fiber.Ctx) error {
		return GetContractByIDAPI(c, config.GetDB())
	})

	contractsAPI.Post("/", func(c *fiber.Ctx) error {
		return CreateContractAPI(c, config.GetDB())
	})

	contractsAPI.Put("/:id", func(c *fiber.Ctx) error {
		return UpdateContractAPI(c, config.GetDB())
	})

	contractsAPI.Delete("/:id", func(c *fiber.Ctx) error {
		return DeleteContractAPI(c, config.GetDB())
	})

	// Price preview for the contract form, no row is written
	contractsAPI.Post("/preview", func(c *fiber.Ctx) error {
		return PreviewContractAPI(c)
	})
}
