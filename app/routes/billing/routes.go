package billing

import (
	"github.com/gofiber/fiber/v2"

	"github.com/prepschoollefy-maker/shidouhoukokusyo-sub001/app/config"
	"github.com/prepschoollefy-maker/shidouhoukokusyo-sub001/app/routes/auth"
)

// SetupBillingRoutes sets up the monthly billing routes
func SetupBillingRoutes(app *fiber.App) {
	billing := app.Group("/billing")
	billing.Use(auth.AuthMiddleware)

	billingAPI := app.Group("/api/billing")
	billingAPI.Use(auth.AuthMiddleware)

	// Web routes
	billing.Get("/", func(c *fiber.Ctx) error {
		return c.Render("billing/index", fiber.Map{
			"Title":       "請求管理 - 指導報告書",
			"CurrentPage": "billing",
			"user":        c.Locals("user"),
		})
	})

	// API routes
	billingAPI.Get("/", func(c *fiber.Ctx) error {
		return GetBillingAPI(c, config.GetDB())
	})

	billingAPI.Get("/summary", func(c *fiber.Ctx) error {
		return GetBillingSummaryAPI(c, config.GetDB())
	})
}
