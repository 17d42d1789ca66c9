package dashboard

import (
	"database/sql"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/prepschoollefy-maker/shidouhoukokusyo-sub001/app/billing"
	"github.com/prepschoollefy-maker/shidouhoukokusyo-sub001/app/config"
	"github.com/prepschoollefy-maker/shidouhoukokusyo-sub001/app/database"
	"github.com/prepschoollefy-maker/shidouhoukokusyo-sub001/app/models"
)

// GetDashboard handles dashboard page
func GetDashboard(c *fiber.Ctx) error {
	// Get user from context (set by auth middleware)
	user := c.Locals("user").(*models.User)

	c.Locals("Title", "ダッシュボード")
	return c.Render("dashboard/index", fiber.Map{
		"Title":       "ダッシュボード - 指導報告書",
		"CurrentPage": "dashboard",
		"FirstName":   user.FirstName,
		"LastName":    user.LastName,
		"Email":       user.Email,
		"user":        user,
	})
}

// GetDashboardStatsAPI returns dashboard statistics as JSON
func GetDashboardStatsAPI(c *fiber.Ctx) error {
	// Get database connection
	db := config.GetDB()

	// Get dashboard statistics
	stats, err := database.GetDashboardStats(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"error":   "Failed to fetch dashboard statistics",
			"details": err.Error(),
		})
	}

	// Current-month contract revenue from the billing aggregator. A fetch
	// failure leaves the figure at zero but must not look like zero revenue.
	now := time.Now()
	if contracts, err := database.GetContractsOverlapping(db, now.Year(), int(now.Month())); err != nil {
		log.Printf("dashboard %d-%02d: contracts unavailable, monthly revenue omitted: %v",
			now.Year(), int(now.Month()), err)
	} else {
		result := billing.Aggregate(now.Year(), int(now.Month()), contracts, nil, nil)
		stats.MonthlyRevenue = result.ContractTotal
	}

	// Return statistics as JSON
	return c.JSON(fiber.Map{
		"success": true,
		"data":    stats,
	})
}

// GetDashboardTrendAPI returns the twelve-month contract revenue trend for
// the dashboard chart, ending at the current month.
func GetDashboardTrendAPI(c *fiber.Ctx, db *sql.DB) error {
	now := time.Now()

	contracts, err := database.GetAllContracts(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch contracts"})
	}

	trend := billing.TwelveMonthSummary(now.Year(), int(now.Month()), contracts)

	return c.JSON(fiber.Map{
		"success": true,
		"data":    trend,
	})
}
