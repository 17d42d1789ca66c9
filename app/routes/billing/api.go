package billing

import (
	"database/sql"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/prepschoollefy-maker/shidouhoukokusyo-sub001/app/billing"
	"github.com/prepschoollefy-maker/shidouhoukokusyo-sub001/app/database"
	"github.com/prepschoollefy-maker/shidouhoukokusyo-sub001/app/models"
)

func targetMonth(c *fiber.Ctx) (int, int, error) {
	now := time.Now()
	year := c.QueryInt("year", now.Year())
	month := c.QueryInt("month", int(now.Month()))
	if month < 1 || month > 12 {
		return 0, 0, fiber.NewError(400, "month must be between 1 and 12")
	}
	return year, month, nil
}

// GetBillingAPI returns the full billing breakdown for one month. Contract and
// lecture fetch failures abort the request; a material sales failure only
// drops the materials section, so tuition still gets billed when the sales
// table is unavailable.
func GetBillingAPI(c *fiber.Ctx, db *sql.DB) error {
	year, month, err := targetMonth(c)
	if err != nil {
		return err
	}

	contracts, err := database.GetContractsOverlapping(db, year, month)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch contracts"})
	}

	lectures, err := database.GetLecturesForMonth(db, year, month)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch lectures"})
	}

	sales, err := database.GetMaterialSalesForMonth(db, year, month)
	if err != nil {
		log.Printf("billing %d-%02d: material sales unavailable: %v", year, month, err)
		sales = []*models.MaterialSale{}
	}

	result := billing.Aggregate(year, month, contracts, lectures, sales)

	return c.JSON(fiber.Map{
		"success": true,
		"data":    result,
	})
}

// GetBillingSummaryAPI returns the twelve-month contract revenue trend ending
// at the requested month.
func GetBillingSummaryAPI(c *fiber.Ctx, db *sql.DB) error {
	year, month, err := targetMonth(c)
	if err != nil {
		return err
	}

	// The window spans twelve months, so fetch every contract and let the
	// per-month overlap check do the filtering.
	contracts, err := database.GetAllContracts(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch contracts"})
	}

	summaries := billing.TwelveMonthSummary(year, month, contracts)

	return c.JSON(fiber.Map{
		"success": true,
		"data":    summaries,
	})
}
