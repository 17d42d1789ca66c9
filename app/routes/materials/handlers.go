package materials

import (
	"database/sql"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/prepschoollefy-maker/shidouhoukokusyo-sub001/app/database"
	"github.com/prepschoollefy-maker/shidouhoukokusyo-sub001/app/models"
)

var validate = validator.New()

type materialSaleRequest struct {
	StudentID    string `json:"student_id" validate:"required,uuid"`
	Name         string `json:"name" validate:"required"`
	UnitPrice    int    `json:"unit_price" validate:"required,gt=0"`
	Quantity     int    `json:"quantity" validate:"required,gt=0"`
	BillingYear  int    `json:"billing_year" validate:"required"`
	BillingMonth int    `json:"billing_month" validate:"required,min=1,max=12"`
	SoldOn       string `json:"sold_on" validate:"required"`
	Notes        string `json:"notes"`
}

func buildMaterialSale(req *materialSaleRequest) (*models.MaterialSale, error) {
	soldOn, err := time.ParseInLocation("2006-01-02", req.SoldOn, time.Local)
	if err != nil {
		return nil, fiber.NewError(400, "Invalid sold_on, expected YYYY-MM-DD")
	}

	sale := &models.MaterialSale{
		StudentID:    req.StudentID,
		Name:         req.Name,
		UnitPrice:    req.UnitPrice,
		Quantity:     req.Quantity,
		BillingYear:  req.BillingYear,
		BillingMonth: req.BillingMonth,
		SoldOn:       soldOn,
		Notes:        req.Notes,
	}
	sale.Recalculate()
	return sale, nil
}

func GetMaterialSalesAPI(c *fiber.Ctx, db *sql.DB) error {
	year := c.QueryInt("year", 0)
	month := c.QueryInt("month", 0)
	studentID := c.Query("student_id")

	var sales []*models.MaterialSale
	var err error
	switch {
	case year != 0 && month != 0:
		sales, err = database.GetMaterialSalesForMonth(db, year, month)
	case studentID != "":
		sales, err = database.GetMaterialSalesByStudent(db, studentID)
	default:
		return c.Status(400).JSON(fiber.Map{"error": "Provide year and month, or student_id"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch material sales"})
	}

	return c.JSON(fiber.Map{
		"sales": sales,
		"count": len(sales),
	})
}

func GetMaterialSaleByIDAPI(c *fiber.Ctx, db *sql.DB) error {
	sale, err := database.GetMaterialSaleByID(db, c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Material sale not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch material sale"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    sale,
	})
}

func CreateMaterialSaleAPI(c *fiber.Ctx, db *sql.DB) error {
	var req materialSaleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	sale, err := buildMaterialSale(&req)
	if err != nil {
		return err
	}

	if err := database.CreateMaterialSale(db, sale); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create material sale"})
	}

	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"data":    sale,
	})
}

func UpdateMaterialSaleAPI(c *fiber.Ctx, db *sql.DB) error {
	saleID := c.Params("id")

	if _, err := database.GetMaterialSaleByID(db, saleID); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Material sale not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch material sale"})
	}

	var req materialSaleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	sale, err := buildMaterialSale(&req)
	if err != nil {
		return err
	}
	sale.ID = saleID

	if err := database.UpdateMaterialSale(db, sale); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update material sale"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    sale,
	})
}

func DeleteMaterialSaleAPI(c *fiber.Ctx, db *sql.DB) error {
	if err := database.DeleteMaterialSale(db, c.Params("id")); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete material sale"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Material sale deleted",
	})
}
