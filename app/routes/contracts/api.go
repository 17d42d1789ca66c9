package contracts

import (
	"database/sql"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/prepschoollefy-maker/shidouhoukokusyo-sub001/app/config"
	"github.com/prepschoollefy-maker/shidouhoukokusyo-sub001/app/database"
	"github.com/prepschoollefy-maker/shidouhoukokusyo-sub001/app/models"
	"github.com/prepschoollefy-maker/shidouhoukokusyo-sub001/app/pricing"
)

var validate = validator.New()

type courseRequest struct {
	Course        string `json:"course" validate:"required"`
	WeeklyLessons int    `json:"weekly_lessons" validate:"required,gt=0"`
}

type contractRequest struct {
	StudentID string          `json:"student_id" validate:"required,uuid"`
	StartDate string          `json:"start_date" validate:"required"`
	EndDate   string          `json:"end_date" validate:"required"`
	Grade     string          `json:"grade" validate:"required"`
	Campaign  string          `json:"campaign"`
	Notes     string          `json:"notes"`
	Courses   []courseRequest `json:"courses" validate:"required,min=1,dive"`
}

// buildContract turns a request into a contract with all derived amounts
// recomputed from the price schedule. Client-supplied amounts are ignored.
func buildContract(req *contractRequest) (*models.Contract, error) {
	startDate, err := time.ParseInLocation("2006-01-02", req.StartDate, time.Local)
	if err != nil {
		return nil, fiber.NewError(400, "Invalid start_date, expected YYYY-MM-DD")
	}
	endDate, err := time.ParseInLocation("2006-01-02", req.EndDate, time.Local)
	if err != nil {
		return nil, fiber.NewError(400, "Invalid end_date, expected YYYY-MM-DD")
	}
	if endDate.Before(startDate) {
		return nil, fiber.NewError(400, "end_date must not be before start_date")
	}

	loads := make([]pricing.CourseLoad, len(req.Courses))
	courses := make([]models.ContractCourse, len(req.Courses))
	for i, cr := range req.Courses {
		loads[i] = pricing.CourseLoad{Course: cr.Course, WeeklyLessons: cr.WeeklyLessons}
		courses[i] = models.ContractCourse{
			Position:      i,
			Course:        cr.Course,
			WeeklyLessons: cr.WeeklyLessons,
		}
	}

	schedule := config.GetPricing()
	monthly, err := schedule.MonthlyAmount(req.Grade, loads)
	if err != nil {
		return nil, fiber.NewError(400, err.Error())
	}

	discount := 0
	if req.Campaign == pricing.CampaignSpring {
		if discount, err = schedule.CampaignDiscount(req.Grade, loads); err != nil {
			return nil, fiber.NewError(400, err.Error())
		}
	}

	contract := &models.Contract{
		StudentID:        req.StudentID,
		StartDate:        startDate,
		EndDate:          endDate,
		Grade:            req.Grade,
		MonthlyAmount:    monthly,
		EnrollmentFee:    schedule.EnrollmentFee(req.Campaign),
		CampaignDiscount: discount,
		Notes:            req.Notes,
		Courses:          courses,
	}
	if req.Campaign != "" {
		contract.Campaign = &req.Campaign
	}
	return contract, nil
}

func GetContractsAPI(c *fiber.Ctx, db *sql.DB) error {
	studentID := c.Query("student_id")

	var contracts []*models.Contract
	var err error
	if studentID != "" {
		contracts, err = database.GetContractsByStudent(db, studentID)
	} else {
		contracts, err = database.GetAllContracts(db)
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch contracts"})
	}

	return c.JSON(fiber.Map{
		"contracts": contracts,
		"count":     len(contracts),
	})
}

func GetContractByIDAPI(c *fiber.Ctx, db *sql.DB) error {
	contract, err := database.GetContractByID(db, c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Contract not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch contract"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    contract,
	})
}

func CreateContractAPI(c *fiber.Ctx, db *sql.DB) error {
	var req contractRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	contract, err := buildContract(&req)
	if err != nil {
		return err
	}

	if err := database.CreateContract(db, contract); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create contract"})
	}

	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"data":    contract,
	})
}

func UpdateContractAPI(c *fiber.Ctx, db *sql.DB) error {
	contractID := c.Params("id")

	if _, err := database.GetContractByID(db, contractID); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Contract not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch contract"})
	}

	var req contractRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	contract, err := buildContract(&req)
	if err != nil {
		return err
	}
	contract.ID = contractID

	if err := database.UpdateContract(db, contract); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update contract"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    contract,
	})
}

func DeleteContractAPI(c *fiber.Ctx, db *sql.DB) error {
	if err := database.DeleteContract(db, c.Params("id")); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete contract"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Contract deleted",
	})
}

// PreviewContractAPI computes the derived amounts for a contract form without
// persisting anything.
func PreviewContractAPI(c *fiber.Ctx) error {
	var req contractRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	contract, err := buildContract(&req)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"monthly_amount":    contract.MonthlyAmount,
			"enrollment_fee":    contract.EnrollmentFee,
			"campaign_discount": contract.CampaignDiscount,
		},
	})
}
