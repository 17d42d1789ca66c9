package reports

import (
	"database/sql"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/prepschoollefy-maker/shidouhoukokusyo-sub001/app/database"
	"github.com/prepschoollefy-maker/shidouhoukokusyo-sub001/app/models"
	"github.com/prepschoollefy-maker/shidouhoukokusyo-sub001/app/services"
)

var validate = validator.New()

type reportRequest struct {
	LessonID string `json:"lesson_id" validate:"required,uuid"`
	Content  string `json:"content" validate:"required"`
	Homework string `json:"homework"`
	Progress string `json:"progress"`
}

func GetStudentReportsAPI(c *fiber.Ctx, db *sql.DB) error {
	now := time.Now()
	year := c.QueryInt("year", now.Year())
	month := c.QueryInt("month", int(now.Month()))
	if month < 1 || month > 12 {
		return c.Status(400).JSON(fiber.Map{"error": "month must be between 1 and 12"})
	}

	reports, err := database.GetReportsForStudentMonth(db, c.Params("studentId"), year, month)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch reports"})
	}

	return c.JSON(fiber.Map{
		"reports": reports,
		"count":   len(reports),
	})
}

func GetReportByLessonAPI(c *fiber.Ctx, db *sql.DB) error {
	report, err := database.GetReportByLessonID(db, c.Params("lessonId"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Report not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch report"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    report,
	})
}

func GetReportByIDAPI(c *fiber.Ctx, db *sql.DB) error {
	report, err := database.GetReportByID(db, c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Report not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch report"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    report,
	})
}

func CreateReportAPI(c *fiber.Ctx, db *sql.DB) error {
	var req reportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	// One report per lesson
	if _, err := database.GetReportByLessonID(db, req.LessonID); err == nil {
		return c.Status(409).JSON(fiber.Map{"error": "This lesson already has a report"})
	} else if err != sql.ErrNoRows {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to check existing report"})
	}

	report := &models.Report{
		LessonID:  req.LessonID,
		TeacherID: c.Locals("user_id").(string),
		Content:   req.Content,
		Homework:  req.Homework,
		Progress:  req.Progress,
	}

	if err := database.CreateReport(db, report); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create report"})
	}

	// A reported lesson counts as held
	if err := database.UpdateLessonStatus(db, req.LessonID, models.LessonDone); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update lesson status"})
	}

	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"data":    report,
	})
}

func UpdateReportAPI(c *fiber.Ctx, db *sql.DB) error {
	reportID := c.Params("id")

	existing, err := database.GetReportByID(db, reportID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Report not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch report"})
	}

	var req reportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	existing.Content = req.Content
	existing.Homework = req.Homework
	existing.Progress = req.Progress

	if err := database.UpdateReport(db, existing); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update report"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    existing,
	})
}

func DeleteReportAPI(c *fiber.Ctx, db *sql.DB) error {
	if err := database.DeleteReport(db, c.Params("id")); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete report"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Report deleted",
	})
}

// GenerateSummariesAPI runs the monthly parent summary batch on demand.
func GenerateSummariesAPI(c *fiber.Ctx, db *sql.DB) error {
	now := time.Now()
	year := c.QueryInt("year", now.Year())
	month := c.QueryInt("month", int(now.Month()))
	if month < 1 || month > 12 {
		return c.Status(400).JSON(fiber.Map{"error": "month must be between 1 and 12"})
	}

	if err := services.GenerateMonthlySummaries(db, year, month); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Summary generation completed",
	})
}
