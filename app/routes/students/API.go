package students

import (
	"database/sql"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/prepschoollefy-maker/shidouhoukokusyo-sub001/app/config"
	"github.com/prepschoollefy-maker/shidouhoukokusyo-sub001/app/database"
	"github.com/prepschoollefy-maker/shidouhoukokusyo-sub001/app/models"
)

var validate = validator.New()

type studentRequest struct {
	LastName    string `json:"last_name" validate:"required"`
	FirstName   string `json:"first_name" validate:"required"`
	LastKana    string `json:"last_kana"`
	FirstKana   string `json:"first_kana"`
	Grade       string `json:"grade" validate:"required"`
	School      string `json:"school"`
	Gender      string `json:"gender" validate:"omitempty,oneof=male female other"`
	ParentName  string `json:"parent_name"`
	ParentEmail string `json:"parent_email" validate:"omitempty,email"`
	Phone       string `json:"phone"`
	Notes       string `json:"notes"`
}

func GetStudentsAPI(c *fiber.Ctx) error {
	filters := database.StudentFilters{
		Search: c.Query("search"),
		Grade:  c.Query("grade"),
		Status: c.Query("status"),
		Limit:  c.QueryInt("limit", 0),
		Offset: c.QueryInt("offset", 0),
	}

	students, err := database.GetStudents(config.GetDB(), filters)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch students"})
	}

	return c.JSON(fiber.Map{
		"students": students,
		"count":    len(students),
	})
}

func GetStudentByIDAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	studentID := c.Params("id")

	student, err := database.GetStudentByID(db, studentID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch student"})
	}

	// Attach billing-relevant history for the detail page
	contracts, err := database.GetContractsByStudent(db, studentID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch contracts"})
	}
	student.Contracts = contracts

	sales, err := database.GetMaterialSalesByStudent(db, studentID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch material sales"})
	}
	student.Sales = sales

	return c.JSON(fiber.Map{
		"success": true,
		"data":    student,
	})
}

func CreateStudentAPI(c *fiber.Ctx) error {
	var req studentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	student := &models.Student{
		LastName:    req.LastName,
		FirstName:   req.FirstName,
		LastKana:    req.LastKana,
		FirstKana:   req.FirstKana,
		Grade:       req.Grade,
		School:      req.School,
		Gender:      models.Gender(req.Gender),
		ParentName:  req.ParentName,
		ParentEmail: req.ParentEmail,
		Phone:       req.Phone,
		Notes:       req.Notes,
		IsActive:    true,
	}

	if err := database.CreateStudent(config.GetDB(), student); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create student"})
	}

	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"data":    student,
	})
}

func UpdateStudentAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	studentID := c.Params("id")

	existing, err := database.GetStudentByID(db, studentID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch student"})
	}

	var req studentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	existing.LastName = req.LastName
	existing.FirstName = req.FirstName
	existing.LastKana = req.LastKana
	existing.FirstKana = req.FirstKana
	existing.Grade = req.Grade
	existing.School = req.School
	existing.Gender = models.Gender(req.Gender)
	existing.ParentName = req.ParentName
	existing.ParentEmail = req.ParentEmail
	existing.Phone = req.Phone
	existing.Notes = req.Notes

	if err := database.UpdateStudent(db, existing); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update student"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    existing,
	})
}

// DeleteStudentAPI deactivates the student instead of removing the row so
// past billing months stay reproducible.
func DeleteStudentAPI(c *fiber.Ctx) error {
	studentID := c.Params("id")

	if err := database.DeactivateStudent(config.GetDB(), studentID); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to deactivate student"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Student deactivated",
	})
}
