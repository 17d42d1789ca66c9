package schedules

import (
	"database/sql"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/prepschoollefy-maker/shidouhoukokusyo-sub001/app/database"
	"github.com/prepschoollefy-maker/shidouhoukokusyo-sub001/app/models"
)

var validate = validator.New()

type templateRequest struct {
	StudentID string `json:"student_id" validate:"required,uuid"`
	TeacherID string `json:"teacher_id" validate:"omitempty,uuid"`
	DayOfWeek string `json:"day_of_week" validate:"required"`
	StartTime string `json:"start_time" validate:"required"`
	Course    string `json:"course" validate:"required"`
}

func GetLessonTemplatesAPI(c *fiber.Ctx, db *sql.DB) error {
	templates, err := database.GetLessonTemplates(db, c.Query("student_id"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch lesson templates"})
	}

	return c.JSON(fiber.Map{
		"templates": templates,
		"count":     len(templates),
	})
}

func CreateLessonTemplateAPI(c *fiber.Ctx, db *sql.DB) error {
	var req templateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	if !ValidateDayOfWeek(req.DayOfWeek) {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid day_of_week"})
	}
	if !ValidateTimeFormat(req.StartTime) {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid start_time, expected HH:MM"})
	}

	tpl := &models.LessonTemplate{
		StudentID: req.StudentID,
		DayOfWeek: models.DayOfWeek(req.DayOfWeek),
		StartTime: req.StartTime,
		Course:    req.Course,
		IsActive:  true,
	}
	if req.TeacherID != "" {
		tpl.TeacherID = &req.TeacherID
	}

	if err := database.CreateLessonTemplate(db, tpl); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create lesson template"})
	}

	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"data":    tpl,
	})
}

func DeleteLessonTemplateAPI(c *fiber.Ctx, db *sql.DB) error {
	if err := database.DeleteLessonTemplate(db, c.Params("id")); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete lesson template"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Lesson template deleted",
	})
}

func GetLessonsAPI(c *fiber.Ctx, db *sql.DB) error {
	now := time.Now()
	year := c.QueryInt("year", now.Year())
	month := c.QueryInt("month", int(now.Month()))
	if month < 1 || month > 12 {
		return c.Status(400).JSON(fiber.Map{"error": "month must be between 1 and 12"})
	}

	lessons, err := database.GetLessonsForMonth(db, year, month)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch lessons"})
	}

	return c.JSON(fiber.Map{
		"lessons": lessons,
		"count":   len(lessons),
	})
}

func CreateLessonAPI(c *fiber.Ctx, db *sql.DB) error {
	type lessonRequest struct {
		StudentID string `json:"student_id" validate:"required,uuid"`
		TeacherID string `json:"teacher_id" validate:"omitempty,uuid"`
		Date      string `json:"date" validate:"required"`
		StartTime string `json:"start_time" validate:"required"`
		Course    string `json:"course" validate:"required"`
	}

	var req lessonRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	if !ValidateTimeFormat(req.StartTime) {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid start_time, expected HH:MM"})
	}

	date, err := time.ParseInLocation("2006-01-02", req.Date, time.Local)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid date, expected YYYY-MM-DD"})
	}

	exists, err := database.LessonExists(db, req.StudentID, date, req.StartTime)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to check lesson slot"})
	}
	if exists {
		return c.Status(409).JSON(fiber.Map{"error": "A lesson already exists in this slot"})
	}

	lesson := &models.Lesson{
		StudentID: req.StudentID,
		Date:      date,
		StartTime: req.StartTime,
		Course:    req.Course,
		Status:    models.LessonScheduled,
	}
	if req.TeacherID != "" {
		lesson.TeacherID = &req.TeacherID
	}

	if err := database.CreateLesson(db, lesson); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create lesson"})
	}

	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"data":    lesson,
	})
}

func UpdateLessonStatusAPI(c *fiber.Ctx, db *sql.DB) error {
	type statusRequest struct {
		Status string `json:"status" validate:"required,oneof=scheduled done absent cancelled"`
	}

	var req statusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if err := database.UpdateLessonStatus(db, c.Params("id"), models.LessonStatus(req.Status)); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update lesson status"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Lesson status updated",
	})
}

func DeleteLessonAPI(c *fiber.Ctx, db *sql.DB) error {
	if err := database.DeleteLesson(db, c.Params("id")); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete lesson"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Lesson deleted",
	})
}

// GenerateMonthAPI expands every active lesson template into dated lessons
// for the requested month. Closed days and already-occupied slots are skipped,
// so the endpoint can be re-run safely after templates change mid-month.
func GenerateMonthAPI(c *fiber.Ctx, db *sql.DB) error {
	type generateRequest struct {
		Year  int `json:"year" validate:"required"`
		Month int `json:"month" validate:"required,min=1,max=12"`
	}

	var req generateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	templates, err := database.GetLessonTemplates(db, "")
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch lesson templates"})
	}

	monthStart := time.Date(req.Year, time.Month(req.Month), 1, 0, 0, 0, 0, time.Local)
	monthEnd := monthStart.AddDate(0, 1, -1)
	closed, err := database.GetClosedDays(db, monthStart, monthEnd)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch closed days"})
	}

	created := 0
	skipped := 0
	for _, tpl := range templates {
		for _, date := range datesForWeekday(req.Year, req.Month, tpl.DayOfWeek) {
			if closed[date.Format("2006-01-02")] {
				skipped++
				continue
			}

			exists, err := database.LessonExists(db, tpl.StudentID, date, tpl.StartTime)
			if err != nil {
				return c.Status(500).JSON(fiber.Map{"error": "Failed to check lesson slot"})
			}
			if exists {
				skipped++
				continue
			}

			lesson := &models.Lesson{
				StudentID: tpl.StudentID,
				TeacherID: tpl.TeacherID,
				Date:      date,
				StartTime: tpl.StartTime,
				Course:    tpl.Course,
				Status:    models.LessonScheduled,
			}
			if err := database.CreateLesson(db, lesson); err != nil {
				return c.Status(500).JSON(fiber.Map{"error": "Failed to create lesson"})
			}
			created++
		}
	}

	return c.JSON(fiber.Map{
		"success": true,
		"created": created,
		"skipped": skipped,
	})
}

func GetClosedDaysAPI(c *fiber.Ctx, db *sql.DB) error {
	days, err := database.ListClosedDays(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch closed days"})
	}

	return c.JSON(fiber.Map{
		"closed_days": days,
		"count":       len(days),
	})
}

func CreateClosedDayAPI(c *fiber.Ctx, db *sql.DB) error {
	type closedDayRequest struct {
		Date   string `json:"date" validate:"required"`
		Reason string `json:"reason"`
	}

	var req closedDayRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	date, err := time.ParseInLocation("2006-01-02", req.Date, time.Local)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid date, expected YYYY-MM-DD"})
	}

	day := &models.ClosedDay{Date: date, Reason: req.Reason}
	if err := database.CreateClosedDay(db, day); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create closed day"})
	}

	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"data":    day,
	})
}

func DeleteClosedDayAPI(c *fiber.Ctx, db *sql.DB) error {
	if err := database.DeleteClosedDay(db, c.Params("id")); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete closed day"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Closed day deleted",
	})
}
