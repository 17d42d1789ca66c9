package lectures

import (
	"database/sql"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/prepschoollefy-maker/shidouhoukokusyo-sub001/app/config"
	"github.com/prepschoollefy-maker/shidouhoukokusyo-sub001/app/database"
	"github.com/prepschoollefy-maker/shidouhoukokusyo-sub001/app/models"
)

var validate = validator.New()

type allocationRequest struct {
	Year    int `json:"year" validate:"required"`
	Month   int `json:"month" validate:"required,min=1,max=12"`
	Lessons int `json:"lessons" validate:"gte=0"`
}

type lectureCourseRequest struct {
	Course       string              `json:"course" validate:"required"`
	TotalLessons int                 `json:"total_lessons" validate:"required,gt=0"`
	Allocations  []allocationRequest `json:"allocations" validate:"required,min=1,dive"`
}

type lectureRequest struct {
	StudentID string                 `json:"student_id" validate:"required,uuid"`
	Label     string                 `json:"label" validate:"required"`
	Grade     string                 `json:"grade" validate:"required"`
	Notes     string                 `json:"notes"`
	Courses   []lectureCourseRequest `json:"courses" validate:"required,min=1,dive"`
}

// buildLecture turns a request into a lecture with unit prices, subtotals and
// the total recomputed from the price schedule, then checks that each course's
// month allocations add up to its lesson count.
func buildLecture(req *lectureRequest) (*models.Lecture, error) {
	schedule := config.GetPricing()

	lecture := &models.Lecture{
		StudentID: req.StudentID,
		Label:     req.Label,
		Grade:     req.Grade,
		Notes:     req.Notes,
		Courses:   make([]models.LectureCourse, len(req.Courses)),
	}

	total := 0
	for i, cr := range req.Courses {
		unit, err := schedule.LectureUnitPrice(req.Grade, cr.Course)
		if err != nil {
			return nil, fiber.NewError(400, err.Error())
		}

		course := models.LectureCourse{
			Course:       cr.Course,
			TotalLessons: cr.TotalLessons,
			UnitPrice:    unit,
			Subtotal:     unit * cr.TotalLessons,
			Allocations:  make([]models.MonthAllocation, len(cr.Allocations)),
		}
		for j, ar := range cr.Allocations {
			course.Allocations[j] = models.MonthAllocation{
				Year:    ar.Year,
				Month:   ar.Month,
				Lessons: ar.Lessons,
			}
		}

		total += course.Subtotal
		lecture.Courses[i] = course
	}
	lecture.TotalAmount = total

	if err := lecture.ValidateAllocations(); err != nil {
		return nil, fiber.NewError(400, err.Error())
	}
	return lecture, nil
}

func GetLecturesAPI(c *fiber.Ctx, db *sql.DB) error {
	year := c.QueryInt("year", 0)
	month := c.QueryInt("month", 0)

	var lectures []*models.Lecture
	var err error
	if year != 0 && month != 0 {
		lectures, err = database.GetLecturesForMonth(db, year, month)
	} else {
		lectures, err = database.GetAllLectures(db)
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch lectures"})
	}

	return c.JSON(fiber.Map{
		"lectures": lectures,
		"count":    len(lectures),
	})
}

func GetLectureByIDAPI(c *fiber.Ctx, db *sql.DB) error {
	lecture, err := database.GetLectureByID(db, c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Lecture not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch lecture"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    lecture,
	})
}

func CreateLectureAPI(c *fiber.Ctx, db *sql.DB) error {
	var req lectureRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	lecture, err := buildLecture(&req)
	if err != nil {
		return err
	}

	if err := database.CreateLecture(db, lecture); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create lecture"})
	}

	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"data":    lecture,
	})
}

func UpdateLectureAPI(c *fiber.Ctx, db *sql.DB) error {
	lectureID := c.Params("id")

	if _, err := database.GetLectureByID(db, lectureID); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Lecture not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch lecture"})
	}

	var req lectureRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	lecture, err := buildLecture(&req)
	if err != nil {
		return err
	}
	lecture.ID = lectureID

	if err := database.UpdateLecture(db, lecture); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update lecture"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    lecture,
	})
}

func DeleteLectureAPI(c *fiber.Ctx, db *sql.DB) error {
	if err := database.DeleteLecture(db, c.Params("id")); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete lecture"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Lecture deleted",
	})
}
