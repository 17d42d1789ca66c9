package students

import (
	"github.com/gofiber/fiber/v2"

	"github.com/prepschoollefy-maker/shidouhoukokusyo-sub001/app/config"
	"github.com/prepschoollefy-maker/shidouhoukokusyo-sub001/app/database"
	"github.com/prepschoollefy-maker/shidouhoukokusyo-sub001/app/models"
	"github.com/prepschoollefy-maker/shidouhoukokusyo-sub001/app/routes/auth"
)

func SetupStudentsRoutes(app *fiber.App) {
	students := app.Group("/students")
	students.Use(auth.AuthMiddleware)

	// Routes
	students.Get("/", StudentsPage)
	students.Get("/:id", StudentViewPage)

	// API routes
	api := app.Group("/api/students")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetStudentsAPI)        // Get students (?search=&grade=&status=)
	api.Get("/:id", GetStudentByIDAPI)  // Get single student with contracts and sales
	api.Post("/", CreateStudentAPI)     // Create new student
	api.Put("/:id", UpdateStudentAPI)   // Update existing student
	api.Delete("/:id", DeleteStudentAPI) // Deactivate student
}

func StudentsPage(c *fiber.Ctx) error {
	students, err := database.GetStudents(config.GetDB(), database.StudentFilters{})
	if err != nil {
		return c.Status(500).Render("error", fiber.Map{
			"Title":        "エラー - 指導報告書",
			"CurrentPage":  "students",
			"ErrorCode":    "500",
			"ErrorTitle":   "Database Error",
			"ErrorMessage": "Failed to load students. Please try again later.",
			"ShowRetry":    true,
			"user":         c.Locals("user"),
		})
	}

	user := c.Locals("user").(*models.User)
	return c.Render("students/index", fiber.Map{
		"Title":       "生徒一覧 - 指導報告書",
		"CurrentPage": "students",
		"students":    students,
		"user":        user,
		"FirstName":   user.FirstName,
		"LastName":    user.LastName,
		"Email":       user.Email,
	})
}

func StudentViewPage(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	studentID := c.Params("id")

	// Get student details to show name in title if possible
	student, _ := database.GetStudentByID(config.GetDB(), studentID)

	title := "生徒詳細 - 指導報告書"
	if student != nil {
		title = student.FullName() + " - 指導報告書"
	}

	return c.Render("students/view", fiber.Map{
		"Title":       title,
		"CurrentPage": "students",
		"studentID":   studentID,
		"student":     student,
		"user":        user,
		"FirstName":   user.FirstName,
		"LastName":    user.LastName,
		"Email":       user.Email,
	})
}
