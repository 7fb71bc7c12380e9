package students

import (
	"github.com/gofiber/fiber/v2"

	"github.com/attendancehelpbscs-hi/fp-attendance-sub001/app/routes/auth"
)

func SetupStudentRoutes(app *fiber.App) {
	students := app.Group("/api/students")
	students.Use(auth.AuthMiddleware)

	students.Get("/", ListStudentsAPI)
	students.Post("/", CreateStudentAPI)
	students.Get("/:id", GetStudentAPI)
	students.Delete("/:id", DeleteStudentAPI)
	students.Post("/:id/enroll", EnrollStudentAPI)
}
