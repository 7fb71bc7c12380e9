package courses

import (
	"github.com/gofiber/fiber/v2"

	"github.com/attendancehelpbscs-hi/fp-attendance-sub001/app/routes/auth"
)

func SetupCourseRoutes(app *fiber.App) {
	courses := app.Group("/api/courses")
	courses.Use(auth.AuthMiddleware)

	courses.Get("/", ListCoursesAPI)
	courses.Post("/", CreateCourseAPI)
}
