package attendance

import (
	"github.com/gofiber/fiber/v2"

	"github.com/attendancehelpbscs-hi/fp-attendance-sub001/app/routes/auth"
)

func SetupAttendanceRoutes(app *fiber.App) {
	attendance := app.Group("/api/attendance")
	attendance.Use(auth.AuthMiddleware)

	attendance.Get("/", ListSessionsAPI)
	attendance.Post("/", CreateSessionAPI)
	attendance.Post("/mark", MarkAPI)
	attendance.Post("/manual-mark", ManualMarkAPI)
	attendance.Post("/sweep", SweepAPI)
	attendance.Get("/:id", GetSessionAPI)
	attendance.Put("/:id", UpdateSessionAPI)
	attendance.Delete("/:id", DeleteSessionAPI)
}
