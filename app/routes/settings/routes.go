package settings

import (
	"github.com/gofiber/fiber/v2"

	"github.com/attendancehelpbscs-hi/fp-attendance-sub001/app/routes/auth"
)

func SetupSettingsRoutes(app *fiber.App) {
	settings := app.Group("/api/settings")
	settings.Use(auth.AuthMiddleware)

	settings.Get("/attendance", GetAttendanceSettingsAPI)
	settings.Put("/attendance", UpdateAttendanceSettingsAPI)
}
