package holidays

import (
	"github.com/gofiber/fiber/v2"

	"github.com/attendancehelpbscs-hi/fp-attendance-sub001/app/routes/auth"
)

func SetupHolidayRoutes(app *fiber.App) {
	holidays := app.Group("/api/holidays")
	holidays.Use(auth.AuthMiddleware)

	holidays.Get("/", ListHolidaysAPI)
	holidays.Post("/", CreateHolidayAPI)
	holidays.Put("/:id", UpdateHolidayAPI)
	holidays.Delete("/:id", DeleteHolidayAPI)
}
