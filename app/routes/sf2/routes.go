package sf2

import (
	"github.com/gofiber/fiber/v2"

	"github.com/attendancehelpbscs-hi/fp-attendance-sub001/app/routes/auth"
)

func SetupSF2Routes(app *fiber.App) {
	sf2 := app.Group("/api/sf2")
	sf2.Use(auth.AuthMiddleware)

	sf2.Get("/", SF2DataAPI)
	sf2.Get("/excel", SF2ExcelAPI)
	sf2.Get("/pdf", SF2PDFAPI)
	sf2.Get("/monthly-summary/excel", MonthlySummaryExcelAPI)
	sf2.Get("/monthly-summary/pdf", MonthlySummaryPDFAPI)
}
