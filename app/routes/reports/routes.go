package reports

import (
	"github.com/gofiber/fiber/v2"

	"github.com/attendancehelpbscs-hi/fp-attendance-sub001/app/routes/auth"
)

func SetupReportRoutes(app *fiber.App) {
	reports := app.Group("/api/reports")
	reports.Use(auth.AuthMiddleware)

	reports.Get("/attendance", AttendanceReportsAPI)
	reports.Get("/summary", SummaryAPI)
	reports.Get("/students", StudentReportsAPI)
	reports.Get("/students/:id/summary", StudentSummaryAPI)
	reports.Get("/dashboard", DashboardAPI)
	reports.Get("/filters", FiltersAPI)
	reports.Get("/monthly-summary", MonthlySummaryAPI)
}
