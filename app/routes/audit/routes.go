package audit

import (
	"github.com/gofiber/fiber/v2"

	"github.com/attendancehelpbscs-hi/fp-attendance-sub001/app/routes/auth"
)

func SetupAuditRoutes(app *fiber.App) {
	audit := app.Group("/api/audit")
	audit.Use(auth.AuthMiddleware)

	audit.Get("/", ListAuditLogsAPI)
}
