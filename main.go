package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/attendancehelpbscs-hi/fp-attendance-sub001/app/apperrors"
	"github.com/attendancehelpbscs-hi/fp-attendance-sub001/app/config"
	"github.com/attendancehelpbscs-hi/fp-attendance-sub001/app/database"
	"github.com/attendancehelpbscs-hi/fp-attendance-sub001/app/routes/attendance"
	"github.com/attendancehelpbscs-hi/fp-attendance-sub001/app/routes/audit"
	"github.com/attendancehelpbscs-hi/fp-attendance-sub001/app/routes/auth"
	"github.com/attendancehelpbscs-hi/fp-attendance-sub001/app/routes/courses"
	"github.com/attendancehelpbscs-hi/fp-attendance-sub001/app/routes/holidays"
	"github.com/attendancehelpbscs-hi/fp-attendance-sub001/app/routes/reports"
	"github.com/attendancehelpbscs-hi/fp-attendance-sub001/app/routes/settings"
	"github.com/attendancehelpbscs-hi/fp-attendance-sub001/app/routes/sf2"
	"github.com/attendancehelpbscs-hi/fp-attendance-sub001/app/routes/students"
	"github.com/attendancehelpbscs-hi/fp-attendance-sub001/app/services"
)

func main() {
	// Set global time zone to Philippine Standard Time
	loc, err := time.LoadLocation("Asia/Manila")
	if err != nil {
		log.Printf("Warning: Failed to load Asia/Manila location, falling back to UTC+8: %v", err)
		time.Local = time.FixedZone("PST", 8*60*60)
	} else {
		time.Local = loc
	}
	log.Printf("Application time zone set to: %s", time.Local.String())

	config.LoadEnv()

	// Initialize database
	config.InitDB()
	defer config.GetDB().Close()

	// Run database migrations
	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	store := database.NewStore(config.GetDB())

	// Catch up on any sweeps missed while the server was down, then hand the
	// nightly run to the scheduler.
	go services.RunStartupSweep(store)
	sweeper := services.StartSweepScheduler(store)
	defer sweeper.Stop()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: apperrors.ErrorHandler,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Routes
	auth.SetupAuthRoutes(app)
	students.SetupStudentRoutes(app)
	courses.SetupCourseRoutes(app)
	attendance.SetupAttendanceRoutes(app)
	holidays.SetupHolidayRoutes(app)
	reports.SetupReportRoutes(app)
	sf2.SetupSF2Routes(app)
	settings.SetupSettingsRoutes(app)
	audit.SetupAuditRoutes(app)

	port := config.AppConfig.Port
	log.Printf("Server starting on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
