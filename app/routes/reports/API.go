package reports

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/attendancehelpbscs-hi/fp-attendance-sub001/app/config"
	"github.com/attendancehelpbscs-hi/fp-attendance-sub001/app/database"
	"github.com/attendancehelpbscs-hi/fp-attendance-sub001/app/helpers"
	"github.com/attendancehelpbscs-hi/fp-attendance-sub001/app/models"
	"github.com/attendancehelpbscs-hi/fp-attendance-sub001/app/routes/auth"
	"github.com/attendancehelpbscs-hi/fp-attendance-sub001/app/services"
)

// filterFromQuery builds the event filter shared by the report endpoints,
// resolving the range shorthand against the current clock.
func filterFromQuery(c *fiber.Ctx) (models.EventFilter, error) {
	start, end, err := services.ResolveDateRange(
		c.Query("range"), c.Query("start_date"), c.Query("end_date"), time.Now())
	if err != nil {
		return models.EventFilter{}, err
	}
	return models.EventFilter{
		StaffID:     auth.StaffID(c),
		Grade:       c.Query("grade"),
		Section:     c.Query("section"),
		SessionType: models.SessionType(c.Query("session_type")),
		StartDate:   start,
		EndDate:     end,
	}, nil
}

func AttendanceReportsAPI(c *fiber.Ctx) error {
	filter, err := filterFromQuery(c)
	if err != nil {
		return err
	}
	store := database.NewStore(config.GetDB())
	rows, err := services.GetAttendanceReports(store, filter)
	if err != nil {
		return err
	}
	pageRows, meta := services.Paginate(rows, c.QueryInt("page", 1), c.QueryInt("per_page", 10))
	return helpers.CreateSuccess(c, fiber.StatusOK, "Attendance reports fetched", fiber.Map{
		"reports":    pageRows,
		"pagination": meta,
		"start_date": filter.StartDate,
		"end_date":   filter.EndDate,
	})
}

func SummaryAPI(c *fiber.Ctx) error {
	filter, err := filterFromQuery(c)
	if err != nil {
		return err
	}
	store := database.NewStore(config.GetDB())
	current, err := services.GetAttendanceSummary(store, filter)
	if err != nil {
		return err
	}
	previous, err := services.GetPreviousPeriodSummary(store, filter)
	if err != nil {
		return err
	}
	return helpers.CreateSuccess(c, fiber.StatusOK, "Summary fetched", fiber.Map{
		"current":    current,
		"previous":   previous,
		"start_date": filter.StartDate,
		"end_date":   filter.EndDate,
	})
}

func StudentReportsAPI(c *fiber.Ctx) error {
	filter, err := filterFromQuery(c)
	if err != nil {
		return err
	}
	filter.StudentID = c.Query("student_id")
	store := database.NewStore(config.GetDB())
	rows, err := services.GetStudentAttendanceReports(store, filter)
	if err != nil {
		return err
	}
	pageRows, meta := services.Paginate(rows, c.QueryInt("page", 1), c.QueryInt("per_page", 10))
	return helpers.CreateSuccess(c, fiber.StatusOK, "Student reports fetched", fiber.Map{
		"reports":    pageRows,
		"pagination": meta,
	})
}

func StudentSummaryAPI(c *fiber.Ctx) error {
	start, end, err := services.ResolveDateRange(
		c.Query("range"), c.Query("start_date"), c.Query("end_date"), time.Now())
	if err != nil {
		return err
	}
	store := database.NewStore(config.GetDB())
	summary, err := services.GetStudentSummary(store, auth.StaffID(c), c.Params("id"), start, end)
	if err != nil {
		return err
	}
	return helpers.CreateSuccess(c, fiber.StatusOK, "Student summary fetched", summary)
}

func DashboardAPI(c *fiber.Ctx) error {
	store := database.NewStore(config.GetDB())
	stats, err := services.GetDashboardStats(store, auth.StaffID(c), time.Now().Format(services.DateLayout))
	if err != nil {
		return err
	}
	return helpers.CreateSuccess(c, fiber.StatusOK, "Dashboard fetched", stats)
}

func FiltersAPI(c *fiber.Ctx) error {
	store := database.NewStore(config.GetDB())
	grades, sections, err := services.UniqueGradesAndSections(store, auth.StaffID(c))
	if err != nil {
		return err
	}
	return helpers.CreateSuccess(c, fiber.StatusOK, "Filters fetched", fiber.Map{
		"grades":   grades,
		"sections": sections,
	})
}

func MonthlySummaryAPI(c *fiber.Ctx) error {
	month := c.Query("month", time.Now().Format("2006-01"))
	store := database.NewStore(config.GetDB())
	rows, start, end, err := services.GetMonthlySummary(store, auth.StaffID(c), month)
	if err != nil {
		return err
	}
	return helpers.CreateSuccess(c, fiber.StatusOK, "Monthly summary fetched", fiber.Map{
		"rows":       rows,
		"start_date": start,
		"end_date":   end,
	})
}
