package attendance

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/attendancehelpbscs-hi/fp-attendance-sub001/app/apperrors"
	"github.com/attendancehelpbscs-hi/fp-attendance-sub001/app/config"
	"github.com/attendancehelpbscs-hi/fp-attendance-sub001/app/database"
	"github.com/attendancehelpbscs-hi/fp-attendance-sub001/app/helpers"
	"github.com/attendancehelpbscs-hi/fp-attendance-sub001/app/models"
	"github.com/attendancehelpbscs-hi/fp-attendance-sub001/app/routes/auth"
	"github.com/attendancehelpbscs-hi/fp-attendance-sub001/app/services"
)

// ownedSession loads a session and checks it belongs to the caller.
func ownedSession(store *database.Store, c *fiber.Ctx, attendanceID string) (*models.Attendance, error) {
	session, err := store.AttendanceByID(attendanceID)
	if err != nil {
		return nil, err
	}
	if session == nil || session.StaffID != auth.StaffID(c) {
		return nil, apperrors.NewNotFound("Attendance session not found")
	}
	return session, nil
}

func ListSessionsAPI(c *fiber.Ctx) error {
	store := database.NewStore(config.GetDB())
	page := c.QueryInt("page", 1)
	perPage := c.QueryInt("per_page", 20)
	sessions, total, err := store.AttendancesByStaff(auth.StaffID(c), page, perPage)
	if err != nil {
		return err
	}
	totalPages := (total + perPage - 1) / perPage
	if totalPages < 1 {
		totalPages = 1
	}
	return helpers.CreateSuccess(c, fiber.StatusOK, "Sessions fetched", fiber.Map{
		"sessions": sessions,
		"pagination": models.PaginationMeta{
			TotalItems: total,
			TotalPages: totalPages,
			Page:       page,
			PerPage:    perPage,
		},
	})
}

// CreateSessionAPI returns the staff's session for the date, creating it when
// missing. No date means today.
func CreateSessionAPI(c *fiber.Ctx) error {
	type CreateSessionRequest struct {
		Date string `json:"date"`
	}

	var req CreateSessionRequest
	if err := c.BodyParser(&req); err != nil && len(c.Body()) > 0 {
		return apperrors.NewValidation("Invalid request body")
	}
	date := req.Date
	if date == "" {
		date = time.Now().Format(services.DateLayout)
	} else if _, err := time.Parse(services.DateLayout, date); err != nil {
		return apperrors.NewValidation("Invalid date, expected YYYY-MM-DD")
	}

	store := database.NewStore(config.GetDB())
	session, err := services.GetOrCreateDailyAttendance(store, auth.StaffID(c), date)
	if err != nil {
		return err
	}
	return helpers.CreateSuccess(c, fiber.StatusOK, "Session ready", session)
}

func GetSessionAPI(c *fiber.Ctx) error {
	store := database.NewStore(config.GetDB())
	session, err := ownedSession(store, c, c.Params("id"))
	if err != nil {
		return err
	}
	events, err := store.EventsByAttendance(session.ID)
	if err != nil {
		return err
	}
	return helpers.CreateSuccess(c, fiber.StatusOK, "Session fetched", fiber.Map{
		"session": session,
		"events":  events,
	})
}

func UpdateSessionAPI(c *fiber.Ctx) error {
	type UpdateSessionRequest struct {
		Name string `json:"name" validate:"required"`
		Date string `json:"date" validate:"required"`
	}

	var req UpdateSessionRequest
	if err := helpers.ParseAndValidate(c, &req); err != nil {
		return err
	}
	if _, err := time.Parse(services.DateLayout, req.Date); err != nil {
		return apperrors.NewValidation("Invalid date, expected YYYY-MM-DD")
	}

	store := database.NewStore(config.GetDB())
	session, err := ownedSession(store, c, c.Params("id"))
	if err != nil {
		return err
	}
	if err := store.UpdateAttendance(session.ID, req.Name, req.Date); err != nil {
		return err
	}
	return helpers.CreateSuccess(c, fiber.StatusOK, "Session updated", nil)
}

func DeleteSessionAPI(c *fiber.Ctx) error {
	store := database.NewStore(config.GetDB())
	session, err := ownedSession(store, c, c.Params("id"))
	if err != nil {
		return err
	}
	if _, err := store.DeleteAttendance(session.ID); err != nil {
		return err
	}
	services.RecordAudit(store, auth.StaffID(c), "delete_session", fmt.Sprintf("Deleted attendance session for %s", session.Date))
	return helpers.CreateSuccess(c, fiber.StatusOK, "Session deleted", nil)
}

// MarkAPI records one scanner event. When no session is supplied the staff's
// session for today is used, created on demand.
func MarkAPI(c *fiber.Ctx) error {
	type MarkRequest struct {
		AttendanceID string `json:"attendance_id"`
		StudentID    string `json:"student_id" validate:"required,uuid"`
		TimeType     string `json:"time_type" validate:"required,oneof=IN OUT"`
		SessionType  string `json:"session_type" validate:"omitempty,oneof=AM PM"`
	}

	var req MarkRequest
	if err := helpers.ParseAndValidate(c, &req); err != nil {
		return err
	}

	store := database.NewStore(config.GetDB())
	attendanceID := req.AttendanceID
	if attendanceID == "" {
		session, err := services.GetOrCreateDailyAttendance(store, auth.StaffID(c), time.Now().Format(services.DateLayout))
		if err != nil {
			return err
		}
		attendanceID = session.ID
	} else if _, err := ownedSession(store, c, attendanceID); err != nil {
		return err
	}

	event, err := services.MarkStudentAttendance(store, services.MarkRequest{
		AttendanceID: attendanceID,
		StudentID:    req.StudentID,
		TimeType:     models.TimeType(req.TimeType),
		SessionType:  models.SessionType(req.SessionType),
	})
	if err != nil {
		return err
	}
	return helpers.CreateSuccess(c, fiber.StatusCreated, "Attendance recorded", event)
}

// ManualMarkAPI marks students present across dates, for scanner outages.
func ManualMarkAPI(c *fiber.Ctx) error {
	type ManualMarkRequest struct {
		StudentIDs []string `json:"student_ids" validate:"required,min=1"`
		Dates      []string `json:"dates" validate:"required,min=1"`
	}

	var req ManualMarkRequest
	if err := helpers.ParseAndValidate(c, &req); err != nil {
		return err
	}

	store := database.NewStore(config.GetDB())
	staffID := auth.StaffID(c)
	marked, err := services.ManualMarkPresent(store, staffID, req.StudentIDs, req.Dates)
	if err != nil {
		return err
	}
	services.RecordAudit(store, staffID, "manual_mark", fmt.Sprintf("Manually marked %d attendance rows", marked))
	return helpers.CreateSuccess(c, fiber.StatusOK, "Attendance marked", fiber.Map{"marked": marked})
}

// SweepAPI runs the absence sweep for the caller, defaulting to today.
func SweepAPI(c *fiber.Ctx) error {
	type SweepRequest struct {
		Date string `json:"date"`
	}

	var req SweepRequest
	if err := c.BodyParser(&req); err != nil && len(c.Body()) > 0 {
		return apperrors.NewValidation("Invalid request body")
	}
	date := req.Date
	if date == "" {
		date = time.Now().Format(services.DateLayout)
	} else if _, err := time.Parse(services.DateLayout, date); err != nil {
		return apperrors.NewValidation("Invalid date, expected YYYY-MM-DD")
	}

	store := database.NewStore(config.GetDB())
	inserted, err := services.SweepUnmarkedDays(store, auth.StaffID(c), date)
	if err != nil {
		return err
	}
	return helpers.CreateSuccess(c, fiber.StatusOK, "Sweep complete", fiber.Map{
		"date":          date,
		"rows_inserted": inserted,
	})
}
