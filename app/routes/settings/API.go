package settings

import (
	"regexp"

	"github.com/gofiber/fiber/v2"

	"github.com/attendancehelpbscs-hi/fp-attendance-sub001/app/apperrors"
	"github.com/attendancehelpbscs-hi/fp-attendance-sub001/app/config"
	"github.com/attendancehelpbscs-hi/fp-attendance-sub001/app/database"
	"github.com/attendancehelpbscs-hi/fp-attendance-sub001/app/helpers"
	"github.com/attendancehelpbscs-hi/fp-attendance-sub001/app/models"
	"github.com/attendancehelpbscs-hi/fp-attendance-sub001/app/routes/auth"
	"github.com/attendancehelpbscs-hi/fp-attendance-sub001/app/services"
)

var clockFormat = regexp.MustCompile(`^\s*\d{1,2}:\d{2}(\s*[AaPp][Mm])?\s*$`)

func GetAttendanceSettingsAPI(c *fiber.Ctx) error {
	store := database.NewStore(config.GetDB())
	settings, err := store.StaffSettings(auth.StaffID(c))
	if err != nil {
		return err
	}
	if settings == nil {
		return apperrors.NewNotFound("Staff account not found")
	}
	return helpers.CreateSuccess(c, fiber.StatusOK, "Settings fetched", settings)
}

func UpdateAttendanceSettingsAPI(c *fiber.Ctx) error {
	var req models.StaffAttendanceSettings
	if err := helpers.ParseAndValidate(c, &req); err != nil {
		return err
	}
	if req.SchoolStartTime != "" && !clockFormat.MatchString(req.SchoolStartTime) {
		return apperrors.NewValidation("school_start_time must look like H:MM or H:MM AM/PM")
	}
	if req.PMLateCutoffTime != "" && !clockFormat.MatchString(req.PMLateCutoffTime) {
		return apperrors.NewValidation("pm_late_cutoff_time must look like H:MM or H:MM AM/PM")
	}

	store := database.NewStore(config.GetDB())
	staffID := auth.StaffID(c)
	if err := store.UpdateStaffSettings(staffID, &req); err != nil {
		return err
	}
	services.RecordAudit(store, staffID, "update_settings", "Updated attendance settings")
	return helpers.CreateSuccess(c, fiber.StatusOK, "Settings updated", req)
}
