package holidays

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/attendancehelpbscs-hi/fp-attendance-sub001/app/apperrors"
	"github.com/attendancehelpbscs-hi/fp-attendance-sub001/app/config"
	"github.com/attendancehelpbscs-hi/fp-attendance-sub001/app/database"
	"github.com/attendancehelpbscs-hi/fp-attendance-sub001/app/helpers"
	"github.com/attendancehelpbscs-hi/fp-attendance-sub001/app/models"
	"github.com/attendancehelpbscs-hi/fp-attendance-sub001/app/routes/auth"
	"github.com/attendancehelpbscs-hi/fp-attendance-sub001/app/services"
)

type holidayRequest struct {
	Date string `json:"date" validate:"required"`
	Name string `json:"name" validate:"required"`
	Type string `json:"type" validate:"omitempty,oneof=regular special local"`
}

func ListHolidaysAPI(c *fiber.Ctx) error {
	store := database.NewStore(config.GetDB())
	start := c.Query("start_date")
	end := c.Query("end_date")
	if start != "" && end != "" {
		list, err := store.HolidaysInRange(start, end)
		if err != nil {
			return err
		}
		return helpers.CreateSuccess(c, fiber.StatusOK, "Holidays fetched", list)
	}
	list, err := store.Holidays()
	if err != nil {
		return err
	}
	return helpers.CreateSuccess(c, fiber.StatusOK, "Holidays fetched", list)
}

func CreateHolidayAPI(c *fiber.Ctx) error {
	var req holidayRequest
	if err := helpers.ParseAndValidate(c, &req); err != nil {
		return err
	}
	if _, err := time.Parse(services.DateLayout, req.Date); err != nil {
		return apperrors.NewValidation("Invalid date, expected YYYY-MM-DD")
	}

	store := database.NewStore(config.GetDB())
	existing, err := store.HolidayByDate(req.Date)
	if err != nil {
		return err
	}
	if existing != nil {
		return apperrors.NewConflict(fmt.Sprintf("A holiday already exists on %s", req.Date))
	}

	holiday := &models.Holiday{
		ID:   uuid.New().String(),
		Date: req.Date,
		Name: req.Name,
		Type: models.HolidayType(req.Type),
	}
	if holiday.Type == "" {
		holiday.Type = models.HolidayRegular
	}
	if err := store.CreateHoliday(holiday); err != nil {
		return err
	}
	services.RecordAudit(store, auth.StaffID(c), "create_holiday", fmt.Sprintf("Added holiday %s on %s", holiday.Name, holiday.Date))
	return helpers.CreateSuccess(c, fiber.StatusCreated, "Holiday created", holiday)
}

func UpdateHolidayAPI(c *fiber.Ctx) error {
	var req holidayRequest
	if err := helpers.ParseAndValidate(c, &req); err != nil {
		return err
	}
	if _, err := time.Parse(services.DateLayout, req.Date); err != nil {
		return apperrors.NewValidation("Invalid date, expected YYYY-MM-DD")
	}

	store := database.NewStore(config.GetDB())
	holiday, err := store.HolidayByID(c.Params("id"))
	if err != nil {
		return err
	}
	if holiday == nil {
		return apperrors.NewNotFound("Holiday not found")
	}
	onDate, err := store.HolidayByDate(req.Date)
	if err != nil {
		return err
	}
	if onDate != nil && onDate.ID != holiday.ID {
		return apperrors.NewConflict(fmt.Sprintf("A holiday already exists on %s", req.Date))
	}

	holiday.Date = req.Date
	holiday.Name = req.Name
	if req.Type != "" {
		holiday.Type = models.HolidayType(req.Type)
	}
	if err := store.UpdateHoliday(holiday); err != nil {
		return err
	}
	return helpers.CreateSuccess(c, fiber.StatusOK, "Holiday updated", holiday)
}

func DeleteHolidayAPI(c *fiber.Ctx) error {
	store := database.NewStore(config.GetDB())
	deleted, err := store.DeleteHoliday(c.Params("id"))
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.NewNotFound("Holiday not found")
	}
	return helpers.CreateSuccess(c, fiber.StatusOK, "Holiday deleted", nil)
}
