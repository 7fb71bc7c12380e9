package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/attendancehelpbscs-hi/fp-attendance-sub001/app/apperrors"
	"github.com/attendancehelpbscs-hi/fp-attendance-sub001/app/config"
	"github.com/attendancehelpbscs-hi/fp-attendance-sub001/app/database"
	"github.com/attendancehelpbscs-hi/fp-attendance-sub001/app/helpers"
	"github.com/attendancehelpbscs-hi/fp-attendance-sub001/app/services"
)

func LoginAPI(c *fiber.Ctx) error {
	type LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	var req LoginRequest
	if err := helpers.ParseAndValidate(c, &req); err != nil {
		return err
	}

	store := database.NewStore(config.GetDB())
	staff, err := store.StaffByEmail(req.Email)
	if err != nil {
		return err
	}
	if staff == nil || !staff.IsActive || !CheckPasswordHash(req.Password, staff.Password) {
		return apperrors.NewUnauthorized("Invalid credentials")
	}

	token, err := GenerateJWT(staff.ID, staff.Email, staff.FirstName, staff.LastName)
	if err != nil {
		return err
	}

	services.RecordAudit(store, staff.ID, "login", "Signed in")
	return helpers.CreateSuccess(c, fiber.StatusOK, "Login successful", fiber.Map{
		"token": token,
		"staff": staff,
	})
}

func MeAPI(c *fiber.Ctx) error {
	store := database.NewStore(config.GetDB())
	staff, err := store.StaffByID(StaffID(c))
	if err != nil {
		return err
	}
	if staff == nil {
		return apperrors.NewNotFound("Staff account not found")
	}
	return helpers.CreateSuccess(c, fiber.StatusOK, "Profile fetched", staff)
}

func ChangePasswordAPI(c *fiber.Ctx) error {
	type ChangePasswordRequest struct {
		CurrentPassword string `json:"current_password" validate:"required"`
		NewPassword     string `json:"new_password" validate:"required,min=8"`
	}

	var req ChangePasswordRequest
	if err := helpers.ParseAndValidate(c, &req); err != nil {
		return err
	}

	store := database.NewStore(config.GetDB())
	staff, err := store.StaffByID(StaffID(c))
	if err != nil {
		return err
	}
	if staff == nil {
		return apperrors.NewNotFound("Staff account not found")
	}
	if !CheckPasswordHash(req.CurrentPassword, staff.Password) {
		return apperrors.NewUnauthorized("Current password is incorrect")
	}

	hashed, err := HashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	if err := store.UpdateStaffPassword(staff.ID, hashed); err != nil {
		return err
	}

	services.RecordAudit(store, staff.ID, "change_password", "Changed account password")
	return helpers.CreateSuccess(c, fiber.StatusOK, "Password changed", nil)
}
