package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/attendancehelpbscs-hi/fp-attendance-sub001/app/apperrors"
)

func SetupAuthRoutes(app *fiber.App) {
	auth := app.Group("/api/auth")

	auth.Post("/login", LoginAPI)

	auth.Use(AuthMiddleware)
	auth.Get("/me", MeAPI)
	auth.Post("/change-password", ChangePasswordAPI)
}

// AuthMiddleware validates the Bearer token and stores the staff identity on
// the request context.
func AuthMiddleware(c *fiber.Ctx) error {
	header := c.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return apperrors.NewUnauthorized("Missing or malformed authorization header")
	}
	claims, err := ValidateJWT(strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		return apperrors.NewUnauthorized("Invalid or expired token")
	}
	c.Locals("staff_id", claims.StaffID)
	c.Locals("staff_email", claims.Email)
	return c.Next()
}

// StaffID returns the authenticated staff's ID set by AuthMiddleware.
func StaffID(c *fiber.Ctx) string {
	id, _ := c.Locals("staff_id").(string)
	return id
}
