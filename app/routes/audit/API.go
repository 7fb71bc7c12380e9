package audit

import (
	"github.com/gofiber/fiber/v2"

	"github.com/attendancehelpbscs-hi/fp-attendance-sub001/app/config"
	"github.com/attendancehelpbscs-hi/fp-attendance-sub001/app/database"
	"github.com/attendancehelpbscs-hi/fp-attendance-sub001/app/helpers"
	"github.com/attendancehelpbscs-hi/fp-attendance-sub001/app/models"
	"github.com/attendancehelpbscs-hi/fp-attendance-sub001/app/routes/auth"
)

func ListAuditLogsAPI(c *fiber.Ctx) error {
	store := database.NewStore(config.GetDB())
	page := c.QueryInt("page", 1)
	perPage := c.QueryInt("per_page", 20)
	logs, total, err := store.AuditLogs(auth.StaffID(c), page, perPage)
	if err != nil {
		return err
	}
	totalPages := (total + perPage - 1) / perPage
	if totalPages < 1 {
		totalPages = 1
	}
	return helpers.CreateSuccess(c, fiber.StatusOK, "Audit logs fetched", fiber.Map{
		"logs": logs,
		"pagination": models.PaginationMeta{
			TotalItems: total,
			TotalPages: totalPages,
			Page:       page,
			PerPage:    perPage,
		},
	})
}
