package sf2

import (
	"fmt"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/attendancehelpbscs-hi/fp-attendance-sub001/app/config"
	"github.com/attendancehelpbscs-hi/fp-attendance-sub001/app/database"
	"github.com/attendancehelpbscs-hi/fp-attendance-sub001/app/helpers"
	"github.com/attendancehelpbscs-hi/fp-attendance-sub001/app/models"
	"github.com/attendancehelpbscs-hi/fp-attendance-sub001/app/routes/auth"
	"github.com/attendancehelpbscs-hi/fp-attendance-sub001/app/services"
)

// schoolMetaFromEnv reads the SF2 header fields from deployment config; the
// form carries whatever the school configured, blanks included.
func schoolMetaFromEnv() models.SchoolMeta {
	return models.SchoolMeta{
		SchoolID:       os.Getenv("SCHOOL_ID"),
		SchoolName:     os.Getenv("SCHOOL_NAME"),
		SchoolYear:     os.Getenv("SCHOOL_YEAR"),
		SchoolHeadName: os.Getenv("SCHOOL_HEAD_NAME"),
		Region:         os.Getenv("SCHOOL_REGION"),
		Division:       os.Getenv("SCHOOL_DIVISION"),
		District:       os.Getenv("SCHOOL_DISTRICT"),
	}
}

func sf2DataFromQuery(c *fiber.Ctx) (*models.SF2Data, error) {
	month := c.Query("month", time.Now().Format("2006-01"))
	store := database.NewStore(config.GetDB())
	return services.GenerateSF2Data(
		store, auth.StaffID(c), month,
		c.Query("grade"), c.Query("section"),
		schoolMetaFromEnv(),
	)
}

func SF2DataAPI(c *fiber.Ctx) error {
	data, err := sf2DataFromQuery(c)
	if err != nil {
		return err
	}
	return helpers.CreateSuccess(c, fiber.StatusOK, "SF2 data generated", data)
}

func SF2ExcelAPI(c *fiber.Ctx) error {
	data, err := sf2DataFromQuery(c)
	if err != nil {
		return err
	}
	buf, err := services.RenderSF2Excel(data)
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="SF2-%s.xlsx"`, data.Month))
	return c.Send(buf.Bytes())
}

func SF2PDFAPI(c *fiber.Ctx) error {
	data, err := sf2DataFromQuery(c)
	if err != nil {
		return err
	}
	buf, err := services.RenderSF2PDF(data)
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="SF2-%s.pdf"`, data.Month))
	return c.Send(buf.Bytes())
}

func MonthlySummaryExcelAPI(c *fiber.Ctx) error {
	month := c.Query("month", time.Now().Format("2006-01"))
	store := database.NewStore(config.GetDB())
	rows, _, _, err := services.GetMonthlySummary(store, auth.StaffID(c), month)
	if err != nil {
		return err
	}
	buf, err := services.RenderMonthlySummaryExcel(rows, month)
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="attendance-summary-%s.xlsx"`, month))
	return c.Send(buf.Bytes())
}

func MonthlySummaryPDFAPI(c *fiber.Ctx) error {
	month := c.Query("month", time.Now().Format("2006-01"))
	store := database.NewStore(config.GetDB())
	rows, _, _, err := services.GetMonthlySummary(store, auth.StaffID(c), month)
	if err != nil {
		return err
	}
	buf, err := services.RenderMonthlySummaryPDF(rows, month)
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="attendance-summary-%s.pdf"`, month))
	return c.Send(buf.Bytes())
}
