package courses

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/attendancehelpbscs-hi/fp-attendance-sub001/app/config"
	"github.com/attendancehelpbscs-hi/fp-attendance-sub001/app/database"
	"github.com/attendancehelpbscs-hi/fp-attendance-sub001/app/helpers"
	"github.com/attendancehelpbscs-hi/fp-attendance-sub001/app/models"
	"github.com/attendancehelpbscs-hi/fp-attendance-sub001/app/routes/auth"
	"github.com/attendancehelpbscs-hi/fp-attendance-sub001/app/services"
)

func ListCoursesAPI(c *fiber.Ctx) error {
	store := database.NewStore(config.GetDB())
	list, err := store.CoursesByStaff(auth.StaffID(c))
	if err != nil {
		return err
	}
	return helpers.CreateSuccess(c, fiber.StatusOK, "Courses fetched", list)
}

func CreateCourseAPI(c *fiber.Ctx) error {
	type CreateCourseRequest struct {
		Name       string `json:"name" validate:"required"`
		CourseCode string `json:"course_code" validate:"required"`
	}

	var req CreateCourseRequest
	if err := helpers.ParseAndValidate(c, &req); err != nil {
		return err
	}

	store := database.NewStore(config.GetDB())
	staffID := auth.StaffID(c)
	course := &models.Course{
		ID:         uuid.New().String(),
		Name:       req.Name,
		CourseCode: req.CourseCode,
		StaffID:    staffID,
	}
	if err := store.CreateCourse(course); err != nil {
		return err
	}
	services.RecordAudit(store, staffID, "create_course", fmt.Sprintf("Created course %s (%s)", course.Name, course.CourseCode))
	return helpers.CreateSuccess(c, fiber.StatusCreated, "Course created", course)
}
