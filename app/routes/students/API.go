package students

import (
	"fmt"
	"log"
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

func ListStudentsAPI(c *fiber.Ctx) error {
	store := database.NewStore(config.GetDB())
	list, err := store.StudentsByStaff(auth.StaffID(c))
	if err != nil {
		return err
	}
	page := c.QueryInt("page", 1)
	perPage := c.QueryInt("per_page", 20)
	pageItems, meta := services.Paginate(list, page, perPage)
	return helpers.CreateSuccess(c, fiber.StatusOK, "Students fetched", fiber.Map{
		"students":   pageItems,
		"pagination": meta,
	})
}

func GetStudentAPI(c *fiber.Ctx) error {
	store := database.NewStore(config.GetDB())
	student, err := store.StudentByID(c.Params("id"))
	if err != nil {
		return err
	}
	if student == nil || student.StaffID != auth.StaffID(c) {
		return apperrors.NewNotFound("Student not found")
	}
	return helpers.CreateSuccess(c, fiber.StatusOK, "Student fetched", student)
}

func CreateStudentAPI(c *fiber.Ctx) error {
	type CreateStudentRequest struct {
		Name     string `json:"name" validate:"required"`
		MatricNo string `json:"matric_no" validate:"required"`
		Grade    string `json:"grade" validate:"required"`
		CourseID string `json:"course_id"`
	}

	var req CreateStudentRequest
	if err := helpers.ParseAndValidate(c, &req); err != nil {
		return err
	}

	store := database.NewStore(config.GetDB())
	staffID := auth.StaffID(c)
	student := &models.Student{
		ID:       uuid.New().String(),
		Name:     req.Name,
		MatricNo: req.MatricNo,
		Grade:    req.Grade,
		StaffID:  staffID,
	}
	if err := store.CreateStudent(student); err != nil {
		return err
	}
	if req.CourseID != "" {
		if err := store.EnrollStudentInCourse(student.ID, req.CourseID); err != nil {
			return err
		}
	}

	// Seed today's placeholders so the learner shows up in reports before the
	// nightly sweep.
	today := time.Now().Format(services.DateLayout)
	if err := services.SeedStudentAbsence(store, staffID, student.ID, today); err != nil {
		log.Printf("seed absence for new student %s: %v", student.ID, err)
	}

	services.RecordAudit(store, staffID, "create_student", fmt.Sprintf("Registered learner %s (%s)", student.Name, student.MatricNo))
	return helpers.CreateSuccess(c, fiber.StatusCreated, "Student created", student)
}

func DeleteStudentAPI(c *fiber.Ctx) error {
	store := database.NewStore(config.GetDB())
	staffID := auth.StaffID(c)
	student, err := store.StudentByID(c.Params("id"))
	if err != nil {
		return err
	}
	if student == nil || student.StaffID != staffID {
		return apperrors.NewNotFound("Student not found")
	}
	if _, err := store.DeleteStudent(student.ID); err != nil {
		return err
	}
	services.RecordAudit(store, staffID, "delete_student", fmt.Sprintf("Removed learner %s (%s)", student.Name, student.MatricNo))
	return helpers.CreateSuccess(c, fiber.StatusOK, "Student deleted", nil)
}

func EnrollStudentAPI(c *fiber.Ctx) error {
	type EnrollRequest struct {
		CourseID string `json:"course_id" validate:"required,uuid"`
	}

	var req EnrollRequest
	if err := helpers.ParseAndValidate(c, &req); err != nil {
		return err
	}

	store := database.NewStore(config.GetDB())
	staffID := auth.StaffID(c)
	student, err := store.StudentByID(c.Params("id"))
	if err != nil {
		return err
	}
	if student == nil || student.StaffID != staffID {
		return apperrors.NewNotFound("Student not found")
	}
	if err := store.EnrollStudentInCourse(student.ID, req.CourseID); err != nil {
		return err
	}
	services.RecordAudit(store, staffID, "enroll_student", fmt.Sprintf("Enrolled learner %s in course %s", student.Name, req.CourseID))
	return helpers.CreateSuccess(c, fiber.StatusOK, "Student enrolled", nil)
}
