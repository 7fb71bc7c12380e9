package models

import "time"

type Student struct {
	ID        string    `json:"id" validate:"required,uuid"`
	Name      string    `json:"name" validate:"required"`
	MatricNo  string    `json:"matric_no" validate:"required"`
	Grade     string    `json:"grade" validate:"required"`
	StaffID   string    `json:"staff_id" validate:"required,uuid"`
	CreatedAt time.Time `json:"created_at"`
	Courses   []*Course `json:"courses,omitempty"`
}

// Course doubles as the section: its course_code is the section label
// denormalized onto attendance rows at write time.
type Course struct {
	ID         string    `json:"id" validate:"required,uuid"`
	Name       string    `json:"name" validate:"required"`
	CourseCode string    `json:"course_code" validate:"required"`
	StaffID    string    `json:"staff_id" validate:"required,uuid"`
	CreatedAt  time.Time `json:"created_at"`
}

// Section returns the label used for the student's attendance rows:
// the first enrolled course's code, empty when unenrolled.
func (s *Student) Section() string {
	if len(s.Courses) == 0 {
		return ""
	}
	return s.Courses[0].CourseCode
}
