package database

import (
	"database/sql"

	"github.com/attendancehelpbscs-hi/fp-attendance-sub001/app/models"
)

// StudentsByStaff returns students with their enrolled courses attached.
// An empty staffID returns every student (admin scope).
func (s *Store) StudentsByStaff(staffID string) ([]*models.Student, error) {
	query := `SELECT id, name, matric_no, grade, staff_id, created_at
			  FROM students WHERE ($1 = '' OR staff_id = $1) ORDER BY name`

	rows, err := s.db.Query(query, staffID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	byID := map[string]*models.Student{}
	for rows.Next() {
		student := &models.Student{}
		if err := rows.Scan(&student.ID, &student.Name, &student.MatricNo, &student.Grade, &student.StaffID, &student.CreatedAt); err != nil {
			return nil, err
		}
		students = append(students, student)
		byID[student.ID] = student
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	courseQuery := `SELECT sc.student_id, c.id, c.name, c.course_code, c.staff_id, c.created_at
					FROM student_courses sc
					JOIN courses c ON sc.course_id = c.id
					JOIN students st ON sc.student_id = st.id
					WHERE ($1 = '' OR st.staff_id = $1)
					ORDER BY c.created_at`

	courseRows, err := s.db.Query(courseQuery, staffID)
	if err != nil {
		return nil, err
	}
	defer courseRows.Close()

	for courseRows.Next() {
		var studentID string
		course := &models.Course{}
		if err := courseRows.Scan(&studentID, &course.ID, &course.Name, &course.CourseCode, &course.StaffID, &course.CreatedAt); err != nil {
			return nil, err
		}
		if student, ok := byID[studentID]; ok {
			student.Courses = append(student.Courses, course)
		}
	}
	return students, courseRows.Err()
}

func (s *Store) StudentByID(studentID string) (*models.Student, error) {
	student := &models.Student{}
	query := `SELECT id, name, matric_no, grade, staff_id, created_at FROM students WHERE id = $1`

	err := s.db.QueryRow(query, studentID).Scan(
		&student.ID, &student.Name, &student.MatricNo, &student.Grade, &student.StaffID, &student.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	courseQuery := `SELECT c.id, c.name, c.course_code, c.staff_id, c.created_at
					FROM student_courses sc
					JOIN courses c ON sc.course_id = c.id
					WHERE sc.student_id = $1
					ORDER BY c.created_at`
	rows, err := s.db.Query(courseQuery, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		course := &models.Course{}
		if err := rows.Scan(&course.ID, &course.Name, &course.CourseCode, &course.StaffID, &course.CreatedAt); err != nil {
			return nil, err
		}
		student.Courses = append(student.Courses, course)
	}
	return student, rows.Err()
}

func (s *Store) CreateStudent(student *models.Student) error {
	query := `INSERT INTO students (id, name, matric_no, grade, staff_id, created_at)
			  VALUES ($1, $2, $3, $4, $5, NOW())`
	_, err := s.db.Exec(query, student.ID, student.Name, student.MatricNo, student.Grade, student.StaffID)
	return err
}

func (s *Store) DeleteStudent(studentID string) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM students WHERE id = $1`, studentID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (s *Store) EnrollStudentInCourse(studentID, courseID string) error {
	query := `INSERT INTO student_courses (student_id, course_id) VALUES ($1, $2)
			  ON CONFLICT (student_id, course_id) DO NOTHING`
	_, err := s.db.Exec(query, studentID, courseID)
	return err
}

func (s *Store) CoursesByStaff(staffID string) ([]*models.Course, error) {
	query := `SELECT id, name, course_code, staff_id, created_at
			  FROM courses WHERE ($1 = '' OR staff_id = $1) ORDER BY course_code`

	rows, err := s.db.Query(query, staffID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		course := &models.Course{}
		if err := rows.Scan(&course.ID, &course.Name, &course.CourseCode, &course.StaffID, &course.CreatedAt); err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}
	return courses, rows.Err()
}

func (s *Store) CreateCourse(course *models.Course) error {
	query := `INSERT INTO courses (id, name, course_code, staff_id, created_at)
			  VALUES ($1, $2, $3, $4, NOW())`
	_, err := s.db.Exec(query, course.ID, course.Name, course.CourseCode, course.StaffID)
	return err
}
