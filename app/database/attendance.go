package database

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/attendancehelpbscs-hi/fp-attendance-sub001/app/models"
)

func (s *Store) AttendanceByID(attendanceID string) (*models.Attendance, error) {
	attendance := &models.Attendance{}
	query := `SELECT id, staff_id, name, date, created_at FROM attendances WHERE id = $1`

	err := s.db.QueryRow(query, attendanceID).Scan(
		&attendance.ID, &attendance.StaffID, &attendance.Name, &attendance.Date, &attendance.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return attendance, nil
}

func (s *Store) AttendanceByStaffAndDate(staffID, date string) (*models.Attendance, error) {
	attendance := &models.Attendance{}
	query := `SELECT id, staff_id, name, date, created_at FROM attendances
			  WHERE staff_id = $1 AND date = $2
			  ORDER BY created_at LIMIT 1`

	err := s.db.QueryRow(query, staffID, date).Scan(
		&attendance.ID, &attendance.StaffID, &attendance.Name, &attendance.Date, &attendance.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return attendance, nil
}

// AttendancesByStaff pages sessions newest first and returns the total count.
func (s *Store) AttendancesByStaff(staffID string, page, perPage int) ([]*models.Attendance, int, error) {
	var total int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM attendances WHERE staff_id = $1`, staffID).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT id, staff_id, name, date, created_at FROM attendances
			  WHERE staff_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := s.db.Query(query, staffID, perPage, (page-1)*perPage)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var attendances []*models.Attendance
	for rows.Next() {
		attendance := &models.Attendance{}
		if err := rows.Scan(&attendance.ID, &attendance.StaffID, &attendance.Name, &attendance.Date, &attendance.CreatedAt); err != nil {
			return nil, 0, err
		}
		attendances = append(attendances, attendance)
	}
	return attendances, total, rows.Err()
}

func (s *Store) CreateAttendance(attendance *models.Attendance) error {
	query := `INSERT INTO attendances (id, staff_id, name, date, created_at)
			  VALUES ($1, $2, $3, $4, NOW())`
	_, err := s.db.Exec(query, attendance.ID, attendance.StaffID, attendance.Name, attendance.Date)
	return err
}

func (s *Store) UpdateAttendance(attendanceID, name, date string) error {
	query := `UPDATE attendances SET name = $1, date = $2 WHERE id = $3`
	_, err := s.db.Exec(query, name, date, attendanceID)
	return err
}

// DeleteAttendance removes a session; child events go with it via cascade.
func (s *Store) DeleteAttendance(attendanceID string) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM attendances WHERE id = $1`, attendanceID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (s *Store) CreateStudentAttendance(event *models.StudentAttendance) error {
	query := `INSERT INTO student_attendances
			  (id, student_id, attendance_id, time_type, session_type, status, section, created_at)
			  VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), $6, $7, $8)`
	_, err := s.db.Exec(query,
		event.ID, event.StudentID, event.AttendanceID,
		string(event.TimeType), string(event.SessionType),
		string(event.Status), event.Section, event.CreatedAt)
	return err
}

// LatestPresentEvent returns the newest present row for the key, or nil.
// created_at DESC ordering is what makes the latest row authoritative.
func (s *Store) LatestPresentEvent(attendanceID, studentID string, timeType models.TimeType, sessionType models.SessionType) (*models.StudentAttendance, error) {
	query := `SELECT id, student_id, attendance_id, COALESCE(time_type, ''), COALESCE(session_type, ''), status, section, created_at
			  FROM student_attendances
			  WHERE attendance_id = $1 AND student_id = $2 AND status = 'present'
			    AND time_type = $3 AND session_type = $4
			  ORDER BY created_at DESC LIMIT 1`

	event := &models.StudentAttendance{}
	err := s.db.QueryRow(query, attendanceID, studentID, string(timeType), string(sessionType)).Scan(
		&event.ID, &event.StudentID, &event.AttendanceID, &event.TimeType,
		&event.SessionType, &event.Status, &event.Section, &event.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return event, nil
}

// SessionMarks reports whether the student has any present row and any absent
// placeholder for one session of a given attendance date.
func (s *Store) SessionMarks(attendanceID, studentID string, sessionType models.SessionType) (hasPresent, hasAbsent bool, err error) {
	query := `SELECT
			  COUNT(*) FILTER (WHERE status = 'present'),
			  COUNT(*) FILTER (WHERE status = 'absent')
			  FROM student_attendances
			  WHERE attendance_id = $1 AND student_id = $2 AND session_type = $3`

	var present, absent int
	if err = s.db.QueryRow(query, attendanceID, studentID, string(sessionType)).Scan(&present, &absent); err != nil {
		return false, false, err
	}
	return present > 0, absent > 0, nil
}

// DeleteAbsentRows retires every absent placeholder the student has on a
// calendar date, across sessions. Attendance can only improve.
func (s *Store) DeleteAbsentRows(studentID, date string) (int64, error) {
	query := `DELETE FROM student_attendances sa
			  USING attendances a
			  WHERE sa.attendance_id = a.id AND sa.student_id = $1 AND a.date = $2 AND sa.status = 'absent'`
	res, err := s.db.Exec(query, studentID, date)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// EventsByAttendance lists a session's events newest first with student info.
func (s *Store) EventsByAttendance(attendanceID string) ([]*models.StudentAttendance, error) {
	query := `SELECT sa.id, sa.student_id, sa.attendance_id, COALESCE(sa.time_type, ''), COALESCE(sa.session_type, ''),
			  sa.status, sa.section, sa.created_at, a.date,
			  st.name, st.matric_no, st.grade, st.staff_id
			  FROM student_attendances sa
			  JOIN attendances a ON sa.attendance_id = a.id
			  JOIN students st ON sa.student_id = st.id
			  WHERE sa.attendance_id = $1
			  ORDER BY sa.created_at DESC`

	rows, err := s.db.Query(query, attendanceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEventRows(rows)
}

// EventsByFilter is the aggregator's raw feed: events joined with their
// session date and student, newest first.
func (s *Store) EventsByFilter(filter models.EventFilter) ([]*models.StudentAttendance, error) {
	var conditions []string
	var args []interface{}

	add := func(clause string, value interface{}) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf(clause, len(args)))
	}

	if filter.StaffID != "" {
		add("st.staff_id = $%d", filter.StaffID)
	}
	if filter.StudentID != "" {
		add("sa.student_id = $%d", filter.StudentID)
	}
	if filter.Grade != "" {
		add("st.grade = $%d", filter.Grade)
	}
	if filter.Section != "" {
		add("sa.section = $%d", filter.Section)
	}
	if filter.SessionType != "" {
		add("sa.session_type = $%d", string(filter.SessionType))
	}
	if filter.StartDate != "" {
		add("a.date >= $%d", filter.StartDate)
	}
	if filter.EndDate != "" {
		add("a.date <= $%d", filter.EndDate)
	}

	query := `SELECT sa.id, sa.student_id, sa.attendance_id, COALESCE(sa.time_type, ''), COALESCE(sa.session_type, ''),
			  sa.status, sa.section, sa.created_at, a.date,
			  st.name, st.matric_no, st.grade, st.staff_id
			  FROM student_attendances sa
			  JOIN attendances a ON sa.attendance_id = a.id
			  JOIN students st ON sa.student_id = st.id`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY sa.created_at DESC"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEventRows(rows)
}

func scanEventRows(rows *sql.Rows) ([]*models.StudentAttendance, error) {
	var events []*models.StudentAttendance
	for rows.Next() {
		event := &models.StudentAttendance{Student: &models.Student{}}
		err := rows.Scan(
			&event.ID, &event.StudentID, &event.AttendanceID, &event.TimeType, &event.SessionType,
			&event.Status, &event.Section, &event.CreatedAt, &event.Date,
			&event.Student.Name, &event.Student.MatricNo, &event.Student.Grade, &event.Student.StaffID,
		)
		if err != nil {
			return nil, err
		}
		event.Student.ID = event.StudentID
		events = append(events, event)
	}
	return events, rows.Err()
}
