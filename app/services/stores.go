// Package services holds the attendance engine: the late-arrival classifier,
// the event store rules, the absence sweeper, the report aggregator and the
// SF2 form builder. Everything here talks to persistence through the Store
// interface so the rules stay testable without a database.
package services

import (
	"github.com/attendancehelpbscs-hi/fp-attendance-sub001/app/models"
)

// Store is the persistence surface the services consume. *database.Store
// implements it; tests substitute an in-memory fake.
type Store interface {
	StaffIDs() ([]string, error)
	StaffByID(staffID string) (*models.Staff, error)
	StaffSettings(staffID string) (*models.StaffAttendanceSettings, error)

	StudentsByStaff(staffID string) ([]*models.Student, error)
	StudentByID(studentID string) (*models.Student, error)

	AttendanceByID(attendanceID string) (*models.Attendance, error)
	AttendanceByStaffAndDate(staffID, date string) (*models.Attendance, error)
	CreateAttendance(attendance *models.Attendance) error

	CreateStudentAttendance(event *models.StudentAttendance) error
	LatestPresentEvent(attendanceID, studentID string, timeType models.TimeType, sessionType models.SessionType) (*models.StudentAttendance, error)
	SessionMarks(attendanceID, studentID string, sessionType models.SessionType) (hasPresent, hasAbsent bool, err error)
	DeleteAbsentRows(studentID, date string) (int64, error)
	EventsByFilter(filter models.EventFilter) ([]*models.StudentAttendance, error)

	HolidaysInRange(start, end string) ([]*models.Holiday, error)
	InsertAuditLog(entry *models.AuditLog) error
}

// DateLayout is the calendar-date format used across the schema.
const DateLayout = "2006-01-02"
