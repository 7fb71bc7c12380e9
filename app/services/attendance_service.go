package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/attendancehelpbscs-hi/fp-attendance-sub001/app/apperrors"
	"github.com/attendancehelpbscs-hi/fp-attendance-sub001/app/models"
)

// Duplicate-scan windows. A repeat IN inside five minutes is a bounced badge;
// a repeat OUT inside an hour is an early-dismissal retry. Beyond the window
// the scan is accepted and the newest row becomes authoritative.
const (
	CheckInCooldown  = 5 * time.Minute
	CheckOutCooldown = 60 * time.Minute
)

func cooldownFor(timeType models.TimeType) time.Duration {
	if timeType == models.TimeOut {
		return CheckOutCooldown
	}
	return CheckInCooldown
}

// SessionTypeForTime derives the half-day session from the wall clock:
// before noon is AM, noon onward is PM.
func SessionTypeForTime(t time.Time) models.SessionType {
	if t.Hour() < 12 {
		return models.SessionAM
	}
	return models.SessionPM
}

// GetOrCreateDailyAttendance returns the staff's session row for the date,
// creating "Daily Attendance - {date}" on first use.
func GetOrCreateDailyAttendance(store Store, staffID, date string) (*models.Attendance, error) {
	attendance, err := store.AttendanceByStaffAndDate(staffID, date)
	if err != nil {
		return nil, err
	}
	if attendance != nil {
		return attendance, nil
	}
	attendance = &models.Attendance{
		ID:        uuid.New().String(),
		StaffID:   staffID,
		Name:      "Daily Attendance - " + date,
		Date:      date,
		CreatedAt: time.Now(),
	}
	if err := store.CreateAttendance(attendance); err != nil {
		return nil, err
	}
	return attendance, nil
}

// MarkRequest describes one scan or manual mark against a session.
type MarkRequest struct {
	AttendanceID string
	StudentID    string
	TimeType     models.TimeType
	SessionType  models.SessionType // derived from At when empty
	Status       models.AttendanceStatus
	At           time.Time // defaults to now
}

// MarkStudentAttendance applies the event store rules to a single scan:
// cooldown rejection, OUT-requires-prior-IN, absent-row retirement, then the
// insert. The cooldown check and the insert are not atomic; two scanners
// racing inside the window can both land, and the newest row wins on read.
func MarkStudentAttendance(store Store, req MarkRequest) (*models.StudentAttendance, error) {
	if req.TimeType != models.TimeIn && req.TimeType != models.TimeOut {
		return nil, apperrors.NewValidation("time_type must be IN or OUT")
	}
	attendance, err := store.AttendanceByID(req.AttendanceID)
	if err != nil {
		return nil, err
	}
	if attendance == nil {
		return nil, apperrors.NewNotFound("attendance session not found")
	}
	student, err := store.StudentByID(req.StudentID)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, apperrors.NewNotFound("student not found")
	}

	at := req.At
	if at.IsZero() {
		at = time.Now()
	}
	sessionType := req.SessionType
	if sessionType == "" {
		sessionType = SessionTypeForTime(at)
	}
	status := req.Status
	if status == "" {
		status = models.Present
	}

	if status == models.Absent {
		_, hasAbsent, err := store.SessionMarks(req.AttendanceID, req.StudentID, sessionType)
		if err != nil {
			return nil, err
		}
		if hasAbsent {
			return nil, apperrors.NewConflict("student is already marked absent for this session")
		}
	}

	if status == models.Present {
		if req.TimeType == models.TimeOut {
			checkIn, err := store.LatestPresentEvent(req.AttendanceID, req.StudentID, models.TimeIn, sessionType)
			if err != nil {
				return nil, err
			}
			if checkIn == nil {
				return nil, apperrors.NewValidation("student has not checked in for this session")
			}
		}
		last, err := store.LatestPresentEvent(req.AttendanceID, req.StudentID, req.TimeType, sessionType)
		if err != nil {
			return nil, err
		}
		if last != nil && at.Sub(last.CreatedAt) < cooldownFor(req.TimeType) {
			if req.TimeType == models.TimeIn {
				return nil, apperrors.NewConflict("student already checked in")
			}
			return nil, apperrors.NewConflict("student already checked out")
		}
		// A present scan retires every seeded absent row for the student on
		// this date, both sessions.
		if _, err := store.DeleteAbsentRows(req.StudentID, attendance.Date); err != nil {
			return nil, err
		}
	}

	event := &models.StudentAttendance{
		ID:           uuid.New().String(),
		StudentID:    req.StudentID,
		AttendanceID: req.AttendanceID,
		TimeType:     req.TimeType,
		SessionType:  sessionType,
		Status:       status,
		Section:      student.Section(),
		CreatedAt:    at,
	}
	if status == models.Absent {
		event.TimeType = ""
		event.SessionType = sessionType
	}
	if err := store.CreateStudentAttendance(event); err != nil {
		return nil, err
	}
	return event, nil
}

// ManualMarkPresent marks a set of students present across a set of dates,
// for correcting scanner outages after the fact. Each mark is stamped at noon
// of its date and lands in the PM session; students already holding a present
// row on a date are skipped. Returns the number of rows written.
func ManualMarkPresent(store Store, staffID string, studentIDs, dates []string) (int, error) {
	if len(studentIDs) == 0 || len(dates) == 0 {
		return 0, apperrors.NewValidation("student_ids and dates are required")
	}
	marked := 0
	for _, date := range dates {
		day, err := time.ParseInLocation(DateLayout, date, time.Local)
		if err != nil {
			return marked, apperrors.NewValidation(fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", date))
		}
		attendance, err := GetOrCreateDailyAttendance(store, staffID, date)
		if err != nil {
			return marked, err
		}
		noon := day.Add(12 * time.Hour)
		for _, studentID := range studentIDs {
			present, err := hasPresentRow(store, attendance.ID, studentID)
			if err != nil {
				return marked, err
			}
			if present {
				continue
			}
			_, err = MarkStudentAttendance(store, MarkRequest{
				AttendanceID: attendance.ID,
				StudentID:    studentID,
				TimeType:     models.TimeIn,
				At:           noon,
			})
			if err != nil {
				return marked, err
			}
			marked++
		}
	}
	return marked, nil
}

func hasPresentRow(store Store, attendanceID, studentID string) (bool, error) {
	for _, sessionType := range []models.SessionType{models.SessionAM, models.SessionPM} {
		hasPresent, _, err := store.SessionMarks(attendanceID, studentID, sessionType)
		if err != nil {
			return false, err
		}
		if hasPresent {
			return true, nil
		}
	}
	return false, nil
}
