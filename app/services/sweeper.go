package services

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/attendancehelpbscs-hi/fp-attendance-sub001/app/models"
)

// SweepSummary reports what one sweep pass did. Errors collects per-staff
// failures; a failing staff never blocks the rest of the pass.
type SweepSummary struct {
	Date         string   `json:"date"`
	StaffSwept   int      `json:"staff_swept"`
	RowsInserted int      `json:"rows_inserted"`
	Errors       []string `json:"errors,omitempty"`
}

// SweepUnmarkedDays seeds absent placeholders for every student of the staff
// who has no row at all for a session on the date. Already-seeded and
// already-present students are left alone, so repeated sweeps of the same day
// are no-ops. Weekends and holidays are skipped entirely.
func SweepUnmarkedDays(store Store, staffID, date string) (int, error) {
	schoolDay, err := isSchoolDay(store, date)
	if err != nil {
		return 0, err
	}
	if !schoolDay {
		return 0, nil
	}
	students, err := store.StudentsByStaff(staffID)
	if err != nil {
		return 0, err
	}
	if len(students) == 0 {
		return 0, nil
	}
	attendance, err := GetOrCreateDailyAttendance(store, staffID, date)
	if err != nil {
		return 0, err
	}
	inserted := 0
	for _, student := range students {
		n, err := sweepStudent(store, attendance, student)
		if err != nil {
			return inserted, err
		}
		inserted += n
	}
	return inserted, nil
}

func sweepStudent(store Store, attendance *models.Attendance, student *models.Student) (int, error) {
	inserted := 0
	for _, sessionType := range []models.SessionType{models.SessionAM, models.SessionPM} {
		// Only a present check-in counts as attended; a lone check-out still
		// gets a placeholder, and an existing placeholder is never duplicated.
		checkIn, err := store.LatestPresentEvent(attendance.ID, student.ID, models.TimeIn, sessionType)
		if err != nil {
			return inserted, err
		}
		_, hasAbsent, err := store.SessionMarks(attendance.ID, student.ID, sessionType)
		if err != nil {
			return inserted, err
		}
		if checkIn != nil || hasAbsent {
			continue
		}
		row := &models.StudentAttendance{
			ID:           uuid.New().String(),
			StudentID:    student.ID,
			AttendanceID: attendance.ID,
			SessionType:  sessionType,
			Status:       models.Absent,
			Section:      student.Section(),
			CreatedAt:    time.Now(),
		}
		if err := store.CreateStudentAttendance(row); err != nil {
			return inserted, err
		}
		inserted++
	}
	return inserted, nil
}

// SeedStudentAbsence backfills the current day's absent placeholders for a
// newly enrolled student, so reports never show a gap between enrollment and
// the next nightly sweep.
func SeedStudentAbsence(store Store, staffID, studentID, date string) error {
	schoolDay, err := isSchoolDay(store, date)
	if err != nil {
		return err
	}
	if !schoolDay {
		return nil
	}
	student, err := store.StudentByID(studentID)
	if err != nil {
		return err
	}
	if student == nil {
		return nil
	}
	attendance, err := GetOrCreateDailyAttendance(store, staffID, date)
	if err != nil {
		return err
	}
	_, err = sweepStudent(store, attendance, student)
	return err
}

// SweepAllStaff runs the absence sweep for every staff account on the date.
// Staff are isolated from each other: one failure is recorded and the pass
// moves on.
func SweepAllStaff(store Store, date string) *SweepSummary {
	summary := &SweepSummary{Date: date}
	staffIDs, err := store.StaffIDs()
	if err != nil {
		summary.Errors = append(summary.Errors, fmt.Sprintf("list staff: %v", err))
		return summary
	}
	for _, staffID := range staffIDs {
		inserted, err := SweepUnmarkedDays(store, staffID, date)
		if err != nil {
			log.Printf("sweep: staff %s date %s: %v", staffID, date, err)
			summary.Errors = append(summary.Errors, fmt.Sprintf("staff %s: %v", staffID, err))
			continue
		}
		summary.StaffSwept++
		summary.RowsInserted += inserted
	}
	return summary
}

// isSchoolDay reports whether the date is a weekday with no holiday entry.
func isSchoolDay(store Store, date string) (bool, error) {
	day, err := time.ParseInLocation(DateLayout, date, time.Local)
	if err != nil {
		return false, err
	}
	if day.Weekday() == time.Saturday || day.Weekday() == time.Sunday {
		return false, nil
	}
	holidays, err := store.HolidaysInRange(date, date)
	if err != nil {
		return false, err
	}
	return len(holidays) == 0, nil
}
