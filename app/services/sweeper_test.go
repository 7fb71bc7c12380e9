package services

import (
	"testing"

	"github.com/attendancehelpbscs-hi/fp-attendance-sub001/app/models"
)

func TestSweepSeedsBothSessions(t *testing.T) {
	store := newFakeStore()
	store.addStaff("staff-1", "Ms. Reyes")
	store.addStudent("student-1", "Juan Dela Cruz", "4", "staff-1", "Sampaguita")
	store.addStudent("student-2", "Maria Clara", "4", "staff-1", "Sampaguita")

	inserted, err := SweepUnmarkedDays(store, "staff-1", "2025-01-06")
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if inserted != 4 {
		t.Fatalf("inserted = %d, want 4 (two students, two sessions)", inserted)
	}
	for _, e := range store.events {
		if e.Status != models.Absent || e.TimeType != "" {
			t.Errorf("seeded row should be a timeless absent placeholder, got %+v", e)
		}
	}

	// Second pass over the same day must not duplicate anything.
	inserted, err = SweepUnmarkedDays(store, "staff-1", "2025-01-06")
	if err != nil {
		t.Fatalf("second sweep: %v", err)
	}
	if inserted != 0 {
		t.Fatalf("second sweep inserted %d rows, want 0", inserted)
	}
}

func TestSweepLeavesMarkedSessionsAlone(t *testing.T) {
	store := newFakeStore()
	store.addStaff("staff-1", "Ms. Reyes")
	store.addStudent("student-1", "Juan Dela Cruz", "4", "staff-1", "Sampaguita")
	attendance := store.addAttendance("att-1", "staff-1", "2025-01-06")
	store.addEvent(attendance.ID, "student-1", models.TimeIn, models.SessionAM, models.Present, dayAt("2025-01-06", 7, 10))

	inserted, err := SweepUnmarkedDays(store, "staff-1", "2025-01-06")
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if inserted != 1 {
		t.Fatalf("inserted = %d, want 1 (only the PM placeholder)", inserted)
	}
	hasPresent, hasAbsent, _ := store.SessionMarks(attendance.ID, "student-1", models.SessionPM)
	if hasPresent || !hasAbsent {
		t.Fatalf("PM session marks = present %v absent %v, want placeholder only", hasPresent, hasAbsent)
	}
}

func TestSweepSeedsDespiteLoneCheckOut(t *testing.T) {
	store := newFakeStore()
	store.addStaff("staff-1", "Ms. Reyes")
	store.addStudent("student-1", "Juan Dela Cruz", "4", "staff-1", "Sampaguita")
	attendance := store.addAttendance("att-1", "staff-1", "2025-01-06")
	store.addEvent(attendance.ID, "student-1", models.TimeOut, models.SessionAM, models.Present, dayAt("2025-01-06", 11, 30))

	// A check-out without a check-in does not count as attended.
	inserted, err := SweepUnmarkedDays(store, "staff-1", "2025-01-06")
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if inserted != 2 {
		t.Fatalf("inserted = %d, want 2", inserted)
	}
}

func TestSweepSkipsNonSchoolDays(t *testing.T) {
	store := newFakeStore()
	store.addStaff("staff-1", "Ms. Reyes")
	store.addStudent("student-1", "Juan Dela Cruz", "4", "staff-1", "Sampaguita")
	store.holidays = append(store.holidays, &models.Holiday{ID: "h1", Date: "2025-01-07", Name: "Foundation Day", Type: models.HolidaySpecial})

	// 2025-01-04 is a Saturday.
	if inserted, err := SweepUnmarkedDays(store, "staff-1", "2025-01-04"); err != nil || inserted != 0 {
		t.Fatalf("weekend sweep: inserted %d, err %v", inserted, err)
	}
	if inserted, err := SweepUnmarkedDays(store, "staff-1", "2025-01-07"); err != nil || inserted != 0 {
		t.Fatalf("holiday sweep: inserted %d, err %v", inserted, err)
	}
	if len(store.events) != 0 {
		t.Fatalf("expected no rows, got %d", len(store.events))
	}
}

func TestSweepAllStaffIsolatesFailures(t *testing.T) {
	store := newFakeStore()
	store.addStaff("staff-bad", "Mr. Flaky")
	store.addStaff("staff-good", "Ms. Reyes")
	store.addStudent("student-1", "Juan Dela Cruz", "4", "staff-good", "Sampaguita")
	store.failStudentsFor = "staff-bad"

	summary := SweepAllStaff(store, "2025-01-06")
	if summary.StaffSwept != 1 {
		t.Errorf("staff swept = %d, want 1", summary.StaffSwept)
	}
	if summary.RowsInserted != 2 {
		t.Errorf("rows inserted = %d, want 2", summary.RowsInserted)
	}
	if len(summary.Errors) != 1 {
		t.Errorf("errors = %v, want one entry for the failing staff", summary.Errors)
	}
}

func TestSeedStudentAbsence(t *testing.T) {
	store := newFakeStore()
	store.addStaff("staff-1", "Ms. Reyes")
	store.addStudent("student-1", "Juan Dela Cruz", "4", "staff-1", "Sampaguita")

	if err := SeedStudentAbsence(store, "staff-1", "student-1", "2025-01-06"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if len(store.events) != 2 {
		t.Fatalf("expected AM and PM placeholders, got %d rows", len(store.events))
	}
	if err := SeedStudentAbsence(store, "staff-1", "student-1", "2025-01-06"); err != nil {
		t.Fatalf("second seed: %v", err)
	}
	if len(store.events) != 2 {
		t.Fatalf("second seed duplicated rows: %d", len(store.events))
	}
}
