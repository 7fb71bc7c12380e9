package services

import (
	"errors"
	"testing"
	"time"

	"github.com/attendancehelpbscs-hi/fp-attendance-sub001/app/apperrors"
	"github.com/attendancehelpbscs-hi/fp-attendance-sub001/app/models"
)

func assertStatusCode(t *testing.T, err error, want int) {
	t.Helper()
	var appErr *apperrors.Error
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *apperrors.Error, got %v", err)
	}
	if appErr.StatusCode != want {
		t.Fatalf("status code = %d, want %d (message %q)", appErr.StatusCode, want, appErr.Message)
	}
}

func markFixture(t *testing.T) (*fakeStore, *models.Attendance) {
	t.Helper()
	store := newFakeStore()
	store.addStaff("staff-1", "Ms. Reyes")
	store.addStudent("student-1", "Juan Dela Cruz", "4", "staff-1", "Sampaguita")
	attendance := store.addAttendance("att-1", "staff-1", "2025-01-06")
	return store, attendance
}

func TestMarkCheckInCooldown(t *testing.T) {
	store, attendance := markFixture(t)
	first := dayAt("2025-01-06", 7, 15)

	_, err := MarkStudentAttendance(store, MarkRequest{
		AttendanceID: attendance.ID, StudentID: "student-1", TimeType: models.TimeIn, At: first,
	})
	if err != nil {
		t.Fatalf("first check-in: %v", err)
	}

	_, err = MarkStudentAttendance(store, MarkRequest{
		AttendanceID: attendance.ID, StudentID: "student-1", TimeType: models.TimeIn, At: first.Add(3 * time.Minute),
	})
	assertStatusCode(t, err, 409)

	_, err = MarkStudentAttendance(store, MarkRequest{
		AttendanceID: attendance.ID, StudentID: "student-1", TimeType: models.TimeIn, At: first.Add(6 * time.Minute),
	})
	if err != nil {
		t.Fatalf("re-scan past the window: %v", err)
	}
}

func TestCheckOutRequiresCheckIn(t *testing.T) {
	store, attendance := markFixture(t)
	_, err := MarkStudentAttendance(store, MarkRequest{
		AttendanceID: attendance.ID, StudentID: "student-1", TimeType: models.TimeOut, At: dayAt("2025-01-06", 11, 0),
	})
	assertStatusCode(t, err, 400)
}

func TestCheckOutCooldown(t *testing.T) {
	store, attendance := markFixture(t)
	checkIn := dayAt("2025-01-06", 7, 0)
	if _, err := MarkStudentAttendance(store, MarkRequest{
		AttendanceID: attendance.ID, StudentID: "student-1", TimeType: models.TimeIn, At: checkIn,
	}); err != nil {
		t.Fatalf("check-in: %v", err)
	}

	firstOut := dayAt("2025-01-06", 11, 30)
	if _, err := MarkStudentAttendance(store, MarkRequest{
		AttendanceID: attendance.ID, StudentID: "student-1", TimeType: models.TimeOut, At: firstOut,
	}); err != nil {
		t.Fatalf("check-out: %v", err)
	}

	_, err := MarkStudentAttendance(store, MarkRequest{
		AttendanceID: attendance.ID, StudentID: "student-1", TimeType: models.TimeOut, At: firstOut.Add(30 * time.Minute),
	})
	assertStatusCode(t, err, 409)

	// A re-scan an hour later is a legitimate correction, not a duplicate.
	if _, err := MarkStudentAttendance(store, MarkRequest{
		AttendanceID: attendance.ID, StudentID: "student-1", TimeType: models.TimeOut, At: firstOut.Add(61 * time.Minute),
	}); err != nil {
		t.Fatalf("re-scan past the window: %v", err)
	}
}

func TestPresentScanRetiresAbsentRows(t *testing.T) {
	store, attendance := markFixture(t)
	store.addEvent(attendance.ID, "student-1", "", models.SessionAM, models.Absent, dayAt("2025-01-06", 0, 5))
	store.addEvent(attendance.ID, "student-1", "", models.SessionPM, models.Absent, dayAt("2025-01-06", 0, 5))

	if _, err := MarkStudentAttendance(store, MarkRequest{
		AttendanceID: attendance.ID, StudentID: "student-1", TimeType: models.TimeIn, At: dayAt("2025-01-06", 7, 20),
	}); err != nil {
		t.Fatalf("check-in: %v", err)
	}

	for _, e := range store.events {
		if e.Status == models.Absent {
			t.Fatalf("absent row %s survived a present scan", e.ID)
		}
	}
	if len(store.events) != 1 {
		t.Fatalf("expected exactly the present row, got %d events", len(store.events))
	}
}

func TestDuplicateAbsentMarkRejected(t *testing.T) {
	store, attendance := markFixture(t)

	if _, err := MarkStudentAttendance(store, MarkRequest{
		AttendanceID: attendance.ID, StudentID: "student-1",
		TimeType: models.TimeIn, Status: models.Absent, At: dayAt("2025-01-06", 8, 0),
	}); err != nil {
		t.Fatalf("first absent mark: %v", err)
	}

	_, err := MarkStudentAttendance(store, MarkRequest{
		AttendanceID: attendance.ID, StudentID: "student-1",
		TimeType: models.TimeIn, Status: models.Absent, At: dayAt("2025-01-06", 8, 5),
	})
	assertStatusCode(t, err, 409)
}

func TestSessionDerivedFromClock(t *testing.T) {
	store, attendance := markFixture(t)

	morning, err := MarkStudentAttendance(store, MarkRequest{
		AttendanceID: attendance.ID, StudentID: "student-1", TimeType: models.TimeIn, At: dayAt("2025-01-06", 8, 0),
	})
	if err != nil {
		t.Fatalf("morning scan: %v", err)
	}
	if morning.SessionType != models.SessionAM {
		t.Errorf("8:00 scan landed in %s, want AM", morning.SessionType)
	}

	afternoon, err := MarkStudentAttendance(store, MarkRequest{
		AttendanceID: attendance.ID, StudentID: "student-1", TimeType: models.TimeIn, At: dayAt("2025-01-06", 12, 0),
	})
	if err != nil {
		t.Fatalf("afternoon scan: %v", err)
	}
	if afternoon.SessionType != models.SessionPM {
		t.Errorf("12:00 scan landed in %s, want PM", afternoon.SessionType)
	}
}

func TestMarkUnknownTargets(t *testing.T) {
	store, attendance := markFixture(t)

	_, err := MarkStudentAttendance(store, MarkRequest{
		AttendanceID: "missing", StudentID: "student-1", TimeType: models.TimeIn,
	})
	assertStatusCode(t, err, 404)

	_, err = MarkStudentAttendance(store, MarkRequest{
		AttendanceID: attendance.ID, StudentID: "missing", TimeType: models.TimeIn,
	})
	assertStatusCode(t, err, 404)

	_, err = MarkStudentAttendance(store, MarkRequest{
		AttendanceID: attendance.ID, StudentID: "student-1", TimeType: "SIDEWAYS",
	})
	assertStatusCode(t, err, 400)
}

func TestGetOrCreateDailyAttendance(t *testing.T) {
	store := newFakeStore()
	store.addStaff("staff-1", "Ms. Reyes")

	first, err := GetOrCreateDailyAttendance(store, "staff-1", "2025-01-07")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if first.Name != "Daily Attendance - 2025-01-07" {
		t.Errorf("session name = %q", first.Name)
	}

	second, err := GetOrCreateDailyAttendance(store, "staff-1", "2025-01-07")
	if err != nil {
		t.Fatalf("reuse: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("second call created a new session: %s vs %s", second.ID, first.ID)
	}
	if len(store.attendances) != 1 {
		t.Errorf("expected one session, got %d", len(store.attendances))
	}
}

func TestManualMarkPresentSkipsMarked(t *testing.T) {
	store := newFakeStore()
	store.addStaff("staff-1", "Ms. Reyes")
	store.addStudent("student-1", "Juan Dela Cruz", "4", "staff-1", "Sampaguita")
	store.addStudent("student-2", "Maria Clara", "4", "staff-1", "Sampaguita")
	attendance := store.addAttendance("att-1", "staff-1", "2025-01-06")
	store.addEvent(attendance.ID, "student-1", models.TimeIn, models.SessionAM, models.Present, dayAt("2025-01-06", 7, 10))

	marked, err := ManualMarkPresent(store, "staff-1", []string{"student-1", "student-2"}, []string{"2025-01-06"})
	if err != nil {
		t.Fatalf("manual mark: %v", err)
	}
	if marked != 1 {
		t.Fatalf("marked = %d, want 1", marked)
	}

	_, err = ManualMarkPresent(store, "staff-1", nil, []string{"2025-01-06"})
	assertStatusCode(t, err, 400)
	_, err = ManualMarkPresent(store, "staff-1", []string{"student-1"}, []string{"06-01-2025"})
	assertStatusCode(t, err, 400)
}
