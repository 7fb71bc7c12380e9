package services

import (
	"testing"
	"time"

	"github.com/attendancehelpbscs-hi/fp-attendance-sub001/app/models"
)

func TestResolveDateRange(t *testing.T) {
	now := time.Date(2025, 1, 31, 10, 0, 0, 0, time.Local)
	tests := []struct {
		name       string
		rangeName  string
		start, end string
		wantStart  string
		wantEnd    string
		wantErr    bool
	}{
		{name: "default is 7 days", wantStart: "2025-01-25", wantEnd: "2025-01-31"},
		{name: "14 days", rangeName: "14days", wantStart: "2025-01-18", wantEnd: "2025-01-31"},
		{name: "30 days", rangeName: "30days", wantStart: "2025-01-02", wantEnd: "2025-01-31"},
		{name: "365 days", rangeName: "365days", wantStart: "2024-02-02", wantEnd: "2025-01-31"},
		{name: "explicit dates win", rangeName: "30days", start: "2025-01-10", end: "2025-01-12", wantStart: "2025-01-10", wantEnd: "2025-01-12"},
		{name: "unknown shorthand", rangeName: "fortnight", wantErr: true},
		{name: "half a custom range", start: "2025-01-10", wantErr: true},
		{name: "inverted custom range", start: "2025-01-12", end: "2025-01-10", wantErr: true},
		{name: "malformed date", start: "10/01/2025", end: "2025-01-12", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, err := ResolveDateRange(tt.rangeName, tt.start, tt.end, now)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %s..%s", start, end)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("range = %s..%s, want %s..%s", start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	page, meta := Paginate(items, 2, 3)
	if len(page) != 3 || page[0] != 4 {
		t.Errorf("page 2 = %v", page)
	}
	if meta.TotalItems != 7 || meta.TotalPages != 3 {
		t.Errorf("meta = %+v", meta)
	}

	page, meta = Paginate(items, 3, 3)
	if len(page) != 1 || page[0] != 7 {
		t.Errorf("last page = %v", page)
	}

	page, meta = Paginate(items, 9, 3)
	if len(page) != 0 {
		t.Errorf("out-of-range page should be empty, got %v", page)
	}

	_, meta = Paginate([]int{}, 1, 10)
	if meta.TotalPages != 1 {
		t.Errorf("empty set total_pages = %d, want 1", meta.TotalPages)
	}

	page, meta = Paginate(items, 0, 0)
	if meta.Page != 1 || meta.PerPage != 10 || len(page) != 7 {
		t.Errorf("defaults not applied: %+v, page %v", meta, page)
	}
}

func reportFixture(t *testing.T) *fakeStore {
	t.Helper()
	store := newFakeStore()
	store.addStaff("staff-1", "Ms. Reyes")
	store.addStudent("student-1", "Juan Dela Cruz", "4", "staff-1", "Sampaguita")
	store.addStudent("student-2", "Maria Clara", "4", "staff-1", "Sampaguita")
	store.addStudent("student-3", "Jose Rizal", "5", "staff-1", "Orchid")
	return store
}

func TestAttendanceReportsGrouping(t *testing.T) {
	store := reportFixture(t)
	att := store.addAttendance("att-1", "staff-1", "2025-01-06")

	// Student 1: scanned in and out. Counted present once despite two rows.
	store.addEvent(att.ID, "student-1", models.TimeIn, models.SessionAM, models.Present, dayAt("2025-01-06", 7, 10))
	store.addEvent(att.ID, "student-1", models.TimeOut, models.SessionAM, models.Present, dayAt("2025-01-06", 11, 30))
	// Student 2: swept absent, then a stale absent row survives a later scan.
	store.addEvent(att.ID, "student-2", "", models.SessionAM, models.Absent, dayAt("2025-01-06", 0, 5))
	store.addEvent(att.ID, "student-2", models.TimeIn, models.SessionAM, models.Present, dayAt("2025-01-06", 9, 0))
	// Student 3: different grade and section, late check-in.
	store.addEvent(att.ID, "student-3", models.TimeIn, models.SessionAM, models.Present, dayAt("2025-01-06", 7, 45))

	rows, err := GetAttendanceReports(store, models.EventFilter{StaffID: "staff-1"})
	if err != nil {
		t.Fatalf("reports: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected one row per (date, grade, section), got %d: %+v", len(rows), rows)
	}

	byKey := map[string]models.ReportRow{}
	for _, r := range rows {
		byKey[r.Grade+"/"+r.Section] = r
	}

	sampaguita := byKey["4/Sampaguita"]
	if sampaguita.Present != 2 {
		t.Errorf("Sampaguita present = %d, want 2", sampaguita.Present)
	}
	// The stale absent row keeps student 2 in the absent set as well.
	if sampaguita.Absent != 1 {
		t.Errorf("Sampaguita absent = %d, want 1", sampaguita.Absent)
	}
	if sampaguita.Rate != round2(2.0/3.0*100) {
		t.Errorf("Sampaguita rate = %v, want %v", sampaguita.Rate, round2(2.0/3.0*100))
	}

	orchid := byKey["5/Orchid"]
	if orchid.Present != 1 || orchid.Absent != 0 {
		t.Errorf("Orchid = %+v", orchid)
	}
	if orchid.Late != 1 {
		t.Errorf("Orchid late = %d, want 1 (7:45 check-in)", orchid.Late)
	}
	if orchid.Rate != 100 {
		t.Errorf("Orchid rate = %v, want 100", orchid.Rate)
	}
}

func TestStudentStatusPriority(t *testing.T) {
	store := reportFixture(t)
	att := store.addAttendance("att-1", "staff-1", "2025-01-06")

	// student-1: late check-in plus check-out, late wins.
	store.addEvent(att.ID, "student-1", models.TimeIn, models.SessionAM, models.Present, dayAt("2025-01-06", 8, 15))
	store.addEvent(att.ID, "student-1", models.TimeOut, models.SessionAM, models.Present, dayAt("2025-01-06", 11, 30))
	// student-2: only a check-out row.
	store.addEvent(att.ID, "student-2", models.TimeOut, models.SessionAM, models.Present, dayAt("2025-01-06", 11, 35))
	// student-3: swept absent.
	store.addEvent(att.ID, "student-3", "", models.SessionAM, models.Absent, dayAt("2025-01-06", 0, 5))

	rows, err := GetStudentAttendanceReports(store, models.EventFilter{StaffID: "staff-1"})
	if err != nil {
		t.Fatalf("student reports: %v", err)
	}
	statuses := map[string]string{}
	checkIns := map[string]string{}
	for _, r := range rows {
		statuses[r.StudentID] = r.Status
		checkIns[r.StudentID] = r.CheckInAt
	}
	if statuses["student-1"] != "late" {
		t.Errorf("student-1 status = %q, want late", statuses["student-1"])
	}
	if checkIns["student-1"] != "8:15 AM" {
		t.Errorf("student-1 check-in = %q, want 8:15 AM", checkIns["student-1"])
	}
	if statuses["student-2"] != "departure" {
		t.Errorf("student-2 status = %q, want departure", statuses["student-2"])
	}
	if statuses["student-3"] != "absent" {
		t.Errorf("student-3 status = %q, want absent", statuses["student-3"])
	}
}

func TestAttendanceSummary(t *testing.T) {
	store := reportFixture(t)
	att1 := store.addAttendance("att-1", "staff-1", "2025-01-06")
	att2 := store.addAttendance("att-2", "staff-1", "2025-01-07")

	// student-1: present both days. student-2: present then absent.
	store.addEvent(att1.ID, "student-1", models.TimeIn, models.SessionAM, models.Present, dayAt("2025-01-06", 7, 10))
	store.addEvent(att2.ID, "student-1", models.TimeIn, models.SessionAM, models.Present, dayAt("2025-01-07", 7, 12))
	store.addEvent(att1.ID, "student-2", models.TimeIn, models.SessionAM, models.Present, dayAt("2025-01-06", 7, 20))
	store.addEvent(att2.ID, "student-2", "", models.SessionAM, models.Absent, dayAt("2025-01-07", 0, 5))

	summary, err := GetAttendanceSummary(store, models.EventFilter{StaffID: "staff-1"})
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if summary.TotalStudents != 2 {
		t.Errorf("total students = %d, want 2", summary.TotalStudents)
	}
	if summary.PerfectAttendanceCount != 1 {
		t.Errorf("perfect = %d, want 1", summary.PerfectAttendanceCount)
	}
	if summary.LowAttendanceCount != 1 {
		t.Errorf("low = %d, want 1 (50%% is under 70%%)", summary.LowAttendanceCount)
	}
	if summary.AverageRate != 75 {
		t.Errorf("average rate = %v, want 75", summary.AverageRate)
	}
}

func TestDashboardSweepsBeforeReading(t *testing.T) {
	store := reportFixture(t)

	stats, err := GetDashboardStats(store, "staff-1", "2025-01-06")
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if stats.TotalStudents != 3 {
		t.Errorf("total students = %d, want 3", stats.TotalStudents)
	}
	// Nothing was scanned and the nightly job has not run, yet the barrier
	// sweep must already show everyone absent.
	if stats.AbsentToday != 3 {
		t.Errorf("absent today = %d, want 3", stats.AbsentToday)
	}
	if stats.PresentToday != 0 || stats.Rate != 0 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestSweepBarrierCoversCurrentDay(t *testing.T) {
	now := dayAt("2025-01-06", 9, 0)

	store := reportFixture(t)
	filter := models.EventFilter{StaffID: "staff-1", StartDate: "2025-01-01", EndDate: "2025-01-06"}
	if err := sweepThroughToday(store, filter, now); err != nil {
		t.Fatalf("sweep barrier: %v", err)
	}
	rows, err := GetStudentAttendanceReports(store, models.EventFilter{
		StaffID:   "staff-1",
		StartDate: "2025-01-06",
		EndDate:   "2025-01-06",
	})
	if err != nil {
		t.Fatalf("reports: %v", err)
	}
	// Nothing was scanned and the nightly job has not run, yet the read-time
	// sweep already seeded both sessions for every student.
	if len(rows) != 6 {
		t.Fatalf("rows = %d, want 6 (3 students x AM/PM)", len(rows))
	}
	for _, row := range rows {
		if row.Status != "absent" {
			t.Errorf("student %s %s = %q, want absent", row.StudentID, row.SessionType, row.Status)
		}
	}

	// A window that closed before the current day is left alone.
	past := reportFixture(t)
	earlier := models.EventFilter{StaffID: "staff-1", StartDate: "2025-01-01", EndDate: "2025-01-05"}
	if err := sweepThroughToday(past, earlier, now); err != nil {
		t.Fatalf("sweep barrier: %v", err)
	}
	if len(past.events) != 0 {
		t.Errorf("expected no seeded rows for a past-only window, got %d", len(past.events))
	}
}

func TestUniqueGradesAndSections(t *testing.T) {
	store := reportFixture(t)
	grades, sections, err := UniqueGradesAndSections(store, "staff-1")
	if err != nil {
		t.Fatalf("filters: %v", err)
	}
	if len(grades) != 2 || grades[0] != "4" || grades[1] != "5" {
		t.Errorf("grades = %v", grades)
	}
	if len(sections) != 2 || sections[0] != "Orchid" || sections[1] != "Sampaguita" {
		t.Errorf("sections = %v", sections)
	}
}

func TestGetMonthlySummary(t *testing.T) {
	store := reportFixture(t)
	att1 := store.addAttendance("att-1", "staff-1", "2025-01-06")
	att2 := store.addAttendance("att-2", "staff-1", "2025-01-07")

	store.addEvent(att1.ID, "student-1", models.TimeIn, models.SessionAM, models.Present, dayAt("2025-01-06", 7, 10))
	store.addEvent(att1.ID, "student-1", models.TimeIn, models.SessionPM, models.Present, dayAt("2025-01-06", 12, 40))
	store.addEvent(att2.ID, "student-1", "", models.SessionAM, models.Absent, dayAt("2025-01-07", 0, 5))
	store.addEvent(att2.ID, "student-1", "", models.SessionPM, models.Absent, dayAt("2025-01-07", 0, 5))

	rows, start, end, err := GetMonthlySummary(store, "staff-1", "2025-01")
	if err != nil {
		t.Fatalf("monthly summary: %v", err)
	}
	if start != "2025-01-01" || end != "2025-01-31" {
		t.Errorf("month bounds = %s..%s", start, end)
	}
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}
	row := rows[0]
	if row.PresentDays != 1.0 || row.AbsentDays != 1.0 {
		t.Errorf("days = %v present / %v absent, want 1.0 each", row.PresentDays, row.AbsentDays)
	}
	if row.Rate != 50 {
		t.Errorf("rate = %v, want 50", row.Rate)
	}

	if _, _, _, err := GetMonthlySummary(store, "staff-1", "January"); err == nil {
		t.Fatal("expected an error for a malformed month")
	}
}

func TestGetStudentSummary(t *testing.T) {
	store := reportFixture(t)
	att1 := store.addAttendance("att-1", "staff-1", "2025-01-06")
	att2 := store.addAttendance("att-2", "staff-1", "2025-01-07")

	store.addEvent(att1.ID, "student-1", models.TimeIn, models.SessionAM, models.Present, dayAt("2025-01-06", 8, 30))
	store.addEvent(att2.ID, "student-1", "", models.SessionAM, models.Absent, dayAt("2025-01-07", 0, 5))

	summary, err := GetStudentSummary(store, "staff-1", "student-1", "2025-01-01", "2025-01-31")
	if err != nil {
		t.Fatalf("student summary: %v", err)
	}
	if summary.TotalSessions != 2 || summary.PresentCount != 1 || summary.AbsentCount != 1 {
		t.Errorf("summary = %+v", summary)
	}
	if summary.LateCount != 1 {
		t.Errorf("late count = %d, want 1 (8:30 check-in)", summary.LateCount)
	}
	if summary.AttendanceRate != 50 {
		t.Errorf("rate = %v, want 50", summary.AttendanceRate)
	}

	_, err = GetStudentSummary(store, "staff-1", "missing", "2025-01-01", "2025-01-31")
	assertStatusCode(t, err, 404)
}
