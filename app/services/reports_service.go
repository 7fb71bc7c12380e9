package services

import (
	"math"
	"sort"
	"time"

	"github.com/attendancehelpbscs-hi/fp-attendance-sub001/app/apperrors"
	"github.com/attendancehelpbscs-hi/fp-attendance-sub001/app/models"
)

// Named report ranges, all ending today and counting back N-1 days.
var namedRanges = map[string]int{
	"7days":   7,
	"14days":  14,
	"30days":  30,
	"60days":  60,
	"90days":  90,
	"180days": 180,
	"365days": 365,
}

// ResolveDateRange turns either a named shorthand or an explicit start/end
// pair into inclusive YYYY-MM-DD bounds. Explicit dates win over the name;
// an empty request defaults to the last 7 days.
func ResolveDateRange(rangeName, startDate, endDate string, now time.Time) (string, string, error) {
	if startDate != "" || endDate != "" {
		if startDate == "" || endDate == "" {
			return "", "", apperrors.NewValidation("start_date and end_date must be given together")
		}
		start, err := time.ParseInLocation(DateLayout, startDate, now.Location())
		if err != nil {
			return "", "", apperrors.NewValidation("invalid start_date, expected YYYY-MM-DD")
		}
		end, err := time.ParseInLocation(DateLayout, endDate, now.Location())
		if err != nil {
			return "", "", apperrors.NewValidation("invalid end_date, expected YYYY-MM-DD")
		}
		if end.Before(start) {
			return "", "", apperrors.NewValidation("end_date is before start_date")
		}
		return startDate, endDate, nil
	}
	if rangeName == "" {
		rangeName = "7days"
	}
	days, ok := namedRanges[rangeName]
	if !ok {
		return "", "", apperrors.NewValidation("unknown range, expected one of 7days, 14days, 30days, 60days, 90days, 180days, 365days")
	}
	end := now
	start := end.AddDate(0, 0, -(days - 1))
	return start.Format(DateLayout), end.Format(DateLayout), nil
}

// Paginate slices items for one page and builds the meta block. Pagination is
// applied after aggregation so totals always describe the whole result set;
// total_pages is never below 1, even for an empty set.
func Paginate[T any](items []T, page, perPage int) ([]T, models.PaginationMeta) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 10
	}
	total := len(items)
	totalPages := (total + perPage - 1) / perPage
	if totalPages < 1 {
		totalPages = 1
	}
	meta := models.PaginationMeta{
		TotalItems: total,
		TotalPages: totalPages,
		Page:       page,
		PerPage:    perPage,
	}
	offset := (page - 1) * perPage
	if offset >= total {
		return []T{}, meta
	}
	end := offset + perPage
	if end > total {
		end = total
	}
	return items[offset:end], meta
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func attendanceRate(present, absent int) float64 {
	if present+absent == 0 {
		return 0
	}
	return round2(float64(present) / float64(present+absent) * 100)
}

func lateOptionsForStaff(store Store, staffID string) (LateOptions, error) {
	if staffID == "" {
		return LateOptions{}, nil
	}
	settings, err := store.StaffSettings(staffID)
	if err != nil {
		return LateOptions{}, err
	}
	return LateOptionsFromSettings(settings), nil
}

// sweepThroughToday runs the absence sweep for the current day when the
// requested window reaches it. Elapsed days are settled by the nightly job,
// but a same-day read would otherwise count students with no rows yet as
// attending.
func sweepThroughToday(store Store, filter models.EventFilter, now time.Time) error {
	if filter.StaffID == "" {
		return nil
	}
	today := now.Format(DateLayout)
	if filter.StartDate > today || filter.EndDate < today {
		return nil
	}
	_, err := SweepUnmarkedDays(store, filter.StaffID, today)
	return err
}

type groupAgg struct {
	present map[string]bool
	absent  map[string]bool
	late    map[string]bool
}

func newGroupAgg() *groupAgg {
	return &groupAgg{
		present: map[string]bool{},
		absent:  map[string]bool{},
		late:    map[string]bool{},
	}
}

// GetAttendanceReports aggregates raw events into per-(date, grade, section)
// rows. Students are counted once per group no matter how many rows they
// produced; the present and absent sets are built independently, so a student
// whose stale absent rows survived shows up in both counts. When the filter
// pins a session the grouping splits per session as well.
func GetAttendanceReports(store Store, filter models.EventFilter) ([]models.ReportRow, error) {
	if err := sweepThroughToday(store, filter, time.Now()); err != nil {
		return nil, err
	}
	opts, err := lateOptionsForStaff(store, filter.StaffID)
	if err != nil {
		return nil, err
	}
	events, err := store.EventsByFilter(filter)
	if err != nil {
		return nil, err
	}

	type key struct {
		date, grade, section string
		session              models.SessionType
	}
	groups := map[key]*groupAgg{}
	for _, e := range events {
		grade := ""
		if e.Student != nil {
			grade = e.Student.Grade
		}
		k := key{date: e.Date, grade: grade, section: e.Section}
		if filter.SessionType != "" {
			k.session = e.SessionType
		}
		g := groups[k]
		if g == nil {
			g = newGroupAgg()
			groups[k] = g
		}
		switch e.Status {
		case models.Present:
			g.present[e.StudentID] = true
			if IsLateArrival(e.CreatedAt, e.SessionType, e.TimeType, opts) {
				g.late[e.StudentID] = true
			}
		case models.Absent:
			g.absent[e.StudentID] = true
		}
	}

	rows := make([]models.ReportRow, 0, len(groups))
	for k, g := range groups {
		rows = append(rows, models.ReportRow{
			Date:        k.date,
			Grade:       k.grade,
			Section:     k.section,
			SessionType: k.session,
			Present:     len(g.present),
			Absent:      len(g.absent),
			Late:        len(g.late),
			Rate:        attendanceRate(len(g.present), len(g.absent)),
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Date != rows[j].Date {
			return rows[i].Date > rows[j].Date
		}
		if rows[i].Grade != rows[j].Grade {
			return rows[i].Grade < rows[j].Grade
		}
		if rows[i].Section != rows[j].Section {
			return rows[i].Section < rows[j].Section
		}
		return rows[i].SessionType < rows[j].SessionType
	})
	return rows, nil
}

// The clock format used for check-in/out display columns.
const displayClockLayout = "3:04 PM"

// GetStudentAttendanceReports resolves each (student, date, session) group to
// one display row. Status priority: a late check-in beats plain present, any
// check-in beats a lone check-out ("departure"), and only a group with no
// present row at all reads absent.
func GetStudentAttendanceReports(store Store, filter models.EventFilter) ([]models.StudentReportRow, error) {
	if err := sweepThroughToday(store, filter, time.Now()); err != nil {
		return nil, err
	}
	opts, err := lateOptionsForStaff(store, filter.StaffID)
	if err != nil {
		return nil, err
	}
	events, err := store.EventsByFilter(filter)
	if err != nil {
		return nil, err
	}

	type key struct {
		studentID, date string
		session         models.SessionType
	}
	type cell struct {
		student   *models.Student
		section   string
		latestIn  *models.StudentAttendance
		latestOut *models.StudentAttendance
		hasAbsent bool
	}
	cells := map[key]*cell{}
	for _, e := range events {
		k := key{studentID: e.StudentID, date: e.Date, session: e.SessionType}
		c := cells[k]
		if c == nil {
			c = &cell{}
			cells[k] = c
		}
		if c.student == nil {
			c.student = e.Student
		}
		if c.section == "" {
			c.section = e.Section
		}
		switch {
		case e.Status == models.Absent:
			c.hasAbsent = true
		case e.TimeType == models.TimeIn:
			if c.latestIn == nil || e.CreatedAt.After(c.latestIn.CreatedAt) {
				c.latestIn = e
			}
		case e.TimeType == models.TimeOut:
			if c.latestOut == nil || e.CreatedAt.After(c.latestOut.CreatedAt) {
				c.latestOut = e
			}
		}
	}

	rows := make([]models.StudentReportRow, 0, len(cells))
	for k, c := range cells {
		row := models.StudentReportRow{
			Date:        k.date,
			StudentID:   k.studentID,
			Section:     c.section,
			SessionType: k.session,
		}
		if c.student != nil {
			row.StudentName = c.student.Name
			row.MatricNo = c.student.MatricNo
			row.Grade = c.student.Grade
		}
		switch {
		case c.latestIn != nil && IsLateArrival(c.latestIn.CreatedAt, k.session, models.TimeIn, opts):
			row.Status = "late"
		case c.latestIn != nil:
			row.Status = "present"
		case c.latestOut != nil:
			row.Status = "departure"
		default:
			row.Status = "absent"
		}
		if c.latestIn != nil {
			row.CheckInAt = c.latestIn.CreatedAt.Format(displayClockLayout)
		}
		if c.latestOut != nil {
			row.CheckOutAt = c.latestOut.CreatedAt.Format(displayClockLayout)
		}
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Date != rows[j].Date {
			return rows[i].Date > rows[j].Date
		}
		if rows[i].StudentName != rows[j].StudentName {
			return rows[i].StudentName < rows[j].StudentName
		}
		return rows[i].SessionType < rows[j].SessionType
	})
	return rows, nil
}

// GetAttendanceSummary condenses per-student session outcomes over the filter
// window. A student's rate counts late and departure sessions as attended;
// "low attendance" is under 70 percent, "perfect" is exactly 100 with at
// least one session on record.
func GetAttendanceSummary(store Store, filter models.EventFilter) (*models.AttendanceSummary, error) {
	rows, err := GetStudentAttendanceReports(store, filter)
	if err != nil {
		return nil, err
	}
	type tally struct{ present, absent int }
	perStudent := map[string]*tally{}
	for _, row := range rows {
		t := perStudent[row.StudentID]
		if t == nil {
			t = &tally{}
			perStudent[row.StudentID] = t
		}
		if row.Status == "absent" {
			t.absent++
		} else {
			t.present++
		}
	}
	summary := &models.AttendanceSummary{TotalStudents: len(perStudent)}
	var rateSum float64
	for _, t := range perStudent {
		rate := attendanceRate(t.present, t.absent)
		rateSum += rate
		if rate < 70 {
			summary.LowAttendanceCount++
		}
		if rate == 100 && t.present > 0 {
			summary.PerfectAttendanceCount++
		}
	}
	if len(perStudent) > 0 {
		summary.AverageRate = round2(rateSum / float64(len(perStudent)))
	}
	return summary, nil
}

// GetPreviousPeriodSummary re-runs the summary over the window of equal
// length immediately before the filter's window, for trend deltas.
func GetPreviousPeriodSummary(store Store, filter models.EventFilter) (*models.AttendanceSummary, error) {
	start, err := time.ParseInLocation(DateLayout, filter.StartDate, time.Local)
	if err != nil {
		return nil, apperrors.NewValidation("invalid start_date, expected YYYY-MM-DD")
	}
	end, err := time.ParseInLocation(DateLayout, filter.EndDate, time.Local)
	if err != nil {
		return nil, apperrors.NewValidation("invalid end_date, expected YYYY-MM-DD")
	}
	days := int(end.Sub(start).Hours()/24) + 1
	previous := filter
	previous.EndDate = start.AddDate(0, 0, -1).Format(DateLayout)
	previous.StartDate = start.AddDate(0, 0, -days).Format(DateLayout)
	return GetAttendanceSummary(store, previous)
}

// GetStudentSummary builds the per-student attendance card over the window.
func GetStudentSummary(store Store, staffID, studentID, startDate, endDate string) (*models.StudentSummary, error) {
	student, err := store.StudentByID(studentID)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, apperrors.NewNotFound("student not found")
	}
	rows, err := GetStudentAttendanceReports(store, models.EventFilter{
		StaffID:   staffID,
		StudentID: studentID,
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		return nil, err
	}
	summary := &models.StudentSummary{
		StudentID:   student.ID,
		StudentName: student.Name,
		MatricNo:    student.MatricNo,
		Grade:       student.Grade,
		Section:     student.Section(),
		PeriodStart: startDate,
		PeriodEnd:   endDate,
	}
	for _, row := range rows {
		summary.TotalSessions++
		switch row.Status {
		case "absent":
			summary.AbsentCount++
		case "late":
			summary.LateCount++
			summary.PresentCount++
		default:
			summary.PresentCount++
		}
	}
	summary.AttendanceRate = attendanceRate(summary.PresentCount, summary.AbsentCount)
	return summary, nil
}

// GetDashboardStats returns the staff's headline numbers for the date. The
// current day is swept first so the absent count reflects every unmarked
// student, not just those the nightly job has already seen.
func GetDashboardStats(store Store, staffID, date string) (*models.DashboardStats, error) {
	if _, err := SweepUnmarkedDays(store, staffID, date); err != nil {
		return nil, err
	}
	students, err := store.StudentsByStaff(staffID)
	if err != nil {
		return nil, err
	}
	rows, err := GetStudentAttendanceReports(store, models.EventFilter{
		StaffID:   staffID,
		StartDate: date,
		EndDate:   date,
	})
	if err != nil {
		return nil, err
	}
	present := map[string]bool{}
	absent := map[string]bool{}
	late := map[string]bool{}
	for _, row := range rows {
		switch row.Status {
		case "absent":
			absent[row.StudentID] = true
		case "late":
			late[row.StudentID] = true
			present[row.StudentID] = true
		default:
			present[row.StudentID] = true
		}
	}
	stats := &models.DashboardStats{
		TotalStudents: len(students),
		PresentToday:  len(present),
		AbsentToday:   len(absent),
		LateToday:     len(late),
	}
	stats.Rate = attendanceRate(stats.PresentToday, stats.AbsentToday)
	return stats, nil
}

// UniqueGradesAndSections lists the distinct grade levels and section labels
// across the staff's students, sorted, for report filter dropdowns.
func UniqueGradesAndSections(store Store, staffID string) ([]string, []string, error) {
	students, err := store.StudentsByStaff(staffID)
	if err != nil {
		return nil, nil, err
	}
	gradeSet := map[string]bool{}
	sectionSet := map[string]bool{}
	for _, s := range students {
		if s.Grade != "" {
			gradeSet[s.Grade] = true
		}
		if section := s.Section(); section != "" {
			sectionSet[section] = true
		}
	}
	grades := make([]string, 0, len(gradeSet))
	for g := range gradeSet {
		grades = append(grades, g)
	}
	sections := make([]string, 0, len(sectionSet))
	for s := range sectionSet {
		sections = append(sections, s)
	}
	sort.Strings(grades)
	sort.Strings(sections)
	return grades, sections, nil
}

// GetMonthlySummary returns per-student day totals for a "YYYY-MM" month.
// Each half-day session contributes 0.5 to the present or absent day count.
func GetMonthlySummary(store Store, staffID, month string) ([]models.MonthlySummaryRow, string, string, error) {
	first, err := time.ParseInLocation("2006-01", month, time.Local)
	if err != nil {
		return nil, "", "", apperrors.NewValidation("invalid month, expected YYYY-MM")
	}
	start := first.Format(DateLayout)
	end := first.AddDate(0, 1, -1).Format(DateLayout)
	rows, err := GetStudentAttendanceReports(store, models.EventFilter{
		StaffID:   staffID,
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		return nil, "", "", err
	}
	perStudent := map[string]*models.MonthlySummaryRow{}
	for _, row := range rows {
		r := perStudent[row.StudentID]
		if r == nil {
			r = &models.MonthlySummaryRow{
				StudentID:   row.StudentID,
				StudentName: row.StudentName,
				MatricNo:    row.MatricNo,
			}
			perStudent[row.StudentID] = r
		}
		switch row.Status {
		case "absent":
			r.AbsentDays += 0.5
		case "late":
			r.LateCount++
			r.PresentDays += 0.5
		default:
			r.PresentDays += 0.5
		}
	}
	out := make([]models.MonthlySummaryRow, 0, len(perStudent))
	for _, r := range perStudent {
		total := r.PresentDays + r.AbsentDays
		if total > 0 {
			r.Rate = round2(r.PresentDays / total * 100)
		}
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StudentName < out[j].StudentName })
	return out, start, end, nil
}
