package services

import (
	"fmt"
	"sort"
	"time"

	"github.com/attendancehelpbscs-hi/fp-attendance-sub001/app/models"
)

// fakeStore is an in-memory Store for exercising the service rules without a
// database. failStudentsFor makes StudentsByStaff error for one staff ID, to
// test error isolation.
type fakeStore struct {
	staff       map[string]*models.Staff
	settings    map[string]*models.StaffAttendanceSettings
	students    map[string]*models.Student
	attendances map[string]*models.Attendance
	events      []*models.StudentAttendance
	holidays    []*models.Holiday
	audits      []*models.AuditLog

	failStudentsFor string
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		staff:       map[string]*models.Staff{},
		settings:    map[string]*models.StaffAttendanceSettings{},
		students:    map[string]*models.Student{},
		attendances: map[string]*models.Attendance{},
	}
}

func (f *fakeStore) StaffIDs() ([]string, error) {
	ids := make([]string, 0, len(f.staff))
	for id := range f.staff {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

func (f *fakeStore) StaffByID(staffID string) (*models.Staff, error) {
	return f.staff[staffID], nil
}

func (f *fakeStore) StaffSettings(staffID string) (*models.StaffAttendanceSettings, error) {
	return f.settings[staffID], nil
}

func (f *fakeStore) StudentsByStaff(staffID string) ([]*models.Student, error) {
	if f.failStudentsFor != "" && staffID == f.failStudentsFor {
		return nil, fmt.Errorf("forced failure for staff %s", staffID)
	}
	var out []*models.Student
	for _, s := range f.students {
		if staffID == "" || s.StaffID == staffID {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeStore) StudentByID(studentID string) (*models.Student, error) {
	return f.students[studentID], nil
}

func (f *fakeStore) AttendanceByID(attendanceID string) (*models.Attendance, error) {
	return f.attendances[attendanceID], nil
}

func (f *fakeStore) AttendanceByStaffAndDate(staffID, date string) (*models.Attendance, error) {
	for _, a := range f.attendances {
		if a.StaffID == staffID && a.Date == date {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) CreateAttendance(attendance *models.Attendance) error {
	f.attendances[attendance.ID] = attendance
	return nil
}

func (f *fakeStore) CreateStudentAttendance(event *models.StudentAttendance) error {
	clone := *event
	f.events = append(f.events, &clone)
	return nil
}

func (f *fakeStore) LatestPresentEvent(attendanceID, studentID string, timeType models.TimeType, sessionType models.SessionType) (*models.StudentAttendance, error) {
	var latest *models.StudentAttendance
	for _, e := range f.events {
		if e.AttendanceID != attendanceID || e.StudentID != studentID {
			continue
		}
		if e.Status != models.Present || e.TimeType != timeType || e.SessionType != sessionType {
			continue
		}
		if latest == nil || e.CreatedAt.After(latest.CreatedAt) {
			latest = e
		}
	}
	return latest, nil
}

func (f *fakeStore) SessionMarks(attendanceID, studentID string, sessionType models.SessionType) (bool, bool, error) {
	hasPresent, hasAbsent := false, false
	for _, e := range f.events {
		if e.AttendanceID != attendanceID || e.StudentID != studentID || e.SessionType != sessionType {
			continue
		}
		if e.Status == models.Present {
			hasPresent = true
		} else {
			hasAbsent = true
		}
	}
	return hasPresent, hasAbsent, nil
}

func (f *fakeStore) DeleteAbsentRows(studentID, date string) (int64, error) {
	var kept []*models.StudentAttendance
	var removed int64
	for _, e := range f.events {
		attendance := f.attendances[e.AttendanceID]
		if e.StudentID == studentID && e.Status == models.Absent && attendance != nil && attendance.Date == date {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	f.events = kept
	return removed, nil
}

func (f *fakeStore) EventsByFilter(filter models.EventFilter) ([]*models.StudentAttendance, error) {
	var out []*models.StudentAttendance
	for _, e := range f.events {
		attendance := f.attendances[e.AttendanceID]
		if attendance == nil {
			continue
		}
		student := f.students[e.StudentID]
		if filter.StaffID != "" && attendance.StaffID != filter.StaffID {
			continue
		}
		if filter.StudentID != "" && e.StudentID != filter.StudentID {
			continue
		}
		if filter.Grade != "" && (student == nil || student.Grade != filter.Grade) {
			continue
		}
		if filter.Section != "" && e.Section != filter.Section {
			continue
		}
		if filter.SessionType != "" && e.SessionType != filter.SessionType {
			continue
		}
		if filter.StartDate != "" && attendance.Date < filter.StartDate {
			continue
		}
		if filter.EndDate != "" && attendance.Date > filter.EndDate {
			continue
		}
		clone := *e
		clone.Date = attendance.Date
		clone.Student = student
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeStore) HolidaysInRange(start, end string) ([]*models.Holiday, error) {
	var out []*models.Holiday
	for _, h := range f.holidays {
		if h.Date >= start && h.Date <= end {
			out = append(out, h)
		}
	}
	return out, nil
}

func (f *fakeStore) InsertAuditLog(entry *models.AuditLog) error {
	f.audits = append(f.audits, entry)
	return nil
}

// Test fixture helpers.

func (f *fakeStore) addStaff(id, name string) {
	f.staff[id] = &models.Staff{ID: id, FirstName: name, Email: id + "@school.test", IsActive: true}
}

func (f *fakeStore) addStudent(id, name, grade, staffID, section string) *models.Student {
	s := &models.Student{ID: id, Name: name, MatricNo: "LRN-" + id, Grade: grade, StaffID: staffID}
	if section != "" {
		s.Courses = []*models.Course{{ID: "course-" + section, Name: section, CourseCode: section, StaffID: staffID}}
	}
	f.students[id] = s
	return s
}

func (f *fakeStore) addAttendance(id, staffID, date string) *models.Attendance {
	a := &models.Attendance{ID: id, StaffID: staffID, Name: "Daily Attendance - " + date, Date: date}
	f.attendances[id] = a
	return a
}

func (f *fakeStore) addEvent(attendanceID, studentID string, timeType models.TimeType, sessionType models.SessionType, status models.AttendanceStatus, at time.Time) *models.StudentAttendance {
	e := &models.StudentAttendance{
		ID:           fmt.Sprintf("event-%d", len(f.events)+1),
		StudentID:    studentID,
		AttendanceID: attendanceID,
		TimeType:     timeType,
		SessionType:  sessionType,
		Status:       status,
		CreatedAt:    at,
	}
	if s := f.students[studentID]; s != nil {
		e.Section = s.Section()
	}
	f.events = append(f.events, e)
	return e
}

func dayAt(date string, hour, minute int) time.Time {
	d, err := time.ParseInLocation(DateLayout, date, time.Local)
	if err != nil {
		panic(err)
	}
	return d.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}
