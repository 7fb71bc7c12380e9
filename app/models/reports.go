package models

// EventFilter narrows raw attendance event queries. Zero values mean
// "no constraint"; dates are inclusive YYYY-MM-DD bounds.
type EventFilter struct {
	StaffID     string
	StudentID   string
	Grade       string
	Section     string
	SessionType SessionType
	StartDate   string
	EndDate     string
}

// ReportRow is the aggregator's per-(date, grade, section) output unit.
// SessionType is set only when the query was filtered to a single session.
type ReportRow struct {
	Date        string      `json:"date"`
	Grade       string      `json:"grade"`
	Section     string      `json:"section"`
	SessionType SessionType `json:"session_type,omitempty"`
	Present     int         `json:"present"`
	Absent      int         `json:"absent"`
	Late        int         `json:"late"`
	Rate        float64     `json:"rate"`
}

type AttendanceSummary struct {
	TotalStudents          int     `json:"total_students"`
	AverageRate            float64 `json:"average_rate"`
	LowAttendanceCount     int     `json:"low_attendance_count"`
	PerfectAttendanceCount int     `json:"perfect_attendance_count"`
}

// StudentReportRow resolves one (student, date, session) group to a single
// display status: late, present, departure or absent.
type StudentReportRow struct {
	Date        string      `json:"date"`
	StudentID   string      `json:"student_id"`
	StudentName string      `json:"student_name"`
	MatricNo    string      `json:"matric_no"`
	Grade       string      `json:"grade"`
	Section     string      `json:"section"`
	SessionType SessionType `json:"session_type"`
	Status      string      `json:"status"`
	CheckInAt   string      `json:"check_in_at,omitempty"`
	CheckOutAt  string      `json:"check_out_at,omitempty"`
}

type StudentSummary struct {
	StudentID      string  `json:"student_id"`
	StudentName    string  `json:"student_name"`
	MatricNo       string  `json:"matric_no"`
	Grade          string  `json:"grade"`
	Section        string  `json:"section"`
	TotalSessions  int     `json:"total_sessions"`
	PresentCount   int     `json:"present_count"`
	AbsentCount    int     `json:"absent_count"`
	LateCount      int     `json:"late_count"`
	AttendanceRate float64 `json:"attendance_rate"`
	PeriodStart    string  `json:"period_start"`
	PeriodEnd      string  `json:"period_end"`
}

type DashboardStats struct {
	TotalStudents int     `json:"total_students"`
	PresentToday  int     `json:"present_today"`
	AbsentToday   int     `json:"absent_today"`
	LateToday     int     `json:"late_today"`
	Rate          float64 `json:"rate"`
}

type MonthlySummaryRow struct {
	StudentID   string  `json:"student_id"`
	StudentName string  `json:"student_name"`
	MatricNo    string  `json:"matric_no"`
	PresentDays float64 `json:"present_days"`
	AbsentDays  float64 `json:"absent_days"`
	LateCount   int     `json:"late_count"`
	Rate        float64 `json:"rate"`
}
