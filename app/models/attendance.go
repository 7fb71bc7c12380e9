package models

import "time"

// Attendance is the per-(staff, date) parent grouping for student events,
// created lazily the first time any event for that date is needed.
type Attendance struct {
	ID        string    `json:"id" validate:"required,uuid"`
	StaffID   string    `json:"staff_id" validate:"required,uuid"`
	Name      string    `json:"name" validate:"required"`
	Date      string    `json:"date" validate:"required"` // YYYY-MM-DD
	CreatedAt time.Time `json:"created_at"`
}

// StudentAttendance is the atomic attendance fact: one row per check-in or
// check-out attempt, or an "absent" placeholder seeded by the sweeper.
// Rows are append-mostly; the latest present row per (time_type, session_type)
// is authoritative. Absent placeholders carry no time_type.
type StudentAttendance struct {
	ID           string           `json:"id"`
	StudentID    string           `json:"student_id"`
	AttendanceID string           `json:"attendance_id"`
	TimeType     TimeType         `json:"time_type,omitempty"`
	SessionType  SessionType      `json:"session_type,omitempty"`
	Status       AttendanceStatus `json:"status"`
	Section      string           `json:"section"`
	CreatedAt    time.Time        `json:"created_at"`

	// Joined fields, populated by report queries.
	Date    string   `json:"date,omitempty"`
	Student *Student `json:"student,omitempty"`
}

type AuditLog struct {
	ID        string    `json:"id"`
	StaffID   string    `json:"staff_id"`
	Action    string    `json:"action"`
	Details   string    `json:"details"`
	CreatedAt time.Time `json:"created_at"`
}

type Holiday struct {
	ID        string      `json:"id"`
	Date      string      `json:"date" validate:"required"` // YYYY-MM-DD, unique
	Name      string      `json:"name" validate:"required"`
	Type      HolidayType `json:"type"`
	CreatedAt time.Time   `json:"created_at"`
}

type PaginationMeta struct {
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
}
