package models

import (
	"strings"
	"time"
)

type Staff struct {
	ID        string                   `json:"id" validate:"required,uuid"`
	Email     string                   `json:"email" validate:"required,email"`
	Password  string                   `json:"-" validate:"required,min=8"`
	FirstName string                   `json:"first_name" validate:"required"`
	LastName  string                   `json:"last_name" validate:"required"`
	IsActive  bool                     `json:"is_active"`
	CreatedAt time.Time                `json:"created_at"`
	UpdatedAt time.Time                `json:"updated_at"`
	Settings  *StaffAttendanceSettings `json:"settings,omitempty"`
}

func (s *Staff) FullName() string {
	return strings.TrimSpace(s.FirstName + " " + s.LastName)
}

// StaffAttendanceSettings drives the late-arrival classifier for one staff
// member. SchoolStartTime and PMLateCutoffTime accept "H:MM" or "H:MM AM/PM".
type StaffAttendanceSettings struct {
	SchoolStartTime     string `json:"school_start_time"`
	GracePeriodMinutes  int    `json:"grace_period_minutes" validate:"min=0,max=120"`
	PMLateCutoffEnabled bool   `json:"pm_late_cutoff_enabled"`
	PMLateCutoffTime    string `json:"pm_late_cutoff_time"`
}
