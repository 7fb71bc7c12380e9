package models

// AttendanceStatus defines the possible status values for a student attendance row.
type AttendanceStatus string

const (
	Present AttendanceStatus = "present"
	Absent  AttendanceStatus = "absent"
)

// TimeType distinguishes check-in and check-out events.
type TimeType string

const (
	TimeIn  TimeType = "IN"
	TimeOut TimeType = "OUT"
)

// SessionType is one of the two half-day instructional periods.
type SessionType string

const (
	SessionAM SessionType = "AM"
	SessionPM SessionType = "PM"
)

// HolidayType classifies a non-instructional day.
type HolidayType string

const (
	HolidayRegular HolidayType = "regular"
	HolidaySpecial HolidayType = "special"
	HolidayLocal   HolidayType = "local"
)
