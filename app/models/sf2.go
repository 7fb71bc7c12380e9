package models

// SF2DayMark holds the AM/PM marks for one school day:
// "" present, "x" absent, "H" holiday.
type SF2DayMark struct {
	AM string `json:"am"`
	PM string `json:"pm"`
}

type SF2Student struct {
	ID       string                `json:"id"`
	Name     string                `json:"name"`
	MatricNo string                `json:"matric_no"`
	Daily    map[string]SF2DayMark `json:"daily_attendance"`
	// AbsentCount is in absence points: 0.5 per missed session.
	AbsentCount       float64 `json:"absent_count"`
	LateCount         int     `json:"late_count"`
	ConsecutiveAbsent bool    `json:"consecutive_absent"`
	Remarks           string  `json:"remarks"`
}

// SchoolMeta is the header block of the DepEd SF2 form.
type SchoolMeta struct {
	SchoolID       string `json:"school_id"`
	SchoolName     string `json:"school_name"`
	SchoolYear     string `json:"school_year"`
	SchoolHeadName string `json:"school_head_name"`
	Region         string `json:"region,omitempty"`
	Division       string `json:"division,omitempty"`
	District       string `json:"district,omitempty"`
}

type SF2Data struct {
	SchoolMeta
	Month   string `json:"month"`
	Grade   string `json:"grade"`
	Section string `json:"section"`

	Students []*SF2Student `json:"students"`

	RegisteredLearners     int     `json:"registered_learners"`
	AverageDailyAttendance float64 `json:"average_daily_attendance"`
	PercentageAttendance   float64 `json:"percentage_attendance"`
	ConsecutiveAbsent5Days int     `json:"consecutive_absent_5_days"`

	SchoolDays []string          `json:"school_days"`            // YYYY-MM-DD, weekdays only
	DayTypes   map[string]string `json:"day_types"`              // "weekday" or "holiday"
	StaffName  string            `json:"staff_name"`
}
