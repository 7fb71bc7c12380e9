package services

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/attendancehelpbscs-hi/fp-attendance-sub001/app/models"
)

// Default late thresholds when a staff account has no saved settings.
const (
	DefaultAMLateTime = "07:30"
	DefaultPMLateTime = "12:50"
)

// LateOptions carries the per-staff thresholds the classifier needs.
type LateOptions struct {
	SchoolStartTime    string
	GracePeriodMinutes int
	PMCutoffEnabled    bool
	PMCutoffTime       string
}

// LateOptionsFromSettings maps a staff settings row onto classifier options.
// A nil settings row yields the defaults.
func LateOptionsFromSettings(s *models.StaffAttendanceSettings) LateOptions {
	if s == nil {
		return LateOptions{}
	}
	return LateOptions{
		SchoolStartTime:    s.SchoolStartTime,
		GracePeriodMinutes: s.GracePeriodMinutes,
		PMCutoffEnabled:    s.PMLateCutoffEnabled,
		PMCutoffTime:       s.PMLateCutoffTime,
	}
}

var clockPattern = regexp.MustCompile(`^\s*(\d{1,2}):(\d{2})(?:\s*([AaPp][Mm]))?\s*$`)

// parseClock reads "H:MM" or "H:MM AM/PM" into a 24-hour pair. Anything the
// pattern rejects falls back to 7:30 so a corrupt settings value never makes
// every scan late.
func parseClock(value string) (hour, minute int) {
	m := clockPattern.FindStringSubmatch(value)
	if m == nil {
		return 7, 30
	}
	hour, _ = strconv.Atoi(m[1])
	minute, _ = strconv.Atoi(m[2])
	if hour > 23 || minute > 59 {
		return 7, 30
	}
	if m[3] != "" {
		switch strings.ToUpper(m[3]) {
		case "PM":
			if hour != 12 {
				hour += 12
			}
		case "AM":
			if hour == 12 {
				hour = 0
			}
		}
		if hour > 23 {
			return 7, 30
		}
	}
	return hour, minute
}

// lateThreshold builds the cutoff instant for the given session on the same
// calendar day as ref.
func lateThreshold(ref time.Time, sessionType models.SessionType, opts LateOptions) time.Time {
	var clock string
	switch sessionType {
	case models.SessionPM:
		// The custom PM time only applies while the flag is on; otherwise the
		// fixed default stands.
		if opts.PMCutoffEnabled && opts.PMCutoffTime != "" {
			clock = opts.PMCutoffTime
		} else {
			clock = DefaultPMLateTime
		}
	default:
		clock = opts.SchoolStartTime
		if clock == "" {
			clock = DefaultAMLateTime
		}
	}
	hour, minute := parseClock(clock)
	cutoff := time.Date(ref.Year(), ref.Month(), ref.Day(), hour, minute, 0, 0, ref.Location())
	if opts.GracePeriodMinutes > 0 {
		cutoff = cutoff.Add(time.Duration(opts.GracePeriodMinutes) * time.Minute)
	}
	return cutoff
}

// IsLateArrival reports whether a check-in counts as a late arrival. Only IN
// events with a known session can be late; arriving exactly on the cutoff is
// on time.
func IsLateArrival(checkIn time.Time, sessionType models.SessionType, timeType models.TimeType, opts LateOptions) bool {
	if timeType != models.TimeIn || sessionType == "" {
		return false
	}
	return checkIn.After(lateThreshold(checkIn, sessionType, opts))
}
