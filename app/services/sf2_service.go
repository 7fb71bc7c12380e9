package services

import (
	"math"
	"sort"
	"time"

	"github.com/attendancehelpbscs-hi/fp-attendance-sub001/app/apperrors"
	"github.com/attendancehelpbscs-hi/fp-attendance-sub001/app/models"
)

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// consecutiveAbsenceThreshold is the DepEd flag: a learner absent for this
// many consecutive school days is marked for follow-up on the SF2.
const consecutiveAbsenceThreshold = 5

// GenerateSF2Data assembles the DepEd School Form 2 dataset for one month,
// grade and section. Only weekdays count as school days; holidays stay in the
// grid but every learner reads "H" for both sessions and the day is excluded
// from attendance math. A session with no present row is an absence whether
// or not the sweeper seeded a placeholder, so the form stays correct even for
// days the nightly job missed.
func GenerateSF2Data(store Store, staffID, month, grade, section string, meta models.SchoolMeta) (*models.SF2Data, error) {
	first, err := time.ParseInLocation("2006-01", month, time.Local)
	if err != nil {
		return nil, apperrors.NewValidation("invalid month, expected YYYY-MM")
	}
	start := first.Format(DateLayout)
	end := first.AddDate(0, 1, -1).Format(DateLayout)

	staff, err := store.StaffByID(staffID)
	if err != nil {
		return nil, err
	}
	opts, err := lateOptionsForStaff(store, staffID)
	if err != nil {
		return nil, err
	}

	holidays, err := store.HolidaysInRange(start, end)
	if err != nil {
		return nil, err
	}
	holidayDates := map[string]bool{}
	for _, h := range holidays {
		holidayDates[h.Date] = true
	}

	schoolDays := []string{}
	dayTypes := map[string]string{}
	for day := first; day.Month() == first.Month(); day = day.AddDate(0, 0, 1) {
		if day.Weekday() == time.Saturday || day.Weekday() == time.Sunday {
			continue
		}
		date := day.Format(DateLayout)
		schoolDays = append(schoolDays, date)
		if holidayDates[date] {
			dayTypes[date] = "holiday"
		} else {
			dayTypes[date] = "weekday"
		}
	}

	students, err := store.StudentsByStaff(staffID)
	if err != nil {
		return nil, err
	}
	roster := []*models.Student{}
	for _, s := range students {
		if grade != "" && s.Grade != grade {
			continue
		}
		if section != "" && s.Section() != section {
			continue
		}
		roster = append(roster, s)
	}
	sort.Slice(roster, func(i, j int) bool { return roster[i].Name < roster[j].Name })

	events, err := store.EventsByFilter(models.EventFilter{
		StaffID:   staffID,
		Grade:     grade,
		Section:   section,
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		return nil, err
	}

	type sessionKey struct {
		studentID, date string
		session         models.SessionType
	}
	presentAt := map[sessionKey]bool{}
	latestIn := map[sessionKey]time.Time{}
	for _, e := range events {
		if e.Status != models.Present {
			continue
		}
		k := sessionKey{studentID: e.StudentID, date: e.Date, session: e.SessionType}
		presentAt[k] = true
		if e.TimeType == models.TimeIn && e.CreatedAt.After(latestIn[k]) {
			latestIn[k] = e.CreatedAt
		}
	}

	data := &models.SF2Data{
		SchoolMeta:         meta,
		Month:              month,
		Grade:              grade,
		Section:            section,
		RegisteredLearners: len(roster),
		SchoolDays:         schoolDays,
		DayTypes:           dayTypes,
	}
	if staff != nil {
		data.StaffName = staff.FullName()
	}

	dailyPoints := map[string]float64{}
	for _, s := range roster {
		row := &models.SF2Student{
			ID:       s.ID,
			Name:     s.Name,
			MatricNo: s.MatricNo,
			Daily:    map[string]models.SF2DayMark{},
		}
		absentSessions := 0
		consecutiveRun := 0
		for _, date := range schoolDays {
			if dayTypes[date] == "holiday" {
				row.Daily[date] = models.SF2DayMark{AM: "H", PM: "H"}
				continue
			}
			mark := models.SF2DayMark{}
			presentSessions := 0
			for _, session := range []models.SessionType{models.SessionAM, models.SessionPM} {
				k := sessionKey{studentID: s.ID, date: date, session: session}
				if presentAt[k] {
					presentSessions++
					if in, ok := latestIn[k]; ok && IsLateArrival(in, session, models.TimeIn, opts) {
						row.LateCount++
					}
				} else {
					absentSessions++
					if session == models.SessionAM {
						mark.AM = "x"
					} else {
						mark.PM = "x"
					}
				}
			}
			row.Daily[date] = mark
			dailyPoints[date] += float64(presentSessions) * 0.5
			// The streak counts any day with a missing session; only a day
			// with both sessions present breaks it.
			if presentSessions < 2 {
				consecutiveRun++
				if consecutiveRun >= consecutiveAbsenceThreshold {
					row.ConsecutiveAbsent = true
				}
			} else {
				consecutiveRun = 0
			}
		}
		row.AbsentCount = round1(float64(absentSessions) * 0.5)
		if row.ConsecutiveAbsent {
			row.Remarks = "Absent 5+ consecutive school days"
			data.ConsecutiveAbsent5Days++
		}
		data.Students = append(data.Students, row)
	}

	instructionalDays := 0
	var pointsSum float64
	for _, date := range schoolDays {
		if dayTypes[date] == "holiday" {
			continue
		}
		instructionalDays++
		pointsSum += dailyPoints[date]
	}
	if instructionalDays > 0 {
		data.AverageDailyAttendance = round2(pointsSum / float64(instructionalDays))
	}
	if data.RegisteredLearners > 0 {
		data.PercentageAttendance = round2(data.AverageDailyAttendance / float64(data.RegisteredLearners) * 100)
	}
	return data, nil
}
