package services

import (
	"bytes"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/attendancehelpbscs-hi/fp-attendance-sub001/app/models"
)

const sf2SheetName = "SF2"

// RenderSF2Excel lays the SF2 dataset out as a spreadsheet in the shape of
// the official DepEd form: header block, a per-day AM/PM mark grid, the
// per-learner totals and the certification lines.
func RenderSF2Excel(data *models.SF2Data) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sf2SheetName)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, err
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 8},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
		Border:    boxBorder(),
	})
	if err != nil {
		return nil, err
	}
	cellStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Size: 8},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    boxBorder(),
	})
	if err != nil {
		return nil, err
	}
	nameStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Size: 8},
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
		Border:    boxBorder(),
	})
	if err != nil {
		return nil, err
	}

	lastCol, err := excelize.ColumnNumberToName(2 + len(data.SchoolDays)*2 + 3)
	if err != nil {
		return nil, err
	}

	f.SetCellValue(sf2SheetName, "A1", "School Form 2 (SF2) Daily Attendance Report of Learners")
	f.MergeCell(sf2SheetName, "A1", lastCol+"1")
	f.SetCellStyle(sf2SheetName, "A1", lastCol+"1", titleStyle)

	f.SetCellValue(sf2SheetName, "A2", fmt.Sprintf("School ID: %s", data.SchoolID))
	f.SetCellValue(sf2SheetName, "E2", fmt.Sprintf("School Year: %s", data.SchoolYear))
	f.SetCellValue(sf2SheetName, "I2", fmt.Sprintf("Report for the Month of: %s", monthLabel(data.Month)))
	f.SetCellValue(sf2SheetName, "A3", fmt.Sprintf("Name of School: %s", data.SchoolName))
	f.SetCellValue(sf2SheetName, "E3", fmt.Sprintf("Grade Level: %s", data.Grade))
	f.SetCellValue(sf2SheetName, "I3", fmt.Sprintf("Section: %s", data.Section))

	// Grid header: two rows, one merged day column spanning its AM/PM pair.
	const headTop = 5
	headBottom := headTop + 1
	f.SetCellValue(sf2SheetName, cellRef(1, headTop), "No.")
	f.MergeCell(sf2SheetName, cellRef(1, headTop), cellRef(1, headBottom))
	f.SetCellValue(sf2SheetName, cellRef(2, headTop), "Learner's Name")
	f.MergeCell(sf2SheetName, cellRef(2, headTop), cellRef(2, headBottom))

	col := 3
	for _, date := range data.SchoolDays {
		day, _ := time.ParseInLocation(DateLayout, date, time.Local)
		f.SetCellValue(sf2SheetName, cellRef(col, headTop), fmt.Sprintf("%d %s", day.Day(), day.Weekday().String()[:1]))
		f.MergeCell(sf2SheetName, cellRef(col, headTop), cellRef(col+1, headTop))
		f.SetCellValue(sf2SheetName, cellRef(col, headBottom), "AM")
		f.SetCellValue(sf2SheetName, cellRef(col+1, headBottom), "PM")
		col += 2
	}
	for _, label := range []string{"Absent", "Late", "Remarks"} {
		f.SetCellValue(sf2SheetName, cellRef(col, headTop), label)
		f.MergeCell(sf2SheetName, cellRef(col, headTop), cellRef(col, headBottom))
		col++
	}
	f.SetCellStyle(sf2SheetName, cellRef(1, headTop), cellRef(col-1, headBottom), headerStyle)

	row := headBottom + 1
	for i, student := range data.Students {
		f.SetCellValue(sf2SheetName, cellRef(1, row), i+1)
		f.SetCellValue(sf2SheetName, cellRef(2, row), student.Name)
		col = 3
		for _, date := range data.SchoolDays {
			mark := student.Daily[date]
			f.SetCellValue(sf2SheetName, cellRef(col, row), mark.AM)
			f.SetCellValue(sf2SheetName, cellRef(col+1, row), mark.PM)
			col += 2
		}
		f.SetCellValue(sf2SheetName, cellRef(col, row), student.AbsentCount)
		f.SetCellValue(sf2SheetName, cellRef(col+1, row), student.LateCount)
		f.SetCellValue(sf2SheetName, cellRef(col+2, row), student.Remarks)
		f.SetCellStyle(sf2SheetName, cellRef(1, row), cellRef(2, row), nameStyle)
		f.SetCellStyle(sf2SheetName, cellRef(3, row), cellRef(col+2, row), cellStyle)
		row++
	}

	row += 2
	f.SetCellValue(sf2SheetName, cellRef(2, row), fmt.Sprintf("Registered Learners: %d", data.RegisteredLearners))
	f.SetCellValue(sf2SheetName, cellRef(6, row), fmt.Sprintf("Average Daily Attendance: %.2f", data.AverageDailyAttendance))
	row++
	f.SetCellValue(sf2SheetName, cellRef(2, row), fmt.Sprintf("Percentage of Attendance for the Month: %.2f%%", data.PercentageAttendance))
	f.SetCellValue(sf2SheetName, cellRef(6, row), fmt.Sprintf("Learners absent for 5 consecutive days: %d", data.ConsecutiveAbsent5Days))

	row += 3
	f.SetCellValue(sf2SheetName, cellRef(2, row), "I certify that this is a true and correct report.")
	row += 2
	f.SetCellValue(sf2SheetName, cellRef(2, row), data.StaffName)
	f.SetCellValue(sf2SheetName, cellRef(6, row), data.SchoolHeadName)
	row++
	f.SetCellValue(sf2SheetName, cellRef(2, row), "(Signature of Teacher over Printed Name)")
	f.SetCellValue(sf2SheetName, cellRef(6, row), "(Signature of School Head over Printed Name)")

	f.SetColWidth(sf2SheetName, "A", "A", 4)
	f.SetColWidth(sf2SheetName, "B", "B", 28)
	dayStart, _ := excelize.ColumnNumberToName(3)
	dayEnd, _ := excelize.ColumnNumberToName(2 + len(data.SchoolDays)*2)
	if len(data.SchoolDays) > 0 {
		f.SetColWidth(sf2SheetName, dayStart, dayEnd, 3.2)
	}

	return f.WriteToBuffer()
}

func boxBorder() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}
}

func cellRef(col, row int) string {
	ref, _ := excelize.CoordinatesToCellName(col, row)
	return ref
}

func monthLabel(month string) string {
	t, err := time.ParseInLocation("2006-01", month, time.Local)
	if err != nil {
		return month
	}
	return t.Format("January 2006")
}
