package services

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/attendancehelpbscs-hi/fp-attendance-sub001/app/models"
)

// Days per printed page. Landscape A4 fits twelve AM/PM column pairs next to
// the name column without clipping.
const sf2DaysPerPage = 12

// RenderSF2PDF renders the SF2 dataset as a landscape A4 PDF. Months longer
// than one page are split into day chunks, each chunk repeating the learner
// name column.
func RenderSF2PDF(data *models.SF2Data) (*bytes.Buffer, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 10)

	chunks := chunkDates(data.SchoolDays, sf2DaysPerPage)
	if len(chunks) == 0 {
		chunks = [][]string{{}}
	}
	for _, chunk := range chunks {
		pdf.AddPage()
		writeSF2Header(pdf, data)
		writeSF2Grid(pdf, data, chunk)
	}
	writeSF2Footer(pdf, data)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return &buf, nil
}

func writeSF2Header(pdf *gofpdf.Fpdf, data *models.SF2Data) {
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 7, "School Form 2 (SF2) Daily Attendance Report of Learners", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 8)
	pdf.CellFormat(95, 5, fmt.Sprintf("School: %s (ID: %s)", data.SchoolName, data.SchoolID), "", 0, "L", false, 0, "")
	pdf.CellFormat(95, 5, fmt.Sprintf("School Year: %s", data.SchoolYear), "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 5, fmt.Sprintf("Month: %s", monthLabel(data.Month)), "", 1, "L", false, 0, "")
	pdf.CellFormat(95, 5, fmt.Sprintf("Grade Level: %s", data.Grade), "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 5, fmt.Sprintf("Section: %s", data.Section), "", 1, "L", false, 0, "")
	pdf.Ln(2)
}

func writeSF2Grid(pdf *gofpdf.Fpdf, data *models.SF2Data, dates []string) {
	const (
		noWidth   = 8.0
		nameWidth = 55.0
		dayWidth  = 9.0
		sumWidth  = 14.0
		rowHeight = 5.0
	)

	pdf.SetFont("Arial", "B", 7)
	pdf.CellFormat(noWidth, rowHeight*2, "No.", "1", 0, "C", false, 0, "")
	pdf.CellFormat(nameWidth, rowHeight*2, "Learner's Name", "1", 0, "C", false, 0, "")
	x, y := pdf.GetXY()
	for _, date := range dates {
		day, _ := time.ParseInLocation(DateLayout, date, time.Local)
		pdf.CellFormat(dayWidth, rowHeight, fmt.Sprintf("%d %s", day.Day(), day.Weekday().String()[:1]), "1", 0, "C", false, 0, "")
	}
	pdf.CellFormat(sumWidth, rowHeight*2, "Absent", "1", 0, "C", false, 0, "")
	pdf.CellFormat(sumWidth, rowHeight*2, "Late", "1", 0, "C", false, 0, "")
	pdf.CellFormat(0, rowHeight*2, "Remarks", "1", 1, "C", false, 0, "")
	pdf.SetXY(x, y+rowHeight)
	for range dates {
		pdf.CellFormat(dayWidth/2, rowHeight, "AM", "1", 0, "C", false, 0, "")
		pdf.CellFormat(dayWidth/2, rowHeight, "PM", "1", 0, "C", false, 0, "")
	}
	pdf.Ln(rowHeight)

	pdf.SetFont("Arial", "", 7)
	for i, student := range data.Students {
		pdf.CellFormat(noWidth, rowHeight, fmt.Sprintf("%d", i+1), "1", 0, "C", false, 0, "")
		pdf.CellFormat(nameWidth, rowHeight, student.Name, "1", 0, "L", false, 0, "")
		for _, date := range dates {
			mark := student.Daily[date]
			pdf.CellFormat(dayWidth/2, rowHeight, mark.AM, "1", 0, "C", false, 0, "")
			pdf.CellFormat(dayWidth/2, rowHeight, mark.PM, "1", 0, "C", false, 0, "")
		}
		pdf.CellFormat(sumWidth, rowHeight, fmt.Sprintf("%.1f", student.AbsentCount), "1", 0, "C", false, 0, "")
		pdf.CellFormat(sumWidth, rowHeight, fmt.Sprintf("%d", student.LateCount), "1", 0, "C", false, 0, "")
		pdf.CellFormat(0, rowHeight, student.Remarks, "1", 1, "L", false, 0, "")
	}
}

func writeSF2Footer(pdf *gofpdf.Fpdf, data *models.SF2Data) {
	pdf.Ln(4)
	pdf.SetFont("Arial", "", 8)
	pdf.CellFormat(95, 5, fmt.Sprintf("Registered Learners: %d", data.RegisteredLearners), "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 5, fmt.Sprintf("Average Daily Attendance: %.2f", data.AverageDailyAttendance), "", 1, "L", false, 0, "")
	pdf.CellFormat(95, 5, fmt.Sprintf("Percentage of Attendance: %.2f%%", data.PercentageAttendance), "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 5, fmt.Sprintf("Learners absent for 5 consecutive days: %d", data.ConsecutiveAbsent5Days), "", 1, "L", false, 0, "")
	pdf.Ln(8)
	pdf.CellFormat(95, 5, data.StaffName, "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 5, data.SchoolHeadName, "", 1, "L", false, 0, "")
	pdf.CellFormat(95, 5, "(Signature of Teacher over Printed Name)", "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 5, "(Signature of School Head over Printed Name)", "", 1, "L", false, 0, "")
}

func chunkDates(dates []string, size int) [][]string {
	var chunks [][]string
	for start := 0; start < len(dates); start += size {
		end := start + size
		if end > len(dates) {
			end = len(dates)
		}
		chunks = append(chunks, dates[start:end])
	}
	return chunks
}
