package services

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	"github.com/attendancehelpbscs-hi/fp-attendance-sub001/app/models"
)

var monthlySummaryHeaders = []string{"No.", "Learner's Name", "LRN", "Days Present", "Days Absent", "Times Late", "Rate (%)"}

// RenderMonthlySummaryExcel writes the monthly per-student totals as a plain
// one-sheet workbook.
func RenderMonthlySummaryExcel(rows []models.MonthlySummaryRow, month string) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()
	const sheet = "Sheet1"

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, err
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 9},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    boxBorder(),
	})
	if err != nil {
		return nil, err
	}

	f.SetCellValue(sheet, "A1", fmt.Sprintf("Monthly Attendance Summary - %s", monthLabel(month)))
	f.MergeCell(sheet, "A1", "G1")
	f.SetCellStyle(sheet, "A1", "G1", titleStyle)

	for i, header := range monthlySummaryHeaders {
		f.SetCellValue(sheet, cellRef(i+1, 3), header)
	}
	f.SetCellStyle(sheet, "A3", "G3", headerStyle)

	for i, row := range rows {
		r := 4 + i
		f.SetCellValue(sheet, cellRef(1, r), i+1)
		f.SetCellValue(sheet, cellRef(2, r), row.StudentName)
		f.SetCellValue(sheet, cellRef(3, r), row.MatricNo)
		f.SetCellValue(sheet, cellRef(4, r), row.PresentDays)
		f.SetCellValue(sheet, cellRef(5, r), row.AbsentDays)
		f.SetCellValue(sheet, cellRef(6, r), row.LateCount)
		f.SetCellValue(sheet, cellRef(7, r), row.Rate)
	}
	f.SetColWidth(sheet, "B", "B", 30)
	f.SetColWidth(sheet, "C", "C", 16)

	return f.WriteToBuffer()
}

// RenderMonthlySummaryPDF writes the same totals as a portrait A4 table.
func RenderMonthlySummaryPDF(rows []models.MonthlySummaryRow, month string) (*bytes.Buffer, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, fmt.Sprintf("Monthly Attendance Summary - %s", monthLabel(month)), "", 1, "C", false, 0, "")
	pdf.Ln(2)

	widths := []float64{10, 60, 30, 25, 25, 20, 20}
	pdf.SetFont("Arial", "B", 8)
	for i, header := range monthlySummaryHeaders {
		pdf.CellFormat(widths[i], 6, header, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 8)
	for i, row := range rows {
		pdf.CellFormat(widths[0], 6, fmt.Sprintf("%d", i+1), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[1], 6, row.StudentName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 6, row.MatricNo, "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[3], 6, fmt.Sprintf("%.1f", row.PresentDays), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[4], 6, fmt.Sprintf("%.1f", row.AbsentDays), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[5], 6, fmt.Sprintf("%d", row.LateCount), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[6], 6, fmt.Sprintf("%.2f", row.Rate), "1", 1, "C", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return &buf, nil
}
