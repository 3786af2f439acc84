package service

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

type SessionRow struct {
	WorkDate      string
	WorkStart     string
	BreakStart    string
	BreakEnd      string
	WorkEnd       string
	HourlyRate    float64
	NetHours      float64
	DailyEarnings float64
	Canceled      bool
}

// SessionsToExcel renders a user's recorded sessions as an xlsx workbook
// and returns the file bytes for download.
func SessionsToExcel(username string, sessions []SessionRow) ([]byte, error) {
	f := excelize.NewFile()
	sheet := "Sessions"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Date", "Work Start", "Break Start", "Break End", "Work End", "Hourly Rate", "Net Hours", "Earnings", "Canceled"}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheet, cell, header)
	}

	rowNum := 2
	var totalHours, totalEarnings float64
	for _, entry := range sessions {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", rowNum), entry.WorkDate)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", rowNum), entry.WorkStart)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", rowNum), entry.BreakStart)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", rowNum), entry.BreakEnd)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", rowNum), entry.WorkEnd)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", rowNum), entry.HourlyRate)
		f.SetCellValue(sheet, fmt.Sprintf("G%d", rowNum), entry.NetHours)
		f.SetCellValue(sheet, fmt.Sprintf("H%d", rowNum), entry.DailyEarnings)
		f.SetCellValue(sheet, fmt.Sprintf("I%d", rowNum), entry.Canceled)
		if !entry.Canceled {
			totalHours += entry.NetHours
			totalEarnings += entry.DailyEarnings
		}
		rowNum++
	}

	f.SetCellValue(sheet, fmt.Sprintf("A%d", rowNum+1), "Total")
	f.SetCellValue(sheet, fmt.Sprintf("G%d", rowNum+1), totalHours)
	f.SetCellValue(sheet, fmt.Sprintf("H%d", rowNum+1), totalEarnings)

	f.SetCellValue(sheet, "K1", "User")
	f.SetCellValue(sheet, "L1", username)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("error writing excel file: %w", err)
	}
	return buf.Bytes(), nil
}
