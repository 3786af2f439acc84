package service

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf/v2"
)

// MonthlyReport renders a one-page PDF summary of a user's sessions for a
// month ("YYYY-MM") and returns the file bytes.
func MonthlyReport(username, month string, sessions []SessionRow) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, fmt.Sprintf("Work report %s", month))
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 8, fmt.Sprintf("User: %s", username))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 10)
	widths := []float64{26, 20, 20, 20, 20, 22, 20, 24}
	headers := []string{"Date", "Start", "Break", "Resume", "End", "Rate", "Hours", "Earnings"}
	for i, header := range headers {
		pdf.CellFormat(widths[i], 8, header, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	var totalHours, totalEarnings float64
	for _, entry := range sessions {
		if entry.Canceled {
			continue
		}
		cols := []string{
			entry.WorkDate,
			entry.WorkStart,
			entry.BreakStart,
			entry.BreakEnd,
			entry.WorkEnd,
			fmt.Sprintf("%.2f", entry.HourlyRate),
			fmt.Sprintf("%.1f", entry.NetHours),
			fmt.Sprintf("%.2f", entry.DailyEarnings),
		}
		for i, col := range cols {
			pdf.CellFormat(widths[i], 7, col, "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)

		totalHours += entry.NetHours
		totalEarnings += entry.DailyEarnings
	}

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(widths[0]+widths[1]+widths[2]+widths[3]+widths[4]+widths[5], 8, "Total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(widths[6], 8, fmt.Sprintf("%.1f", totalHours), "1", 0, "C", false, 0, "")
	pdf.CellFormat(widths[7], 8, fmt.Sprintf("%.2f", totalEarnings), "1", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("error writing pdf: %w", err)
	}
	return buf.Bytes(), nil
}
