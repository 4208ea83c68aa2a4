package spreadsheet

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/caibang/attendance-backend-go/internal/domain/attendance"
)

const ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var monthlyHeaders = []string{
	"No", "Employee ID", "Name", "Late count", "Late minutes", "Reported in advance", "Deducted hours",
}

// MonthlyFilename is the download name of a monthly lateness workbook.
func MonthlyFilename(summary attendance.MonthlySummary) string {
	return fmt.Sprintf("lateness-%s.xlsx", summary.Month)
}

// WriteMonthlySummary renders summary as a single-sheet workbook, one row per member.
func WriteMonthlySummary(summary attendance.MonthlySummary) (*bytes.Buffer, error) {
	file := excelize.NewFile()
	defer file.Close()

	sheet := summary.Month
	if sheet == "" {
		sheet = "Summary"
	}
	if err := file.SetSheetName(file.GetSheetName(file.GetActiveSheetIndex()), sheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	for i, header := range monthlyHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := file.SetCellValue(sheet, cell, header); err != nil {
			return nil, fmt.Errorf("write header %s: %w", header, err)
		}
	}

	for index, m := range summary.Members {
		row := index + 2
		values := []any{
			index + 1,
			m.EmployeeID,
			m.DisplayName,
			m.LateCount,
			m.TotalLateMinutes,
			m.ReportedLateCount,
			m.TotalDeductedHours,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return nil, err
			}
			if err := file.SetCellValue(sheet, cell, v); err != nil {
				return nil, fmt.Errorf("write row %d: %w", row, err)
			}
		}
	}

	buffer, err := file.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buffer, nil
}
