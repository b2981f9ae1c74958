package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

const (
	sheetName      = "Sheet1"
	dateLayout     = "01/02/2006"
	dateCellFormat = "mm/dd/yyyy"
)

// Column positions in the output table.
const (
	colDate       = 3
	colAnnualMin  = 4
	colMonthlyMax = 7
)

// WriteSpreadsheet re-parses the delimited file at csvPath and writes it as a
// spreadsheet at xlsxPath. The four salary columns become numeric cells and
// the effective date column becomes a date cell (input format MM/DD/YYYY);
// cells that do not parse are carried over as-is.
func WriteSpreadsheet(csvPath, xlsxPath string) error {
	rows, err := readDelimited(csvPath, ',')
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	fmtStr := dateCellFormat
	dateStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &fmtStr})
	if err != nil {
		return fmt.Errorf("create date style: %w", err)
	}

	for i, row := range rows {
		for j, val := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return fmt.Errorf("cell name: %w", err)
			}
			if err := setTypedCell(f, cell, i, j, val, dateStyle); err != nil {
				return fmt.Errorf("set cell %s: %w", cell, err)
			}
		}
	}

	if err := os.MkdirAll(filepath.Dir(xlsxPath), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := f.SaveAs(xlsxPath); err != nil {
		return fmt.Errorf("save spreadsheet: %w", err)
	}
	return nil
}

func setTypedCell(f *excelize.File, cell string, row, col int, val string, dateStyle int) error {
	if row == 0 {
		return f.SetCellValue(sheetName, cell, val)
	}

	switch {
	case col == colDate:
		t, err := time.Parse(dateLayout, val)
		if err != nil {
			return f.SetCellValue(sheetName, cell, val)
		}
		if err := f.SetCellValue(sheetName, cell, t); err != nil {
			return err
		}
		return f.SetCellStyle(sheetName, cell, cell, dateStyle)

	case col >= colAnnualMin && col <= colMonthlyMax:
		if val == "" {
			return nil
		}
		cleaned := strings.ReplaceAll(strings.TrimPrefix(val, "$"), ",", "")
		n, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			return f.SetCellValue(sheetName, cell, val)
		}
		return f.SetCellValue(sheetName, cell, n)

	default:
		return f.SetCellValue(sheetName, cell, val)
	}
}
