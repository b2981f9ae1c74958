// Package export renders the normalized dataset into its output shapes: a
// delimited text file, a spreadsheet, and a desktop hand-off.
package export

import (
	"strconv"

	"github.com/baxromumarov/payplan/internal/payplan"
)

// Headers is the fixed output column set. The three identity columns and the
// effective date pass through; each salary range splits into min and max.
var Headers = []string{
	"Job Title",
	"Job ID (Job Code)",
	"Job Category",
	"Effective Date",
	"Annual Min",
	"Annual Max",
	"Monthly Min",
	"Monthly Max",
}

// BuildTable renders records into the header-plus-rows shape shared by the
// delimited-file and spreadsheet writers. Titles and salaries that fail to
// parse become empty cells, not errors.
func BuildTable(records []payplan.NamedRecord) [][]string {
	rows := make([][]string, 0, len(records)+1)
	rows = append(rows, Headers)
	for _, rec := range records {
		job := payplan.NewJobListing(rec)
		rows = append(rows, []string{
			strOrEmpty(job.Title()),
			job.ID(),
			job.Category(),
			job.Date(),
			floatOrEmpty(job.AnnualSalaryMin()),
			floatOrEmpty(job.AnnualSalaryMax()),
			floatOrEmpty(job.MonthlySalaryMin()),
			floatOrEmpty(job.MonthlySalaryMax()),
		})
	}
	return rows
}

func strOrEmpty(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func floatOrEmpty(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
