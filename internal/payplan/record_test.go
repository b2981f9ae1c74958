package payplan

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToNamedRecordRoundTrip(t *testing.T) {
	raw := RawRecord{
		"<a href='/jobs/a100'>Accountant I</a>",
		"A100",
		"Finance",
		"09/01/2025",
		"$40,000.00 - $50,000.00",
		"$3,333.33 - $4,166.67",
	}

	rec, err := ToNamedRecord(raw, true)
	require.NoError(t, err)
	require.Equal(t, raw, rec.Fields())
}

func TestToNamedRecordStrictArity(t *testing.T) {
	_, err := ToNamedRecord(RawRecord{"only", "five", "of", "six", "fields"}, true)
	require.ErrorIs(t, err, ErrSchemaMismatch)

	_, err = ToNamedRecord(RawRecord{"1", "2", "3", "4", "5", "6", "7"}, true)
	require.ErrorIs(t, err, ErrSchemaMismatch)
}

func TestToNamedRecordLenient(t *testing.T) {
	rec, err := ToNamedRecord(RawRecord{"<a>X</a>", "B200"}, false)
	require.NoError(t, err)
	require.Equal(t, "<a>X</a>", rec.JobTitle)
	require.Equal(t, "B200", rec.JobID)
	require.Empty(t, rec.JobCategory)

	// Extra fields beyond the schema are dropped.
	rec, err = ToNamedRecord(RawRecord{"1", "2", "3", "4", "5", "6", "7"}, false)
	require.NoError(t, err)
	require.Equal(t, "6", rec.MonthlyRange)
}

func TestJobListingAccessors(t *testing.T) {
	rec := NamedRecord{
		JobTitle:      "<a href='/jobs/a100'>Accountant I</a>",
		JobID:         "A100",
		JobCategory:   "Finance",
		EffectiveDate: "09/01/2025",
		AnnualRange:   "$40,000.00 - $50,000.00",
		MonthlyRange:  "N/A",
	}
	job := NewJobListing(rec)

	require.NotNil(t, job.Title())
	require.Equal(t, "Accountant I", *job.Title())
	require.Equal(t, "A100", job.ID())
	require.Equal(t, "Finance", job.Category())
	require.Equal(t, "09/01/2025", job.Date())

	require.Equal(t, 40000.0, *job.AnnualSalaryMin())
	require.Equal(t, 50000.0, *job.AnnualSalaryMax())
	require.Nil(t, job.MonthlySalaryMin())
	require.Nil(t, job.MonthlySalaryMax())
}
