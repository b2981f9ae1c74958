package payplan

// JobListing is a read-only view over one NamedRecord. Accessors never
// mutate the record; a field that fails to parse comes back nil.
type JobListing struct {
	rec NamedRecord
}

func NewJobListing(rec NamedRecord) JobListing {
	return JobListing{rec: rec}
}

// Title extracts the plain-text title from the anchor markup, nil when the
// markup is malformed.
func (l JobListing) Title() *string {
	return ExtractTitle(l.rec.JobTitle)
}

func (l JobListing) ID() string {
	return l.rec.JobID
}

func (l JobListing) Date() string {
	return l.rec.EffectiveDate
}

func (l JobListing) Category() string {
	return l.rec.JobCategory
}

func (l JobListing) AnnualSalaryMin() *float64 {
	min, _ := ParseSalaryRange(l.rec.AnnualRange)
	return min
}

func (l JobListing) AnnualSalaryMax() *float64 {
	_, max := ParseSalaryRange(l.rec.AnnualRange)
	return max
}

func (l JobListing) MonthlySalaryMin() *float64 {
	min, _ := ParseSalaryRange(l.rec.MonthlyRange)
	return min
}

func (l JobListing) MonthlySalaryMax() *float64 {
	_, max := ParseSalaryRange(l.rec.MonthlyRange)
	return max
}
