// Package payplan holds the row representations of the pay-plan dataset and
// the parsers that turn its semi-structured text fields into typed values.
package payplan

import (
	"errors"
	"fmt"
)

// FieldCount is the arity of a well-formed pay-plan row.
const FieldCount = 6

// ErrSchemaMismatch reports a raw row whose arity differs from the schema.
var ErrSchemaMismatch = errors.New("raw record does not match schema arity")

// RawRecord is one row as returned by the remote API: positional string
// fields in a fixed order (title markup, job code, category, effective date,
// annual range, monthly range).
type RawRecord []string

// NamedRecord is one pay-plan row keyed by name. The JSON tags preserve the
// column labels used by the upstream dataset, so the snapshot file stays
// byte-compatible with what the API calls its fields.
type NamedRecord struct {
	JobTitle      string `json:"Job Title"`
	JobID         string `json:"Job ID (Job Code)"`
	JobCategory   string `json:"Job Category"`
	EffectiveDate string `json:"Effective Date"`
	AnnualRange   string `json:"Annual Min - Max"`
	MonthlyRange  string `json:"Monthly Min - Max"`
}

// ToNamedRecord pairs raw positional values against the schema. Strict mode
// (used by the fetch pipeline) rejects rows whose arity differs from the
// schema. Lenient mode keeps zip-shortest semantics: the prefix that exists
// is filled and extra fields are ignored.
func ToNamedRecord(raw RawRecord, strict bool) (NamedRecord, error) {
	if strict && len(raw) != FieldCount {
		return NamedRecord{}, fmt.Errorf("%w: got %d fields, want %d", ErrSchemaMismatch, len(raw), FieldCount)
	}
	var rec NamedRecord
	dst := []*string{
		&rec.JobTitle,
		&rec.JobID,
		&rec.JobCategory,
		&rec.EffectiveDate,
		&rec.AnnualRange,
		&rec.MonthlyRange,
	}
	for i := 0; i < len(dst) && i < len(raw); i++ {
		*dst[i] = raw[i]
	}
	return rec, nil
}

// Fields returns the record's values in schema order, reversing ToNamedRecord.
func (r NamedRecord) Fields() RawRecord {
	return RawRecord{
		r.JobTitle,
		r.JobID,
		r.JobCategory,
		r.EffectiveDate,
		r.AnnualRange,
		r.MonthlyRange,
	}
}
