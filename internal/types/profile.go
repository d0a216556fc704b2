// Package types provides type definitions for structured data used throughout the matching engine.
package types

// NotSpecified is the placeholder substituted for positions missing from a
// parallel-array resume payload.
const NotSpecified = "not specified"

// EmploymentRecord represents a single job stint on a resume.
type EmploymentRecord struct {
	Company string `json:"company"`
	Title   string `json:"title"`
	Period  string `json:"period"`
}

// ResumeProfile represents the structured employment fields extracted from one
// resume submission. Extraction itself happens upstream; the engine trusts
// whatever structured fields are handed in, including empty ones.
type ResumeProfile struct {
	Records   []EmploymentRecord `json:"records"`
	Education []string           `json:"education,omitempty"`
	Skills    []string           `json:"skills,omitempty"`
}

// ResumeProfileFromArrays builds a ResumeProfile from the parallel arrays
// produced by the extraction service. The arrays are zipped by index up to the
// longest length; a position absent from one array yields a record carrying
// the "not specified" placeholder, so no record is ever dropped on a
// length mismatch.
func ResumeProfileFromArrays(companies, titles, periods, education, skills []string) ResumeProfile {
	n := len(companies)
	if len(titles) > n {
		n = len(titles)
	}
	if len(periods) > n {
		n = len(periods)
	}

	records := make([]EmploymentRecord, 0, n)
	for i := 0; i < n; i++ {
		records = append(records, EmploymentRecord{
			Company: valueAt(companies, i),
			Title:   valueAt(titles, i),
			Period:  valueAt(periods, i),
		})
	}

	return ResumeProfile{Records: records, Education: education, Skills: skills}
}

func valueAt(values []string, i int) string {
	if i < len(values) {
		return values[i]
	}
	return NotSpecified
}

// Companies returns the company column of the profile's records.
func (p ResumeProfile) Companies() []string {
	out := make([]string, len(p.Records))
	for i, rec := range p.Records {
		out[i] = rec.Company
	}
	return out
}

// Titles returns the title column of the profile's records.
func (p ResumeProfile) Titles() []string {
	out := make([]string, len(p.Records))
	for i, rec := range p.Records {
		out[i] = rec.Title
	}
	return out
}

// Periods returns the period column of the profile's records.
func (p ResumeProfile) Periods() []string {
	out := make([]string, len(p.Records))
	for i, rec := range p.Records {
		out[i] = rec.Period
	}
	return out
}
