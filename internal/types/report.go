package types

import "github.com/google/uuid"

// DiscrepancyReport is the field-by-field diff between an existing resume
// profile and a newly submitted one for the same candidate. Score is the
// percentage of previous entries that changed, 0-100.
type DiscrepancyReport struct {
	AddedCompanies     []string `json:"added_companies"`
	RemovedCompanies   []string `json:"removed_companies"`
	UnchangedCompanies []string `json:"unchanged_companies"`
	AddedTitles        []string `json:"added_titles"`
	RemovedTitles      []string `json:"removed_titles"`
	UnchangedTitles    []string `json:"unchanged_titles"`
	AddedDates         []string `json:"added_dates"`
	RemovedDates       []string `json:"removed_dates"`
	UnchangedDates     []string `json:"unchanged_dates"`
	AddedEducation     []string `json:"added_education"`
	RemovedEducation   []string `json:"removed_education"`
	UnchangedEducation []string `json:"unchanged_education"`
	Score              int      `json:"score"`
	Significant        bool     `json:"significant"`
}

// Changed reports whether the diff contains any added or removed entries.
func (r DiscrepancyReport) Changed() bool {
	return len(r.AddedCompanies) > 0 || len(r.RemovedCompanies) > 0 ||
		len(r.AddedTitles) > 0 || len(r.RemovedTitles) > 0 ||
		len(r.AddedDates) > 0 || len(r.RemovedDates) > 0 ||
		len(r.AddedEducation) > 0 || len(r.RemovedEducation) > 0
}

// CandidateSimilarityMatch is one pool candidate whose employment chronology
// overlaps the subject candidate's.
type CandidateSimilarityMatch struct {
	CandidateID      uuid.UUID `json:"candidate_id"`
	CandidateName    string    `json:"candidate_name"`
	SimilarityScore  int       `json:"similarity_score"`
	MatchedCompanies []string  `json:"matched_companies"`
	MatchedDates     []string  `json:"matched_dates"`
	Severity         Severity  `json:"severity"`
	Fingerprint      string    `json:"fingerprint,omitempty"`
}

// SimilarityResult is the outcome of scanning the candidate pool for shared
// employment chronologies. Identical-chronology matches and high-similarity
// matches are reported separately so callers can treat them differently.
type SimilarityResult struct {
	IdenticalChronology    []CandidateSimilarityMatch `json:"identical_chronology_matches"`
	HighSimilarity         []CandidateSimilarityMatch `json:"high_similarity_matches"`
	TotalCandidatesChecked int                        `json:"total_candidates_checked"`
}

// Empty reports whether the scan produced no matches of either kind.
func (r SimilarityResult) Empty() bool {
	return len(r.IdenticalChronology) == 0 && len(r.HighSimilarity) == 0
}
