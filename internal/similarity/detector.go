// Package similarity scans the candidate pool for employment chronologies
// that are identical or suspiciously close to a given candidate's. Two
// distinct people cannot share the exact same sequence of employers and date
// ranges, so identical chronology is the strongest fraud signal the engine
// produces.
package similarity

import (
	"sort"

	"github.com/mumbaikadon/RecruiterProfileManager-sub002/internal/types"
)

// DefaultHighSimilarityThreshold is the score above which a non-identical
// chronology pair counts as high similarity. Deployments tune it through
// configuration.
const DefaultHighSimilarityThreshold = 80

// Detector compares one candidate's (company, period) tuples against the rest
// of the pool. It reads the pool as an immutable snapshot and never mutates
// it; similarity checking is advisory and must not fail the caller.
type Detector struct {
	threshold int
}

// New returns a Detector classifying scores above threshold as high
// similarity. A non-positive threshold falls back to the default.
func New(threshold int) *Detector {
	if threshold <= 0 {
		threshold = DefaultHighSimilarityThreshold
	}
	return &Detector{threshold: threshold}
}

// FindSimilar scans the pool for candidates whose employment chronology
// overlaps the subject's. Pool entries without a declared company are skipped
// and not counted; the subject itself is skipped by ID. An empty pool, or a
// subject without any chronology, yields an empty result rather than an
// error.
func (d *Detector) FindSimilar(subject types.Candidate, pool []types.Candidate) types.SimilarityResult {
	result := types.SimilarityResult{
		IdenticalChronology: make([]types.CandidateSimilarityMatch, 0),
		HighSimilarity:      make([]types.CandidateSimilarityMatch, 0),
	}

	subjectStints := chronologyOf(subject.Profile)
	if len(subjectStints) == 0 {
		return result
	}
	subjectPrint := fingerprintStints(subjectStints)

	for _, other := range pool {
		if other.ID == subject.ID {
			continue
		}
		otherStints := chronologyOf(other.Profile)
		if len(otherStints) == 0 {
			continue
		}
		result.TotalCandidatesChecked++

		otherPrint := fingerprintStints(otherStints)
		score, matchedCompanies, matchedDates := overlap(subjectStints, otherStints)

		identical := otherPrint == subjectPrint && len(otherStints) == len(subjectStints)
		if identical {
			result.IdenticalChronology = append(result.IdenticalChronology, types.CandidateSimilarityMatch{
				CandidateID:      other.ID,
				CandidateName:    other.Name,
				SimilarityScore:  100,
				MatchedCompanies: matchedCompanies,
				MatchedDates:     matchedDates,
				Severity:         identicalSeverity(len(subjectStints)),
				Fingerprint:      otherPrint,
			})
			continue
		}

		if score > d.threshold {
			result.HighSimilarity = append(result.HighSimilarity, types.CandidateSimilarityMatch{
				CandidateID:      other.ID,
				CandidateName:    other.Name,
				SimilarityScore:  score,
				MatchedCompanies: matchedCompanies,
				MatchedDates:     matchedDates,
				Severity:         types.SeverityMedium,
				Fingerprint:      otherPrint,
			})
		}
	}

	sortMatches(result.IdenticalChronology)
	sortMatches(result.HighSimilarity)
	return result
}

// Threshold returns the high-similarity threshold in effect.
func (d *Detector) Threshold() int {
	return d.threshold
}

// identicalSeverity grades a full chronology match. Sharing two or more
// stints is conclusive; a single shared stint is still strong but leaves room
// for coincidence.
func identicalSeverity(stintCount int) types.Severity {
	if stintCount >= 2 {
		return types.SeverityCritical
	}
	return types.SeverityHigh
}

// overlap counts how many of the subject's stints appear in the other
// candidate's chronology, multiset-style: each of the other's stints can
// satisfy only one of the subject's. Returns the score on [0,100] plus the
// subject's display values for the matched tuples.
func overlap(subject, other []stint) (int, []string, []string) {
	remaining := make(map[string]int, len(other))
	for _, s := range other {
		remaining[s.key()]++
	}

	matchedCompanies := make([]string, 0, len(subject))
	matchedDates := make([]string, 0, len(subject))
	seenCompany := make(map[string]bool)
	seenDate := make(map[string]bool)

	matched := 0
	for _, s := range subject {
		if remaining[s.key()] == 0 {
			continue
		}
		remaining[s.key()]--
		matched++
		if !seenCompany[s.company] {
			seenCompany[s.company] = true
			matchedCompanies = append(matchedCompanies, s.displayCompany)
		}
		if s.period != "" && !seenDate[s.period] {
			seenDate[s.period] = true
			matchedDates = append(matchedDates, s.displayPeriod)
		}
	}

	score := matched * 100 / len(subject)
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score, matchedCompanies, matchedDates
}

// sortMatches orders matches by descending score, then by name so equal
// scores come out in a stable order.
func sortMatches(matches []types.CandidateSimilarityMatch) {
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].SimilarityScore != matches[j].SimilarityScore {
			return matches[i].SimilarityScore > matches[j].SimilarityScore
		}
		return matches[i].CandidateName < matches[j].CandidateName
	})
}
