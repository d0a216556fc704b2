// Package history diffs two resume profiles of the same candidate into
// added, removed, and unchanged entries per field class, and derives a
// discrepancy percentage from the change volume.
package history

import (
	"math"

	"github.com/mumbaikadon/RecruiterProfileManager-sub002/internal/types"
)

// DefaultSignificanceThreshold is the discrepancy score above which a report
// is marked significant. Deployments tune it through configuration.
const DefaultSignificanceThreshold = 10

// Comparator diffs resume profiles. Membership is by case-sensitive exact
// string equality; "Acme Corp" and "ACME Corp" are different entries.
type Comparator struct {
	threshold int
}

// New returns a Comparator flagging reports whose score exceeds threshold.
// A non-positive threshold falls back to the default.
func New(threshold int) *Comparator {
	if threshold <= 0 {
		threshold = DefaultSignificanceThreshold
	}
	return &Comparator{threshold: threshold}
}

// Diff compares a candidate's previously recorded profile against a new
// submission. The score is the share of entries that changed relative to the
// previous profile, 0-100; an empty previous profile scores 0 rather than
// dividing by zero.
func (c *Comparator) Diff(previous, current types.ResumeProfile) types.DiscrepancyReport {
	companies := diffSets(previous.Companies(), current.Companies())
	titles := diffSets(previous.Titles(), current.Titles())
	dates := diffSets(previous.Periods(), current.Periods())
	education := diffSets(previous.Education, current.Education)

	added := len(companies.added) + len(titles.added) + len(dates.added) + len(education.added)
	removed := len(companies.removed) + len(titles.removed) + len(dates.removed) + len(education.removed)
	previousCount := companies.previousCount + titles.previousCount + dates.previousCount + education.previousCount

	score := 0
	if previousCount > 0 {
		score = int(math.Round(float64(added+removed) / float64(2*previousCount) * 100))
	}
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return types.DiscrepancyReport{
		AddedCompanies:     companies.added,
		RemovedCompanies:   companies.removed,
		UnchangedCompanies: companies.unchanged,
		AddedTitles:        titles.added,
		RemovedTitles:      titles.removed,
		UnchangedTitles:    titles.unchanged,
		AddedDates:         dates.added,
		RemovedDates:       dates.removed,
		UnchangedDates:     dates.unchanged,
		AddedEducation:     education.added,
		RemovedEducation:   education.removed,
		UnchangedEducation: education.unchanged,
		Score:              score,
		Significant:        score > c.threshold,
	}
}

// Threshold returns the significance threshold in effect.
func (c *Comparator) Threshold() int {
	return c.threshold
}

type setDiff struct {
	added         []string
	removed       []string
	unchanged     []string
	previousCount int
}

// diffSets computes set differences between two entry lists, deduplicating
// while preserving first-seen order.
func diffSets(previous, current []string) setDiff {
	prevEntries, prevSet := dedupe(previous)
	curEntries, curSet := dedupe(current)

	diff := setDiff{
		added:         make([]string, 0),
		removed:       make([]string, 0),
		unchanged:     make([]string, 0),
		previousCount: len(prevEntries),
	}
	for _, entry := range curEntries {
		if !prevSet[entry] {
			diff.added = append(diff.added, entry)
		}
	}
	for _, entry := range prevEntries {
		if curSet[entry] {
			diff.unchanged = append(diff.unchanged, entry)
		} else {
			diff.removed = append(diff.removed, entry)
		}
	}
	return diff
}

func dedupe(entries []string) ([]string, map[string]bool) {
	ordered := make([]string, 0, len(entries))
	set := make(map[string]bool, len(entries))
	for _, entry := range entries {
		if set[entry] {
			continue
		}
		set[entry] = true
		ordered = append(ordered, entry)
	}
	return ordered, set
}
