// Package matching scores a candidate's title history against a job opening,
// using taxonomy expansion with a lexical-similarity fallback.
package matching

import (
	"github.com/mumbaikadon/RecruiterProfileManager-sub002/internal/expansion"
)

// MatchResult is the outcome of scoring one candidate against one job title.
// MatchedTitle is the candidate's original title that produced the score, not
// an expansion of it. Matched is false when the candidate had no titles or
// nothing overlapped at all.
type MatchResult struct {
	Score        float64 `json:"score"`
	MatchedTitle string  `json:"matched_title,omitempty"`
	Matched      bool    `json:"matched"`
}

// Matcher scores title histories against job openings.
type Matcher struct {
	expander *expansion.Expander
}

// New returns a Matcher using the given expander.
func New(expander *expansion.Expander) *Matcher {
	return &Matcher{expander: expander}
}

// Score rates how well a candidate's title history fits a job opening,
// returning a score on [0,1] and the candidate title that produced it.
//
// Titles the job accepts at full confidence are the job title, its
// equivalence set, and roles implied by the job's required skills; a
// candidate who actually held one of those scores 1.0 outright. Everything
// else goes through pairwise lexical comparison of the two expanded title
// sets, where overlap reached only via hierarchy expansion ranks at substring
// grade: holding a broader related role is strong signal, but not the same as
// having held the title itself.
func (m *Matcher) Score(jobTitle string, candidateTitles, jobSkills, candidateSkills []string) MatchResult {
	if len(candidateTitles) == 0 {
		return MatchResult{Score: 0}
	}

	exactTitles := appendUnique(m.expander.EquivalentTitles(jobTitle), m.expander.RolesFromSkills(jobSkills))
	for _, candidateTitle := range candidateTitles {
		key := normalizeTitle(candidateTitle)
		if key == "" {
			continue
		}
		for _, accepted := range exactTitles {
			if normalizeTitle(accepted) == key {
				return MatchResult{Score: 1.0, MatchedTitle: candidateTitle, Matched: true}
			}
		}
	}

	expandedJob := appendUnique(m.expander.Expand(jobTitle), m.expander.RolesFromSkills(jobSkills))
	skillRoles := m.expander.RolesFromSkills(candidateSkills)

	best := 0.0
	bestTitle := ""
	for _, candidateTitle := range candidateTitles {
		expandedCandidate := appendUnique(m.expander.Expand(candidateTitle), skillRoles)
		for _, jobExpanded := range expandedJob {
			for _, candExpanded := range expandedCandidate {
				sim := lexicalSimilarity(jobExpanded, candExpanded)
				if sim > substringScore {
					sim = substringScore
				}
				if sim > best {
					best = sim
					bestTitle = candidateTitle
				}
			}
		}
	}

	if best <= 0 {
		return MatchResult{Score: 0}
	}
	if best > 1.0 {
		best = 1.0
	}
	return MatchResult{Score: best, MatchedTitle: bestTitle, Matched: true}
}

func appendUnique(titles, extra []string) []string {
	seen := make(map[string]bool, len(titles))
	for _, t := range titles {
		seen[normalizeTitle(t)] = true
	}
	for _, t := range extra {
		key := normalizeTitle(t)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		titles = append(titles, t)
	}
	return titles
}
