// Package expansion computes the closure of related job titles for a given
// title, using the taxonomy's equivalence sets, parent hierarchy, domain
// overrides, and technology-to-role mappings.
package expansion

import (
	"sort"
	"strings"

	"github.com/mumbaikadon/RecruiterProfileManager-sub002/internal/taxonomy"
)

// Expander expands titles against one immutable taxonomy.
type Expander struct {
	tx *taxonomy.Taxonomy
}

// New returns an Expander backed by the given taxonomy.
func New(tx *taxonomy.Taxonomy) *Expander {
	return &Expander{tx: tx}
}

// Expand returns the deduplicated union of the title itself, its equivalence
// set, its declared parent roles plus each parent's own equivalence set (one
// hop, never transitively), and any domain-override roles. The input title is
// always first; the additions follow in case-insensitive alphabetical order,
// so the result is deterministic and stable across processes. Unknown titles
// expand to a singleton.
func (e *Expander) Expand(title string) []string {
	seen := map[string]bool{titleKey(title): true}
	var additions []string
	add := func(t string) {
		key := titleKey(t)
		if key == "" || seen[key] {
			return
		}
		seen[key] = true
		additions = append(additions, t)
	}

	for _, t := range e.tx.EquivalenceSet(title) {
		add(t)
	}
	for _, parent := range e.tx.Parents(title) {
		add(parent)
		for _, t := range e.tx.EquivalenceSet(parent) {
			add(t)
		}
	}
	for _, role := range e.tx.DomainRoles(title) {
		add(role)
		for _, t := range e.tx.EquivalenceSet(role) {
			add(t)
		}
	}

	sort.Slice(additions, func(i, j int) bool {
		return strings.ToLower(additions[i]) < strings.ToLower(additions[j])
	})
	return append([]string{title}, additions...)
}

// EquivalentTitles returns only the title's equivalence closure: the title
// itself plus the titles considered identical in meaning. Hierarchy parents
// are deliberately excluded; a broader role is related, not identical.
func (e *Expander) EquivalentTitles(title string) []string {
	seen := map[string]bool{titleKey(title): true}
	out := []string{title}
	for _, t := range e.tx.EquivalenceSet(title) {
		key := titleKey(t)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, t)
	}
	return out
}

// RolesFromSkills unions the roles implied by each declared skill. Skills
// match technology keywords by case-insensitive substring containment.
func (e *Expander) RolesFromSkills(skills []string) []string {
	var roles []string
	seen := make(map[string]bool)
	for _, skill := range skills {
		for _, role := range e.tx.RolesForSkill(skill) {
			key := titleKey(role)
			if seen[key] {
				continue
			}
			seen[key] = true
			roles = append(roles, role)
		}
	}
	return roles
}

// TechKeywords returns the taxonomy's known technology keywords.
func (e *Expander) TechKeywords() []string {
	return e.tx.TechKeywords()
}

func titleKey(title string) string {
	return strings.ToLower(strings.TrimSpace(title))
}
