// Package taxonomy provides the job-title knowledge base: equivalence sets,
// the parent-role hierarchy, per-domain title maps, and technology-to-role
// mappings. Tables are compiled once at startup and read-only afterwards.
package taxonomy

import (
	"fmt"
	"sort"
	"strings"
)

// Tables is the raw, authorable form of the taxonomy. Keys and values keep
// their display casing; all lookups are case-insensitive.
type Tables struct {
	// Equivalence maps a canonical title to the titles considered identical
	// in meaning. Symmetry is guaranteed by compilation: querying any member
	// returns the canonical title and all other members.
	Equivalence map[string][]string `json:"equivalence"`

	// Hierarchy maps a specific title to the broader roles it rolls up into.
	Hierarchy map[string][]string `json:"hierarchy"`

	// Domains maps an industry domain to specialized-title overrides, each
	// resolving to one or more generic roles.
	Domains map[string]map[string][]string `json:"domains"`

	// TechRoles maps a technology keyword to the roles it implies. A skill
	// string matches a keyword when it contains the keyword as a
	// case-insensitive substring.
	TechRoles map[string][]string `json:"tech_roles"`
}

// Taxonomy is the compiled, immutable lookup form of Tables.
type Taxonomy struct {
	setByTitle  map[string][]string // lowercased title -> full equivalence set, display case
	parents     map[string][]string // lowercased child -> parent roles, display case
	domainRoles map[string][]string // lowercased specialized title -> generic roles, display case
	techRoles   map[string][]string // lowercased keyword -> roles, display case
	techKeys    []string            // sorted lowercased keywords, for deterministic scans
}

// maxHierarchyHops bounds how deep a parent chain may run. The hierarchy is
// shallow by construction; anything deeper is an authoring mistake.
const maxHierarchyHops = 2

// New compiles tables into a Taxonomy. It rejects tables that break the
// structural invariants: a title claimed by more than one equivalence set, or
// a hierarchy containing a cycle or a chain longer than two hops.
func New(tables Tables) (*Taxonomy, error) {
	tx := &Taxonomy{
		setByTitle:  make(map[string][]string),
		parents:     make(map[string][]string),
		domainRoles: make(map[string][]string),
		techRoles:   make(map[string][]string),
	}

	owner := make(map[string]string) // lowercased title -> canonical that claimed it
	for canonical, members := range tables.Equivalence {
		set := make([]string, 0, len(members)+1)
		set = append(set, canonical)
		for _, m := range members {
			if strings.EqualFold(m, canonical) {
				continue
			}
			set = append(set, m)
		}

		for _, title := range set {
			key := strings.ToLower(strings.TrimSpace(title))
			if prev, taken := owner[key]; taken && prev != strings.ToLower(canonical) {
				return nil, &TableError{
					Table:   "equivalence",
					Message: fmt.Sprintf("title %q belongs to both %q and %q", title, prev, canonical),
				}
			}
			owner[key] = strings.ToLower(canonical)
		}
		for _, title := range set {
			tx.setByTitle[strings.ToLower(strings.TrimSpace(title))] = set
		}
	}

	for child, parentRoles := range tables.Hierarchy {
		key := strings.ToLower(strings.TrimSpace(child))
		tx.parents[key] = append([]string(nil), parentRoles...)
	}
	if err := tx.checkHierarchy(); err != nil {
		return nil, err
	}

	for _, overrides := range tables.Domains {
		for title, roles := range overrides {
			key := strings.ToLower(strings.TrimSpace(title))
			tx.domainRoles[key] = mergeRoles(tx.domainRoles[key], roles)
		}
	}

	for keyword, roles := range tables.TechRoles {
		key := strings.ToLower(strings.TrimSpace(keyword))
		if key == "" {
			continue
		}
		tx.techRoles[key] = mergeRoles(tx.techRoles[key], roles)
	}
	tx.techKeys = make([]string, 0, len(tx.techRoles))
	for key := range tx.techRoles {
		tx.techKeys = append(tx.techKeys, key)
	}
	sort.Strings(tx.techKeys)

	return tx, nil
}

// checkHierarchy walks every declared chain, rejecting cycles and chains
// deeper than maxHierarchyHops.
func (t *Taxonomy) checkHierarchy() error {
	for child := range t.parents {
		depth, err := t.walkParents(child, map[string]bool{child: true})
		if err != nil {
			return err
		}
		if depth > maxHierarchyHops {
			return &TableError{
				Table:   "hierarchy",
				Message: fmt.Sprintf("chain from %q runs %d hops, max is %d", child, depth, maxHierarchyHops),
			}
		}
	}
	return nil
}

func (t *Taxonomy) walkParents(title string, seen map[string]bool) (int, error) {
	deepest := 0
	for _, parent := range t.parents[title] {
		key := strings.ToLower(strings.TrimSpace(parent))
		if seen[key] {
			return 0, &TableError{
				Table:   "hierarchy",
				Message: fmt.Sprintf("cycle through %q", parent),
			}
		}
		seen[key] = true
		depth, err := t.walkParents(key, seen)
		if err != nil {
			return 0, err
		}
		delete(seen, key)
		if depth+1 > deepest {
			deepest = depth + 1
		}
	}
	return deepest, nil
}

// EquivalenceSet returns the full equivalence set for a title, matched
// case-insensitively against canonical keys and members alike. Unknown titles
// return nil.
func (t *Taxonomy) EquivalenceSet(title string) []string {
	set := t.setByTitle[strings.ToLower(strings.TrimSpace(title))]
	if set == nil {
		return nil
	}
	return append([]string(nil), set...)
}

// Parents returns the broader roles a title rolls up into, or nil.
func (t *Taxonomy) Parents(title string) []string {
	parents := t.parents[strings.ToLower(strings.TrimSpace(title))]
	if parents == nil {
		return nil
	}
	return append([]string(nil), parents...)
}

// DomainRoles returns the generic roles a specialized domain title maps to,
// or nil.
func (t *Taxonomy) DomainRoles(title string) []string {
	roles := t.domainRoles[strings.ToLower(strings.TrimSpace(title))]
	if roles == nil {
		return nil
	}
	return append([]string(nil), roles...)
}

// RolesForSkill returns the roles implied by one declared skill. A skill
// matches a technology keyword when the skill string contains the keyword,
// case-insensitively.
func (t *Taxonomy) RolesForSkill(skill string) []string {
	needle := strings.ToLower(strings.TrimSpace(skill))
	if needle == "" {
		return nil
	}
	var roles []string
	for _, key := range t.techKeys {
		if strings.Contains(needle, key) {
			roles = mergeRoles(roles, t.techRoles[key])
		}
	}
	return roles
}

// TechKeywords returns the known technology keywords in sorted order.
func (t *Taxonomy) TechKeywords() []string {
	return append([]string(nil), t.techKeys...)
}

func mergeRoles(existing, extra []string) []string {
	for _, role := range extra {
		found := false
		for _, have := range existing {
			if strings.EqualFold(have, role) {
				found = true
				break
			}
		}
		if !found {
			existing = append(existing, role)
		}
	}
	return existing
}
