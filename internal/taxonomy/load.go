package taxonomy

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/mumbaikadon/RecruiterProfileManager-sub002/internal/schemas"
)

// SchemaPath is the repo-relative location of the overlay schema.
const SchemaPath = "schemas/taxonomy.schema.json"

// Load reads a JSON overlay file, validates it against the schema at
// schemaPath (skipped when schemaPath is empty), merges it over the built-in
// tables, and compiles the result. Overlay entries union with built-ins; an
// overlay can add titles and mappings but never remove them.
func Load(path, schemaPath string) (*Taxonomy, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &OverlayError{Path: path, Message: "read failed", Cause: err}
	}

	if schemaPath != "" {
		schemaRaw, err := os.ReadFile(schemaPath)
		if err != nil {
			return nil, &OverlayError{Path: schemaPath, Message: "schema read failed", Cause: err}
		}
		if err := schemas.ValidateJSONString(string(schemaRaw), string(raw)); err != nil {
			return nil, &OverlayError{Path: path, Message: "schema validation failed", Cause: err}
		}
	}

	var overlay Tables
	if err := json.Unmarshal(raw, &overlay); err != nil {
		return nil, &OverlayError{Path: path, Message: "parse failed", Cause: err}
	}

	return New(MergeTables(DefaultTables(), overlay))
}

// MergeTables unions overlay entries into base and returns base. Overlay keys
// are folded case-insensitively onto existing base keys so a lowercased
// overlay entry extends the built-in set instead of shadowing it.
func MergeTables(base, overlay Tables) Tables {
	for canonical, members := range overlay.Equivalence {
		key := foldKey(base.Equivalence, canonical)
		base.Equivalence[key] = mergeRoles(base.Equivalence[key], members)
	}
	for child, parents := range overlay.Hierarchy {
		key := foldKey(base.Hierarchy, child)
		base.Hierarchy[key] = mergeRoles(base.Hierarchy[key], parents)
	}
	for domain, overrides := range overlay.Domains {
		if base.Domains[domain] == nil {
			base.Domains[domain] = make(map[string][]string, len(overrides))
		}
		for title, roles := range overrides {
			key := foldKey(base.Domains[domain], title)
			base.Domains[domain][key] = mergeRoles(base.Domains[domain][key], roles)
		}
	}
	for keyword, roles := range overlay.TechRoles {
		key := foldKey(base.TechRoles, keyword)
		base.TechRoles[key] = mergeRoles(base.TechRoles[key], roles)
	}
	return base
}

func foldKey(m map[string][]string, key string) string {
	for k := range m {
		if strings.EqualFold(k, key) {
			return k
		}
	}
	return key
}
