package similarity

import (
	"encoding/hex"
	"sort"
	"strings"

	"golang.org/x/crypto/blake2b"

	"github.com/mumbaikadon/RecruiterProfileManager-sub002/internal/types"
)

// stint is one normalized (company, period) tuple of an employment chronology.
// Display casing is kept alongside for reporting.
type stint struct {
	company string
	period  string

	displayCompany string
	displayPeriod  string
}

func (s stint) key() string {
	return s.company + "\x1f" + s.period
}

// chronologyOf extracts the normalized stint tuples from a candidate's
// profile. Records without a declared company carry no chronology signal and
// are skipped, including the "not specified" placeholder the array zipper
// substitutes for missing positions.
func chronologyOf(profile types.ResumeProfile) []stint {
	stints := make([]stint, 0, len(profile.Records))
	for _, rec := range profile.Records {
		company := normalizeField(rec.Company)
		if company == "" || company == types.NotSpecified {
			continue
		}
		stints = append(stints, stint{
			company:        company,
			period:         normalizeField(rec.Period),
			displayCompany: rec.Company,
			displayPeriod:  rec.Period,
		})
	}
	return stints
}

func normalizeField(v string) string {
	return strings.ToLower(strings.TrimSpace(v))
}

// Fingerprint returns a hex BLAKE2b-256 digest of a profile's employment
// chronology: the multiset of normalized (company, period) tuples in sorted
// order. Two profiles share a fingerprint exactly when their chronologies are
// identical regardless of record order. Profiles without any declared company
// yield the empty string.
func Fingerprint(profile types.ResumeProfile) string {
	return fingerprintStints(chronologyOf(profile))
}

func fingerprintStints(stints []stint) string {
	if len(stints) == 0 {
		return ""
	}
	keys := make([]string, len(stints))
	for i, s := range stints {
		keys[i] = s.key()
	}
	sort.Strings(keys)

	digest := blake2b.Sum256([]byte(strings.Join(keys, "\x1e")))
	return hex.EncodeToString(digest[:])
}
