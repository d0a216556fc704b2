package matching

import "strings"

// Lexical similarity grades. Word overlap is a weaker signal than a substring
// or exact hit, hence the down-weighting.
const (
	identicalScore = 1.0
	substringScore = 0.9
	overlapWeight  = 0.8
)

// normalizeTitle lowercases, trims, and collapses internal whitespace.
func normalizeTitle(title string) string {
	return strings.Join(strings.Fields(strings.ToLower(title)), " ")
}

// lexicalSimilarity scores two titles on [0,1]: 1.0 when identical after
// normalization, 0.9 when one contains the other, otherwise the share of
// common words over the longer title's word count, scaled by 0.8.
func lexicalSimilarity(a, b string) float64 {
	na := normalizeTitle(a)
	nb := normalizeTitle(b)
	if na == "" || nb == "" {
		return 0
	}
	if na == nb {
		return identicalScore
	}
	if strings.Contains(na, nb) || strings.Contains(nb, na) {
		return substringScore
	}

	wordsA := strings.Fields(na)
	wordsB := strings.Fields(nb)
	inA := make(map[string]bool, len(wordsA))
	for _, w := range wordsA {
		inA[w] = true
	}

	common := 0
	counted := make(map[string]bool, len(wordsB))
	for _, w := range wordsB {
		if inA[w] && !counted[w] {
			common++
			counted[w] = true
		}
	}

	longest := len(wordsA)
	if len(wordsB) > longest {
		longest = len(wordsB)
	}
	if longest == 0 {
		return 0
	}

	return float64(common) / float64(longest) * overlapWeight
}
