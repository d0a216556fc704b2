package similarity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/mumbaikadon/RecruiterProfileManager-sub002/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func candidate(name string, companies, periods []string) types.Candidate {
	return types.Candidate{
		ID:      uuid.New(),
		Name:    name,
		Profile: types.ResumeProfileFromArrays(companies, nil, periods, nil, nil),
	}
}

func TestFindSimilar_IdenticalChronology(t *testing.T) {
	d := New(0)
	subject := candidate("Alice", []string{"Acme", "Globex"}, []string{"2020-2021", "2021-2022"})
	twin := candidate("Bob", []string{"Acme", "Globex"}, []string{"2020-2021", "2021-2022"})

	result := d.FindSimilar(subject, []types.Candidate{twin})

	require.Len(t, result.IdenticalChronology, 1)
	assert.Empty(t, result.HighSimilarity)
	match := result.IdenticalChronology[0]
	assert.Equal(t, twin.ID, match.CandidateID)
	assert.Equal(t, "Bob", match.CandidateName)
	assert.Equal(t, 100, match.SimilarityScore)
	assert.Equal(t, types.SeverityCritical, match.Severity)
	assert.ElementsMatch(t, []string{"Acme", "Globex"}, match.MatchedCompanies)
	assert.ElementsMatch(t, []string{"2020-2021", "2021-2022"}, match.MatchedDates)
	assert.Equal(t, 1, result.TotalCandidatesChecked)
}

func TestFindSimilar_OrderInsensitive(t *testing.T) {
	d := New(0)
	subject := candidate("Alice", []string{"Acme", "Globex"}, []string{"2020-2021", "2021-2022"})
	reversed := candidate("Bob", []string{"Globex", "Acme"}, []string{"2021-2022", "2020-2021"})

	result := d.FindSimilar(subject, []types.Candidate{reversed})

	require.Len(t, result.IdenticalChronology, 1)
	assert.Equal(t, 100, result.IdenticalChronology[0].SimilarityScore)
	assert.Equal(t, Fingerprint(subject.Profile), result.IdenticalChronology[0].Fingerprint)
}

func TestFindSimilar_CaseAndWhitespaceInsensitiveTuples(t *testing.T) {
	d := New(0)
	subject := candidate("Alice", []string{"Acme Corp"}, []string{"2020-2021"})
	other := candidate("Bob", []string{"  ACME CORP "}, []string{" 2020-2021 "})

	result := d.FindSimilar(subject, []types.Candidate{other})

	require.Len(t, result.IdenticalChronology, 1)
}

func TestFindSimilar_SingleStintIdenticalIsHighNotCritical(t *testing.T) {
	d := New(0)
	subject := candidate("Alice", []string{"Acme"}, []string{"2020-2021"})
	other := candidate("Bob", []string{"Acme"}, []string{"2020-2021"})

	result := d.FindSimilar(subject, []types.Candidate{other})

	require.Len(t, result.IdenticalChronology, 1)
	assert.Equal(t, types.SeverityHigh, result.IdenticalChronology[0].Severity)
}

func TestFindSimilar_HighSimilarityBelowIdentical(t *testing.T) {
	d := New(80)
	subject := candidate("Alice",
		[]string{"Acme", "Globex", "Initech", "Umbrella", "Hooli"},
		[]string{"2017", "2018", "2019", "2020", "2021"})
	// shares 5 of 5 tuples but has one extra stint: not identical cardinality
	near := types.Candidate{
		ID:   uuid.New(),
		Name: "Bob",
		Profile: types.ResumeProfileFromArrays(
			[]string{"Acme", "Globex", "Initech", "Umbrella", "Hooli", "Pied Piper"},
			nil,
			[]string{"2017", "2018", "2019", "2020", "2021", "2022"},
			nil, nil),
	}

	result := d.FindSimilar(subject, []types.Candidate{near})

	assert.Empty(t, result.IdenticalChronology)
	require.Len(t, result.HighSimilarity, 1)
	match := result.HighSimilarity[0]
	assert.Equal(t, 100, match.SimilarityScore)
	assert.Equal(t, types.SeverityMedium, match.Severity)
}

func TestFindSimilar_PartialOverlapAboveThreshold(t *testing.T) {
	d := New(80)
	subject := candidate("Alice",
		[]string{"Acme", "Globex", "Initech", "Umbrella", "Hooli"},
		[]string{"2017", "2018", "2019", "2020", "2021"})
	// 4 of 5 tuples shared -> 80, not above the threshold
	four := candidate("Bob",
		[]string{"Acme", "Globex", "Initech", "Umbrella"},
		[]string{"2017", "2018", "2019", "2020"})

	result := d.FindSimilar(subject, []types.Candidate{four})
	assert.Empty(t, result.HighSimilarity)

	// with a lower threshold the same pair qualifies
	relaxed := New(70).FindSimilar(subject, []types.Candidate{four})
	require.Len(t, relaxed.HighSimilarity, 1)
	assert.Equal(t, 80, relaxed.HighSimilarity[0].SimilarityScore)
	assert.ElementsMatch(t, []string{"Acme", "Globex", "Initech", "Umbrella"},
		relaxed.HighSimilarity[0].MatchedCompanies)
}

func TestFindSimilar_EmptyPool(t *testing.T) {
	d := New(0)
	subject := candidate("Alice", []string{"Acme"}, []string{"2020"})

	result := d.FindSimilar(subject, nil)

	assert.Empty(t, result.IdenticalChronology)
	assert.Empty(t, result.HighSimilarity)
	assert.Equal(t, 0, result.TotalCandidatesChecked)
}

func TestFindSimilar_SubjectWithoutChronology(t *testing.T) {
	d := New(0)
	subject := types.Candidate{ID: uuid.New(), Name: "Alice"}
	other := candidate("Bob", []string{"Acme"}, []string{"2020"})

	result := d.FindSimilar(subject, []types.Candidate{other})

	assert.Empty(t, result.IdenticalChronology)
	assert.Empty(t, result.HighSimilarity)
	assert.Equal(t, 0, result.TotalCandidatesChecked)
}

func TestFindSimilar_SkipsSubjectAndEmptyCandidates(t *testing.T) {
	d := New(0)
	subject := candidate("Alice", []string{"Acme"}, []string{"2020"})
	noCompanies := types.Candidate{ID: uuid.New(), Name: "Ghost"}
	placeholderOnly := candidate("Padded", []string{types.NotSpecified}, []string{"2020"})

	result := d.FindSimilar(subject, []types.Candidate{subject, noCompanies, placeholderOnly})

	assert.Equal(t, 0, result.TotalCandidatesChecked)
	assert.Empty(t, result.IdenticalChronology)
}

func TestFindSimilar_ResultsSortedByScoreThenName(t *testing.T) {
	d := New(50)
	subject := candidate("Alice",
		[]string{"Acme", "Globex", "Initech"},
		[]string{"2019", "2020", "2021"})
	twoOfThreeB := candidate("Bob", []string{"Acme", "Globex"}, []string{"2019", "2020"})
	twoOfThreeA := candidate("Ann", []string{"Acme", "Initech"}, []string{"2019", "2021"})
	identical := candidate("Zed", []string{"Acme", "Globex", "Initech"}, []string{"2019", "2020", "2021"})

	result := d.FindSimilar(subject, []types.Candidate{twoOfThreeB, identical, twoOfThreeA})

	require.Len(t, result.IdenticalChronology, 1)
	assert.Equal(t, "Zed", result.IdenticalChronology[0].CandidateName)

	require.Len(t, result.HighSimilarity, 2)
	assert.Equal(t, "Ann", result.HighSimilarity[0].CandidateName)
	assert.Equal(t, "Bob", result.HighSimilarity[1].CandidateName)
	assert.Equal(t, 66, result.HighSimilarity[0].SimilarityScore)
	assert.Equal(t, 3, result.TotalCandidatesChecked)
}

func TestFindSimilar_DuplicateStintsMatchedAsMultiset(t *testing.T) {
	d := New(0)
	// subject lists the same stint twice; the other candidate only once
	subject := candidate("Alice", []string{"Acme", "Acme"}, []string{"2020", "2020"})
	other := candidate("Bob", []string{"Acme"}, []string{"2020"})

	result := d.FindSimilar(subject, []types.Candidate{other})

	// one of two subject tuples matched: 50, no identical match
	assert.Empty(t, result.IdenticalChronology)
	assert.Empty(t, result.HighSimilarity)
}

func TestFindSimilar_DoesNotMutatePool(t *testing.T) {
	d := New(0)
	subject := candidate("Alice", []string{"Acme"}, []string{"2020"})
	other := candidate("Bob", []string{"Acme"}, []string{"2020"})
	pool := []types.Candidate{other}
	before := pool[0]

	_ = d.FindSimilar(subject, pool)

	assert.Equal(t, before, pool[0])
}

func TestFingerprint_OrderInsensitiveAndDistinct(t *testing.T) {
	a := types.ResumeProfileFromArrays([]string{"Acme", "Globex"}, nil, []string{"2020", "2021"}, nil, nil)
	b := types.ResumeProfileFromArrays([]string{"Globex", "Acme"}, nil, []string{"2021", "2020"}, nil, nil)
	c := types.ResumeProfileFromArrays([]string{"Acme", "Globex"}, nil, []string{"2020", "2022"}, nil, nil)

	assert.Equal(t, Fingerprint(a), Fingerprint(b))
	assert.NotEqual(t, Fingerprint(a), Fingerprint(c))
	assert.Len(t, Fingerprint(a), 64)
}

func TestFingerprint_EmptyChronology(t *testing.T) {
	assert.Equal(t, "", Fingerprint(types.ResumeProfile{}))
}

func TestFingerprint_MultiplicityMatters(t *testing.T) {
	once := types.ResumeProfileFromArrays([]string{"Acme"}, nil, []string{"2020"}, nil, nil)
	twice := types.ResumeProfileFromArrays([]string{"Acme", "Acme"}, nil, []string{"2020", "2020"}, nil, nil)

	assert.NotEqual(t, Fingerprint(once), Fingerprint(twice))
}
