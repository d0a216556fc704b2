package history

import (
	"testing"

	"github.com/mumbaikadon/RecruiterProfileManager-sub002/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func profile(companies, titles, periods, education []string) types.ResumeProfile {
	return types.ResumeProfileFromArrays(companies, titles, periods, education, nil)
}

func TestDiff_IdenticalProfilesScoreZero(t *testing.T) {
	c := New(0)
	p := profile(
		[]string{"Acme", "Globex"},
		[]string{"Engineer", "Senior Engineer"},
		[]string{"2019-2021", "2021-2023"},
		[]string{"BS Computer Science"},
	)

	report := c.Diff(p, p)

	assert.Equal(t, 0, report.Score)
	assert.False(t, report.Significant)
	assert.Empty(t, report.AddedCompanies)
	assert.Empty(t, report.RemovedCompanies)
	assert.ElementsMatch(t, []string{"Acme", "Globex"}, report.UnchangedCompanies)
	assert.ElementsMatch(t, []string{"BS Computer Science"}, report.UnchangedEducation)
}

func TestDiff_EmptyPreviousProfileScoresZero(t *testing.T) {
	c := New(0)

	report := c.Diff(types.ResumeProfile{}, profile(
		[]string{"Acme"},
		[]string{"Engineer"},
		[]string{"2020-2021"},
		nil,
	))

	assert.Equal(t, 0, report.Score)
	assert.ElementsMatch(t, []string{"Acme"}, report.AddedCompanies)
	assert.Empty(t, report.RemovedCompanies)
}

func TestDiff_BothEmpty(t *testing.T) {
	c := New(0)

	report := c.Diff(types.ResumeProfile{}, types.ResumeProfile{})

	assert.Equal(t, 0, report.Score)
	assert.False(t, report.Changed())
}

func TestDiff_AddedAndRemovedEntries(t *testing.T) {
	c := New(0)
	previous := profile(
		[]string{"Acme", "Globex"},
		[]string{"Engineer", "Senior Engineer"},
		[]string{"2019-2021", "2021-2023"},
		[]string{"BS Computer Science"},
	)
	current := profile(
		[]string{"Acme", "Initech"},
		[]string{"Engineer", "Staff Engineer"},
		[]string{"2019-2021", "2021-2023"},
		[]string{"BS Computer Science"},
	)

	report := c.Diff(previous, current)

	assert.Equal(t, []string{"Initech"}, report.AddedCompanies)
	assert.Equal(t, []string{"Globex"}, report.RemovedCompanies)
	assert.Equal(t, []string{"Acme"}, report.UnchangedCompanies)
	assert.Equal(t, []string{"Staff Engineer"}, report.AddedTitles)
	assert.Equal(t, []string{"Senior Engineer"}, report.RemovedTitles)
	assert.Empty(t, report.AddedDates)

	// 2 added + 2 removed over 2×7 previous entries
	assert.Equal(t, 29, report.Score)
	assert.True(t, report.Significant)
}

func TestDiff_MembershipIsCaseSensitive(t *testing.T) {
	c := New(0)
	previous := profile([]string{"Acme Corp"}, nil, nil, nil)
	current := profile([]string{"ACME Corp"}, nil, nil, nil)

	report := c.Diff(previous, current)

	assert.Equal(t, []string{"ACME Corp"}, report.AddedCompanies)
	assert.Equal(t, []string{"Acme Corp"}, report.RemovedCompanies)
	assert.Empty(t, report.UnchangedCompanies)
}

func TestDiff_FullReplacementCapsAtHundred(t *testing.T) {
	c := New(0)
	previous := profile([]string{"Acme"}, []string{"Engineer"}, []string{"2019"}, nil)
	current := profile(
		[]string{"Globex", "Initech", "Umbrella"},
		[]string{"Manager", "Director", "VP"},
		[]string{"2020", "2021", "2022"},
		nil,
	)

	report := c.Diff(previous, current)

	assert.LessOrEqual(t, report.Score, 100)
	assert.GreaterOrEqual(t, report.Score, 0)
	assert.Equal(t, 100, report.Score)
}

func TestDiff_ScoreAlwaysInRange(t *testing.T) {
	c := New(0)
	cases := []struct {
		name     string
		previous types.ResumeProfile
		current  types.ResumeProfile
	}{
		{"both empty", types.ResumeProfile{}, types.ResumeProfile{}},
		{"empty previous", types.ResumeProfile{}, profile([]string{"A", "B", "C"}, nil, nil, nil)},
		{"empty current", profile([]string{"A"}, nil, nil, nil), types.ResumeProfile{}},
		{"duplicated entries", profile([]string{"A", "A", "A"}, nil, nil, nil), profile([]string{"B", "B"}, nil, nil, nil)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			report := c.Diff(tc.previous, tc.current)
			assert.GreaterOrEqual(t, report.Score, 0)
			assert.LessOrEqual(t, report.Score, 100)
		})
	}
}

func TestDiff_DuplicateEntriesCountOnce(t *testing.T) {
	c := New(0)
	previous := profile([]string{"Acme", "Acme"}, nil, nil, nil)
	current := profile([]string{"Acme"}, nil, nil, nil)

	report := c.Diff(previous, current)

	assert.Equal(t, 0, report.Score)
	assert.Equal(t, []string{"Acme"}, report.UnchangedCompanies)
}

func TestNew_ThresholdDefaultsWhenNonPositive(t *testing.T) {
	assert.Equal(t, DefaultSignificanceThreshold, New(0).Threshold())
	assert.Equal(t, DefaultSignificanceThreshold, New(-3).Threshold())
	assert.Equal(t, 25, New(25).Threshold())
}

func TestDiff_SignificanceUsesConfiguredThreshold(t *testing.T) {
	previous := profile([]string{"Acme", "Globex", "Initech", "Umbrella"}, nil, nil, nil)
	current := profile([]string{"Acme", "Globex", "Initech", "Hooli"}, nil, nil, nil)

	// 1 added + 1 removed over 2×4 = 25
	strict := New(10).Diff(previous, current)
	require.Equal(t, 25, strict.Score)
	assert.True(t, strict.Significant)

	lenient := New(30).Diff(previous, current)
	assert.False(t, lenient.Significant)
}

func TestDiff_EducationOnlyChange(t *testing.T) {
	c := New(0)
	previous := profile([]string{"Acme"}, []string{"Engineer"}, []string{"2019"}, []string{"BS Math"})
	current := profile([]string{"Acme"}, []string{"Engineer"}, []string{"2019"}, []string{"MS Math"})

	report := c.Diff(previous, current)

	assert.Equal(t, []string{"MS Math"}, report.AddedEducation)
	assert.Equal(t, []string{"BS Math"}, report.RemovedEducation)
	assert.True(t, report.Changed())
	// 2 changes over 2×4 previous entries
	assert.Equal(t, 25, report.Score)
}
