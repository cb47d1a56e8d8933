package service

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sakif/repo-showcase/internal/model"
)

func TestCurate_Scenarios(t *testing.T) {
	tests := []struct {
		name  string
		input []model.Repository
		want  []string
	}{
		{
			name:  "dotted name removed, rest by stars",
			input: []model.Repository{repo("gherkin", 100), repo("cucumber.js", 500), repo("cucumber-jvm", 50)},
			want:  []string{"gherkin", "cucumber-jvm"},
		},
		{
			name:  "empty input",
			input: []model.Repository{},
			want:  []string{},
		},
		{
			name:  "nil input",
			input: nil,
			want:  []string{},
		},
		{
			name:  "equal stars keep input order",
			input: []model.Repository{repo("B", 10), repo("A", 10)},
			want:  []string{"B", "A"},
		},
		{
			name:  "every name dotted",
			input: []model.Repository{repo(".github", 3), repo("site.io", 7)},
			want:  []string{},
		},
		{
			name:  "dot anywhere in the name",
			input: []model.Repository{repo("v1.0", 1), repo("trailing.", 2), repo("plain", 0)},
			want:  []string{"plain"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Curate(tt.input)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, names(got))
		})
	}
}

// The fork flag is not part of the model at all; only the name matters.
func TestExcludeDotted_OnlyLooksAtName(t *testing.T) {
	input := []model.Repository{
		{Name: "plain", FullName: "owner.with.dots/plain", HomepageURL: "https://x.y"},
	}
	assert.Len(t, ExcludeDotted(input), 1)
}

// =========================================================================
// PROPERTY TESTS
// =========================================================================
//
// Random inputs with a fixed seed: small star range so ties are common,
// names that sometimes contain a dot.

func randomRepos(r *rand.Rand, n int) []model.Repository {
	repos := make([]model.Repository, n)
	for i := range repos {
		name := fmt.Sprintf("repo-%d", i)
		if r.IntN(4) == 0 {
			name = fmt.Sprintf("repo.%d", i)
		}
		repos[i] = model.Repository{ID: int64(i), Name: name, StarCount: r.IntN(6)}
	}
	return repos
}

func TestCurate_Properties(t *testing.T) {
	r := rand.New(rand.NewPCG(42, 7))

	for round := 0; round < 200; round++ {
		input := randomRepos(r, r.IntN(51))
		before := names(input)

		got := Curate(input)

		// no dotted names survive
		for _, rp := range got {
			require.NotContains(t, rp.Name, ".", "round %d", round)
		}

		// every undotted input survives
		undotted := 0
		for _, rp := range input {
			if !strings.Contains(rp.Name, ".") {
				undotted++
			}
		}
		require.Len(t, got, undotted, "round %d", round)

		// non-increasing stars, ties in input order (IDs are input positions)
		for i := 1; i < len(got); i++ {
			prev, cur := got[i-1], got[i]
			require.GreaterOrEqual(t, prev.StarCount, cur.StarCount, "round %d", round)
			if prev.StarCount == cur.StarCount {
				require.Less(t, prev.ID, cur.ID, "round %d: tie order broken", round)
			}
		}

		// input untouched
		require.Equal(t, before, names(input), "round %d", round)
	}
}

func TestExcludeDotted_Idempotent(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))

	for round := 0; round < 100; round++ {
		input := randomRepos(r, r.IntN(51))
		once := ExcludeDotted(input)
		twice := ExcludeDotted(once)
		require.Equal(t, once, twice, "round %d", round)
	}
}

func TestSortByPopularity_ReturnsCopy(t *testing.T) {
	input := []model.Repository{repo("a", 1), repo("b", 2)}

	got := SortByPopularity(input)

	assert.Equal(t, []string{"b", "a"}, names(got))
	assert.Equal(t, []string{"a", "b"}, names(input))
}
