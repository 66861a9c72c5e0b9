package directory

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func names(officials []Official) []string {
	out := []string{}
	for _, o := range officials {
		out = append(out, o.Name)
	}
	return out
}

// isSubsequence reports whether every element of sub appears in full, in order, without reuse.
func isSubsequence(sub, full []Official) bool {
	i := 0
	for _, o := range full {
		if i < len(sub) && sub[i] == o {
			i++
		}
	}
	return i == len(sub)
}

func TestFilter(t *testing.T) {
	data := fixture()

	table := []struct {
		name     string
		criteria Criteria
		expected []string
	}{
		{
			name:     "no filters",
			criteria: Criteria{Level: Any, Party: Any},
			expected: names(data),
		},
		{
			name:     "level",
			criteria: Criteria{Level: "state", Party: Any},
			expected: []string{"Greg Abbott", "Gavin Newsom", "Kathy Hochul"},
		},
		{
			name:     "state excludes at-large",
			criteria: Criteria{State: "Texas"},
			expected: []string{"Ted Cruz", "Greg Abbott", "Kirk Watson", "John Whitmire"},
		},
		{
			name:     "state is case insensitive and bidirectional",
			criteria: Criteria{State: "new york state"},
			expected: []string{"Kathy Hochul"},
		},
		{
			name:     "state substring",
			criteria: Criteria{State: "cali"},
			expected: []string{"Alex Padilla", "Gavin Newsom", "Karen Bass", "Todd Gloria", "Sam Liccardo"},
		},
		{
			name:     "blank state matches all",
			criteria: Criteria{State: "   "},
			expected: names(data),
		},
		{
			name:     "city",
			criteria: Criteria{City: "san"},
			expected: []string{"Todd Gloria", "Sam Liccardo"},
		},
		{
			name:     "party",
			criteria: Criteria{Party: "Republican"},
			expected: []string{"Ted Cruz", "Greg Abbott"},
		},
		{
			name:     "query on office",
			criteria: Criteria{Query: "senator"},
			expected: []string{"Ted Cruz", "Alex Padilla"},
		},
		{
			name:     "query on name",
			criteria: Criteria{Query: "KAR"},
			expected: []string{"Karen Bass"},
		},
		{
			name:     "all filters combined",
			criteria: Criteria{Level: "local", State: "texas", City: "hou", Party: "Democratic", Query: "mayor"},
			expected: []string{"John Whitmire"},
		},
		{
			name:     "nothing matches",
			criteria: Criteria{Party: "Green"},
			expected: []string{},
		},
	}

	for _, test := range table {
		t.Run(test.name, func(t *testing.T) {
			result := Filter(data, test.criteria)
			if diff := cmp.Diff(test.expected, names(result)); diff != "" {
				t.Fatal(diff)
			}
			require.True(t, isSubsequence(result, data))
		})
	}
}

func TestFilterNeverShowsAtLargeWithState(t *testing.T) {
	data := fixture()
	for _, state := range []string{"a", "All", "all", "l", "Texas", "x"} {
		for _, o := range Filter(data, Criteria{State: state}) {
			require.NotEqual(t, AllStates, o.State, "state filter %q", state)
		}
	}
}

func TestFilterTexasSemantics(t *testing.T) {
	data := fixture()
	result := Filter(data, Criteria{State: "Texas"})
	for _, o := range data {
		state := strings.ToLower(o.State)
		expected := o.State != AllStates && (strings.Contains(state, "texas") || strings.Contains("texas", state))
		require.Equal(t, expected, slicesContains(result, o), o.Name)
	}
}

func slicesContains(list []Official, o Official) bool {
	for _, item := range list {
		if item == o {
			return true
		}
	}
	return false
}

func TestFilterDoesNotMutate(t *testing.T) {
	data := fixture()
	before := fixture()
	Filter(data, Criteria{State: "Texas", Query: "a"})
	require.Equal(t, before, data)
}

func TestParties(t *testing.T) {
	data := append(fixture(), Official{Name: "Nobody"})
	require.Equal(t, []string{"Democratic", "Nonpartisan", "Republican"}, Parties(data))
}

func TestCountLabel(t *testing.T) {
	require.Equal(t, "1 representative", CountLabel(1))
	require.Equal(t, "0 representatives", CountLabel(0))
	require.Equal(t, "12 representatives", CountLabel(12))
}

func TestInitials(t *testing.T) {
	require.Equal(t, "JB", Initials("Joe Biden"))
	require.Equal(t, "AOC", Initials("Alexandria  Ocasio Cortez"))
	require.Equal(t, "ÉM", Initials("Émilie Martin"))
	require.Equal(t, "", Initials(""))
}
