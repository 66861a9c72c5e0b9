package statemap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAll(t *testing.T) {
	states := All()
	require.Len(t, states, 50)
	require.Equal(t, State{Abbr: "AL", Name: "Alabama"}, states[0])
	require.Equal(t, State{Abbr: "WY", Name: "Wyoming"}, states[49])
}

func TestResolve(t *testing.T) {
	table := []struct {
		input    string
		expected State
		ok       bool
	}{
		{input: "CA", expected: State{Abbr: "CA", Name: "California"}, ok: true},
		{input: "tx", expected: State{Abbr: "TX", Name: "Texas"}, ok: true},
		{input: "new york", expected: State{Abbr: "NY", Name: "New York"}, ok: true},
		{input: " West Virginia ", expected: State{Abbr: "WV", Name: "West Virginia"}, ok: true},
		{input: "Califronia", expected: State{Abbr: "CA", Name: "California"}, ok: true},
		{input: "Massachusets", expected: State{Abbr: "MA", Name: "Massachusetts"}, ok: true},
		{input: "ZZ", ok: false},
		{input: "Puerto Rico", ok: false},
		{input: "", ok: false},
	}

	for _, test := range table {
		result, ok := Resolve(test.input)
		require.Equal(t, test.ok, ok, test.input)
		require.Equal(t, test.expected, result, test.input)
	}
}

func TestHighlight(t *testing.T) {
	require.Equal(t, map[string]Fill{"CA": {Fill: SelectedFill}}, Highlight("California"))
	require.Empty(t, Highlight(""))
	require.Empty(t, Highlight("Narnia"))
}

func TestByInitial(t *testing.T) {
	groups := ByInitial()
	require.Equal(t, []string{"Tennessee", "Texas"}, groups["T"])
	require.Equal(t, []string{"Nebraska", "Nevada", "New Hampshire", "New Jersey", "New Mexico", "New York", "North Carolina", "North Dakota"}, groups["N"])
	_, ok := groups["B"]
	require.False(t, ok)
}
