package directory

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestSuggestEmpty(t *testing.T) {
	require.Empty(t, Suggest(fixture(), ""))
	require.Empty(t, Suggest(fixture(), "   "))
}

func TestSuggestOrder(t *testing.T) {
	result := Suggest(fixture(), "go")
	expected := []Suggestion{
		{Type: SuggestName, Value: "Todd Gloria", Subtitle: "Mayor • California"},
		{Type: SuggestOffice, Value: "Governor", Subtitle: "3 holders"},
	}
	if diff := cmp.Diff(expected, result); diff != "" {
		t.Fatal(diff)
	}
}

func TestSuggestStates(t *testing.T) {
	result := Suggest(fixture(), "texas")
	require.Equal(t, []Suggestion{
		{Type: SuggestState, Value: "Texas", Subtitle: "4 officials"},
	}, result)

	// the at-large sentinel is never suggested
	for _, s := range Suggest(fixture(), "all") {
		require.NotEqual(t, AllStates, s.Value)
	}
}

func TestSuggestSingular(t *testing.T) {
	result := Suggest(fixture(), "vice")
	require.Contains(t, result, Suggestion{Type: SuggestOffice, Value: "Vice President", Subtitle: "1 holder"})
}

func TestSuggestCapsAndDedupes(t *testing.T) {
	var data []Official
	for i := 0; i < 30; i++ {
		data = append(data, Official{
			Name:   fmt.Sprintf("Mayor Person %d", i%15),
			Office: "Mayor",
			Level:  LevelLocal,
			State:  "Ohio",
		})
	}

	result := Suggest(data, "mayor")
	require.LessOrEqual(t, len(result), MaxSuggestions)
	require.Len(t, result, MaxSuggestions)

	type key struct {
		kind  SuggestionType
		value string
	}
	seen := map[key]bool{}
	for _, s := range result {
		k := key{s.Type, s.Value}
		require.False(t, seen[k], "duplicate suggestion %v", k)
		seen[k] = true
	}
	require.Equal(t, SuggestName, result[0].Type)
}
