package directory

import (
	"fmt"
	"strings"
)

// MaxSuggestions caps the autocomplete list.
const MaxSuggestions = 10

type SuggestionType string

const (
	SuggestName   SuggestionType = "name"
	SuggestOffice SuggestionType = "office"
	SuggestState  SuggestionType = "state"
)

type Suggestion struct {
	Type     SuggestionType `json:"type"`
	Value    string         `json:"value"`
	Subtitle string         `json:"subtitle"`
}

type tally struct {
	order  []string
	counts map[string]int
}

func (t *tally) add(value string) {
	if t.counts == nil {
		t.counts = map[string]int{}
	}
	if _, ok := t.counts[value]; !ok {
		t.order = append(t.order, value)
	}
	t.counts[value]++
}

// Suggest derives autocomplete suggestions for query: matching names first,
// then matching offices, then matching states. Suggestions are unique by
// (type, value) and capped at MaxSuggestions.
func Suggest(officials []Official, query string) []Suggestion {
	if strings.TrimSpace(query) == "" {
		return []Suggestion{}
	}
	needle := strings.ToLower(query)
	contains := func(s string) bool {
		return strings.Contains(strings.ToLower(s), needle)
	}

	var candidates []Suggestion
	var offices, states tally

	for _, o := range officials {
		if contains(o.Name) {
			candidates = append(candidates, Suggestion{
				Type:     SuggestName,
				Value:    o.Name,
				Subtitle: fmt.Sprintf("%s • %s", o.Office, o.State),
			})
		}
		if o.Office != "" {
			offices.add(o.Office)
		}
		if o.HasState() {
			states.add(o.State)
		}
	}
	for _, office := range offices.order {
		if contains(office) {
			candidates = append(candidates, Suggestion{
				Type:     SuggestOffice,
				Value:    office,
				Subtitle: pluralize(offices.counts[office], "holder", "holders"),
			})
		}
	}
	for _, state := range states.order {
		if contains(state) {
			candidates = append(candidates, Suggestion{
				Type:     SuggestState,
				Value:    state,
				Subtitle: pluralize(states.counts[state], "official", "officials"),
			})
		}
	}

	type key struct {
		kind  SuggestionType
		value string
	}
	seen := map[key]struct{}{}
	out := make([]Suggestion, 0, MaxSuggestions)
	for _, s := range candidates {
		k := key{kind: s.Type, value: s.Value}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, s)
		if len(out) == MaxSuggestions {
			break
		}
	}
	return out
}
