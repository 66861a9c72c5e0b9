package directory

import (
	"fmt"
	"sort"
	"strings"
)

// Any is the wildcard value of the level and party filters.
const Any = "all"

// Criteria are the five independent filters of the directory view.
type Criteria struct {
	Level string
	State string
	City  string
	Party string
	Query string
}

func matchesExact(filter, value string) bool {
	return filter == "" || filter == Any || filter == value
}

func matchesState(filter string, o Official) bool {
	if strings.TrimSpace(filter) == "" {
		return true
	}
	// federal at-large officials disappear once a state is picked
	if o.State == AllStates {
		return false
	}
	query := strings.ToLower(filter)
	state := strings.ToLower(o.State)
	return strings.Contains(state, query) || strings.Contains(query, state)
}

func matchesCity(filter string, o Official) bool {
	if strings.TrimSpace(filter) == "" {
		return true
	}
	if o.City == "" {
		return false
	}
	return strings.Contains(strings.ToLower(o.City), strings.ToLower(filter))
}

func matchesQuery(filter string, o Official) bool {
	if strings.TrimSpace(filter) == "" {
		return true
	}
	query := strings.ToLower(filter)
	return strings.Contains(strings.ToLower(o.Name), query) ||
		strings.Contains(strings.ToLower(o.Office), query)
}

// Matches reports whether a single official passes every filter.
func (c Criteria) Matches(o Official) bool {
	return matchesExact(c.Level, string(o.Level)) &&
		matchesState(c.State, o) &&
		matchesCity(c.City, o) &&
		matchesExact(c.Party, o.Party) &&
		matchesQuery(c.Query, o)
}

// Filter returns the officials matching c, in their original order.
// The input is never modified.
func Filter(officials []Official, c Criteria) []Official {
	out := []Official{}
	for _, o := range officials {
		if c.Matches(o) {
			out = append(out, o)
		}
	}
	return out
}

// Parties lists the distinct non-empty parties, sorted.
func Parties(officials []Official) []string {
	seen := map[string]struct{}{}
	out := []string{}
	for _, o := range officials {
		if o.Party == "" {
			continue
		}
		if _, ok := seen[o.Party]; ok {
			continue
		}
		seen[o.Party] = struct{}{}
		out = append(out, o.Party)
	}
	sort.Strings(out)
	return out
}

func pluralize(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %s", n, plural)
}

// CountLabel is the "Showing N representatives" phrase.
func CountLabel(n int) string {
	return pluralize(n, "representative", "representatives")
}
