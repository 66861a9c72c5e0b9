package statemap

import (
	"sort"
	"strings"

	"github.com/antzucaro/matchr"
)

// SelectedFill is the fill color of the selected state on the map.
const SelectedFill = "#3b82f6"

// minSimilarity is the Jaro-Winkler score a misspelled name must reach to resolve.
const minSimilarity = 0.92

var abbrToName = map[string]string{
	"AL": "Alabama", "AK": "Alaska", "AZ": "Arizona", "AR": "Arkansas", "CA": "California",
	"CO": "Colorado", "CT": "Connecticut", "DE": "Delaware", "FL": "Florida", "GA": "Georgia",
	"HI": "Hawaii", "ID": "Idaho", "IL": "Illinois", "IN": "Indiana", "IA": "Iowa",
	"KS": "Kansas", "KY": "Kentucky", "LA": "Louisiana", "ME": "Maine", "MD": "Maryland",
	"MA": "Massachusetts", "MI": "Michigan", "MN": "Minnesota", "MS": "Mississippi", "MO": "Missouri",
	"MT": "Montana", "NE": "Nebraska", "NV": "Nevada", "NH": "New Hampshire", "NJ": "New Jersey",
	"NM": "New Mexico", "NY": "New York", "NC": "North Carolina", "ND": "North Dakota", "OH": "Ohio",
	"OK": "Oklahoma", "OR": "Oregon", "PA": "Pennsylvania", "RI": "Rhode Island", "SC": "South Carolina",
	"SD": "South Dakota", "TN": "Tennessee", "TX": "Texas", "UT": "Utah", "VT": "Vermont",
	"VA": "Virginia", "WA": "Washington", "WV": "West Virginia", "WI": "Wisconsin", "WY": "Wyoming",
}

var nameToAbbr = func() map[string]string {
	out := make(map[string]string, len(abbrToName))
	for abbr, name := range abbrToName {
		out[strings.ToLower(name)] = abbr
	}
	return out
}()

type State struct {
	Abbr string `json:"abbr"`
	Name string `json:"name"`
}

// All lists the 50 states sorted by name.
func All() []State {
	out := make([]State, 0, len(abbrToName))
	for abbr, name := range abbrToName {
		out = append(out, State{Abbr: abbr, Name: name})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out
}

// Name returns the full name of a state abbreviation, case insensitive.
func Name(abbr string) (string, bool) {
	name, ok := abbrToName[strings.ToUpper(strings.TrimSpace(abbr))]
	return name, ok
}

// Abbreviation returns the abbreviation of a full state name, case insensitive.
func Abbreviation(name string) (string, bool) {
	abbr, ok := nameToAbbr[strings.ToLower(strings.TrimSpace(name))]
	return abbr, ok
}

// Resolve turns what the map or a user handed over (an abbreviation, a full
// name or a near miss of one) into the canonical state.
func Resolve(input string) (State, bool) {
	input = strings.TrimSpace(input)
	if input == "" {
		return State{}, false
	}
	if name, ok := Name(input); ok {
		return State{Abbr: strings.ToUpper(input), Name: name}, true
	}
	if abbr, ok := Abbreviation(input); ok {
		return State{Abbr: abbr, Name: abbrToName[abbr]}, true
	}

	lowered := strings.ToLower(input)
	var best State
	var bestScore float64
	for abbr, name := range abbrToName {
		score := matchr.JaroWinkler(lowered, strings.ToLower(name), false)
		if score > bestScore || (score == bestScore && name < best.Name) {
			best = State{Abbr: abbr, Name: name}
			bestScore = score
		}
	}
	if bestScore < minSimilarity {
		return State{}, false
	}
	return best, true
}

type Fill struct {
	Fill string `json:"fill"`
}

// Highlight is the per-state customization handed to the map widget, it
// paints the selected state.
func Highlight(selected string) map[string]Fill {
	out := map[string]Fill{}
	if abbr, ok := Abbreviation(selected); ok {
		out[abbr] = Fill{Fill: SelectedFill}
	}
	return out
}

// ByInitial groups the state names by first letter, as listed in the state dropdown.
func ByInitial() map[string][]string {
	out := map[string][]string{}
	for _, state := range All() {
		initial := state.Name[:1]
		out[initial] = append(out[initial], state.Name)
	}
	return out
}
