// Package browse holds the filter state of the directory page and the
// reducers for every event the page reacts to. Reducers never mutate their
// receiver, they return the next state.
package browse

import (
	"time"

	"knowyourreps-backend/internal/directory"
	"knowyourreps-backend/internal/statemap"
)

// BlurGrace is how long the suggestion list stays up after the search box
// loses focus, so a click on a suggestion still lands.
const BlurGrace = 150 * time.Millisecond

type State struct {
	Level string `json:"level"`
	State string `json:"state"`
	City  string `json:"city"`
	Party string `json:"party"`
	Query string `json:"query"`

	HoveredState string `json:"hoveredState,omitempty"`

	Suggestions        []directory.Suggestion `json:"suggestions"`
	Cursor             int                    `json:"cursor"`
	SuggestionsVisible bool                   `json:"suggestionsVisible"`

	StateDropdownOpen bool `json:"stateDropdownOpen"`
	// ScrollToResults asks the page to bring the results into view.
	ScrollToResults bool `json:"scrollToResults"`
}

func New() State {
	return State{
		Level:       directory.Any,
		Party:       directory.Any,
		Suggestions: []directory.Suggestion{},
		Cursor:      -1,
	}
}

// Criteria is the filter the visible list is computed with.
func (s State) Criteria() directory.Criteria {
	return directory.Criteria{
		Level: s.Level,
		State: s.State,
		City:  s.City,
		Party: s.Party,
		Query: s.Query,
	}
}

// Visible computes the officials currently shown.
func (s State) Visible(officials []directory.Official) []directory.Official {
	return directory.Filter(officials, s.Criteria())
}

func (s State) SetLevel(level string) State {
	s.Level = level
	return s
}

func (s State) SetParty(party string) State {
	s.Party = party
	return s
}

func (s State) SetCity(city string) State {
	s.City = city
	return s
}

func (s State) SetState(state string) State {
	s.State = state
	return s
}

// SetQuery updates the free text search and recomputes the suggestions.
func (s State) SetQuery(officials []directory.Official, query string) State {
	s.Query = query
	s.Suggestions = directory.Suggest(officials, query)
	s.Cursor = -1
	s.SuggestionsVisible = len(s.Suggestions) > 0
	return s
}

func (s State) MoveDown() State {
	if s.Cursor < len(s.Suggestions)-1 {
		s.Cursor++
	}
	return s
}

func (s State) MoveUp() State {
	if s.Cursor > -1 {
		s.Cursor--
	}
	return s
}

// Enter activates the suggestion under the cursor, if any.
func (s State) Enter() State {
	if !s.SuggestionsVisible || s.Cursor < 0 || s.Cursor >= len(s.Suggestions) {
		return s
	}
	return s.SelectSuggestion(s.Suggestions[s.Cursor])
}

func (s State) Escape() State {
	return s.HideSuggestions()
}

// Blur returns how long to wait before applying HideSuggestions.
func (s State) Blur() time.Duration {
	return BlurGrace
}

func (s State) HideSuggestions() State {
	s.SuggestionsVisible = false
	s.Cursor = -1
	return s
}

// SelectSuggestion applies a picked suggestion: names and offices become the
// search text, a state becomes the state filter and clears the search text.
func (s State) SelectSuggestion(suggestion directory.Suggestion) State {
	switch suggestion.Type {
	case directory.SuggestState:
		s.State = suggestion.Value
		s.Query = ""
	default:
		s.Query = suggestion.Value
	}
	s.Suggestions = []directory.Suggestion{}
	return s.HideSuggestions()
}

// HoverState tracks the state under the pointer, "" when it leaves the map.
func (s State) HoverState(name string) State {
	s.HoveredState = name
	return s
}

// ClickState selects a state from the map, name may be an abbreviation.
// Unknown states are ignored.
func (s State) ClickState(name string) State {
	resolved, ok := statemap.Resolve(name)
	if !ok {
		return s
	}
	s.State = resolved.Name
	s.StateDropdownOpen = false
	s.ScrollToResults = true
	return s
}

// ToggleState is ClickState, except clicking the selected state clears it.
func (s State) ToggleState(name string) State {
	resolved, ok := statemap.Resolve(name)
	if ok && resolved.Name == s.State {
		return s.ClearState()
	}
	return s.ClickState(name)
}

func (s State) ClearState() State {
	s.State = ""
	s.ScrollToResults = false
	return s
}

func (s State) ToggleStateDropdown() State {
	s.StateDropdownOpen = !s.StateDropdownOpen
	return s
}

// Highlight is the map customization for the current selection.
func (s State) Highlight() map[string]statemap.Fill {
	return statemap.Highlight(s.State)
}
