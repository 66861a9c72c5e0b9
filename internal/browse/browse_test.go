package browse

import (
	"testing"

	"github.com/stretchr/testify/require"

	"knowyourreps-backend/internal/directory"
)

func officials() []directory.Official {
	return []directory.Official{
		{Name: "Greg Abbott", Office: "Governor", Party: "Republican", Level: directory.LevelState, State: "Texas"},
		{Name: "Gavin Newsom", Office: "Governor", Party: "Democratic", Level: directory.LevelState, State: "California"},
		{Name: "Karen Bass", Office: "Mayor", Party: "Democratic", Level: directory.LevelLocal, State: "California", City: "Los Angeles"},
		{Name: "Joe Biden", Office: "President", Party: "Democratic", Level: directory.LevelFederal, State: directory.AllStates},
	}
}

func TestKeyboardNavigation(t *testing.T) {
	data := officials()
	s := New().SetQuery(data, "ga")
	require.True(t, s.SuggestionsVisible)
	require.Equal(t, -1, s.Cursor)
	require.Len(t, s.Suggestions, 1)

	s = s.MoveUp()
	require.Equal(t, -1, s.Cursor)
	s = s.MoveDown().MoveDown().MoveDown()
	require.Equal(t, 0, s.Cursor)

	s = s.Enter()
	require.Equal(t, "Gavin Newsom", s.Query)
	require.False(t, s.SuggestionsVisible)
	require.Equal(t, -1, s.Cursor)
}

func TestEnterWithoutCursor(t *testing.T) {
	s := New().SetQuery(officials(), "gov")
	next := s.Enter()
	require.Equal(t, s, next)
}

func TestSelectStateSuggestion(t *testing.T) {
	s := New().SetQuery(officials(), "calif")
	require.Equal(t, directory.SuggestState, s.Suggestions[0].Type)

	s = s.MoveDown().Enter()
	require.Equal(t, "California", s.State)
	require.Equal(t, "", s.Query)
	require.Len(t, s.Visible(officials()), 2)
}

func TestEscapeAndBlur(t *testing.T) {
	s := New().SetQuery(officials(), "g")
	require.True(t, s.SuggestionsVisible)
	require.False(t, s.Escape().SuggestionsVisible)
	require.Equal(t, BlurGrace, s.Blur())

	s = s.SetQuery(officials(), "")
	require.False(t, s.SuggestionsVisible)
	require.Empty(t, s.Suggestions)
}

func TestMapSelection(t *testing.T) {
	s := New().ToggleStateDropdown().HoverState("Texas")
	require.Equal(t, "Texas", s.HoveredState)

	s = s.ClickState("TX")
	require.Equal(t, "Texas", s.State)
	require.False(t, s.StateDropdownOpen)
	require.True(t, s.ScrollToResults)
	require.Equal(t, "#3b82f6", s.Highlight()["TX"].Fill)

	require.Equal(t, s, s.ClickState("XX"))

	s = s.ToggleState("Texas")
	require.Equal(t, "", s.State)
	s = s.ToggleState("ca")
	require.Equal(t, "California", s.State)

	s = s.HoverState("")
	require.Equal(t, "", s.HoveredState)
}

func TestCriteria(t *testing.T) {
	s := New().SetLevel("local").SetParty("Democratic").SetCity("los").SetState("cal")
	require.Equal(t, directory.Criteria{
		Level: "local",
		State: "cal",
		City:  "los",
		Party: "Democratic",
	}, s.Criteria())

	visible := s.Visible(officials())
	require.Len(t, visible, 1)
	require.Equal(t, "Karen Bass", visible[0].Name)
}
