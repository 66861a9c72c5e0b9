package directory

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

type Level string

const (
	LevelFederal Level = "federal"
	LevelState   Level = "state"
	LevelLocal   Level = "local"
)

// AllStates is the state value of officials whose scope is the whole country.
const AllStates = "All"

// levelOrder is the display order of levels.
var levelOrder = []Level{LevelFederal, LevelState, LevelLocal}

// Rank returns the position of the level in display order, unknown levels rank -1.
func (l Level) Rank() int {
	for i, level := range levelOrder {
		if level == l {
			return i
		}
	}
	return -1
}

// Official is one elected officeholder of the dataset.
type Official struct {
	Name     string `json:"name"`
	Office   string `json:"office"`
	Party    string `json:"party"`
	Level    Level  `json:"level"`
	State    string `json:"state"`
	City     string `json:"city,omitempty"`
	PhotoURL string `json:"photoUrl,omitempty"`
}

// HasState reports whether the official belongs to a single, known state.
func (o Official) HasState() bool {
	return o.State != "" && o.State != AllStates
}

// Location is the "City, State" or "State" line shown under an official.
func (o Official) Location() string {
	if o.City != "" {
		return fmt.Sprintf("%s, %s", o.City, o.State)
	}
	return o.State
}

// Initials is the placeholder shown when no photo is available.
func Initials(name string) string {
	var out strings.Builder
	for _, part := range strings.Fields(name) {
		for _, r := range part {
			out.WriteRune(r)
			break
		}
	}
	return out.String()
}

// Decode reads a dataset (a json array of officials).
func Decode(r io.Reader) ([]Official, error) {
	var officials []Official
	err := json.NewDecoder(r).Decode(&officials)
	if err != nil {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}
	return officials, nil
}

// Encode renders the dataset the way it is checked in: 2 space indent and a trailing newline.
func Encode(officials []Official) ([]byte, error) {
	if officials == nil {
		officials = []Official{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	err := enc.Encode(officials)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ReadFile loads the dataset at path.
func ReadFile(path string) ([]Official, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}

// WriteFile overwrites the dataset at path.
func WriteFile(path string, officials []Official) error {
	contents, err := Encode(officials)
	if err != nil {
		return err
	}
	return os.WriteFile(path, contents, 0644)
}
