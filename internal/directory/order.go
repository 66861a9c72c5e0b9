package directory

import (
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Sort orders officials by level (federal, state, local), then state, then
// city, then name. State and city only take part when both sides have one.
func Sort(officials []Official) {
	collator := collate.New(language.English)

	slices.SortStableFunc(officials, func(a, b Official) int {
		if diff := a.Level.Rank() - b.Level.Rank(); diff != 0 {
			return diff
		}
		if a.State != "" && b.State != "" {
			if c := collator.CompareString(a.State, b.State); c != 0 {
				return c
			}
		}
		if a.City != "" && b.City != "" {
			if c := collator.CompareString(a.City, b.City); c != 0 {
				return c
			}
		}
		return collator.CompareString(a.Name, b.Name)
	})
}

// SortByCity orders officials by city name.
func SortByCity(officials []Official) {
	collator := collate.New(language.English)
	slices.SortStableFunc(officials, func(a, b Official) int {
		return collator.CompareString(a.City, b.City)
	})
}
