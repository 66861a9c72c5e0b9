package wikidata

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

// OtherPrefix selects every city whose label does not start with a latin letter.
const OtherPrefix = "other"

// Prefixes splits the mayors query into small batches the public endpoint
// answers before timing out.
var Prefixes = func() []string {
	out := make([]string, 0, 27)
	for c := 'a'; c <= 'z'; c++ {
		out = append(out, string(c))
	}
	return append(out, OtherPrefix)
}()

var entityIDPattern = regexp.MustCompile(`^Q[0-9]+$`)

// Mayor is a city together with its current head of government.
type Mayor struct {
	City  string
	Name  string
	Party string
	Image string
}

// FilterClause restricts the mayors query to city labels starting with prefix.
func FilterClause(prefix string) string {
	if prefix == OtherPrefix {
		return `FILTER(!REGEX(LCASE(?cityLabel), "^[a-z]"))`
	}
	return fmt.Sprintf(`FILTER(STRSTARTS(LCASE(?cityLabel), "%s"))`, strings.ToLower(prefix))
}

// MayorsQuery builds the sparql query for the cities located (directly or
// one level down) in the region `regionID` whose label matches prefix.
func MayorsQuery(regionID, prefix string) (string, error) {
	if !entityIDPattern.MatchString(regionID) {
		return "", fmt.Errorf("invalid wikidata entity id %q", regionID)
	}
	if prefix != OtherPrefix && (len(prefix) != 1 || prefix[0] < 'a' || prefix[0] > 'z') {
		return "", fmt.Errorf("invalid prefix %q", prefix)
	}

	return fmt.Sprintf(`
SELECT DISTINCT ?city ?cityLabel ?mayor ?mayorLabel ?partyLabel ?image WHERE {
  ?city wdt:P31/wdt:P279* wd:Q515;
        wdt:P17 wd:Q30;
        wdt:P131 ?admin;
        wdt:P6 ?mayor.

  FILTER (?admin = wd:%[1]s || EXISTS { ?admin wdt:P131 wd:%[1]s })

  OPTIONAL { ?mayor wdt:P102 ?party. }
  OPTIONAL { ?mayor wdt:P18 ?image. }

  SERVICE wikibase:label { bd:serviceParam wikibase:language "en". }

  %[2]s
}
`, regionID, FilterClause(prefix)), nil
}

// Mayors returns the mayors of one prefix batch, rows missing a city or a
// mayor label are skipped.
func (c *Client) Mayors(ctx context.Context, regionID, prefix string) ([]Mayor, error) {
	query, err := MayorsQuery(regionID, prefix)
	if err != nil {
		return nil, err
	}
	bindings, err := c.Query(ctx, query)
	if err != nil {
		return nil, err
	}

	out := make([]Mayor, 0, len(bindings))
	for _, b := range bindings {
		city := b.Get("cityLabel")
		name := b.Get("mayorLabel")
		if city == "" || name == "" {
			continue
		}
		out = append(out, Mayor{
			City:  city,
			Name:  name,
			Party: b.Get("partyLabel"),
			Image: b.Get("image"),
		})
	}
	return out, nil
}
