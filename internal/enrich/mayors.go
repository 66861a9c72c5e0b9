package enrich

import (
	"context"
	"time"

	"knowyourreps-backend/internal/components/chrono"
	"knowyourreps-backend/internal/components/telemetry"
	"knowyourreps-backend/internal/directory"
	"knowyourreps-backend/internal/scrapers/wikidata"
)

const (
	DefaultState    = "California"
	DefaultRegionID = "Q99"
	DefaultPause    = 200 * time.Millisecond

	defaultParty = "Nonpartisan"
)

const (
	report_fetch_prefix = "fetch-mayors.prefix"
	report_fetch_done   = "fetch-mayors.done"
)

// MayorSource returns the mayors of one prefix batch, *wikidata.Client implements it.
//
// note: fault injection point
type MayorSource interface {
	Mayors(ctx context.Context, regionID, prefix string) ([]wikidata.Mayor, error)
}

// ToOfficial normalizes a wikidata row into a local official of state.
func ToOfficial(m wikidata.Mayor, state string) directory.Official {
	party := m.Party
	if party == "" {
		party = defaultParty
	}
	return directory.Official{
		Name:     m.Name,
		Office:   "Mayor",
		Party:    party,
		Level:    directory.LevelLocal,
		State:    state,
		City:     m.City,
		PhotoURL: m.Image,
	}
}

// FetchMayors queries every prefix batch in turn, pausing between them.
// A failed batch is reported and skipped. Mayors are keyed by city, a later
// row for the same city replaces the earlier one, and the result is sorted by
// city.
func FetchMayors(
	ctx context.Context,
	source MayorSource,
	clock chrono.API,
	tel telemetry.API,
	state, regionID string,
	pause time.Duration,
) ([]directory.Official, error) {
	byCity := make(map[string]directory.Official)
	for _, prefix := range wikidata.Prefixes {
		rows, err := source.Mayors(ctx, regionID, prefix)
		if err != nil {
			tel.ReportWarning(report_fetch_prefix, err, prefix)
		} else {
			tel.ReportDebug(report_fetch_prefix, prefix, len(rows))
			for _, row := range rows {
				byCity[row.City] = ToOfficial(row, state)
			}
		}

		err = clock.Sleep(ctx, pause)
		if err != nil {
			return nil, err
		}
	}

	mayors := make([]directory.Official, 0, len(byCity))
	for _, o := range byCity {
		mayors = append(mayors, o)
	}
	directory.SortByCity(mayors)

	tel.ReportDebug(report_fetch_done, state, len(mayors))
	return mayors, nil
}

// Merge drops the existing local officials of state and adds mayors in their
// place. The result is a new slice in dataset order.
func Merge(existing, mayors []directory.Official, state string) (merged []directory.Official, removed int) {
	merged = make([]directory.Official, 0, len(existing)+len(mayors))
	for _, o := range existing {
		if o.Level == directory.LevelLocal && o.State == state {
			removed++
			continue
		}
		merged = append(merged, o)
	}
	merged = append(merged, mayors...)
	directory.Sort(merged)
	return merged, removed
}
