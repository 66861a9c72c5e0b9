package photos

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"

	"knowyourreps-backend/internal/components/chrono"
	"knowyourreps-backend/internal/components/telemetry"
	"knowyourreps-backend/internal/directory"
	"knowyourreps-backend/internal/scrapers/wikipedia"
)

const DefaultVariantDelay = 200 * time.Millisecond

const (
	report_resolve_variant = "resolve.variant"
	report_resolve_miss    = "resolve.miss"
	report_resolve_hit     = "resolve.hit"
)

var meter = otel.Meter("knowyourreps.photos")

var hitCounter, _ = meter.Int64Counter(
	"photos.resolve_hits",
	metric.WithDescription("Photo resolutions that found an image."),
)
var missCounter, _ = meter.Int64Counter(
	"photos.resolve_misses",
	metric.WithDescription("Photo resolutions that exhausted every title variant."),
)

// Lookup fetches a biography page by title, *wikipedia.Client implements it.
// Refresh must skip any page cache so a forced resolution sees fresh pages.
//
// note: fault injection point
type Lookup interface {
	Lookup(ctx context.Context, title string) (wikipedia.Page, error)
	Refresh(ctx context.Context, title string) (wikipedia.Page, error)
}

type cached struct {
	url string
	// replacesSupplied is set when the url was resolved after the official's
	// own photoUrl failed to load.
	replacesSupplied bool
}

// Resolver finds portraits for officials by trying a list of page titles
// against the biography lookup. It owns the photo cache, the failure set and
// the in-flight set.
type Resolver struct {
	lookup       Lookup
	clock        chrono.API
	tel          telemetry.API
	variantDelay time.Duration

	mutex    sync.Mutex
	cache    map[string]cached
	failed   map[string]struct{}
	inflight map[string]int
}

func NewResolver(lookup Lookup, clock chrono.API, tel telemetry.API, variantDelay time.Duration) *Resolver {
	if clock == nil {
		clock = chrono.StandardImpl{}
	}
	return &Resolver{
		lookup:       lookup,
		clock:        clock,
		tel:          telemetry.NewScopedAPI("photos", tel),
		variantDelay: variantDelay,
		cache:        make(map[string]cached),
		failed:       make(map[string]struct{}),
		inflight:     make(map[string]int),
	}
}

// Variants returns the page titles tried for an official, most likely first.
// Titles identical to an earlier one are skipped.
func Variants(official directory.Official) []string {
	name := official.Name
	office := official.Office
	state := ""
	if official.HasState() {
		state = official.State
	}

	candidates := []string{name}
	if office != "" {
		candidates = append(candidates, fmt.Sprintf("%s (%s)", name, office))
	}
	candidates = append(
		candidates,
		fmt.Sprintf("%s (politician)", name),
		fmt.Sprintf("%s (American politician)", name),
	)
	if state != "" && office != "" {
		candidates = append(
			candidates,
			fmt.Sprintf("%s (%s %s)", name, state, office),
			fmt.Sprintf("%s (%s, %s)", name, office, state),
		)
	}
	if official.City != "" {
		candidates = append(
			candidates,
			fmt.Sprintf("%s (mayor)", name),
			fmt.Sprintf("%s (%s mayor)", name, official.City),
		)
	}
	if state != "" {
		candidates = append(candidates, fmt.Sprintf("%s (%s)", name, state))
	}

	seen := make(map[string]struct{}, len(candidates))
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}

// begin registers a resolution of name, it returns false when the resolution
// should be skipped.
func (r *Resolver) begin(name string, force bool) (string, bool) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if !force {
		if entry, ok := r.cache[name]; ok {
			return entry.url, false
		}
		if r.inflight[name] > 0 {
			return "", false
		}
	}
	r.inflight[name]++
	return "", true
}

func (r *Resolver) end(name string) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.inflight[name]--
	if r.inflight[name] <= 0 {
		delete(r.inflight, name)
	}
}

func (r *Resolver) store(name, url string, force bool) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	_, wasFailed := r.failed[name]
	r.cache[name] = cached{
		url:              url,
		replacesSupplied: force || wasFailed || r.cache[name].replacesSupplied,
	}
	delete(r.failed, name)
}

// Resolve tries each title variant of the official in order and caches the
// first image found. Lookup errors are soft misses and never returned.
//
// A forced resolution refreshes every page it reads. Unless force is set, it does nothing when the official already has a cached
// photo or a resolution in flight. It returns the cached url and whether one
// is known after the call.
func (r *Resolver) Resolve(ctx context.Context, official directory.Official, force bool) (string, bool) {
	name := official.Name
	existing, proceed := r.begin(name, force)
	if !proceed {
		return existing, existing != ""
	}
	defer r.end(name)

	for i, variant := range Variants(official) {
		if i > 0 {
			err := r.clock.Sleep(ctx, r.variantDelay)
			if err != nil {
				return "", false
			}
		}

		fetch := r.lookup.Lookup
		if force {
			fetch = r.lookup.Refresh
		}
		page, err := fetch(ctx, variant)
		if err != nil {
			r.tel.ReportWarning(report_resolve_variant, err, variant)
			continue
		}
		if !page.HasImage() {
			continue
		}

		r.store(name, *page.Image, force)
		hitCounter.Add(ctx, 1)
		r.tel.ReportDebug(report_resolve_hit, name, variant)
		return *page.Image, true
	}

	missCounter.Add(ctx, 1)
	r.tel.ReportDebug(report_resolve_miss, name)
	return "", false
}

// MarkBroken records that the displayed image of name failed to load and
// drops any cached url for it.
func (r *Resolver) MarkBroken(name string) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.failed[name] = struct{}{}
	delete(r.cache, name)
}

// Remember seeds the cache with an image found elsewhere, it never replaces
// an existing entry or a photo marked broken.
func (r *Resolver) Remember(name, url string) {
	if url == "" {
		return
	}
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, ok := r.cache[name]; ok {
		return
	}
	if _, failed := r.failed[name]; failed {
		return
	}
	r.cache[name] = cached{url: url}
}

func (r *Resolver) Cached(name string) (string, bool) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	entry, ok := r.cache[name]
	return entry.url, ok
}

// Pending reports whether a resolution of name is in flight.
func (r *Resolver) Pending(name string) bool {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	return r.inflight[name] > 0
}

// Failed reports whether the last displayed image of name failed to load and
// no replacement has been found yet.
func (r *Resolver) Failed(name string) bool {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	_, ok := r.failed[name]
	return ok
}

// NeedsLookup reports whether the official has no supplied photo, no cached
// photo and no resolution in flight.
func (r *Resolver) NeedsLookup(official directory.Official) bool {
	if official.PhotoURL != "" {
		return false
	}
	r.mutex.Lock()
	defer r.mutex.Unlock()
	_, hasCached := r.cache[official.Name]
	return !hasCached && r.inflight[official.Name] == 0
}

// PhotoFor returns the image that should be displayed for the official, an
// empty string means initials should be shown instead.
func (r *Resolver) PhotoFor(official directory.Official) string {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	entry, hasCached := r.cache[official.Name]
	if _, failed := r.failed[official.Name]; failed {
		return entry.url
	}
	if hasCached && entry.replacesSupplied {
		return entry.url
	}
	if official.PhotoURL != "" {
		return official.PhotoURL
	}
	return entry.url
}
