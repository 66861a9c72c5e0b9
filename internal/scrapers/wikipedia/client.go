package wikipedia

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"knowyourreps-backend/internal/components/telemetry"
)

const (
	DefaultBaseURL   = "https://en.wikipedia.org/w/api.php"
	DefaultUserAgent = "KnowYourRepsApp/1.0 (https://github.com/knowyourreps/knowyourreps-backend)"

	articleBaseURL = "https://en.wikipedia.org/?curid="
)

const (
	report_client_lookup = "client.lookup"
)

var (
	ErrMissingTitle = errors.New("missing title")
	ErrNotFound     = errors.New("page not found")
)

// UpstreamError is returned when wikipedia answers with a non 2xx status.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("wikipedia upstream error: status %d", e.Status)
}

// Page is the short biography shown for an official.
type Page struct {
	Title   string  `json:"title"`
	Summary string  `json:"summary"`
	Image   *string `json:"image"`
	URL     string  `json:"url"`
}

// HasImage reports whether the page carries a thumbnail.
func (p Page) HasImage() bool {
	return p.Image != nil && *p.Image != ""
}

type Options struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
	// RequestsPerSecond bounds the rate of outgoing requests, 0 disables the limit.
	RequestsPerSecond float64
	CacheSize         int
	CacheTTL          time.Duration
	// Output receives full request/response dumps when non nil.
	Output telemetry.ExchangeOutput
}

func (o Options) withDefaults() Options {
	if o.BaseURL == "" {
		o.BaseURL = DefaultBaseURL
	}
	if o.UserAgent == "" {
		o.UserAgent = DefaultUserAgent
	}
	if o.Timeout == 0 {
		o.Timeout = 10 * time.Second
	}
	if o.CacheSize == 0 {
		o.CacheSize = 1024
	}
	if o.CacheTTL == 0 {
		o.CacheTTL = 30 * time.Minute
	}
	return o
}

// Client looks up pages through the MediaWiki query api.
type Client struct {
	http    *resty.Client
	baseURL string
	cache   *expirable.LRU[string, Page]
	tel     telemetry.API
}

func NewClient(opts Options, tel telemetry.API) *Client {
	opts = opts.withDefaults()
	tel = telemetry.NewScopedAPI("wikipedia", tel)

	httpClient := resty.New()
	httpClient.SetTimeout(opts.Timeout)
	httpClient.SetHeader("User-Agent", opts.UserAgent)

	if opts.RequestsPerSecond > 0 {
		burst := int(opts.RequestsPerSecond)
		if burst < 1 {
			burst = 1
		}
		limiter := rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), burst)
		httpClient.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
			return limiter.Wait(req.Context())
		})
	}
	telemetry.InstrumentResty(httpClient, "wikipedia", tel, opts.Output)

	return &Client{
		http:    httpClient,
		baseURL: opts.BaseURL,
		cache:   expirable.NewLRU[string, Page](opts.CacheSize, nil, opts.CacheTTL),
		tel:     tel,
	}
}

type queryResponse struct {
	Query struct {
		Pages map[string]struct {
			PageID    int64  `json:"pageid"`
			Title     string `json:"title"`
			Extract   string `json:"extract"`
			Missing   any    `json:"missing"`
			Invalid   any    `json:"invalid"`
			Thumbnail *struct {
				Source string `json:"source"`
			} `json:"thumbnail"`
		} `json:"pages"`
	} `json:"query"`
}

// Lookup fetches the intro, thumbnail and canonical url of the page titled `title`.
//
// It returns ErrMissingTitle for a blank title, ErrNotFound when no such page
// exists and *UpstreamError when wikipedia answers with a non 2xx status.
func (c *Client) Lookup(ctx context.Context, title string) (Page, error) {
	if strings.TrimSpace(title) == "" {
		return Page{}, ErrMissingTitle
	}
	if cached, hit := c.cache.Get(title); hit {
		return cached, nil
	}
	return c.fetch(ctx, title)
}

// Refresh is Lookup without the page cache: it always asks wikipedia and
// replaces whatever was cached for `title`.
func (c *Client) Refresh(ctx context.Context, title string) (Page, error) {
	if strings.TrimSpace(title) == "" {
		return Page{}, ErrMissingTitle
	}
	c.cache.Remove(title)
	return c.fetch(ctx, title)
}

func (c *Client) fetch(ctx context.Context, title string) (Page, error) {
	res, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"action":      "query",
			"format":      "json",
			"prop":        "pageimages|extracts",
			"exintro":     "1",
			"explaintext": "1",
			"redirects":   "1",
			"piprop":      "thumbnail",
			"pithumbsize": "300",
			"titles":      title,
		}).
		Get(c.baseURL)
	if err != nil {
		return Page{}, fmt.Errorf("fetch: %w", err)
	}
	if res.StatusCode() < 200 || res.StatusCode() >= 300 {
		return Page{}, &UpstreamError{Status: res.StatusCode(), Body: res.String()}
	}

	var parsed queryResponse
	err = json.Unmarshal(res.Body(), &parsed)
	if err != nil {
		c.tel.ReportBroken(report_client_lookup, fmt.Errorf("unmarshal json: %w", err), title)
		return Page{}, fmt.Errorf("unmarshal json: %w", err)
	}

	keys := make([]string, 0, len(parsed.Query.Pages))
	for key := range parsed.Query.Pages {
		keys = append(keys, key)
	}
	if len(keys) == 0 {
		return Page{}, ErrNotFound
	}
	sort.Strings(keys)

	raw := parsed.Query.Pages[keys[0]]
	if raw.Missing != nil || raw.Invalid != nil {
		return Page{}, ErrNotFound
	}

	page := Page{
		Title:   raw.Title,
		Summary: raw.Extract,
		URL:     fmt.Sprintf("%s%d", articleBaseURL, raw.PageID),
	}
	if raw.Thumbnail != nil && raw.Thumbnail.Source != "" {
		image := raw.Thumbnail.Source
		page.Image = &image
	}

	c.cache.Add(title, page)
	return page, nil
}
