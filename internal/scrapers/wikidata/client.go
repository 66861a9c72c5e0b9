package wikidata

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"knowyourreps-backend/internal/components/telemetry"
)

const (
	DefaultEndpoint  = "https://query.wikidata.org/sparql"
	DefaultUserAgent = "KnowYourRepsApp/1.0 (https://github.com/knowyourreps/knowyourreps-backend)"
)

const (
	report_client_query = "client.query"
)

// UpstreamError is returned when the sparql endpoint answers with a non 2xx status.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("failed to query wikidata (status %d): %s", e.Status, e.Body)
}

// Value is a single cell of a sparql result row.
type Value struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// Binding is a sparql result row keyed by variable name.
type Binding map[string]Value

// Get returns the value bound to name, or an empty string when it is unbound.
func (b Binding) Get(name string) string {
	return b[name].Value
}

type sparqlResults struct {
	Results struct {
		Bindings []Binding `json:"bindings"`
	} `json:"results"`
}

type Options struct {
	Endpoint  string
	UserAgent string
	Timeout   time.Duration
	Output    telemetry.ExchangeOutput
}

type Client struct {
	http     *resty.Client
	endpoint string
	tel      telemetry.API
}

func NewClient(opts Options, tel telemetry.API) *Client {
	if opts.Endpoint == "" {
		opts.Endpoint = DefaultEndpoint
	}
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}
	if opts.Timeout == 0 {
		opts.Timeout = time.Minute
	}
	tel = telemetry.NewScopedAPI("wikidata", tel)

	httpClient := resty.New()
	httpClient.SetTimeout(opts.Timeout)
	httpClient.SetHeader("User-Agent", opts.UserAgent)
	httpClient.SetHeader("Accept", "application/sparql-results+json")
	telemetry.InstrumentResty(httpClient, "wikidata", tel, opts.Output)

	return &Client{
		http:     httpClient,
		endpoint: opts.Endpoint,
		tel:      tel,
	}
}

// Query posts a sparql query and returns its result rows.
func (c *Client) Query(ctx context.Context, sparql string) ([]Binding, error) {
	res, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/sparql-query").
		SetBody(sparql).
		Post(c.endpoint)
	if err != nil {
		return nil, fmt.Errorf("post query: %w", err)
	}
	if res.StatusCode() < 200 || res.StatusCode() >= 300 {
		return nil, &UpstreamError{Status: res.StatusCode(), Body: res.String()}
	}

	var parsed sparqlResults
	err = json.Unmarshal(res.Body(), &parsed)
	if err != nil {
		c.tel.ReportBroken(report_client_query, fmt.Errorf("unmarshal json: %w", err))
		return nil, fmt.Errorf("unmarshal json: %w", err)
	}
	return parsed.Results.Bindings, nil
}
