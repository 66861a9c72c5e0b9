package service

import (
	"context"

	"knowyourreps-backend/internal/assert"
	"knowyourreps-backend/internal/components/telemetry"
	"knowyourreps-backend/internal/directory"
	"knowyourreps-backend/internal/photos"
	"knowyourreps-backend/internal/scrapers/wikipedia"
)

const (
	report_wiki_lookup         = "wiki.lookup"
	report_officials_scheduled = "officials.scheduled-photos"
	report_photos_broken       = "photos.broken"
	report_http_encode         = "http.encode"
)

// BiographyAPI looks up the biography page of a title, *wikipedia.Client
// implements it.
//
// note: fault injection point
type BiographyAPI interface {
	Lookup(ctx context.Context, title string) (wikipedia.Page, error)
}

// Service serves the directory over http.
type Service struct {
	store     *directory.Store
	wiki      BiographyAPI
	resolver  *photos.Resolver
	scheduler *photos.Scheduler
	tel       telemetry.API
}

type serviceConfig struct {
	tel telemetry.API
}

type Option func(cfg *serviceConfig)

func WithCustomTelemetryAPI(tel telemetry.API) Option {
	return func(cfg *serviceConfig) {
		cfg.tel = tel
	}
}

func NewService(
	store *directory.Store,
	wiki BiographyAPI,
	resolver *photos.Resolver,
	scheduler *photos.Scheduler,
	options ...Option,
) Service {
	assert.NotNil(store, "store")
	assert.NotNil(wiki, "biography api")
	assert.NotNil(resolver, "photo resolver")
	assert.NotNil(scheduler, "photo scheduler")

	cfg := serviceConfig{tel: telemetry.SlogAPI{}}
	for _, opt := range options {
		opt(&cfg)
	}

	return Service{
		store:     store,
		wiki:      wiki,
		resolver:  resolver,
		scheduler: scheduler,
		tel:       telemetry.NewScopedAPI("service", cfg.tel),
	}
}
