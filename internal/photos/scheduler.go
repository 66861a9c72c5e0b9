package photos

import (
	"context"
	"sync"
	"time"

	"knowyourreps-backend/internal/components/chrono"
	"knowyourreps-backend/internal/components/telemetry"
	"knowyourreps-backend/internal/directory"
)

const (
	DefaultLoadStagger    = 200 * time.Millisecond
	DefaultVisibleStagger = 50 * time.Millisecond
)

const (
	report_scheduler_pass = "scheduler.pass"
)

type SchedulerOptions struct {
	// LoadStagger spaces out the lookups of the startup passes.
	LoadStagger time.Duration
	// VisibleStagger spaces out the lookups of a newly visible result set.
	VisibleStagger time.Duration
}

// Scheduler decides when officials get resolved. Every lookup it launches
// runs in its own goroutine on a context detached from the caller, so a
// started resolution is never cut short by a finished request.
type Scheduler struct {
	ctx      context.Context
	resolver *Resolver
	clock    chrono.API
	tel      telemetry.API
	opts     SchedulerOptions

	wg sync.WaitGroup
}

// NewScheduler creates a scheduler that stops launching new lookups once ctx
// is done.
func NewScheduler(ctx context.Context, resolver *Resolver, clock chrono.API, tel telemetry.API, opts SchedulerOptions) *Scheduler {
	if clock == nil {
		clock = chrono.StandardImpl{}
	}
	return &Scheduler{
		ctx:      ctx,
		resolver: resolver,
		clock:    clock,
		tel:      telemetry.NewScopedAPI("photos", tel),
		opts:     opts,
	}
}

func (s *Scheduler) launch(official directory.Official, delay time.Duration, force bool, done *sync.WaitGroup) {
	s.wg.Add(1)
	if done != nil {
		done.Add(1)
	}
	go func() {
		defer s.wg.Done()
		if done != nil {
			defer done.Done()
		}

		err := s.clock.Sleep(s.ctx, delay)
		if err != nil {
			return
		}
		s.resolver.Resolve(context.WithoutCancel(s.ctx), official, force)
	}()
}

// Start runs the startup passes in the background: first every official
// without a supplied photo, then, once all of those have finished, every
// official with one.
func (s *Scheduler) Start(officials []directory.Official) {
	var missing, supplied []directory.Official
	for _, o := range officials {
		if o.PhotoURL == "" {
			missing = append(missing, o)
		} else {
			supplied = append(supplied, o)
		}
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		s.tel.ReportDebug(report_scheduler_pass, "missing", len(missing))
		var pass sync.WaitGroup
		for i, o := range missing {
			s.launch(o, time.Duration(i)*s.opts.LoadStagger, false, &pass)
		}
		pass.Wait()

		if s.ctx.Err() != nil {
			return
		}
		s.tel.ReportDebug(report_scheduler_pass, "supplied", len(supplied))
		for i, o := range supplied {
			s.launch(o, time.Duration(i)*s.opts.LoadStagger, false, nil)
		}
	}()
}

// Visible schedules a lookup for every official of a freshly displayed
// result set that has nothing to show yet. It returns how many were
// scheduled.
func (s *Scheduler) Visible(officials []directory.Official) int {
	if s.ctx.Err() != nil {
		return 0
	}
	scheduled := 0
	for i, o := range officials {
		if !s.resolver.NeedsLookup(o) {
			continue
		}
		s.launch(o, time.Duration(i)*s.opts.VisibleStagger, false, nil)
		scheduled++
	}
	return scheduled
}

// MarkBroken records a failed image for the official and schedules a forced
// resolution of it.
func (s *Scheduler) MarkBroken(official directory.Official) {
	s.resolver.MarkBroken(official.Name)
	if s.ctx.Err() != nil {
		return
	}
	s.launch(official, 0, true, nil)
}

// Wait blocks until every launched lookup has finished.
func (s *Scheduler) Wait() {
	s.wg.Wait()
}
