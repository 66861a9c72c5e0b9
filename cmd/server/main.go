package main

import (
	"flag"
	"log/slog"

	"knowyourreps-backend/internal/components/chrono"
	"knowyourreps-backend/internal/components/telemetry"
	"knowyourreps-backend/internal/directory"
	"knowyourreps-backend/internal/photos"
	"knowyourreps-backend/internal/scrapers/wikipedia"
	"knowyourreps-backend/internal/service"
	"knowyourreps-backend/lib/util/serviceutil"
)

func main() {
	verbose := flag.Bool("v", false, "Enable verbose logging/instrumentation.")
	configPath := flag.String("config", "config.json5", "The config file to read.")
	flag.Parse()

	ctx := serviceutil.SignalContext()
	exchangeOutput := InitTelemetry(ctx, *verbose)

	cfg, err := ReadConfig(*configPath)
	if err != nil {
		serviceutil.Fatal("read config", err)
	}

	store, err := directory.OpenStore(cfg.Dataset)
	if err != nil {
		serviceutil.Fatal("open dataset", err)
	}
	slog.Info("loaded dataset", "path", cfg.Dataset, "officials", len(store.All()))

	tel := telemetry.SlogAPI{}
	clock := chrono.StandardImpl{}

	wikiOptions := cfg.wikipediaOptions()
	wikiOptions.Output = exchangeOutput("wikipedia")
	wiki := wikipedia.NewClient(wikiOptions, tel)

	resolver := photos.NewResolver(wiki, clock, tel, cfg.variantDelay())
	scheduler := photos.NewScheduler(ctx, resolver, clock, tel, cfg.schedulerOptions())
	scheduler.Start(store.All())

	if cfg.ReloadCron != "" {
		cron := chrono.NewStandardCron(tel)
		defer cron.Stop()

		err = cron.Cron(cfg.ReloadCron, func() {
			err := store.Reload()
			if err != nil {
				tel.ReportBroken("server:dataset-reload", err, cfg.Dataset)
				return
			}
			slog.Info("reloaded dataset", "officials", len(store.All()))
			scheduler.Start(store.All())
		})
		if err != nil {
			serviceutil.Fatal("schedule dataset reload", err)
		}
	}

	svc := service.NewService(store, wiki, resolver, scheduler, service.WithCustomTelemetryAPI(tel))
	err = serviceutil.StartHttpServer(ctx, cfg.Port, svc.Handler(cfg.StaticDir))
	if err != nil {
		serviceutil.Fatal("serve http", err)
	}
}
