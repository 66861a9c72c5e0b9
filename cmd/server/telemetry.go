package main

import (
	"context"
	"log/slog"
	"path/filepath"

	"knowyourreps-backend/internal/components/telemetry"
	"knowyourreps-backend/lib/util/restyutil"
	"knowyourreps-backend/lib/util/serviceutil"
)

// InitTelemetry sets up logging and otel. In verbose mode the returned
// function gives every http client a directory to dump its exchanges in,
// otherwise it returns nil.
func InitTelemetry(ctx context.Context, verbose bool) func(client string) telemetry.ExchangeOutput {
	telemetry.InitSlog(verbose)

	if verbose {
		slog.DebugContext(ctx, "verbose logging enabled")
	}

	t, err := telemetry.SetupFromEnv(ctx, "knowyourreps-server")
	if err != nil {
		serviceutil.Fatal("setup telemetry", err)
	}
	go func() {
		<-ctx.Done()
		err := t.Shutdown(context.Background())
		if err != nil {
			slog.Warn("shutdown telemetry", "err", err)
		}
	}()
	telemetry.InstrumentPerfStats(ctx, telemetry.SlogAPI{})

	return func(client string) telemetry.ExchangeOutput {
		if !verbose {
			return nil
		}
		output, err := restyutil.NewFilesystemOutput(filepath.Join(".dev", "resty", client))
		if err != nil {
			slog.Warn("create resty output", "client", client, "err", err)
			return nil
		}
		return output
	}
}
