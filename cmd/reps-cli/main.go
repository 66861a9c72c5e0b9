package main

import (
	"context"

	"knowyourreps-backend/cmd/reps-cli/commands"
	"knowyourreps-backend/internal/components/telemetry"
	"knowyourreps-backend/lib/util/serviceutil"
)

func main() {
	ctx := serviceutil.SignalContext()
	t, _ := telemetry.SetupFromEnv(ctx, "reps-cli")
	defer t.Shutdown(context.Background())

	commands.ExecuteContext(ctx)
}
