package main

import (
	"log/slog"

	"mir4scope-backend/cmd/mir4scope-cli/commands"
	"mir4scope-backend/lib/serviceutil"
	"mir4scope-backend/lib/telemetry"
)

func main() {
	ctx := serviceutil.SignalContext()

	telemetry.InitSlog(true)
	err := telemetry.SetupFromEnv(ctx, "mir4scope-cli")
	if err != nil {
		slog.Warn("telemetry disabled", "err", err)
	} else {
		telemetry.InstrumentPerfStats(ctx)
	}

	commands.ExecuteContext(ctx)
}
