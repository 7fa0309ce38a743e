package commands

import (
	"context"

	"qgcalc/internal/logger"
	"qgcalc/internal/services/history"
	"qgcalc/internal/tui"
)

func runTUI(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Another qgcalc process writing the same home shows up live.
	var changes <-chan struct{}
	if appCtx.Files != nil && appCtx.Remote == nil {
		ch, err := appCtx.Files.Watch(ctx, history.Key)
		if err != nil {
			logger.Warn("watch history: %v", err)
		} else {
			changes = ch
		}
	}
	return tui.Run(ctx, tui.New(appCtx.Calc, appCtx.History, appCtx.Theme, changes))
}
