package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"qgcalc/internal/app"
	"qgcalc/internal/logger"
	"qgcalc/internal/server"
	"qgcalc/internal/services/history"
)

func main() {
	if err := newCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newCmd() *cobra.Command {
	var (
		addr     string
		home     string
		backend  string
		limit    int
		logLevel string
		logFile  string
	)
	cmd := &cobra.Command{
		Use:          "calcd",
		Short:        "HTTP evaluation service for qgcalc",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			lvl := logger.ParseLevel(logLevel)
			if logFile != "" {
				if err := logger.Init(lvl, logFile); err != nil {
					return err
				}
			} else {
				logger.SetGlobal(logger.NewWriter(lvl, cmd.ErrOrStderr(), ""))
			}
			defer logger.Global().Close()

			cfg := app.DefaultConfig(home)
			cfg.HistoryLimit = limit
			cfg.Backend = app.BackendMemory
			if home != "" {
				if err := os.MkdirAll(home, 0o700); err != nil {
					return err
				}
				cfg.Backend = backend
			}
			w, err := app.NewWire(cfg)
			if err != nil {
				return err
			}
			defer w.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return server.New(w.Calc).ListenAndServe(ctx, addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&home, "home", "", "persist history under this dir (default in memory)")
	cmd.Flags().StringVar(&backend, "backend", app.BackendJSON, "storage backend with --home: json or sqlite")
	cmd.Flags().IntVar(&limit, "history-limit", history.DefaultLimit, "records kept")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "debug, info, warn, error or none")
	cmd.Flags().StringVar(&logFile, "log-file", "", "append logs to this file instead of stderr")
	return cmd
}
