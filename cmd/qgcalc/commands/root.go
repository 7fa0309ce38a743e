package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"qgcalc/internal/app"
	"qgcalc/internal/logger"
)

var (
	home       string
	backend    string
	passphrase string
	remoteURL  string
	logLevel   string
	logFile    string

	appCtx *app.Wire
)

func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "qgcalc",
		Short:        "Keystroke calculator with persistent history",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				dir, err := app.DefaultHome()
				if err != nil {
					return err
				}
				home = dir
			}
			if err := os.MkdirAll(home, 0o700); err != nil {
				return err
			}

			cfg, err := app.LoadConfig(home)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("backend") {
				cfg.Backend = backend
			}
			if flags.Changed("remote") {
				cfg.RemoteURL = remoteURL
			}
			if flags.Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			if flags.Changed("log-file") {
				cfg.LogPath = logFile
			}
			cfg.Passphrase = passphrase

			if err := logger.Init(logger.ParseLevel(cfg.LogLevel), cfg.LogPath); err != nil {
				return err
			}
			appCtx, err = app.NewWire(cfg)
			return err
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if appCtx == nil {
				return nil
			}
			err := appCtx.Close()
			_ = logger.Global().Close()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd())) {
				return runTUI(cmd.Context())
			}
			return runREPL(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&home, "home", "", "data dir (default ~/.qgcalc)")
	pf.StringVar(&backend, "backend", app.BackendJSON, "storage backend: json, sqlite or memory")
	pf.StringVarP(&passphrase, "passphrase", "p", "", "encrypt stored history and theme with this passphrase")
	pf.StringVar(&remoteURL, "remote", "", "calcd base URL for evaluation (e.g. http://127.0.0.1:8080)")
	pf.StringVar(&logLevel, "log-level", "info", "debug, info, warn, error or none")
	pf.StringVar(&logFile, "log-file", "", "append logs to this file")

	root.AddCommand(evalCmd(), keysCmd(), historyCmd(), themeCmd(), replCmd())
	return root
}
