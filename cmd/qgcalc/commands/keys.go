package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"qgcalc/internal/domain"
	"qgcalc/internal/editor"
)

func keysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keys <key>...",
		Short: "Feed calculator keys and print the display after each",
		Long: `Feed calculator keys and print the display after each.

Each argument is a key name (0-9 . + - * / ( ) % = erase clear, or the
aliases enter, backspace, esc, x). An argument that is not a key name is
typed one character at a time, so "2(3)=" works as a single argument.`,
		Example: `  qgcalc keys "2(3)="
  qgcalc keys 5 - enter`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			keys, err := parseKeys(args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, k := range keys {
				printDisplay(out, k, appCtx.Calc.SubmitKey(k))
			}
			return nil
		},
	}
}

func parseKeys(args []string) ([]editor.Key, error) {
	var keys []editor.Key
	for _, a := range args {
		if k, ok := editor.KeyFromInput(a); ok {
			keys = append(keys, k)
			continue
		}
		for _, r := range a {
			k, ok := editor.KeyFromInput(string(r))
			if !ok {
				return nil, fmt.Errorf("unknown key %q in %q", r, a)
			}
			keys = append(keys, k)
		}
	}
	return keys, nil
}

func printDisplay(w io.Writer, k editor.Key, d domain.DisplayState) {
	fmt.Fprintf(w, "%-6s %-24s %s\n", k, d.Secondary, d.Primary)
}
