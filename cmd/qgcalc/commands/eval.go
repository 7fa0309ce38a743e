package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"qgcalc/internal/numfmt"
)

// eval: arguments are joined without separators so `qgcalc eval 3 + 4` works.
func evalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval <expression>...",
		Short: "Evaluate an expression and record it in history",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			expr := strings.Join(args, "")
			v, err := appCtx.Calc.Calculate(cmd.Context(), expr)
			if err != nil {
				return fmt.Errorf("%s: %w", expr, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), numfmt.Result(v))
			return nil
		},
	}
}
