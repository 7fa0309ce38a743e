package commands

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"qgcalc/internal/domain"
	"qgcalc/internal/logger"
	"qgcalc/internal/numfmt"
)

var historyLimit int

func historyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List past evaluations, most recent first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			recs, err := appCtx.Calc.History()
			if err != nil {
				if len(recs) == 0 {
					return err
				}
				logger.Warn("history: %v", err)
			}
			if historyLimit > 0 && len(recs) > historyLimit {
				recs = recs[len(recs)-historyLimit:]
			}
			printHistory(cmd.OutOrStdout(), recs)
			return nil
		},
	}
	cmd.Flags().IntVarP(&historyLimit, "limit", "n", 0, "show at most N entries")
	cmd.AddCommand(historyClearCmd(), historyRecallCmd())
	return cmd
}

func historyClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete all history entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return appCtx.Calc.ClearHistory()
		},
	}
}

// recall: n counts from 1 like the listing.
func historyRecallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "recall <n>",
		Short: "Print the result of history entry n (1 = most recent)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 1 {
				return fmt.Errorf("entry must be a positive integer, got %q", args[0])
			}
			d, err := appCtx.Calc.Recall(n - 1)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), d.Secondary)
			return nil
		},
	}
}

func printHistory(w io.Writer, recs []domain.HistoryRecord) {
	if len(recs) == 0 {
		fmt.Fprintln(w, "no history")
		return
	}
	for i := len(recs) - 1; i >= 0; i-- {
		r := recs[i]
		fmt.Fprintf(w, "%3d  %s = %s\n", len(recs)-i, numfmt.HistoryExpression(r.Expression), numfmt.HistoryNumber(r.Result))
	}
}
