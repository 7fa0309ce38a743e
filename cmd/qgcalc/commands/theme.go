package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"qgcalc/internal/services/theme"
)

func themeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show the colour theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := appCtx.Theme.Current()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), t)
			return nil
		},
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "toggle",
			Short: "Switch between dark and light",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				t, err := appCtx.Theme.Toggle()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), t)
				return nil
			},
		},
		&cobra.Command{
			Use:       "set <dark|light>",
			Short:     "Choose a theme",
			Args:      cobra.ExactArgs(1),
			ValidArgs: []string{"dark", "light"},
			RunE: func(cmd *cobra.Command, args []string) error {
				t, err := theme.Parse(args[0])
				if err != nil {
					return err
				}
				return appCtx.Theme.Set(t)
			},
		},
	)
	return cmd
}
