package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/folio/internal/theme"
)

var themesCmd = &cobra.Command{
	Use:   "themes [name]",
	Short: "List the built-in themes or print one as CSS",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		table := theme.DefaultTable()
		if len(args) == 0 {
			for i, name := range table.Names() {
				fmt.Printf("  %d. %s (next: %s)\n", i+1, name, table.Next(name))
			}
			return nil
		}

		p, ok := table.Lookup(args[0])
		if !ok {
			return fmt.Errorf("%w: %q", theme.ErrUnknownTheme, args[0])
		}
		fmt.Print(p.CSS())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(themesCmd)
}
