package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/folio/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "Static project gallery with themes, filters and live preview",
	Long: `Folio builds a single-page project gallery from a JSON project list.
The page filters projects by category, type and free text, keeps the
selection in the URL, and wears one of several color themes. A
development server previews the site and reloads it on change.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
