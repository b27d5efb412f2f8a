package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/folio/internal/config"
	"github.com/ziadkadry99/folio/internal/progress"
	"github.com/ziadkadry99/folio/internal/site"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the gallery site",
	Long: `Validates the project file and writes the gallery page, its styles, the
browser runtime and the static assets into the output directory.`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().String("output", "", "override output directory")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if out, _ := cmd.Flags().GetString("output"); out != "" {
		cfg.OutputDir = out
	}

	res, err := buildSite(cfg, false)
	if err != nil {
		return err
	}

	fmt.Printf("Site built: %s (%d projects, %d assets copied, %d unchanged)\n",
		cfg.OutputDir, res.Projects, res.Assets, res.AssetsSkipped)
	if !res.Wasm {
		fmt.Printf("No browser runtime found in %s; build it with:\n", cfg.WasmDir)
		fmt.Printf("  GOOS=js GOARCH=wasm go build -o %s/main.wasm ./wasm\n", cfg.WasmDir)
	}
	return nil
}

// buildSite runs one site build, reporting progress on the terminal.
func buildSite(cfg *config.Config, reload bool) (*site.Result, error) {
	gen := site.NewGenerator(cfg)
	gen.Reload = reload
	gen.Reporter = progress.NewReporter()

	res, err := gen.Generate()
	if err != nil {
		return nil, fmt.Errorf("building site: %w", err)
	}
	if verbose {
		fmt.Printf("  projects: %d\n  assets copied: %d\n  assets unchanged: %d\n  wasm: %t\n",
			res.Projects, res.Assets, res.AssetsSkipped, res.Wasm)
		kinds := make([]string, 0, len(res.Kinds))
		for k := range res.Kinds {
			kinds = append(kinds, k)
		}
		sort.Strings(kinds)
		for _, k := range kinds {
			fmt.Printf("  %s assets: %d\n", k, res.Kinds[k])
		}
	}
	return res, nil
}
