package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/folio/internal/dom/memdom"
	"github.com/ziadkadry99/folio/internal/filter"
	"github.com/ziadkadry99/folio/internal/page"
	"github.com/ziadkadry99/folio/internal/project"
	"github.com/ziadkadry99/folio/internal/tilt"
)

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Run the gallery headless and print the visible projects",
	Long: `Loads the project list into an in-memory page, applies the given filters
exactly as the browser would, and prints the projects left visible. With
--html the rendered card markup is printed instead.`,
	Args: cobra.NoArgs,
	RunE: runQuery,
}

func init() {
	queryCmd.Flags().String("category", filter.All, "category label")
	queryCmd.Flags().String("type", filter.All, "type label")
	queryCmd.Flags().String("search", "", "free-text search")
	queryCmd.Flags().Bool("built", false, "read the project file from the built site using data_paths")
	queryCmd.Flags().Bool("html", false, "print the rendered card markup")
	queryCmd.Flags().Bool("json", false, "output results as JSON")
	rootCmd.AddCommand(queryCmd)
}

func runQuery(cmd *cobra.Command, args []string) error {
	category, _ := cmd.Flags().GetString("category")
	typ, _ := cmd.Flags().GetString("type")
	search, _ := cmd.Flags().GetString("search")
	built, _ := cmd.Flags().GetBool("built")
	htmlOutput, _ := cmd.Flags().GetBool("html")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	state := filter.State{Category: category, Type: typ, Search: search}
	location := filter.WriteURL(nil, state)
	doc, err := memdom.New("http://localhost" + location)
	if err != nil {
		return err
	}

	var sources []project.Source
	if built {
		fsys := os.DirFS(cfg.OutputDir)
		for _, p := range cfg.DataPaths {
			sources = append(sources, project.FileSource{FS: fsys, Path: p})
		}
	} else {
		abs, err := filepath.Abs(cfg.DataFile)
		if err != nil {
			return err
		}
		sources = append(sources, project.FileSource{FS: os.DirFS(filepath.Dir(abs)), Path: filepath.Base(abs)})
	}

	gallery := page.New(doc, project.NewLoader(sources...), page.WithTilter(tilt.New(cfg.Tilt.MaxDegrees, nil)))
	if err := gallery.Init(context.Background()); err != nil {
		return fmt.Errorf("loading gallery: %w", err)
	}

	normalized := gallery.State()
	if verbose && (normalized.Category != category || normalized.Type != typ) {
		fmt.Fprintf(os.Stderr, "Unknown label replaced: category=%s type=%s\n", normalized.Category, normalized.Type)
	}

	switch {
	case htmlOutput:
		fmt.Println(doc.ContainerHTML())
		return nil
	case jsonOutput:
		visible := gallery.Visible()
		if visible == nil {
			visible = []project.Project{}
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(visible)
	}

	printQueryResults(gallery.Visible())
	return nil
}

func printQueryResults(projects []project.Project) {
	if len(projects) == 0 {
		fmt.Println("No projects match the current filters.")
		return
	}

	fmt.Printf("Found %d projects:\n\n", len(projects))
	for i, p := range projects {
		fmt.Printf("  %d. %s\n", i+1, p.Title)
		if tags := p.Tags(); len(tags) > 0 {
			fmt.Printf("     Tags: %s\n", strings.Join(tags, ", "))
		}
		if p.Description != "" {
			fmt.Printf("     %s\n", truncate(p.Description, 120))
		}
		if p.Link != "" {
			fmt.Printf("     %s\n", p.Link)
		}
		fmt.Println()
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
