package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"

	"github.com/ziadkadry99/folio/internal/theme"
)

// dataFileCandidates are checked, in order, for an existing project file.
var dataFileCandidates = []string{
	"data/projects.json",
	"projects.json",
	"data/projects.jsonc",
}

// detectDataFile returns the first existing project file candidate.
func detectDataFile() string {
	for _, path := range dataFileCandidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to .folio.yml.
func RunWizard() (*Config, error) {
	fmt.Println("Welcome to folio! Let's configure your gallery.")
	fmt.Println()

	cfg := DefaultConfig()
	if found := detectDataFile(); found != "" {
		fmt.Printf("Found project file: %s\n\n", found)
		cfg.DataFile = found
	}

	// 1. Title.
	titlePrompt := promptui.Prompt{
		Label:   "Gallery title",
		Default: cfg.Title,
	}
	title, err := titlePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("title: %w", err)
	}
	cfg.Title = strings.TrimSpace(title)

	// 2. Project file.
	dataPrompt := promptui.Prompt{
		Label:   "Project file (JSON array of projects)",
		Default: cfg.DataFile,
	}
	dataFile, err := dataPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("data file: %w", err)
	}
	cfg.DataFile = strings.TrimSpace(dataFile)

	// 3. Output directory.
	outputPrompt := promptui.Prompt{
		Label:   "Output directory for the generated site",
		Default: cfg.OutputDir,
	}
	outputDir, err := outputPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}
	cfg.OutputDir = strings.TrimSpace(outputDir)

	// 4. Theme strategy.
	strategyPrompt := promptui.Select{
		Label: "How should the color theme be picked on each visit?",
		Items: []string{
			"random   - a fresh palette every time",
			"weighted - usually fresh, sometimes the last one again",
		},
	}
	strategyIdx, _, err := strategyPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("theme strategy: %w", err)
	}
	cfg.Theme.Strategy = string([]theme.Strategy{theme.StrategyRandom, theme.StrategyWeighted}[strategyIdx])

	// 5. Where the palette is remembered.
	storePrompt := promptui.Select{
		Label: "Where should the chosen theme be remembered?",
		Items: []string{
			"local  - browser localStorage",
			"server - folio serve preferences API",
		},
	}
	storeIdx, _, err := storePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("theme store: %w", err)
	}
	cfg.Theme.Store = []ThemeStore{StoreLocal, StoreServer}[storeIdx]

	// 6. Dev server port.
	portPrompt := promptui.Prompt{
		Label:   "Dev server port",
		Default: strconv.Itoa(cfg.Server.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n < 1 || n > 65535 {
				return fmt.Errorf("enter a port between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Server.Port, _ = strconv.Atoi(portStr)

	// 7. Extra exclude patterns.
	excludePrompt := promptui.Prompt{
		Label:   "Extra static exclude patterns (comma-separated, leave blank for defaults)",
		Default: "",
	}
	excludeStr, err := excludePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("exclude patterns: %w", err)
	}
	cfg.Exclude = append(cfg.Exclude, splitAndTrim(excludeStr)...)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if _, err := os.Stat(cfg.DataFile); err != nil {
		fmt.Printf("\nNote: %s does not exist yet; create it before running folio build.\n", cfg.DataFile)
	}

	// Save to .folio.yml.
	if err := cfg.Save(DefaultPath); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", DefaultPath)
	return cfg, nil
}

// splitAndTrim splits a comma-separated string and drops empty entries.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if token := strings.TrimSpace(part); token != "" {
			result = append(result, token)
		}
	}
	return result
}
