package site

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ziadkadry99/folio/internal/config"
	"github.com/ziadkadry99/folio/internal/progress"
	"github.com/ziadkadry99/folio/internal/project"
	"github.com/ziadkadry99/folio/internal/theme"
	"github.com/ziadkadry99/folio/internal/walker"
)

// DataPath is where the project file is written, relative to the output
// directory.
const DataPath = "data/projects.json"

// Files the browser build needs next to index.html.
const (
	wasmFile     = "main.wasm"
	wasmExecFile = "wasm_exec.js"
)

// Generator writes a gallery site into the configured output directory.
type Generator struct {
	cfg *config.Config

	// Reload marks the page to open the dev server's reload socket.
	Reload bool
	// Reporter receives one update per written file; nil means silent.
	Reporter progress.Reporter
}

// NewGenerator creates a Generator for cfg.
func NewGenerator(cfg *config.Config) *Generator {
	return &Generator{cfg: cfg}
}

// Result summarizes a build.
type Result struct {
	Projects      int
	Assets        int
	AssetsSkipped int
	Kinds         map[string]int // assets found per walker kind
	Wasm          bool
}

// pageOptions are handed to main.wasm as data attributes.
type pageOptions struct {
	ThemeStrategy string
	ThemeDefault  string
	ThemeStore    string
	StorageKey    string
	TiltMax       string
	DataPaths     string
	Reload        bool
}

// pageData holds the data passed to the HTML template.
type pageData struct {
	Title       string
	Description string
	Wasm        bool
	Page        pageOptions
}

// step is one unit of build output.
type step struct {
	name string
	run  func() error
}

// Generate builds the site. The project file is validated first; a file
// that does not parse aborts the build before anything is written.
func (g *Generator) Generate() (*Result, error) {
	projects, err := project.ReadFile(g.cfg.DataFile)
	if err != nil {
		return nil, fmt.Errorf("reading projects: %w", err)
	}

	assets, err := walker.Walk(walker.WalkerConfig{
		RootDir: g.cfg.StaticDir,
		Include: g.cfg.Assets,
		Exclude: g.cfg.Exclude,
	})
	if err != nil {
		return nil, fmt.Errorf("collecting static assets: %w", err)
	}

	if err := os.MkdirAll(g.cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output dir: %w", err)
	}

	res := &Result{Projects: len(projects), Kinds: make(map[string]int)}
	for _, a := range assets {
		res.Kinds[a.Kind]++
	}
	wasmSrc, hasWasm := g.findWasm()
	res.Wasm = hasWasm
	if !hasWasm {
		log.Printf("site: no %s and %s in %s; the page will not be interactive", wasmFile, wasmExecFile, g.cfg.WasmDir)
	}

	steps := []step{
		{DataPath, func() error { return g.writeProjects(projects) }},
		{"index.html", func() error { return g.writeIndex(hasWasm) }},
		{"style.css", func() error { return g.writeFile("style.css", []byte(cssContent)) }},
		{"theme.css", func() error { return g.writeThemeCSS() }},
	}
	if hasWasm {
		steps = append(steps,
			step{"boot.js", func() error { return g.writeFile("boot.js", []byte(bootScript)) }},
			step{wasmFile, func() error { return copyFile(filepath.Join(wasmSrc, wasmFile), g.out(wasmFile)) }},
			step{wasmExecFile, func() error { return copyFile(filepath.Join(wasmSrc, wasmExecFile), g.out(wasmExecFile)) }},
		)
	}
	for _, a := range assets {
		steps = append(steps, step{a.RelPath, func() error {
			copied, err := copyIfChanged(a, g.out(a.RelPath))
			if err != nil {
				return err
			}
			if copied {
				res.Assets++
			} else {
				res.AssetsSkipped++
			}
			return nil
		}})
	}

	reporter := g.Reporter
	if reporter == nil {
		reporter = progress.Nop{}
	}
	reporter.Start(len(steps))
	for i, s := range steps {
		if err := s.run(); err != nil {
			return nil, fmt.Errorf("writing %s: %w", s.name, err)
		}
		reporter.Update(i+1, s.name)
	}
	reporter.Finish()

	return res, nil
}

// out returns the output path of a slash-separated relative path.
func (g *Generator) out(rel string) string {
	return filepath.Join(g.cfg.OutputDir, filepath.FromSlash(rel))
}

func (g *Generator) writeFile(rel string, data []byte) error {
	path := g.out(rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// writeProjects writes the parsed list back as plain JSON, so the browser
// never sees comments or trailing commas.
func (g *Generator) writeProjects(projects []project.Project) error {
	data, err := json.MarshalIndent(projects, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding projects: %w", err)
	}
	return g.writeFile(DataPath, append(data, '\n'))
}

func (g *Generator) writeIndex(hasWasm bool) error {
	tmpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return fmt.Errorf("parsing page template: %w", err)
	}

	data := pageData{
		Title:       g.cfg.Title,
		Description: g.cfg.Description,
		Wasm:        hasWasm,
		Page: pageOptions{
			ThemeStrategy: g.cfg.Theme.Strategy,
			ThemeDefault:  g.cfg.Theme.Default,
			ThemeStore:    string(g.cfg.Theme.Store),
			StorageKey:    g.cfg.Theme.StorageKey,
			TiltMax:       strconv.FormatFloat(g.cfg.Tilt.MaxDegrees, 'f', -1, 64),
			DataPaths:     strings.Join(g.cfg.DataPaths, ","),
			Reload:        g.Reload,
		},
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("rendering page: %w", err)
	}
	return g.writeFile("index.html", buf.Bytes())
}

// writeThemeCSS writes the default palette so the page is styled before
// main.wasm picks one.
func (g *Generator) writeThemeCSS() error {
	p, ok := theme.DefaultTable().Lookup(g.cfg.Theme.Default)
	if !ok {
		p = theme.DefaultTable()[0]
	}
	return g.writeFile("theme.css", []byte(p.CSS()))
}

// findWasm reports the directory holding both browser build files.
func (g *Generator) findWasm() (string, bool) {
	if g.cfg.WasmDir == "" {
		return "", false
	}
	for _, name := range []string{wasmFile, wasmExecFile} {
		if _, err := os.Stat(filepath.Join(g.cfg.WasmDir, name)); err != nil {
			return "", false
		}
	}
	return g.cfg.WasmDir, true
}

// copyIfChanged copies an asset unless the destination already has the
// same content.
func copyIfChanged(a walker.FileInfo, dst string) (bool, error) {
	if hash, err := walker.HashFile(dst); err == nil && hash == a.ContentHash {
		return false, nil
	}
	return true, copyFile(a.Path, dst)
}

// copyFile copies a single file.
func copyFile(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}

	srcFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer srcFile.Close()

	dstFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer dstFile.Close()

	_, err = io.Copy(dstFile, srcFile)
	return err
}
