package theme

import (
	"fmt"
	"strings"
)

// Var is one style variable of a palette.
type Var struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Palette is a named set of style variables.
type Palette struct {
	Name string `json:"name"`
	Vars []Var  `json:"vars"`
}

// CSS renders the palette as a :root rule.
func (p Palette) CSS() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "/* theme: %s */\n:root {\n", p.Name)
	for _, v := range p.Vars {
		fmt.Fprintf(&sb, "  %s: %s;\n", v.Name, v.Value)
	}
	sb.WriteString("}\n")
	return sb.String()
}

// Table is an ordered list of palettes. Order defines the manual cycle.
type Table []Palette

// Lookup returns the palette called name.
func (t Table) Lookup(name string) (Palette, bool) {
	for _, p := range t {
		if p.Name == name {
			return p, true
		}
	}
	return Palette{}, false
}

// Names returns the palette names in table order.
func (t Table) Names() []string {
	names := make([]string, len(t))
	for i, p := range t {
		names[i] = p.Name
	}
	return names
}

// Next returns the palette after name, wrapping at the end. An unknown name
// yields the first palette.
func (t Table) Next(name string) string {
	if len(t) == 0 {
		return ""
	}
	for i, p := range t {
		if p.Name == name {
			return t[(i+1)%len(t)].Name
		}
	}
	return t[0].Name
}

func vars(kv ...string) []Var {
	out := make([]Var, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		out = append(out, Var{Name: kv[i], Value: kv[i+1]})
	}
	return out
}

// DefaultTable returns the built-in palettes.
func DefaultTable() Table {
	return Table{
		{Name: "tavern", Vars: vars(
			"--theme-bg-primary", "#f5f2e8",
			"--theme-bg-secondary", "#e8e2d2",
			"--theme-text-primary", "#2c1c0f",
			"--theme-text-secondary", "#543c2eff",
			"--theme-accent", "#b52f2fff",
			"--theme-accent-hover", "#6d4621",
			"--theme-border", "#8B5A2B",
			"--theme-shadow", "#3B1E14",
			"--theme-card-bg", "#f9f6ef",
			"--theme-filter-bg", "#e8d9c5",
			"--theme-filter-hover", "#d8c5a8",
			"--theme-tag-bg", "#d8c5a8",
			"--theme-scan-opacity", "0.15",
		)},
		{Name: "cyber", Vars: vars(
			"--theme-bg-primary", "#0a0a12",
			"--theme-bg-secondary", "#161627",
			"--theme-text-primary", "#ffffff",
			"--theme-text-secondary", "#c8d1e0",
			"--theme-accent", "#0CDEAD",
			"--theme-accent-hover", "#09b892",
			"--theme-border", "#324461",
			"--theme-shadow", "#000",
			"--theme-card-bg", "#1a1a2e",
			"--theme-filter-bg", "#47476eff",
			"--theme-filter-hover", "#323262",
			"--theme-tag-bg", "#2a2a4a",
			"--theme-scan-opacity", "0.4",
		)},
		{Name: "ocean", Vars: vars(
			"--theme-bg-primary", "#b2fefa",
			"--theme-bg-secondary", "#4facfe",
			"--theme-text-primary", "#002a24",
			"--theme-text-secondary", "#004d40",
			"--theme-accent", "#bf00a6ff",
			"--theme-accent-hover", "#00897b",
			"--theme-border", "#00695c",
			"--theme-shadow", "rgba(0, 89, 80, 0.6)",
			"--theme-card-bg", "#deeefbff",
			"--theme-filter-bg", "#80cbc4",
			"--theme-filter-hover", "#4db6ac",
			"--theme-tag-bg", "#4db6ac",
			"--theme-scan-opacity", "0.3",
		)},
		{Name: "mystic", Vars: vars(
			"--theme-bg-primary", "#f8e1ff",
			"--theme-bg-secondary", "#d884ff",
			"--theme-text-primary", "#2a0035",
			"--theme-text-secondary", "#4a148c",
			"--theme-accent", "#11853cff",
			"--theme-accent-hover", "#9c27b0",
			"--theme-border", "#6a1b9a",
			"--theme-shadow", "rgba(0, 130, 104, 0.6)",
			"--theme-card-bg", "#e7e0faff",
			"--theme-filter-bg", "#d1c4e9",
			"--theme-filter-hover", "#b39ddb",
			"--theme-tag-bg", "#ce93d8",
			"--theme-scan-opacity", "0.35",
		)},
		{Name: "forest", Vars: vars(
			"--theme-bg-primary", "#d6f5d6",
			"--theme-bg-secondary", "#76d275",
			"--theme-text-primary", "#122b12",
			"--theme-text-secondary", "#1b5e20",
			"--theme-accent", "#b500ff",
			"--theme-accent-hover", "#2e7d32",
			"--theme-border", "#2e7d32",
			"--theme-shadow", "rgba(51, 34, 85, 0.6)",
			"--theme-card-bg", "#f1e8d0ff",
			"--theme-filter-bg", "#a5d6a7",
			"--theme-filter-hover", "#81c784",
			"--theme-tag-bg", "#81c784",
			"--theme-scan-opacity", "0.25",
		)},
		{Name: "neon", Vars: vars(
			"--theme-bg-primary", "#001122",
			"--theme-bg-secondary", "#003344",
			"--theme-text-primary", "#ffffff",
			"--theme-text-secondary", "#c8d1e0",
			"--theme-accent", "#ea76f2ff",
			"--theme-accent-hover", "#00ccff",
			"--theme-border", "#09a984ff",
			"--theme-shadow", "#1b2426ff",
			"--theme-card-bg", "#002233",
			"--theme-filter-bg", "#00394d",
			"--theme-filter-hover", "#004c66",
			"--theme-tag-bg", "#004455",
			"--theme-scan-opacity", "0.18",
		)},
		// glitched leaves --theme-scan-opacity as the previous palette set it.
		{Name: "glitched", Vars: vars(
			"--theme-bg-primary", "#0a0a12",
			"--theme-bg-secondary", "#1a1a2e",
			"--theme-text-primary", "#ffffff",
			"--theme-text-secondary", "#c8d1e0",
			"--theme-accent", "#ff00cc",
			"--theme-accent-hover", "#6b6beaff",
			"--theme-border", "#6722b0ff",
			"--theme-shadow", "#000000ff",
			"--theme-card-bg", "#1a1a2e",
			"--theme-filter-bg", "#404071ff",
			"--theme-filter-hover", "#323262",
			"--theme-tag-bg", "#2a2a4a",
		)},
	}
}
