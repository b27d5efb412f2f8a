package filter

// Facet group names.
const (
	GroupCategory = "category"
	GroupType     = "type"
)

// Group is a single-select set of facet buttons. The first label is always
// All and exactly one label is active at any time.
type Group struct {
	Name   string
	labels []string
	active int
}

// NewGroup returns a group with All followed by labels, All active. Duplicate
// labels and labels equal to All are dropped.
func NewGroup(name string, labels []string) *Group {
	g := &Group{Name: name, labels: []string{All}}
	for _, l := range labels {
		if l == "" || containsLabel(g.labels, l) {
			continue
		}
		g.labels = append(g.labels, l)
	}
	return g
}

// Labels returns the group's labels, All first.
func (g *Group) Labels() []string {
	out := make([]string, len(g.labels))
	copy(out, g.labels)
	return out
}

// Active returns the active label.
func (g *Group) Active() string {
	return g.labels[g.active]
}

// IsActive reports whether label is the active one.
func (g *Group) IsActive(label string) bool {
	return g.Active() == label
}

// Select makes label the only active label in the group. Unknown labels leave
// the group unchanged and return false.
func (g *Group) Select(label string) bool {
	for i, l := range g.labels {
		if l == label {
			g.active = i
			return true
		}
	}
	return false
}
