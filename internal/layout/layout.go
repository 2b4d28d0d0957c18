// Package layout loads grid layout definitions and places resolved items on
// the grid.
//
// A definition is a titled, ordered list of named items, each declared as a
// column bucket and a row bucket. Definitions are read from TOML or YAML,
// chosen by file extension:
//
//	title = "Operations"
//	[[item]]
//	name = "Throughput"
//	columns = 5
//	rows = 2
//
// Invalid buckets fail the load with grid.ErrInvalidBucket; a Definition that
// exists is always resolvable.
package layout

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/five82/tessera/internal/grid"
)

// Entry is one named grid item.
type Entry struct {
	Name string
	Item grid.Item
}

// Definition is an immutable, validated layout.
type Definition struct {
	Title   string
	Entries []Entry
	Source  string // file path, empty for the built-in layout
}

// ErrEmpty reports a definition with no items.
var ErrEmpty = errors.New("layout has no items")

type rawEntry struct {
	Name    string `toml:"name" yaml:"name"`
	Columns int    `toml:"columns" yaml:"columns"`
	Rows    int    `toml:"rows" yaml:"rows"`
	Span    string `toml:"span" yaml:"span"`
}

type rawTOML struct {
	Title string     `toml:"title"`
	Items []rawEntry `toml:"item"`
}

type rawYAML struct {
	Title string     `yaml:"title"`
	Items []rawEntry `yaml:"items"`
}

// Load reads the definition at path. An empty path returns Builtin.
func Load(path string) (Definition, error) {
	if strings.TrimSpace(path) == "" {
		return Builtin(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Definition{}, fmt.Errorf("read layout: %w", err)
	}
	def, err := Parse(data, formatFor(path))
	if err != nil {
		return Definition{}, err
	}
	def.Source = path
	return def, nil
}

// Format selects the definition encoding.
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

func formatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// Parse decodes and validates a definition.
func Parse(data []byte, format Format) (Definition, error) {
	var (
		title string
		items []rawEntry
	)
	switch format {
	case FormatYAML:
		var raw rawYAML
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return Definition{}, fmt.Errorf("parse layout: %w", err)
		}
		title, items = raw.Title, raw.Items
	default:
		var raw rawTOML
		if err := toml.Unmarshal(data, &raw); err != nil {
			return Definition{}, fmt.Errorf("parse layout: %w", err)
		}
		title, items = raw.Title, raw.Items
	}

	if len(items) == 0 {
		return Definition{}, ErrEmpty
	}

	def := Definition{Title: strings.TrimSpace(title), Entries: make([]Entry, 0, len(items))}
	for i, raw := range items {
		name := strings.TrimSpace(raw.Name)
		if name == "" {
			name = fmt.Sprintf("item %d", i+1)
		}
		item, err := raw.item()
		if err != nil {
			return Definition{}, fmt.Errorf("layout entry %q: %w", name, err)
		}
		def.Entries = append(def.Entries, Entry{Name: name, Item: item})
	}
	return def, nil
}

// span, when set, takes the "5x2" shorthand instead of columns/rows.
func (r rawEntry) item() (grid.Item, error) {
	if s := strings.TrimSpace(r.Span); s != "" {
		return grid.ParseItem(s)
	}
	return grid.NewItem(r.Columns, r.Rows)
}

// Builtin returns a layout exercising every column bucket.
func Builtin() Definition {
	return Definition{
		Title: "Tessera",
		Entries: []Entry{
			{Name: "Overview", Item: grid.MustItem(6, 1)},
			{Name: "Throughput", Item: grid.MustItem(5, 2)},
			{Name: "Alerts", Item: grid.MustItem(1, 2)},
			{Name: "Latency", Item: grid.MustItem(4, 1)},
			{Name: "Errors", Item: grid.MustItem(2, 1)},
			{Name: "Regions", Item: grid.MustItem(3, 3)},
			{Name: "Capacity", Item: grid.MustItem(3, 1)},
			{Name: "Deploys", Item: grid.MustItem(2, 2)},
		},
	}
}

// Resolve returns every entry's span at bp.
func (d Definition) Resolve(r *grid.Resolver, bp grid.Breakpoint) []grid.Span {
	spans := make([]grid.Span, len(d.Entries))
	for i, e := range d.Entries {
		spans[i] = r.Resolve(e.Item, bp)
	}
	return spans
}
