// Package layout loads screen layouts (named rectangles grouped into focus
// regions) from TOML, YAML or JSON files and installs them on a focus
// manager.
package layout

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/bnema/remotenav/internal/domain/entity"
	"github.com/bnema/remotenav/internal/ui/focus"
)

// RegionUntracked places an element outside every focus region. It can only
// receive focus programmatically.
const RegionUntracked = "untracked"

var (
	// ErrInvalidLayout wraps every structural problem found in a layout file.
	ErrInvalidLayout = errors.New("invalid layout")
	// ErrUnknownElement is returned when a name does not match any element.
	ErrUnknownElement = errors.New("unknown element")
)

// File is the on-disk representation of a layout.
type File struct {
	Name     string        `toml:"name" yaml:"name" json:"name"`
	Elements []ElementSpec `toml:"element" yaml:"elements" json:"elements"`
}

// ElementSpec describes one focusable rectangle.
type ElementSpec struct {
	Name   string  `toml:"name" yaml:"name" json:"name"`
	Region string  `toml:"region" yaml:"region" json:"region"`
	X      float64 `toml:"x" yaml:"x" json:"x"`
	Y      float64 `toml:"y" yaml:"y" json:"y"`
	W      float64 `toml:"w" yaml:"w" json:"w"`
	H      float64 `toml:"h" yaml:"h" json:"h"`
	// Row is the logical grid row inside the region.
	Row int `toml:"row" yaml:"row" json:"row"`
	// Col pins the element to a column of its row. Unpinned columns before
	// it stay empty and become grid holes; elements without Col follow the
	// pinned ones in definition order.
	Col *int `toml:"col,omitempty" yaml:"col,omitempty" json:"col,omitempty"`
	// Default marks the default focus of the region.
	Default bool `toml:"default" yaml:"default" json:"default"`
}

// Layout is a parsed, validated layout ready to be installed.
type Layout struct {
	Name string
	Path string

	elements  []*focus.Element
	byName    map[string]*focus.Element
	regionOf  map[*focus.Element]string
	grids     map[entity.Region]entity.Grid
	defaults  map[entity.Region]*focus.Element
	untracked []*focus.Element
}

// Build validates f and creates its elements.
func Build(f File) (*Layout, error) {
	var problems []string

	l := &Layout{
		Name:     f.Name,
		byName:   make(map[string]*focus.Element, len(f.Elements)),
		regionOf: make(map[*focus.Element]string, len(f.Elements)),
		grids:    make(map[entity.Region]entity.Grid),
		defaults: make(map[entity.Region]*focus.Element),
	}
	rows := make(map[entity.Region]map[int]*gridRow)

	for i, def := range f.Elements {
		name := strings.TrimSpace(def.Name)
		if name == "" {
			problems = append(problems, fmt.Sprintf("element #%d has no name", i+1))
			continue
		}
		if _, dup := l.byName[name]; dup {
			problems = append(problems, fmt.Sprintf("element %q is defined twice", name))
			continue
		}
		if def.W < 0 || def.H < 0 {
			problems = append(problems, fmt.Sprintf("element %q has a negative size", name))
			continue
		}
		if def.Col != nil && *def.Col < 0 {
			problems = append(problems, fmt.Sprintf("element %q has a negative column", name))
			continue
		}

		el := focus.NewElement(name, def.X, def.Y, def.W, def.H)
		l.elements = append(l.elements, el)
		l.byName[name] = el

		if strings.EqualFold(strings.TrimSpace(def.Region), RegionUntracked) {
			l.regionOf[el] = RegionUntracked
			l.untracked = append(l.untracked, el)
			if def.Default {
				problems = append(problems, fmt.Sprintf("element %q: untracked elements cannot be a default", name))
			}
			continue
		}

		region, err := entity.ParseRegion(strings.ToLower(strings.TrimSpace(def.Region)))
		if err != nil {
			problems = append(problems, fmt.Sprintf("element %q: unknown region %q", name, def.Region))
			continue
		}
		l.regionOf[el] = region.String()

		if rows[region] == nil {
			rows[region] = make(map[int]*gridRow)
		}
		row := rows[region][def.Row]
		if row == nil {
			row = &gridRow{pinned: make(map[int]*focus.Element)}
			rows[region][def.Row] = row
		}
		if def.Col != nil {
			if prev, taken := row.pinned[*def.Col]; taken {
				problems = append(problems, fmt.Sprintf("element %q: %s row %d column %d is taken by %q",
					name, region, def.Row, *def.Col, prev.Name))
				continue
			}
			row.pinned[*def.Col] = el
		} else {
			row.free = append(row.free, el)
		}

		if def.Default {
			if prev, taken := l.defaults[region]; taken {
				problems = append(problems, fmt.Sprintf("region %s has two defaults: %q and %q", region, prev.Name, name))
				continue
			}
			l.defaults[region] = el
		}
	}

	if len(problems) > 0 {
		return nil, fmt.Errorf("%w %q:\n  - %s", ErrInvalidLayout, f.Name, strings.Join(problems, "\n  - "))
	}

	for region, byRow := range rows {
		indexes := make([]int, 0, len(byRow))
		for row := range byRow {
			indexes = append(indexes, row)
		}
		sort.Ints(indexes)
		grid := make(entity.Grid, 0, len(indexes))
		for _, row := range indexes {
			grid = append(grid, byRow[row].cells())
		}
		l.grids[region] = grid
	}
	return l, nil
}

// gridRow collects the elements of one logical row.
type gridRow struct {
	pinned map[int]*focus.Element
	free   []*focus.Element
}

// cells lays the row out: pinned elements at their column with nil holes in
// between, then the unpinned ones.
func (r *gridRow) cells() []entity.Focusable {
	width := 0
	for col := range r.pinned {
		width = max(width, col+1)
	}
	out := make([]entity.Focusable, width, width+len(r.free))
	for col, el := range r.pinned {
		out[col] = el
	}
	for _, el := range r.free {
		out = append(out, el)
	}
	return out
}

// Elements returns every element in definition order.
func (l *Layout) Elements() []*focus.Element {
	out := make([]*focus.Element, len(l.elements))
	copy(out, l.elements)
	return out
}

// Lookup returns the element called name.
func (l *Layout) Lookup(name string) (*focus.Element, error) {
	el, ok := l.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q in layout %q", ErrUnknownElement, name, l.Name)
	}
	return el, nil
}

// RegionName returns the region label of el: a region name or "untracked".
func (l *Layout) RegionName(el *focus.Element) string {
	return l.regionOf[el]
}

// Grid returns the logical grid of region.
func (l *Layout) Grid(region entity.Region) entity.Grid {
	return l.grids[region]
}

// Default returns the default focus of region, or nil.
func (l *Layout) Default(region entity.Region) entity.Focusable {
	if el := l.defaults[region]; el != nil {
		return el
	}
	return nil
}

// Bounds implements port.BoundsProvider for the elements of this layout.
func (l *Layout) Bounds(f entity.Focusable) (entity.Rect, bool) {
	el, ok := f.(*focus.Element)
	if !ok || el == nil || l.byName[el.Name] != el {
		return entity.Rect{}, false
	}
	return el.Rect, true
}

// Apply installs the layout on m. Chrome regions are installed first so
// that installing the content region establishes the initial focus.
func (l *Layout) Apply(ctx context.Context, m *focus.Manager) error {
	for _, region := range [...]entity.Region{
		entity.RegionTopChrome, entity.RegionBottomChrome, entity.RegionContent,
	} {
		if err := m.SetRegionFocusables(ctx, region, l.grids[region], l.Default(region)); err != nil {
			return fmt.Errorf("apply layout %q: %w", l.Name, err)
		}
	}
	return nil
}
