package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/remotenav/internal/domain/entity"
	"github.com/bnema/remotenav/internal/infrastructure/layout"
)

const tileWidth = 14

// ScreenRenderer draws a layout as rows of tiles, one block per region.
type ScreenRenderer struct {
	theme *Theme
}

// NewScreenRenderer creates a screen renderer with the given theme.
func NewScreenRenderer(theme *Theme) *ScreenRenderer {
	return &ScreenRenderer{theme: theme}
}

// Render draws every region of l, highlighting focused.
func (r *ScreenRenderer) Render(l *layout.Layout, focused entity.Focusable) string {
	blocks := make([]string, 0, len(entity.Regions)+1)
	for _, region := range entity.Regions {
		grid := l.Grid(region)
		if len(grid) == 0 {
			continue
		}
		blocks = append(blocks, r.renderRegion(region.String(), grid, focused))
	}

	var loose []entity.Focusable
	for _, el := range l.Elements() {
		if l.RegionName(el) == layout.RegionUntracked {
			loose = append(loose, el)
		}
	}
	if len(loose) > 0 {
		blocks = append(blocks, r.renderRegion(layout.RegionUntracked, entity.Grid{loose}, focused))
	}
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

func (r *ScreenRenderer) renderRegion(label string, grid entity.Grid, focused entity.Focusable) string {
	rows := make([]string, 0, len(grid)+1)
	rows = append(rows, r.theme.Subtitle.Render(label))
	for _, row := range grid {
		tiles := make([]string, 0, len(row))
		for _, f := range row {
			if f == nil {
				tiles = append(tiles, r.theme.TileHole.Width(tileWidth).Render(""))
				continue
			}
			tiles = append(tiles, r.renderTile(f, f == focused, label == layout.RegionUntracked))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, tiles...))
	}
	return strings.Join(rows, "\n")
}

func (r *ScreenRenderer) renderTile(f entity.Focusable, focused, loose bool) string {
	style := r.theme.Tile
	switch {
	case focused:
		style = r.theme.TileFocused
	case loose:
		style = r.theme.TileLoose
	}
	name := f.FocusName()
	if len(name) > tileWidth-2 {
		name = name[:tileWidth-3] + "…"
	}
	return style.Width(tileWidth).Align(lipgloss.Center).Render(name)
}
