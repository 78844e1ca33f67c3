package engine

import (
	"math"
	"sort"

	"github.com/vovakirdan/road-racer/internal/core"
)

// Viewport maps a world-space rectangle onto the whole screen.
type Viewport struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// Project converts a world point to a screen cell. World y grows upwards,
// screen rows grow downwards; the viewport edges land on the outer cells.
func (v Viewport) Project(p core.Vec2, w, h int) (int, int) {
	col := (p.X - v.MinX) / (v.MaxX - v.MinX) * float64(w-1)
	row := (v.MaxY - p.Y) / (v.MaxY - v.MinY) * float64(h-1)
	return int(math.Round(col)), int(math.Round(row))
}

// cells converts a world extent to a number of cells, at least one.
func (v Viewport) cells(worldW, worldH float64, w, h int) (int, int) {
	cw := int(math.Round(worldW / (v.MaxX - v.MinX) * float64(w)))
	ch := int(math.Round(worldH / (v.MaxY - v.MinY) * float64(h)))
	return core.Max(cw, 1), core.Max(ch, 1)
}

// Render draws sprites by ascending layer, then texts on top.
func (e *Engine) Render(dst *core.Screen, vp Viewport) {
	w, h := dst.Width(), dst.Height()
	if w < 2 || h < 2 {
		return
	}

	sprites := append([]*Sprite(nil), e.Sprites()...)
	sort.SliceStable(sprites, func(i, j int) bool {
		return sprites[i].Layer < sprites[j].Layer
	})

	bounds := core.NewRect(0, 0, w, h)
	for _, s := range sprites {
		size := s.Preset.Size()
		cw, ch := vp.cells(size.X*s.Scale, size.Y*s.Scale, w, h)
		cx, cy := vp.Project(s.Translation, w, h)
		area := core.NewRect(cx-cw/2, cy-ch/2, cw, ch)
		if !area.Intersects(bounds) {
			continue // Waiting off screen
		}
		glyph, color := s.Preset.Glyph()
		for y := area.Y; y < area.Bottom(); y++ {
			for x := area.X; x < area.Right(); x++ {
				dst.SetColored(x, y, glyph, color)
			}
		}
	}

	for _, t := range e.Texts() {
		cx, cy := vp.Project(t.Translation, w, h)
		runes := []rune(t.Value)
		x := cx - len(runes)/2
		if x+len(runes) > w {
			x = w - len(runes)
		}
		if x < 0 {
			x = 0
		}
		dst.DrawTextColored(x, cy, t.Value, t.Color)
	}
}
