package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/road-racer/internal/core"
)

var field = Viewport{MinX: -675, MaxX: 675, MinY: -360, MaxY: 360}

func TestViewportProjectCorners(t *testing.T) {
	tests := []struct {
		name string
		p    core.Vec2
		col  int
		row  int
	}{
		{"top-left", core.NewVec2(-675, 360), 0, 0},
		{"bottom-right", core.NewVec2(675, -360), 79, 23},
		{"center", core.NewVec2(0, 0), 40, 12},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			col, row := field.Project(tc.p, 80, 24)
			assert.Equal(t, tc.col, col)
			assert.Equal(t, tc.row, row)
		})
	}
}

func TestRenderLayersAndTexts(t *testing.T) {
	g := NewGame[struct{}]()
	hole := g.AddSprite("obstacle0", kindB, RollingHoleStart)
	hole.Layer = 2
	car := g.AddSprite("car0", kindB, RacingCarRed)
	car.Layer = 5
	txt := g.AddText("health", "Health: 5")
	txt.Translation = core.NewVec2(550, 320)

	screen := core.NewScreen(80, 24)
	g.Engine().Render(screen, field)

	// The car is drawn over the hole at the same position.
	col, row := field.Project(core.NewVec2(0, 0), 80, 24)
	cell := screen.GetCell(col, row)
	assert.Equal(t, '█', cell.Rune)
	assert.Equal(t, core.ColorRed, cell.Color)

	// Text near the right edge is shifted to stay on screen.
	_, textRow := field.Project(txt.Translation, 80, 24)
	assert.Contains(t, screen.Row(textRow), "Health: 5")
}

func TestRenderTinyScreenIsNoop(t *testing.T) {
	g := NewGame[struct{}]()
	g.AddSprite("car0", kindB, RacingCarRed)

	screen := core.NewScreen(1, 1)
	assert.NotPanics(t, func() { g.Engine().Render(screen, field) })
	assert.Equal(t, ' ', screen.Get(0, 0))
}

func TestRenderSkipsOffscreenSprites(t *testing.T) {
	g := NewGame[struct{}]()
	waiting := g.AddSprite("car0", kindB, RacingCarRed)
	waiting.Translation = core.NewVec2(1500, 0)
	edge := g.AddSprite("car1", kindB, RacingCarGreen)
	edge.Translation = core.NewVec2(675, 0)

	screen := core.NewScreen(80, 24)
	g.Engine().Render(screen, field)

	_, row := field.Project(core.NewVec2(0, 0), 80, 24)
	assert.Equal(t, core.ColorGreen, screen.GetCell(79, row).Color, "half visible sprite is clipped, not skipped")

	for y := 0; y < screen.Height(); y++ {
		for x := 0; x < screen.Width(); x++ {
			assert.NotEqual(t, core.ColorRed, screen.GetCell(x, y).Color, "car waiting in the spawn band drawn at (%d, %d)", x, y)
		}
	}
}
