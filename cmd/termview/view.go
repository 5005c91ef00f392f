package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/dontescape/ecs"
	"github.com/milk9111/dontescape/ecs/component"
	"github.com/milk9111/dontescape/nav"
	"github.com/milk9111/dontescape/sim"
)

var (
	styleFloor      = tcell.StyleDefault.Foreground(tcell.NewHexColor(0x303030))
	styleWall       = tcell.StyleDefault.Foreground(tcell.NewHexColor(0x808080))
	styleDoorClosed = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleDoorOpen   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleExit       = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleWarden     = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	stylePlayer     = tcell.StyleDefault.Foreground(tcell.ColorLightGreen).Bold(true)
	stylePrisoner   = tcell.StyleDefault.Foreground(tcell.ColorOrange)
	styleEscaped    = tcell.StyleDefault.Foreground(tcell.NewHexColor(0x604020))
	styleHUD        = tcell.StyleDefault
)

var wireStyles = map[component.WireState]tcell.Style{
	component.WireIntact:  tcell.StyleDefault.Foreground(tcell.ColorAqua),
	component.WireDamaged: tcell.StyleDefault.Foreground(tcell.ColorOrange),
	component.WireBroken:  tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true),
}

// view draws one character per map cell with the last row kept for status.
type view struct {
	scr      tcell.Screen
	cellSize float64
}

// origin is the cell drawn at the top-left of the screen. Levels that fit are
// pinned to their bounds; larger ones follow the camera.
func (v *view) origin(s *sim.Sim, width, height int) nav.Cell {
	lo, hi, ok := s.Map().Bounds()
	if !ok {
		return nav.Cell{}
	}
	if hi.X-lo.X < width && hi.Y-lo.Y < height {
		return lo
	}
	camX, camY, ok := s.Camera()
	if !ok {
		return lo
	}
	centre := nav.Position{X: camX / v.cellSize, Y: camY / v.cellSize}.NearestCell()
	return nav.Cell{X: centre.X - width/2, Y: centre.Y - height/2}
}

func (v *view) draw(s *sim.Sim) {
	v.scr.Clear()
	width, height := v.scr.Size()
	mapHeight := height - 1
	if mapHeight <= 0 {
		return
	}
	org := v.origin(s, width, mapHeight)

	put := func(c nav.Cell, ch rune, style tcell.Style) {
		x, y := c.X-org.X, c.Y-org.Y
		if x < 0 || y < 0 || x >= width || y >= mapHeight {
			return
		}
		v.scr.SetContent(x, y, ch, nil, style)
	}

	for y := 0; y < mapHeight; y++ {
		for x := 0; x < width; x++ {
			c := nav.Cell{X: x + org.X, Y: y + org.Y}
			if s.Map().IsWalkable(c) {
				put(c, '.', styleFloor)
			}
		}
	}

	w := s.World()
	ecs.ForEach2(w, component.ItemComponent.Kind(), component.FootprintComponent.Kind(), func(_ ecs.Entity, kind *component.ItemKind, fp *component.Footprint) {
		ch, style := '#', styleWall
		if *kind == component.ItemDoor {
			ch, style = '+', styleDoorClosed
			if fp.Walkable {
				ch, style = '/', styleDoorOpen
			}
		}
		for _, c := range fp.Cells() {
			put(c, ch, style)
		}
	})

	ecs.ForEach2(w, component.ExitTagComponent.Kind(), component.PositionComponent.Kind(), func(_ ecs.Entity, _ *component.ExitTag, pos *nav.Position) {
		put(pos.NearestCell(), 'E', styleExit)
	})

	ecs.ForEach2(w, component.WireComponent.Kind(), component.PositionComponent.Kind(), func(_ ecs.Entity, wire *component.Wire, pos *nav.Position) {
		put(pos.NearestCell(), '~', wireStyles[wire.State])
	})

	ecs.ForEach2(w, component.PrisonerTagComponent.Kind(), component.PositionComponent.Kind(), func(e ecs.Entity, _ *component.PrisonerTag, pos *nav.Position) {
		if ecs.Has(w, e, component.EscapedComponent.Kind()) {
			put(pos.NearestCell(), 'x', styleEscaped)
			return
		}
		put(pos.NearestCell(), 'p', stylePrisoner)
	})

	ecs.ForEach2(w, component.WardenTagComponent.Kind(), component.PositionComponent.Kind(), func(e ecs.Entity, _ *component.WardenTag, pos *nav.Position) {
		if ecs.Has(w, e, component.KeyboardControlComponent.Kind()) {
			put(pos.NearestCell(), '@', stylePlayer)
			return
		}
		put(pos.NearestCell(), 'W', styleWarden)
	})

	status := fmt.Sprintf("tick %d  escaped %d/%d  caught %d  [wasd/arrows move, space act, esc quit]",
		s.Tick(), s.Escaped(), s.Summary().Prisoners, s.Captured())
	for i, r := range status {
		if i >= width {
			break
		}
		v.scr.SetContent(i, height-1, r, nil, styleHUD)
	}
}
