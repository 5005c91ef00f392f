package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/dontescape/ecs"
	"github.com/milk9111/dontescape/ecs/component"
	"github.com/milk9111/dontescape/nav"
	"github.com/milk9111/dontescape/sim"
)

var (
	colorFloor      = color.RGBA{R: 28, G: 30, B: 36, A: 255}
	colorWall       = color.RGBA{R: 90, G: 94, B: 104, A: 255}
	colorDoorClosed = color.RGBA{R: 170, G: 60, B: 50, A: 255}
	colorDoorOpen   = color.RGBA{R: 60, G: 150, B: 80, A: 120}
	colorExit       = color.RGBA{R: 240, G: 220, B: 90, A: 255}
	colorWire       = color.RGBA{R: 80, G: 170, B: 220, A: 255}
	colorWireHurt   = color.RGBA{R: 230, G: 140, B: 40, A: 255}
	colorWireBroken = color.RGBA{R: 230, G: 40, B: 40, A: 255}
	colorWarden     = color.RGBA{R: 70, G: 110, B: 230, A: 255}
	colorPlayer     = color.RGBA{R: 140, G: 190, B: 255, A: 255}
	colorPrisoner   = color.RGBA{R: 240, G: 140, B: 50, A: 255}
	colorEscaped    = color.RGBA{R: 240, G: 140, B: 50, A: 80}
	colorPath       = color.RGBA{R: 240, G: 140, B: 50, A: 60}
)

// viewport maps cell coordinates to screen pixels.
type viewport struct {
	cellSize float64
	offsetX  float64
	offsetY  float64
}

// cellRect returns the top-left corner and size of the tile centred on c.
func (v viewport) cellRect(c nav.Cell) (x, y, size float32) {
	px, py := c.Position().Scaled(v.cellSize)
	half := v.cellSize / 2
	return float32(px - half + v.offsetX), float32(py - half + v.offsetY), float32(v.cellSize)
}

func (v viewport) point(p nav.Position) (float32, float32) {
	px, py := p.Scaled(v.cellSize)
	return float32(px + v.offsetX), float32(py + v.offsetY)
}

func drawWorld(screen *ebiten.Image, s *sim.Sim, v viewport) {
	w := s.World()

	ecs.ForEach2(w, component.ItemComponent.Kind(), component.FootprintComponent.Kind(), func(e ecs.Entity, kind *component.ItemKind, fp *component.Footprint) {
		clr := colorWall
		if *kind == component.ItemDoor {
			clr = colorDoorClosed
			if fp.Walkable {
				clr = colorDoorOpen
			}
		}
		for _, c := range fp.Cells() {
			x, y, size := v.cellRect(c)
			vector.DrawFilledRect(screen, x+1, y+1, size-2, size-2, clr, false)
		}
	})

	ecs.ForEach2(w, component.ExitTagComponent.Kind(), component.PositionComponent.Kind(), func(_ ecs.Entity, _ *component.ExitTag, pos *nav.Position) {
		x, y, size := v.cellRect(pos.NearestCell())
		vector.StrokeRect(screen, x+2, y+2, size-4, size-4, 2, colorExit, false)
	})

	ecs.ForEach2(w, component.WireComponent.Kind(), component.PositionComponent.Kind(), func(_ ecs.Entity, wire *component.Wire, pos *nav.Position) {
		clr := colorWire
		switch wire.State {
		case component.WireDamaged:
			clr = colorWireHurt
		case component.WireBroken:
			clr = colorWireBroken
		}
		x, y := v.point(*pos)
		r := float32(v.cellSize / 6)
		vector.DrawFilledRect(screen, x-r*2, y-r/2, r*4, r, clr, false)
	})

	radius := float32(v.cellSize * 0.35)

	ecs.ForEach2(w, component.PrisonerTagComponent.Kind(), component.PositionComponent.Kind(), func(e ecs.Entity, _ *component.PrisonerTag, pos *nav.Position) {
		if path, ok := ecs.Get(w, e, component.PathComponent.Kind()); ok {
			for _, c := range path.Cells()[path.Cursor():] {
				cx, cy := v.point(c.Position())
				vector.DrawFilledCircle(screen, cx, cy, 2, colorPath, false)
			}
		}
		clr := colorPrisoner
		if ecs.Has(w, e, component.EscapedComponent.Kind()) {
			clr = colorEscaped
		}
		x, y := v.point(*pos)
		vector.DrawFilledCircle(screen, x, y, radius, clr, true)
	})

	ecs.ForEach3(w, component.WardenTagComponent.Kind(), component.PositionComponent.Kind(), component.FacingComponent.Kind(), func(e ecs.Entity, _ *component.WardenTag, pos *nav.Position, facing *component.Facing) {
		clr := colorWarden
		if ecs.Has(w, e, component.KeyboardControlComponent.Kind()) {
			clr = colorPlayer
		}
		x, y := v.point(*pos)
		vector.DrawFilledCircle(screen, x, y, radius, clr, true)

		d := facing.Direction
		vector.StrokeLine(screen, x, y, x+float32(d.X())*radius, y+float32(d.Y())*radius, 2, colorFloor, true)
	})
}
