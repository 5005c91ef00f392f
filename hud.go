package main

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/dontescape/ecs"
	"github.com/milk9111/dontescape/ecs/component"
	"github.com/milk9111/dontescape/sim"
	"golang.org/x/image/font/gofont/gomono"
)

const hudFontSize = 14

type hud struct {
	face *text.GoTextFace
}

func newHUD() (*hud, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return nil, fmt.Errorf("hud: load font: %w", err)
	}
	return &hud{face: &text.GoTextFace{Source: src, Size: hudFontSize}}, nil
}

func (h *hud) Draw(screen *ebiten.Image, s *sim.Sim) {
	broken := 0
	ecs.ForEach(s.World(), component.WireComponent.Kind(), func(_ ecs.Entity, wire *component.Wire) {
		if wire.State == component.WireBroken {
			broken++
		}
	})

	lines := []string{
		fmt.Sprintf("tick %d  fps %.0f", s.Tick(), ebiten.ActualFPS()),
		fmt.Sprintf("escaped %d/%d  caught %d", s.Escaped(), s.Summary().Prisoners, s.Captured()),
	}
	if broken > 0 {
		lines = append(lines, fmt.Sprintf("%d wire(s) broken: doors forced open", broken))
	}

	lineHeight := h.face.Size * 1.4
	for i, line := range lines {
		op := &text.DrawOptions{}
		op.GeoM.Translate(8, 8+float64(i)*lineHeight)
		op.ColorScale.ScaleWithColor(color.White)
		text.Draw(screen, line, h.face, op)
	}
}
