package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/dontescape/nav"
)

// Input samples the keyboard once per tick for the keyboard warden.
type Input struct {
	dir    nav.Direction
	action bool
	quit   bool
}

func NewInput() *Input {
	return &Input{}
}

func (i *Input) Update() {
	var dir nav.Direction
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		dir.Left()
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		dir.Right()
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		dir.Up()
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		dir.Down()
	}
	i.dir = dir
	i.action = inpututil.IsKeyJustPressed(ebiten.KeySpace)
	i.quit = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

func (i *Input) Direction() nav.Direction { return i.dir }

func (i *Input) ActionPressed() bool { return i.action }

func (i *Input) QuitPressed() bool { return i.quit }
