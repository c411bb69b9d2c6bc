package main

import (
	"log"

	"pacman/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	a := app.New()
	ebiten.SetWindowTitle("Pacman (Go + Ebiten)")
	ebiten.SetWindowSize(a.ScreenWidth(), a.ScreenHeight())
	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}
}
