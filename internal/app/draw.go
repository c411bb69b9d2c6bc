package app

import (
	"fmt"
	"image/color"

	"pacman/internal/entities"
	"pacman/internal/game"
	"pacman/internal/tilemap"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var (
	wallColor   = color.RGBA{R: 33, G: 33, B: 255, A: 255}
	doorColor   = color.RGBA{R: 0, G: 0, B: 80, A: 255}
	pelletColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	frightColor = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	eyeColor    = color.RGBA{R: 33, G: 33, B: 255, A: 255}
)

func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	m := a.sim.TileMap()
	nativeW := m.Width * m.TileSize
	nativeH := m.Height * m.TileSize
	off := ebiten.NewImage(nativeW, nativeH)

	a.drawMaze(off)
	a.drawPellets(off)
	a.drawPlayer(off)
	a.drawGhosts(off)
	a.drawHUD(off, nativeW, nativeH)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(a.scale, a.scale)
	screen.DrawImage(off, op)
}

func (a *App) drawMaze(dst *ebiten.Image) {
	m := a.sim.TileMap()
	ts := float32(m.TileSize)
	for row := 0; row < m.Height; row++ {
		for col := 0; col < m.Width; col++ {
			switch m.Tile(col, row) {
			case tilemap.TileWall:
				vector.DrawFilledRect(dst, float32(col)*ts, float32(row)*ts, ts, ts, wallColor, false)
			case tilemap.TileDoor:
				vector.DrawFilledRect(dst, float32(col)*ts, float32(row)*ts, ts, ts, doorColor, false)
			}
		}
	}
}

func (a *App) drawPellets(dst *ebiten.Image) {
	m := a.sim.TileMap()
	for _, c := range a.sim.Pellets() {
		x, y := m.CellCenter(c.Col, c.Row)
		vector.DrawFilledCircle(dst, float32(x), float32(y), float32(m.TileSize)/8, pelletColor, true)
	}
	for _, c := range a.sim.PowerPellets() {
		x, y := m.CellCenter(c.Col, c.Row)
		vector.DrawFilledCircle(dst, float32(x), float32(y), float32(m.TileSize)/3, pelletColor, true)
	}
}

func (a *App) drawPlayer(dst *ebiten.Image) {
	p := a.sim.Player()
	vector.DrawFilledCircle(dst, float32(p.X), float32(p.Y), float32(p.Radius), p.Color, true)
}

func (a *App) drawGhosts(dst *ebiten.Image) {
	for _, gh := range a.sim.Ghosts() {
		switch gh.Mode {
		case entities.GhostFrightened:
			// Flash blue/white at ~6 Hz while the power effect runs.
			c := frightColor
			if (a.tick/10)%2 == 1 {
				c = pelletColor
			}
			vector.DrawFilledCircle(dst, float32(gh.X), float32(gh.Y), float32(gh.Radius), c, true)
		case entities.GhostEyes:
			vector.DrawFilledCircle(dst, float32(gh.X), float32(gh.Y), float32(gh.Radius), pelletColor, true)
			vector.DrawFilledCircle(dst, float32(gh.X)-4, float32(gh.Y)-2, 3, eyeColor, true)
			vector.DrawFilledCircle(dst, float32(gh.X)+4, float32(gh.Y)-2, 3, eyeColor, true)
		default:
			vector.DrawFilledCircle(dst, float32(gh.X), float32(gh.Y), float32(gh.Radius), gh.Color, true)
		}
	}
}

func (a *App) drawHUD(dst *ebiten.Image, nativeW, nativeH int) {
	hud := fmt.Sprintf("Score: %d  High: %d  Lives: %d  Dots left: %d  FPS: %0.0f",
		a.sim.Score(), a.highScore, a.sim.Lives(), a.sim.RemainingPellets(), ebiten.ActualFPS())
	text.Draw(dst, hud, basicfont.Face7x13, 4, 12, color.White)

	if t := a.sim.Player().PowerTimer; t > 0 {
		msg := fmt.Sprintf("Power: %.1fs", t)
		text.Draw(dst, msg, basicfont.Face7x13, nativeW-len(msg)*7-4, nativeH-4, color.RGBA{R: 0, G: 255, B: 255, A: 255})
	}

	var banner string
	switch {
	case a.sim.Status() == game.StatusGameOver:
		banner = "Game Over! Press R to Restart or ESC to Quit"
	case a.sim.Status() == game.StatusWin:
		banner = "You Win! Press R to Restart or ESC to Quit"
	case a.paused:
		banner = "Paused"
	}
	if banner != "" {
		w := len(banner) * 7
		text.Draw(dst, banner, basicfont.Face7x13, (nativeW-w)/2, nativeH/2, color.White)
	}
}
