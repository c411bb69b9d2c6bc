// Package app is the ebiten front end: input mapping, drawing, HUD
// and sound. All game rules live in internal/game; this layer only
// feeds it intent and a fixed timestep, and draws what it reports.
package app

import (
	"math"

	"pacman/internal/entities"
	"pacman/internal/game"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const updatesPerSecond = 60

type App struct {
	sim   *game.Game
	audio *AudioManager

	scale      float64
	fullscreen bool
	paused     bool
	quit       bool
	tick       int

	highScore int // session best, in memory only
}

func New() *App {
	a := &App{
		sim:   game.New(),
		audio: NewAudioManager("assets/sounds"),
	}

	// Fit the native maze size into ~75% of the display.
	m := a.sim.TileMap()
	nativeW := m.Width * m.TileSize
	nativeH := m.Height * m.TileSize
	sw, sh := ebiten.ScreenSizeInFullscreen()
	fit := 0.75
	scaleW := float64(sw) * fit / float64(nativeW)
	scaleH := float64(sh) * fit / float64(nativeH)
	a.scale = math.Min(scaleW, scaleH)
	if a.scale <= 0 || math.IsNaN(a.scale) || math.IsInf(a.scale, 0) {
		a.scale = 1.0
	}
	return a
}

func (a *App) ScreenWidth() int {
	m := a.sim.TileMap()
	return int(float64(m.Width*m.TileSize) * a.scale)
}

func (a *App) ScreenHeight() int {
	m := a.sim.TileMap()
	return int(float64(m.Height*m.TileSize) * a.scale)
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.ScreenWidth(), a.ScreenHeight()
}

func (a *App) Update() error {
	a.tick++
	a.handleInput()
	if a.quit {
		return ebiten.Termination
	}
	if a.paused || a.sim.Status() != game.StatusPlaying {
		return nil
	}

	// Snapshot before the tick so sound cues can be derived from the
	// state diff without the core knowing about audio.
	dotsBefore := len(a.sim.Pellets())
	powerBefore := len(a.sim.PowerPellets())
	livesBefore := a.sim.Lives()
	scoreBefore := a.sim.Score()

	a.sim.Advance(1.0 / updatesPerSecond)

	if len(a.sim.PowerPellets()) < powerBefore {
		a.audio.PlayPowerPellet()
	} else if len(a.sim.Pellets()) < dotsBefore {
		a.audio.PlayPellet()
	}
	if a.sim.Lives() < livesBefore {
		a.audio.PlayDeath()
	} else if a.sim.Score()-scoreBefore >= 200 {
		a.audio.PlayGhostEaten()
	}

	if a.sim.Score() > a.highScore {
		a.highScore = a.sim.Score()
	}
	return nil
}

func (a *App) handleInput() {
	switch {
	case ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW):
		a.sim.SetPlayerDirection(entities.DirUp)
	case ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS):
		a.sim.SetPlayerDirection(entities.DirDown)
	case ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA):
		a.sim.SetPlayerDirection(entities.DirLeft)
	case ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD):
		a.sim.SetPlayerDirection(entities.DirRight)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		a.paused = !a.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		a.fullscreen = !a.fullscreen
		ebiten.SetFullscreen(a.fullscreen)
	}
	if a.sim.Status() != game.StatusPlaying && inpututil.IsKeyJustPressed(ebiten.KeyR) {
		a.sim.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		a.quit = true
	}
}
