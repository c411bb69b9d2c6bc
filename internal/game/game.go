// Package game is the simulation core: the fixed-timestep world of
// one player, four ghosts, and the pellet sets, advanced tick by tick
// in a fixed order. It knows nothing about rendering or input; the
// app layer drives it through Advance, SetPlayerDirection and Reset
// and reads state back through the query methods.
package game

import (
	"image/color"
	"math/rand"
	"time"

	"pacman/internal/entities"
	"pacman/internal/tilemap"
)

// Status is the round's terminal-condition state. A terminal status
// freezes Advance until Reset is called.
type Status int

const (
	StatusPlaying Status = iota
	StatusGameOver
	StatusWin
)

type Game struct {
	tileMap *tilemap.TileMap
	player  *entities.Player
	ghosts  []*entities.Ghost
	dots    map[tilemap.Cell]struct{}
	power   map[tilemap.Cell]struct{}
	status  Status
	rng     *rand.Rand
}

// New builds a game on the compiled-in maze with a time-seeded RNG.
func New() *Game {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded builds a game whose random-behavior ghosts draw from a
// fixed seed, so runs are reproducible.
func NewSeeded(seed int64) *Game {
	return newGame(tilemap.NewDefaultMap(tileSize), rand.New(rand.NewSource(seed)))
}

func newGame(m *tilemap.TileMap, rng *rand.Rand) *Game {
	g := &Game{tileMap: m, rng: rng}
	g.Reset()
	return g
}

// Reset reconstructs the round wholesale: player at the start cell
// with fresh lives and score, pellet sets repopulated from the maze,
// and the fixed ghost roster respawned.
func (g *Game) Reset() {
	m := g.tileMap

	start := m.PlayerStart()
	px, py := m.CellCenter(start.Col, start.Row)
	g.player = &entities.Player{
		Entity: entities.Entity{
			X: px, Y: py,
			Radius: playerRadius,
			Color:  color.RGBA{R: 255, G: 221, B: 0, A: 255},
		},
		Lives: startLives,
	}

	g.dots = make(map[tilemap.Cell]struct{})
	for _, c := range m.PelletCells() {
		g.dots[c] = struct{}{}
	}
	g.power = make(map[tilemap.Cell]struct{})
	for _, c := range m.PowerCells() {
		g.power[c] = struct{}{}
	}

	g.ghosts = createGhosts(m)
	g.status = StatusPlaying
}

// createGhosts derives the roster from the maze's door cells: home is
// the door itself, spawn the cell just below it when open. A maze
// without doors gets a synthetic center pair.
func createGhosts(m *tilemap.TileMap) []*entities.Ghost {
	var homes, spawns []tilemap.Cell
	for _, d := range m.DoorCells() {
		homes = append(homes, d)
		below := tilemap.Cell{Col: d.Col, Row: d.Row + 1}
		if m.IsWallForEyes(below.Col, below.Row) {
			below = d
		}
		spawns = append(spawns, below)
	}
	if len(homes) == 0 {
		c := tilemap.Cell{Col: m.Width / 2, Row: m.Height / 2}
		if m.IsWallForEyes(c.Col, c.Row) {
			c = m.PlayerStart()
		}
		below := tilemap.Cell{Col: c.Col, Row: c.Row + 1}
		if m.IsWallForEyes(below.Col, below.Row) {
			below = c
		}
		homes = []tilemap.Cell{c}
		spawns = []tilemap.Cell{below}
	}

	defs := []struct {
		behavior entities.GhostBehavior
		color    color.RGBA
	}{
		{entities.BehaviorChase, color.RGBA{R: 255, G: 0, B: 0, A: 255}},
		{entities.BehaviorRandom, color.RGBA{R: 255, G: 105, B: 180, A: 255}},
		{entities.BehaviorChase, color.RGBA{R: 0, G: 255, B: 255, A: 255}},
		{entities.BehaviorRandom, color.RGBA{R: 255, G: 165, B: 0, A: 255}},
	}

	ghosts := make([]*entities.Ghost, 0, len(defs))
	for i, d := range defs {
		spawn := spawns[min(i, len(spawns)-1)]
		home := homes[min(i, len(homes)-1)]
		x, y := m.CellCenter(spawn.Col, spawn.Row)
		ghosts = append(ghosts, &entities.Ghost{
			Entity: entities.Entity{
				X: x, Y: y,
				Radius: ghostRadius,
				Color:  d.color,
			},
			Spawn:    spawn,
			Home:     home,
			Behavior: d.behavior,
		})
	}
	return ghosts
}

// SetPlayerDirection queues a directional intent; it takes effect the
// next time the player crosses a cell center.
func (g *Game) SetPlayerDirection(d entities.Direction) {
	g.player.DesiredDir = d
}

// Advance runs one simulation tick of dt seconds. The order is fixed:
// player motion, pellet consumption, mode broadcast, ghost motion,
// collision resolution, terminal check. Terminal states freeze the
// simulation; dt <= 0 is a no-op.
func (g *Game) Advance(dt float64) {
	if g.status != StatusPlaying || dt <= 0 {
		return
	}

	g.updatePlayer(dt)

	atePower := g.consumePellets()
	if atePower {
		for _, gh := range g.ghosts {
			gh.SetFrightened()
		}
	}
	if g.player.PowerTimer == 0 {
		for _, gh := range g.ghosts {
			if gh.Mode == entities.GhostFrightened {
				gh.Mode = entities.GhostNormal
			}
		}
	}

	for _, gh := range g.ghosts {
		g.updateGhost(gh, dt)
	}

	g.resolveCollisions()
	g.checkTerminal()
}

func (g *Game) checkTerminal() {
	if g.player.Lives <= 0 {
		g.status = StatusGameOver
		return
	}
	if len(g.dots)+len(g.power) == 0 {
		g.status = StatusWin
	}
}

// Queries for the rendering/HUD layer.

func (g *Game) TileMap() *tilemap.TileMap { return g.tileMap }
func (g *Game) Player() *entities.Player  { return g.player }
func (g *Game) Ghosts() []*entities.Ghost { return g.ghosts }
func (g *Game) Score() int                { return g.player.Score }
func (g *Game) Lives() int                { return g.player.Lives }
func (g *Game) Status() Status            { return g.status }
func (g *Game) RemainingPellets() int     { return len(g.dots) + len(g.power) }

// Pellets returns the cells still holding a standard pellet.
func (g *Game) Pellets() []tilemap.Cell {
	return cellSetToSlice(g.dots)
}

// PowerPellets returns the cells still holding a power pellet.
func (g *Game) PowerPellets() []tilemap.Cell {
	return cellSetToSlice(g.power)
}

func cellSetToSlice(set map[tilemap.Cell]struct{}) []tilemap.Cell {
	out := make([]tilemap.Cell, 0, len(set))
	for c := range set {
		out = append(out, c)
	}
	return out
}
