package game

import (
	"pacman/internal/entities"
)

// consumePellets removes any pellet on the player's current cell and
// applies its score. A power pellet also (re)arms the power timer;
// the frightened broadcast this triggers is handled by the caller so
// the tick order stays in one place. Returns whether a power pellet
// was eaten.
func (g *Game) consumePellets() bool {
	p := g.player
	cell := g.tileMap.CellAt(p.X, p.Y)

	if _, ok := g.dots[cell]; ok {
		delete(g.dots, cell)
		p.Score += dotScore
	}
	if _, ok := g.power[cell]; ok {
		delete(g.power, cell)
		p.Score += powerScore
		p.PowerTimer = powerDuration // refresh, never stack
		return true
	}
	return false
}

// resolveCollisions tests the player's box against every ghost's box.
// All frightened captures are applied first; then at most one
// life-loss from the remaining normal-mode overlaps, since the global
// reset it triggers makes further overlaps moot.
func (g *Game) resolveCollisions() {
	p := g.player

	for _, gh := range g.ghosts {
		if gh.Mode == entities.GhostFrightened && p.Overlaps(&gh.Entity) {
			gh.Mode = entities.GhostEyes
			p.Score += ghostScore
		}
	}

	for _, gh := range g.ghosts {
		if gh.Mode == entities.GhostNormal && p.Overlaps(&gh.Entity) {
			p.Lives--
			g.resetPositions()
			return
		}
	}
}

// resetPositions is the life-loss reset: everyone back to spawn with
// direction cleared, all ghosts normal, power effect cancelled. The
// pellet sets and score are untouched.
func (g *Game) resetPositions() {
	p := g.player
	start := g.tileMap.PlayerStart()
	p.X, p.Y = g.tileMap.CellCenter(start.Col, start.Row)
	p.CurrentDir = entities.DirNone
	p.DesiredDir = entities.DirNone
	p.PowerTimer = 0

	for _, gh := range g.ghosts {
		gh.X, gh.Y = g.tileMap.CellCenter(gh.Spawn.Col, gh.Spawn.Row)
		gh.CurrentDir = entities.DirNone
		gh.Mode = entities.GhostNormal
	}
}
