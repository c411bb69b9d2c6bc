package game

import (
	"math"

	"pacman/internal/entities"
	"pacman/internal/tilemap"
)

// updateGhost advances one ghost for the tick. Eyes mode bypasses the
// cell-center decision rule entirely: it re-steers greedily toward
// home every tick and may pass through doors.
func (g *Game) updateGhost(gh *entities.Ghost, dt float64) {
	if gh.Mode == entities.GhostEyes {
		g.updateEyes(gh, dt)
		return
	}

	cell := g.tileMap.CellAt(gh.X, gh.Y)
	cx, cy := g.tileMap.CellCenter(cell.Col, cell.Row)
	if atDecisionPoint(&gh.Entity, cx, cy) {
		gh.X, gh.Y = cx, cy
		gh.CurrentDir = g.chooseGhostDir(gh, cell)
	}

	speed := ghostSpeed
	if gh.Mode == entities.GhostFrightened {
		speed = frightenedSpeed
	}
	g.moveEntity(&gh.Entity, speed*dt, g.tileMap.IsWall, true)
}

// updateEyes paths the ghost back to its home cell. Home arrival is
// checked before moving, so a ghost that reached home last tick
// respawns at the start of this one and is never observed in two
// spawn states within a single tick.
func (g *Game) updateEyes(gh *entities.Ghost, dt float64) {
	cell := g.tileMap.CellAt(gh.X, gh.Y)
	if cell == gh.Home {
		gh.X, gh.Y = g.tileMap.CellCenter(gh.Spawn.Col, gh.Spawn.Row)
		gh.CurrentDir = entities.DirNone
		gh.Mode = entities.GhostNormal
		return
	}

	best := entities.DirNone
	bestDist := math.MaxInt
	for _, d := range entities.CandidateDirs {
		dx, dy := entities.DirDelta(d)
		nc, nr := cell.Col+dx, cell.Row+dy
		if g.tileMap.IsWallForEyes(nc, nr) {
			continue
		}
		dist := distSq(tilemap.Cell{Col: nc, Row: nr}, gh.Home)
		if dist < bestDist {
			bestDist = dist
			best = d
		}
	}
	gh.CurrentDir = best

	g.moveEntity(&gh.Entity, eyesSpeed*dt, g.tileMap.IsWallForEyes, true)
}

// chooseGhostDir builds the open candidate directions, excluding the
// reverse of the current direction unless nothing else is open yet,
// and picks one with the mode heuristic: frightened flees the player,
// chase closes on it, random draws from the injected RNG. Ties break
// by candidate order.
func (g *Game) chooseGhostDir(gh *entities.Ghost, cell tilemap.Cell) entities.Direction {
	rev := entities.Reverse(gh.CurrentDir)
	options := make([]entities.Direction, 0, 4)
	for _, d := range entities.CandidateDirs {
		dx, dy := entities.DirDelta(d)
		if g.tileMap.IsWall(cell.Col+dx, cell.Row+dy) {
			continue
		}
		if d == rev {
			continue
		}
		options = append(options, d)
	}
	if len(options) == 0 {
		// Dead end: reversing is the only way out.
		if dx, dy := entities.DirDelta(rev); rev != entities.DirNone && !g.tileMap.IsWall(cell.Col+dx, cell.Row+dy) {
			return rev
		}
		return entities.DirNone
	}

	playerCell := g.tileMap.CellAt(g.player.X, g.player.Y)

	if gh.Mode == entities.GhostFrightened {
		return pickByDist(cell, playerCell, options, false)
	}
	switch gh.Behavior {
	case entities.BehaviorRandom:
		return options[g.rng.Intn(len(options))]
	default:
		return pickByDist(cell, playerCell, options, true)
	}
}

// pickByDist chooses the candidate whose destination cell minimizes
// (or maximizes) squared distance to the target cell.
func pickByDist(from, target tilemap.Cell, options []entities.Direction, minimize bool) entities.Direction {
	best := options[0]
	bestDist := math.MinInt
	if minimize {
		bestDist = math.MaxInt
	}
	for _, d := range options {
		dx, dy := entities.DirDelta(d)
		dist := distSq(tilemap.Cell{Col: from.Col + dx, Row: from.Row + dy}, target)
		if (minimize && dist < bestDist) || (!minimize && dist > bestDist) {
			bestDist = dist
			best = d
		}
	}
	return best
}

func distSq(a, b tilemap.Cell) int {
	dc := a.Col - b.Col
	dr := a.Row - b.Row
	return dc*dc + dr*dr
}
