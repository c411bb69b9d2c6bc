package game

import (
	"math"

	"pacman/internal/entities"
	"pacman/internal/tilemap"
)

// updatePlayer advances the player one tick: take the queued turn if
// crossing a cell center, then move in the current direction with
// per-axis wall resolution, then decay the power timer.
func (g *Game) updatePlayer(dt float64) {
	p := g.player
	cell := g.tileMap.CellAt(p.X, p.Y)
	cx, cy := g.tileMap.CellCenter(cell.Col, cell.Row)
	if atDecisionPoint(&p.Entity, cx, cy) {
		// Snap exactly to center so sub-pixel drift never accumulates.
		p.X, p.Y = cx, cy
		p.CurrentDir = g.tryTurn(cell, p.DesiredDir)
	}

	g.moveEntity(&p.Entity, playerSpeed*dt, g.tileMap.IsWall, false)

	if p.PowerTimer > 0 {
		p.PowerTimer = math.Max(0, p.PowerTimer-dt)
	}
}

// atDecisionPoint reports whether the entity should take its per-cell
// direction decision this tick: inside the center window and either
// stopped or still heading toward the center. An entity that decided
// and moved off the center is heading away, so the window it is still
// standing in does not re-trigger and drag it back; the decision fires
// once per center crossing. A stopped entity keeps deciding, so a
// newly requested direction takes effect in place.
func atDecisionPoint(e *entities.Entity, cx, cy float64) bool {
	if math.Abs(e.X-cx) > centerTolerance || math.Abs(e.Y-cy) > centerTolerance {
		return false
	}
	dx, dy := entities.DirDelta(e.CurrentDir)
	return float64(dx)*(cx-e.X)+float64(dy)*(cy-e.Y) >= 0
}

// tryTurn resolves a queued direction at a cell center: the turn is
// taken only if the destination cell is open, otherwise the player
// stops until an open direction is requested.
func (g *Game) tryTurn(cell tilemap.Cell, want entities.Direction) entities.Direction {
	if want == entities.DirNone {
		return entities.DirNone
	}
	dx, dy := entities.DirDelta(want)
	if g.tileMap.IsWall(cell.Col+dx, cell.Row+dy) {
		return entities.DirNone
	}
	return want
}

// moveEntity is the shared motion controller: displace along x, revert
// if the collision box now overlaps a blocking tile, then the same for
// y. Resolving one axis at a time lets an entity slide along a wall
// instead of stopping dead on a corner clip. Ghosts pass
// clearDirOnBlock so a rejected axis forces a fresh decision next
// tick; the player keeps its direction and re-decides at centers.
func (g *Game) moveEntity(e *entities.Entity, dist float64, blocking func(int, int) bool, clearDirOnBlock bool) {
	dx, dy := entities.DirDelta(e.CurrentDir)

	stepX := float64(dx) * dist
	e.X += stepX
	if g.hitsBlocking(e, blocking) {
		e.X -= stepX
		if clearDirOnBlock {
			e.CurrentDir = entities.DirNone
		}
	}

	stepY := float64(dy) * dist
	e.Y += stepY
	if g.hitsBlocking(e, blocking) {
		e.Y -= stepY
		if clearDirOnBlock {
			e.CurrentDir = entities.DirNone
		}
	}
}

// hitsBlocking tests the entity's collision box against the tile
// rectangles of every blocking cell it spans.
func (g *Game) hitsBlocking(e *entities.Entity, blocking func(int, int) bool) bool {
	minX, minY, maxX, maxY := e.Bounds()
	ts := g.tileMap.TileSize

	left := clamp(int(math.Floor(minX))/ts, 0, g.tileMap.Width-1)
	right := clamp(int(math.Ceil(maxX)-1)/ts, 0, g.tileMap.Width-1)
	top := clamp(int(math.Floor(minY))/ts, 0, g.tileMap.Height-1)
	bottom := clamp(int(math.Ceil(maxY)-1)/ts, 0, g.tileMap.Height-1)

	for row := top; row <= bottom; row++ {
		for col := left; col <= right; col++ {
			if !blocking(col, row) {
				continue
			}
			tx, ty := float64(col*ts), float64(row*ts)
			if minX < tx+float64(ts) && maxX > tx && minY < ty+float64(ts) && maxY > ty {
				return true
			}
		}
	}
	return false
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
