package game

import (
	"testing"

	"pacman/internal/entities"
)

func TestPlayerStopsWhenDesiredDirectionBlocked(t *testing.T) {
	g := NewSeeded(1)
	g.ghosts = nil
	start := g.tileMap.PlayerStart()
	if !g.tileMap.IsWall(start.Col, start.Row-1) {
		t.Fatalf("test assumes a wall above the start cell %v", start)
	}

	g.SetPlayerDirection(entities.DirUp)
	cx, cy := g.tileMap.CellCenter(start.Col, start.Row)
	for i := 0; i < 30; i++ {
		g.Advance(dt)
	}
	if g.player.X != cx || g.player.Y != cy {
		t.Fatalf("player drifted to (%v,%v), want pinned at (%v,%v)", g.player.X, g.player.Y, cx, cy)
	}
	if g.player.CurrentDir != entities.DirNone {
		t.Fatalf("current direction = %v, want none against a wall", g.player.CurrentDir)
	}
}

func TestPlayerTravelsCorridorAndStopsAtWall(t *testing.T) {
	g := NewSeeded(1)
	g.ghosts = nil
	start := g.tileMap.PlayerStart() // bottom corridor, dots to the right end

	g.SetPlayerDirection(entities.DirRight)
	for i := 0; i < 150; i++ {
		g.Advance(dt)
	}

	// Twelve dots from the start cell to col 25, then the corner power
	// pellet, then the border wall.
	if got := cellOf(g, &g.player.Entity); got.Col != 26 || got.Row != start.Row {
		t.Fatalf("player ended at %v, want col 26 of the start row", got)
	}
	cx, cy := g.tileMap.CellCenter(26, start.Row)
	if g.player.X != cx || g.player.Y != cy {
		t.Fatalf("player at (%v,%v), want snapped to the last open center (%v,%v)", g.player.X, g.player.Y, cx, cy)
	}
	if g.player.CurrentDir != entities.DirNone {
		t.Fatalf("current direction = %v at the wall, want none", g.player.CurrentDir)
	}
	want := 12*dotScore + powerScore
	if g.Score() != want {
		t.Fatalf("score = %d after the corridor run, want %d", g.Score(), want)
	}
	if g.player.PowerTimer <= 0 {
		t.Fatal("power timer should still be running after the corner pellet")
	}
}

func TestPlayerAdvancesThroughCellCenters(t *testing.T) {
	g := NewSeeded(1)
	g.ghosts = nil
	start := g.tileMap.PlayerStart()

	// Each tick must make forward progress, including the ticks spent
	// inside a center window: the snap there must not drag the player
	// back and pin it to the center it just left.
	g.SetPlayerDirection(entities.DirRight)
	prev := g.player.X
	for i := 0; i < 60; i++ {
		g.Advance(dt)
		if g.player.X <= prev {
			t.Fatalf("tick %d: x stalled at %v", i, g.player.X)
		}
		prev = g.player.X
	}
	if got := cellOf(g, &g.player.Entity); got.Col < start.Col+4 {
		t.Fatalf("player only reached %v after one second of travel", got)
	}
}

func TestPlayerTurnsAtCenterOntoOpenCell(t *testing.T) {
	g := NewSeeded(1)
	g.ghosts = nil
	start := g.tileMap.PlayerStart()
	if g.tileMap.IsWall(start.Col-1, start.Row) {
		t.Fatalf("test assumes an open cell left of start %v", start)
	}

	g.SetPlayerDirection(entities.DirLeft)
	g.Advance(dt)
	if g.player.CurrentDir != entities.DirLeft {
		t.Fatalf("current direction = %v, want the queued left turn", g.player.CurrentDir)
	}
	cx, _ := g.tileMap.CellCenter(start.Col, start.Row)
	if g.player.X >= cx {
		t.Fatalf("player x = %v, want movement left of the start center %v", g.player.X, cx)
	}
}
