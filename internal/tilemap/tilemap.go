// Package tilemap holds the static maze grid: a rectangular table of
// tile kinds parsed from a character legend, immutable after load.
// All queries are O(1); out-of-bounds coordinates always read as wall.
package tilemap

import (
	"fmt"
)

type Tile int

const (
	TileCorridor Tile = iota // bare corridor, no pellet
	TileWall
	TileDot   // corridor with a standard pellet
	TilePower // corridor with a power pellet
	TileDoor  // ghost-house door: wall for everyone except eyes
)

// Cell is a discrete grid coordinate.
type Cell struct {
	Col, Row int
}

type TileMap struct {
	Width    int
	Height   int
	TileSize int
	tiles    [][]Tile
	start    Cell
}

// Maze legend:
//
//	'1' wall, '0' corridor, '2' dot, '3' power pellet, 'H' door
func parseTile(ch byte) (Tile, error) {
	switch ch {
	case '1':
		return TileWall, nil
	case '0':
		return TileCorridor, nil
	case '2':
		return TileDot, nil
	case '3':
		return TilePower, nil
	case 'H':
		return TileDoor, nil
	default:
		return TileWall, fmt.Errorf("unknown maze character %q", ch)
	}
}

// New parses and validates a maze definition. It rejects empty or
// non-rectangular input, unknown characters, a border that is not
// entirely wall, and layouts where any corridor or door cell is
// unreachable from the player start cell (doors count as passable
// for the reachability walk, as they do for returning ghosts).
func New(lines []string, tileSize int) (*TileMap, error) {
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, fmt.Errorf("empty maze definition")
	}
	if tileSize <= 0 {
		return nil, fmt.Errorf("tile size must be positive, got %d", tileSize)
	}
	h := len(lines)
	w := len(lines[0])
	tiles := make([][]Tile, h)
	for y, line := range lines {
		if len(line) != w {
			return nil, fmt.Errorf("maze row %d has %d cells, want %d", y, len(line), w)
		}
		tiles[y] = make([]Tile, w)
		for x := 0; x < w; x++ {
			t, err := parseTile(line[x])
			if err != nil {
				return nil, fmt.Errorf("maze row %d col %d: %w", y, x, err)
			}
			tiles[y][x] = t
		}
	}

	m := &TileMap{Width: w, Height: h, TileSize: tileSize, tiles: tiles}

	for x := 0; x < w; x++ {
		if tiles[0][x] != TileWall || tiles[h-1][x] != TileWall {
			return nil, fmt.Errorf("maze border is open at column %d", x)
		}
	}
	for y := 0; y < h; y++ {
		if tiles[y][0] != TileWall || tiles[y][w-1] != TileWall {
			return nil, fmt.Errorf("maze border is open at row %d", y)
		}
	}

	start, ok := m.findPlayerStart()
	if !ok {
		return nil, fmt.Errorf("maze has no corridor cell for the player start")
	}
	m.start = start

	if err := m.checkConnectivity(); err != nil {
		return nil, err
	}
	return m, nil
}

// NewDefaultMap builds the compiled-in maze. The shipped table is
// known-valid, so a failure here is a programming error.
func NewDefaultMap(tileSize int) *TileMap {
	m, err := New(defaultMaze, tileSize)
	if err != nil {
		panic("tilemap: default maze is invalid: " + err.Error())
	}
	return m
}

// findPlayerStart scans the second-to-last row from the center
// leftwards for a corridor cell.
func (m *TileMap) findPlayerStart() (Cell, bool) {
	row := m.Height - 2
	for d := 0; d < m.Width; d++ {
		col := m.Width/2 - d
		if col < 1 {
			break
		}
		if !m.IsWall(col, row) {
			return Cell{Col: col, Row: row}, true
		}
	}
	return Cell{}, false
}

// checkConnectivity walks the maze from the player start, treating
// doors as passable, and fails if any corridor or door cell is left
// unvisited.
func (m *TileMap) checkConnectivity() error {
	seen := make([][]bool, m.Height)
	for y := range seen {
		seen[y] = make([]bool, m.Width)
	}
	queue := []Cell{m.start}
	seen[m.start.Row][m.start.Col] = true
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		for _, d := range [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
			nc, nr := c.Col+d[0], c.Row+d[1]
			if m.IsWallForEyes(nc, nr) || seen[nr][nc] {
				continue
			}
			seen[nr][nc] = true
			queue = append(queue, Cell{Col: nc, Row: nr})
		}
	}
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if m.tiles[y][x] != TileWall && !seen[y][x] {
				return fmt.Errorf("maze cell (%d,%d) is unreachable from the player start", x, y)
			}
		}
	}
	return nil
}

func (m *TileMap) InBounds(col, row int) bool {
	return col >= 0 && col < m.Width && row >= 0 && row < m.Height
}

// Tile returns the tile kind at a cell; out of bounds reads as wall.
func (m *TileMap) Tile(col, row int) Tile {
	if !m.InBounds(col, row) {
		return TileWall
	}
	return m.tiles[row][col]
}

// IsWall reports whether a cell blocks normal movement. Doors block
// everyone except eyes; out of bounds always blocks.
func (m *TileMap) IsWall(col, row int) bool {
	t := m.Tile(col, row)
	return t == TileWall || t == TileDoor
}

// IsWallForEyes reports whether a cell blocks a returning (eyes-mode)
// ghost, which may pass through doors.
func (m *TileMap) IsWallForEyes(col, row int) bool {
	return m.Tile(col, row) == TileWall
}

// IsDoor reports whether a cell is a ghost-house door.
func (m *TileMap) IsDoor(col, row int) bool {
	return m.Tile(col, row) == TileDoor
}

// Neighbors returns the up-to-4 axis-adjacent corridor cells, doors
// excluded, for normal pathing.
func (m *TileMap) Neighbors(col, row int) []Cell {
	out := make([]Cell, 0, 4)
	for _, d := range [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
		nc, nr := col+d[0], row+d[1]
		if !m.IsWall(nc, nr) {
			out = append(out, Cell{Col: nc, Row: nr})
		}
	}
	return out
}

// PelletCells returns every cell marked with a standard pellet.
func (m *TileMap) PelletCells() []Cell {
	return m.cellsOf(TileDot)
}

// PowerCells returns every cell marked with a power pellet.
func (m *TileMap) PowerCells() []Cell {
	return m.cellsOf(TilePower)
}

// DoorCells returns every ghost-house door cell in scan order.
func (m *TileMap) DoorCells() []Cell {
	return m.cellsOf(TileDoor)
}

func (m *TileMap) cellsOf(t Tile) []Cell {
	var out []Cell
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if m.tiles[y][x] == t {
				out = append(out, Cell{Col: x, Row: y})
			}
		}
	}
	return out
}

// PlayerStart returns the fixed player start cell.
func (m *TileMap) PlayerStart() Cell {
	return m.start
}

// CellCenter returns the continuous coordinates of a cell's center.
func (m *TileMap) CellCenter(col, row int) (float64, float64) {
	return float64(col*m.TileSize + m.TileSize/2), float64(row*m.TileSize + m.TileSize/2)
}

// CellAt derives the discrete cell containing a continuous position.
func (m *TileMap) CellAt(x, y float64) Cell {
	return Cell{Col: int(x) / m.TileSize, Row: int(y) / m.TileSize}
}
