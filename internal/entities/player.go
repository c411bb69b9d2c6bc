package entities

type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// CandidateDirs is the fixed iteration order for direction decisions;
// heuristic ties break toward the earlier entry.
var CandidateDirs = [4]Direction{DirRight, DirLeft, DirDown, DirUp}

func DirDelta(d Direction) (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

func Reverse(d Direction) Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return DirNone
	}
}

type Player struct {
	Entity
	DesiredDir Direction // queued input intent, applied at cell centers
	Lives      int
	Score      int
	PowerTimer float64 // seconds of power-pellet effect remaining
}
