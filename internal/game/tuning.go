package game

// Gameplay tuning. Speeds are pixels per second at the 16 px tile
// scale; timers are seconds.
const (
	tileSize = 16

	playerSpeed     = 100.0
	ghostSpeed      = 90.0
	frightenedSpeed = 70.0
	eyesSpeed       = ghostSpeed + 30.0

	powerDuration = 7.0

	dotScore   = 10
	powerScore = 50
	ghostScore = 200

	startLives = 3

	playerRadius = float64(tileSize)/2 - 2
	ghostRadius  = float64(tileSize)/2 - 3

	// Direction changes are only allowed this close to a cell center.
	// Must stay at or above the largest per-tick displacement so an
	// approaching entity always lands inside the window before the
	// center at 60 ticks/s.
	centerTolerance = 2.0
)
