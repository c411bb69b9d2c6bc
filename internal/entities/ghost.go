package entities

import "pacman/internal/tilemap"

type GhostMode int

const (
	GhostNormal GhostMode = iota
	GhostFrightened
	GhostEyes
)

// GhostBehavior selects the normal-mode steering heuristic. It is
// fixed per ghost at creation.
type GhostBehavior int

const (
	BehaviorChase GhostBehavior = iota
	BehaviorRandom
)

type Ghost struct {
	Entity
	Spawn    tilemap.Cell // respawn point after capture or life loss
	Home     tilemap.Cell // eyes-mode return target
	Mode     GhostMode
	Behavior GhostBehavior
}

// SetFrightened flips the ghost into frightened mode unless it is
// already returning home as eyes.
func (g *Ghost) SetFrightened() {
	if g.Mode != GhostEyes {
		g.Mode = GhostFrightened
	}
}
