package entities

import "image/color"

// Entity is the shared movable-agent state: a continuous position, a
// current direction, and a square collision footprint. The discrete
// grid cell is always derived from X/Y, never stored.
type Entity struct {
	X, Y       float64
	Radius     float64
	CurrentDir Direction
	Color      color.RGBA // carried for the drawing layer only
}

// Bounds returns the axis-aligned collision box, a square of side
// 2*Radius centered on the position.
func (e *Entity) Bounds() (minX, minY, maxX, maxY float64) {
	return e.X - e.Radius, e.Y - e.Radius, e.X + e.Radius, e.Y + e.Radius
}

// Overlaps reports whether the collision boxes of two entities
// intersect.
func (e *Entity) Overlaps(o *Entity) bool {
	aMinX, aMinY, aMaxX, aMaxY := e.Bounds()
	bMinX, bMinY, bMaxX, bMaxY := o.Bounds()
	return aMinX < bMaxX && aMaxX > bMinX && aMinY < bMaxY && aMaxY > bMinY
}
