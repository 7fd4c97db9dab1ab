package geom

import (
	"fmt"
	"math"

	"github.com/geocore/vecgeo/r2"
)

// Coordinate is an immutable-by-convention 2D (optionally 3D) point.
// Equality is bitwise on X and Y (NaN is never equal to anything, including
// itself) — spec §3.
type Coordinate struct {
	X, Y float64
	Z    float64 // NaN when the coordinate carries no Z value.
}

// NewCoordinate returns a 2D coordinate with no Z value.
func NewCoordinate(x, y float64) Coordinate {
	return Coordinate{X: x, Y: y, Z: math.NaN()}
}

// NewCoordinateXYZ returns a 3D coordinate.
func NewCoordinateXYZ(x, y, z float64) Coordinate {
	return Coordinate{X: x, Y: y, Z: z}
}

// Vector returns the coordinate's (X, Y) as an r2.Vector, the shared 2-D
// building block used throughout this module.
func (c Coordinate) Vector() r2.Vector { return r2.Vector{X: c.X, Y: c.Y} }

// FromVector returns a Coordinate built from an r2.Vector (no Z).
func FromVector(v r2.Vector) Coordinate { return NewCoordinate(v.X, v.Y) }

// HasZ reports whether the coordinate carries a Z ordinate.
func (c Coordinate) HasZ() bool { return !math.IsNaN(c.Z) }

// Equals2D reports bitwise equality of X and Y only (Z ignored).
func (c Coordinate) Equals2D(o Coordinate) bool {
	return c.X == o.X && c.Y == o.Y
}

// Equals reports bitwise equality of X, Y, and Z (both NaN, or neither).
func (c Coordinate) Equals(o Coordinate) bool {
	if c.X != o.X || c.Y != o.Y {
		return false
	}
	return c.Z == o.Z || (math.IsNaN(c.Z) && math.IsNaN(o.Z))
}

// CompareTo orders coordinates lexicographically by (X, Y); it is used to
// normalize segment endpoint order and to break ties in radial sorts.
func (c Coordinate) CompareTo(o Coordinate) int {
	switch {
	case c.X < o.X:
		return -1
	case c.X > o.X:
		return 1
	case c.Y < o.Y:
		return -1
	case c.Y > o.Y:
		return 1
	default:
		return 0
	}
}

// Less reports whether c sorts before o under CompareTo.
func (c Coordinate) Less(o Coordinate) bool { return c.CompareTo(o) < 0 }

// Distance returns the Euclidean distance between c and o in the XY plane.
func (c Coordinate) Distance(o Coordinate) float64 {
	dx := c.X - o.X
	dy := c.Y - o.Y
	return math.Hypot(dx, dy)
}

// Distance2 returns the squared Euclidean distance between c and o, cheaper
// than Distance when only relative ordering matters.
func (c Coordinate) Distance2(o Coordinate) float64 {
	dx := c.X - o.X
	dy := c.Y - o.Y
	return dx*dx + dy*dy
}

// Add returns c translated by the given vector.
func (c Coordinate) Add(v r2.Vector) Coordinate {
	return NewCoordinate(c.X+v.X, c.Y+v.Y)
}

// Sub returns the vector from o to c.
func (c Coordinate) Sub(o Coordinate) r2.Vector {
	return r2.Vector{X: c.X - o.X, Y: c.Y - o.Y}
}

// MakePrecise rounds c's X/Y in place using pm (spec §3: "mutates in
// place"). A nil pm leaves c unchanged.
func (c *Coordinate) MakePrecise(pm *PrecisionModel) {
	pm.MakeCoordinatePrecise(c)
}

func (c Coordinate) String() string {
	if c.HasZ() {
		return fmt.Sprintf("(%v, %v, %v)", c.X, c.Y, c.Z)
	}
	return fmt.Sprintf("(%v, %v)", c.X, c.Y)
}
