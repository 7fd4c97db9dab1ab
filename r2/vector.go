package r2

import (
	"fmt"
	"math"
)

// Vector is a 2-D vector of float64 components. It underlies every
// coordinate and displacement in package geom: Coordinate.Vector/FromVector
// convert to and from it, Envelope is built from two Intervals carried in an
// r2.Rect, and package affine transforms map Vector to Vector.
type Vector struct {
	X, Y float64
}

func (v Vector) String() string { return fmt.Sprintf("(%v, %v)", v.X, v.Y) }

// Add returns the sum of v and ov.
func (v Vector) Add(ov Vector) Vector { return Vector{v.X + ov.X, v.Y + ov.Y} }

// Sub returns the difference of v and ov.
func (v Vector) Sub(ov Vector) Vector { return Vector{v.X - ov.X, v.Y - ov.Y} }

// Mul returns v scaled by m.
func (v Vector) Mul(m float64) Vector { return Vector{v.X * m, v.Y * m} }

// Div returns v scaled by 1/m.
func (v Vector) Div(m float64) Vector { return Vector{v.X / m, v.Y / m} }

// Neg returns the vector pointing in the opposite direction.
func (v Vector) Neg() Vector { return Vector{-v.X, -v.Y} }

// Abs returns the vector with both components made nonnegative.
func (v Vector) Abs() Vector { return Vector{math.Abs(v.X), math.Abs(v.Y)} }

// Dot returns the dot product of v and ov.
func (v Vector) Dot(ov Vector) float64 { return v.X*ov.X + v.Y*ov.Y }

// Cross returns the z-component of the 3-D cross product of v and ov treated
// as vectors in the xy-plane. Its sign is positive when ov lies
// counter-clockwise of v and negative when it lies clockwise.
func (v Vector) Cross(ov Vector) float64 {
	return v.X*ov.Y - v.Y*ov.X
}

// Norm2 returns the square of v's length.
func (v Vector) Norm2() float64 { return v.Dot(v) }

// Norm returns v's length.
func (v Vector) Norm() float64 { return math.Sqrt(v.Norm2()) }

// Normalize returns a unit vector in the direction of v, or the zero vector
// if v is zero.
func (v Vector) Normalize() Vector {
	if v == (Vector{0, 0}) {
		return v
	}
	return v.Mul(1 / v.Norm())
}

// Equals reports whether v and other have identical components.
func (v Vector) Equals(other Vector) bool {
	return v.X == other.X && v.Y == other.Y
}

// LessThan imposes an arbitrary but total order on vectors, comparing X
// first and breaking ties on Y. It backs CompareTo.
func (v Vector) LessThan(vb Vector) bool {
	if v.X != vb.X {
		return v.X < vb.X
	}
	return v.Y < vb.Y
}

// CompareTo returns -1, 0, or 1 as v orders before, equal to, or after other
// under LessThan.
func (v Vector) CompareTo(other Vector) int {
	switch {
	case v.LessThan(other):
		return -1
	case v.Equals(other):
		return 0
	default:
		return 1
	}
}
