// Package affine implements 2D affine transforms built on the matrix
// package's LU solve, following spec §4.5.
package affine

import (
	"errors"
	"fmt"
	"math"

	"github.com/geocore/vecgeo/matrix"
	"github.com/geocore/vecgeo/r2"
)

// CompositionOrder selects whether a new operation is pre- or
// post-applied relative to the transform's existing coefficients.
type CompositionOrder int

const (
	// Append composes the new operation after the existing transform
	// (applied second, to the already-transformed point).
	Append CompositionOrder = iota
	// Prepend composes the new operation before the existing transform.
	Prepend
)

// ErrDegenerateTransform is returned by Invert when the transform's
// determinant is zero.
var ErrDegenerateTransform = errors.New("affine: degenerate (non-invertible) transform")

// Transform represents a 2D affine map as the upper two rows of a 3x3
// homogeneous matrix with an implicit last row [0 0 1]:
//
//	| a11 a12 a13 |   | x |
//	| a21 a22 a23 | * | y |
//	|  0   0   1  |   | 1 |
//
// spec §3/§4.5.
type Transform struct {
	A11, A12, A13 float64
	A21, A22, A23 float64
}

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{A11: 1, A22: 1}
}

// NewFromCoefficients returns the transform with the given six
// coefficients.
func NewFromCoefficients(a11, a12, a13, a21, a22, a23 float64) Transform {
	return Transform{A11: a11, A12: a12, A13: a13, A21: a21, A22: a22, A23: a23}
}

// Determinant returns a11*a22 - a21*a12; the transform is invertible iff
// this is nonzero (spec §3).
func (t Transform) Determinant() float64 {
	return t.A11*t.A22 - t.A21*t.A12
}

// Transform applies the transform to a point (translation included).
func (t Transform) Transform(p r2.Vector) r2.Vector {
	return r2.Vector{
		X: t.A11*p.X + t.A12*p.Y + t.A13,
		Y: t.A21*p.X + t.A22*p.Y + t.A23,
	}
}

// TransformVector applies only the linear part of the transform
// (translation-free) — used for direction/normal vectors rather than
// points.
func (t Transform) TransformVector(v r2.Vector) r2.Vector {
	return r2.Vector{
		X: t.A11*v.X + t.A12*v.Y,
		Y: t.A21*v.X + t.A22*v.Y,
	}
}

// Invert returns the inverse transform. Per the corrected semantics spec
// §9's Open Question settles on, it returns ErrDegenerateTransform when
// the determinant IS zero (the source this spec descends from inverted
// that check).
func (t Transform) Invert() (Transform, error) {
	det := t.Determinant()
	if det == 0 {
		return Transform{}, ErrDegenerateTransform
	}
	ia11 := t.A22 / det
	ia12 := -t.A12 / det
	ia21 := -t.A21 / det
	ia22 := t.A11 / det
	ia13 := -(ia11*t.A13 + ia12*t.A23)
	ia23 := -(ia21*t.A13 + ia22*t.A23)
	return Transform{A11: ia11, A12: ia12, A13: ia13, A21: ia21, A22: ia22, A23: ia23}, nil
}

// Compose returns the transform equivalent to applying t then other
// (order == Append) or other then t (order == Prepend).
func (t Transform) Compose(other Transform, order CompositionOrder) Transform {
	first, second := t, other
	if order == Prepend {
		first, second = other, t
	}
	return Transform{
		A11: second.A11*first.A11 + second.A12*first.A21,
		A12: second.A11*first.A12 + second.A12*first.A22,
		A13: second.A11*first.A13 + second.A12*first.A23 + second.A13,
		A21: second.A21*first.A11 + second.A22*first.A21,
		A22: second.A21*first.A12 + second.A22*first.A22,
		A23: second.A21*first.A13 + second.A22*first.A23 + second.A23,
	}
}

// Translate composes a translation by (dx, dy).
func (t Transform) Translate(dx, dy float64, order CompositionOrder) Transform {
	return t.Compose(Transform{A11: 1, A22: 1, A13: dx, A23: dy}, order)
}

// Scale composes a scale by (sx, sy) about the origin.
func (t Transform) Scale(sx, sy float64, order CompositionOrder) Transform {
	return t.Compose(Transform{A11: sx, A22: sy}, order)
}

// Rotate composes a counter-clockwise rotation by angle radians about the
// origin.
func (t Transform) Rotate(angle float64, order CompositionOrder) Transform {
	c, s := math.Cos(angle), math.Sin(angle)
	return t.Compose(Transform{A11: c, A12: -s, A21: s, A22: c}, order)
}

// RotateAt composes a rotation by angle radians about centre.
func (t Transform) RotateAt(angle float64, centre r2.Vector, order CompositionOrder) Transform {
	rot := Identity().
		Translate(-centre.X, -centre.Y, Append).
		Rotate(angle, Append).
		Translate(centre.X, centre.Y, Append)
	return t.Compose(rot, order)
}

// Shear composes a shear with the given x/y shear factors.
func (t Transform) Shear(shx, shy float64, order CompositionOrder) Transform {
	return t.Compose(Transform{A11: 1, A12: shx, A21: shy, A22: 1}, order)
}

// SkewX composes a shear along x by angle radians (tan(angle) factor).
func (t Transform) SkewX(angle float64, order CompositionOrder) Transform {
	return t.Shear(math.Tan(angle), 0, order)
}

// SkewY composes a shear along y by angle radians (tan(angle) factor).
func (t Transform) SkewY(angle float64, order CompositionOrder) Transform {
	return t.Shear(0, math.Tan(angle), order)
}

// FromOnePointPair returns the transform mapping p to q, synthesising the
// two additional correspondences needed by the underlying three-point
// solve by translating (p, q) by 10 along each axis — spec §4.5.
func FromOnePointPair(p, q r2.Vector) (Transform, error) {
	p2 := r2.Vector{X: p.X + 10, Y: p.Y}
	q2 := r2.Vector{X: q.X + 10, Y: q.Y}
	p3 := r2.Vector{X: p.X, Y: p.Y + 10}
	q3 := r2.Vector{X: q.X, Y: q.Y + 10}
	return FromThreePointPairs(p, q, p2, q2, p3, q3)
}

// FromTwoPointPairs returns the transform mapping p1->q1 and p2->q2,
// synthesising the third correspondence by a 90-degree rotation of the
// first pair about the second — spec §4.5.
func FromTwoPointPairs(p1, q1, p2, q2 r2.Vector) (Transform, error) {
	p3 := rotate90About(p1, p2)
	q3 := rotate90About(q1, q2)
	return FromThreePointPairs(p1, q1, p2, q2, p3, q3)
}

func rotate90About(p, centre r2.Vector) r2.Vector {
	dx := p.X - centre.X
	dy := p.Y - centre.Y
	return r2.Vector{X: centre.X - dy, Y: centre.Y + dx}
}

// FromThreePointPairs solves the 6x6 linear system A*x = b, where each
// pair contributes two rows [px py 1 0 0 0; 0 0 0 px py 1], via LU
// decomposition — spec §4.5. Returns ErrDegenerateTransform wrapping the
// underlying matrix.ErrSingular if the three source points are collinear
// (no affine map can be determined).
func FromThreePointPairs(p1, q1, p2, q2, p3, q3 r2.Vector) (Transform, error) {
	a, err := matrix.New(6, 6)
	if err != nil {
		return Transform{}, err
	}
	b := make([]float64, 6)

	pts := [3]r2.Vector{p1, p2, p3}
	dst := [3]r2.Vector{q1, q2, q3}
	for i, p := range pts {
		r0 := 2 * i
		r1 := 2*i + 1
		a.Set(r0, 0, p.X)
		a.Set(r0, 1, p.Y)
		a.Set(r0, 2, 1)
		a.Set(r1, 3, p.X)
		a.Set(r1, 4, p.Y)
		a.Set(r1, 5, 1)
		b[r0] = dst[i].X
		b[r1] = dst[i].Y
	}

	x, err := matrix.Solve(a, b)
	if err != nil {
		return Transform{}, fmt.Errorf("affine: %w: %w", ErrDegenerateTransform, err)
	}
	return Transform{A11: x[0], A12: x[1], A13: x[2], A21: x[3], A22: x[4], A23: x[5]}, nil
}
