package geom

import (
	"errors"
	"fmt"
)

// Sentinel error kinds from spec §7. Callers should use errors.Is/errors.As
// rather than comparing against these directly where a wrapped error is
// possible.
var (
	// ErrInvalidArgument is the invalid-argument error kind. No function in
	// this module returns it: NewFixedPrecisionModel falls back to the
	// floating model for a non-positive scale, and package matrix reports a
	// non-square matrix with its own matrix.ErrNotSquare.
	ErrInvalidArgument = errors.New("geom: invalid argument")

	// ErrSingularMatrix is the singular-matrix error kind. No function in
	// this module returns it: package matrix reports a zero LU pivot with
	// matrix.ErrSingular, and package affine wraps that in
	// affine.ErrDegenerateTransform.
	ErrSingularMatrix = errors.New("geom: singular matrix")

	// ErrNonConvergentNoding is the non-converging-noding error kind. No
	// function in this module returns it: the buffer pipeline runs a single
	// Noder.Node pass, not an iterated noding loop.
	ErrNonConvergentNoding = errors.New("geom: noding did not converge")

	// ErrUnterminatedToken is reported by the optional WKT tokenizer
	// (unclosed quote or block comment). The geometry core itself never
	// returns it; it is declared here because spec §7 enumerates it as
	// part of the shared error taxonomy external tokenizers plug into.
	ErrUnterminatedToken = errors.New("geom: unterminated token")
)

// ProjectivePointAtInfinityError is a non-fatal diagnostic returned by the
// robust line intersector when the homogeneous intersection of two
// projective lines comes back with w == 0 (the lines are parallel). Callers
// that requested a cartesian point should treat the input segments as
// collinear instead of treating this as a hard failure.
type ProjectivePointAtInfinityError struct {
	A, B, C, D Coordinate
}

func (e *ProjectivePointAtInfinityError) Error() string {
	return fmt.Sprintf("geom: projective intersection of (%v-%v) and (%v-%v) is a point at infinity",
		e.A, e.B, e.C, e.D)
}
