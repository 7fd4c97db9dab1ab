package r2

import (
	"math"
	"testing"
)

func TestVectorNorm(t *testing.T) {
	tests := []struct {
		v    Vector
		want float64
	}{
		{Vector{0, 0}, 0},
		{Vector{3, 4}, 5},
		{Vector{1, 0}, 1},
	}
	for _, test := range tests {
		if got := test.v.Norm(); got != test.want {
			t.Errorf("%v.Norm(); got %v want %v", test.v, got, test.want)
		}
		if got := test.v.Norm2(); got != test.want*test.want {
			t.Errorf("%v.Norm2(); got %v want %v", test.v, got, test.want*test.want)
		}
	}
}

func TestVectorNormalize(t *testing.T) {
	v := Vector{3, 4}
	n := v.Normalize()
	if math.Abs(n.Norm()-1) > 1e-9 {
		t.Errorf("%v.Normalize().Norm(); got %v want 1", v, n.Norm())
	}
	if got := (Vector{0, 0}).Normalize(); got != (Vector{0, 0}) {
		t.Errorf("the zero vector must normalize to itself, got %v", got)
	}
}

func TestVectorAbsNeg(t *testing.T) {
	v := Vector{-3, 4}
	if got := v.Abs(); got != (Vector{3, 4}) {
		t.Errorf("%v.Abs(); got %v want {3 4}", v, got)
	}
	if got := v.Neg(); got != (Vector{3, -4}) {
		t.Errorf("%v.Neg(); got %v want {3 -4}", v, got)
	}
}

func TestVectorArithmetic(t *testing.T) {
	a := Vector{1, 2}
	b := Vector{3, 4}
	if got := a.Add(b); got != (Vector{4, 6}) {
		t.Errorf("Add; got %v want {4 6}", got)
	}
	if got := b.Sub(a); got != (Vector{2, 2}) {
		t.Errorf("Sub; got %v want {2 2}", got)
	}
	if got := a.Mul(3); got != (Vector{3, 6}) {
		t.Errorf("Mul; got %v want {3 6}", got)
	}
	if got := b.Div(2); got != (Vector{1.5, 2}) {
		t.Errorf("Div; got %v want {1.5 2}", got)
	}
}

func TestVectorDotCross(t *testing.T) {
	a := Vector{1, 0}
	b := Vector{0, 1}
	if got := a.Dot(b); got != 0 {
		t.Errorf("Dot of perpendicular unit vectors; got %v want 0", got)
	}
	if got := a.Cross(b); got != 1 {
		t.Errorf("Cross; got %v want 1", got)
	}
	if got := b.Cross(a); got != -1 {
		t.Errorf("Cross is antisymmetric; got %v want -1", got)
	}
}

func TestVectorEqualsAndOrdering(t *testing.T) {
	a := Vector{1, 2}
	b := Vector{1, 2}
	c := Vector{1, 3}
	if !a.Equals(b) {
		t.Errorf("%v.Equals(%v); got false want true", a, b)
	}
	if a.Equals(c) {
		t.Errorf("%v.Equals(%v); got true want false", a, c)
	}
	if !a.LessThan(c) {
		t.Errorf("%v.LessThan(%v); got false want true", a, c)
	}
	if a.CompareTo(b) != 0 || a.CompareTo(c) != -1 || c.CompareTo(a) != 1 {
		t.Errorf("CompareTo inconsistent for %v, %v, %v", a, b, c)
	}
}
