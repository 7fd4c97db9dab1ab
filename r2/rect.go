/*
 * Copyright 2005 Google Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */
package r2

import (
	"fmt"

	"github.com/geocore/vecgeo/r1"
)

// Rect represents a closed axis-aligned rectangle in the (x, y) plane. It is
// the cross product of an X Interval and a Y Interval. Like Interval, a Rect
// whose X or Y interval is empty represents the empty rectangle.
type Rect struct {
	X, Y r1.Interval
}

// EmptyRect returns an empty rectangle.
func EmptyRect() Rect {
	return Rect{r1.EmptyInterval(), r1.EmptyInterval()}
}

// RectFromPoints constructs a Rect that contains all of the given points.
func RectFromPoints(pts ...Vector) Rect {
	r := EmptyRect()
	for _, p := range pts {
		r = r.AddPoint(p)
	}
	return r
}

// RectFromCenterSize constructs a rectangle with the given center and size.
// Both dimensions of size must be non-negative.
func RectFromCenterSize(center, size Vector) Rect {
	return Rect{
		r1.Interval{Lo: center.X - size.X/2, Hi: center.X + size.X/2},
		r1.Interval{Lo: center.Y - size.Y/2, Hi: center.Y + size.Y/2},
	}
}

// IsValid reports whether the rectangle is valid: either both of its
// intervals are empty, or neither is.
func (r Rect) IsValid() bool { return r.X.IsEmpty() == r.Y.IsEmpty() }

// IsEmpty reports whether the rectangle is empty.
func (r Rect) IsEmpty() bool { return r.X.IsEmpty() }

// Vertices returns all four vertices of the rectangle, in CCW order starting
// with the bottom-left corner.
func (r Rect) Vertices() [4]Vector {
	return [4]Vector{
		{r.X.Lo, r.Y.Lo}, {r.X.Hi, r.Y.Lo}, {r.X.Hi, r.Y.Hi}, {r.X.Lo, r.Y.Hi},
	}
}

// Center returns the center of the rectangle.
func (r Rect) Center() Vector { return Vector{r.X.Center(), r.Y.Center()} }

// Size returns the width and height of the rectangle.
func (r Rect) Size() Vector { return Vector{r.X.Length(), r.Y.Length()} }

// ContainsPoint reports whether the rectangle contains the given point.
// Rectangles are closed regions, i.e. they contain their boundary.
func (r Rect) ContainsPoint(p Vector) bool {
	return r.X.Contains(p.X) && r.Y.Contains(p.Y)
}

// InteriorContainsPoint returns true iff the given point is contained in the
// interior of the region (i.e. the region excluding its boundary).
func (r Rect) InteriorContainsPoint(p Vector) bool {
	return r.X.InteriorContains(p.X) && r.Y.InteriorContains(p.Y)
}

// Contains reports whether the rectangle contains the given rectangle.
func (r Rect) Contains(other Rect) bool {
	return r.X.ContainsInterval(other.X) && r.Y.ContainsInterval(other.Y)
}

// InteriorContains reports whether the interior of this rectangle contains
// all points of the given other rectangle (including its boundary).
func (r Rect) InteriorContains(other Rect) bool {
	return r.X.InteriorContainsInterval(other.X) && r.Y.InteriorContainsInterval(other.Y)
}

// Intersects reports whether this rectangle and the other rectangle have any
// points in common.
func (r Rect) Intersects(other Rect) bool {
	return r.X.Intersects(other.X) && r.Y.Intersects(other.Y)
}

// InteriorIntersects reports whether the interior of this rectangle
// intersects any point (including the boundary) of the given other
// rectangle.
func (r Rect) InteriorIntersects(other Rect) bool {
	return r.X.InteriorIntersects(other.X) && r.Y.InteriorIntersects(other.Y)
}

// AddPoint expands the rectangle to include the given point.
func (r Rect) AddPoint(p Vector) Rect {
	return Rect{r.X.AddPoint(p.X), r.Y.AddPoint(p.Y)}
}

// Union returns the smallest rectangle containing the union of this
// rectangle and the given rectangle.
func (r Rect) Union(other Rect) Rect {
	return Rect{r.X.Union(other.X), r.Y.Union(other.Y)}
}

// Intersection returns the smallest rectangle containing the intersection of
// this rectangle and the given rectangle. If the two rectangles do not
// intersect on either axis, it returns EmptyRect().
func (r Rect) Intersection(other Rect) Rect {
	xx := r.X.Intersection(other.X)
	yy := r.Y.Intersection(other.Y)
	if xx.IsEmpty() || yy.IsEmpty() {
		return EmptyRect()
	}
	return Rect{xx, yy}
}

// Expanded returns a rectangle expanded in the x-direction by margin.X and
// in the y-direction by margin.Y. Negative margins shrink the rectangle;
// the result may become empty, and any expansion of an empty rectangle
// remains empty.
func (r Rect) Expanded(margin Vector) Rect {
	xx := r.X.Expanded(margin.X)
	yy := r.Y.Expanded(margin.Y)
	if xx.IsEmpty() || yy.IsEmpty() {
		return EmptyRect()
	}
	return Rect{xx, yy}
}

// ExpandedByMargin returns a rectangle expanded by the same margin on every
// side.
func (r Rect) ExpandedByMargin(margin float64) Rect {
	return r.Expanded(Vector{margin, margin})
}

// Translate returns the rectangle translated by the given vector.
func (r Rect) Translate(v Vector) Rect {
	return Rect{
		r1.Interval{Lo: r.X.Lo + v.X, Hi: r.X.Hi + v.X},
		r1.Interval{Lo: r.Y.Lo + v.Y, Hi: r.Y.Hi + v.Y},
	}
}

func (r Rect) String() string {
	return fmt.Sprintf("[Lo%v, Hi%v]", r.Vertices()[0], r.Vertices()[2])
}
