// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"cogentcore.org/core/base/randx"
	"gonum.org/v1/gonum/spatial/r3"
)

// Triangle represents a triangle made of three vertices.
// The order of the vertices only matters for the
// orientation of its normal.
type Triangle struct {
	A Point3
	B Point3
	C Point3
}

// NewTriangle returns a new Triangle from the given vertices.
func NewTriangle(a, b, c Point3) Triangle {
	return Triangle{a, b, c}
}

// Normal returns the unit normal of the triangle with the given
// vertices, following the right hand rule on a, b, c.
// It returns the zero vector for a degenerate triangle.
func Normal(a, b, c Point3) Point3 {
	nv := r3.Cross(r3.Sub(b, a), r3.Sub(c, a))
	l := r3.Norm(nv)
	if l > 0 {
		return r3.Scale(1/l, nv)
	}
	return Point3{}
}

// Normal returns the triangle's unit normal.
func (t Triangle) Normal() Point3 {
	return Normal(t.A, t.B, t.C)
}

// Area returns the triangle's area.
func (t Triangle) Area() float64 {
	return 0.5 * r3.Norm(r3.Cross(r3.Sub(t.B, t.A), r3.Sub(t.C, t.A)))
}

// Centroid returns the triangle's centroid.
func (t Triangle) Centroid() Point3 {
	return r3.Scale(1.0/3, r3.Add(r3.Add(t.A, t.B), t.C))
}

// Bounds returns the bounding box of the triangle.
func (t Triangle) Bounds() Box3 {
	return B3FromPoints(t.A, t.B, t.C)
}

// Barycentric returns the barycentric coordinates of the projection
// of the given point onto the plane of the triangle, as weights on
// A, B and C in X, Y and Z respectively. The weights always sum to 1.
// It returns false for a colinear or singular triangle.
func (t Triangle) Barycentric(point Point3) (Point3, bool) {
	v0 := r3.Sub(t.C, t.A)
	v1 := r3.Sub(t.B, t.A)
	v2 := r3.Sub(point, t.A)

	dot00 := r3.Dot(v0, v0)
	dot01 := r3.Dot(v0, v1)
	dot02 := r3.Dot(v0, v2)
	dot11 := r3.Dot(v1, v1)
	dot12 := r3.Dot(v1, v2)

	denom := dot00*dot11 - dot01*dot01
	if denom == 0 {
		return Point3{}, false
	}

	invDenom := 1 / denom
	u := (dot11*dot02 - dot01*dot12) * invDenom
	v := (dot00*dot12 - dot01*dot02) * invDenom
	return Vec3(1-u-v, v, u), true
}

// ContainsPoint returns whether the projection of the point onto
// the plane of the triangle lies within the triangle.
func (t Triangle) ContainsPoint(point Point3) bool {
	w, ok := t.Barycentric(point)
	if !ok {
		return false
	}
	return w.X >= 0 && w.Y >= 0 && w.Z >= 0
}

// Sample returns a point uniformly distributed over the area of the
// triangle. See [SampleInTriangle].
func (t Triangle) Sample(randOpt ...randx.Rand) Point3 {
	return SampleInTriangle(t.A, t.B, t.C, randOpt...)
}
