// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Box3 represents an axis-aligned 3D bounding box defined by two points:
// the point with minimum coordinates and the point with maximum coordinates.
type Box3 struct {
	Min Point3
	Max Point3
}

// B3 returns a new [Box3] from the given minimum and maximum x, y, and z coordinates.
func B3(x0, y0, z0, x1, y1, z1 float64) Box3 {
	return Box3{Vec3(x0, y0, z0), Vec3(x1, y1, z1)}
}

// B3Empty returns a new empty [Box3], ready to be expanded by points.
func B3Empty() Box3 {
	bx := Box3{}
	bx.SetEmpty()
	return bx
}

// B3FromPoints returns the smallest [Box3] containing all of the given points.
func B3FromPoints(points ...Point3) Box3 {
	bx := B3Empty()
	bx.ExpandByPoints(points)
	return bx
}

// SetEmpty sets this bounding box to empty (min / max +/- Infinity).
func (b *Box3) SetEmpty() {
	inf := math.Inf(1)
	b.Min = Vec3(inf, inf, inf)
	b.Max = Vec3(-inf, -inf, -inf)
}

// IsEmpty returns true if this bounding box is empty (max < min on any coord).
func (b Box3) IsEmpty() bool {
	return (b.Max.X < b.Min.X) || (b.Max.Y < b.Min.Y) || (b.Max.Z < b.Min.Z)
}

// ExpandByPoint may expand this bounding box to include the specified point.
func (b *Box3) ExpandByPoint(point Point3) {
	b.Min = Vec3(min(b.Min.X, point.X), min(b.Min.Y, point.Y), min(b.Min.Z, point.Z))
	b.Max = Vec3(max(b.Max.X, point.X), max(b.Max.Y, point.Y), max(b.Max.Z, point.Z))
}

// ExpandByPoints may expand this bounding box from the specified points.
func (b *Box3) ExpandByPoints(points []Point3) {
	for _, p := range points {
		b.ExpandByPoint(p)
	}
}

// ExpandByBox may expand this bounding box to include the specified box.
func (b *Box3) ExpandByBox(box Box3) {
	if box.IsEmpty() {
		return
	}
	b.ExpandByPoint(box.Min)
	b.ExpandByPoint(box.Max)
}

// ExpandByScalar expands this bounding box by the specified scalar
// subtracting from min and adding to max.
func (b *Box3) ExpandByScalar(scalar float64) {
	d := Vec3(scalar, scalar, scalar)
	b.Min = r3.Sub(b.Min, d)
	b.Max = r3.Add(b.Max, d)
}

// Center returns the center of the bounding box.
func (b Box3) Center() Point3 {
	return r3.Scale(0.5, r3.Add(b.Min, b.Max))
}

// Size calculates the size of this bounding box: the vector from
// its minimum point to its maximum point.
func (b Box3) Size() Point3 {
	return r3.Sub(b.Max, b.Min)
}

// Diagonal returns the length of the diagonal of the box.
func (b Box3) Diagonal() float64 {
	if b.IsEmpty() {
		return 0
	}
	return r3.Norm(b.Size())
}

// Volume returns the volume enclosed by the box, which is zero
// for an empty or flat box.
func (b Box3) Volume() float64 {
	if b.IsEmpty() {
		return 0
	}
	sz := b.Size()
	return sz.X * sz.Y * sz.Z
}

// LongestAxis returns the axis along which the box is the largest:
// 0 for X, 1 for Y and 2 for Z.
func (b Box3) LongestAxis() int {
	sz := b.Size()
	switch {
	case sz.X >= sz.Y && sz.X >= sz.Z:
		return 0
	case sz.Y >= sz.Z:
		return 1
	default:
		return 2
	}
}

// ContainsPoint returns if this bounding box contains the specified point.
func (b Box3) ContainsPoint(point Point3) bool {
	if point.X < b.Min.X || point.X > b.Max.X ||
		point.Y < b.Min.Y || point.Y > b.Max.Y ||
		point.Z < b.Min.Z || point.Z > b.Max.Z {
		return false
	}
	return true
}

// IntersectsBox returns if other box intersects this one.
func (b Box3) IntersectsBox(other Box3) bool {
	// using 6 splitting planes to rule out intersections.
	if other.Max.X < b.Min.X || other.Min.X > b.Max.X ||
		other.Max.Y < b.Min.Y || other.Min.Y > b.Max.Y ||
		other.Max.Z < b.Min.Z || other.Min.Z > b.Max.Z {
		return false
	}
	return true
}
