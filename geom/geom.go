// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geom provides the double precision 3D primitives used for
// mesh containment and point generation: points, triangles, boxes
// and rays, along with uniform random sampling of triangles and boxes.
package geom

import (
	"cogentcore.org/core/base/randx"
	"gonum.org/v1/gonum/spatial/r3"
)

// Point3 is a point or vector in 3D space with float64 coordinates.
type Point3 = r3.Vec

// Vec3 returns a new [Point3] from the given coordinates.
func Vec3(x, y, z float64) Point3 {
	return Point3{X: x, Y: y, Z: z}
}

// FromArray returns a new [Point3] from a length-3 array.
func FromArray(a [3]float64) Point3 {
	return Point3{X: a[0], Y: a[1], Z: a[2]}
}

// ToArray returns the coordinates of p as a length-3 array.
func ToArray(p Point3) [3]float64 {
	return [3]float64{p.X, p.Y, p.Z}
}

// Component returns the coordinate of p on the given axis:
// 0 for X, 1 for Y and 2 for Z.
func Component(p Point3, axis int) float64 {
	switch axis {
	case 0:
		return p.X
	case 1:
		return p.Y
	default:
		return p.Z
	}
}

// getRand returns the Rand passed as the optional argument,
// or the system global Rand source if none was passed.
func getRand(randOpt []randx.Rand) randx.Rand {
	if len(randOpt) == 0 || randOpt[0] == nil {
		return randx.NewGlobalRand()
	}
	return randOpt[0]
}
