// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// ParallelEpsilon is the magnitude of the Möller–Trumbore determinant
// below which a ray is treated as parallel to a triangle's plane.
const ParallelEpsilon = 1e-12

// Ray is a half line starting at Origin and extending in direction Dir.
type Ray struct {
	Origin Point3
	Dir    Point3
}

// NewRay returns a new [Ray] with the given origin and direction.
func NewRay(origin, dir Point3) Ray {
	return Ray{Origin: origin, Dir: dir}
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float64) Point3 {
	return r3.Add(r.Origin, r3.Scale(t, r.Dir))
}

// IntersectTriangle returns the parameter t at which the ray crosses
// the triangle, using the Möller–Trumbore algorithm. It reports a
// crossing only for t > eps, so a triangle passing through the origin
// itself is not counted. Barycentric bounds are inclusive.
func (r Ray) IntersectTriangle(tri Triangle, eps float64) (float64, bool) {
	edge1 := r3.Sub(tri.B, tri.A)
	edge2 := r3.Sub(tri.C, tri.A)

	h := r3.Cross(r.Dir, edge2)
	a := r3.Dot(edge1, h)
	if math.Abs(a) < ParallelEpsilon {
		return 0, false
	}

	f := 1 / a
	s := r3.Sub(r.Origin, tri.A)
	u := f * r3.Dot(s, h)
	if u < 0 || u > 1 {
		return 0, false
	}

	q := r3.Cross(s, edge1)
	v := f * r3.Dot(r.Dir, q)
	if v < 0 || u+v > 1 {
		return 0, false
	}

	t := f * r3.Dot(edge2, q)
	if t > eps {
		return t, true
	}
	return 0, false
}

// IntersectsBox returns whether the ray passes through the given box,
// using the slab method. Touching the boundary counts as passing through.
func (r Ray) IntersectsBox(b Box3) bool {
	if b.IsEmpty() {
		return false
	}
	tmin := math.Inf(-1)
	tmax := math.Inf(1)
	for axis := range 3 {
		o := Component(r.Origin, axis)
		d := Component(r.Dir, axis)
		lo := Component(b.Min, axis)
		hi := Component(b.Max, axis)
		if d == 0 {
			if o < lo || o > hi {
				return false
			}
			continue
		}
		t1 := (lo - o) / d
		t2 := (hi - o) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = max(tmin, t1)
		tmax = min(tmax, t2)
		if tmax < tmin {
			return false
		}
	}
	return tmax >= 0
}
