// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"cogentcore.org/core/base/randx"
	"gonum.org/v1/gonum/spatial/r3"
)

// SampleInTriangle returns a point uniformly distributed over the area
// of the triangle p1, p2, p3. Two uniform numbers u, v in [0,1) are drawn;
// when u+v > 1 both are reflected, which folds the unit square onto the
// triangle without rejection. The result is p1 + u*(p2-p1) + v*(p3-p1).
//
// A degenerate triangle yields a point on the segment or point it
// collapses to. Non-finite coordinates propagate to the result.
// Optionally can pass a single Rand interface to use;
// otherwise uses the system global Rand source.
func SampleInTriangle(p1, p2, p3 Point3, randOpt ...randx.Rand) Point3 {
	rnd := getRand(randOpt)
	u := rnd.Float64()
	v := rnd.Float64()
	if u+v > 1 {
		u = 1 - u
		v = 1 - v
	}
	e1 := r3.Sub(p2, p1)
	e2 := r3.Sub(p3, p1)
	return r3.Add(p1, r3.Add(r3.Scale(u, e1), r3.Scale(v, e2)))
}

// SampleInBox returns a point uniformly distributed in the given box.
// Optionally can pass a single Rand interface to use;
// otherwise uses the system global Rand source.
func SampleInBox(b Box3, randOpt ...randx.Rand) Point3 {
	rnd := getRand(randOpt)
	sz := b.Size()
	return Vec3(
		b.Min.X+rnd.Float64()*sz.X,
		b.Min.Y+rnd.Float64()*sz.Y,
		b.Min.Z+rnd.Float64()*sz.Z,
	)
}
