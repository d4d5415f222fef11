// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package meshpoint samples random points in triangles, tests whether
// points lie inside closed triangle meshes, and generates random points
// inside such meshes, all on flat row-major coordinate and index arrays.
//
// The functions share one process-local random stream, which can be
// reseeded with [Seed] for reproducible results. Each generation call
// seeds its own generator from that stream, so calls from separate
// goroutines do not race. For more control, see the geom, mesh and
// pointgen packages.
package meshpoint

import (
	"sync"
	"time"

	"cogentcore.org/core/base/randx"
	"cogentcore.org/meshpoint/base/errs"
	"cogentcore.org/meshpoint/geom"
	"cogentcore.org/meshpoint/mesh"
	"cogentcore.org/meshpoint/pointgen"
)

var (
	randMu sync.Mutex
	stream = randx.NewSysRand(time.Now().UnixNano())
)

// Seed reseeds the process-local random stream.
func Seed(seed int64) {
	randMu.Lock()
	defer randMu.Unlock()
	stream.Seed(seed)
}

// nextSeed returns a seed for a per-call generator.
func nextSeed() int64 {
	randMu.Lock()
	defer randMu.Unlock()
	for {
		if s := stream.Int63(); s != 0 {
			return s
		}
	}
}

// SampleInTriangle returns a uniformly distributed random point
// inside the triangle with the given vertices.
func SampleInTriangle(p1, p2, p3 [3]float64) [3]float64 {
	randMu.Lock()
	defer randMu.Unlock()
	p := geom.SampleInTriangle(geom.FromArray(p1), geom.FromArray(p2), geom.FromArray(p3), stream)
	return geom.ToArray(p)
}

// IsPointInsideMesh returns whether the given point lies inside the
// closed mesh with the given N×3 vertex coordinates and M×3 face indices.
// See [mesh.IsInside] for the errors.
func IsPointInsideMesh(point [3]float64, vertices []float64, faces []int) (bool, error) {
	m, err := mesh.FromArrays(vertices, faces)
	if err != nil {
		return false, err
	}
	return mesh.IsInside(geom.FromArray(point), m)
}

// GenerateInteriorPoints returns count random points inside the closed
// mesh with the given N×3 vertex coordinates and M×3 face indices, as
// count×3 coordinates. onProgress, if non-nil, is called after each
// accepted point. See [pointgen.Generator.Generate] for the errors.
func GenerateInteriorPoints(vertices []float64, faces []int, count int, onProgress func(current, total int)) ([]float64, error) {
	if count <= 0 {
		return nil, errs.Errorf(errs.InvalidArgument, "point count must be positive, got %d", count)
	}
	m, err := mesh.FromArrays(vertices, faces)
	if err != nil {
		return nil, err
	}
	opts := pointgen.DefaultOptions()
	opts.Seed = nextSeed()
	g, err := pointgen.New(m, opts)
	if err != nil {
		return nil, err
	}
	pts, err := g.Generate(count, onProgress)
	if err != nil {
		return nil, err
	}
	res := make([]float64, 0, 3*len(pts))
	for _, p := range pts {
		res = append(res, p.X, p.Y, p.Z)
	}
	return res, nil
}
