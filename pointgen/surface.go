// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pointgen

import (
	"slices"

	"cogentcore.org/core/base/randx"
	"cogentcore.org/meshpoint/base/errs"
	"cogentcore.org/meshpoint/geom"
	"cogentcore.org/meshpoint/mesh"
	"gonum.org/v1/gonum/spatial/r3"
)

// surfaceDepthFraction is the default surface depth
// as a fraction of the bounding box diagonal.
const surfaceDepthFraction = 0.05

// surfaceSampler draws candidates near the surface of a mesh.
type surfaceSampler struct {
	tris    []geom.Triangle
	normals []geom.Point3

	// cdf is the running sum of face areas.
	cdf   []float64
	depth float64
}

func newSurfaceSampler(m *mesh.Mesh, depth float64) (*surfaceSampler, error) {
	s := &surfaceSampler{
		tris:    make([]geom.Triangle, m.NumFaces()),
		normals: make([]geom.Point3, m.NumFaces()),
		cdf:     make([]float64, m.NumFaces()),
		depth:   depth,
	}
	total := 0.0
	for i := range m.Faces {
		t := m.Triangle(i)
		s.tris[i] = t
		s.normals[i] = t.Normal()
		total += t.Area()
		s.cdf[i] = total
	}
	if total <= 0 {
		return nil, errs.New(errs.DegenerateGeometry, "mesh has zero surface area")
	}
	if s.depth <= 0 {
		s.depth = surfaceDepthFraction * m.Bounds().Diagonal()
	}
	return s, nil
}

// sample returns a candidate point.
func (s *surfaceSampler) sample(rnd randx.Rand) geom.Point3 {
	total := s.cdf[len(s.cdf)-1]
	i, _ := slices.BinarySearch(s.cdf, rnd.Float64()*total)
	i = min(i, len(s.tris)-1)
	p := s.tris[i].Sample(rnd)
	d := s.depth * (1 - rnd.Float64())
	if rnd.Float64() < 0.5 {
		d = -d
	}
	return r3.Add(p, r3.Scale(d, s.normals[i]))
}
