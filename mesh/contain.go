// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"cogentcore.org/meshpoint/base/errs"
	"cogentcore.org/meshpoint/geom"
)

const (
	// DefaultEpsilon is the default minimum ray parameter for a
	// crossing to be counted. A face passing within this distance
	// of the query point along the ray is ignored.
	DefaultEpsilon = 1e-8

	// RayTilt is the size of the perturbation applied to the +X ray
	// direction in Y and Z. A ray along an exact axis often passes
	// through the shared edges and vertices of axis-aligned meshes,
	// where the parity count would be wrong; a small tilt by two
	// irrational factors makes such coincidences measure-zero events.
	RayTilt = 1e-4
)

// DefaultRayDirection is the direction in which rays are cast:
// +X tilted by [RayTilt].
var DefaultRayDirection = geom.Vec3(1, RayTilt*0.5698402909980532, RayTilt*0.7548776662466927)

// ContainmentOptions are the tunable parameters of the containment test.
type ContainmentOptions struct {

	// Epsilon is the minimum ray parameter for a crossing to be counted.
	// If it is zero, [DefaultEpsilon] is used.
	Epsilon float64

	// Direction is the direction of the cast rays.
	// If it is the zero vector, [DefaultRayDirection] is used.
	Direction geom.Point3
}

func (o *ContainmentOptions) defaults() ContainmentOptions {
	res := ContainmentOptions{Epsilon: DefaultEpsilon, Direction: DefaultRayDirection}
	if o == nil {
		return res
	}
	if o.Epsilon > 0 {
		res.Epsilon = o.Epsilon
	}
	if o.Direction != (geom.Point3{}) {
		res.Direction = o.Direction
	}
	return res
}

// IsInside returns whether the given point lies inside the given closed
// mesh, by casting a ray from the point and counting the faces it crosses:
// an odd count means inside. It tests every face, so use a [Containment]
// to test many points against the same mesh.
//
// It returns an [errs.DegenerateGeometry] error (and false) for a mesh
// without faces, and an [errs.InvalidArgument] error for a face with an
// out-of-range vertex index.
func IsInside(point geom.Point3, m *Mesh) (bool, error) {
	return IsInsideOptions(point, m, nil)
}

// IsInsideOptions is [IsInside] with the given containment options.
func IsInsideOptions(point geom.Point3, m *Mesh, opts *ContainmentOptions) (bool, error) {
	if m == nil || len(m.Faces) == 0 {
		return false, errs.New(errs.DegenerateGeometry, "mesh has no faces")
	}
	o := opts.defaults()
	ray := geom.NewRay(point, o.Direction)
	n := 0
	for i := range m.Faces {
		if err := m.checkFace(i); err != nil {
			return false, err
		}
		if _, ok := ray.IntersectTriangle(m.Triangle(i), o.Epsilon); ok {
			n++
		}
	}
	return n%2 == 1, nil
}

// Containment answers repeated containment queries against one mesh,
// using a bounding box tree over its faces so that each query only
// tests the faces near the ray. It gives the same answers as [IsInside].
// It holds no mutable state and is safe for concurrent use.
type Containment struct {
	mesh *Mesh
	opts ContainmentOptions
	tris []geom.Triangle
	tree *faceNode
}

// NewContainment validates the given mesh and returns a new
// [Containment] for it. The options may be nil for the defaults.
// The mesh must not be modified while the Containment is in use.
func NewContainment(m *Mesh, opts *ContainmentOptions) (*Containment, error) {
	if m == nil || len(m.Faces) == 0 {
		return nil, errs.New(errs.DegenerateGeometry, "mesh has no faces")
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	c := &Containment{mesh: m, opts: opts.defaults()}
	c.tris = make([]geom.Triangle, len(m.Faces))
	for i := range m.Faces {
		c.tris[i] = m.Triangle(i)
	}
	c.tree = buildFaceTree(c.tris)
	return c, nil
}

// Mesh returns the mesh being tested against.
func (c *Containment) Mesh() *Mesh {
	return c.mesh
}

// Contains returns whether the given point lies inside the mesh.
func (c *Containment) Contains(point geom.Point3) bool {
	return c.Crossings(point)%2 == 1
}

// Crossings returns the number of faces crossed by the ray cast from the point.
func (c *Containment) Crossings(point geom.Point3) int {
	ray := geom.NewRay(point, c.opts.Direction)
	return c.tree.crossings(ray, c.tris, c.opts.Epsilon)
}
