// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mesh provides an indexed triangle mesh and the parity ray
// casting test that decides whether a point lies inside it.
//
// A mesh is assumed to be closed and not self-intersecting. That is a
// contract on the caller and is not checked: containment results for
// open or self-intersecting meshes are undefined. Face indices, on the
// other hand, are always checked, and an out-of-range index is reported
// as an [errs.InvalidArgument] error.
package mesh

import (
	"math"

	"cogentcore.org/meshpoint/base/errs"
	"cogentcore.org/meshpoint/geom"
	"gonum.org/v1/gonum/spatial/r3"
)

// Face is a triangle given by three 0-based indices into the vertices of a [Mesh].
type Face [3]int

// Mesh is an indexed triangle mesh.
type Mesh struct {

	// Vertices are the vertex positions.
	Vertices []geom.Point3

	// Faces are the triangles, as indices into Vertices.
	Faces []Face
}

// New returns a new [Mesh] with the given vertices and faces,
// after checking that every face index is in range.
func New(vertices []geom.Point3, faces []Face) (*Mesh, error) {
	m := &Mesh{Vertices: vertices, Faces: faces}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// FromArrays returns a new [Mesh] from row-major flat arrays: vertices
// holds N×3 coordinates and faces holds M×3 vertex indices.
func FromArrays(vertices []float64, faces []int) (*Mesh, error) {
	if len(vertices)%3 != 0 {
		return nil, errs.Errorf(errs.InvalidArgument, "vertex array length %d is not a multiple of 3", len(vertices))
	}
	if len(faces)%3 != 0 {
		return nil, errs.Errorf(errs.InvalidArgument, "face array length %d is not a multiple of 3", len(faces))
	}
	vs := make([]geom.Point3, len(vertices)/3)
	for i := range vs {
		vs[i] = geom.Vec3(vertices[3*i], vertices[3*i+1], vertices[3*i+2])
	}
	fs := make([]Face, len(faces)/3)
	for i := range fs {
		fs[i] = Face{faces[3*i], faces[3*i+1], faces[3*i+2]}
	}
	return New(vs, fs)
}

// FromRows returns a new [Mesh] from vertex rows of 3 coordinates
// and face rows of 3 vertex indices.
func FromRows(vertices [][]float64, faces [][]int) (*Mesh, error) {
	vs := make([]geom.Point3, len(vertices))
	for i, row := range vertices {
		if len(row) != 3 {
			return nil, errs.Errorf(errs.InvalidArgument, "vertex row %d has %d columns, expected 3", i, len(row))
		}
		vs[i] = geom.Vec3(row[0], row[1], row[2])
	}
	fs := make([]Face, len(faces))
	for i, row := range faces {
		if len(row) != 3 {
			return nil, errs.Errorf(errs.InvalidArgument, "face row %d has %d columns, expected 3", i, len(row))
		}
		fs[i] = Face{row[0], row[1], row[2]}
	}
	return New(vs, fs)
}

// Box returns a closed mesh of the given box with 8 vertices and
// 12 faces, all wound so that their normals point outward.
func Box(b geom.Box3) *Mesh {
	x0, y0, z0 := b.Min.X, b.Min.Y, b.Min.Z
	x1, y1, z1 := b.Max.X, b.Max.Y, b.Max.Z
	return &Mesh{
		Vertices: []geom.Point3{
			{X: x0, Y: y0, Z: z0}, {X: x1, Y: y0, Z: z0}, {X: x1, Y: y1, Z: z0}, {X: x0, Y: y1, Z: z0},
			{X: x0, Y: y0, Z: z1}, {X: x1, Y: y0, Z: z1}, {X: x1, Y: y1, Z: z1}, {X: x0, Y: y1, Z: z1},
		},
		Faces: []Face{
			{0, 2, 1}, {0, 3, 2}, // bottom
			{4, 5, 6}, {4, 6, 7}, // top
			{0, 4, 7}, {0, 7, 3}, // left
			{1, 2, 6}, {1, 6, 5}, // right
			{0, 1, 5}, {0, 5, 4}, // front
			{3, 6, 2}, {3, 7, 6}, // back
		},
	}
}

// Validate returns an [errs.InvalidArgument] error for the first face
// that has an index outside of the vertex range.
func (m *Mesh) Validate() error {
	for i := range m.Faces {
		if err := m.checkFace(i); err != nil {
			return err
		}
	}
	return nil
}

// checkFace returns an error if face i has an index out of range.
func (m *Mesh) checkFace(i int) error {
	n := len(m.Vertices)
	for _, idx := range m.Faces[i] {
		if idx < 0 || idx >= n {
			return errs.Errorf(errs.InvalidArgument, "invalid index: face %d refers to vertex %d, but there are %d vertices", i, idx, n)
		}
	}
	return nil
}

// NumVertices returns the number of vertices.
func (m *Mesh) NumVertices() int { return len(m.Vertices) }

// NumFaces returns the number of faces.
func (m *Mesh) NumFaces() int { return len(m.Faces) }

// Triangle returns the triangle of face i. The face indices must be valid.
func (m *Mesh) Triangle(i int) geom.Triangle {
	f := m.Faces[i]
	return geom.NewTriangle(m.Vertices[f[0]], m.Vertices[f[1]], m.Vertices[f[2]])
}

// Bounds returns the axis-aligned bounding box of all vertices.
// It is empty for a mesh without vertices.
func (m *Mesh) Bounds() geom.Box3 {
	return geom.B3FromPoints(m.Vertices...)
}

// SurfaceArea returns the total area of all faces.
func (m *Mesh) SurfaceArea() float64 {
	area := 0.0
	for i := range m.Faces {
		area += m.Triangle(i).Area()
	}
	return area
}

// Volume returns the volume enclosed by the mesh, as the absolute
// value of the sum of the signed volumes of the tetrahedra formed by
// each face and the origin. It requires consistently wound faces.
func (m *Mesh) Volume() float64 {
	v := 0.0
	for i := range m.Faces {
		t := m.Triangle(i)
		v += r3.Dot(t.A, r3.Cross(t.B, t.C))
	}
	return math.Abs(v) / 6
}

// Transform returns a copy of the mesh with f applied to every vertex.
func (m *Mesh) Transform(f func(geom.Point3) geom.Point3) *Mesh {
	nm := &Mesh{
		Vertices: make([]geom.Point3, len(m.Vertices)),
		Faces:    append([]Face(nil), m.Faces...),
	}
	for i, v := range m.Vertices {
		nm.Vertices[i] = f(v)
	}
	return nm
}

// ToArrays returns the mesh as row-major flat arrays of N×3
// vertex coordinates and M×3 face indices.
func (m *Mesh) ToArrays() (vertices []float64, faces []int) {
	vertices = make([]float64, 0, 3*len(m.Vertices))
	for _, v := range m.Vertices {
		vertices = append(vertices, v.X, v.Y, v.Z)
	}
	faces = make([]int, 0, 3*len(m.Faces))
	for _, f := range m.Faces {
		faces = append(faces, f[0], f[1], f[2])
	}
	return
}
