// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package meshio reads triangle meshes from STL and Wavefront OBJ files,
// writes binary and ASCII STL, and writes and reads lists of points.
// Only the vertex positions and triangle indices of the formats are
// supported: normals, texture coordinates, materials and groups are
// ignored.
package meshio

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/meshpoint/geom"
	"cogentcore.org/meshpoint/mesh"
)

// Decoder reads a mesh from a reader.
type Decoder func(r io.Reader) (*mesh.Mesh, error)

// Decoders are the mesh decoders, keyed by lower-case file extension.
var Decoders = map[string]Decoder{
	".stl": ReadSTL,
	".obj": ReadOBJ,
}

// DedupPrecision is the grid on which vertex coordinates are quantized
// when identical vertices of separate facets are merged.
const DedupPrecision = 1e-6

// Open reads the mesh in the given file, choosing the decoder by the
// file extension.
func Open(filename string) (*mesh.Mesh, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	dec, ok := Decoders[ext]
	if !ok {
		return nil, fmt.Errorf("meshio: no decoder for file extension %q of %q", ext, filename)
	}
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	m, err := dec(f)
	if err != nil {
		return nil, fmt.Errorf("meshio: %s: %w", filename, err)
	}
	return m, nil
}

// Save writes the given mesh to the given file as binary STL.
func Save(filename string, m *mesh.Mesh) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := WriteSTL(f, m); err != nil {
		f.Close()
		return fmt.Errorf("meshio: %s: %w", filename, err)
	}
	return f.Close()
}

// vertexIndex merges vertices that fall into the same cell
// of a grid with the given precision.
type vertexIndex struct {
	precision float64
	verts     []geom.Point3
	index     map[[3]int64]int
}

func newVertexIndex(precision float64) *vertexIndex {
	return &vertexIndex{precision: precision, index: map[[3]int64]int{}}
}

// add returns the index of the given vertex, adding it if it is new.
func (vi *vertexIndex) add(p geom.Point3) int {
	key := [3]int64{vi.quantize(p.X), vi.quantize(p.Y), vi.quantize(p.Z)}
	if i, ok := vi.index[key]; ok {
		return i
	}
	i := len(vi.verts)
	vi.verts = append(vi.verts, p)
	vi.index[key] = i
	return i
}

func (vi *vertexIndex) quantize(v float64) int64 {
	return int64(math.Round(v / vi.precision))
}
