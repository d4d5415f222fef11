// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package meshio

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"cogentcore.org/meshpoint/geom"
	"cogentcore.org/meshpoint/mesh"
	"github.com/chewxy/math32"
)

const (
	stlHeaderSize = 80

	// stlFacetSize is the size of one binary facet: normal,
	// three vertices and the attribute byte count.
	stlFacetSize = 12*4 + 2
)

// ReadSTL reads an ASCII or binary STL mesh. The data is binary if its
// size matches the facet count in the binary header, and ASCII otherwise
// if it starts with "solid". Identical vertices of separate facets are
// merged on a grid of [DedupPrecision].
func ReadSTL(r io.Reader) (*mesh.Mesh, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var m *mesh.Mesh
	switch {
	case isBinarySTL(data):
		slog.Debug("reading binary STL", "bytes", len(data))
		m, err = readBinarySTL(data)
	case hasSolidPrefix(data):
		slog.Debug("reading ASCII STL", "bytes", len(data))
		m, err = readASCIISTL(data)
	default:
		slog.Debug("reading STL without a consistent binary size", "bytes", len(data))
		m, err = readBinarySTL(data)
	}
	if err != nil {
		return nil, err
	}
	slog.Debug("read STL", "vertices", m.NumVertices(), "faces", m.NumFaces())
	return m, nil
}

func isBinarySTL(data []byte) bool {
	if len(data) < stlHeaderSize+4 {
		return false
	}
	n := binary.LittleEndian.Uint32(data[stlHeaderSize:])
	return uint64(len(data)) == stlHeaderSize+4+uint64(n)*stlFacetSize
}

func hasSolidPrefix(data []byte) bool {
	data = bytes.TrimLeft(data, " \t\r\n")
	return len(data) >= 5 && strings.EqualFold(string(data[:5]), "solid")
}

func readBinarySTL(data []byte) (*mesh.Mesh, error) {
	if len(data) < stlHeaderSize+4 {
		return nil, errors.New("binary STL is shorter than its header")
	}
	n := int(binary.LittleEndian.Uint32(data[stlHeaderSize:]))
	body := data[stlHeaderSize+4:]
	if len(body) < n*stlFacetSize {
		return nil, fmt.Errorf("binary STL has %d facets but only %d bytes of facet data", n, len(body))
	}
	vi := newVertexIndex(DedupPrecision)
	faces := make([]mesh.Face, n)
	for i := range n {
		facet := body[i*stlFacetSize:]
		for k := range 3 {
			// skip the normal
			off := 12 + 12*k
			p := geom.Vec3(
				float64(math32.Float32frombits(binary.LittleEndian.Uint32(facet[off:]))),
				float64(math32.Float32frombits(binary.LittleEndian.Uint32(facet[off+4:]))),
				float64(math32.Float32frombits(binary.LittleEndian.Uint32(facet[off+8:]))),
			)
			faces[i][k] = vi.add(p)
		}
	}
	return &mesh.Mesh{Vertices: vi.verts, Faces: faces}, nil
}

// readASCIISTL reads the vertex records of each facet. Facet normals
// and solid names are ignored.
func readASCIISTL(data []byte) (*mesh.Mesh, error) {
	vi := newVertexIndex(DedupPrecision)
	res := &mesh.Mesh{}
	var face []int
	sc := bufio.NewScanner(bytes.NewReader(data))
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		switch strings.ToLower(fields[0]) {
		case "facet":
			face = face[:0]
		case "vertex":
			if len(fields) < 4 {
				return nil, fmt.Errorf("ASCII STL line %d: vertex with less than 3 coordinates", line)
			}
			var c [3]float64
			for k := range 3 {
				v, err := strconv.ParseFloat(fields[1+k], 64)
				if err != nil {
					return nil, fmt.Errorf("ASCII STL line %d: %w", line, err)
				}
				c[k] = v
			}
			face = append(face, vi.add(geom.FromArray(c)))
		case "endfacet":
			if len(face) != 3 {
				return nil, fmt.Errorf("ASCII STL line %d: facet with %d vertices", line, len(face))
			}
			res.Faces = append(res.Faces, mesh.Face{face[0], face[1], face[2]})
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	res.Vertices = vi.verts
	return res, nil
}

// WriteSTL writes the given mesh as binary STL, with float32 facet normals.
func WriteSTL(w io.Writer, m *mesh.Mesh) error {
	if err := m.Validate(); err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	var header [stlHeaderSize]byte
	copy(header[:], "binary STL written by meshpoint")
	bw.Write(header[:])
	binary.Write(bw, binary.LittleEndian, uint32(m.NumFaces()))
	var facet [stlFacetSize]byte
	for i := range m.Faces {
		t := m.Triangle(i)
		vs := [4][3]float32{
			facetNormal(t),
			vec32(t.A), vec32(t.B), vec32(t.C),
		}
		for k, v := range vs {
			for c := range 3 {
				binary.LittleEndian.PutUint32(facet[12*k+4*c:], math32.Float32bits(v[c]))
			}
		}
		// attribute byte count stays zero
		if _, err := bw.Write(facet[:]); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteASCIISTL writes the given mesh as ASCII STL with the given solid name.
func WriteASCIISTL(w io.Writer, m *mesh.Mesh, name string) error {
	if err := m.Validate(); err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "solid %s\n", name)
	for i := range m.Faces {
		t := m.Triangle(i)
		n := facetNormal(t)
		fmt.Fprintf(bw, "  facet normal %g %g %g\n    outer loop\n", n[0], n[1], n[2])
		for _, p := range []geom.Point3{t.A, t.B, t.C} {
			fmt.Fprintf(bw, "      vertex %s %s %s\n", formatCoord(p.X), formatCoord(p.Y), formatCoord(p.Z))
		}
		fmt.Fprintf(bw, "    endloop\n  endfacet\n")
	}
	fmt.Fprintf(bw, "endsolid %s\n", name)
	return bw.Flush()
}

func vec32(p geom.Point3) [3]float32 {
	return [3]float32{float32(p.X), float32(p.Y), float32(p.Z)}
}

// facetNormal returns the unit normal of the triangle in float32,
// or zero for a degenerate triangle.
func facetNormal(t geom.Triangle) [3]float32 {
	a, b, c := vec32(t.A), vec32(t.B), vec32(t.C)
	e1 := [3]float32{b[0] - a[0], b[1] - a[1], b[2] - a[2]}
	e2 := [3]float32{c[0] - a[0], c[1] - a[1], c[2] - a[2]}
	n := [3]float32{
		e1[1]*e2[2] - e1[2]*e2[1],
		e1[2]*e2[0] - e1[0]*e2[2],
		e1[0]*e2[1] - e1[1]*e2[0],
	}
	l := math32.Sqrt(n[0]*n[0] + n[1]*n[1] + n[2]*n[2])
	if l == 0 || math32.IsNaN(l) || math32.IsInf(l, 0) {
		return [3]float32{}
	}
	return [3]float32{n[0] / l, n[1] / l, n[2] / l}
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'e', -1, 64)
}
