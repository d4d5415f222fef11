// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package meshio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"cogentcore.org/meshpoint/geom"
	"cogentcore.org/meshpoint/mesh"
)

const blanks = "\r\n\t "

// objDecoder holds the state of reading one OBJ file.
type objDecoder struct {
	mesh     mesh.Mesh
	line     int
	warnings []string
}

// ReadOBJ reads the vertex positions and faces of a Wavefront OBJ mesh.
// Polygons with more than 3 vertices are split into a fan of triangles
// around their first vertex, and negative indices count back from the
// last vertex read. All objects and groups are merged into one mesh.
func ReadOBJ(r io.Reader) (*mesh.Mesh, error) {
	dec := &objDecoder{}
	if err := dec.parse(r); err != nil {
		return nil, err
	}
	if len(dec.warnings) > 0 {
		slog.Debug("ignored OBJ records", "count", len(dec.warnings), "first", dec.warnings[0])
	}
	m := &dec.mesh
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

func (dec *objDecoder) parse(r io.Reader) error {
	bufin := bufio.NewReader(r)
	dec.line = 1
	for {
		line, err := bufin.ReadString('\n')
		if err != nil && err != io.EOF {
			return err
		}
		if perr := dec.parseLine(strings.Trim(line, blanks)); perr != nil {
			return perr
		}
		if err == io.EOF {
			break
		}
		dec.line++
	}
	return nil
}

func (dec *objDecoder) parseLine(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return nil
	}
	switch fields[0] {
	case "v":
		return dec.parseVertex(fields[1:])
	case "f":
		return dec.parseFace(fields[1:])
	case "vn", "vt", "o", "g", "s", "mtllib", "usemtl":
	default:
		dec.warnings = append(dec.warnings, fmt.Sprintf("obj(%d): field not supported: %s", dec.line, fields[0]))
	}
	return nil
}

// parseVertex parses a vertex position line:
// v <x> <y> <z> [w]
func (dec *objDecoder) parseVertex(fields []string) error {
	if len(fields) < 3 {
		return dec.formatError("less than 3 coordinates in 'v' line")
	}
	var c [3]float64
	for i, f := range fields[:3] {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return dec.formatError(err.Error())
		}
		c[i] = v
	}
	dec.mesh.Vertices = append(dec.mesh.Vertices, geom.FromArray(c))
	return nil
}

// parseFace parses a face line, of which only the vertex indices are used:
// f <v>[/<vt>[/<vn>]] ...
func (dec *objDecoder) parseFace(fields []string) error {
	if len(fields) < 3 {
		return dec.formatError("face line with less than 3 vertices")
	}
	idx := make([]int, len(fields))
	for pos, f := range fields {
		vf, _, _ := strings.Cut(f, "/")
		val, err := strconv.Atoi(vf)
		if err != nil {
			return dec.formatError(err.Error())
		}
		switch {
		case val > 0:
			idx[pos] = val - 1
		case val < 0:
			idx[pos] = len(dec.mesh.Vertices) + val
		default:
			return dec.formatError("face vertex index value equal to 0")
		}
	}
	for i := 1; i+1 < len(idx); i++ {
		dec.mesh.Faces = append(dec.mesh.Faces, mesh.Face{idx[0], idx[i], idx[i+1]})
	}
	return nil
}

func (dec *objDecoder) formatError(msg string) error {
	return errors.New(msg + " in line " + strconv.Itoa(dec.line))
}
