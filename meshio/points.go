// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package meshio

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"cogentcore.org/meshpoint/geom"
	"gopkg.in/yaml.v3"
)

// Format is a text format for lists of points.
type Format int32

const (
	// XYZ is one point per line, with space separated coordinates.
	XYZ Format = iota

	// CSV is comma separated values with an x,y,z header.
	CSV

	// JSON is an array of [x, y, z] arrays.
	JSON

	// YAML is a document with a points sequence of [x, y, z] sequences.
	YAML
)

var formatNames = [...]string{XYZ: "xyz", CSV: "csv", JSON: "json", YAML: "yaml"}

func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return "Format(" + strconv.Itoa(int(f)) + ")"
	}
	return formatNames[f]
}

// ParseFormat returns the format with the given name, which may
// also be a file extension such as ".csv" or ".yml".
func ParseFormat(s string) (Format, error) {
	switch strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), ".") {
	case "xyz", "txt", "":
		return XYZ, nil
	case "csv":
		return CSV, nil
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	}
	return XYZ, fmt.Errorf("meshio: unknown point format %q", s)
}

// yamlPoints is the YAML document of a point list.
type yamlPoints struct {
	Count  int          `yaml:"count"`
	Points [][3]float64 `yaml:"points"`
}

// WritePoints writes the given points in the given format.
func WritePoints(w io.Writer, pts []geom.Point3, format Format) error {
	switch format {
	case XYZ:
		bw := bufio.NewWriter(w)
		for _, p := range pts {
			fmt.Fprintf(bw, "%s %s %s\n", formatCoord(p.X), formatCoord(p.Y), formatCoord(p.Z))
		}
		return bw.Flush()
	case CSV:
		cw := csv.NewWriter(w)
		cw.Write([]string{"x", "y", "z"})
		for _, p := range pts {
			cw.Write([]string{formatCoord(p.X), formatCoord(p.Y), formatCoord(p.Z)})
		}
		cw.Flush()
		return cw.Error()
	case JSON:
		enc := json.NewEncoder(w)
		return enc.Encode(toRows(pts))
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(yamlPoints{Count: len(pts), Points: toRows(pts)}); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("meshio: unknown point format %v", format)
}

// ReadPoints reads points in the given format, as written by [WritePoints].
// The XYZ format also accepts comma separated coordinates and # comments.
func ReadPoints(r io.Reader, format Format) ([]geom.Point3, error) {
	switch format {
	case XYZ:
		return readXYZ(r)
	case CSV:
		recs, err := csv.NewReader(r).ReadAll()
		if err != nil {
			return nil, err
		}
		var pts []geom.Point3
		for i, rec := range recs {
			if i == 0 && len(rec) > 0 && strings.EqualFold(strings.TrimSpace(rec[0]), "x") {
				continue
			}
			p, err := parsePoint(rec)
			if err != nil {
				return nil, fmt.Errorf("meshio: csv record %d: %w", i+1, err)
			}
			pts = append(pts, p)
		}
		return pts, nil
	case JSON:
		var rows [][3]float64
		if err := json.NewDecoder(r).Decode(&rows); err != nil {
			return nil, err
		}
		return fromRows(rows), nil
	case YAML:
		var doc yamlPoints
		if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
			return nil, err
		}
		return fromRows(doc.Points), nil
	}
	return nil, fmt.Errorf("meshio: unknown point format %v", format)
}

func readXYZ(r io.Reader) ([]geom.Point3, error) {
	var pts []geom.Point3
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		s := sc.Text()
		if i := strings.IndexByte(s, '#'); i >= 0 {
			s = s[:i]
		}
		fields := strings.FieldsFunc(s, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == '\r'
		})
		if len(fields) == 0 {
			continue
		}
		p, err := parsePoint(fields)
		if err != nil {
			return nil, fmt.Errorf("meshio: line %d: %w", line, err)
		}
		pts = append(pts, p)
	}
	return pts, sc.Err()
}

func parsePoint(fields []string) (geom.Point3, error) {
	if len(fields) != 3 {
		return geom.Point3{}, fmt.Errorf("expected 3 coordinates, found %d", len(fields))
	}
	var c [3]float64
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return geom.Point3{}, err
		}
		c[i] = v
	}
	return geom.FromArray(c), nil
}

func toRows(pts []geom.Point3) [][3]float64 {
	rows := make([][3]float64, len(pts))
	for i, p := range pts {
		rows[i] = geom.ToArray(p)
	}
	return rows
}

func fromRows(rows [][3]float64) []geom.Point3 {
	pts := make([]geom.Point3, len(rows))
	for i, r := range rows {
		pts[i] = geom.FromArray(r)
	}
	return pts
}
