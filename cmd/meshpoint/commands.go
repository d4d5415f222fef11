// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/randx"
	"cogentcore.org/meshpoint/base/errs"
	"cogentcore.org/meshpoint/geom"
	"cogentcore.org/meshpoint/mesh"
	"cogentcore.org/meshpoint/meshio"
	"cogentcore.org/meshpoint/pointgen"
)

// Generate writes random points inside each input mesh. Multiple inputs
// are processed concurrently and their points are written in input order.
func Generate(c *Config) error {
	setup(c)
	if len(c.Inputs) == 0 {
		return errs.New(errs.InvalidArgument, "no input mesh files given")
	}
	format, err := outputFormat(c)
	if err != nil {
		return err
	}
	strategy, err := pointgen.ParseStrategy(c.Strategy)
	if err != nil {
		return err
	}
	jobs := make([]pointgen.Job, len(c.Inputs))
	for i, fn := range c.Inputs {
		m, err := meshio.Open(fn)
		if err != nil {
			return err
		}
		jobs[i] = pointgen.Job{Name: fn, Mesh: m, Count: c.Count, Options: &pointgen.Options{
			Strategy:    strategy,
			MaxAttempts: c.MaxAttempts,
			Lenient:     c.Lenient,
			Seed:        c.Seed,
		}}
	}

	var pts []geom.Point3
	if len(jobs) == 1 {
		pts, err = generateOne(jobs[0])
	} else {
		pts, err = generateBatch(jobs, c.Workers)
	}
	if err != nil && !(c.Lenient && errors.Is(err, errs.GenerationLimitExceeded)) {
		return err
	}
	errors.Log(err)
	return writePoints(c, pts, format)
}

// generateOne generates the points of one job, logging its progress.
func generateOne(job pointgen.Job) ([]geom.Point3, error) {
	opts := *job.Options
	opts.ProgressEvery = max(1, job.Count/10)
	g, err := pointgen.New(job.Mesh, &opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", job.Name, err)
	}
	pts, err := g.GenerateContext(context.Background(), job.Count, func(current, total int) {
		slog.Info("generating points", "file", job.Name, "current", current, "total", total)
	})
	if err != nil {
		err = fmt.Errorf("%s: %w", job.Name, err)
	}
	return pts, err
}

func generateBatch(jobs []pointgen.Job, workers int) ([]geom.Point3, error) {
	res, err := pointgen.Batch(context.Background(), jobs, workers)
	if err != nil {
		return nil, err
	}
	var pts []geom.Point3
	var rerrs []error
	for _, r := range res {
		slog.Info("generated points", "file", r.Name, "count", len(r.Points))
		pts = append(pts, r.Points...)
		if r.Err != nil {
			rerrs = append(rerrs, r.Err)
		}
	}
	return pts, errors.Join(rerrs...)
}

func writePoints(c *Config, pts []geom.Point3, format meshio.Format) error {
	w, err := createOutput(c)
	if err != nil {
		return err
	}
	if err := meshio.WritePoints(w, pts, format); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}

// Inside writes each query point followed by whether it lies inside the input mesh.
func Inside(c *Config) error {
	setup(c)
	if len(c.Inputs) != 1 {
		return errs.Errorf(errs.InvalidArgument, "inside needs exactly one input mesh file, got %d", len(c.Inputs))
	}
	if c.Points == "" {
		return errs.New(errs.InvalidArgument, "no query points file given")
	}
	m, err := meshio.Open(c.Inputs[0])
	if err != nil {
		return err
	}
	pfmt, err := meshio.ParseFormat(filepath.Ext(c.Points))
	if err != nil {
		return err
	}
	f, err := os.Open(c.Points)
	if err != nil {
		return err
	}
	pts, err := meshio.ReadPoints(f, pfmt)
	errors.Log(f.Close())
	if err != nil {
		return fmt.Errorf("%s: %w", c.Points, err)
	}
	cont, err := mesh.NewContainment(m, nil)
	if err != nil {
		return err
	}
	w, err := createOutput(c)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	for _, p := range pts {
		fmt.Fprintf(bw, "%g %g %g %v\n", p.X, p.Y, p.Z, cont.Contains(p))
	}
	if err := bw.Flush(); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}

// Sample writes random points inside the triangle given by the Triangle option.
func Sample(c *Config) error {
	setup(c)
	a, b, d, err := parseTriangle(c.Triangle)
	if err != nil {
		return err
	}
	if c.Count <= 0 {
		return errs.Errorf(errs.InvalidArgument, "point count must be positive, got %d", c.Count)
	}
	format, err := outputFormat(c)
	if err != nil {
		return err
	}
	rnd := randx.Rand(randx.NewGlobalRand())
	if c.Seed != 0 {
		rnd = randx.NewSysRand(c.Seed)
	}
	pts := make([]geom.Point3, c.Count)
	for i := range pts {
		pts[i] = geom.SampleInTriangle(a, b, d, rnd)
	}
	return writePoints(c, pts, format)
}

// parseTriangle parses nine coordinates separated by spaces or commas.
func parseTriangle(s string) (a, b, c geom.Point3, err error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ' ' || r == ',' })
	if len(fields) != 9 {
		err = errs.Errorf(errs.InvalidArgument, "triangle needs 9 coordinates, got %d", len(fields))
		return
	}
	var v [9]float64
	for i, f := range fields {
		v[i], err = strconv.ParseFloat(f, 64)
		if err != nil {
			err = errs.Errorf(errs.InvalidArgument, "triangle coordinate %d: %w", i, err)
			return
		}
	}
	a, b, c = geom.Vec3(v[0], v[1], v[2]), geom.Vec3(v[3], v[4], v[5]), geom.Vec3(v[6], v[7], v[8])
	return
}

// Info prints the size, bounds, area and volume of each input mesh.
func Info(c *Config) error {
	setup(c)
	if len(c.Inputs) == 0 {
		return errs.New(errs.InvalidArgument, "no input mesh files given")
	}
	w, err := createOutput(c)
	if err != nil {
		return err
	}
	var ierrs []error
	for _, fn := range c.Inputs {
		m, err := meshio.Open(fn)
		if err != nil {
			ierrs = append(ierrs, errors.Log(err))
			continue
		}
		b := m.Bounds()
		fmt.Fprintf(w, "%s\n  vertices: %d\n  faces:    %d\n  bounds:   [%g %g %g] [%g %g %g]\n  area:     %g\n  volume:   %g\n",
			fn, m.NumVertices(), m.NumFaces(), b.Min.X, b.Min.Y, b.Min.Z, b.Max.X, b.Max.Y, b.Max.Z, m.SurfaceArea(), m.Volume())
	}
	ierrs = append(ierrs, w.Close())
	return errors.Join(ierrs...)
}

// Cube writes the unit cube as binary STL, to cube.stl by default.
func Cube(c *Config) error {
	setup(c)
	fn := c.Output
	if fn == "" {
		fn = "cube.stl"
	}
	slog.Info("writing unit cube", "file", errors.Log1(filepath.Abs(fn)))
	return meshio.Save(fn, mesh.Box(geom.B3(0, 0, 0, 1, 1, 1)))
}
