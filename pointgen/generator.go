// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pointgen generates random points inside closed triangle meshes
// by rejection sampling: candidate points are drawn from the bounding box
// of the mesh (or near its surface) and kept only when the parity
// containment test places them inside.
package pointgen

import (
	"context"
	"iter"
	"log/slog"

	"cogentcore.org/core/base/randx"
	"cogentcore.org/meshpoint/base/errs"
	"cogentcore.org/meshpoint/geom"
	"cogentcore.org/meshpoint/mesh"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// ctxCheckInterval is the number of candidates between checks of the context.
const ctxCheckInterval = 256

var tracer = otel.Tracer("cogentcore.org/meshpoint/pointgen")

// ProgressFunc is called with the number of points accepted so far
// and the number of points requested. It is called synchronously on the
// generating goroutine, so it must not block for long.
type ProgressFunc func(current, total int)

// Generator generates random points inside one mesh.
// It owns its random stream and is not safe for concurrent use.
type Generator struct {
	Options

	mesh    *mesh.Mesh
	contain *mesh.Containment
	bounds  geom.Box3
	rand    randx.Rand
	surface *surfaceSampler
}

// New returns a new [Generator] for the given closed mesh.
// The options may be nil for [DefaultOptions].
//
// It returns an [errs.DegenerateGeometry] error for a mesh without faces
// and an [errs.InvalidArgument] error for a face index out of range.
func New(m *mesh.Mesh, opts *Options) (*Generator, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	g := &Generator{Options: *opts, mesh: m}
	g.defaults()
	c, err := mesh.NewContainment(m, g.Containment)
	if err != nil {
		return nil, err
	}
	g.contain = c
	g.bounds = m.Bounds()
	switch g.Strategy {
	case BoundingBox:
	case Surface:
		g.surface, err = newSurfaceSampler(m, g.SurfaceDepth)
		if err != nil {
			return nil, err
		}
	default:
		return nil, errs.Errorf(errs.InvalidArgument, "unknown sampling strategy %v", g.Strategy)
	}
	g.rand = g.newRand()
	return g, nil
}

// GenerateInteriorPoints returns count random points inside the given
// closed mesh using [DefaultOptions]. See [Generator.Generate].
func GenerateInteriorPoints(m *mesh.Mesh, count int, onProgress ProgressFunc) ([]geom.Point3, error) {
	if err := checkCount(count); err != nil {
		return nil, err
	}
	g, err := New(m, nil)
	if err != nil {
		return nil, err
	}
	return g.Generate(count, onProgress)
}

// Mesh returns the mesh that points are generated in.
func (g *Generator) Mesh() *mesh.Mesh {
	return g.mesh
}

// Bounds returns the bounding box of the mesh.
func (g *Generator) Bounds() geom.Box3 {
	return g.bounds
}

// Generate returns exactly count random points inside the mesh.
// onProgress, if non-nil, is called with strictly increasing counts
// after every [Options.ProgressEvery] accepted points and after the last one.
//
// It returns an [errs.InvalidArgument] error if count is not positive.
// If the attempt limit is reached first, it returns an
// [errs.GenerationLimitExceeded] error, along with the points accepted
// so far in [Options.Lenient] mode and nil points otherwise.
func (g *Generator) Generate(count int, onProgress ProgressFunc) ([]geom.Point3, error) {
	return g.GenerateContext(context.Background(), count, onProgress)
}

// GenerateContext is [Generator.Generate] with a context, which stops
// the generation with the context error when it is done.
func (g *Generator) GenerateContext(ctx context.Context, count int, onProgress ProgressFunc) ([]geom.Point3, error) {
	if err := checkCount(count); err != nil {
		return nil, err
	}
	limit := g.attemptLimit(count)
	ctx, span := tracer.Start(ctx, "pointgen.Generate", trace.WithAttributes(
		attribute.Int("count", count),
		attribute.Int("faces", g.mesh.NumFaces()),
		attribute.String("strategy", g.Strategy.String()),
		attribute.Int("max_attempts", limit),
	))
	defer span.End()
	slog.Debug("generating interior points", "count", count, "strategy", g.Strategy, "maxAttempts", limit)

	pts := make([]geom.Point3, 0, count)
	attempts := 0
	for len(pts) < count {
		if attempts >= limit {
			err := errs.Errorf(errs.GenerationLimitExceeded, "could not generate enough interior points: got %d of %d after %d attempts", len(pts), count, attempts)
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			if g.Lenient {
				slog.Warn("returning partial interior points", "got", len(pts), "count", count, "attempts", attempts)
				return pts, err
			}
			return nil, err
		}
		if attempts%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
				return nil, err
			}
		}
		attempts++
		p := g.candidate()
		if !g.contain.Contains(p) {
			continue
		}
		pts = append(pts, p)
		n := len(pts)
		if onProgress != nil && (n%g.ProgressEvery == 0 || n == count) {
			onProgress(n, count)
		}
	}
	span.SetAttributes(attribute.Int("attempts", attempts))
	slog.Debug("generated interior points", "count", count, "attempts", attempts)
	return pts, nil
}

// Points returns a sequence of random points inside the mesh, which
// continues until the caller stops iterating. It ends with the context
// error when ctx is done, and with an [errs.GenerationLimitExceeded] error
// once [Options.MaxAttempts] candidates have been tried, if that is set.
//
// With a zero MaxAttempts there is no attempt limit: for a mesh that
// encloses no volume the sequence then yields nothing until ctx is done,
// so pass a ctx that can be canceled or set MaxAttempts.
func (g *Generator) Points(ctx context.Context) iter.Seq2[geom.Point3, error] {
	return func(yield func(geom.Point3, error) bool) {
		attempts := 0
		accepted := 0
		for {
			if g.MaxAttempts > 0 && attempts >= g.MaxAttempts {
				yield(geom.Point3{}, errs.Errorf(errs.GenerationLimitExceeded, "could not generate more interior points: got %d after %d attempts", accepted, attempts))
				return
			}
			if attempts%ctxCheckInterval == 0 {
				if err := ctx.Err(); err != nil {
					yield(geom.Point3{}, err)
					return
				}
			}
			attempts++
			p := g.candidate()
			if !g.contain.Contains(p) {
				continue
			}
			if err := ctx.Err(); err != nil {
				yield(geom.Point3{}, err)
				return
			}
			accepted++
			if !yield(p, nil) {
				return
			}
		}
	}
}

// candidate returns the next candidate point.
func (g *Generator) candidate() geom.Point3 {
	if g.surface != nil {
		return g.surface.sample(g.rand)
	}
	return geom.SampleInBox(g.bounds, g.rand)
}

func checkCount(count int) error {
	if count <= 0 {
		return errs.Errorf(errs.InvalidArgument, "point count must be positive, got %d", count)
	}
	return nil
}
