// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pointgen

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"cogentcore.org/meshpoint/base/errs"
	"cogentcore.org/meshpoint/geom"
	"cogentcore.org/meshpoint/mesh"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

// Job is one generation run of a [Batch].
type Job struct {

	// Name identifies the job in logs and results, typically a file name.
	Name string

	// Mesh is the mesh to generate points in.
	Mesh *mesh.Mesh

	// Count is the number of points to generate.
	Count int

	// Options are the generation options, which may be nil for the
	// defaults. Options.Rand must be nil, since jobs run concurrently.
	Options *Options
}

// Result is the outcome of one [Job].
type Result struct {
	Name   string
	Points []geom.Point3

	// Err is the error of the job, if any. With lenient options it may be
	// an [errs.GenerationLimitExceeded] error alongside partial Points.
	Err error
}

// Batch runs the given jobs concurrently on at most workers goroutines
// (the number of CPUs if workers is not positive), and returns their
// results in job order. Each job gets its own [Generator] and random
// stream: a job with a nonzero Seed is seeded with Seed plus its index,
// so that a batch is reproducible as a whole.
//
// The first job error cancels the remaining jobs and is returned, except
// for the limit errors of lenient jobs, which are only reported in their
// results.
func Batch(ctx context.Context, jobs []Job, workers int) ([]Result, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	ctx, span := tracer.Start(ctx, "pointgen.Batch", trace.WithAttributes(
		attribute.Int("jobs", len(jobs)),
		attribute.Int("workers", workers),
	))
	defer span.End()

	results := make([]Result, len(jobs))
	opts := make([]*Options, len(jobs))
	base := time.Now().UnixNano()
	for i, job := range jobs {
		results[i].Name = job.Name
		o := DefaultOptions()
		if job.Options != nil {
			*o = *job.Options
		}
		if o.Rand != nil {
			err := errs.Errorf(errs.InvalidArgument, "job %d (%s): a shared random stream cannot be used in a batch", i, job.Name)
			results[i].Err = err
			return results, err
		}
		if o.Seed != 0 {
			o.Seed += int64(i)
		} else {
			o.Seed = base + int64(i)
		}
		opts[i] = o
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i, job := range jobs {
		eg.Go(func() error {
			pts, err := runJob(ctx, job, opts[i])
			if err != nil {
				err = fmt.Errorf("job %d (%s): %w", i, job.Name, err)
			}
			results[i].Points, results[i].Err = pts, err
			if err != nil && opts[i].Lenient && errors.Is(err, errs.GenerationLimitExceeded) {
				return nil
			}
			return err
		})
	}
	err := eg.Wait()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return results, err
}

func runJob(ctx context.Context, job Job, opts *Options) ([]geom.Point3, error) {
	g, err := New(job.Mesh, opts)
	if err != nil {
		return nil, err
	}
	slog.Debug("starting batch job", "name", job.Name, "count", job.Count, "seed", opts.Seed)
	return g.GenerateContext(ctx, job.Count, nil)
}
