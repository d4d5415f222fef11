// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command meshpoint generates random points inside closed triangle meshes
// read from STL or OBJ files, and tests points against such meshes.
package main

import (
	"io"
	"os"
	"path/filepath"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/cli"
	"cogentcore.org/meshpoint/base/logx"
	"cogentcore.org/meshpoint/meshio"
	"github.com/caarlos0/env/v11"
)

// Config is the configuration information for the meshpoint cli.
// The seed, attempt limit and worker count can also be set with the
// MESHPOINT_SEED, MESHPOINT_MAX_ATTEMPTS and MESHPOINT_WORKERS
// environment variables, which flags and config files override.
type Config struct {

	// Inputs are the mesh files, in STL or OBJ format.
	Inputs []string `posarg:"leftover" required:"-"`

	// Count is the number of points to generate for each input.
	Count int `default:"100" flag:"n,count"`

	// Strategy is how candidate points are drawn: box or surface.
	Strategy string `default:"box"`

	// Seed seeds the random stream for reproducible points.
	// Zero seeds it from the current time.
	Seed int64 `env:"SEED"`

	// MaxAttempts is the total number of candidate points tried for each
	// input before giving up. Zero means 100 times the count.
	MaxAttempts int `env:"MAX_ATTEMPTS"`

	// Lenient writes the points found so far when the attempt limit is reached.
	Lenient bool

	// Workers is the number of inputs processed at the same time.
	// Zero means the number of CPUs.
	Workers int `env:"WORKERS"`

	// Format is the format of the point output: xyz, csv, json or yaml.
	// If it is empty, it is taken from the output file extension.
	Format string

	// Output is the file to write to. Points are written to
	// standard output if it is empty.
	Output string `flag:"o,output"`

	// Points is the file of query points for the inside command.
	Points string `cmd:"inside"`

	// Triangle is the nine vertex coordinates of the triangle
	// for the sample command.
	Triangle string `cmd:"sample"`

	// Debug shows debug log messages.
	Debug bool

	// Info shows informational log messages.
	Info bool

	// Silent only shows error log messages.
	Silent bool
}

func main() {
	cfg := &Config{}
	errors.Log(env.ParseWithOptions(cfg, env.Options{Prefix: "MESHPOINT_"}))
	opts := cli.DefaultOptions("meshpoint", "Generate random points inside closed triangle meshes.")
	cli.Run(opts, cfg,
		&cli.Cmd[*Config]{Func: Generate, Name: "generate", Root: true,
			Doc: "Generate writes random points inside each input mesh."},
		&cli.Cmd[*Config]{Func: Inside, Name: "inside",
			Doc: "Inside writes whether each of the query points lies inside the input mesh."},
		&cli.Cmd[*Config]{Func: Sample, Name: "sample",
			Doc: "Sample writes random points inside the given triangle."},
		&cli.Cmd[*Config]{Func: Info, Name: "info",
			Doc: "Info prints the size, bounds, area and volume of each input mesh."},
		&cli.Cmd[*Config]{Func: Cube, Name: "cube",
			Doc: "Cube writes the unit cube as binary STL."},
	)
}

// setup applies the logging flags.
func setup(c *Config) {
	logx.UserLevel = logx.LevelFromFlags(c.Debug, c.Info, c.Silent)
	logx.SetDefaultLogger()
}

// outputFormat returns the point format of the config.
func outputFormat(c *Config) (meshio.Format, error) {
	if c.Format == "" && c.Output != "" {
		return meshio.ParseFormat(filepath.Ext(c.Output))
	}
	return meshio.ParseFormat(c.Format)
}

// nopCloser is standard output, which is not closed.
type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// createOutput returns the output of the config.
func createOutput(c *Config) (io.WriteCloser, error) {
	if c.Output == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(c.Output)
}
