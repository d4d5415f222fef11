// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pointgen

import (
	"strconv"
	"strings"
	"time"

	"cogentcore.org/core/base/randx"
	"cogentcore.org/meshpoint/base/errs"
	"cogentcore.org/meshpoint/mesh"
)

// DefaultAttemptFactor is the default number of candidate points
// tried per requested point before generation gives up.
const DefaultAttemptFactor = 100

// Strategy is a way of drawing candidate points.
type Strategy int32

const (
	// BoundingBox draws candidates uniformly from the bounding box of
	// the mesh. The accepted points are uniform over the mesh volume.
	BoundingBox Strategy = iota

	// Surface picks a face with probability proportional to its area,
	// samples a point on it and offsets that point along the face normal,
	// to either side, by a random depth up to [Options.SurfaceDepth].
	// The accepted points are concentrated near the surface and are not
	// uniform over the volume, but far fewer candidates are rejected for
	// thin or elongated meshes that fill little of their bounding box.
	Surface
)

var strategyNames = [...]string{BoundingBox: "box", Surface: "surface"}

// String returns the name of the strategy.
func (s Strategy) String() string {
	if s < 0 || int(s) >= len(strategyNames) {
		return "Strategy(" + strconv.Itoa(int(s)) + ")"
	}
	return strategyNames[s]
}

// ParseStrategy returns the strategy with the given name.
// "bbox" and "bounding-box" are accepted for [BoundingBox].
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "box", "bbox", "bounding-box", "boundingbox":
		return BoundingBox, nil
	case "surface":
		return Surface, nil
	}
	return BoundingBox, errs.Errorf(errs.InvalidArgument, "unknown sampling strategy %q", s)
}

// MarshalText implements [encoding.TextMarshaler].
func (s Strategy) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (s *Strategy) UnmarshalText(text []byte) error {
	v, err := ParseStrategy(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Options are the parameters of a [Generator].
type Options struct {

	// Strategy is how candidate points are drawn.
	Strategy Strategy

	// AttemptFactor is the number of candidates tried per requested point
	// when MaxAttempts is zero. If it is zero, [DefaultAttemptFactor] is used.
	AttemptFactor int

	// MaxAttempts is the total number of candidates tried before
	// generation fails with an [errs.GenerationLimitExceeded] error.
	// If it is zero, AttemptFactor times the requested count is used
	// by [Generator.Generate], and [Generator.Points] is unbounded.
	MaxAttempts int

	// Lenient makes [Generator.Generate] return the points accepted so far
	// together with the [errs.GenerationLimitExceeded] error, instead of nil.
	Lenient bool

	// ProgressEvery is how many accepted points there are between
	// progress reports. The last point is always reported.
	// If it is zero, every point is reported.
	ProgressEvery int

	// SurfaceDepth is the largest offset from the surface for the
	// [Surface] strategy. If it is zero, 5% of the diagonal of the
	// mesh bounding box is used.
	SurfaceDepth float64

	// Seed seeds a new random stream when Rand is nil. If it is also
	// zero, the stream is seeded from the current time.
	Seed int64

	// Rand is the random stream to draw from, which is not safe for
	// concurrent use by more than one [Generator].
	Rand randx.Rand

	// Containment are the options of the containment test.
	// It may be nil for the defaults.
	Containment *mesh.ContainmentOptions
}

// DefaultOptions returns new default generation options.
func DefaultOptions() *Options {
	return &Options{
		Strategy:      BoundingBox,
		AttemptFactor: DefaultAttemptFactor,
		ProgressEvery: 1,
	}
}

// defaults fills in the zero values that have a default.
func (o *Options) defaults() {
	if o.AttemptFactor <= 0 {
		o.AttemptFactor = DefaultAttemptFactor
	}
	if o.ProgressEvery <= 0 {
		o.ProgressEvery = 1
	}
}

// newRand returns the random stream described by the options.
func (o *Options) newRand() randx.Rand {
	if o.Rand != nil {
		return o.Rand
	}
	seed := o.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return randx.NewSysRand(seed)
}

// attemptLimit returns the number of candidates tried for count points.
func (o *Options) attemptLimit(count int) int {
	if o.MaxAttempts > 0 {
		return o.MaxAttempts
	}
	return o.AttemptFactor * count
}
