// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"math"
	"testing"

	"cogentcore.org/core/base/randx"
	"cogentcore.org/meshpoint/base/errs"
	"cogentcore.org/meshpoint/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

var cubeVertices = [][]float64{
	{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},
	{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1},
}

var cubeFaces = [][]int{
	{0, 1, 2}, {0, 2, 3}, // bottom
	{4, 5, 6}, {4, 6, 7}, // top
	{0, 4, 7}, {0, 7, 3}, // left
	{1, 5, 6}, {1, 6, 2}, // right
	{0, 1, 5}, {0, 5, 4}, // front
	{3, 2, 6}, {3, 6, 7}, // back
}

func cube(t *testing.T) *Mesh {
	m, err := FromRows(cubeVertices, cubeFaces)
	require.NoError(t, err)
	return m
}

// sphere returns a closed UV sphere of radius 1 around the origin.
func sphere(nlat, nlon int) *Mesh {
	m := &Mesh{}
	m.Vertices = append(m.Vertices, geom.Vec3(0, 0, 1))
	for i := 1; i < nlat; i++ {
		th := math.Pi * float64(i) / float64(nlat)
		for j := range nlon {
			ph := 2 * math.Pi * float64(j) / float64(nlon)
			m.Vertices = append(m.Vertices, geom.Vec3(math.Sin(th)*math.Cos(ph), math.Sin(th)*math.Sin(ph), math.Cos(th)))
		}
	}
	m.Vertices = append(m.Vertices, geom.Vec3(0, 0, -1))
	south := len(m.Vertices) - 1
	ring := func(i, j int) int { return 1 + (i-1)*nlon + (j % nlon) }
	for j := range nlon {
		m.Faces = append(m.Faces, Face{0, ring(1, j), ring(1, j+1)})
		m.Faces = append(m.Faces, Face{south, ring(nlat-1, j+1), ring(nlat-1, j)})
	}
	for i := 1; i < nlat-1; i++ {
		for j := range nlon {
			m.Faces = append(m.Faces, Face{ring(i, j), ring(i+1, j), ring(i+1, j+1)})
			m.Faces = append(m.Faces, Face{ring(i, j), ring(i+1, j+1), ring(i, j+1)})
		}
	}
	return m
}

// merge returns one mesh holding the faces of all of the given meshes.
func merge(ms ...*Mesh) *Mesh {
	res := &Mesh{}
	for _, m := range ms {
		off := len(res.Vertices)
		res.Vertices = append(res.Vertices, m.Vertices...)
		for _, f := range m.Faces {
			res.Faces = append(res.Faces, Face{f[0] + off, f[1] + off, f[2] + off})
		}
	}
	return res
}

func TestCubeRegression(t *testing.T) {
	m := cube(t)
	in, err := IsInside(geom.Vec3(0.5, 0.5, 0.5), m)
	assert.NoError(t, err)
	assert.True(t, in)

	in, err = IsInside(geom.Vec3(2.0, 0.5, 0.5), m)
	assert.NoError(t, err)
	assert.False(t, in)

	c, err := NewContainment(m, nil)
	require.NoError(t, err)
	assert.True(t, c.Contains(geom.Vec3(0.5, 0.5, 0.5)))
	assert.False(t, c.Contains(geom.Vec3(2.0, 0.5, 0.5)))
	assert.Equal(t, 1, c.Crossings(geom.Vec3(0.5, 0.5, 0.5)))
}

func TestCubePoints(t *testing.T) {
	m := cube(t)
	for _, tc := range []struct {
		p  geom.Point3
		in bool
	}{
		{geom.Vec3(0.1, 0.1, 0.1), true},
		{geom.Vec3(0.9, 0.9, 0.9), true},
		{geom.Vec3(0.5, 0.01, 0.99), true},
		{geom.Vec3(-0.5, 0.5, 0.5), false},
		{geom.Vec3(0.5, -0.5, 0.5), false},
		{geom.Vec3(0.5, 0.5, 1.5), false},
		{geom.Vec3(0.5, 1.5, 0.5), false},
		{geom.Vec3(10, 10, 10), false},
		{geom.Vec3(-10, 0.5, 0.5), false},
	} {
		in, err := IsInside(tc.p, m)
		assert.NoError(t, err)
		assert.Equal(t, tc.in, in, "%v", tc.p)
	}
}

func TestIdempotent(t *testing.T) {
	m := sphere(12, 16)
	rnd := randx.NewSysRand(11)
	for range 200 {
		p := geom.SampleInBox(geom.B3(-1.2, -1.2, -1.2, 1.2, 1.2, 1.2), rnd)
		a, err := IsInside(p, m)
		require.NoError(t, err)
		b, err := IsInside(p, m)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	}
}

func TestIsometryInvariance(t *testing.T) {
	m := cube(t)
	rnd := randx.NewSysRand(3)
	isos := []func(geom.Point3) geom.Point3{
		func(p geom.Point3) geom.Point3 { return r3.Add(p, geom.Vec3(5, -3, 2)) },
		r3.NewRotation(math.Pi/2, geom.Vec3(0, 0, 1)).Rotate,
		r3.NewRotation(0.7, r3.Unit(geom.Vec3(1, 2, 3))).Rotate,
		func(p geom.Point3) geom.Point3 {
			return r3.Add(r3.NewRotation(2.1, r3.Unit(geom.Vec3(-1, 0.5, 0.2))).Rotate(p), geom.Vec3(-100, 40, 7))
		},
	}
	nearSurface := func(p geom.Point3) bool {
		for _, c := range []float64{p.X, p.Y, p.Z} {
			if math.Abs(c) < 1e-3 || math.Abs(c-1) < 1e-3 {
				return true
			}
		}
		return false
	}
	for i, iso := range isos {
		tm := m.Transform(iso)
		tc, err := NewContainment(tm, nil)
		require.NoError(t, err)
		for range 300 {
			p := geom.SampleInBox(geom.B3(-0.5, -0.5, -0.5, 1.5, 1.5, 1.5), rnd)
			if nearSurface(p) {
				continue
			}
			want, err := IsInside(p, m)
			require.NoError(t, err)
			got, err := IsInside(iso(p), tm)
			require.NoError(t, err)
			assert.Equal(t, want, got, "isometry %d, point %v", i, p)
			assert.Equal(t, want, tc.Contains(iso(p)), "isometry %d, point %v", i, p)
		}
	}
}

func TestSphereContainment(t *testing.T) {
	m := sphere(16, 24)
	c, err := NewContainment(m, nil)
	require.NoError(t, err)
	rnd := randx.NewSysRand(5)
	for range 2000 {
		p := geom.SampleInBox(geom.B3(-1.5, -1.5, -1.5, 1.5, 1.5, 1.5), rnd)
		r := r3.Norm(p)
		switch {
		case r < 0.9:
			assert.True(t, c.Contains(p), "%v", p)
		case r > 1.01:
			assert.False(t, c.Contains(p), "%v", p)
		}
	}
}

func TestTreeMatchesBruteForce(t *testing.T) {
	twoCubes := merge(Box(geom.B3(0, 0, 0, 1, 1, 1)), Box(geom.B3(2, 0.2, -0.3, 3.5, 1, 0.5)))
	rot := r3.NewRotation(1.1, r3.Unit(geom.Vec3(0.3, -1, 0.4)))
	for name, m := range map[string]*Mesh{
		"cube":       cube(t),
		"two cubes":  twoCubes,
		"sphere":     sphere(10, 14),
		"rotated":    sphere(8, 9).Transform(rot.Rotate),
		"nested box": merge(Box(geom.B3(-2, -2, -2, 2, 2, 2)), Box(geom.B3(-1, -1, -1, 1, 1, 1))),
	} {
		t.Run(name, func(t *testing.T) {
			c, err := NewContainment(m, nil)
			require.NoError(t, err)
			box := m.Bounds()
			box.ExpandByScalar(0.25)
			rnd := randx.NewSysRand(9)
			for range 1000 {
				p := geom.SampleInBox(box, rnd)
				want, err := IsInside(p, m)
				require.NoError(t, err)
				assert.Equal(t, want, c.Contains(p), "%v", p)
			}
		})
	}
}

func TestNonConvex(t *testing.T) {
	m := merge(Box(geom.B3(0, 0, 0, 1, 1, 1)), Box(geom.B3(2, 0, 0, 3, 1, 1)))
	for _, tc := range []struct {
		p  geom.Point3
		in bool
	}{
		{geom.Vec3(0.5, 0.5, 0.5), true},
		{geom.Vec3(2.5, 0.5, 0.5), true},
		{geom.Vec3(1.5, 0.5, 0.5), false},
		{geom.Vec3(-0.5, 0.5, 0.5), false},
	} {
		in, err := IsInside(tc.p, m)
		assert.NoError(t, err)
		assert.Equal(t, tc.in, in, "%v", tc.p)
	}

	// a hollow shell: the inner box inverts parity
	shell := merge(Box(geom.B3(-2, -2, -2, 2, 2, 2)), Box(geom.B3(-1, -1, -1, 1, 1, 1)))
	in, err := IsInside(geom.Vec3(0.1, 0.2, 0.3), shell)
	assert.NoError(t, err)
	assert.False(t, in)
	in, err = IsInside(geom.Vec3(1.5, 0.2, 0.3), shell)
	assert.NoError(t, err)
	assert.True(t, in)
}

func TestDegenerate(t *testing.T) {
	m := &Mesh{Vertices: []geom.Point3{geom.Vec3(0, 0, 0)}}
	in, err := IsInside(geom.Vec3(0, 0, 0), m)
	assert.False(t, in)
	assert.ErrorIs(t, err, errs.DegenerateGeometry)

	in, err = IsInside(geom.Vec3(0, 0, 0), nil)
	assert.False(t, in)
	assert.ErrorIs(t, err, errs.DegenerateGeometry)

	_, err = NewContainment(&Mesh{}, nil)
	assert.ErrorIs(t, err, errs.DegenerateGeometry)
}

func TestInvalidIndex(t *testing.T) {
	m := cube(t)
	m.Faces = append(m.Faces, Face{0, 1, 8})
	_, err := IsInside(geom.Vec3(0.5, 0.5, 0.5), m)
	assert.ErrorIs(t, err, errs.InvalidArgument)
	assert.ErrorContains(t, err, "invalid index")

	_, err = NewContainment(m, nil)
	assert.ErrorIs(t, err, errs.InvalidArgument)

	_, err = New(m.Vertices, []Face{{-1, 0, 1}})
	assert.ErrorIs(t, err, errs.InvalidArgument)
}

func TestFromArrays(t *testing.T) {
	m := cube(t)
	vs, fs := m.ToArrays()
	assert.Len(t, vs, 24)
	assert.Len(t, fs, 36)

	m2, err := FromArrays(vs, fs)
	require.NoError(t, err)
	assert.Equal(t, m, m2)

	_, err = FromArrays(vs[:23], fs)
	assert.ErrorIs(t, err, errs.InvalidArgument)
	_, err = FromArrays(vs, fs[:35])
	assert.ErrorIs(t, err, errs.InvalidArgument)
	_, err = FromArrays(vs, append(fs, 0, 1, 24))
	assert.ErrorIs(t, err, errs.InvalidArgument)

	_, err = FromRows([][]float64{{0, 0}}, nil)
	assert.ErrorIs(t, err, errs.InvalidArgument)
	_, err = FromRows(cubeVertices, [][]int{{0, 1, 2, 3}})
	assert.ErrorIs(t, err, errs.InvalidArgument)
}

func TestMeasures(t *testing.T) {
	b := Box(geom.B3(0, 0, 0, 1, 1, 1))
	vs, fs := b.ToArrays()
	cvs, _ := cube(t).ToArrays()
	assert.Equal(t, cvs, vs)
	assert.Len(t, fs, 36)

	assert.InDelta(t, 1, b.Volume(), 1e-12)
	assert.InDelta(t, 6, b.SurfaceArea(), 1e-12)
	assert.Equal(t, geom.B3(0, 0, 0, 1, 1, 1), b.Bounds())
	for i := range b.Faces {
		tri := b.Triangle(i)
		outward := r3.Sub(tri.Centroid(), geom.Vec3(0.5, 0.5, 0.5))
		assert.Greater(t, r3.Dot(tri.Normal(), outward), 0.0, "face %d", i)
	}

	big := Box(geom.B3(-1, 0, 2, 3, 2, 2.5))
	assert.InDelta(t, 4, big.Volume(), 1e-12)

	s := sphere(32, 48)
	assert.InDelta(t, 4*math.Pi/3, s.Volume(), 0.05)
	assert.InDelta(t, 4*math.Pi, s.SurfaceArea(), 0.1)
}

func TestContainmentOptions(t *testing.T) {
	m := sphere(12, 12)
	c, err := NewContainment(m, &ContainmentOptions{Direction: geom.Vec3(-0.3, 1, 0.1234), Epsilon: 1e-10})
	require.NoError(t, err)
	assert.Same(t, m, c.Mesh())
	assert.True(t, c.Contains(geom.Vec3(0.1, 0.2, 0.3)))
	assert.False(t, c.Contains(geom.Vec3(1.1, 0.2, 0.3)))

	in, err := IsInsideOptions(geom.Vec3(0.1, 0.2, 0.3), m, &ContainmentOptions{Direction: geom.Vec3(0, 0.2, -1)})
	assert.NoError(t, err)
	assert.True(t, in)
}
