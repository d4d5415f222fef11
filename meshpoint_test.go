// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package meshpoint

import (
	"sync"
	"testing"

	"cogentcore.org/meshpoint/base/errs"
	"cogentcore.org/meshpoint/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	cubeVertices = []float64{
		0, 0, 0, 1, 0, 0, 1, 1, 0, 0, 1, 0,
		0, 0, 1, 1, 0, 1, 1, 1, 1, 0, 1, 1,
	}
	cubeFaces = []int{
		0, 1, 2, 0, 2, 3,
		4, 5, 6, 4, 6, 7,
		0, 4, 7, 0, 7, 3,
		1, 5, 6, 1, 6, 2,
		0, 1, 5, 0, 5, 4,
		3, 2, 6, 3, 6, 7,
	}
)

func TestIsPointInsideMesh(t *testing.T) {
	in, err := IsPointInsideMesh([3]float64{0.5, 0.5, 0.5}, cubeVertices, cubeFaces)
	assert.NoError(t, err)
	assert.True(t, in)

	in, err = IsPointInsideMesh([3]float64{2.0, 0.5, 0.5}, cubeVertices, cubeFaces)
	assert.NoError(t, err)
	assert.False(t, in)

	in, err = IsPointInsideMesh([3]float64{0.5, 0.5, 0.5}, cubeVertices, nil)
	assert.False(t, in)
	assert.ErrorIs(t, err, errs.DegenerateGeometry)

	_, err = IsPointInsideMesh([3]float64{0.5, 0.5, 0.5}, cubeVertices[:5], cubeFaces)
	assert.ErrorIs(t, err, errs.InvalidArgument)
	_, err = IsPointInsideMesh([3]float64{0.5, 0.5, 0.5}, cubeVertices, append([]int{0, 1, 8}, cubeFaces...))
	assert.ErrorIs(t, err, errs.InvalidArgument)
}

func TestGenerateInteriorPoints(t *testing.T) {
	var currents []int
	pts, err := GenerateInteriorPoints(cubeVertices, cubeFaces, 50, func(current, total int) {
		assert.Equal(t, 50, total)
		currents = append(currents, current)
	})
	require.NoError(t, err)
	assert.Len(t, pts, 150)
	require.Len(t, currents, 50)
	for i := 1; i < len(currents); i++ {
		assert.Greater(t, currents[i], currents[i-1])
	}
	assert.Equal(t, 50, currents[49])
	for i := 0; i < len(pts); i += 3 {
		in, err := IsPointInsideMesh([3]float64{pts[i], pts[i+1], pts[i+2]}, cubeVertices, cubeFaces)
		require.NoError(t, err)
		assert.True(t, in)
	}

	called := false
	pts, err = GenerateInteriorPoints(cubeVertices, cubeFaces, 0, func(current, total int) { called = true })
	assert.Nil(t, pts)
	assert.ErrorIs(t, err, errs.InvalidArgument)
	assert.False(t, called)

	_, err = GenerateInteriorPoints(cubeVertices, nil, 5, nil)
	assert.ErrorIs(t, err, errs.DegenerateGeometry)
}

func TestSeed(t *testing.T) {
	Seed(99)
	a, err := GenerateInteriorPoints(cubeVertices, cubeFaces, 10, nil)
	require.NoError(t, err)
	sa := SampleInTriangle([3]float64{0, 0, 0}, [3]float64{1, 0, 0}, [3]float64{0, 1, 0})

	Seed(99)
	b, err := GenerateInteriorPoints(cubeVertices, cubeFaces, 10, nil)
	require.NoError(t, err)
	sb := SampleInTriangle([3]float64{0, 0, 0}, [3]float64{1, 0, 0}, [3]float64{0, 1, 0})

	assert.Equal(t, a, b)
	assert.Equal(t, sa, sb)
}

func TestSampleInTriangle(t *testing.T) {
	p1, p2, p3 := [3]float64{1, 2, 3}, [3]float64{-2, 0, 1}, [3]float64{4, 4, -1}
	tri := geom.NewTriangle(geom.FromArray(p1), geom.FromArray(p2), geom.FromArray(p3))
	for range 500 {
		p := SampleInTriangle(p1, p2, p3)
		w, ok := tri.Barycentric(geom.FromArray(p))
		require.True(t, ok)
		assert.InDelta(t, 1, w.X+w.Y+w.Z, 1e-9)
		assert.True(t, tri.ContainsPoint(geom.FromArray(p)))
	}
}

func TestConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			pts, err := GenerateInteriorPoints(cubeVertices, cubeFaces, 20, nil)
			assert.NoError(t, err)
			assert.Len(t, pts, 60)
			SampleInTriangle([3]float64{0, 0, 0}, [3]float64{1, 0, 0}, [3]float64{0, 1, 0})
		}()
	}
	wg.Wait()
}
