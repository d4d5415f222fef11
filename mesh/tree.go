// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"cmp"
	"slices"

	"cogentcore.org/meshpoint/geom"
)

// maxLeafFaces is the largest number of faces stored in one leaf.
const maxLeafFaces = 4

// faceNode is a node of a bounding box tree over mesh faces.
// Leaves have faces and no children.
type faceNode struct {
	box         geom.Box3
	faces       []int
	left, right *faceNode
}

// buildFaceTree returns the root of a tree over all of the given
// triangles. Node boxes are padded slightly so that rounding in the
// slab test never drops a face the ray actually crosses.
func buildFaceTree(tris []geom.Triangle) *faceNode {
	all := geom.B3Empty()
	for _, t := range tris {
		all.ExpandByBox(t.Bounds())
	}
	faces := make([]int, len(tris))
	for i := range faces {
		faces[i] = i
	}
	pad := 1e-9 * (1 + all.Diagonal())
	return buildFaceNode(tris, faces, pad)
}

// buildFaceNode splits the faces at the median of their minimum
// coordinate along the longest axis of their bounding box.
func buildFaceNode(tris []geom.Triangle, faces []int, pad float64) *faceNode {
	n := &faceNode{box: geom.B3Empty()}
	for _, fi := range faces {
		n.box.ExpandByBox(tris[fi].Bounds())
	}
	n.box.ExpandByScalar(pad)

	if len(faces) <= maxLeafFaces {
		n.faces = faces
		return n
	}

	axis := n.box.LongestAxis()
	minOnAxis := func(fi int) float64 {
		return geom.Component(tris[fi].Bounds().Min, axis)
	}
	slices.SortFunc(faces, func(a, b int) int {
		return cmp.Compare(minOnAxis(a), minOnAxis(b))
	})
	half := len(faces) / 2
	n.left = buildFaceNode(tris, faces[:half], pad)
	n.right = buildFaceNode(tris, faces[half:], pad)
	return n
}

// crossings returns the number of triangles under the node crossed by the ray.
func (n *faceNode) crossings(ray geom.Ray, tris []geom.Triangle, eps float64) int {
	if !ray.IntersectsBox(n.box) {
		return 0
	}
	if n.left == nil {
		c := 0
		for _, fi := range n.faces {
			if _, ok := ray.IntersectTriangle(tris[fi], eps); ok {
				c++
			}
		}
		return c
	}
	return n.left.crossings(ray, tris, eps) + n.right.crossings(ray, tris, eps)
}
