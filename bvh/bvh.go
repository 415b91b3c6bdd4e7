// Package bvh implements the bounding-volume hierarchy used both by
// scene.Scene (over top-level shapes, for occlusion culling) and by
// shape.Mesh (over triangles, for ray intersection). The same Tree type
// serves both: it only requires its elements to report a bounding box and
// answer a ray intersection query.
package bvh

import (
	"math"
	"sort"

	"github.com/HellOwhatAs/ln/geom"
	"github.com/HellOwhatAs/ln/hit"
)

// Primitive is anything a Tree can hold: a bounding box and a ray
// intersection test. shape.Shape satisfies this (and more); the BVH never
// needs Contains, Paths or Compile.
type Primitive interface {
	BoundingBox() geom.Box
	Intersect(r geom.Ray) hit.Hit
}

// maxLeafSize bounds the number of primitives a leaf may hold before the
// builder splits again.
const maxLeafSize = 4

// Tree is an immutable bounding-volume hierarchy built once over a fixed set
// of primitives. Read-only after Build returns, so concurrent Intersect
// calls from multiple goroutines need no synchronization.
type Tree struct {
	root *node
}

type node struct {
	box         geom.Box
	left, right *node
	prims       []Primitive // non-nil only at a leaf
}

func (n *node) isLeaf() bool { return n.left == nil && n.right == nil }

// Stats summarizes a built Tree, for callers that want to log or assert on
// BVH shape without a printing side effect inside the library.
type Stats struct {
	Nodes, Leaves, MaxDepth int
}

// Build constructs a Tree over prims. An empty input yields a Tree whose
// Intersect always misses and whose BoundingBox is the zero Box.
func Build(prims []Primitive) *Tree {
	if len(prims) == 0 {
		return &Tree{root: &node{prims: nil}}
	}
	cp := make([]Primitive, len(prims))
	copy(cp, prims)
	return &Tree{root: build(cp)}
}

func build(prims []Primitive) *node {
	box := boxUnion(prims)
	if len(prims) <= maxLeafSize {
		return &node{box: box, prims: prims}
	}

	centroidBox := centroidBoxOf(prims)
	axis := centroidBox.Size().MaxAxis()
	sort.Slice(prims, func(i, j int) bool {
		return prims[i].BoundingBox().Center().Component(axis) < prims[j].BoundingBox().Center().Component(axis)
	})

	mid := len(prims) / 2
	left := build(prims[:mid])
	right := build(prims[mid:])
	return &node{box: box, left: left, right: right}
}

func boxUnion(prims []Primitive) geom.Box {
	box := prims[0].BoundingBox()
	for _, p := range prims[1:] {
		box = box.Union(p.BoundingBox())
	}
	return box
}

func centroidBoxOf(prims []Primitive) geom.Box {
	c := prims[0].BoundingBox().Center()
	box := geom.Box{Min: c, Max: c}
	for _, p := range prims[1:] {
		box = box.Extend(p.BoundingBox().Center())
	}
	return box
}

// BoundingBox returns the union box of every primitive in the tree.
func (t *Tree) BoundingBox() geom.Box {
	return t.root.box
}

// Intersect returns the nearest positive-t hit among every primitive the
// tree holds, or hit.Miss.
func (t *Tree) Intersect(r geom.Ray) hit.Hit {
	return t.root.intersect(r, math.Inf(1))
}

// intersect is the bounded traversal: a node whose
// box the ray misses, or whose nearest possible t already exceeds maxT (the
// best hit found so far anywhere in the traversal), is pruned without
// recursing. Interior nodes visit the nearer child first and tighten maxT
// before visiting the farther one, so the farther child is pruned more
// often.
func (n *node) intersect(r geom.Ray, maxT float64) hit.Hit {
	tmin, tmax := n.box.Intersect(r)
	if tmax < math.Max(tmin, 0) || tmin > maxT {
		return hit.Miss
	}

	if n.isLeaf() {
		best := hit.Miss
		for _, p := range n.prims {
			best = hit.Min(best, p.Intersect(r))
		}
		return best
	}

	lMin, _ := n.left.box.Intersect(r)
	rMin, _ := n.right.box.Intersect(r)
	first, second := n.left, n.right
	if rMin < lMin {
		first, second = n.right, n.left
	}

	h1 := first.intersect(r, maxT)
	best := maxT
	if h1.Ok() && h1.T < best {
		best = h1.T
	}
	h2 := second.intersect(r, best)
	return hit.Min(h1, h2)
}

// Stats walks the tree once and summarizes its shape.
func (t *Tree) Stats() Stats {
	var s Stats
	var walk func(n *node, depth int)
	walk = func(n *node, depth int) {
		s.Nodes++
		if depth > s.MaxDepth {
			s.MaxDepth = depth
		}
		if n.isLeaf() {
			s.Leaves++
			return
		}
		walk(n.left, depth+1)
		walk(n.right, depth+1)
	}
	walk(t.root, 0)
	return s
}
