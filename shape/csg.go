package shape

import (
	"github.com/HellOwhatAs/ln/geom"
	"github.com/HellOwhatAs/ln/hit"
	"github.com/HellOwhatAs/ln/paths"
	"github.com/HellOwhatAs/ln/vector"
)

// Intersection is the CSG solid product of two or more children: a point
// belongs to it only if it belongs to every child.
type Intersection struct {
	Children []Shape
}

// NewIntersection requires at least two children; a
// one-child intersection is just its child and a zero-child one is
// meaningless.
func NewIntersection(children ...Shape) (*Intersection, error) {
	if len(children) < 2 {
		return nil, configErr("NewIntersection", ErrTooFewCSGChildren)
	}
	return &Intersection{Children: children}, nil
}

func (in *Intersection) Compile() error {
	for _, c := range in.Children {
		if err := c.Compile(); err != nil {
			return err
		}
	}
	return nil
}

func (in *Intersection) BoundingBox() geom.Box {
	box := in.Children[0].BoundingBox()
	for _, c := range in.Children[1:] {
		box = box.Union(c.BoundingBox())
	}
	return box
}

func (in *Intersection) Contains(p vector.Vector, epsilon float64) bool {
	for _, c := range in.Children {
		if !c.Contains(p, epsilon) {
			return false
		}
	}
	return true
}

// Intersect takes each child's nearest hit along the ray and keeps it only
// if the hit point lies inside (or within ContainsEpsilon of) every other
// child; the nearest kept hit wins. A child's later crossings along the
// ray are not considered.
func (in *Intersection) Intersect(r geom.Ray) hit.Hit {
	best := hit.Miss
	for i, c := range in.Children {
		h := c.Intersect(r)
		if !h.Ok() {
			continue
		}
		p := r.Position(h.T)
		inAll := true
		for j, other := range in.Children {
			if j == i {
				continue
			}
			if !other.Contains(p, ContainsEpsilon) {
				inAll = false
				break
			}
		}
		if inAll {
			best = hit.Min(best, hit.New(in, h.T))
		}
	}
	return best
}

func (in *Intersection) Paths() paths.Paths {
	return filterCSGPaths(in.Children, in.containsAllExcept)
}

func (in *Intersection) PathsForEye(eye vector.Vector) paths.Paths {
	return filterCSGPathsForEye(in.Children, eye, in.containsAllExcept)
}

// containsAllExcept reports whether p is inside every child other than
// the one at index self.
func (in *Intersection) containsAllExcept(self int, p vector.Vector) bool {
	for j, other := range in.Children {
		if j == self {
			continue
		}
		if !other.Contains(p, ContainsEpsilon) {
			return false
		}
	}
	return true
}

// Difference is the CSG solid of the first child minus all the rest.
type Difference struct {
	Children []Shape
}

// NewDifference requires at least two children: the minuend and at least
// one subtrahend.
func NewDifference(children ...Shape) (*Difference, error) {
	if len(children) < 2 {
		return nil, configErr("NewDifference", ErrTooFewCSGChildren)
	}
	return &Difference{Children: children}, nil
}

func (d *Difference) Compile() error {
	for _, c := range d.Children {
		if err := c.Compile(); err != nil {
			return err
		}
	}
	return nil
}

func (d *Difference) BoundingBox() geom.Box {
	return d.Children[0].BoundingBox()
}

func (d *Difference) Contains(p vector.Vector, epsilon float64) bool {
	if !d.Children[0].Contains(p, epsilon) {
		return false
	}
	for _, c := range d.Children[1:] {
		if c.Contains(p, epsilon) {
			return false
		}
	}
	return true
}

// Intersect keeps surface points of the minuend that lie outside every
// subtrahend, and surface points of a subtrahend (with a flipped-normal
// reading, approximated here by surface membership) that lie inside the
// minuend, per the boundary-swap rule for differences.
func (d *Difference) Intersect(r geom.Ray) hit.Hit {
	best := hit.Miss

	if h := d.Children[0].Intersect(r); h.Ok() {
		p := r.Position(h.T)
		outsideAll := true
		for _, sub := range d.Children[1:] {
			if sub.Contains(p, ContainsEpsilon) {
				outsideAll = false
				break
			}
		}
		if outsideAll {
			best = hit.Min(best, hit.New(d, h.T))
		}
	}

	for _, sub := range d.Children[1:] {
		h := sub.Intersect(r)
		if !h.Ok() {
			continue
		}
		p := r.Position(h.T)
		if d.Children[0].Contains(p, ContainsEpsilon) {
			best = hit.Min(best, hit.New(d, h.T))
		}
	}

	return best
}

func (d *Difference) Paths() paths.Paths {
	return filterCSGPaths(d.Children, d.keepCriterion)
}

func (d *Difference) PathsForEye(eye vector.Vector) paths.Paths {
	return filterCSGPathsForEye(d.Children, eye, d.keepCriterion)
}

// keepCriterion reports whether a point belonging to child self's surface
// survives into the difference: the minuend's surface survives outside
// every subtrahend, a subtrahend's surface survives inside the minuend.
func (d *Difference) keepCriterion(self int, p vector.Vector) bool {
	if self == 0 {
		for _, sub := range d.Children[1:] {
			if sub.Contains(p, ContainsEpsilon) {
				return false
			}
		}
		return true
	}
	return d.Children[0].Contains(p, ContainsEpsilon)
}

// filterCSGPaths chops each child's own texture paths into segments of at
// most csgChopStep and keeps the segments whose midpoint survives the given
// keep criterion; csgChopStep controls how finely a path is split before
// testing.
func filterCSGPaths(children []Shape, keep func(self int, p vector.Vector) bool) paths.Paths {
	var out paths.Paths
	for i, c := range children {
		out = out.Concat(filterChildPaths(c.Paths(), i, keep))
	}
	return out
}

func filterCSGPathsForEye(children []Shape, eye vector.Vector, keep func(self int, p vector.Vector) bool) paths.Paths {
	var out paths.Paths
	for i, c := range children {
		out = out.Concat(filterChildPaths(PathsFor(c, eye), i, keep))
	}
	return out
}

const csgChopStep = 0.05

func filterChildPaths(ps paths.Paths, self int, keep func(self int, p vector.Vector) bool) paths.Paths {
	var out paths.Paths
	for _, path := range ps.Chop(csgChopStep) {
		var run paths.Path
		for i := 0; i < len(path)-1; i++ {
			mid := path[i].Lerp(path[i+1], 0.5)
			if keep(self, mid) {
				if len(run) == 0 {
					run = append(run, path[i])
				}
				run = append(run, path[i+1])
			} else if len(run) > 0 {
				out = append(out, run)
				run = nil
			}
		}
		if len(run) > 0 {
			out = append(out, run)
		}
	}
	return out
}
