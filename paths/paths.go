// Package paths holds the output container of the rendering pipeline: an
// ordered list of polylines. The same Path/Paths types serve both
// world-space 3D polylines (a shape's texture curves) and normalized-device
// or pixel-space 2D polylines (post-projection); only the producer knows
// which stage a given Paths value is in.
package paths

import (
	"math"

	"github.com/HellOwhatAs/ln/geom"
	"github.com/HellOwhatAs/ln/matrix"
	"github.com/HellOwhatAs/ln/vector"
)

// Path is a single polyline: an ordered list of vertices. Producers maintain
// the invariant len(Path) >= 2; a Path with fewer vertices carries no
// geometry and should not be appended to a Paths value.
type Path []vector.Vector

// Paths is an ordered, order-independent (for rendering purposes) list of
// polylines.
type Paths []Path

// BoundingBox returns the smallest Box enclosing every vertex of every path.
// Returns the zero Box if ps is empty.
func (ps Paths) BoundingBox() geom.Box {
	if len(ps) == 0 || len(ps[0]) == 0 {
		return geom.Box{}
	}
	box := geom.Box{Min: ps[0][0], Max: ps[0][0]}
	for _, p := range ps {
		for _, v := range p {
			box = box.Extend(v)
		}
	}
	return box
}

// Concat returns a new Paths holding every polyline of ps followed by every
// polyline of other. Neither operand is mutated.
func (ps Paths) Concat(other Paths) Paths {
	out := make(Paths, 0, len(ps)+len(other))
	out = append(out, ps...)
	out = append(out, other...)
	return out
}

// Transform returns ps with every vertex mapped through m.MulPosition. Used
// both for world-space shape transforms and for the camera's affine
// NDC-to-pixel viewport mapping.
func (ps Paths) Transform(m matrix.Matrix) Paths {
	out := make(Paths, len(ps))
	for i, p := range ps {
		np := make(Path, len(p))
		for j, v := range p {
			np[j] = m.MulPosition(v)
		}
		out[i] = np
	}
	return out
}

// Chop resamples every polyline so no segment exceeds arclength step.
// Original vertices are preserved; intermediate vertices are inserted by
// linear interpolation. step <= 0 returns ps unchanged.
func (ps Paths) Chop(step float64) Paths {
	if step <= 0 {
		return ps
	}
	out := make(Paths, len(ps))
	for i, p := range ps {
		out[i] = p.Chop(step)
	}
	return out
}

// Chop resamples a single polyline so no segment exceeds arclength step.
func (p Path) Chop(step float64) Path {
	if len(p) < 2 {
		return p
	}
	out := make(Path, 0, len(p))
	out = append(out, p[0])
	for i := 0; i < len(p)-1; i++ {
		a, b := p[i], p[i+1]
		d := a.Sub(b).Length()
		n := int(math.Ceil(d / step))
		if n < 1 {
			n = 1
		}
		for j := 1; j <= n; j++ {
			out = append(out, a.Lerp(b, float64(j)/float64(n)))
		}
	}
	return out
}

// outCode is a Cohen-Sutherland region code relative to the clip rectangle
// [-1,1]^2 (x,y only; z passes through unexamined).
type outCode uint8

const (
	codeLeft   outCode = 1
	codeRight  outCode = 2
	codeBottom outCode = 4
	codeTop    outCode = 8
)

func computeCode(v vector.Vector) outCode {
	var c outCode
	switch {
	case v.X < -1:
		c |= codeLeft
	case v.X > 1:
		c |= codeRight
	}
	switch {
	case v.Y < -1:
		c |= codeBottom
	case v.Y > 1:
		c |= codeTop
	}
	return c
}

// Clip2D clips every polyline of ps to the rectangle [-1,1]^2 using
// Cohen-Sutherland segment clipping, splitting a polyline into several
// output polylines at any point it leaves and re-enters the rectangle.
func (ps Paths) Clip2D() Paths {
	var out Paths
	for _, p := range ps {
		out = append(out, p.clip2D()...)
	}
	return out
}

func (p Path) clip2D() Paths {
	var result Paths
	var current Path
	flush := func() {
		if len(current) >= 2 {
			result = append(result, current)
		}
		current = nil
	}
	for i := 0; i < len(p)-1; i++ {
		a, b, ok := clipSegment(p[i], p[i+1])
		if !ok {
			flush()
			continue
		}
		if len(current) == 0 {
			current = append(current, a)
		} else if current[len(current)-1] != a {
			// the clipped segment's start doesn't meet the last kept vertex
			// (the previous segment was clipped away on its tail): start a
			// fresh run instead of drawing a spurious connector.
			flush()
			current = append(current, a)
		}
		current = append(current, b)
	}
	flush()
	return result
}

// clipSegment clips the segment a->b against [-1,1]^2, returning the
// possibly-shortened endpoints and false if the whole segment lies outside.
func clipSegment(a, b vector.Vector) (vector.Vector, vector.Vector, bool) {
	codeA, codeB := computeCode(a), computeCode(b)
	for {
		switch {
		case codeA == 0 && codeB == 0:
			return a, b, true
		case codeA&codeB != 0:
			return a, b, false
		default:
			outside := codeA
			if outside == 0 {
				outside = codeB
			}
			var p vector.Vector
			switch {
			case outside&codeTop != 0:
				t := (1 - a.Y) / (b.Y - a.Y)
				p = a.Lerp(b, t)
				p.Y = 1
			case outside&codeBottom != 0:
				t := (-1 - a.Y) / (b.Y - a.Y)
				p = a.Lerp(b, t)
				p.Y = -1
			case outside&codeRight != 0:
				t := (1 - a.X) / (b.X - a.X)
				p = a.Lerp(b, t)
				p.X = 1
			case outside&codeLeft != 0:
				t := (-1 - a.X) / (b.X - a.X)
				p = a.Lerp(b, t)
				p.X = -1
			}
			if outside == codeA {
				a = p
				codeA = computeCode(a)
			} else {
				b = p
				codeB = computeCode(b)
			}
		}
	}
}
