package shape

import (
	"math"

	"github.com/HellOwhatAs/ln/geom"
	"github.com/HellOwhatAs/ln/hit"
	"github.com/HellOwhatAs/ln/paths"
	"github.com/HellOwhatAs/ln/vector"
)

const outlineSegments = 64

// Outline wraps a shape whose silhouette, as seen from the camera's eye
// point, should be drawn as a texture path. Only Sphere, Cylinder and Cone
// have a closed-form silhouette; any other inner shape is rejected at
// construction time.
type Outline struct {
	Inner Shape
}

// NewOutline validates that inner supports a silhouette computation.
func NewOutline(inner Shape) (*Outline, error) {
	switch inner.(type) {
	case *Sphere, *Cylinder, *Cone:
		return &Outline{Inner: inner}, nil
	default:
		return nil, configErr("NewOutline", ErrOutlineUnsupported)
	}
}

func (o *Outline) Compile() error {
	return o.Inner.Compile()
}

func (o *Outline) BoundingBox() geom.Box {
	return o.Inner.BoundingBox()
}

func (o *Outline) Contains(p vector.Vector, epsilon float64) bool {
	return o.Inner.Contains(p, epsilon)
}

func (o *Outline) Intersect(r geom.Ray) hit.Hit {
	h := o.Inner.Intersect(r)
	if !h.Ok() {
		return hit.Miss
	}
	return hit.New(o, h.T)
}

// Paths is eye-independent and returns nothing; PathsForEye supplies the
// actual silhouette.
func (o *Outline) Paths() paths.Paths {
	return nil
}

func (o *Outline) PathsForEye(eye vector.Vector) paths.Paths {
	switch s := o.Inner.(type) {
	case *Sphere:
		return sphereSilhouette(s, eye)
	case *Cylinder:
		return cylinderSilhouette(s, eye)
	case *Cone:
		return coneSilhouette(s, eye)
	default:
		return nil
	}
}

// sphereSilhouette draws the silhouette circle visible from eye: the locus
// of points on the sphere whose surface normal is perpendicular to the line
// of sight, lying in the plane at distance Radius^2/d from the center
// toward eye (d = distance from center to eye), with radius
// Radius*sqrt(1-(Radius/d)^2). It is a great circle only in the limit of
// an infinitely distant eye.
func sphereSilhouette(s *Sphere, eye vector.Vector) paths.Paths {
	toEye := eye.Sub(s.Center)
	d := toEye.Length()
	if d <= s.Radius {
		return nil
	}
	axis := toEye.DivScalar(d)
	planeDist := s.Radius * s.Radius / d
	planeRadius := s.Radius * math.Sqrt(1-(s.Radius/d)*(s.Radius/d))
	center := s.Center.Add(axis.MulScalar(planeDist))
	u, v := orthonormalBasis(axis)

	p := make(paths.Path, outlineSegments+1)
	for i := 0; i <= outlineSegments; i++ {
		t := 2 * math.Pi * float64(i) / float64(outlineSegments)
		p[i] = center.Add(u.MulScalar(planeRadius * math.Cos(t))).Add(v.MulScalar(planeRadius * math.Sin(t)))
	}
	return paths.Paths{p}
}

// cylinderSilhouette draws the two tangent generator lines from eye's
// projection onto the cylinder's circular cross-section, clipped to the
// cylinder's z-range, plus the visible end cap.
func cylinderSilhouette(c *Cylinder, eye vector.Vector) paths.Paths {
	ex, ey := eye.X, eye.Y
	d2 := ex*ex + ey*ey
	d := math.Sqrt(d2)
	if d <= c.Radius {
		return nil
	}

	theta0 := math.Atan2(ey, ex)
	phi := math.Acos(c.Radius / d)

	var out paths.Paths
	for _, theta := range [2]float64{theta0 + phi, theta0 - phi} {
		x, y := c.Radius*math.Cos(theta), c.Radius*math.Sin(theta)
		out = append(out, paths.Path{
			vector.New(x, y, c.Z0),
			vector.New(x, y, c.Z1),
		})
	}

	if eye.Z > c.Z1 {
		out = append(out, ringPath(c.Radius, c.Z1, outlineSegments))
	} else if eye.Z < c.Z0 {
		out = append(out, ringPath(c.Radius, c.Z0, outlineSegments))
	}
	return out
}

// coneSilhouette draws the two tangent generator lines from the apex to
// the visible side of the base circle, plus the base ring when the eye is
// below the base plane.
func coneSilhouette(c *Cone, eye vector.Vector) paths.Paths {
	ex, ey := eye.X, eye.Y
	d := math.Sqrt(ex*ex + ey*ey)
	apex := vector.New(0, 0, c.Height)

	if d <= 1e-12 {
		return paths.Paths{ringPath(c.Radius, 0, outlineSegments)}
	}

	theta0 := math.Atan2(ey, ex)
	ratio := c.Radius / d
	if ratio > 1 {
		ratio = 1
	}
	phi := math.Acos(ratio)

	var out paths.Paths
	for _, theta := range [2]float64{theta0 + phi, theta0 - phi} {
		x, y := c.Radius*math.Cos(theta), c.Radius*math.Sin(theta)
		out = append(out, paths.Path{apex, vector.New(x, y, 0)})
	}

	if eye.Z < 0 {
		out = append(out, ringPath(c.Radius, 0, outlineSegments))
	}
	return out
}
