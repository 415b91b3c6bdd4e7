package shape

import (
	"math"

	"github.com/HellOwhatAs/ln/geom"
	"github.com/HellOwhatAs/ln/hit"
	"github.com/HellOwhatAs/ln/paths"
	"github.com/HellOwhatAs/ln/vector"
)

const (
	coneRings      = 4
	coneGenerators = 16
	coneSegments   = 48
)

// Cone is a solid of revolution aligned along z: base radius Radius at
// z=0, apex at z=Height.
type Cone struct {
	Radius, Height float64
}

// NewCone validates and constructs a Cone.
func NewCone(radius, height float64) (*Cone, error) {
	if math.IsNaN(radius) || math.IsInf(radius, 0) || math.IsNaN(height) || math.IsInf(height, 0) {
		return nil, configErr("NewCone", ErrNonFiniteInput)
	}
	if radius <= 0 {
		return nil, configErr("NewCone", ErrNonPositiveRadius)
	}
	if height <= 0 {
		return nil, configErr("NewCone", ErrNonPositiveHeight)
	}
	return &Cone{Radius: radius, Height: height}, nil
}

func (c *Cone) Compile() error { return nil }

func (c *Cone) BoundingBox() geom.Box {
	return geom.NewBox(vector.New(-c.Radius, -c.Radius, 0), vector.New(c.Radius, c.Radius, c.Height))
}

// radiusAt returns the solid's cross-section radius at height z, 0 at the
// apex and Radius at the base.
func (c *Cone) radiusAt(z float64) float64 {
	return c.Radius * (1 - z/c.Height)
}

func (c *Cone) Contains(p vector.Vector, epsilon float64) bool {
	if p.Z < -epsilon || p.Z > c.Height+epsilon {
		return false
	}
	f := c.radiusAt(p.Z) + epsilon
	return p.X*p.X+p.Y*p.Y <= f*f
}

func (c *Cone) Intersect(r geom.Ray) hit.Hit {
	best := hit.Miss
	k := c.Radius / c.Height
	f0 := c.Radius - k*r.Origin.Z

	a := r.Direction.X*r.Direction.X + r.Direction.Y*r.Direction.Y - k*k*r.Direction.Z*r.Direction.Z
	b := 2 * (r.Origin.X*r.Direction.X + r.Origin.Y*r.Direction.Y + k*r.Direction.Z*f0)
	cc := r.Origin.X*r.Origin.X + r.Origin.Y*r.Origin.Y - f0*f0

	if math.Abs(a) > 1e-12 {
		disc := b*b - 4*a*cc
		if disc >= 0 {
			sq := math.Sqrt(disc)
			for _, t := range [2]float64{(-b - sq) / (2 * a), (-b + sq) / (2 * a)} {
				if t <= HitEpsilon {
					continue
				}
				z := r.Origin.Z + t*r.Direction.Z
				if z >= 0 && z <= c.Height {
					best = hit.Min(best, hit.New(c, t))
				}
			}
		}
	}

	if r.Direction.Z != 0 {
		t := (0 - r.Origin.Z) / r.Direction.Z
		if t > HitEpsilon {
			x := r.Origin.X + t*r.Direction.X
			y := r.Origin.Y + t*r.Direction.Y
			if x*x+y*y <= c.Radius*c.Radius {
				best = hit.Min(best, hit.New(c, t))
			}
		}
	}

	return best
}

func (c *Cone) Paths() paths.Paths {
	var out paths.Paths
	for i := 0; i <= coneRings; i++ {
		z := c.Height * float64(i) / float64(coneRings)
		out = append(out, ringPath(c.radiusAt(z), z, coneSegments))
	}
	apex := vector.New(0, 0, c.Height)
	for j := 0; j < coneGenerators; j++ {
		theta := 2 * math.Pi * float64(j) / float64(coneGenerators)
		base := vector.New(c.Radius*math.Cos(theta), c.Radius*math.Sin(theta), 0)
		out = append(out, paths.Path{apex, base})
	}
	return out
}
