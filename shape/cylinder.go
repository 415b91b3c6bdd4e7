package shape

import (
	"math"

	"github.com/HellOwhatAs/ln/geom"
	"github.com/HellOwhatAs/ln/hit"
	"github.com/HellOwhatAs/ln/paths"
	"github.com/HellOwhatAs/ln/vector"
)

const (
	cylinderRings      = 4
	cylinderGenerators = 16
	cylinderSegments   = 48
)

// Cylinder is a solid of revolution aligned along z, capped at Z0 and Z1.
type Cylinder struct {
	Radius, Z0, Z1 float64
}

// NewCylinder validates and constructs a Cylinder.
func NewCylinder(radius, z0, z1 float64) (*Cylinder, error) {
	if math.IsNaN(radius) || math.IsInf(radius, 0) || math.IsNaN(z0) || math.IsNaN(z1) {
		return nil, configErr("NewCylinder", ErrNonFiniteInput)
	}
	if radius <= 0 {
		return nil, configErr("NewCylinder", ErrNonPositiveRadius)
	}
	if z1 <= z0 {
		return nil, configErr("NewCylinder", ErrInvalidZRange)
	}
	return &Cylinder{Radius: radius, Z0: z0, Z1: z1}, nil
}

func (c *Cylinder) Compile() error { return nil }

func (c *Cylinder) BoundingBox() geom.Box {
	return geom.NewBox(
		vector.New(-c.Radius, -c.Radius, c.Z0),
		vector.New(c.Radius, c.Radius, c.Z1),
	)
}

func (c *Cylinder) Contains(p vector.Vector, epsilon float64) bool {
	r2 := p.X*p.X + p.Y*p.Y
	return r2 <= (c.Radius+epsilon)*(c.Radius+epsilon) && p.Z >= c.Z0-epsilon && p.Z <= c.Z1+epsilon
}

func (c *Cylinder) Intersect(r geom.Ray) hit.Hit {
	best := hit.Miss

	a := r.Direction.X*r.Direction.X + r.Direction.Y*r.Direction.Y
	if a > 1e-12 {
		b := 2 * (r.Origin.X*r.Direction.X + r.Origin.Y*r.Direction.Y)
		cc := r.Origin.X*r.Origin.X + r.Origin.Y*r.Origin.Y - c.Radius*c.Radius
		disc := b*b - 4*a*cc
		if disc >= 0 {
			sq := math.Sqrt(disc)
			for _, t := range [2]float64{(-b - sq) / (2 * a), (-b + sq) / (2 * a)} {
				if t <= HitEpsilon {
					continue
				}
				z := r.Origin.Z + t*r.Direction.Z
				if z >= c.Z0 && z <= c.Z1 {
					best = hit.Min(best, hit.New(c, t))
				}
			}
		}
	}

	if r.Direction.Z != 0 {
		for _, zc := range [2]float64{c.Z0, c.Z1} {
			t := (zc - r.Origin.Z) / r.Direction.Z
			if t <= HitEpsilon {
				continue
			}
			x := r.Origin.X + t*r.Direction.X
			y := r.Origin.Y + t*r.Direction.Y
			if x*x+y*y <= c.Radius*c.Radius {
				best = hit.Min(best, hit.New(c, t))
			}
		}
	}

	return best
}

func (c *Cylinder) Paths() paths.Paths {
	var out paths.Paths
	for i := 0; i <= cylinderRings; i++ {
		z := c.Z0 + (c.Z1-c.Z0)*float64(i)/float64(cylinderRings)
		out = append(out, ringPath(c.Radius, z, cylinderSegments))
	}
	for j := 0; j < cylinderGenerators; j++ {
		theta := 2 * math.Pi * float64(j) / float64(cylinderGenerators)
		x, y := c.Radius*math.Cos(theta), c.Radius*math.Sin(theta)
		out = append(out, paths.Path{vector.New(x, y, c.Z0), vector.New(x, y, c.Z1)})
	}
	return out
}

func ringPath(radius, z float64, segments int) paths.Path {
	p := make(paths.Path, segments+1)
	for i := 0; i <= segments; i++ {
		theta := 2 * math.Pi * float64(i) / float64(segments)
		p[i] = vector.New(radius*math.Cos(theta), radius*math.Sin(theta), z)
	}
	return p
}
