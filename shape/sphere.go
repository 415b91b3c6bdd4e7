package shape

import (
	"math"

	"github.com/HellOwhatAs/ln/geom"
	"github.com/HellOwhatAs/ln/hit"
	"github.com/HellOwhatAs/ln/paths"
	"github.com/HellOwhatAs/ln/vector"
)

// Sphere is a solid ball. Texture selects which surface-sampling scheme
// Paths uses; the RandomX textures are seeded so repeated renders with the
// same Seed produce byte-identical output.
type Sphere struct {
	Center  vector.Vector
	Radius  float64
	Texture SphereTexture
	Seed    int64

	compiled bool
}

// NewSphere validates and constructs a Sphere.
func NewSphere(center vector.Vector, radius float64, texture SphereTexture, seed int64) (*Sphere, error) {
	if !center.IsFinite() || math.IsNaN(radius) || math.IsInf(radius, 0) {
		return nil, configErr("NewSphere", ErrNonFiniteInput)
	}
	if radius <= 0 {
		return nil, configErr("NewSphere", ErrNonPositiveRadius)
	}
	return &Sphere{Center: center, Radius: radius, Texture: texture, Seed: seed}, nil
}

func (s *Sphere) Compile() error {
	s.compiled = true
	return nil
}

func (s *Sphere) BoundingBox() geom.Box {
	r := vector.New(s.Radius, s.Radius, s.Radius)
	return geom.NewBox(s.Center.Sub(r), s.Center.Add(r))
}

func (s *Sphere) Contains(p vector.Vector, epsilon float64) bool {
	d := p.Sub(s.Center).Length()
	return d <= s.Radius+epsilon
}

// Intersect solves the ray-sphere quadratic without assuming the ray
// direction is unit length (TransformedShape may hand it a scaled
// direction; see matrix.Matrix.MulDirection), and picks the smaller
// positive root, falling back to the larger root for rays launched from
// inside the sphere.
func (s *Sphere) Intersect(r geom.Ray) hit.Hit {
	oc := r.Origin.Sub(s.Center)
	a := r.Direction.Dot(r.Direction)
	b := 2 * oc.Dot(r.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius
	disc := b*b - 4*a*c
	if disc < 0 {
		return hit.Miss
	}
	sq := math.Sqrt(disc)
	t1 := (-b - sq) / (2 * a)
	t2 := (-b + sq) / (2 * a)
	if t1 > HitEpsilon {
		return hit.New(s, t1)
	}
	if t2 > HitEpsilon {
		return hit.New(s, t2)
	}
	return hit.Miss
}

func (s *Sphere) Paths() paths.Paths {
	switch s.Texture {
	case RandomEquators:
		return randomEquatorsPaths(newRNG(s.Seed), s.Center, s.Radius)
	case RandomDots:
		return randomDotsPaths(newRNG(s.Seed), s.Center, s.Radius)
	case RandomCircles:
		return randomCirclesPaths(newRNG(s.Seed), s.Center, s.Radius)
	default:
		return latLngPaths(s.Center, s.Radius)
	}
}
