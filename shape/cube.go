package shape

import (
	"github.com/HellOwhatAs/ln/geom"
	"github.com/HellOwhatAs/ln/hit"
	"github.com/HellOwhatAs/ln/paths"
	"github.com/HellOwhatAs/ln/vector"
)

// Cube is an axis-aligned box solid.
type Cube struct {
	Min, Max vector.Vector
	Texture  CubeTexture
	Stripes  int
}

// NewCube validates and constructs a Cube.
func NewCube(min, max vector.Vector, texture CubeTexture, stripes int) (*Cube, error) {
	if !min.IsFinite() || !max.IsFinite() {
		return nil, configErr("NewCube", ErrNonFiniteInput)
	}
	if min.X > max.X || min.Y > max.Y || min.Z > max.Z {
		return nil, configErr("NewCube", ErrCubeMinGreaterThanMax)
	}
	return &Cube{Min: min, Max: max, Texture: texture, Stripes: stripes}, nil
}

func (c *Cube) Compile() error {
	return nil
}

func (c *Cube) BoundingBox() geom.Box {
	return geom.NewBox(c.Min, c.Max)
}

func (c *Cube) Contains(p vector.Vector, epsilon float64) bool {
	return p.X >= c.Min.X-epsilon && p.X <= c.Max.X+epsilon &&
		p.Y >= c.Min.Y-epsilon && p.Y <= c.Max.Y+epsilon &&
		p.Z >= c.Min.Z-epsilon && p.Z <= c.Max.Z+epsilon
}

func (c *Cube) Intersect(r geom.Ray) hit.Hit {
	box := geom.NewBox(c.Min, c.Max)
	tmin, tmax := box.Intersect(r)
	if tmax < tmin {
		return hit.Miss
	}
	if tmin > HitEpsilon {
		return hit.New(c, tmin)
	}
	if tmax > HitEpsilon {
		return hit.New(c, tmax)
	}
	return hit.Miss
}

func (c *Cube) Paths() paths.Paths {
	out := cubeEdges(c.Min, c.Max)
	if c.Texture == Stripes {
		out = out.Concat(cubeStripes(c.Min, c.Max, c.Stripes))
	}
	return out
}
