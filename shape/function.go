package shape

import (
	"math"

	"github.com/HellOwhatAs/ln/geom"
	"github.com/HellOwhatAs/ln/hit"
	"github.com/HellOwhatAs/ln/mexpr"
	"github.com/HellOwhatAs/ln/paths"
	"github.com/HellOwhatAs/ln/vector"
)

// FunctionDirection selects which side of the surface z = f(x,y) is
// considered "inside" for Contains.
type FunctionDirection int

const (
	Below FunctionDirection = iota
	Above
)

// FunctionTexture selects the sampling pattern Paths draws over the
// function's (x,y) domain.
type FunctionTexture int

const (
	Grid FunctionTexture = iota
	Spiral
	Swirl
)

const (
	functionGridLines  = 20
	functionGridSteps  = 40
	functionSpiralTurn = 12
	functionSpiralStep = 400
)

// Function is an implicit surface z = f(x, y), bounded to a rectangular
// domain and ray-marched for intersection (no closed-form solution exists
// for an arbitrary expression).
type Function struct {
	ExprText  string
	Box       geom.Box
	Direction FunctionDirection
	Texture   FunctionTexture
	Step      float64

	expr *mexpr.Expr
}

// NewFunction compiles exprText and validates box and step.
func NewFunction(exprText string, box geom.Box, direction FunctionDirection, texture FunctionTexture, step float64) (*Function, error) {
	if box.Min.X >= box.Max.X || box.Min.Y >= box.Max.Y {
		return nil, configErr("NewFunction", ErrInvalidFunctionBounds)
	}
	if math.IsNaN(step) || math.IsInf(step, 0) || step <= 0 {
		return nil, configErr("NewFunction", ErrInvalidFunctionStep)
	}
	expr, err := mexpr.Compile(exprText)
	if err != nil {
		return nil, configErr("NewFunction", err)
	}
	return &Function{ExprText: exprText, Box: box, Direction: direction, Texture: texture, Step: step, expr: expr}, nil
}

func (f *Function) Compile() error {
	expr, err := mexpr.Compile(f.ExprText)
	if err != nil {
		return configErr("Compile", err)
	}
	f.expr = expr
	return nil
}

func (f *Function) BoundingBox() geom.Box {
	return f.Box
}

// eval evaluates f's expression at (x, y), returning 0 on an evaluation
// error (an expression that is only sometimes undefined, e.g. div by zero
// outside the sampled domain, degrades to a flat patch rather than a
// panic).
func (f *Function) eval(x, y float64) float64 {
	v, err := f.expr.Eval(x, y)
	if err != nil {
		return 0
	}
	return v
}

func (f *Function) Contains(p vector.Vector, epsilon float64) bool {
	if p.X < f.Box.Min.X-epsilon || p.X > f.Box.Max.X+epsilon {
		return false
	}
	if p.Y < f.Box.Min.Y-epsilon || p.Y > f.Box.Max.Y+epsilon {
		return false
	}
	fz := f.eval(p.X, p.Y)
	if f.Direction == Below {
		return p.Z <= fz+epsilon
	}
	return p.Z >= fz-epsilon
}

// signedDistance is positive on the Above side of the surface and
// negative on the Below side, zero on the surface itself.
func (f *Function) signedDistance(p vector.Vector) float64 {
	return p.Z - f.eval(p.X, p.Y)
}

// Intersect ray-marches the bounding box in uniform steps of f.Step and
// bisects the first interval in which the signed distance to the surface
// changes sign.
func (f *Function) Intersect(r geom.Ray) hit.Hit {
	tmin, tmax := f.Box.Intersect(r)
	if tmin > tmax || tmax < 0 {
		return hit.Miss
	}
	if tmin < HitEpsilon {
		tmin = HitEpsilon
	}

	prevT := tmin
	prevD := f.signedDistance(r.Position(prevT))

	for t := tmin + f.Step; t <= tmax; t += f.Step {
		d := f.signedDistance(r.Position(t))
		if (prevD <= 0) != (d <= 0) {
			tHit := bisectFunctionRoot(f, r, prevT, t, prevD, d)
			return hit.New(f, tHit)
		}
		prevT, prevD = t, d
	}
	return hit.Miss
}

const functionBisectIterations = 24

func bisectFunctionRoot(f *Function, r geom.Ray, lo, hi, dLo, dHi float64) float64 {
	for i := 0; i < functionBisectIterations; i++ {
		mid := (lo + hi) / 2
		dMid := f.signedDistance(r.Position(mid))
		if (dLo <= 0) == (dMid <= 0) {
			lo, dLo = mid, dMid
		} else {
			hi, dHi = mid, dMid
		}
	}
	return (lo + hi) / 2
}

func (f *Function) Paths() paths.Paths {
	switch f.Texture {
	case Spiral:
		return f.spiralPaths()
	case Swirl:
		return f.swirlPaths()
	default:
		return f.gridPaths()
	}
}

func (f *Function) gridPaths() paths.Paths {
	var out paths.Paths
	w := f.Box.Max.X - f.Box.Min.X
	h := f.Box.Max.Y - f.Box.Min.Y

	for i := 0; i <= functionGridLines; i++ {
		x := f.Box.Min.X + w*float64(i)/float64(functionGridLines)
		line := make(paths.Path, functionGridSteps+1)
		for j := 0; j <= functionGridSteps; j++ {
			y := f.Box.Min.Y + h*float64(j)/float64(functionGridSteps)
			line[j] = vector.New(x, y, f.eval(x, y))
		}
		out = append(out, line)
	}
	for j := 0; j <= functionGridLines; j++ {
		y := f.Box.Min.Y + h*float64(j)/float64(functionGridLines)
		line := make(paths.Path, functionGridSteps+1)
		for i := 0; i <= functionGridSteps; i++ {
			x := f.Box.Min.X + w*float64(i)/float64(functionGridSteps)
			line[i] = vector.New(x, y, f.eval(x, y))
		}
		out = append(out, line)
	}
	return out
}

func (f *Function) spiralPaths() paths.Paths {
	cx := (f.Box.Min.X + f.Box.Max.X) / 2
	cy := (f.Box.Min.Y + f.Box.Max.Y) / 2
	rx := (f.Box.Max.X - f.Box.Min.X) / 2
	ry := (f.Box.Max.Y - f.Box.Min.Y) / 2

	line := make(paths.Path, functionSpiralStep+1)
	for i := 0; i <= functionSpiralStep; i++ {
		t := float64(i) / float64(functionSpiralStep)
		theta := t * functionSpiralTurn * 2 * math.Pi
		x := cx + rx*t*math.Cos(theta)
		y := cy + ry*t*math.Sin(theta)
		line[i] = vector.New(x, y, f.eval(x, y))
	}
	return paths.Paths{line}
}

func (f *Function) swirlPaths() paths.Paths {
	cx := (f.Box.Min.X + f.Box.Max.X) / 2
	cy := (f.Box.Min.Y + f.Box.Max.Y) / 2
	rx := (f.Box.Max.X - f.Box.Min.X) / 2
	ry := (f.Box.Max.Y - f.Box.Min.Y) / 2

	var out paths.Paths
	for ring := 1; ring <= functionGridLines; ring++ {
		frac := float64(ring) / float64(functionGridLines)
		line := make(paths.Path, functionSpiralStep/functionGridLines+1)
		for i := range line {
			t := float64(i) / float64(len(line)-1)
			theta := t*2*math.Pi + frac*math.Pi
			x := cx + rx*frac*math.Cos(theta)
			y := cy + ry*frac*math.Sin(theta)
			line[i] = vector.New(x, y, f.eval(x, y))
		}
		out = append(out, line)
	}
	return out
}
