package shape

import (
	"math"
	"math/rand"

	"github.com/HellOwhatAs/ln/paths"
	"github.com/HellOwhatAs/ln/vector"
)

// SphereTexture selects how Sphere.Paths samples its surface.
type SphereTexture int

const (
	LatLng SphereTexture = iota
	RandomEquators
	RandomDots
	RandomCircles
)

// CubeTexture selects how Cube.Paths samples its surface.
type CubeTexture int

const (
	Vanilla CubeTexture = iota
	Stripes
)

const (
	sphereSegments  = 48
	latLngRings     = 7
	latLngMeridians = 12

	equatorCount = 16
	dotCount     = 800
	dotAngular   = 0.02
	circleCount  = 120
)

// newRNG returns a deterministic generator parameterized only by seed, never
// by process-global state (stochastic textures take an explicit
// seed).
func newRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// orthonormalBasis returns two unit vectors u, v such that {axis, u, v} is a
// right-handed orthonormal basis, for parameterizing a circle on a sphere
// whose polar axis is axis.
func orthonormalBasis(axis vector.Vector) (u, v vector.Vector) {
	a := axis.Normalize()
	ref := vector.New(1, 0, 0)
	if math.Abs(a.X) > 0.9 {
		ref = vector.New(0, 1, 0)
	}
	u = a.Cross(ref).Normalize()
	v = a.Cross(u)
	return u, v
}

// circleOnSphere returns the closed polyline at angular distance
// angularRadius from axis on the sphere (center, radius), e.g. angularRadius
// == pi/2 is a great circle ("equator") relative to axis.
func circleOnSphere(center vector.Vector, radius float64, axis vector.Vector, angularRadius float64, segments int) paths.Path {
	a := axis.Normalize()
	u, v := orthonormalBasis(a)
	cosR, sinR := math.Cos(angularRadius), math.Sin(angularRadius)

	p := make(paths.Path, segments+1)
	for i := 0; i <= segments; i++ {
		t := 2 * math.Pi * float64(i) / float64(segments)
		dir := a.MulScalar(cosR).Add(u.MulScalar(math.Cos(t) * sinR)).Add(v.MulScalar(math.Sin(t) * sinR))
		p[i] = center.Add(dir.MulScalar(radius))
	}
	return p
}

// meridianOnSphere returns the open half-great-circle from pole to pole at
// longitude phi around axis.
func meridianOnSphere(center vector.Vector, radius float64, axis vector.Vector, phi float64, segments int) paths.Path {
	a := axis.Normalize()
	u, v := orthonormalBasis(a)
	dir2 := u.MulScalar(math.Cos(phi)).Add(v.MulScalar(math.Sin(phi)))

	p := make(paths.Path, segments+1)
	for i := 0; i <= segments; i++ {
		theta := math.Pi * float64(i) / float64(segments)
		dir := a.MulScalar(math.Cos(theta)).Add(dir2.MulScalar(math.Sin(theta)))
		p[i] = center.Add(dir.MulScalar(radius))
	}
	return p
}

func randomUnitVector(rng *rand.Rand) vector.Vector {
	for {
		v := vector.New(rng.Float64()*2-1, rng.Float64()*2-1, rng.Float64()*2-1)
		if l := v.LengthSquared(); l > 1e-6 && l <= 1 {
			return v.Normalize()
		}
	}
}

func latLngPaths(center vector.Vector, radius float64) paths.Paths {
	axis := vector.New(0, 0, 1)
	var out paths.Paths
	for i := 1; i <= latLngRings; i++ {
		theta := math.Pi * float64(i) / float64(latLngRings+1)
		out = append(out, circleOnSphere(center, radius, axis, theta, sphereSegments))
	}
	for j := 0; j < latLngMeridians; j++ {
		phi := 2 * math.Pi * float64(j) / float64(latLngMeridians)
		out = append(out, meridianOnSphere(center, radius, axis, phi, sphereSegments/2))
	}
	return out
}

func randomEquatorsPaths(rng *rand.Rand, center vector.Vector, radius float64) paths.Paths {
	out := make(paths.Paths, 0, equatorCount)
	for i := 0; i < equatorCount; i++ {
		axis := randomUnitVector(rng)
		out = append(out, circleOnSphere(center, radius, axis, math.Pi/2, sphereSegments))
	}
	return out
}

func randomDotsPaths(rng *rand.Rand, center vector.Vector, radius float64) paths.Paths {
	out := make(paths.Paths, 0, dotCount)
	for i := 0; i < dotCount; i++ {
		axis := randomUnitVector(rng)
		out = append(out, circleOnSphere(center, radius, axis, dotAngular, 6))
	}
	return out
}

func randomCirclesPaths(rng *rand.Rand, center vector.Vector, radius float64) paths.Paths {
	out := make(paths.Paths, 0, circleCount)
	for i := 0; i < circleCount; i++ {
		axis := randomUnitVector(rng)
		angular := 0.1 + rng.Float64()*(math.Pi/2-0.1)
		out = append(out, circleOnSphere(center, radius, axis, angular, sphereSegments/2))
	}
	return out
}

// cubeEdges returns the 12-edge wireframe of the box [min,max].
func cubeEdges(min, max vector.Vector) paths.Paths {
	corner := func(bits int) vector.Vector {
		x, y, z := min.X, min.Y, min.Z
		if bits&1 != 0 {
			x = max.X
		}
		if bits&2 != 0 {
			y = max.Y
		}
		if bits&4 != 0 {
			z = max.Z
		}
		return vector.New(x, y, z)
	}
	var out paths.Paths
	for bits := 0; bits < 8; bits++ {
		for axis := 0; axis < 3; axis++ {
			bit := 1 << axis
			if bits&bit != 0 {
				continue // only emit each edge from its lower-numbered endpoint
			}
			out = append(out, paths.Path{corner(bits), corner(bits | bit)})
		}
	}
	return out
}

// cubeStripes returns interior lines parallel to each face's edges, dividing
// every face into `stripes` bands.
func cubeStripes(min, max vector.Vector, stripes int) paths.Paths {
	if stripes < 2 {
		return nil
	}
	var out paths.Paths
	size := max.Sub(min)
	// three pairs of opposite faces, one fixed axis each
	for fixed := 0; fixed < 3; fixed++ {
		a, b := (fixed+1)%3, (fixed+2)%3
		for _, fixedVal := range [2]float64{min.Component(fixed), max.Component(fixed)} {
			for i := 1; i < stripes; i++ {
				frac := float64(i) / float64(stripes)
				av := min.Component(a) + frac*size.Component(a)
				p1 := setComponent(setComponent(min, fixed, fixedVal), a, av)
				p1 = setComponent(p1, b, min.Component(b))
				p2 := setComponent(p1, b, max.Component(b))
				out = append(out, paths.Path{p1, p2})
			}
		}
	}
	return out
}

func setComponent(v vector.Vector, axis int, val float64) vector.Vector {
	switch axis {
	case 0:
		v.X = val
	case 1:
		v.Y = val
	default:
		v.Z = val
	}
	return v
}
