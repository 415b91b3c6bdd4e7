// Package cbordec decodes a CBOR-encoded scene graph: an ordered list of
// single-key shape-node maps, plus a camera payload, driving the core
// without a native caller.
package cbordec

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/HellOwhatAs/ln/geom"
	"github.com/HellOwhatAs/ln/lnerr"
	"github.com/HellOwhatAs/ln/matrix"
	"github.com/HellOwhatAs/ln/shape"
	"github.com/HellOwhatAs/ln/vector"
)

type vec3 [3]float64

func (v vec3) toVector() vector.Vector {
	return vector.New(v[0], v[1], v[2])
}

// DecodeScene decodes data as an ordered list of shape nodes and returns
// the constructed root shapes in order.
func DecodeScene(data []byte) ([]shape.Shape, error) {
	var raw []cbor.RawMessage
	if err := cbor.Unmarshal(data, &raw); err != nil {
		return nil, wrapConfig("DecodeScene", fmt.Errorf("%w: %v", ErrMalformed, err))
	}
	shapes := make([]shape.Shape, len(raw))
	for i, r := range raw {
		s, err := decodeNode(r)
		if err != nil {
			return nil, err
		}
		shapes[i] = s
	}
	return shapes, nil
}

func wrapConfig(where string, err error) error {
	return lnerr.NewConfigError("cbordec", where, err)
}

// decodeNode decodes a single shape node: a one-key map whose key names
// the variant and whose value holds that variant's fields.
func decodeNode(raw cbor.RawMessage) (shape.Shape, error) {
	var m map[string]cbor.RawMessage
	if err := cbor.Unmarshal(raw, &m); err != nil {
		return nil, wrapConfig("decodeNode", fmt.Errorf("%w: %v", ErrMalformed, err))
	}
	if len(m) != 1 {
		return nil, wrapConfig("decodeNode", fmt.Errorf("%w: shape node must have exactly one key, got %d", ErrMalformed, len(m)))
	}
	for variant, body := range m {
		switch variant {
		case "Cube":
			return decodeCube(body)
		case "Sphere":
			return decodeSphere(body)
		case "Cylinder":
			return decodeCylinder(body)
		case "Cone":
			return decodeCone(body)
		case "Triangle":
			return decodeTriangle(body)
		case "Mesh":
			return decodeMesh(body)
		case "Function":
			return decodeFunction(body)
		case "Outline":
			return decodeOutline(body)
		case "Intersection":
			return decodeIntersection(body)
		case "Difference":
			return decodeDifference(body)
		case "Transformation":
			return decodeTransformation(body)
		default:
			return nil, wrapConfig("decodeNode", fmt.Errorf("%w: %q", ErrUnknownVariant, variant))
		}
	}
	panic("unreachable")
}

type cubeFields struct {
	Min     vec3   `cbor:"min"`
	Max     vec3   `cbor:"max"`
	Texture string `cbor:"texture"`
	Stripes int    `cbor:"stripes"`
}

func decodeCube(body cbor.RawMessage) (shape.Shape, error) {
	var f cubeFields
	if err := cbor.Unmarshal(body, &f); err != nil {
		return nil, wrapConfig("decodeCube", fmt.Errorf("%w: %v", ErrMalformed, err))
	}
	tex := shape.Vanilla
	if f.Texture == "Stripes" {
		tex = shape.Stripes
	}
	return shape.NewCube(f.Min.toVector(), f.Max.toVector(), tex, f.Stripes)
}

type sphereFields struct {
	Center  vec3   `cbor:"center"`
	Radius  float64 `cbor:"radius"`
	Texture string `cbor:"texture"`
	Seed    int64  `cbor:"seed"`
}

func decodeSphere(body cbor.RawMessage) (shape.Shape, error) {
	var f sphereFields
	if err := cbor.Unmarshal(body, &f); err != nil {
		return nil, wrapConfig("decodeSphere", fmt.Errorf("%w: %v", ErrMalformed, err))
	}
	var tex shape.SphereTexture
	switch f.Texture {
	case "RandomEquators":
		tex = shape.RandomEquators
	case "RandomDots":
		tex = shape.RandomDots
	case "RandomCircles":
		tex = shape.RandomCircles
	default:
		tex = shape.LatLng
	}
	return shape.NewSphere(f.Center.toVector(), f.Radius, tex, f.Seed)
}

type cylinderFields struct {
	Radius float64 `cbor:"radius"`
	Z0     float64 `cbor:"z0"`
	Z1     float64 `cbor:"z1"`
}

func decodeCylinder(body cbor.RawMessage) (shape.Shape, error) {
	var f cylinderFields
	if err := cbor.Unmarshal(body, &f); err != nil {
		return nil, wrapConfig("decodeCylinder", fmt.Errorf("%w: %v", ErrMalformed, err))
	}
	return shape.NewCylinder(f.Radius, f.Z0, f.Z1)
}

type coneFields struct {
	Radius float64 `cbor:"radius"`
	Height float64 `cbor:"height"`
}

func decodeCone(body cbor.RawMessage) (shape.Shape, error) {
	var f coneFields
	if err := cbor.Unmarshal(body, &f); err != nil {
		return nil, wrapConfig("decodeCone", fmt.Errorf("%w: %v", ErrMalformed, err))
	}
	return shape.NewCone(f.Radius, f.Height)
}

type triangleFields struct {
	V1 vec3 `cbor:"v1"`
	V2 vec3 `cbor:"v2"`
	V3 vec3 `cbor:"v3"`
}

func decodeTriangle(body cbor.RawMessage) (shape.Shape, error) {
	var f triangleFields
	if err := cbor.Unmarshal(body, &f); err != nil {
		return nil, wrapConfig("decodeTriangle", fmt.Errorf("%w: %v", ErrMalformed, err))
	}
	return shape.NewTriangle(f.V1.toVector(), f.V2.toVector(), f.V3.toVector())
}

func decodeMesh(body cbor.RawMessage) (shape.Shape, error) {
	var nodes []cbor.RawMessage
	if err := cbor.Unmarshal(body, &nodes); err != nil {
		return nil, wrapConfig("decodeMesh", fmt.Errorf("%w: %v", ErrMalformed, err))
	}
	triangles := make([]*shape.Triangle, len(nodes))
	for i, n := range nodes {
		var oneKey map[string]cbor.RawMessage
		if err := cbor.Unmarshal(n, &oneKey); err != nil {
			return nil, wrapConfig("decodeMesh", fmt.Errorf("%w: %v", ErrMalformed, err))
		}
		body, ok := oneKey["Triangle"]
		if !ok {
			return nil, wrapConfig("decodeMesh", fmt.Errorf("%w: mesh entries must be Triangle nodes", ErrMalformed))
		}
		var f triangleFields
		if err := cbor.Unmarshal(body, &f); err != nil {
			return nil, wrapConfig("decodeMesh", fmt.Errorf("%w: %v", ErrMalformed, err))
		}
		tri, err := shape.NewTriangle(f.V1.toVector(), f.V2.toVector(), f.V3.toVector())
		if err != nil {
			return nil, err
		}
		triangles[i] = tri
	}
	return shape.NewMesh(triangles)
}

type functionFields struct {
	Func      string  `cbor:"func"`
	Bbox      [2]vec3 `cbor:"bbox"`
	Direction string  `cbor:"direction"`
	Texture   string  `cbor:"texture"`
}

func decodeFunction(body cbor.RawMessage) (shape.Shape, error) {
	var f functionFields
	if err := cbor.Unmarshal(body, &f); err != nil {
		return nil, wrapConfig("decodeFunction", fmt.Errorf("%w: %v", ErrMalformed, err))
	}
	dir := shape.Below
	if f.Direction == "Above" {
		dir = shape.Above
	}
	var tex shape.FunctionTexture
	switch f.Texture {
	case "Spiral":
		tex = shape.Spiral
	case "Swirl":
		tex = shape.Swirl
	default:
		tex = shape.Grid
	}
	box := geom.NewBox(f.Bbox[0].toVector(), f.Bbox[1].toVector())
	const defaultStep = 0.05
	return shape.NewFunction(f.Func, box, dir, tex, defaultStep)
}

type outlineFields struct {
	Shape cbor.RawMessage `cbor:"shape"`
}

func decodeOutline(body cbor.RawMessage) (shape.Shape, error) {
	var f outlineFields
	if err := cbor.Unmarshal(body, &f); err != nil {
		return nil, wrapConfig("decodeOutline", fmt.Errorf("%w: %v", ErrMalformed, err))
	}
	inner, err := decodeNode(f.Shape)
	if err != nil {
		return nil, err
	}
	return shape.NewOutline(inner)
}

func decodeIntersection(body cbor.RawMessage) (shape.Shape, error) {
	children, err := decodeNodeList(body)
	if err != nil {
		return nil, err
	}
	return shape.NewIntersection(children...)
}

func decodeDifference(body cbor.RawMessage) (shape.Shape, error) {
	children, err := decodeNodeList(body)
	if err != nil {
		return nil, err
	}
	return shape.NewDifference(children...)
}

func decodeNodeList(body cbor.RawMessage) ([]shape.Shape, error) {
	var nodes []cbor.RawMessage
	if err := cbor.Unmarshal(body, &nodes); err != nil {
		return nil, wrapConfig("decodeNodeList", fmt.Errorf("%w: %v", ErrMalformed, err))
	}
	children := make([]shape.Shape, len(nodes))
	for i, n := range nodes {
		s, err := decodeNode(n)
		if err != nil {
			return nil, err
		}
		children[i] = s
	}
	return children, nil
}

type transformationFields struct {
	Shape  cbor.RawMessage            `cbor:"shape"`
	Matrix map[string]cbor.RawMessage `cbor:"matrix"`
}

func decodeTransformation(body cbor.RawMessage) (shape.Shape, error) {
	var f transformationFields
	if err := cbor.Unmarshal(body, &f); err != nil {
		return nil, wrapConfig("decodeTransformation", fmt.Errorf("%w: %v", ErrMalformed, err))
	}
	inner, err := decodeNode(f.Shape)
	if err != nil {
		return nil, err
	}
	m, err := decodeMatrix(f.Matrix)
	if err != nil {
		return nil, err
	}
	return shape.NewTransformedShape(inner, m)
}

func decodeMatrix(m map[string]cbor.RawMessage) (matrix.Matrix, error) {
	if len(m) != 1 {
		return matrix.Matrix{}, wrapConfig("decodeMatrix", fmt.Errorf("%w: matrix node must have exactly one key", ErrMalformed))
	}
	for variant, body := range m {
		switch variant {
		case "Translate":
			var f struct {
				V vec3 `cbor:"v"`
			}
			if err := cbor.Unmarshal(body, &f); err != nil {
				return matrix.Matrix{}, wrapConfig("decodeMatrix", fmt.Errorf("%w: %v", ErrMalformed, err))
			}
			return matrix.Translate(f.V.toVector()), nil
		case "Scale":
			var f struct {
				V vec3 `cbor:"v"`
			}
			if err := cbor.Unmarshal(body, &f); err != nil {
				return matrix.Matrix{}, wrapConfig("decodeMatrix", fmt.Errorf("%w: %v", ErrMalformed, err))
			}
			return matrix.Scale(f.V.toVector()), nil
		case "Rotate":
			var f struct {
				V vec3    `cbor:"v"`
				A float64 `cbor:"a"`
			}
			if err := cbor.Unmarshal(body, &f); err != nil {
				return matrix.Matrix{}, wrapConfig("decodeMatrix", fmt.Errorf("%w: %v", ErrMalformed, err))
			}
			return matrix.Rotate(f.V.toVector(), f.A), nil
		default:
			return matrix.Matrix{}, wrapConfig("decodeMatrix", fmt.Errorf("%w: %q", ErrUnknownVariant, variant))
		}
	}
	panic("unreachable")
}
