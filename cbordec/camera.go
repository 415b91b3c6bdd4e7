package cbordec

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/HellOwhatAs/ln/vector"
)

// CameraPayload mirrors the wire-format camera mapping: eye, center, up,
// viewport dimensions, and the visibility-sampling step.
type CameraPayload struct {
	Eye, Center, Up       vector.Vector
	Width, Height         int
	Fovy, Near, Far, Step float64
}

type cameraFields struct {
	Eye    vec3    `cbor:"eye"`
	Center vec3    `cbor:"center"`
	Up     vec3    `cbor:"up"`
	Width  int     `cbor:"width"`
	Height int     `cbor:"height"`
	Fovy   float64 `cbor:"fovy"`
	Near   float64 `cbor:"near"`
	Far    float64 `cbor:"far"`
	Step   float64 `cbor:"step"`
}

// DecodeCamera decodes data as the single camera mapping.
func DecodeCamera(data []byte) (CameraPayload, error) {
	var f cameraFields
	if err := cbor.Unmarshal(data, &f); err != nil {
		return CameraPayload{}, wrapConfig("DecodeCamera", fmt.Errorf("%w: %v", ErrMalformed, err))
	}
	return CameraPayload{
		Eye: f.Eye.toVector(), Center: f.Center.toVector(), Up: f.Up.toVector(),
		Width: f.Width, Height: f.Height,
		Fovy: f.Fovy, Near: f.Near, Far: f.Far, Step: f.Step,
	}, nil
}
