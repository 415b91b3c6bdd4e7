// Package camera builds view/projection matrices and projects world-space
// polylines into clipped, pixel-space 2D polylines.
package camera

import (
	"github.com/HellOwhatAs/ln/matrix"
	"github.com/HellOwhatAs/ln/paths"
	"github.com/HellOwhatAs/ln/vector"
)

// Camera holds a right-handed lookAt view combined with a perspective
// projection, plus the viewport dimensions used to map NDC to pixels.
type Camera struct {
	Eye, Center, Up vector.Vector
	Width, Height   int
	Fovy            float64
	ZNear, ZFar     float64

	view, proj, viewProj matrix.Matrix
}

// New constructs a Camera and precomputes its view and projection matrices.
func New(eye, center, up vector.Vector, width, height int, fovy, znear, zfar float64) *Camera {
	aspect := float64(width) / float64(height)
	view := matrix.LookAt(eye, center, up)
	proj := matrix.Perspective(fovy, aspect, znear, zfar)
	return &Camera{
		Eye: eye, Center: center, Up: up,
		Width: width, Height: height,
		Fovy: fovy, ZNear: znear, ZFar: zfar,
		view: view, proj: proj, viewProj: proj.Mul(view),
	}
}

// Project transforms world-space polylines into clip space, splits at the
// near-plane w crossing, clips to the unit square in NDC, and maps the
// result to pixel coordinates. The pipeline matches §4.6: transform, near
// split, 2D clip, viewport map.
func (c *Camera) Project(world paths.Paths) paths.Paths {
	var ndc paths.Paths
	for _, path := range world {
		ndc = append(ndc, c.splitAtNearPlane(path)...)
	}

	clipped := ndc.Clip2D()
	return clipped.Transform(c.viewportMatrix())
}

type clipVertex struct {
	pos vector.Vector
	w   float64
}

// nearW is the w-crossing the split interpolates to: slightly positive so
// the divided point lies just inside the visible half-space rather than
// exactly on its boundary.
const nearW = 1e-9

// splitAtNearPlane walks path's vertices in clip space (post view*proj)
// and breaks it wherever w crosses zero, linearly interpolating the
// crossing point in clip space before dividing by w. Each maximal run of
// w>0 vertices becomes its own output polyline, already perspective-
// divided into NDC.
func (c *Camera) splitAtNearPlane(path paths.Path) paths.Paths {
	verts := make([]clipVertex, len(path))
	for i, v := range path {
		pos, w := c.viewProj.MulPositionW(v)
		verts[i] = clipVertex{pos: pos, w: w}
	}

	var out paths.Paths
	var run paths.Path
	closeRun := func() {
		if len(run) > 1 {
			out = append(out, run)
		}
		run = nil
	}

	for i, cur := range verts {
		visible := cur.w > 0
		if i > 0 {
			prev := verts[i-1]
			prevVisible := prev.w > 0
			if prevVisible != visible {
				t := (nearW - prev.w) / (cur.w - prev.w)
				crossing := prev.pos.Lerp(cur.pos, t).DivScalar(nearW)
				if !prevVisible {
					closeRun()
				}
				run = append(run, crossing)
				if !visible {
					closeRun()
				}
			}
		}
		if visible {
			run = append(run, cur.pos.DivScalar(cur.w))
		}
	}
	closeRun()
	return out
}

// viewportMatrix maps NDC (x,y) in [-1,1]^2 to pixel space via
// (x,y) -> ((x+1)/2*width, (1-(y+1)/2)*height), leaving z untouched.
func (c *Camera) viewportMatrix() matrix.Matrix {
	return matrix.Matrix{
		X00: float64(c.Width) / 2, X01: 0, X02: 0, X03: float64(c.Width) / 2,
		X10: 0, X11: -float64(c.Height) / 2, X12: 0, X13: float64(c.Height) / 2,
		X20: 0, X21: 0, X22: 1, X23: 0,
		X30: 0, X31: 0, X32: 0, X33: 1,
	}
}
