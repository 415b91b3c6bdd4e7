// Package ln is a 3D line-art renderer whose output is a set of 2D vector
// paths rather than a raster. Scenes are built from solids (sphere, cube,
// cylinder, cone, triangle, triangle mesh, implicit function surface),
// composed with Constructive Solid Geometry operators (intersection,
// difference) and affine transforms, in package shape. Each solid
// contributes texture polylines on its surface; package scene clips those
// polylines against the scene's own occluders via a BVH (package bvh),
// projects the visible fragments through a pinhole camera (package
// camera), and emits 2D paths (package paths) ready for SVG or PNG output.
//
// A typical caller builds shapes, adds their roots to a scene.Scene, calls
// Compile once, and then calls Render for each desired viewpoint:
//
//	s := scene.New()
//	sph, _ := shape.NewSphere(vector.Zero(), 1, shape.LatLng, 0)
//	s.Add(sph)
//	s.Compile()
//	out, _, _ := s.Render(eye, center, up, 1024, 1024, 50, 0.1, 100, 0.01)
//	paths.WriteSVG(out, "out.svg", 1024, 1024)
//
// Scenes may also be driven without a native caller by decoding a
// CBOR-encoded scene graph with package cbordec.
package ln
