// Package wire3d draws a rotating wireframe model onto a small display.
//
// Pipeline (fixed, recomputed from scratch every frame):
//
//	Model → Rotate (X, then Y, then Z) → Push back along Z → Project → Draw edges.
//
// Nothing is retained between frames except the caller's Angles. The renderer
// clears the Surface and issues one line per edge, so each frame is a total
// redraw.
package wire3d
