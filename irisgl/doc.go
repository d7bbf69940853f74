// Package irisgl provides a minimal, predictable 2D software rasterizer for
// small framebuffer displays.
//
// It draws filled primitives (rectangles, rounded rectangles, ellipses,
// polygons) and lines into a caller-provided Target. The library does not own
// a framebuffer and avoids allocations in the draw hot path.
//
// Degenerate requests (zero or negative extents) are defined no-op draws,
// never errors: callers animating shapes down to nothing should not have to
// special-case the last frame.
package irisgl
