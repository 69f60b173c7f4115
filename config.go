package svo

import "github.com/TomTonic/svo/morton"

// Config parameterizes a Tree at construction. In the C++ original these
// were template non-type parameters (compile-time constants baked into
// the type); Go has no equivalent, so they become ordinary runtime
// fields, read once by New and fixed for the Tree's lifetime.
type Config struct {
	// BitWidth selects the Morton key width and, with it, the absolute
	// per-axis lattice size (32 for Width16, 1024 for Width32).
	BitWidth morton.Width

	// DiscardOverflow controls what happens when Alloc or Get is asked
	// for a coordinate outside Bounds. If true, the call is a silent
	// no-op (Alloc) or reports not-found (Get). If false, it panics:
	// an out-of-bounds access is a caller bug, not a runtime condition
	// to recover from.
	DiscardOverflow bool

	// LimitMaxBounds clamps the tree's per-axis extent below the
	// absolute lattice size implied by BitWidth. A zero component means
	// "no limit beyond the absolute width". Components above the
	// absolute width are clamped down to it; they never extend it.
	LimitMaxBounds Coordinate
}

func clampAxis(limit, absolute uint32) uint32 {
	if limit == 0 || limit > absolute {
		return absolute
	}
	return limit
}

func floorLog2(v uint32) uint8 {
	var r uint8
	for v > 1 {
		v >>= 1
		r++
	}
	return r
}

// resolve derives the tree's effective bounds, max depth and axis width
// from a Config. maxDepth is the smallest power-of-two exponent whose
// axis width covers the largest bound component, floored at 3 (the
// minimum depth needed to reach the voxel-octant level from the root).
func (c Config) resolve() (bounds Coordinate, maxDepth uint8, axisWidth uint32) {
	absolute := c.BitWidth.AbsoluteAxisWidth()
	bounds = Coordinate{
		X: clampAxis(c.LimitMaxBounds.X, absolute),
		Y: clampAxis(c.LimitMaxBounds.Y, absolute),
		Z: clampAxis(c.LimitMaxBounds.Z, absolute),
	}

	maxAxis := bounds.X
	if bounds.Y > maxAxis {
		maxAxis = bounds.Y
	}
	if bounds.Z > maxAxis {
		maxAxis = bounds.Z
	}

	maxDepth = floorLog2(maxAxis)
	if maxAxis&(maxAxis-1) != 0 {
		// maxAxis is not itself a power of two: floorLog2 undershoots,
		// round up so the lattice still covers it.
		maxDepth++
	}
	if maxDepth < 3 {
		maxDepth = 3
	}
	axisWidth = 1 << maxDepth
	return
}
