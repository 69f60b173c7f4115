package svo

import (
	"testing"

	"github.com/TomTonic/svo/morton"
)

func TestConfigResolveDefaultsToAbsoluteWidth(t *testing.T) {
	bounds, maxDepth, axisWidth := Config{BitWidth: morton.Width16}.resolve()
	if bounds != (Coordinate{32, 32, 32}) {
		t.Fatalf("bounds = %+v, want {32,32,32}", bounds)
	}
	if maxDepth != 5 || axisWidth != 32 {
		t.Fatalf("maxDepth=%d axisWidth=%d, want 5, 32", maxDepth, axisWidth)
	}
}

func TestConfigResolveClampsLimitAboveAbsolute(t *testing.T) {
	bounds, _, _ := Config{BitWidth: morton.Width16, LimitMaxBounds: Coordinate{1000, 1000, 1000}}.resolve()
	if bounds != (Coordinate{32, 32, 32}) {
		t.Fatalf("bounds = %+v, want clamped to {32,32,32}", bounds)
	}
}

func TestConfigResolveRoundsUpNonPowerOfTwoBounds(t *testing.T) {
	_, maxDepth, axisWidth := Config{BitWidth: morton.Width32, LimitMaxBounds: Coordinate{X: 17, Y: 17, Z: 17}}.resolve()
	if axisWidth < 17 {
		t.Fatalf("axisWidth = %d, smaller than requested bound 17", axisWidth)
	}
	if maxDepth != 5 || axisWidth != 32 {
		t.Fatalf("maxDepth=%d axisWidth=%d, want 5, 32 for bound 17", maxDepth, axisWidth)
	}
}

func TestConfigResolveFloorsMaxDepthAtThree(t *testing.T) {
	_, maxDepth, axisWidth := Config{BitWidth: morton.Width16, LimitMaxBounds: Coordinate{X: 2, Y: 2, Z: 2}}.resolve()
	if maxDepth != 3 || axisWidth != 8 {
		t.Fatalf("maxDepth=%d axisWidth=%d, want 3, 8 (floored minimum)", maxDepth, axisWidth)
	}
}
