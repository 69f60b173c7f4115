package svo

import (
	"regexp"
	"strings"
	"testing"

	"github.com/TomTonic/svo/morton"
)

func TestByteSizeAccountsForPayloadSize(t *testing.T) {
	type wide struct{ a, b, c, d uint64 }

	small := New[uint8](Config{BitWidth: morton.Width16})
	large := New[wide](Config{BitWidth: morton.Width16})

	pos := Coordinate{1, 2, 3}
	small.Alloc(pos, 0)
	large.Alloc(pos, wide{})

	if large.ByteSize() <= small.ByteSize() {
		t.Fatalf("ByteSize with a wider payload (%d) did not exceed a narrower one (%d)", large.ByteSize(), small.ByteSize())
	}
}

func TestStatsStringContainsGroupedByteCount(t *testing.T) {
	tr := New[int](Config{BitWidth: morton.Width16})
	for x := uint32(0); x < 20; x++ {
		tr.Alloc(Coordinate{x, 0, 0}, int(x))
	}

	s := tr.Stats().String()
	if !strings.Contains(s, "node blocks") || !strings.Contains(s, "voxel blocks") || !strings.Contains(s, "bytes") {
		t.Fatalf("Stats().String() = %q, missing expected labels", s)
	}
	// 11 node blocks and 10 voxel blocks put the byte count above 1,000.
	if !regexp.MustCompile(`\d,\d{3} bytes`).MatchString(s) {
		t.Fatalf("Stats().String() = %q, byte count not grouped with thousands separators", s)
	}
}

func TestKeysEmptyOnNewTree(t *testing.T) {
	tr := New[int](Config{BitWidth: morton.Width16})
	if tr.Keys().Size() != 0 {
		t.Fatalf("Keys() on a new tree is not empty")
	}
}

func TestLiveVoxelsMatchesKeysSize(t *testing.T) {
	tr := New[int](Config{BitWidth: morton.Width16})
	coords := []Coordinate{{0, 0, 0}, {1, 2, 3}, {31, 31, 31}, {16, 0, 16}}
	for i, c := range coords {
		tr.Alloc(c, i)
	}

	if got := tr.LiveVoxels(); got != len(coords) {
		t.Fatalf("LiveVoxels() = %d, want %d", got, len(coords))
	}
	if got := tr.Keys().Size(); got != uint32(len(coords)) {
		t.Fatalf("Keys().Size() = %d, want %d", got, len(coords))
	}

	tr.Dealloc(coords[0])
	if got := tr.LiveVoxels(); got != len(coords)-1 {
		t.Fatalf("LiveVoxels() after Dealloc = %d, want %d", got, len(coords)-1)
	}
}
