package svo

import (
	"math/bits"
	"unsafe"

	set3 "github.com/TomTonic/Set3"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/TomTonic/svo/morton"
)

// ByteSize reports the tree's current memory footprint: the fixed Tree
// header plus 8 elements per live node-pool block and 8 elements per live
// voxel-pool block, computed from unsafe.Sizeof rather than tracked
// incrementally, so it always reflects P's actual size.
func (t *Tree[P]) ByteSize() uint64 {
	var payload P
	size := uint64(unsafe.Sizeof(*t))
	size += uint64(t.nodes.LiveCount()) * 8 * uint64(unsafe.Sizeof(node{}))
	size += uint64(t.voxels.LiveCount()) * 8 * uint64(unsafe.Sizeof(payload))
	return size
}

// Stats is a snapshot of a Tree's pool occupancy and memory footprint.
type Stats struct {
	NodeBlocks  int
	VoxelBlocks int
	Voxels      int
	Bytes       uint64
}

// Stats returns a snapshot of the tree's current pool occupancy and
// memory footprint.
func (t *Tree[P]) Stats() Stats {
	return Stats{
		NodeBlocks:  t.nodes.LiveCount(),
		VoxelBlocks: t.voxels.LiveCount(),
		Voxels:      t.LiveVoxels(),
		Bytes:       t.ByteSize(),
	}
}

// String renders s with locale-grouped thousands separators, e.g.
// "12,345 node blocks, 1,024 voxel blocks, 900 voxels, 1,180,000 bytes".
func (s Stats) String() string {
	p := message.NewPrinter(language.English)
	return p.Sprintf("%d node blocks, %d voxel blocks, %d voxels, %d bytes", s.NodeBlocks, s.VoxelBlocks, s.Voxels, s.Bytes)
}

// LiveVoxels returns the number of currently-occupied coordinates, summing
// occupancy-mask popcounts along a single pool-driven walk rather than
// materializing a key set the way Keys does.
func (t *Tree[P]) LiveVoxels() int {
	return t.countOccupied(&t.root, 0)
}

func (t *Tree[P]) countOccupied(n *node, depth uint8) int {
	if depth == t.maxDepth-1 {
		return bits.OnesCount8(n.mask)
	}
	block := t.nodes.Block(n.blockIndex)
	total := 0
	for i := uint8(0); i < 8; i++ {
		bit := uint8(1) << i
		if n.mask&bit == 0 {
			continue
		}
		total += t.countOccupied(&block[i], depth+1)
	}
	return total
}

// Keys returns the set of Morton keys of every occupied coordinate in the
// tree, encoded under the tree's configured BitWidth.
func (t *Tree[P]) Keys() *set3.Set3[uint64] {
	keys := set3.Empty[uint64]()
	t.collectKeys(&t.root, Coordinate{}, 0, keys)
	return keys
}

func (t *Tree[P]) collectKeys(n *node, origin Coordinate, depth uint8, keys *set3.Set3[uint64]) {
	extent := t.axisWidth >> depth

	if depth == t.maxDepth-1 {
		for i := uint8(0); i < 8; i++ {
			bit := uint8(1) << i
			if n.mask&bit == 0 {
				continue
			}
			pos := childOriginOf(origin, extent, i)
			keys.Add(t.encodeKey(pos))
		}
		return
	}

	block := t.nodes.Block(n.blockIndex)
	for i := uint8(0); i < 8; i++ {
		bit := uint8(1) << i
		if n.mask&bit == 0 {
			continue
		}
		childPos := childOriginOf(origin, extent, i)
		t.collectKeys(&block[i], childPos, depth+1, keys)
	}
}

func (t *Tree[P]) encodeKey(pos Coordinate) uint64 {
	if t.cfg.BitWidth == morton.Width16 {
		return uint64(morton.Encode16(uint8(pos.X), uint8(pos.Y), uint8(pos.Z)))
	}
	return uint64(morton.Encode32(uint16(pos.X), uint16(pos.Y), uint16(pos.Z)))
}
