package svo

import (
	"fmt"

	"github.com/TomTonic/svo/morton"
	"github.com/TomTonic/svo/pool"
)

// maxPathDepth bounds the descent depth for both supported key widths
// (Width32's maxDepth never exceeds 10), sizing getTraced's path arrays
// without a heap allocation per call.
const maxPathDepth = 10

// Tree is a sparse voxel octree over a bounded 3D integer lattice, storing
// one payload of type P per occupied coordinate. The zero value is not
// usable; construct with New.
//
// Tree is not safe for concurrent use. Every exported method assumes
// exclusive access to the receiver for its duration; callers needing
// concurrent readers and writers must serialize access themselves.
type Tree[P any] struct {
	cfg       Config
	maxDepth  uint8
	axisWidth uint32
	bounds    Coordinate

	root   node
	nodes  *pool.Pool[node]
	voxels *pool.Pool[P]
}

// New constructs an empty Tree from cfg. The root node is allocated
// immediately and is never reclaimed for the Tree's lifetime.
func New[P any](cfg Config) *Tree[P] {
	bounds, maxDepth, axisWidth := cfg.resolve()

	t := &Tree[P]{
		cfg:       cfg,
		maxDepth:  maxDepth,
		axisWidth: axisWidth,
		bounds:    bounds,
		nodes:     pool.New[node](),
		voxels:    pool.New[P](),
	}
	t.root.blockIndex = t.nodes.Alloc()
	return t
}

// MaxDepth returns the number of octant-selection steps between the root
// and a voxel, derived from Config at construction.
func (t *Tree[P]) MaxDepth() uint8 { return t.maxDepth }

// AxisWidth returns the tree's per-axis lattice size: 1<<MaxDepth.
func (t *Tree[P]) AxisWidth() uint32 { return t.axisWidth }

// Bounds returns the tree's effective per-axis bounds, as clamped by
// Config.resolve from Config.LimitMaxBounds.
func (t *Tree[P]) Bounds() Coordinate { return t.bounds }

// BitWidth returns the Morton key width the tree was configured with.
func (t *Tree[P]) BitWidth() morton.Width { return t.cfg.BitWidth }

func (t *Tree[P]) inBounds(pos Coordinate) bool {
	return pos.X < t.bounds.X && pos.Y < t.bounds.Y && pos.Z < t.bounds.Z
}

func (t *Tree[P]) outOfBounds(pos Coordinate) {
	if !t.cfg.DiscardOverflow {
		panic(fmt.Sprintf("svo: coordinate %+v out of bounds %+v", pos, t.bounds))
	}
}

// Alloc stores payload at pos, overwriting any existing payload there.
// Intermediate nodes along the descent path are created as needed; no
// node or voxel block is allocated for octants that already exist.
//
// If pos is outside Bounds, Alloc panics unless Config.DiscardOverflow is
// set, in which case it is a silent no-op.
func (t *Tree[P]) Alloc(pos Coordinate, payload P) {
	if !t.inBounds(pos) {
		t.outOfBounds(pos)
		return
	}

	target := Coordinate{pos.X << 1, pos.Y << 1, pos.Z << 1}
	n := &t.root
	origin := Coordinate{}

	for depth := uint8(0); depth < t.maxDepth-2; depth++ {
		extent := t.axisWidth >> depth
		index, bit, next := octant(origin, target, extent)
		block := t.nodes.Block(n.blockIndex)

		if n.mask&bit == 0 {
			n.mask |= bit
			childIndex := t.nodes.AcquireNextIndex()
			block[index] = node{depth: depth + 1, blockIndex: childIndex}
			t.nodes.Alloc()
		}
		n = &block[index]
		origin = next
	}

	// Voxel-octant level: n's children live in the voxel pool, not the
	// node pool.
	{
		extent := t.axisWidth >> (t.maxDepth - 2)
		index, bit, next := octant(origin, target, extent)
		block := t.nodes.Block(n.blockIndex)

		if n.mask&bit == 0 {
			n.mask |= bit
			childIndex := t.voxels.AcquireNextIndex()
			block[index] = node{depth: t.maxDepth - 1, blockIndex: childIndex}
			t.voxels.Alloc()
		}
		n = &block[index]
		origin = next
	}

	index, bit, _ := octant(origin, target, 2)
	n.mask |= bit
	voxels := t.voxels.Block(n.blockIndex)
	voxels[index] = payload
}

// AllocBulk stores every element of voxels, decoding each Spatial's
// Morton key under the tree's configured key width before calling Alloc.
// Equivalent to calling Alloc once per element, provided for batch
// producers that already hold pre-encoded keys.
func (t *Tree[P]) AllocBulk(voxels []Spatial[P]) {
	for i := range voxels {
		pos := voxels[i].DecodePosition(t.cfg.BitWidth)
		t.Alloc(pos, voxels[i].Data)
	}
}

// Get returns a pointer to the payload stored at pos and true, or nil and
// false if pos has never been allocated (or was deallocated). The
// returned pointer aliases the tree's internal storage and is invalidated
// by a subsequent Dealloc of the same coordinate.
//
// If pos is outside Bounds, Get panics unless Config.DiscardOverflow is
// set, in which case it reports not-found.
func (t *Tree[P]) Get(pos Coordinate) (*P, bool) {
	if !t.inBounds(pos) {
		t.outOfBounds(pos)
		return nil, false
	}

	target := Coordinate{pos.X << 1, pos.Y << 1, pos.Z << 1}
	n := &t.root
	origin := Coordinate{}

	for depth := uint8(0); depth < t.maxDepth-1; depth++ {
		extent := t.axisWidth >> depth
		index, bit, next := octant(origin, target, extent)
		if n.mask&bit == 0 {
			return nil, false
		}
		block := t.nodes.Block(n.blockIndex)
		n = &block[index]
		origin = next
	}

	index, bit, _ := octant(origin, target, 2)
	if n.mask&bit == 0 {
		return nil, false
	}
	voxels := t.voxels.Block(n.blockIndex)
	return &voxels[index], true
}

// tracePath records the node and child-bit visited at each depth of a
// descent, so Dealloc can unwind it without a second traversal.
type tracePath struct {
	nodes   [maxPathDepth]*node
	bits    [maxPathDepth]uint8
	reached uint8
}

func (t *Tree[P]) getTraced(pos Coordinate) (*tracePath, *P, bool) {
	if !t.inBounds(pos) {
		t.outOfBounds(pos)
		return nil, nil, false
	}

	target := Coordinate{pos.X << 1, pos.Y << 1, pos.Z << 1}
	n := &t.root
	origin := Coordinate{}
	var path tracePath

	for depth := uint8(0); depth < t.maxDepth-1; depth++ {
		extent := t.axisWidth >> depth
		index, bit, next := octant(origin, target, extent)
		if n.mask&bit == 0 {
			return nil, nil, false
		}
		path.nodes[depth] = n
		path.bits[depth] = bit

		block := t.nodes.Block(n.blockIndex)
		n = &block[index]
		origin = next
	}

	index, bit, _ := octant(origin, target, 2)
	if n.mask&bit == 0 {
		return nil, nil, false
	}
	path.reached = t.maxDepth - 1
	path.nodes[path.reached] = n
	path.bits[path.reached] = bit

	voxels := t.voxels.Block(n.blockIndex)
	return &path, &voxels[index], true
}

// Dealloc removes the payload at pos, if any, reporting whether a payload
// was present. It reclaims the voxel block and any internal node blocks
// that become entirely empty as a result, walking back up toward (but
// never including) the root: the root's own block is never freed.
//
// If pos is outside Bounds, Dealloc panics unless Config.DiscardOverflow
// is set, in which case it reports false.
func (t *Tree[P]) Dealloc(pos Coordinate) bool {
	path, _, ok := t.getTraced(pos)
	if !ok {
		return false
	}

	d := path.reached
	path.nodes[d].mask &^= path.bits[d]
	if path.nodes[d].mask != 0 {
		return true
	}

	t.voxels.Dealloc(path.nodes[d].blockIndex)
	d--
	path.nodes[d].mask &^= path.bits[d]

	for d >= 1 {
		if path.nodes[d].mask != 0 {
			break
		}
		t.nodes.Dealloc(path.nodes[d].blockIndex)
		d--
		path.nodes[d].mask &^= path.bits[d]
	}

	return true
}
