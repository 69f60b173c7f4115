// Package pool implements the two-pool arena backing a sparse voxel
// octree: a generic, growable collection of fixed-size 8-element blocks
// with FIFO free-list reuse. One instance holds internal tree nodes, a
// second holds leaf voxel payloads; the tree owns both and addresses
// children by pool index rather than by pointer.
package pool

// Block is the fixed 8-element arena unit mirroring an octree node's 8
// child octants. Its element type is the internal node type in the node
// pool, and the voxel payload type in the voxel pool.
type Block[T any] [8]T

// Pool is a generic arena of Block[T] values with FIFO free-list reuse.
// Blocks are stored behind pointers so that growing the backing slice
// never moves a previously-handed-out block in memory: Block(i) returns
// the same address for the lifetime of the pool, regardless of
// subsequent Alloc calls. Only Dealloc invalidates it, and only for the
// index it reclaims.
type Pool[T any] struct {
	blocks []*Block[T]
	free   fifoQueue
}

// New returns an empty pool. Blocks are created lazily by Alloc.
func New[T any]() *Pool[T] {
	return &Pool[T]{}
}

// AcquireNextIndex reports, without allocating, the index the next Alloc
// call will produce. Callers use this to record a child's future index
// in the parent block before the child block exists, then must call
// Alloc immediately afterward; any divergence between the two would
// corrupt the parent's link.
func (p *Pool[T]) AcquireNextIndex() uint32 {
	if p.free.len() > 0 {
		return p.free.front()
	}
	return uint32(len(p.blocks))
}

// Alloc reserves a block and returns its index: the free list's head if
// non-empty, otherwise a freshly appended zero-valued block. The indexed
// block is live after this call returns.
func (p *Pool[T]) Alloc() uint32 {
	if p.free.len() > 0 {
		return p.free.pop()
	}
	p.blocks = append(p.blocks, new(Block[T]))
	return uint32(len(p.blocks) - 1)
}

// Dealloc returns index to the free list for future reuse. The caller
// must no longer hold any reference into that block. Block contents are
// left untouched; zeroing, if needed, is the next allocator's
// responsibility. Calling Dealloc on an index already free is a contract
// violation, not a checked error: it would duplicate the index on the
// free list and corrupt subsequent allocations.
func (p *Pool[T]) Dealloc(index uint32) {
	p.free.push(index)
}

// Block returns a pointer to the block at index, valid until the pool
// (or its owning tree) is discarded, or until index is reclaimed via
// Dealloc.
func (p *Pool[T]) Block(index uint32) *Block[T] {
	return p.blocks[index]
}

// Len returns the total number of blocks ever allocated, including any
// currently on the free list. Backing storage never shrinks.
func (p *Pool[T]) Len() int {
	return len(p.blocks)
}

// FreeLen returns the number of blocks currently on the free list.
func (p *Pool[T]) FreeLen() int {
	return p.free.len()
}

// LiveCount returns the number of blocks currently in use: Len minus
// FreeLen.
func (p *Pool[T]) LiveCount() int {
	return p.Len() - p.FreeLen()
}
