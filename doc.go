// Package svo implements a sparse voxel octree: a spatially-indexed
// container mapping discrete 3D integer coordinates to fixed-size payload
// records, stored in a depth-balanced octree whose empty subtrees are
// elided. It is built for high-throughput allocation, point lookup and
// deletion of voxels in a bounded 3D integer lattice (up to 1024^3), with
// memory and latency characteristics competitive with a dense array when
// occupancy is sparse.
//
// A Tree is parameterized over its payload type P (see voxel.Record for
// the default packed layout) and configured once at construction with a
// Config describing the Morton key width, the per-axis bounds, and the
// out-of-bounds policy. Internally it owns two block pools (package pool):
// one for internal nodes, one for voxel payloads, each a growable arena of
// fixed 8-element blocks addressed by index rather than by pointer.
//
// The tree is not safe for concurrent use: all operations require
// exclusive access, by design (see the documentation of Tree).
package svo
