package svo

import "github.com/TomTonic/svo/morton"

// Coordinate is a point on the tree's discrete 3D integer lattice. Valid
// components range from 0 up to (but not including) the tree's Bounds on
// that axis.
type Coordinate struct {
	X, Y, Z uint32
}

// Spatial pairs a pre-encoded Morton key with a payload. It is the element
// type AllocBulk consumes: batch producers that already compute Morton
// keys (e.g. while streaming voxels off disk in key order) can skip the
// per-call coordinate round trip and hand the key straight through.
type Spatial[P any] struct {
	Morton uint32
	Data   P
}

// EncodePosition sets s.Morton to the Morton encoding of pos under the
// given key width. Components of pos outside the width's per-axis range
// ([0,32) for Width16, [0,1024) for Width32) are not validated here and
// yield an undefined key, as with Encode16 and Encode32.
func (s *Spatial[P]) EncodePosition(w morton.Width, pos Coordinate) {
	if w == morton.Width16 {
		s.Morton = uint32(morton.Encode16(uint8(pos.X), uint8(pos.Y), uint8(pos.Z)))
		return
	}
	s.Morton = morton.Encode32(uint16(pos.X), uint16(pos.Y), uint16(pos.Z))
}

// DecodePosition returns the Coordinate s.Morton encodes under the given
// key width.
func (s Spatial[P]) DecodePosition(w morton.Width) Coordinate {
	if w == morton.Width16 {
		x, y, z := morton.Decode16(uint16(s.Morton))
		return Coordinate{uint32(x), uint32(y), uint32(z)}
	}
	x, y, z := morton.Decode32(s.Morton)
	return Coordinate{uint32(x), uint32(y), uint32(z)}
}
