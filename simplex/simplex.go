/*
Package simplex evaluates gradient noise on a simplex grid in 2, 3 and
4 dimensions, returning the scalar value together with its analytic
derivative. Every function is pure: the same point and seed always
produce the same sample, so calls can run concurrently without
coordination.
*/

package simplex

import (
	"math/bits"
	"time"

	"github.com/lunabrook/gfxmath/vec"
)

// Skew (fN) and unskew (gN) grid constants.
const (
	f2 float32 = 0.36602540378443865 // (sqrt(3)-1)/2
	g2 float32 = 0.21132486540518712 // (3-sqrt(3))/6
	f3 float32 = 1.0 / 3.0
	g3 float32 = 1.0 / 6.0
	f4 float32 = 0.30901699437494745 // (sqrt(5)-1)/4
	g4 float32 = 0.13819660112501052 // (5-sqrt(5))/20
)

// Output scale per dimension, fitted against the observed extrema of
// the unscaled sum so values land in roughly [-1, 1].
const (
	scale2 float32 = 70.1480
	scale3 float32 = 76.8813
	scale4 float32 = 62.7778
)

// Lattice directions hashed onto grid corners. Axes plus diagonals for
// 2D, the 12 cube edge directions (4 repeated) for 3D, and the 32
// one-zero-component diagonals of the tesseract for 4D.
var grad2 = [8]vec.Vec2{
	{1.0, 0.0}, {-1.0, 0.0}, {0.0, 1.0}, {0.0, -1.0},
	{1.0, 1.0}, {-1.0, 1.0}, {1.0, -1.0}, {-1.0, -1.0},
}

var grad3 = [16]vec.Vec3{
	{1.0, 0.0, 1.0}, {0.0, 1.0, 1.0}, {-1.0, 0.0, 1.0}, {0.0, -1.0, 1.0},
	{1.0, 0.0, -1.0}, {0.0, 1.0, -1.0}, {-1.0, 0.0, -1.0}, {0.0, -1.0, -1.0},
	{1.0, -1.0, 0.0}, {1.0, 1.0, 0.0}, {-1.0, 1.0, 0.0}, {-1.0, -1.0, 0.0},
	{1.0, 0.0, 1.0}, {-1.0, 0.0, 1.0}, {0.0, 1.0, -1.0}, {0.0, -1.0, -1.0},
}

var grad4 = [32]vec.Vec4{
	{0.0, 1.0, 1.0, 1.0}, {0.0, 1.0, 1.0, -1.0}, {0.0, 1.0, -1.0, 1.0}, {0.0, 1.0, -1.0, -1.0},
	{0.0, -1.0, 1.0, 1.0}, {0.0, -1.0, 1.0, -1.0}, {0.0, -1.0, -1.0, 1.0}, {0.0, -1.0, -1.0, -1.0},
	{1.0, 0.0, 1.0, 1.0}, {1.0, 0.0, 1.0, -1.0}, {1.0, 0.0, -1.0, 1.0}, {1.0, 0.0, -1.0, -1.0},
	{-1.0, 0.0, 1.0, 1.0}, {-1.0, 0.0, 1.0, -1.0}, {-1.0, 0.0, -1.0, 1.0}, {-1.0, 0.0, -1.0, -1.0},
	{1.0, 1.0, 0.0, 1.0}, {1.0, 1.0, 0.0, -1.0}, {1.0, -1.0, 0.0, 1.0}, {1.0, -1.0, 0.0, -1.0},
	{-1.0, 1.0, 0.0, 1.0}, {-1.0, 1.0, 0.0, -1.0}, {-1.0, -1.0, 0.0, 1.0}, {-1.0, -1.0, 0.0, -1.0},
	{1.0, 1.0, 1.0, 0.0}, {1.0, 1.0, -1.0, 0.0}, {1.0, -1.0, 1.0, 0.0}, {1.0, -1.0, -1.0, 0.0},
	{-1.0, 1.0, 1.0, 0.0}, {-1.0, 1.0, -1.0, 0.0}, {-1.0, -1.0, 1.0, 0.0}, {-1.0, -1.0, -1.0, 0.0},
}

// Corner traversal order for the 4D simplex, keyed by a 6 bit signature
// built from the pairwise comparisons of the local offset components.
// Rows of zeros correspond to signatures no real ordering can produce.
var order4 = [64][4]uint8{
	{0, 1, 2, 3}, {0, 1, 3, 2}, {0, 0, 0, 0}, {0, 2, 3, 1}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {1, 2, 3, 0},
	{0, 2, 1, 3}, {0, 0, 0, 0}, {0, 3, 1, 2}, {0, 3, 2, 1}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {1, 3, 2, 0},
	{0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0},
	{1, 2, 0, 3}, {0, 0, 0, 0}, {1, 3, 0, 2}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {2, 3, 0, 1}, {2, 3, 1, 0},
	{1, 0, 2, 3}, {1, 0, 3, 2}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {2, 0, 3, 1}, {0, 0, 0, 0}, {2, 1, 3, 0},
	{0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0},
	{2, 0, 1, 3}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {3, 0, 1, 2}, {3, 0, 2, 1}, {0, 0, 0, 0}, {3, 1, 2, 0},
	{2, 1, 0, 3}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {3, 1, 0, 2}, {0, 0, 0, 0}, {3, 2, 0, 1}, {3, 2, 1, 0},
}

// hash mixes three integers into one well distributed integer using
// XOR, subtract and rotate rounds. All arithmetic wraps at 32 bits so
// results are identical on every platform.
func hash(a, b, c uint32) uint32 {
	c ^= b
	c -= bits.RotateLeft32(b, 14)
	a ^= c
	a -= bits.RotateLeft32(c, 11)
	b ^= a
	b -= bits.RotateLeft32(a, 25)
	c ^= b
	c -= bits.RotateLeft32(b, 16)
	a ^= c
	a -= bits.RotateLeft32(c, 4)
	b ^= a
	b -= bits.RotateLeft32(a, 14)
	c ^= b
	c -= bits.RotateLeft32(b, 24)
	return c
}

// Gradient2 picks the gradient for lattice point (i, j) under the
// given seed.
func Gradient2(i, j, seed int32) vec.Vec2 {
	return grad2[hash(uint32(i), uint32(j), uint32(seed))&7]
}

// Gradient3 picks the gradient for lattice point (i, j, k) under the
// given seed. The third coordinate is folded in through a second hash
// round.
func Gradient3(i, j, k, seed int32) vec.Vec3 {
	return grad3[hash(uint32(i), uint32(j), hash(uint32(k), uint32(seed), 0))&15]
}

// Gradient4 picks the gradient for lattice point (i, j, k, l) under
// the given seed.
func Gradient4(i, j, k, l, seed int32) vec.Vec4 {
	return grad4[hash(uint32(i), uint32(j), hash(uint32(k), uint32(l), uint32(seed)))&31]
}

// TimeSeed derives a seed from the wall clock, for callers that do not
// need reproducibility. The evaluators themselves never read the
// clock; pass an explicit seed to get deterministic fields.
func TimeSeed() int32 {
	return int32(time.Now().UnixNano())
}
