package simplex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashDeterministic(t *testing.T) {
	assert.Equal(t, uint32(0), hash(0, 0, 0))
	assert.Equal(t, uint32(922718683), hash(1, 2, 3))
	assert.Equal(t, uint32(3662918614), hash(0xFFFFFFFF, 5, 12345))

	// 32 bit wraparound keeps results platform independent.
	assert.Equal(t, hash(0xFFFFFFFF, 5, 12345), hash(0xFFFFFFFF, 5, 12345))
}

func TestHashAvalanche(t *testing.T) {
	// Flipping one input bit should flip roughly half the output bits.
	// A weak mix here shows up as visible banding in the noise.
	base := hash(100, 200, 300)
	flipped := 0
	for bit := 0; bit < 32; bit++ {
		h := hash(100^(1<<uint(bit)), 200, 300)
		d := h ^ base
		for ; d != 0; d &= d - 1 {
			flipped++
		}
	}
	avg := float64(flipped) / 32.0
	assert.Greater(t, avg, 10.0)
	assert.Less(t, avg, 22.0)
}

func TestGradientTableCoverage(t *testing.T) {
	// Masked hashing must reach every table entry.
	hit2 := map[int]bool{}
	hit3 := map[int]bool{}
	hit4 := map[int]bool{}

	for i := int32(-16); i < 16; i++ {
		for j := int32(-16); j < 16; j++ {
			hit2[int(hash(uint32(i), uint32(j), 0)&7)] = true
			hit3[int(hash(uint32(i), uint32(j), hash(uint32(i+j), 0, 0))&15)] = true
			hit4[int(hash(uint32(i), uint32(j), hash(uint32(i+j), uint32(i-j), 0))&31)] = true
		}
	}

	assert.Equal(t, 8, len(hit2))
	assert.Equal(t, 16, len(hit3))
	assert.Equal(t, 32, len(hit4))
}

func TestGradientDeterministic(t *testing.T) {
	assert.Equal(t, Gradient2(3, -2, 99), Gradient2(3, -2, 99))
	assert.Equal(t, Gradient3(3, -2, 7, 99), Gradient3(3, -2, 7, 99))
	assert.Equal(t, Gradient4(3, -2, 7, 1, 99), Gradient4(3, -2, 7, 1, 99))
}

func TestGradientComponents(t *testing.T) {
	// Every selected gradient comes straight from the tables, so the
	// components stay in {-1, 0, 1}.
	for s := int32(0); s < 64; s++ {
		g2 := Gradient2(s, -s, s*31)
		g3 := Gradient3(s, -s, s/2, s*31)
		g4 := Gradient4(s, -s, s/2, s+1, s*31)
		for a := 0; a < 2; a++ {
			assert.Contains(t, []float32{-1, 0, 1}, g2[a])
		}
		for a := 0; a < 3; a++ {
			assert.Contains(t, []float32{-1, 0, 1}, g3[a])
		}
		for a := 0; a < 4; a++ {
			assert.Contains(t, []float32{-1, 0, 1}, g4[a])
		}
	}
}

// signature4 mirrors the comparison signature computed in Eval4.
func signature4(x0, y0, z0, w0 float32) uint32 {
	var sig uint32
	if x0 > y0 {
		sig |= 32
	}
	if x0 > z0 {
		sig |= 16
	}
	if y0 > z0 {
		sig |= 8
	}
	if x0 > w0 {
		sig |= 4
	}
	if y0 > w0 {
		sig |= 2
	}
	if z0 > w0 {
		sig |= 1
	}
	return sig
}

func TestOrder4ReachableRows(t *testing.T) {
	// All 24 orderings of four distinct offsets must land on a row
	// that is a permutation of 0..3; the other 40 signatures are
	// placeholders that the comparison formula can never produce.
	vals := []float32{0.1, 0.2, 0.3, 0.4}
	reached := map[uint32]bool{}

	var perm func(v []float32, k int)
	perm = func(v []float32, k int) {
		if k == len(v) {
			sig := signature4(v[0], v[1], v[2], v[3])
			reached[sig] = true
			row := order4[sig]
			seen := [4]bool{}
			for _, r := range row {
				seen[r] = true
			}
			assert.Equal(t, [4]bool{true, true, true, true}, seen,
				"signature %d selected a placeholder row", sig)
			return
		}
		for i := k; i < len(v); i++ {
			v[k], v[i] = v[i], v[k]
			perm(v, k+1)
			v[k], v[i] = v[i], v[k]
		}
	}
	perm(vals, 0)

	assert.Equal(t, 24, len(reached))

	for sig := uint32(0); sig < 64; sig++ {
		if reached[sig] {
			continue
		}
		assert.Equal(t, [4]uint8{0, 0, 0, 0}, order4[sig],
			"unreachable signature %d holds a live row", sig)
	}
}
