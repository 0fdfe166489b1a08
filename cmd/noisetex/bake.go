package main

import (
	"encoding/binary"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/chewxy/math32"

	"github.com/lunabrook/gfxmath/simplex"
	"github.com/lunabrook/gfxmath/vec"
)

type bakeSettings struct {
	width  int
	height int
	depth  int // 1 for a flat texture
	freq   float32
	seed   int32
	bits   int // 8 or 16
}

// bake2 samples the scalar field over a width x height grid and
// returns the raw values with their range.
func bake2(s bakeSettings) ([]float32, float32, float32) {
	data := make([]float32, s.width*s.height)
	minV := math32.Inf(1)
	maxV := math32.Inf(-1)

	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			p := vec.Vec2{float32(x) * s.freq, float32(y) * s.freq}
			v := simplex.Eval2(p, s.seed).Value
			data[x+y*s.width] = v

			if v < minV {
				minV = v
			}
			if v > maxV {
				maxV = v
			}
		}
	}

	return data, minV, maxV
}

// bake3 samples the scalar field over a volume, one goroutine per z
// slice. The evaluator is pure, so slices need no coordination beyond
// the shared range reduction.
func bake3(s bakeSettings) ([]float32, float32, float32) {
	data := make([]float32, s.width*s.height*s.depth)
	minV := math32.Inf(1)
	maxV := math32.Inf(-1)

	var wg sync.WaitGroup
	var mu sync.Mutex

	progress := int32(0)
	progressStep := int32(s.width*s.height*s.depth/100 + 1)

	for z := 0; z < s.depth; z++ {
		wg.Add(1)
		go func(z int) {
			defer wg.Done()

			minS := math32.Inf(1)
			maxS := math32.Inf(-1)

			for y := 0; y < s.height; y++ {
				for x := 0; x < s.width; x++ {
					if p := atomic.AddInt32(&progress, 1); p%progressStep == 0 {
						fmt.Printf("\r%d%%", p/progressStep)
					}

					p := vec.Vec3{float32(x) * s.freq, float32(y) * s.freq, float32(z) * s.freq}
					v := simplex.Eval3(p, s.seed).Value
					data[x+y*s.width+z*s.width*s.height] = v

					if v < minS {
						minS = v
					}
					if v > maxS {
						maxS = v
					}
				}
			}

			mu.Lock()
			if minS < minV {
				minV = minS
			}
			if maxS > maxV {
				maxV = maxS
			}
			mu.Unlock()
		}(z)
	}

	wg.Wait()
	fmt.Println()

	return data, minV, maxV
}

// quantize maps the sampled values onto the full 8 or 16 bit range
// using the observed minimum and maximum. 16 bit output is little
// endian, matching the DDS payload layout.
func quantize(data []float32, minV, maxV float32, bits int) []byte {
	span := maxV - minV
	if span <= 0.0 {
		span = 1.0
	}

	if bits == 16 {
		out := make([]byte, len(data)*2)
		for i, v := range data {
			q := uint16(vec.Saturate((v-minV)/span) * 65535.0)
			binary.LittleEndian.PutUint16(out[i*2:], q)
		}
		return out
	}

	out := make([]byte, len(data))
	for i, v := range data {
		out[i] = byte(vec.Saturate((v-minV)/span) * 255.0)
	}
	return out
}
