/*
A simple float32 vector library for the 2, 3 and 4 component
vectors used across the module... New functions added as needed.
*/

package vec

import (
	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

type Vec2 [2]float32
type Vec3 [3]float32
type Vec4 [4]float32

func Add2(a, b Vec2) Vec2 {
	return Vec2{a[0] + b[0], a[1] + b[1]}
}

func Add3(a, b Vec3) Vec3 {
	return Vec3{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

func Add4(a, b Vec4) Vec4 {
	return Vec4{a[0] + b[0], a[1] + b[1], a[2] + b[2], a[3] + b[3]}
}

func Sub2(a, b Vec2) Vec2 {
	return Vec2{a[0] - b[0], a[1] - b[1]}
}

func Sub3(a, b Vec3) Vec3 {
	return Vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func Sub4(a, b Vec4) Vec4 {
	return Vec4{a[0] - b[0], a[1] - b[1], a[2] - b[2], a[3] - b[3]}
}

func Mul2(a, b Vec2) Vec2 {
	return Vec2{a[0] * b[0], a[1] * b[1]}
}

func Mul3(a, b Vec3) Vec3 {
	return Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}

func Mul4(a, b Vec4) Vec4 {
	return Vec4{a[0] * b[0], a[1] * b[1], a[2] * b[2], a[3] * b[3]}
}

func Scale2(a Vec2, b float32) Vec2 {
	return Vec2{a[0] * b, a[1] * b}
}

func Scale3(a Vec3, b float32) Vec3 {
	return Vec3{a[0] * b, a[1] * b, a[2] * b}
}

func Scale4(a Vec4, b float32) Vec4 {
	return Vec4{a[0] * b, a[1] * b, a[2] * b, a[3] * b}
}

func Dot2(a, b Vec2) float32 {
	return a[0]*b[0] + a[1]*b[1]
}

func Dot3(a, b Vec3) float32 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func Dot4(a, b Vec4) float32 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2] + a[3]*b[3]
}

func LenSq2(a Vec2) float32 {
	return a[0]*a[0] + a[1]*a[1]
}

func LenSq3(a Vec3) float32 {
	return a[0]*a[0] + a[1]*a[1] + a[2]*a[2]
}

func LenSq4(a Vec4) float32 {
	return a[0]*a[0] + a[1]*a[1] + a[2]*a[2] + a[3]*a[3]
}

func Length2(a Vec2) float32 {
	return math32.Sqrt(LenSq2(a))
}

func Length3(a Vec3) float32 {
	return math32.Sqrt(LenSq3(a))
}

func Length4(a Vec4) float32 {
	return math32.Sqrt(LenSq4(a))
}

func Cross(a, b Vec3) Vec3 {
	return Vec3{a[1]*b[2] - a[2]*b[1], a[2]*b[0] - a[0]*b[2], a[0]*b[1] - a[1]*b[0]}
}

func Normalize2(a Vec2) Vec2 {
	l := Length2(a)
	return Vec2{a[0] / l, a[1] / l}
}

func Normalize3(a Vec3) Vec3 {
	l := Length3(a)
	return Vec3{a[0] / l, a[1] / l, a[2] / l}
}

func Normalize4(a Vec4) Vec4 {
	l := Length4(a)
	return Vec4{a[0] / l, a[1] / l, a[2] / l, a[3] / l}
}

func Sign(a float32) float32 {
	if a > 0.0 {
		return 1.0
	}

	if a < 0.0 {
		return -1.0
	}

	return 0.0
}

func Clamp[T constraints.Ordered](v, min, max T) T {
	if v > max {
		return max
	}

	if v < min {
		return min
	}

	return v
}

func Saturate[T ~float32 | ~float64](v T) T {
	return Clamp(v, T(0.0), T(1.0))
}

func Lerp[T ~float32 | ~float64](a, b, t T) T {
	return a + (b-a)*t
}

func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

func Min3[T constraints.Ordered](a, b, c T) T {
	return Min(a, Min(b, c))
}

func Max3[T constraints.Ordered](a, b, c T) T {
	return Max(a, Max(b, c))
}
