package simplex

import (
	"github.com/lunabrook/gfxmath/vec"
)

// Stagger step per dimension, 1/sqrt(n).
const (
	step2 float32 = 0.7071067811865476
	step3 float32 = 0.5773502691896258
	step4 float32 = 0.5
)

// Field2 is a vector valued noise sample: one scalar per axis, each
// with its own derivative.
type Field2 struct {
	Value vec.Vec2
	Deriv [2]vec.Vec2
}

type Field3 struct {
	Value vec.Vec3
	Deriv [3]vec.Vec3
}

type Field4 struct {
	Value vec.Vec4
	Deriv [4]vec.Vec4
}

// Noise2 builds a 2D vector field from the scalar evaluator. Axis i of
// the result is Eval2 at p staggered along axis i by a distance
// proportional to |p|, which decorrelates the components. The two
// evaluations are independent.
func Noise2(p vec.Vec2, seed int32) Field2 {
	st := vec.Length2(p) * step2
	sx := Eval2(vec.Vec2{p[0] + st, p[1]}, seed)
	sy := Eval2(vec.Vec2{p[0], p[1] + st}, seed)

	return Field2{
		Value: vec.Vec2{sx.Value, sy.Value},
		Deriv: [2]vec.Vec2{sx.Deriv, sy.Deriv},
	}
}

// Noise3 builds a 3D vector field from the scalar evaluator.
func Noise3(p vec.Vec3, seed int32) Field3 {
	st := vec.Length3(p) * step3
	sx := Eval3(vec.Vec3{p[0] + st, p[1], p[2]}, seed)
	sy := Eval3(vec.Vec3{p[0], p[1] + st, p[2]}, seed)
	sz := Eval3(vec.Vec3{p[0], p[1], p[2] + st}, seed)

	return Field3{
		Value: vec.Vec3{sx.Value, sy.Value, sz.Value},
		Deriv: [3]vec.Vec3{sx.Deriv, sy.Deriv, sz.Deriv},
	}
}

// Noise4 builds a 4D vector field from the scalar evaluator.
func Noise4(p vec.Vec4, seed int32) Field4 {
	st := vec.Length4(p) * step4
	sx := Eval4(vec.Vec4{p[0] + st, p[1], p[2], p[3]}, seed)
	sy := Eval4(vec.Vec4{p[0], p[1] + st, p[2], p[3]}, seed)
	sz := Eval4(vec.Vec4{p[0], p[1], p[2] + st, p[3]}, seed)
	sw := Eval4(vec.Vec4{p[0], p[1], p[2], p[3] + st}, seed)

	return Field4{
		Value: vec.Vec4{sx.Value, sy.Value, sz.Value, sw.Value},
		Deriv: [4]vec.Vec4{sx.Deriv, sy.Deriv, sz.Deriv, sw.Deriv},
	}
}
