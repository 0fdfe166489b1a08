package vec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArithmetic(t *testing.T) {
	a := Vec3{1.0, 2.0, 3.0}
	b := Vec3{-1.0, 0.5, 2.0}

	assert.Equal(t, Vec3{0.0, 2.5, 5.0}, Add3(a, b))
	assert.Equal(t, Vec3{2.0, 1.5, 1.0}, Sub3(a, b))
	assert.Equal(t, Vec3{-1.0, 1.0, 6.0}, Mul3(a, b))
	assert.Equal(t, Vec3{2.0, 4.0, 6.0}, Scale3(a, 2.0))
	assert.Equal(t, float32(6.0), Dot3(a, b))

	assert.Equal(t, Vec2{0.5, 1.0}, Scale2(Vec2{1.0, 2.0}, 0.5))
	assert.Equal(t, Vec4{2.0, 2.0, 2.0, 2.0}, Add4(Vec4{1.0, 1.0, 1.0, 1.0}, Vec4{1.0, 1.0, 1.0, 1.0}))
}

func TestLength(t *testing.T) {
	assert.Equal(t, float32(5.0), Length2(Vec2{3.0, 4.0}))
	assert.Equal(t, float32(13.0), Length3(Vec3{3.0, 4.0, 12.0}))
	assert.Equal(t, float32(2.0), Length4(Vec4{1.0, 1.0, 1.0, 1.0}))
	assert.Equal(t, float32(25.0), LenSq2(Vec2{3.0, 4.0}))
}

func TestCross(t *testing.T) {
	x := Vec3{1.0, 0.0, 0.0}
	y := Vec3{0.0, 1.0, 0.0}
	assert.Equal(t, Vec3{0.0, 0.0, 1.0}, Cross(x, y))
	assert.Equal(t, Vec3{0.0, 0.0, -1.0}, Cross(y, x))
}

func TestNormalize(t *testing.T) {
	n := Normalize3(Vec3{3.0, 0.0, 4.0})
	assert.InDelta(t, 1.0, float64(Length3(n)), 1e-6)
	assert.InDelta(t, 0.6, float64(n[0]), 1e-6)

	n2 := Normalize2(Vec2{0.0, -2.0})
	assert.Equal(t, Vec2{0.0, -1.0}, n2)
}

func TestScalarHelpers(t *testing.T) {
	assert.Equal(t, float32(1.0), Clamp(float32(3.0), 0.0, 1.0))
	assert.Equal(t, float32(0.0), Saturate(float32(-0.5)))
	assert.Equal(t, float32(1.5), Lerp(float32(1.0), 2.0, 0.5))
	assert.Equal(t, float32(-1.0), Sign(-7.25))
	assert.Equal(t, 2, Min3(4, 2, 3))
	assert.Equal(t, 4, Max3(4, 2, 3))
}
